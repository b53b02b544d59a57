package wire

import (
	"testing"

	"github.com/coreclef/msgpack/errs"
	"github.com/coreclef/msgpack/payload"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal_Nil(t *testing.T) {
	p, err := Unmarshal([]byte{0xC0})
	require.NoError(t, err)
	require.True(t, p.IsNil())
}

func TestUnmarshal_Scenario1_MixedArray(t *testing.T) {
	data := []byte{
		0x94, 0x00, 0x01, 0xB1,
		'n', 'v', 'i', 'm', '_', 'g', 'e', 't', '_', 'a', 'p', 'i', '_', 'i', 'n', 'f', 'o',
		0x90,
	}

	p, err := Unmarshal(data)
	require.NoError(t, err)
	require.Equal(t, payload.KindArr, p.Kind())

	n, err := p.GetArrLen()
	require.NoError(t, err)
	require.Equal(t, 4, n)

	e0, _ := p.GetArrElement(0)
	v0, _ := e0.AsUint()
	require.Equal(t, uint64(0), v0)

	e2, _ := p.GetArrElement(2)
	s2, _ := e2.AsStr()
	require.Equal(t, "nvim_get_api_info", string(s2))

	e3, _ := p.GetArrElement(3)
	l3, _ := e3.GetArrLen()
	require.Equal(t, 0, l3)
}

func TestUnmarshal_Scenario3_Timestamp32(t *testing.T) {
	p, err := Unmarshal([]byte{0xD6, 0xFF, 0x49, 0x96, 0x02, 0xD2})
	require.NoError(t, err)
	require.Equal(t, payload.KindTimestamp, p.Kind())

	sec, nsec := p.TimestampValue()
	require.Equal(t, int64(1234567890), sec)
	require.Equal(t, uint32(0), nsec)
}

func TestUnmarshal_Scenario4_Timestamp96(t *testing.T) {
	b, err := Marshal(payload.Timestamp(-1000000000, 123456789))
	require.NoError(t, err)

	p, err := Unmarshal(b)
	require.NoError(t, err)

	sec, nsec := p.TimestampValue()
	require.Equal(t, int64(-1000000000), sec)
	require.Equal(t, uint32(123456789), nsec)
}

func TestUnmarshal_Scenario5_MapLookup(t *testing.T) {
	m := payload.Map()
	require.NoError(t, m.MapPut("one", payload.Uint(1)))
	require.NoError(t, m.MapPut("two", payload.Bool(true)))
	require.NoError(t, m.MapPut("three", payload.Str([]byte("Hello, world!"))))

	b, err := Marshal(m)
	require.NoError(t, err)

	p, err := Unmarshal(b)
	require.NoError(t, err)

	v, ok, err := p.MapGet("one")
	require.NoError(t, err)
	require.True(t, ok)
	u, _ := v.AsUint()
	require.Equal(t, uint64(1), u)

	v, ok, err = p.MapGet("two")
	require.NoError(t, err)
	require.True(t, ok)
	tv, _ := v.AsBool()
	require.True(t, tv)

	v, ok, err = p.MapGet("three")
	require.NoError(t, err)
	require.True(t, ok)
	sv, _ := v.AsStr()
	require.Equal(t, "Hello, world!", string(sv))
}

func TestUnmarshal_Scenario6_ArrayTooLarge(t *testing.T) {
	const n = 2_000_000
	data := []byte{0xDD, byte(n >> 24), byte(n >> 16), byte(n >> 8), byte(n)}

	_, err := Unmarshal(data)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrArrayTooLarge)
}

func TestUnmarshal_MaxDepthExceeded(t *testing.T) {
	// A chain of 1-element fixarrays nested deeper than the default limit,
	// each wrapping the one before it, terminated by a nil.
	depth := 2000
	data := make([]byte, 0, depth+1)
	for i := 0; i < depth; i++ {
		data = append(data, 0x91) // fixarray, length 1
	}
	data = append(data, 0xC0)

	_, err := Unmarshal(data)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrMaxDepthExceeded)
}

func TestUnmarshal_TruncatedInput(t *testing.T) {
	_, err := Unmarshal([]byte{0xD9, 0x05, 'a', 'b'})
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrDataReading)
}

func TestRoundTrip_NestedStructures(t *testing.T) {
	inner := payload.Array(2)
	require.NoError(t, inner.SetArrElement(0, payload.Int(-5)))
	require.NoError(t, inner.SetArrElement(1, payload.Float(3.25)))

	m := payload.Map()
	require.NoError(t, m.MapPut("nested", inner))
	require.NoError(t, m.MapPut("bin", payload.Bin([]byte{0xDE, 0xAD, 0xBE, 0xEF})))
	require.NoError(t, m.MapPut("missing", payload.Nil()))

	b, err := Marshal(m)
	require.NoError(t, err)

	got, err := Unmarshal(b)
	require.NoError(t, err)
	require.True(t, payload.Equal(m, got))
}
