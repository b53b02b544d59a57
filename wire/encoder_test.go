package wire

import (
	"testing"

	"github.com/coreclef/msgpack/payload"
	"github.com/stretchr/testify/require"
)

func TestMarshal_Nil(t *testing.T) {
	b, err := Marshal(payload.Nil())
	require.NoError(t, err)
	require.Equal(t, []byte{0xC0}, b)
}

func TestMarshal_Scenario1_MixedArray(t *testing.T) {
	arr := payload.Array(4)
	require.NoError(t, arr.SetArrElement(0, payload.Uint(0)))
	require.NoError(t, arr.SetArrElement(1, payload.Uint(1)))
	require.NoError(t, arr.SetArrElement(2, payload.Str([]byte("nvim_get_api_info"))))
	require.NoError(t, arr.SetArrElement(3, payload.Array(0)))

	b, err := Marshal(arr)
	require.NoError(t, err)

	want := []byte{
		0x94, 0x00, 0x01, 0xB1,
		'n', 'v', 'i', 'm', '_', 'g', 'e', 't', '_', 'a', 'p', 'i', '_', 'i', 'n', 'f', 'o',
		0x90,
	}
	require.Equal(t, want, b)
}

func TestMarshal_Scenario3_Timestamp32(t *testing.T) {
	b, err := Marshal(payload.Timestamp(1234567890, 0))
	require.NoError(t, err)
	require.Equal(t, []byte{0xD6, 0xFF, 0x49, 0x96, 0x02, 0xD2}, b)
}

func TestMarshal_Scenario4_Timestamp96(t *testing.T) {
	b, err := Marshal(payload.Timestamp(-1000000000, 123456789))
	require.NoError(t, err)
	require.Len(t, b, 15)
	require.Equal(t, []byte{0xC7, 0x0C, 0xFF}, b[:3])
}

func TestMarshal_BoolAndFixInts(t *testing.T) {
	b, err := Marshal(payload.Bool(true))
	require.NoError(t, err)
	require.Equal(t, []byte{0xC3}, b)

	b, err = Marshal(payload.Bool(false))
	require.NoError(t, err)
	require.Equal(t, []byte{0xC2}, b)

	b, err = Marshal(payload.Int(-1))
	require.NoError(t, err)
	require.Equal(t, []byte{0xFF}, b)

	b, err = Marshal(payload.Int(-33))
	require.NoError(t, err)
	require.Equal(t, []byte{0xD0, 0xDF}, b)
}

func TestMarshal_FloatNarrowing(t *testing.T) {
	b, err := Marshal(payload.Float(1.5))
	require.NoError(t, err)
	require.Equal(t, byte(0xCA), b[0])
	require.Len(t, b, 5)

	b, err = Marshal(payload.Float(1.7976931348623157e+308))
	require.NoError(t, err)
	require.Equal(t, byte(0xCB), b[0])
	require.Len(t, b, 9)
}

// TestMarshal_FloatNarrowing_MagnitudeOnly pins the spec's literal example:
// 3.14 falls inside f32's representable magnitude range, so it takes the
// FLOAT32 path even though float32(3.14) doesn't round-trip exactly back
// to 3.14 — the narrowing is magnitude-based, not exact-value-based.
func TestMarshal_FloatNarrowing_MagnitudeOnly(t *testing.T) {
	b, err := Marshal(payload.Float(3.14))
	require.NoError(t, err)
	require.Equal(t, byte(0xCA), b[0])
	require.Len(t, b, 5)

	p, err := Unmarshal(b)
	require.NoError(t, err)
	got, err := p.AsFloat()
	require.NoError(t, err)
	require.Equal(t, float64(float32(3.14)), got)
}

func TestMarshal_Map(t *testing.T) {
	m := payload.Map()
	require.NoError(t, m.MapPut("one", payload.Uint(1)))

	b, err := Marshal(m)
	require.NoError(t, err)
	require.Equal(t, []byte{0x81, 0xA3, 'o', 'n', 'e', 0x01}, b)
}

func TestMarshal_ExtFixedWidths(t *testing.T) {
	b, err := Marshal(payload.Ext(5, []byte{1}))
	require.NoError(t, err)
	require.Equal(t, []byte{0xD4, 0x05, 0x01}, b)

	b, err = Marshal(payload.Ext(5, make([]byte, 3)))
	require.NoError(t, err)
	require.Equal(t, byte(0xC7), b[0])
	require.Equal(t, byte(3), b[1])
	require.Equal(t, byte(5), b[2])
}
