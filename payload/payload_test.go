package payload

import (
	"testing"

	"github.com/coreclef/msgpack/errs"
	"github.com/stretchr/testify/require"
)

func TestConstructors_Kind(t *testing.T) {
	require.Equal(t, KindNil, Nil().Kind())
	require.Equal(t, KindBool, Bool(true).Kind())
	require.Equal(t, KindInt, Int(-5).Kind())
	require.Equal(t, KindUint, Uint(5).Kind())
	require.Equal(t, KindFloat, Float(3.14).Kind())
	require.Equal(t, KindStr, Str([]byte("hi")).Kind())
	require.Equal(t, KindBin, Bin([]byte{1, 2}).Kind())
	require.Equal(t, KindExt, Ext(5, []byte{1}).Kind())
	require.Equal(t, KindArr, Array(3).Kind())
	require.Equal(t, KindMap, Map().Kind())
	require.Equal(t, KindTimestamp, Timestamp(1, 2).Kind())
}

func TestZeroValue_IsNil(t *testing.T) {
	var p Payload
	require.True(t, p.IsNil())
	require.Equal(t, KindNil, p.Kind())
}

func TestStr_CopiesInput(t *testing.T) {
	src := []byte("hello")
	s := Str(src)
	src[0] = 'X'
	got, err := s.AsStr()
	require.NoError(t, err)
	require.Equal(t, "hello", string(got), "Str must copy the input, not alias it")
}

func TestArray_ZeroFillsToNil(t *testing.T) {
	arr := Array(4)
	n, err := arr.GetArrLen()
	require.NoError(t, err)
	require.Equal(t, 4, n)

	for i := range n {
		el, err := arr.GetArrElement(i)
		require.NoError(t, err)
		require.True(t, el.IsNil())
	}
}

func TestSetArrElement(t *testing.T) {
	arr := Array(2)
	require.NoError(t, arr.SetArrElement(0, Int(42)))
	el, err := arr.GetArrElement(0)
	require.NoError(t, err)
	i, err := el.AsInt()
	require.NoError(t, err)
	require.Equal(t, int64(42), i)

	require.ErrorIs(t, arr.SetArrElement(99, Int(1)), errs.ErrIndexOutOfRange)

	notArr := Int(1)
	require.ErrorIs(t, notArr.SetArrElement(0, Int(1)), errs.ErrNotArray)
}

func TestMapPutGet(t *testing.T) {
	m := Map()
	require.NoError(t, m.MapPut("a", Int(1)))
	require.NoError(t, m.MapPut("b", Int(2)))

	v, ok, err := m.MapGet("a")
	require.NoError(t, err)
	require.True(t, ok)
	i, _ := v.AsInt()
	require.Equal(t, int64(1), i)

	_, ok, err = m.MapGet("missing")
	require.NoError(t, err)
	require.False(t, ok)

	n, err := m.MapLen()
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

func TestMapPut_IdempotentOnExistingKey(t *testing.T) {
	m := Map()
	require.NoError(t, m.MapPut("k", Int(1)))
	require.NoError(t, m.MapPut("k", Int(2)))

	n, _ := m.MapLen()
	require.Equal(t, 1, n, "MapPut must not duplicate an existing key")

	v, ok, _ := m.MapGet("k")
	require.True(t, ok)
	i, _ := v.AsInt()
	require.Equal(t, int64(2), i)
}

func TestMapGet_NotMapError(t *testing.T) {
	notMap := Bool(true)
	_, _, err := notMap.MapGet("k")
	require.ErrorIs(t, err, errs.ErrNotMap)
}

func TestStrictAccessors_InvalidType(t *testing.T) {
	v := Int(1)
	_, err := v.AsUint()
	require.ErrorIs(t, err, errs.ErrInvalidType)
	_, err = v.AsFloat()
	require.ErrorIs(t, err, errs.ErrInvalidType)
	_, err = v.AsBool()
	require.ErrorIs(t, err, errs.ErrInvalidType)
	_, err = v.AsStr()
	require.ErrorIs(t, err, errs.ErrInvalidType)
	_, err = v.AsBin()
	require.ErrorIs(t, err, errs.ErrInvalidType)
	_, _, err = v.AsExt()
	require.ErrorIs(t, err, errs.ErrInvalidType)
}

func TestLenientAccessors_GetIntGetUint(t *testing.T) {
	i, err := Uint(5).GetInt()
	require.NoError(t, err)
	require.Equal(t, int64(5), i)

	_, err = Uint(^uint64(0)).GetInt()
	require.ErrorIs(t, err, errs.ErrInvalidType)

	u, err := Int(5).GetUint()
	require.NoError(t, err)
	require.Equal(t, uint64(5), u)

	_, err = Int(-1).GetUint()
	require.ErrorIs(t, err, errs.ErrInvalidType)
}

func TestPredicates(t *testing.T) {
	require.True(t, Int(1).IsNumber())
	require.True(t, Uint(1).IsNumber())
	require.True(t, Float(1).IsNumber())
	require.False(t, Str(nil).IsNumber())

	require.True(t, Int(1).IsInteger())
	require.False(t, Float(1).IsInteger())
}

func TestTimestampValue(t *testing.T) {
	ts := Timestamp(100, 200)
	s, ns := ts.TimestampValue()
	require.Equal(t, int64(100), s)
	require.Equal(t, uint32(200), ns)

	ts2 := TimestampFromSeconds(50)
	s2, ns2 := ts2.TimestampValue()
	require.Equal(t, int64(50), s2)
	require.Equal(t, uint32(0), ns2)
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "map", KindMap.String())
	require.Equal(t, "unknown", Kind(255).String())
}
