package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Equal(t, 0, bb.Len())
	require.Equal(t, 16, bb.Cap())
}

func TestByteBuffer_MustWriteAndReset(t *testing.T) {
	bb := NewByteBuffer(0)
	bb.MustWrite([]byte("hello"))
	require.Equal(t, []byte("hello"), bb.Bytes())
	require.Equal(t, 5, bb.Len())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 5, "Reset should retain backing array")
}

func TestByteBuffer_Grow_NoReallocWhenCapacitySufficient(t *testing.T) {
	bb := NewByteBuffer(64)
	before := bb.Cap()
	bb.Grow(10)
	require.Equal(t, before, bb.Cap(), "Grow should be a no-op when capacity already suffices")
}

func TestByteBuffer_Grow_ReallocatesWhenInsufficient(t *testing.T) {
	bb := NewByteBuffer(2)
	bb.MustWrite([]byte("ab"))
	bb.Grow(100)
	require.GreaterOrEqual(t, bb.Cap(), 102)
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(0)
	n, err := bb.Write([]byte("abc"))
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Equal(t, "abc", string(bb.Bytes()))
}

func TestByteBufferPool_GetPut(t *testing.T) {
	pool := NewByteBufferPool(8, 32)

	bb := pool.Get()
	require.Equal(t, 0, bb.Len())
	bb.MustWrite([]byte("data"))
	pool.Put(bb)

	reused := pool.Get()
	require.Equal(t, 0, reused.Len(), "Put should reset the buffer before returning it to the pool")
}

func TestByteBufferPool_DiscardsOversizedBuffers(t *testing.T) {
	pool := NewByteBufferPool(8, 16)

	bb := pool.Get()
	bb.Grow(100) // push capacity above maxThreshold
	pool.Put(bb)

	// A freshly allocated buffer from New should have the small default
	// capacity again, since the oversized one was discarded rather than
	// pooled.
	fresh := pool.Get()
	require.Less(t, fresh.Cap(), 100)
}

func TestPackageDefaultPool(t *testing.T) {
	bb := Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("x"))
	Put(bb)
}
