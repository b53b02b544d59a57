// Package pool provides a pooled, growable byte buffer used by the encoder
// and by wire.Marshal to accumulate output, adapted from mebo's
// internal/pool.ByteBufferPool.
package pool

import "sync"

const (
	// DefaultBufferSize is the initial capacity of a buffer obtained from
	// the default pool; sized for a handful of small-to-medium encoded
	// values without triggering an immediate reallocation.
	DefaultBufferSize = 4 * 1024 // 4KiB

	// MaxBufferThreshold is the capacity above which a returned buffer is
	// discarded instead of pooled, so one oversized str/bin/ext payload
	// doesn't pin a large allocation in the pool indefinitely.
	MaxBufferThreshold = 1 * 1024 * 1024 // 1MiB
)

// ByteBuffer is a growable []byte wrapper whose growth strategy amortizes
// repeated small writes.
type ByteBuffer struct {
	B []byte
}

// NewByteBuffer creates a new ByteBuffer with the given initial capacity.
func NewByteBuffer(initialCap int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, initialCap)}
}

// Bytes returns the underlying byte slice. The returned slice is valid
// until the next Write/Grow/Reset call.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the number of bytes written so far.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Cap returns the buffer's current capacity.
func (bb *ByteBuffer) Cap() int { return cap(bb.B) }

// Reset empties the buffer while retaining its backing array for reuse.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Grow ensures the buffer can accept requiredBytes more bytes without a
// further reallocation.
//
// Growth strategy, as in the teacher: small buffers grow by a fixed chunk
// to minimize reallocation count; large buffers grow by a quarter of their
// current capacity to bound copy overhead.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DefaultBufferSize
	if cap(bb.B) > 4*DefaultBufferSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// MustWrite appends data to the buffer, growing it first if needed.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)
}

// Write implements io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.MustWrite(data)
	return len(data), nil
}

// ByteBufferPool is a sync.Pool of ByteBuffers that discards oversized
// buffers instead of retaining them, to bound steady-state memory use.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool whose buffers start at defaultSize and
// are discarded on Put if they grew past maxThreshold.
func NewByteBufferPool(defaultSize, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any { return NewByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a reset ByteBuffer from the pool.
func (p *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool, discarding it instead if its
// capacity exceeds maxThreshold.
func (p *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}
	bb.Reset()
	p.pool.Put(bb)
}

var defaultPool = NewByteBufferPool(DefaultBufferSize, MaxBufferThreshold)

// Get retrieves a ByteBuffer from the package-default pool.
func Get() *ByteBuffer { return defaultPool.Get() }

// Put returns a ByteBuffer to the package-default pool.
func Put(bb *ByteBuffer) { defaultPool.Put(bb) }
