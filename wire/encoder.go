// Package wire implements the MessagePack encoder and decoder: the
// compact-width-selection writer and the iterative, limit-enforcing
// reader described in the specification's Encoder/Decoder components.
package wire

import (
	"math"

	"github.com/coreclef/msgpack/errs"
	"github.com/coreclef/msgpack/internal/options"
	"github.com/coreclef/msgpack/internal/pool"
	"github.com/coreclef/msgpack/ioadapter"
	"github.com/coreclef/msgpack/marker"
	"github.com/coreclef/msgpack/payload"
)

// EncoderOption configures an Encoder at construction time, in the same
// functional-options shape as mebo's blob.NumericEncoderOption.
type EncoderOption = options.Option[*encoderConfig]

type encoderConfig struct {
	bufferHint int
}

// WithBufferHint pre-sizes the encoder's internal buffer to at least n
// bytes, avoiding the amortized-growth reallocation steps when the caller
// already knows roughly how large the encoded value will be.
func WithBufferHint(n int) EncoderOption {
	return options.NoError(func(c *encoderConfig) { c.bufferHint = n })
}

// Encoder serializes a single Payload tree to a Sink per call to Encode.
// Encoder is not safe for concurrent use; see the specification's
// concurrency model (§5).
type Encoder[W ioadapter.Sink] struct {
	adapter ioadapter.Adapter[W, ioadapter.Source]
	buf     *pool.ByteBuffer
}

// NewEncoder creates an Encoder writing to sink.
func NewEncoder[W ioadapter.Sink](sink W, opts ...EncoderOption) *Encoder[W] {
	cfg := &encoderConfig{bufferHint: pool.DefaultBufferSize}
	_ = options.Apply(cfg, opts...)

	buf := pool.NewByteBuffer(cfg.bufferHint)

	return &Encoder[W]{
		adapter: ioadapter.Adapter[W, ioadapter.Source]{Sink: sink},
		buf:     buf,
	}
}

// Encode writes p to the sink as a single MessagePack value. There is no
// framing around the value: exactly the bytes described by the
// specification's wire format are written.
func (e *Encoder[W]) Encode(p payload.Payload) error {
	e.buf.Reset()

	if err := encodeValue(e.buf, p); err != nil {
		return err
	}

	return e.adapter.WriteFull(e.buf.Bytes())
}

// Marshal encodes p into a freshly allocated byte slice, without requiring
// a Sink. It is the building block behind the top-level Marshal
// convenience wrapper in the root package.
func Marshal(p payload.Payload) ([]byte, error) {
	buf := pool.Get()
	defer pool.Put(buf)

	if err := encodeValue(buf, p); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())
	return out, nil
}

func encodeValue(buf *pool.ByteBuffer, p payload.Payload) error {
	switch p.Kind() {
	case payload.KindNil:
		buf.MustWrite([]byte{marker.Nil})
		return nil
	case payload.KindBool:
		b, _ := p.AsBool()
		if b {
			buf.MustWrite([]byte{marker.True})
		} else {
			buf.MustWrite([]byte{marker.False})
		}
		return nil
	case payload.KindUint:
		v, _ := p.AsUint()
		encodeUint(buf, v)
		return nil
	case payload.KindInt:
		v, _ := p.AsInt()
		return encodeInt(buf, v)
	case payload.KindFloat:
		v, _ := p.AsFloat()
		encodeFloat(buf, v)
		return nil
	case payload.KindStr:
		b, _ := p.AsStr()
		return encodeStr(buf, b)
	case payload.KindBin:
		b, _ := p.AsBin()
		return encodeBin(buf, b)
	case payload.KindArr:
		return encodeArr(buf, p)
	case payload.KindMap:
		return encodeMap(buf, p)
	case payload.KindExt:
		typ, b, _ := p.AsExt()
		return encodeExt(buf, typ, b)
	case payload.KindTimestamp:
		sec, nsec := p.TimestampValue()
		return encodeTimestamp(buf, sec, nsec)
	default:
		return errs.ErrInvalidType
	}
}

func encodeUint(buf *pool.ByteBuffer, v uint64) {
	switch {
	case v <= 0x7F:
		buf.MustWrite([]byte{byte(v)})
	case v <= 0xFF:
		buf.MustWrite([]byte{marker.Uint8, byte(v)})
	case v <= 0xFFFF:
		buf.MustWrite([]byte{marker.Uint16, byte(v >> 8), byte(v)})
	case v <= 0xFFFF_FFFF:
		buf.MustWrite([]byte{marker.Uint32, byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
	default:
		buf.Grow(9)
		buf.MustWrite([]byte{marker.Uint64,
			byte(v >> 56), byte(v >> 48), byte(v >> 40), byte(v >> 32),
			byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)})
	}
}

func encodeInt(buf *pool.ByteBuffer, v int64) error {
	if v >= 0 {
		encodeUint(buf, uint64(v))
		return nil
	}

	switch {
	case v >= -32:
		buf.MustWrite([]byte{byte(v)})
	case v >= -128:
		buf.MustWrite([]byte{marker.Int8, byte(int8(v))})
	case v >= -32768:
		u := uint16(int16(v))
		buf.MustWrite([]byte{marker.Int16, byte(u >> 8), byte(u)})
	case v >= -2_147_483_648:
		u := uint32(int32(v))
		buf.MustWrite([]byte{marker.Int32, byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)})
	default:
		u := uint64(v)
		buf.Grow(9)
		buf.MustWrite([]byte{marker.Int64,
			byte(u >> 56), byte(u >> 48), byte(u >> 40), byte(u >> 32),
			byte(u >> 24), byte(u >> 16), byte(u >> 8), byte(u)})
	}
	return nil
}

// float32Representable reports whether v's magnitude falls within the
// range float32 can hold, per the specification's magnitude-based
// "narrow f64->f32 when representable" rule. This is a range test only:
// values within range still narrow through encodeFloat even when that
// narrowing is lossy (the specification's round-trip property explicitly
// tolerates it).
func float32Representable(v float64) bool {
	if v == 0 {
		return true
	}
	abs := math.Abs(v)
	return abs >= math.SmallestNonzeroFloat32 && abs <= math.MaxFloat32
}

func encodeFloat(buf *pool.ByteBuffer, v float64) {
	if float32Representable(v) {
		bits := math.Float32bits(float32(v))
		buf.MustWrite([]byte{marker.Float32, byte(bits >> 24), byte(bits >> 16), byte(bits >> 8), byte(bits)})
		return
	}

	bits := math.Float64bits(v)
	buf.Grow(9)
	buf.MustWrite([]byte{marker.Float64,
		byte(bits >> 56), byte(bits >> 48), byte(bits >> 40), byte(bits >> 32),
		byte(bits >> 24), byte(bits >> 16), byte(bits >> 8), byte(bits)})
}

func encodeStr(buf *pool.ByteBuffer, b []byte) error {
	l := len(b)
	switch {
	case l <= 31:
		buf.MustWrite([]byte{0xA0 | byte(l)})
	case l <= 0xFF:
		buf.MustWrite([]byte{marker.Str8, byte(l)})
	case l <= 0xFFFF:
		buf.MustWrite([]byte{marker.Str16, byte(l >> 8), byte(l)})
	case uint64(l) <= 0xFFFF_FFFF:
		buf.MustWrite([]byte{marker.Str32, byte(l >> 24), byte(l >> 16), byte(l >> 8), byte(l)})
	default:
		return errs.ErrStrDataLengthTooLong
	}
	buf.MustWrite(b)
	return nil
}

func encodeBin(buf *pool.ByteBuffer, b []byte) error {
	l := len(b)
	switch {
	case l <= 0xFF:
		buf.MustWrite([]byte{marker.Bin8, byte(l)})
	case l <= 0xFFFF:
		buf.MustWrite([]byte{marker.Bin16, byte(l >> 8), byte(l)})
	case uint64(l) <= 0xFFFF_FFFF:
		buf.MustWrite([]byte{marker.Bin32, byte(l >> 24), byte(l >> 16), byte(l >> 8), byte(l)})
	default:
		return errs.ErrBinDataLengthTooLong
	}
	buf.MustWrite(b)
	return nil
}

func encodeArr(buf *pool.ByteBuffer, p payload.Payload) error {
	items := p.ArrItems()
	l := len(items)
	switch {
	case l <= 15:
		buf.MustWrite([]byte{0x90 | byte(l)})
	case l <= 0xFFFF:
		buf.MustWrite([]byte{marker.Array16, byte(l >> 8), byte(l)})
	case uint64(l) <= 0xFFFF_FFFF:
		buf.MustWrite([]byte{marker.Array32, byte(l >> 24), byte(l >> 16), byte(l >> 8), byte(l)})
	default:
		return errs.ErrArrayLengthTooLong
	}

	for _, item := range items {
		if err := encodeValue(buf, item); err != nil {
			return err
		}
	}
	return nil
}

func encodeMap(buf *pool.ByteBuffer, p payload.Payload) error {
	l, _ := p.MapLen()
	switch {
	case l <= 15:
		buf.MustWrite([]byte{0x80 | byte(l)})
	case l <= 0xFFFF:
		buf.MustWrite([]byte{marker.Map16, byte(l >> 8), byte(l)})
	case uint64(l) <= 0xFFFF_FFFF:
		buf.MustWrite([]byte{marker.Map32, byte(l >> 24), byte(l >> 16), byte(l >> 8), byte(l)})
	default:
		return errs.ErrMapLengthTooLong
	}

	var encErr error
	for k, v := range p.MapEntries() {
		if err := encodeStr(buf, []byte(k)); err != nil {
			encErr = err
			break
		}
		if err := encodeValue(buf, v); err != nil {
			encErr = err
			break
		}
	}
	return encErr
}

func encodeExt(buf *pool.ByteBuffer, typ int8, data []byte) error {
	l := len(data)
	switch l {
	case 1:
		buf.MustWrite([]byte{marker.FixExt1, byte(typ)})
	case 2:
		buf.MustWrite([]byte{marker.FixExt2, byte(typ)})
	case 4:
		buf.MustWrite([]byte{marker.FixExt4, byte(typ)})
	case 8:
		buf.MustWrite([]byte{marker.FixExt8, byte(typ)})
	case 16:
		buf.MustWrite([]byte{marker.FixExt16, byte(typ)})
	default:
		switch {
		case l <= 0xFF:
			buf.MustWrite([]byte{marker.Ext8, byte(l), byte(typ)})
		case l <= 0xFFFF:
			buf.MustWrite([]byte{marker.Ext16, byte(l >> 8), byte(l), byte(typ)})
		case uint64(l) <= 0xFFFF_FFFF:
			buf.MustWrite([]byte{marker.Ext32, byte(l >> 24), byte(l >> 16), byte(l >> 8), byte(l), byte(typ)})
		default:
			return errs.ErrExtTypeLength
		}
	}
	buf.MustWrite(data)
	return nil
}
