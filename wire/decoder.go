package wire

import (
	"bytes"
	"io"
	"math"

	"github.com/coreclef/msgpack/errs"
	"github.com/coreclef/msgpack/internal/options"
	"github.com/coreclef/msgpack/ioadapter"
	"github.com/coreclef/msgpack/limits"
	"github.com/coreclef/msgpack/marker"
	"github.com/coreclef/msgpack/payload"
)

// DecoderOption configures a Decoder at construction time.
type DecoderOption = options.Option[*decoderConfig]

type decoderConfig struct {
	limits limits.ParseLimits
}

// WithParseLimits overrides the default resource ceilings a Decoder
// enforces while parsing.
func WithParseLimits(l limits.ParseLimits) DecoderOption {
	return options.NoError(func(c *decoderConfig) { c.limits = l })
}

// Decoder parses a single MessagePack value per call to Decode, using an
// explicit heap-allocated work stack instead of host-stack recursion, so
// nesting depth is bounded by ParseLimits.MaxDepth rather than by the Go
// runtime's goroutine stack.
type Decoder[R ioadapter.Source] struct {
	adapter ioadapter.Adapter[io.Writer, R]
	limits  limits.ParseLimits
	offset  int64
}

// NewDecoder creates a Decoder reading from source.
func NewDecoder[R ioadapter.Source](source R, opts ...DecoderOption) *Decoder[R] {
	cfg := &decoderConfig{limits: limits.Default()}
	_ = options.Apply(cfg, opts...)

	return &Decoder[R]{
		adapter: ioadapter.New[io.Writer, R](nil, source),
		limits:  cfg.limits,
	}
}

// Unmarshal decodes a single MessagePack value from data.
func Unmarshal(data []byte, opts ...DecoderOption) (payload.Payload, error) {
	dec := NewDecoder(bytes.NewReader(data), opts...)
	return dec.Decode()
}

// frame is one level of in-progress array/map construction on the
// decoder's explicit work stack.
type frame struct {
	isMap   bool
	out     payload.Payload
	total   int
	idx     int
	key     string
	haveKey bool
}

// Decode reads one MessagePack value from the source.
//
// The algorithm is the standard iterative tree-builder: an outer loop
// reads the next leaf value (a scalar, or the header of a new array/map,
// which pushes a frame and loops back to read that composite's first
// child); an inner loop attaches a completed value to the frame on top of
// the stack and, when a frame is thereby completed, pops it and treats
// the completed array/map itself as the next value to attach one level
// up. The loop ends when a completed value has no frame left to attach
// to, which is the decoded result.
func (d *Decoder[R]) Decode() (payload.Payload, error) {
	var stack []*frame

	for {
		composite, isMap, count, scalar, err := d.readHeader(len(stack))
		if err != nil {
			freeFrames(stack)
			return payload.Nil(), err
		}

		var produced payload.Payload
		if composite {
			if count == 0 {
				if isMap {
					produced = payload.Map()
				} else {
					produced = payload.Array(0)
				}
			} else {
				f := &frame{isMap: isMap, total: count}
				if isMap {
					f.out = payload.Map()
				} else {
					f.out = payload.Array(count)
				}
				stack = append(stack, f)
				continue
			}
		} else {
			produced = scalar
		}

		for {
			if len(stack) == 0 {
				return produced, nil
			}

			top := stack[len(stack)-1]
			if top.isMap {
				if !top.haveKey {
					key, kerr := produced.AsStr()
					if kerr != nil {
						freeFrames(stack)
						return payload.Nil(), errs.Wrap(errs.ErrInvalidType, d.offset)
					}
					top.key = string(key)
					top.haveKey = true
					break
				}

				_ = top.out.MapPut(top.key, produced)
				top.haveKey = false
				top.idx++
			} else {
				_ = top.out.SetArrElement(top.idx, produced)
				top.idx++
			}

			if top.idx == top.total {
				stack = stack[:len(stack)-1]
				produced = top.out
				continue
			}
			break
		}
	}
}

func freeFrames(stack []*frame) {
	for _, f := range stack {
		f.out.Free()
	}
}

// readHeader reads the next value's marker and, for scalars, its full
// payload. For array/map markers it returns only the element/entry count;
// the caller is responsible for pushing a work-stack frame and reading
// the children itself.
func (d *Decoder[R]) readHeader(depth int) (composite, isMap bool, count int, scalar payload.Payload, err error) {
	var mbuf [1]byte
	if err := d.adapter.ReadFull(mbuf[:]); err != nil {
		return false, false, 0, payload.Nil(), errs.Wrap(errs.ErrTypeMarkerReading, d.offset)
	}
	b := mbuf[0]
	d.offset++

	class := marker.Classify(b)

	switch class {
	case marker.ClassPositiveFixInt:
		return false, false, 0, payload.Uint(uint64(marker.PositiveFixIntValue(b))), nil
	case marker.ClassNegativeFixInt:
		return false, false, 0, payload.Int(int64(marker.NegativeFixIntValue(b))), nil
	case marker.ClassNil:
		return false, false, 0, payload.Nil(), nil
	case marker.ClassFalse:
		return false, false, 0, payload.Bool(false), nil
	case marker.ClassTrue:
		return false, false, 0, payload.Bool(true), nil

	case marker.ClassUint8:
		v, err := d.readUint(1)
		return false, false, 0, payload.Uint(v), err
	case marker.ClassUint16:
		v, err := d.readUint(2)
		return false, false, 0, payload.Uint(v), err
	case marker.ClassUint32:
		v, err := d.readUint(4)
		return false, false, 0, payload.Uint(v), err
	case marker.ClassUint64:
		v, err := d.readUint(8)
		return false, false, 0, payload.Uint(v), err

	case marker.ClassInt8:
		v, err := d.readUint(1)
		return false, false, 0, payload.Int(int64(int8(v))), err
	case marker.ClassInt16:
		v, err := d.readUint(2)
		return false, false, 0, payload.Int(int64(int16(v))), err
	case marker.ClassInt32:
		v, err := d.readUint(4)
		return false, false, 0, payload.Int(int64(int32(v))), err
	case marker.ClassInt64:
		v, err := d.readUint(8)
		return false, false, 0, payload.Int(int64(v)), err

	case marker.ClassFloat32:
		v, err := d.readUint(4)
		return false, false, 0, payload.Float(float64(math.Float32frombits(uint32(v)))), err
	case marker.ClassFloat64:
		v, err := d.readUint(8)
		return false, false, 0, payload.Float(math.Float64frombits(v)), err

	case marker.ClassFixStr:
		p, err := d.readStr(marker.FixStrLen(b))
		return false, false, 0, p, err
	case marker.ClassStr8:
		n, err := d.readLen(1)
		if err != nil {
			return false, false, 0, payload.Nil(), err
		}
		p, err := d.readStr(n)
		return false, false, 0, p, err
	case marker.ClassStr16:
		n, err := d.readLen(2)
		if err != nil {
			return false, false, 0, payload.Nil(), err
		}
		p, err := d.readStr(n)
		return false, false, 0, p, err
	case marker.ClassStr32:
		n, err := d.readLen(4)
		if err != nil {
			return false, false, 0, payload.Nil(), err
		}
		p, err := d.readStr(n)
		return false, false, 0, p, err

	case marker.ClassBin8:
		n, err := d.readLen(1)
		if err != nil {
			return false, false, 0, payload.Nil(), err
		}
		p, err := d.readBin(n)
		return false, false, 0, p, err
	case marker.ClassBin16:
		n, err := d.readLen(2)
		if err != nil {
			return false, false, 0, payload.Nil(), err
		}
		p, err := d.readBin(n)
		return false, false, 0, p, err
	case marker.ClassBin32:
		n, err := d.readLen(4)
		if err != nil {
			return false, false, 0, payload.Nil(), err
		}
		p, err := d.readBin(n)
		return false, false, 0, p, err

	case marker.ClassFixArray:
		n := marker.FixArrayLen(b)
		if err := d.checkComposite(n, depth, d.limits.MaxArrayLength, errs.ErrArrayTooLarge); err != nil {
			return false, false, 0, payload.Nil(), err
		}
		return true, false, n, payload.Nil(), nil
	case marker.ClassArray16:
		n, err := d.readLen(2)
		if err != nil {
			return false, false, 0, payload.Nil(), err
		}
		if err := d.checkComposite(n, depth, d.limits.MaxArrayLength, errs.ErrArrayTooLarge); err != nil {
			return false, false, 0, payload.Nil(), err
		}
		return true, false, n, payload.Nil(), nil
	case marker.ClassArray32:
		n, err := d.readLen(4)
		if err != nil {
			return false, false, 0, payload.Nil(), err
		}
		if err := d.checkComposite(n, depth, d.limits.MaxArrayLength, errs.ErrArrayTooLarge); err != nil {
			return false, false, 0, payload.Nil(), err
		}
		return true, false, n, payload.Nil(), nil

	case marker.ClassFixMap:
		n := marker.FixMapLen(b)
		if err := d.checkComposite(n, depth, d.limits.MaxMapSize, errs.ErrMapTooLarge); err != nil {
			return false, false, 0, payload.Nil(), err
		}
		return true, true, n, payload.Nil(), nil
	case marker.ClassMap16:
		n, err := d.readLen(2)
		if err != nil {
			return false, false, 0, payload.Nil(), err
		}
		if err := d.checkComposite(n, depth, d.limits.MaxMapSize, errs.ErrMapTooLarge); err != nil {
			return false, false, 0, payload.Nil(), err
		}
		return true, true, n, payload.Nil(), nil
	case marker.ClassMap32:
		n, err := d.readLen(4)
		if err != nil {
			return false, false, 0, payload.Nil(), err
		}
		if err := d.checkComposite(n, depth, d.limits.MaxMapSize, errs.ErrMapTooLarge); err != nil {
			return false, false, 0, payload.Nil(), err
		}
		return true, true, n, payload.Nil(), nil

	case marker.ClassFixExt1:
		p, err := d.readExt(1)
		return false, false, 0, p, err
	case marker.ClassFixExt2:
		p, err := d.readExt(2)
		return false, false, 0, p, err
	case marker.ClassFixExt4:
		p, err := d.readExt(4)
		return false, false, 0, p, err
	case marker.ClassFixExt8:
		p, err := d.readExt(8)
		return false, false, 0, p, err
	case marker.ClassFixExt16:
		p, err := d.readExt(16)
		return false, false, 0, p, err

	case marker.ClassExt8:
		n, err := d.readLen(1)
		if err != nil {
			return false, false, 0, payload.Nil(), err
		}
		p, err := d.readExt(n)
		return false, false, 0, p, err
	case marker.ClassExt16:
		n, err := d.readLen(2)
		if err != nil {
			return false, false, 0, payload.Nil(), err
		}
		p, err := d.readExt(n)
		return false, false, 0, p, err
	case marker.ClassExt32:
		n, err := d.readLen(4)
		if err != nil {
			return false, false, 0, payload.Nil(), err
		}
		p, err := d.readExt(n)
		return false, false, 0, p, err

	default:
		return false, false, 0, payload.Nil(), errs.Wrap(errs.ErrInvalidType, d.offset)
	}
}

// checkComposite enforces the nesting-depth and element/entry-count limits
// before the caller allocates an array or map of the declared size.
func (d *Decoder[R]) checkComposite(n, depth, max int, lenErr error) error {
	if n > max {
		return errs.Wrapf(lenErr, d.offset, "declared length %d exceeds limit %d", n, max)
	}
	if n > 0 && depth >= d.limits.MaxDepth {
		return errs.Wrap(errs.ErrMaxDepthExceeded, d.offset)
	}
	return nil
}

func (d *Decoder[R]) readLen(width int) (int, error) {
	v, err := d.readUint(width)
	if err != nil {
		return 0, errs.Wrap(errs.ErrLengthReading, d.offset)
	}
	return int(v), nil
}

func (d *Decoder[R]) readUint(width int) (uint64, error) {
	var buf [8]byte
	if err := d.adapter.ReadFull(buf[:width]); err != nil {
		return 0, errs.Wrap(errs.ErrDataReading, d.offset)
	}
	d.offset += int64(width)

	var v uint64
	for i := 0; i < width; i++ {
		v = v<<8 | uint64(buf[i])
	}
	return v, nil
}

func (d *Decoder[R]) readStr(n int) (payload.Payload, error) {
	if n > d.limits.MaxStringLength {
		return payload.Nil(), errs.Wrapf(errs.ErrStringTooLong, d.offset, "declared length %d exceeds limit %d", n, d.limits.MaxStringLength)
	}
	data, err := d.readRaw(n)
	if err != nil {
		return payload.Nil(), err
	}
	return payload.Str(data), nil
}

func (d *Decoder[R]) readBin(n int) (payload.Payload, error) {
	if n > d.limits.MaxBinLength {
		return payload.Nil(), errs.Wrapf(errs.ErrBinTooLong, d.offset, "declared length %d exceeds limit %d", n, d.limits.MaxBinLength)
	}
	data, err := d.readRaw(n)
	if err != nil {
		return payload.Nil(), err
	}
	return payload.Bin(data), nil
}

// readExt reads an ext type byte followed by n data bytes, and recognizes
// the three timestamp physical shapes (fixext4, fixext8, ext8 length 12
// tagged with extension type -1) by dispatching on (n, type) rather than
// duplicating the marker-byte switch.
func (d *Decoder[R]) readExt(n int) (payload.Payload, error) {
	if n > d.limits.MaxExtLength {
		return payload.Nil(), errs.Wrapf(errs.ErrExtDataTooLarge, d.offset, "declared length %d exceeds limit %d", n, d.limits.MaxExtLength)
	}

	var tbuf [1]byte
	if err := d.adapter.ReadFull(tbuf[:]); err != nil {
		return payload.Nil(), errs.Wrap(errs.ErrExtTypeReading, d.offset)
	}
	d.offset++
	extType := int8(tbuf[0])

	data, err := d.readRaw(n)
	if err != nil {
		return payload.Nil(), err
	}

	if extType == marker.TimestampExtType {
		switch n {
		case 4:
			sec, nsec := decodeTimestamp32(data)
			return payload.Timestamp(sec, nsec), nil
		case 8:
			sec, nsec := decodeTimestamp64(data)
			return payload.Timestamp(sec, nsec), nil
		case 12:
			sec, nsec := decodeTimestamp96(data)
			return payload.Timestamp(sec, nsec), nil
		}
	}

	return payload.Ext(extType, data), nil
}

func (d *Decoder[R]) readRaw(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if err := d.adapter.ReadFull(buf); err != nil {
		return nil, errs.Wrap(errs.ErrDataReading, d.offset)
	}
	d.offset += int64(n)
	return buf, nil
}
