package payload

import (
	"fmt"
	"math"

	"github.com/coreclef/msgpack/errs"
)

// invalidType builds the ErrInvalidType error for a strict accessor called
// against the wrong arm.
func invalidType(want string, got Kind) error {
	return fmt.Errorf("%w: expected %s, got %s", errs.ErrInvalidType, want, got)
}

// AsInt returns the int arm's value. Fails unless Kind() == KindInt.
func (p Payload) AsInt() (int64, error) {
	if p.kind != KindInt {
		return 0, invalidType("int", p.kind)
	}
	return p.i, nil
}

// AsUint returns the uint arm's value. Fails unless Kind() == KindUint.
func (p Payload) AsUint() (uint64, error) {
	if p.kind != KindUint {
		return 0, invalidType("uint", p.kind)
	}
	return p.u, nil
}

// AsFloat returns the float arm's value. Fails unless Kind() == KindFloat.
func (p Payload) AsFloat() (float64, error) {
	if p.kind != KindFloat {
		return 0, invalidType("float", p.kind)
	}
	return p.f, nil
}

// AsBool returns the bool arm's value. Fails unless Kind() == KindBool.
func (p Payload) AsBool() (bool, error) {
	if p.kind != KindBool {
		return false, invalidType("bool", p.kind)
	}
	return p.b, nil
}

// AsStr returns the str arm's bytes. Fails unless Kind() == KindStr.
// The returned slice must not be modified by the caller.
func (p Payload) AsStr() ([]byte, error) {
	if p.kind != KindStr {
		return nil, invalidType("str", p.kind)
	}
	return p.buf, nil
}

// AsBin returns the bin arm's bytes. Fails unless Kind() == KindBin.
// The returned slice must not be modified by the caller.
func (p Payload) AsBin() ([]byte, error) {
	if p.kind != KindBin {
		return nil, invalidType("bin", p.kind)
	}
	return p.buf, nil
}

// AsExt returns the ext arm's (type, bytes). Fails unless Kind() == KindExt.
func (p Payload) AsExt() (int8, []byte, error) {
	if p.kind != KindExt {
		return 0, nil, invalidType("ext", p.kind)
	}
	return p.extType, p.buf, nil
}

// GetInt is the lenient signed-integer accessor: it converts from the uint
// arm when the value fits in an int64, in addition to reading the int arm
// directly.
func (p Payload) GetInt() (int64, error) {
	switch p.kind {
	case KindInt:
		return p.i, nil
	case KindUint:
		if p.u > math.MaxInt64 {
			return 0, fmt.Errorf("%w: uint value %d overflows int64", errs.ErrInvalidType, p.u)
		}
		return int64(p.u), nil
	default:
		return 0, invalidType("int or uint", p.kind)
	}
}

// GetUint is the lenient unsigned-integer accessor: it converts from the
// int arm when the value is non-negative, in addition to reading the uint
// arm directly.
func (p Payload) GetUint() (uint64, error) {
	switch p.kind {
	case KindUint:
		return p.u, nil
	case KindInt:
		if p.i < 0 {
			return 0, fmt.Errorf("%w: negative int %d has no uint representation", errs.ErrInvalidType, p.i)
		}
		return uint64(p.i), nil
	default:
		return 0, invalidType("int or uint", p.kind)
	}
}

// GetArrElement returns the element at index i of an arr arm.
func (p Payload) GetArrElement(i int) (Payload, error) {
	if p.kind != KindArr {
		return Payload{}, errs.ErrNotArray
	}
	if i < 0 || i >= len(p.arr) {
		return Payload{}, fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, i, len(p.arr))
	}
	return p.arr[i], nil
}

// GetArrLen returns the number of elements of an arr arm.
func (p Payload) GetArrLen() (int, error) {
	if p.kind != KindArr {
		return 0, errs.ErrNotArray
	}
	return len(p.arr), nil
}

// MapGet looks up key in a map arm. ok is false when the key is absent.
func (p Payload) MapGet(key string) (value Payload, ok bool, err error) {
	if p.kind != KindMap {
		return Payload{}, false, errs.ErrNotMap
	}
	v, found := p.m.get(key)
	return v, found, nil
}

// MapLen returns the number of entries of a map arm.
func (p Payload) MapLen() (int, error) {
	if p.kind != KindMap {
		return 0, errs.ErrNotMap
	}
	return p.m.len(), nil
}

// IsNil reports whether the Payload is the nil arm.
func (p Payload) IsNil() bool { return p.kind == KindNil }

// IsNumber reports whether the Payload is int, uint, or float.
func (p Payload) IsNumber() bool {
	return p.kind == KindInt || p.kind == KindUint || p.kind == KindFloat
}

// IsInteger reports whether the Payload is int or uint.
func (p Payload) IsInteger() bool {
	return p.kind == KindInt || p.kind == KindUint
}
