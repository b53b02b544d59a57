package payload

import (
	"fmt"

	"github.com/coreclef/msgpack/errs"
)

// SetArrElement replaces the element at index i of an arr arm.
//
// The specification leaves the prior occupant's disposal to the caller (or,
// here, to the garbage collector: Go has no manual free, so there is
// nothing for the caller to do — overwriting the slot is always safe and
// the old subtree becomes reclaimable immediately). See DESIGN.md for the
// corresponding Open Question decision.
//
// Unlike the specification's "undefined at this layer" stance on an
// out-of-range index, this implementation returns errs.ErrIndexOutOfRange:
// idiomatic Go favors a returned error over undefined behavior.
func (p *Payload) SetArrElement(i int, v Payload) error {
	if p.kind != KindArr {
		return errs.ErrNotArray
	}
	if i < 0 || i >= len(p.arr) {
		return fmt.Errorf("%w: index %d, length %d", errs.ErrIndexOutOfRange, i, len(p.arr))
	}
	p.arr[i] = v
	return nil
}

// MapPut inserts key/value into a map arm, or replaces the value in place
// if key is already present (the existing key is retained either way —
// Go's immutable strings make "retain the existing owned key" free).
func (p *Payload) MapPut(key string, v Payload) error {
	if p.kind != KindMap {
		return errs.ErrNotMap
	}
	p.m.put(key, v)
	return nil
}
