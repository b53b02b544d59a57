package payload

import "bytes"

// Equal reports whether a and b are structurally equal: same arm, same
// scalar value, same byte sequences for str/bin/ext, same array ordering,
// and the same multiset of (key, value) map pairs regardless of the maps'
// internal iteration order. It underlies the round-trip property tests
// required by the specification (decode(encode(p)) == p).
func Equal(a, b Payload) bool {
	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNil:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i == b.i
	case KindUint:
		return a.u == b.u
	case KindFloat:
		return a.f == b.f
	case KindStr, KindBin:
		return bytes.Equal(a.buf, b.buf)
	case KindExt:
		return a.extType == b.extType && bytes.Equal(a.buf, b.buf)
	case KindTimestamp:
		return a.tsSec == b.tsSec && a.tsNsec == b.tsNsec
	case KindArr:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindMap:
		an, bn := a.m.len(), b.m.len()
		if an != bn {
			return false
		}
		for _, e := range a.m.entries {
			bv, ok := b.m.get(e.key)
			if !ok || !Equal(e.value, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
