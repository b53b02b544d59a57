// Package payload implements Payload, the dynamic, tagged-variant value
// model every MessagePack value decodes into (and every value the encoder
// walks), per the eleven arms in the specification's data model.
//
// The zero value of Payload is the nil arm, which lets array construction
// zero-fill a backing slice and get a tree of well-formed nil values for
// free, the same "partial-fill safe" property the specification requires
// of the array constructor.
package payload

// Kind identifies which of the eleven arms a Payload currently holds.
type Kind uint8

const (
	KindNil Kind = iota // zero value; also what a freed/zero-filled slot holds
	KindBool
	KindInt
	KindUint
	KindFloat
	KindStr
	KindBin
	KindArr
	KindMap
	KindExt
	KindTimestamp
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindStr:
		return "str"
	case KindBin:
		return "bin"
	case KindArr:
		return "arr"
	case KindMap:
		return "map"
	case KindExt:
		return "ext"
	case KindTimestamp:
		return "timestamp"
	default:
		return "unknown"
	}
}

// Payload is the tagged variant covering every MessagePack value category.
// Exactly one arm is meaningful at a time, selected by Kind.
//
// str/bin/ext own a private copy of their byte payload (buf); arr and map
// own their children. Free walks and releases an entire tree iteratively;
// see free.go.
type Payload struct {
	kind Kind

	b bool
	i int64
	u uint64
	f float64

	buf     []byte // str / bin / ext data
	extType int8   // meaningful only when kind == KindExt

	arr []Payload
	m   *hashMap

	tsSec  int64
	tsNsec uint32
}

// Kind reports which arm the Payload currently holds.
func (p Payload) Kind() Kind { return p.kind }

// Nil returns the nil arm.
func Nil() Payload { return Payload{kind: KindNil} }

// Bool returns the bool arm holding b.
func Bool(b bool) Payload { return Payload{kind: KindBool, b: b} }

// Int returns the signed-int arm holding v.
func Int(v int64) Payload { return Payload{kind: KindInt, i: v} }

// Uint returns the unsigned-int arm holding v.
func Uint(v uint64) Payload { return Payload{kind: KindUint, u: v} }

// Float returns the float arm holding v.
func Float(v float64) Payload { return Payload{kind: KindFloat, f: v} }

// Str returns the str arm, copying b so later mutation of the caller's
// slice cannot alias the Payload's storage.
func Str(b []byte) Payload {
	return Payload{kind: KindStr, buf: cloneBytes(b)}
}

// Bin returns the bin arm, copying b.
func Bin(b []byte) Payload {
	return Payload{kind: KindBin, buf: cloneBytes(b)}
}

// Ext returns the ext arm with the given extension type and data, copying
// data.
func Ext(extType int8, data []byte) Payload {
	return Payload{kind: KindExt, extType: extType, buf: cloneBytes(data)}
}

// Array returns an arr arm with n elements, every slot initialized to the
// nil arm so the tree is safe to walk (and Free) even before every slot is
// filled in by SetArrElement.
func Array(n int) Payload {
	return Payload{kind: KindArr, arr: make([]Payload, n)}
}

// Map returns an empty map arm.
func Map() Payload {
	return Payload{kind: KindMap, m: newHashMap()}
}

// Timestamp returns the timestamp arm holding (seconds, nanoseconds).
// Construction never fails; nanoseconds outside [0, 999999999] is only
// rejected at encode time (see wire.Encoder), matching the specification's
// "values outside fail to encode" wording.
func Timestamp(seconds int64, nanoseconds uint32) Payload {
	return Payload{kind: KindTimestamp, tsSec: seconds, tsNsec: nanoseconds}
}

// TimestampFromSeconds returns the timestamp arm with zero nanoseconds.
func TimestampFromSeconds(seconds int64) Payload {
	return Timestamp(seconds, 0)
}

// ExtType returns the extension type byte of an ext arm (undefined for
// other arms).
func (p Payload) ExtType() int8 { return p.extType }

// TimestampValue returns the (seconds, nanoseconds) pair of a timestamp arm
// (undefined for other arms).
func (p Payload) TimestampValue() (seconds int64, nanoseconds uint32) {
	return p.tsSec, p.tsNsec
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
