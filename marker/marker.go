// Package marker provides the 256-entry MessagePack header-byte lookup
// table, the wire-format constant assignments, and the TypeClass enum the
// decoder dispatches on.
//
// The table is a fixed 256-entry array, filled once at package init and
// indexed by the first byte of an encoded value, in the same spirit as section.numericFlagTable-style
// bit-layout constants in the teacher, except here the byte IS the
// classification key rather than a bitfield to decode.
package marker

// TypeClass identifies the semantic category a marker byte belongs to.
type TypeClass uint8

const (
	ClassInvalid TypeClass = iota
	ClassPositiveFixInt
	ClassNegativeFixInt
	ClassNil
	ClassFalse
	ClassTrue
	ClassBin8
	ClassBin16
	ClassBin32
	ClassExt8
	ClassExt16
	ClassExt32
	ClassFloat32
	ClassFloat64
	ClassUint8
	ClassUint16
	ClassUint32
	ClassUint64
	ClassInt8
	ClassInt16
	ClassInt32
	ClassInt64
	ClassFixExt1
	ClassFixExt2
	ClassFixExt4
	ClassFixExt8
	ClassFixExt16
	ClassStr8
	ClassStr16
	ClassStr32
	ClassArray16
	ClassArray32
	ClassMap16
	ClassMap32
	ClassFixMap
	ClassFixArray
	ClassFixStr
)

func (c TypeClass) String() string {
	switch c {
	case ClassPositiveFixInt:
		return "PositiveFixInt"
	case ClassNegativeFixInt:
		return "NegativeFixInt"
	case ClassNil:
		return "Nil"
	case ClassFalse:
		return "False"
	case ClassTrue:
		return "True"
	case ClassBin8:
		return "Bin8"
	case ClassBin16:
		return "Bin16"
	case ClassBin32:
		return "Bin32"
	case ClassExt8:
		return "Ext8"
	case ClassExt16:
		return "Ext16"
	case ClassExt32:
		return "Ext32"
	case ClassFloat32:
		return "Float32"
	case ClassFloat64:
		return "Float64"
	case ClassUint8:
		return "Uint8"
	case ClassUint16:
		return "Uint16"
	case ClassUint32:
		return "Uint32"
	case ClassUint64:
		return "Uint64"
	case ClassInt8:
		return "Int8"
	case ClassInt16:
		return "Int16"
	case ClassInt32:
		return "Int32"
	case ClassInt64:
		return "Int64"
	case ClassFixExt1:
		return "FixExt1"
	case ClassFixExt2:
		return "FixExt2"
	case ClassFixExt4:
		return "FixExt4"
	case ClassFixExt8:
		return "FixExt8"
	case ClassFixExt16:
		return "FixExt16"
	case ClassStr8:
		return "Str8"
	case ClassStr16:
		return "Str16"
	case ClassStr32:
		return "Str32"
	case ClassArray16:
		return "Array16"
	case ClassArray32:
		return "Array32"
	case ClassMap16:
		return "Map16"
	case ClassMap32:
		return "Map32"
	case ClassFixMap:
		return "FixMap"
	case ClassFixArray:
		return "FixArray"
	case ClassFixStr:
		return "FixStr"
	default:
		return "Invalid"
	}
}

// Discrete marker byte assignments, per the MessagePack specification.
const (
	Nil      byte = 0xC0
	Unused   byte = 0xC1 // reserved; decoder treats it as Nil
	False    byte = 0xC2
	True     byte = 0xC3
	Bin8     byte = 0xC4
	Bin16    byte = 0xC5
	Bin32    byte = 0xC6
	Ext8     byte = 0xC7
	Ext16    byte = 0xC8
	Ext32    byte = 0xC9
	Float32  byte = 0xCA
	Float64  byte = 0xCB
	Uint8    byte = 0xCC
	Uint16   byte = 0xCD
	Uint32   byte = 0xCE
	Uint64   byte = 0xCF
	Int8     byte = 0xD0
	Int16    byte = 0xD1
	Int32    byte = 0xD2
	Int64    byte = 0xD3
	FixExt1  byte = 0xD4
	FixExt2  byte = 0xD5
	FixExt4  byte = 0xD6
	FixExt8  byte = 0xD7
	FixExt16 byte = 0xD8
	Str8     byte = 0xD9
	Str16    byte = 0xDA
	Str32    byte = 0xDB
	Array16  byte = 0xDC
	Array32  byte = 0xDD
	Map16    byte = 0xDE
	Map32    byte = 0xDF
)

// FixStrMask / FixArrayMask / FixMapMask extract the packed length from a
// fixed-range marker byte.
const (
	FixStrMask   = 0x1F
	FixArrayMask = 0x0F
	FixMapMask   = 0x0F
)

// TimestampExtType is the MessagePack-reserved extension type for the
// timestamp extension (ext type -1, encoded as the byte 0xFF / int8(-1)).
const TimestampExtType int8 = -1

// table is the 256-entry classification lookup, built once at init time by
// classify() so the hot decode path is a single branch-free
// array index instead of a chain of range comparisons.
var table [256]TypeClass

func classify(b byte) TypeClass {
	switch {
	case b <= 0x7F:
		return ClassPositiveFixInt
	case b >= 0x80 && b <= 0x8F:
		return ClassFixMap
	case b >= 0x90 && b <= 0x9F:
		return ClassFixArray
	case b >= 0xA0 && b <= 0xBF:
		return ClassFixStr
	case b >= 0xE0:
		return ClassNegativeFixInt
	}

	switch b {
	case Nil, Unused:
		return ClassNil
	case False:
		return ClassFalse
	case True:
		return ClassTrue
	case Bin8:
		return ClassBin8
	case Bin16:
		return ClassBin16
	case Bin32:
		return ClassBin32
	case Ext8:
		return ClassExt8
	case Ext16:
		return ClassExt16
	case Ext32:
		return ClassExt32
	case Float32:
		return ClassFloat32
	case Float64:
		return ClassFloat64
	case Uint8:
		return ClassUint8
	case Uint16:
		return ClassUint16
	case Uint32:
		return ClassUint32
	case Uint64:
		return ClassUint64
	case Int8:
		return ClassInt8
	case Int16:
		return ClassInt16
	case Int32:
		return ClassInt32
	case Int64:
		return ClassInt64
	case FixExt1:
		return ClassFixExt1
	case FixExt2:
		return ClassFixExt2
	case FixExt4:
		return ClassFixExt4
	case FixExt8:
		return ClassFixExt8
	case FixExt16:
		return ClassFixExt16
	case Str8:
		return ClassStr8
	case Str16:
		return ClassStr16
	case Str32:
		return ClassStr32
	case Array16:
		return ClassArray16
	case Array32:
		return ClassArray32
	case Map16:
		return ClassMap16
	case Map32:
		return ClassMap32
	default:
		return ClassInvalid
	}
}

func init() {
	for i := range table {
		table[i] = classify(byte(i))
	}
}

// Classify returns the TypeClass for a given marker byte via O(1) table
// lookup.
func Classify(b byte) TypeClass {
	return table[b]
}

// FixStrLen extracts the packed length from a fixstr marker byte.
func FixStrLen(b byte) int { return int(b & FixStrMask) }

// FixArrayLen extracts the packed length from a fixarray marker byte.
func FixArrayLen(b byte) int { return int(b & FixArrayMask) }

// FixMapLen extracts the packed count from a fixmap marker byte.
func FixMapLen(b byte) int { return int(b & FixMapMask) }

// PositiveFixIntValue extracts the value from a positive fixint marker.
func PositiveFixIntValue(b byte) uint8 { return b }

// NegativeFixIntValue extracts the value from a negative fixint marker.
func NegativeFixIntValue(b byte) int8 { return int8(b) }
