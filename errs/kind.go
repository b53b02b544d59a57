package errs

// Kind enumerates the error taxonomy from the codec's wire-format contract,
// following the same "typed enum with a String method" shape as mebo's
// format.EncodingType / format.CompressionType.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindStrDataLengthTooLong
	KindBinDataLengthTooLong
	KindArrayLengthTooLong
	KindTupleLengthTooLong
	KindMapLengthTooLong
	KindInputValueTooLarge
	KindFixedValueWriting
	KindTypeMarkerReading
	KindTypeMarkerWriting
	KindDataReading
	KindDataWriting
	KindExtTypeReading
	KindExtTypeWriting
	KindExtTypeLength
	KindInvalidType
	KindLengthReading
	KindLengthWriting
	KindInternal
	KindMaxDepthExceeded
	KindArrayTooLarge
	KindMapTooLarge
	KindStringTooLong
	KindExtDataTooLarge
)

func (k Kind) String() string {
	switch k {
	case KindStrDataLengthTooLong:
		return "StrDataLengthTooLong"
	case KindBinDataLengthTooLong:
		return "BinDataLengthTooLong"
	case KindArrayLengthTooLong:
		return "ArrayLengthTooLong"
	case KindTupleLengthTooLong:
		return "TupleLengthTooLong"
	case KindMapLengthTooLong:
		return "MapLengthTooLong"
	case KindInputValueTooLarge:
		return "InputValueTooLarge"
	case KindFixedValueWriting:
		return "FixedValueWriting"
	case KindTypeMarkerReading:
		return "TypeMarkerReading"
	case KindTypeMarkerWriting:
		return "TypeMarkerWriting"
	case KindDataReading:
		return "DataReading"
	case KindDataWriting:
		return "DataWriting"
	case KindExtTypeReading:
		return "ExtTypeReading"
	case KindExtTypeWriting:
		return "ExtTypeWriting"
	case KindExtTypeLength:
		return "ExtTypeLength"
	case KindInvalidType:
		return "InvalidType"
	case KindLengthReading:
		return "LengthReading"
	case KindLengthWriting:
		return "LengthWriting"
	case KindInternal:
		return "Internal"
	case KindMaxDepthExceeded:
		return "MaxDepthExceeded"
	case KindArrayTooLarge:
		return "ArrayTooLarge"
	case KindMapTooLarge:
		return "MapTooLarge"
	case KindStringTooLong:
		return "StringTooLong"
	case KindExtDataTooLarge:
		return "ExtDataTooLarge"
	default:
		return "Unknown"
	}
}

// sentinelKind maps each codec sentinel to its Kind, used by CodecError to
// carry a dispatchable kind alongside an errors.Is-compatible sentinel. The
// decode-side ErrBinTooLong shares KindBinDataLengthTooLong with the
// encode-side ErrBinDataLengthTooLong.
var sentinelKind = map[error]Kind{
	ErrStrDataLengthTooLong: KindStrDataLengthTooLong,
	ErrBinDataLengthTooLong: KindBinDataLengthTooLong,
	ErrArrayLengthTooLong:   KindArrayLengthTooLong,
	ErrTupleLengthTooLong:   KindTupleLengthTooLong,
	ErrMapLengthTooLong:     KindMapLengthTooLong,
	ErrInputValueTooLarge:   KindInputValueTooLarge,
	ErrFixedValueWriting:    KindFixedValueWriting,
	ErrTypeMarkerReading:    KindTypeMarkerReading,
	ErrTypeMarkerWriting:    KindTypeMarkerWriting,
	ErrDataReading:          KindDataReading,
	ErrDataWriting:          KindDataWriting,
	ErrExtTypeReading:       KindExtTypeReading,
	ErrExtTypeWriting:       KindExtTypeWriting,
	ErrExtTypeLength:        KindExtTypeLength,
	ErrInvalidType:          KindInvalidType,
	ErrLengthReading:        KindLengthReading,
	ErrLengthWriting:        KindLengthWriting,
	ErrInternal:             KindInternal,
	ErrMaxDepthExceeded:     KindMaxDepthExceeded,
	ErrArrayTooLarge:        KindArrayTooLarge,
	ErrMapTooLarge:          KindMapTooLarge,
	ErrStringTooLong:        KindStringTooLong,
	ErrExtDataTooLarge:      KindExtDataTooLarge,
	ErrBinTooLong:           KindBinDataLengthTooLong,
}

// KindOf returns the Kind associated with a sentinel error, or KindUnknown
// if err is not one of the codec sentinels above. The payload accessor /
// mutator sentinels (ErrNotArray, ErrNotMap, ErrIndexOutOfRange) have no
// Kind and also yield KindUnknown.
func KindOf(err error) Kind {
	if k, ok := sentinelKind[err]; ok {
		return k
	}

	return KindUnknown
}
