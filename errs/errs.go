// Package errs defines the sentinel error values returned by the codec.
//
// Every failure surfaced by payload, wire, or limits wraps one of the
// sentinels below with errors.Is-compatible context, mirroring how mebo's
// blob package exposes errs.ErrInvalidHeaderSize, errs.ErrInvalidMetricID,
// and friends.
package errs

import "errors"

// Decode-side sentinels.
var (
	ErrTypeMarkerReading = errors.New("msgpack: failed to read type marker")
	ErrLengthReading     = errors.New("msgpack: failed to read length prefix")
	ErrDataReading       = errors.New("msgpack: failed to read data bytes")
	ErrExtTypeReading    = errors.New("msgpack: failed to read ext type byte")
	ErrInvalidType       = errors.New("msgpack: value has an unexpected type")
	ErrMaxDepthExceeded  = errors.New("msgpack: nesting depth exceeds configured limit")
	ErrArrayTooLarge     = errors.New("msgpack: array length exceeds configured limit")
	ErrMapTooLarge       = errors.New("msgpack: map size exceeds configured limit")
	ErrStringTooLong     = errors.New("msgpack: string length exceeds configured limit")
	ErrBinTooLong        = errors.New("msgpack: bin length exceeds configured limit")
	ErrExtDataTooLarge   = errors.New("msgpack: ext data length exceeds configured limit")
)

// Encode-side sentinels.
var (
	ErrStrDataLengthTooLong = errors.New("msgpack: str payload exceeds the maximum encodable length")
	ErrBinDataLengthTooLong = errors.New("msgpack: bin payload exceeds the maximum encodable length")
	ErrArrayLengthTooLong   = errors.New("msgpack: array length exceeds the maximum encodable length")
	ErrTupleLengthTooLong   = errors.New("msgpack: tuple length exceeds the maximum encodable length")
	ErrMapLengthTooLong     = errors.New("msgpack: map length exceeds the maximum encodable length")
	ErrInputValueTooLarge   = errors.New("msgpack: value magnitude cannot be represented on the wire")
	ErrFixedValueWriting    = errors.New("msgpack: failed to write fixed-width value")
	ErrTypeMarkerWriting    = errors.New("msgpack: failed to write type marker")
	ErrDataWriting          = errors.New("msgpack: failed to write data bytes")
	ErrExtTypeWriting       = errors.New("msgpack: failed to write ext type byte")
	ErrExtTypeLength        = errors.New("msgpack: ext data length is not representable")
	ErrLengthWriting        = errors.New("msgpack: failed to write length prefix")
)

// Payload accessor / mutator sentinels.
var (
	ErrNotArray        = errors.New("msgpack: payload is not an array")
	ErrNotMap          = errors.New("msgpack: payload is not a map")
	ErrIndexOutOfRange = errors.New("msgpack: array index out of range")
)

// Internal / catch-all.
var ErrInternal = errors.New("msgpack: internal codec error")
