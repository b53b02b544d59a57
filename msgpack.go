// Package msgpack implements a MessagePack binary codec: a dynamic,
// tagged-variant value model (payload.Payload) and a streaming encoder and
// decoder built over it.
//
// Marshal and Unmarshal below are thin convenience wrappers, in the same
// role mebo.go's top-level NewNumericEncoder/NewNumericDecoder play over
// the blob package: most callers never need to touch the wire or
// ioadapter packages directly.
package msgpack

import (
	"github.com/coreclef/msgpack/limits"
	"github.com/coreclef/msgpack/payload"
	"github.com/coreclef/msgpack/wire"
)

// Payload is the codec's dynamic value model. It is re-exported here so
// simple callers need only import this package.
type Payload = payload.Payload

// ParseLimits bounds the resources the decoder is willing to spend parsing
// a single value.
type ParseLimits = limits.ParseLimits

// DefaultParseLimits returns the codec's default resource ceilings.
func DefaultParseLimits() ParseLimits {
	return limits.Default()
}

// Marshal encodes p to a freshly allocated byte slice.
func Marshal(p Payload) ([]byte, error) {
	return wire.Marshal(p)
}

// Unmarshal decodes a single MessagePack value from data, using the
// codec's default ParseLimits.
func Unmarshal(data []byte) (Payload, error) {
	return wire.Unmarshal(data)
}

// UnmarshalWithLimits decodes a single MessagePack value from data,
// enforcing the given ParseLimits instead of the defaults.
func UnmarshalWithLimits(data []byte, l ParseLimits) (Payload, error) {
	return wire.Unmarshal(data, wire.WithParseLimits(l))
}
