// Package limits defines the resource ceilings the decoder enforces against
// adversarial or malformed input, mirroring the "plain configuration record
// passed once at construction" shape of section.NumericHeader / Flag in the
// teacher, but with no wire representation of its own: a ParseLimits never
// appears on the wire, it only bounds what the decoder is willing to
// allocate while parsing one.
package limits

const (
	DefaultMaxDepth        = 1000
	DefaultMaxArrayLength  = 1_000_000
	DefaultMaxMapSize      = 1_000_000
	DefaultMaxStringLength = 100 * 1024 * 1024
	DefaultMaxBinLength    = 100 * 1024 * 1024
	DefaultMaxExtLength    = 100 * 1024 * 1024
)

// ParseLimits bounds nesting depth and per-value byte/element counts the
// decoder will accept. Each limit is checked against a declared length
// before the corresponding buffer is allocated, so a forged large length
// prefix fails fast instead of inducing unbounded allocation.
type ParseLimits struct {
	MaxDepth        int
	MaxArrayLength  int
	MaxMapSize      int
	MaxStringLength int
	MaxBinLength    int
	MaxExtLength    int
}

// Default returns the codec's default ParseLimits.
func Default() ParseLimits {
	return ParseLimits{
		MaxDepth:        DefaultMaxDepth,
		MaxArrayLength:  DefaultMaxArrayLength,
		MaxMapSize:      DefaultMaxMapSize,
		MaxStringLength: DefaultMaxStringLength,
		MaxBinLength:    DefaultMaxBinLength,
		MaxExtLength:    DefaultMaxExtLength,
	}
}
