package payload

import "iter"

// ArrItems returns the backing slice of an arr arm for read-only iteration
// by the encoder. The caller must not mutate the returned slice; use
// SetArrElement instead. Returns nil for any other arm.
func (p Payload) ArrItems() []Payload {
	if p.kind != KindArr {
		return nil
	}
	return p.arr
}

// MapEntries returns a range-over-func iterator over a map arm's (key,
// value) pairs, in the same "iter.Seq2" style mebo's encoding/tag.go and
// encoding/columnar.go expose for columnar iteration. Iteration order is
// unspecified, per the specification. Yields nothing for any other arm.
func (p Payload) MapEntries() iter.Seq2[string, Payload] {
	return func(yield func(string, Payload) bool) {
		if p.kind != KindMap || p.m == nil {
			return
		}
		for _, e := range p.m.entries {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}
