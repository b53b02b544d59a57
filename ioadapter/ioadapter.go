// Package ioadapter is the thin abstraction over a user-supplied byte sink
// and source that wire.Encoder/wire.Decoder are built on.
//
// Per the specification's design notes, the underlying requirement is
// static dispatch of Write/Read without heap indirection on the hot path.
// Go's equivalent of the source's compile-time generics over a sink/source
// type is a generic struct parameterized by the concrete io.Writer/
// io.Reader implementation: Adapter[W, R] below is monomorphized per
// (W, R) pair at compile time, so a call through it is a direct method
// call rather than an interface vtable dispatch, the same trade the
// specification's design notes ask for.
package ioadapter

import (
	"io"

	"github.com/coreclef/msgpack/errs"
)

// Sink is anything MessagePack bytes can be written to.
type Sink interface {
	io.Writer
}

// Source is anything MessagePack bytes can be read from.
type Source interface {
	io.Reader
}

// Adapter pairs a sink and a source and provides the "write all bytes or
// fail" / "read exactly N bytes or fail" primitives the wire package
// builds on. Either W or R may be left as the zero value of its type when
// only the encode or only the decode direction is used.
type Adapter[W Sink, R Source] struct {
	Sink   W
	Source R
}

// New builds an Adapter over the given sink and source.
func New[W Sink, R Source](sink W, source R) Adapter[W, R] {
	return Adapter[W, R]{Sink: sink, Source: source}
}

// WriteFull writes every byte of p to the sink, or returns an error. A
// short write with no error from the underlying Writer (a contract
// violation in a conforming io.Writer, but checked defensively since the
// specification treats partial writes as a framing error) also surfaces as
// errs.ErrLengthWriting.
func (a Adapter[W, R]) WriteFull(p []byte) error {
	n, err := a.Sink.Write(p)
	if err != nil {
		return errs.Wrapf(errs.ErrLengthWriting, -1, "wrote %d of %d bytes: %v", n, len(p), err)
	}
	if n != len(p) {
		return errs.Wrapf(errs.ErrLengthWriting, -1, "short write: wrote %d of %d bytes", n, len(p))
	}
	return nil
}

// ReadFull fills buf completely from the source, or returns an error.
func (a Adapter[W, R]) ReadFull(buf []byte) error {
	n, err := io.ReadFull(a.Source, buf)
	if err != nil {
		return errs.Wrapf(errs.ErrLengthReading, -1, "read %d of %d bytes: %v", n, len(buf), err)
	}
	return nil
}
