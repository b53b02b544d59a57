package errs

import "fmt"

// CodecError wraps a sentinel error with the byte offset in the input (for
// decode errors), or -1 where no offset is recorded (encode and adapter
// errors always carry -1), the way blob/numeric_decoder.go wraps errs.Err* with metric counts and
// offsets via fmt.Errorf("%w: ...", ...).
type CodecError struct {
	Kind   Kind
	Offset int64
	Err    error
}

func (e *CodecError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("msgpack: %s at offset %d: %v", e.Kind, e.Offset, e.Err)
	}

	return fmt.Sprintf("msgpack: %s: %v", e.Kind, e.Err)
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// Wrap builds a *CodecError from a sentinel, recording offset (-1 if not
// applicable) for diagnostics while preserving errors.Is(sentinel) behavior.
func Wrap(sentinel error, offset int64) *CodecError {
	return &CodecError{Kind: KindOf(sentinel), Offset: offset, Err: sentinel}
}

// Wrapf behaves like Wrap but attaches additional context to the message,
// mirroring fmt.Errorf("%w: %s", sentinel, detail) used throughout mebo.
func Wrapf(sentinel error, offset int64, format string, args ...any) *CodecError {
	return &CodecError{
		Kind:   KindOf(sentinel),
		Offset: offset,
		Err:    fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)),
	}
}
