package wire

import (
	"errors"
	"fmt"

	"github.com/joshuapare/wirekit/internal/buf"
)

var (
	// ErrTruncated indicates the buffer ended before a complete field could
	// be read.
	ErrTruncated = buf.ErrTruncated

	// ErrVarintOverflow indicates a varint encoding longer than 10 bytes.
	ErrVarintOverflow = buf.ErrVarintOverflow

	// ErrInvalidFieldNumber indicates a tag with field number 0.
	ErrInvalidFieldNumber = errors.New("wire: field number must be positive")

	// ErrUnknownWireType indicates a wire type outside 0..5 that could not
	// be skipped.
	ErrUnknownWireType = errors.New("wire: unknown wire type")

	// ErrUnexpectedGroupEnd indicates a group end tag with no matching open
	// group, or with a mismatched field number.
	ErrUnexpectedGroupEnd = errors.New("wire: unexpected group end")

	// ErrUnterminatedGroup indicates the buffer was exhausted while a group
	// was still open.
	ErrUnterminatedGroup = errors.New("wire: unterminated group")

	// ErrDepthExceeded indicates group/message nesting past the configured
	// Limits.MaxDepth.
	ErrDepthExceeded = errors.New("wire: nesting depth exceeded")

	// ErrUnsupportedValue indicates a map import value with no wire-format
	// representation.
	ErrUnsupportedValue = errors.New("wire: unsupported value type")

	// ErrInvalidUTF8 indicates a text decode was requested on a payload
	// that is not valid UTF-8.
	ErrInvalidUTF8 = errors.New("wire: payload is not valid UTF-8")

	// ErrFieldNotFound indicates no field with the requested number exists.
	ErrFieldNotFound = errors.New("wire: field not found")
)

// OffsetError wraps a parse error with the byte offset of the field that
// caused it. Use errors.Is to match the underlying sentinel.
type OffsetError struct {
	Offset int
	Err    error
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("%v (at offset %d)", e.Err, e.Offset)
}

func (e *OffsetError) Unwrap() error {
	return e.Err
}

// errAt attaches a byte offset to err unless it already carries one.
func errAt(off int, err error) error {
	var oe *OffsetError
	if errors.As(err, &oe) {
		return err
	}
	return &OffsetError{Offset: off, Err: err}
}
