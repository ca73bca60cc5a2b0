package parse

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated reports a buffer that ends before a required field or
	// region. The wrapped message names the stage that hit the end.
	ErrTruncated = errors.New("unexpected end of data")

	// ErrBadMagic reports container magic, page tag, or footer tag bytes
	// that do not match the format.
	ErrBadMagic = errors.New("bad magic")

	// ErrStructure reports a structural invariant violation in an otherwise
	// readable container: a record overflowing its page, a missing zero
	// sentinel, a string offset out of range, a bad page header terminator,
	// or a trailer length mismatch.
	ErrStructure = errors.New("structure error")

	// ErrChecksum reports a stored checksum that does not match the
	// computed one. It wraps ErrStructure, so errors.Is against either
	// sentinel holds.
	ErrChecksum = fmt.Errorf("%w: checksum mismatch", ErrStructure)
)
