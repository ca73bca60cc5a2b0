// Package cursor provides a bounds-checked sequential reader over an
// immutable byte buffer.
//
// Every read is all-or-nothing: a read that would run past the end of the
// buffer fails without moving the position, so callers never observe a
// half-consumed field. Byte order is chosen per call because the
// binarycookies container mixes big-endian header fields with little-endian
// page interiors.
package cursor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrShortData reports a read that would run past the end of the buffer.
var ErrShortData = errors.New("short data")

// Cursor reads fixed-width values from a byte slice, advancing an internal
// position. The underlying buffer is never modified.
type Cursor struct {
	data []byte
	pos  int
}

// New returns a Cursor positioned at the start of data.
func New(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Pos returns the current position.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total buffer length.
func (c *Cursor) Len() int { return len(c.data) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Seek moves the position to pos.
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.data) {
		return fmt.Errorf("%w: seek to %d in %d bytes", ErrShortData, pos, len(c.data))
	}
	c.pos = pos
	return nil
}

// Skip advances the position by n bytes.
func (c *Cursor) Skip(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// Bytes returns the next n bytes as a subslice of the buffer and advances
// past them.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}

// Uint32 decodes the next four bytes in the given order.
func (c *Cursor) Uint32(order binary.ByteOrder) (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := order.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

// Uint64 decodes the next eight bytes in the given order.
func (c *Cursor) Uint64(order binary.ByteOrder) (uint64, error) {
	if err := c.need(8); err != nil {
		return 0, err
	}
	v := order.Uint64(c.data[c.pos:])
	c.pos += 8
	return v, nil
}

// Float64LE decodes the next eight little-endian bytes as the raw bit
// pattern of an IEEE-754 binary64 value.
func (c *Cursor) Float64LE() (float64, error) {
	bits, err := c.Uint64(binary.LittleEndian)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(bits), nil
}

func (c *Cursor) need(n int) error {
	if n < 0 || n > len(c.data)-c.pos {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d",
			ErrShortData, n, c.pos, len(c.data)-c.pos)
	}
	return nil
}
