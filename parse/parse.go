// Package parse implements validation and decoding of the binarycookies
// container format.
//
// A container is a header (magic, page count, page byte sizes), a run of
// pages, and a trailer (checksum, footer tag, opaque trailing payload).
// Header and trailer integers are big-endian while everything inside a page
// is little-endian; the split is a property of the format, not an
// inconsistency, and both decode paths are kept explicit.
//
// Parsing is a single forward pass. Each record is handed to a cookie.Sink
// the moment it validates, before the file-wide checksum and trailer checks
// run, so sinks that need all-or-nothing output must buffer. Every check is
// immediately fatal: the first malformed byte aborts the whole parse.
package parse

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/crumbware/binarycookies/cookie"
	"github.com/crumbware/binarycookies/cursor"
)

var (
	magic         = []byte{'c', 'o', 'o', 'k'}
	pageTag       = []byte{0x00, 0x00, 0x01, 0x00}
	pageHeaderEnd = []byte{0x00, 0x00, 0x00, 0x00}
	footer        = []byte{0x07, 0x17, 0x20, 0x05}
)

// trailerSize is the fixed part of the trailer: checksum (4), footer tag
// (4), and the trailing payload size field (4).
const trailerSize = 12

type ParseOption func(*parseOpts)

type parseOpts struct{}

// Container is a buffer whose header has been validated: the magic matched
// and the declared page-size table fits. Run walks the pages and trailer.
type Container struct {
	data      []byte
	pageSizes []uint32
	pagesOff  int
}

// New validates the container header of data. It reads the magic, the
// big-endian page count, and the page-size table, without touching any page.
func New(data []byte, opts ...ParseOption) (*Container, error) {
	po := &parseOpts{}
	for _, o := range opts {
		o(po)
	}
	cur := cursor.New(data)
	head, err := cur.Bytes(len(magic))
	if err != nil {
		return nil, fmt.Errorf("%w: checking magic and page count", ErrTruncated)
	}
	if !bytes.Equal(head, magic) {
		return nil, fmt.Errorf("%w: container magic %q", ErrBadMagic, head)
	}
	pageCount, err := cur.Uint32(binary.BigEndian)
	if err != nil {
		return nil, fmt.Errorf("%w: checking magic and page count", ErrTruncated)
	}
	if int64(cur.Remaining()) < int64(pageCount)*4 {
		return nil, fmt.Errorf("%w: checking page sizes in header", ErrTruncated)
	}
	sizes := make([]uint32, pageCount)
	for i := range sizes {
		sizes[i], _ = cur.Uint32(binary.BigEndian)
	}
	return &Container{data: data, pageSizes: sizes, pagesOff: cur.Pos()}, nil
}

// Run walks every page in declared order, streaming each validated record to
// sink, then verifies the trailer: the file checksum, the footer tag, and
// that the declared trailing payload size accounts for the rest of the
// buffer exactly. The payload itself is opaque and is not decoded.
func (c *Container) Run(sink cookie.Sink) error {
	var checksum uint32
	pageStart := int64(c.pagesOff)
	for i, size := range c.pageSizes {
		pageEnd := pageStart + int64(size)
		if pageEnd > int64(len(c.data)) {
			return fmt.Errorf("%w: incomplete page %d", ErrTruncated, i)
		}
		if err := parsePage(c.data, int(pageStart), int(pageEnd), i, sink); err != nil {
			return err
		}
		checksum += pageChecksum(c.data, int(pageStart), int(pageEnd))
		pageStart = pageEnd
	}

	cur := cursor.New(c.data)
	cur.Seek(int(pageStart))
	if cur.Remaining() < trailerSize {
		return fmt.Errorf("%w: checking checksum, footer, and trailer size", ErrTruncated)
	}
	stored, _ := cur.Uint32(binary.BigEndian)
	if stored != checksum {
		return fmt.Errorf("%w: stored %#08x, computed %#08x", ErrChecksum, stored, checksum)
	}
	tag, _ := cur.Bytes(len(footer))
	if !bytes.Equal(tag, footer) {
		return fmt.Errorf("%w: file footer %q", ErrBadMagic, tag)
	}
	payloadSize, _ := cur.Uint32(binary.BigEndian)
	if int64(cur.Remaining()) != int64(payloadSize) {
		return fmt.Errorf("%w: trailer declares %d payload bytes, %d remain",
			ErrStructure, payloadSize, cur.Remaining())
	}
	return nil
}

// Parse validates data as a complete container and feeds every record to
// sink in file order.
func Parse(data []byte, sink cookie.Sink, opts ...ParseOption) error {
	c, err := New(data, opts...)
	if err != nil {
		return err
	}
	return c.Run(sink)
}

// pageChecksum folds one page into the file checksum: the sum of the first
// byte of every 4-byte stride across the page's full byte range. The three
// bytes each stride steps over are not included. The format defines the
// checksum this way; it is not a conventional sum.
func pageChecksum(data []byte, pageStart, pageEnd int) uint32 {
	var sum uint32
	for i := pageStart; i < pageEnd; i += 4 {
		sum += uint32(data[i])
	}
	return sum
}
