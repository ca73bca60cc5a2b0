package parse

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/crumbware/binarycookies/cookie"
	"github.com/crumbware/binarycookies/cursor"
)

// parsePage decodes one page: the page tag, the little-endian cookie count,
// the cookie-offset table, the four-zero-byte header terminator, and then
// each record in offset-table order. Table order is preserved as stored,
// which fixes the output order; it is not sorted.
func parsePage(data []byte, pageStart, pageEnd, pageIdx int, sink cookie.Sink) error {
	cur := cursor.New(data[:pageEnd])
	cur.Seek(pageStart)

	tag, err := cur.Bytes(len(pageTag))
	if err != nil {
		return fmt.Errorf("%w: page %d too short for page tag and cookie count",
			ErrTruncated, pageIdx)
	}
	if !bytes.Equal(tag, pageTag) {
		return fmt.Errorf("%w: page %d tag %q", ErrBadMagic, pageIdx, tag)
	}
	count, err := cur.Uint32(binary.LittleEndian)
	if err != nil {
		return fmt.Errorf("%w: page %d too short for page tag and cookie count",
			ErrTruncated, pageIdx)
	}
	if int64(cur.Remaining()) < int64(count)*4+int64(len(pageHeaderEnd)) {
		return fmt.Errorf("%w: page %d too short for cookie offsets", ErrTruncated, pageIdx)
	}
	offsets := make([]uint32, count)
	for i := range offsets {
		offsets[i], _ = cur.Uint32(binary.LittleEndian)
	}
	term, _ := cur.Bytes(len(pageHeaderEnd))
	if !bytes.Equal(term, pageHeaderEnd) {
		return fmt.Errorf("%w: page %d header terminator %q", ErrStructure, pageIdx, term)
	}

	for i, off := range offsets {
		recordStart := int64(pageStart) + int64(off)
		if err := parseCookie(data, recordStart, int64(pageEnd), pageIdx, i, sink); err != nil {
			return err
		}
	}
	return nil
}
