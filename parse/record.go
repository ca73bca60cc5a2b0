package parse

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/crumbware/binarycookies/cookie"
	"github.com/crumbware/binarycookies/cursor"
)

// cookieHeaderSize is the fixed prefix of a record: ten 32-bit fields
// followed by the two 64-bit timestamps.
const cookieHeaderSize = 10*4 + 2*8

// stringFieldNames is the declared field order; validation and emission both
// follow it.
var stringFieldNames = [...]string{"domain", "name", "path", "value", "comment", "commentUrl"}

// parseCookie decodes and validates one record. The fixed header fields are
// little-endian. The record's declared size bounds everything else: the
// record must end inside its page, the byte before the declared end must be
// the zero sentinel closing the last string, and every non-zero string
// offset must fall strictly inside the record.
func parseCookie(data []byte, recordStart, pageEnd int64, pageIdx, cookieIdx int, sink cookie.Sink) error {
	if recordStart+cookieHeaderSize > int64(len(data)) {
		return fmt.Errorf("%w: cookie %d in page %d too short for cookie header",
			ErrTruncated, cookieIdx, pageIdx)
	}
	cur := cursor.New(data)
	cur.Seek(int(recordStart))

	size, _ := cur.Uint32(binary.LittleEndian)
	version, _ := cur.Uint32(binary.LittleEndian)
	flags, _ := cur.Uint32(binary.LittleEndian)
	hasPort, _ := cur.Uint32(binary.LittleEndian)
	var offs [len(stringFieldNames)]uint32
	for i := range offs {
		offs[i], _ = cur.Uint32(binary.LittleEndian)
	}
	expiry, _ := cur.Float64LE()
	creation, _ := cur.Float64LE()

	recordEnd := recordStart + int64(size)
	if recordEnd > pageEnd {
		return fmt.Errorf("%w: cookie %d in page %d has end past end of page",
			ErrStructure, cookieIdx, pageIdx)
	}
	if size == 0 || data[recordEnd-1] != 0 {
		return fmt.Errorf("%w: cookie %d in page %d does not end with a null terminated string",
			ErrStructure, cookieIdx, pageIdx)
	}
	for i, off := range offs {
		if off != 0 && int64(off) >= int64(size) {
			return fmt.Errorf("%w: cookie %d in page %d %s offset out of range",
				ErrStructure, cookieIdx, pageIdx, stringFieldNames[i])
		}
	}

	rec := &cookie.Record{
		Version:  version,
		Flags:    flags,
		HasPort:  hasPort,
		Expiry:   expiry,
		Creation: creation,
	}
	fields := [...]**string{
		&rec.Domain, &rec.Name, &rec.Path, &rec.Value, &rec.Comment, &rec.CommentURL,
	}
	for i, off := range offs {
		if off == 0 {
			continue
		}
		s, err := cString(data, recordStart+int64(off), recordEnd)
		if err != nil {
			return fmt.Errorf("%w: cookie %d in page %d %s %v",
				ErrStructure, cookieIdx, pageIdx, stringFieldNames[i], err)
		}
		*fields[i] = &s
	}
	return sink.Cookie(rec)
}

// cString extracts the null-terminated string at start. The terminator scan
// never looks past end, the record's declared bound.
func cString(data []byte, start, end int64) (string, error) {
	i := bytes.IndexByte(data[start:end], 0)
	if i < 0 {
		return "", fmt.Errorf("string unterminated before record end")
	}
	return string(data[start : start+int64(i)]), nil
}
