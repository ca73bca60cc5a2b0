package parse

import (
	"encoding/binary"
	"math"
)

// Test fixtures build containers byte by byte so each case can corrupt one
// specific field. The checksum here is computed independently of
// pageChecksum: sum of the first byte of each 4-byte stride per page.

type testCookie struct {
	size    uint32 // overrides the computed record size when non-zero
	version uint32
	flags   uint32
	hasPort uint32
	domain, name, path, value, comment, commentURL string
	offsets  *[6]uint32 // overrides the computed string offsets
	expiry   float64
	creation float64
}

func (c testCookie) bytes() []byte {
	le := binary.LittleEndian
	strs := []string{c.domain, c.name, c.path, c.value, c.comment, c.commentURL}
	var offs [6]uint32
	var body []byte
	next := uint32(cookieHeaderSize)
	for i, s := range strs {
		if s == "" {
			continue
		}
		offs[i] = next
		body = append(body, s...)
		body = append(body, 0)
		next += uint32(len(s)) + 1
	}
	if len(body) == 0 {
		body = []byte{0}
	}
	size := uint32(cookieHeaderSize + len(body))
	if c.size != 0 {
		size = c.size
	}
	if c.offsets != nil {
		offs = *c.offsets
	}

	b := make([]byte, 0, cookieHeaderSize+len(body))
	b = le.AppendUint32(b, size)
	b = le.AppendUint32(b, c.version)
	b = le.AppendUint32(b, c.flags)
	b = le.AppendUint32(b, c.hasPort)
	for _, off := range offs {
		b = le.AppendUint32(b, off)
	}
	b = le.AppendUint64(b, math.Float64bits(c.expiry))
	b = le.AppendUint64(b, math.Float64bits(c.creation))
	return append(b, body...)
}

// buildPage lays the records out right after the page header, offset table
// in the given order.
func buildPage(cookies ...[]byte) []byte {
	le := binary.LittleEndian
	b := append([]byte{}, pageTag...)
	b = le.AppendUint32(b, uint32(len(cookies)))
	off := 4 + 4 + 4*len(cookies) + 4
	for _, c := range cookies {
		b = le.AppendUint32(b, uint32(off))
		off += len(c)
	}
	b = append(b, pageHeaderEnd...)
	for _, c := range cookies {
		b = append(b, c...)
	}
	return b
}

func buildContainer(pages ...[]byte) []byte {
	return buildContainerTrailer(nil, pages...)
}

func buildContainerTrailer(trailer []byte, pages ...[]byte) []byte {
	be := binary.BigEndian
	b := append([]byte{}, magic...)
	b = be.AppendUint32(b, uint32(len(pages)))
	for _, p := range pages {
		b = be.AppendUint32(b, uint32(len(p)))
	}
	var sum uint32
	for _, p := range pages {
		for i := 0; i < len(p); i += 4 {
			sum += uint32(p[i])
		}
		b = append(b, p...)
	}
	b = be.AppendUint32(b, sum)
	b = append(b, footer...)
	b = be.AppendUint32(b, uint32(len(trailer)))
	return append(b, trailer...)
}
