// Package encode renders decoded cookie records as JSON.
//
// The encoder streams: each record is written as it arrives from the
// parser, so a container that fails a late check (checksum, trailer) leaves
// a syntactically incomplete document on the writer. Callers that need
// all-or-nothing output use EncodeAtomic, which buffers the document and
// flushes it only on EndDocument.
package encode

import (
	"bytes"
	"io"
	"strconv"

	"github.com/crumbware/binarycookies/cookie"
)

type EncodeOption func(*Encoder)

// EncodeAtomic buffers the whole document in memory; nothing reaches the
// underlying writer until EndDocument succeeds.
func EncodeAtomic(v bool) EncodeOption {
	return func(e *Encoder) { e.atomic = v }
}

// Encoder writes a single {"cookies":[...]} document incrementally.
// BeginDocument, then Cookie per record, then EndDocument. Encoder is a
// cookie.Sink, so it can be handed to parse.Parse directly.
type Encoder struct {
	w      io.Writer
	out    io.Writer
	buf    *bytes.Buffer
	atomic bool
	n      int
	offset int64
}

func NewEncoder(w io.Writer, opts ...EncodeOption) *Encoder {
	e := &Encoder{w: w, out: w}
	for _, opt := range opts {
		opt(e)
	}
	if e.atomic {
		e.buf = &bytes.Buffer{}
		e.out = e.buf
	}
	return e
}

// Offset returns the byte offset in the output stream. In atomic mode it
// counts buffered bytes.
func (e *Encoder) Offset() int64 { return e.offset }

// BeginDocument opens the document.
func (e *Encoder) BeginDocument() error {
	return e.writeBytes([]byte(`{"cookies":[`))
}

// Cookie writes one record as a JSON object, separated from the previous
// one by a comma. Keys appear in fixed order: version, flags, then each of
// the six string fields that is present, then expiry and creation. Absent
// string fields are omitted, never rendered as null.
func (e *Encoder) Cookie(r *cookie.Record) error {
	var scratch [64]byte
	dst := scratch[:0]
	if e.n > 0 {
		dst = append(dst, ',')
	}
	e.n++
	dst = append(dst, `{"version":`...)
	dst = strconv.AppendUint(dst, uint64(r.Version), 10)
	dst = append(dst, `,"flags":`...)
	dst = strconv.AppendUint(dst, uint64(r.Flags), 10)
	strs := [...]struct {
		key string
		val *string
	}{
		{"domain", r.Domain},
		{"name", r.Name},
		{"path", r.Path},
		{"value", r.Value},
		{"comment", r.Comment},
		{"commentUrl", r.CommentURL},
	}
	for _, f := range strs {
		if f.val == nil {
			continue
		}
		dst = append(dst, ',', '"')
		dst = append(dst, f.key...)
		dst = append(dst, '"', ':')
		dst = appendString(dst, *f.val)
	}
	dst = append(dst, `,"expiry":`...)
	dst = appendFloat(dst, r.Expiry)
	dst = append(dst, `,"creation":`...)
	dst = appendFloat(dst, r.Creation)
	dst = append(dst, '}')
	return e.writeBytes(dst)
}

// EndDocument closes the document and, in atomic mode, flushes the buffered
// bytes to the underlying writer.
func (e *Encoder) EndDocument() error {
	if err := e.writeBytes([]byte(`]}`)); err != nil {
		return err
	}
	if e.buf != nil {
		if _, err := e.w.Write(e.buf.Bytes()); err != nil {
			return err
		}
		e.buf.Reset()
	}
	return nil
}

func (e *Encoder) writeBytes(b []byte) error {
	n, err := e.out.Write(b)
	e.offset += int64(n)
	return err
}

const hexUpper = "0123456789ABCDEF"

// appendString appends the JSON encoding of s. Quote and backslash take
// their two-character escapes, as do backspace, form feed, line feed,
// carriage return, and tab; remaining bytes below 0x20 become \u00XX with
// uppercase hex. Solidus is not escaped. Bytes from 0x20 up, including all
// non-ASCII bytes, pass through untouched: the source data is trusted to be
// UTF-8.
func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		switch b := s[i]; b {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if b < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0', hexUpper[b>>4], hexUpper[b&0xF])
			} else {
				dst = append(dst, b)
			}
		}
	}
	return append(dst, '"')
}

// appendFloat formats with 17 significant digits, enough for an IEEE-754
// binary64 value to round-trip exactly.
func appendFloat(dst []byte, v float64) []byte {
	return strconv.AppendFloat(dst, v, 'g', 17, 64)
}
