package cursor

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func TestReads(t *testing.T) {
	data := []byte{
		0x01, 0x02, 0x03, 0x04,
		0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0xFF, 0x00, 0x11,
		'h', 'i',
	}
	c := New(data)
	if c.Len() != len(data) || c.Pos() != 0 || c.Remaining() != len(data) {
		t.Fatalf("fresh cursor: len=%d pos=%d rem=%d", c.Len(), c.Pos(), c.Remaining())
	}

	v32, err := c.Uint32(binary.BigEndian)
	if err != nil || v32 != 0x01020304 {
		t.Fatalf("Uint32 BE = %#x, %v", v32, err)
	}
	v64, err := c.Uint64(binary.LittleEndian)
	if err != nil || v64 != 0x1100FFEEDDCCBBAA {
		t.Fatalf("Uint64 LE = %#x, %v", v64, err)
	}
	b, err := c.Bytes(2)
	if err != nil || !bytes.Equal(b, []byte("hi")) {
		t.Fatalf("Bytes = %q, %v", b, err)
	}
	if c.Remaining() != 0 {
		t.Fatalf("remaining = %d after reading all", c.Remaining())
	}
}

func TestLittleEndianUint32(t *testing.T) {
	c := New([]byte{0x39, 0x05, 0x00, 0x00})
	v, err := c.Uint32(binary.LittleEndian)
	if err != nil || v != 1337 {
		t.Fatalf("got %d, %v", v, err)
	}
}

func TestFloat64LE(t *testing.T) {
	for _, want := range []float64{0, 1, -1.25, 978307200.5, math.Inf(1)} {
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(want))
		got, err := New(buf[:]).Float64LE()
		if err != nil {
			t.Fatal(err)
		}
		if math.Float64bits(got) != math.Float64bits(want) {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestFloat64LENaNBits(t *testing.T) {
	var buf [8]byte
	bits := uint64(0x7FF8DEADBEEF0001)
	binary.LittleEndian.PutUint64(buf[:], bits)
	got, err := New(buf[:]).Float64LE()
	if err != nil {
		t.Fatal(err)
	}
	if math.Float64bits(got) != bits {
		t.Fatalf("bit pattern %#x, want %#x", math.Float64bits(got), bits)
	}
}

func TestSeekSkip(t *testing.T) {
	c := New(make([]byte, 10))
	if err := c.Seek(7); err != nil || c.Pos() != 7 {
		t.Fatalf("seek: pos=%d err=%v", c.Pos(), err)
	}
	if err := c.Skip(3); err != nil || c.Pos() != 10 {
		t.Fatalf("skip: pos=%d err=%v", c.Pos(), err)
	}
	if err := c.Seek(11); !errors.Is(err, ErrShortData) {
		t.Fatalf("seek past end: %v", err)
	}
	if err := c.Seek(-1); !errors.Is(err, ErrShortData) {
		t.Fatalf("negative seek: %v", err)
	}
	if err := c.Skip(1); !errors.Is(err, ErrShortData) {
		t.Fatalf("skip past end: %v", err)
	}
}

// A failed read must not move the position.
func TestShortReadKeepsPosition(t *testing.T) {
	c := New([]byte{1, 2, 3})
	if _, err := c.Uint32(binary.BigEndian); !errors.Is(err, ErrShortData) {
		t.Fatalf("got %v", err)
	}
	if c.Pos() != 0 {
		t.Fatalf("position moved to %d on failed read", c.Pos())
	}
	if _, err := c.Bytes(2); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Uint64(binary.LittleEndian); !errors.Is(err, ErrShortData) {
		t.Fatalf("got %v", err)
	}
	if c.Pos() != 2 {
		t.Fatalf("position = %d, want 2", c.Pos())
	}
}

func TestNegativeCount(t *testing.T) {
	c := New(make([]byte, 8))
	if _, err := c.Bytes(-1); !errors.Is(err, ErrShortData) {
		t.Fatalf("got %v", err)
	}
}
