package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Format
	}{
		{"j", JSONFormat},
		{"json", JSONFormat},
		{"y", YAMLFormat},
		{"yaml", YAMLFormat},
	} {
		got, err := ParseFormat(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseFormat(%q) = %v, %v", tc.in, got, err)
		}
	}
	for _, in := range []string{"", "xml", "JSON", "yml"} {
		if _, err := ParseFormat(in); !errors.Is(err, ErrBadFormat) {
			t.Errorf("ParseFormat(%q) = %v, want ErrBadFormat", in, err)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range []Format{JSONFormat, YAMLFormat} {
		var g Format
		if err := g.UnmarshalText([]byte(f.String())); err != nil {
			t.Fatal(err)
		}
		if g != f {
			t.Fatalf("round trip %v -> %v", f, g)
		}
	}
}

func TestSuffix(t *testing.T) {
	if JSONFormat.Suffix() != ".json" || YAMLFormat.Suffix() != ".yaml" {
		t.Fatal("suffix mismatch")
	}
	if Format(99).Suffix() != "" {
		t.Fatal("unknown format must have empty suffix")
	}
}
