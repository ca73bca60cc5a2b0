package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/crumbware/binarycookies/cookie"
)

func TestYAML(t *testing.T) {
	buf := &bytes.Buffer{}
	err := YAML([]*cookie.Record{
		{Version: 1, Domain: str("a"), Name: str("b")},
	}, buf)
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"cookies:", "version: 1", "domain: a", "name: b", "expiry: 0", "creation: 0"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	for _, absent := range []string{"path", "value", "comment", "null"} {
		if strings.Contains(out, absent) {
			t.Errorf("output should omit %q:\n%s", absent, out)
		}
	}
}

func TestYAMLNoRecords(t *testing.T) {
	buf := &bytes.Buffer{}
	if err := YAML(nil, buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "cookies: []") {
		t.Fatalf("got %q", buf.String())
	}
}
