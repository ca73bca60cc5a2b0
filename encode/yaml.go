package encode

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/crumbware/binarycookies/cookie"
)

// document mirrors the JSON output shape for buffered renderings.
type document struct {
	Cookies []*cookie.Record `yaml:"cookies" json:"cookies"`
}

// YAML renders records as a YAML document with the same keys and key order
// as the JSON emitter. YAML output cannot stream: callers collect records
// first (see cookie.Collect).
func YAML(records []*cookie.Record, w io.Writer) error {
	if records == nil {
		records = []*cookie.Record{}
	}
	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(&document{Cookies: records})
}
