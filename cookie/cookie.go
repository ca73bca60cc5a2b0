// Package cookie defines the decoded cookie record model shared by the
// parser and the emitters.
package cookie

// Record is one decoded cookie. Version, Flags and HasPort are carried as
// opaque integers: the container stores them bit-for-bit and nothing here
// interprets them. Expiry and Creation are the raw IEEE-754 values from the
// file; the epoch is the format's own and is not converted.
//
// The six string fields are nil when their offset in the record is zero,
// meaning the field is absent. An absent field is omitted from rendered
// output entirely rather than rendered as null.
type Record struct {
	Version uint32 `json:"version" yaml:"version"`
	Flags   uint32 `json:"flags" yaml:"flags"`
	HasPort uint32 `json:"-" yaml:"-"`

	Domain     *string `json:"domain,omitempty" yaml:"domain,omitempty"`
	Name       *string `json:"name,omitempty" yaml:"name,omitempty"`
	Path       *string `json:"path,omitempty" yaml:"path,omitempty"`
	Value      *string `json:"value,omitempty" yaml:"value,omitempty"`
	Comment    *string `json:"comment,omitempty" yaml:"comment,omitempty"`
	CommentURL *string `json:"commentUrl,omitempty" yaml:"commentUrl,omitempty"`

	Expiry   float64 `json:"expiry" yaml:"expiry"`
	Creation float64 `json:"creation" yaml:"creation"`
}

// Sink receives records as the parser validates them. Parsing streams: a
// sink may have observed records from a container whose trailing checksum
// later fails, so sinks that need all-or-nothing behavior must buffer.
type Sink interface {
	Cookie(*Record) error
}

// Discard accepts and drops every record. Useful for validate-only walks.
var Discard Sink = discard{}

type discard struct{}

func (discard) Cookie(*Record) error { return nil }

// Collect accumulates records in memory, for renderings that cannot stream.
type Collect struct {
	Records []*Record
}

func (c *Collect) Cookie(r *Record) error {
	c.Records = append(c.Records, r)
	return nil
}
