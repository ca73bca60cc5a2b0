// Package mapfile provides read-only whole-file byte buffers for the
// parser. On unix the file is memory mapped rather than read; the parser
// makes one forward pass over the buffer and never mutates it, so a private
// read-only mapping fits exactly.
package mapfile

import "fmt"

// Error describes a failure in one of the distinct I/O stages. Op is one of
// "open", "stat", "map", "unmap", "close"; each maps to its own process
// status in the CLI.
type Error struct {
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("cannot %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// File is an open, immutable view of a file's contents. Data stays valid
// until Close.
type File struct {
	path   string
	data   []byte
	mapped bool
}

// Data returns the complete file contents. Callers must not write to it.
func (f *File) Data() []byte { return f.data }

// Path returns the path the file was opened from.
func (f *File) Path() string { return f.path }
