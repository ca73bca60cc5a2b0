//go:build !unix

package mapfile

import "os"

// Open reads the whole file; platforms without unix mmap fall back to a
// plain read.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Op: "open", Path: path, Err: err}
	}
	return &File{path: path, data: data}, nil
}

// Close releases the buffer.
func (f *File) Close() error {
	f.data = nil
	return nil
}
