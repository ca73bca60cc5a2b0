//go:build unix

package mapfile

import "golang.org/x/sys/unix"

// Open maps path read-only. An empty file yields an empty, unmapped buffer
// since zero-length mappings are invalid.
func Open(path string) (*File, error) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, &Error{Op: "open", Path: path, Err: err}
	}
	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		unix.Close(fd)
		return nil, &Error{Op: "stat", Path: path, Err: err}
	}
	if st.Size == 0 {
		if err := unix.Close(fd); err != nil {
			return nil, &Error{Op: "close", Path: path, Err: err}
		}
		return &File{path: path}, nil
	}
	data, err := unix.Mmap(fd, 0, int(st.Size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		unix.Close(fd)
		return nil, &Error{Op: "map", Path: path, Err: err}
	}
	if err := unix.Close(fd); err != nil {
		unix.Munmap(data)
		return nil, &Error{Op: "close", Path: path, Err: err}
	}
	return &File{path: path, data: data, mapped: true}, nil
}

// Close releases the mapping. The buffer from Data must not be used after.
func (f *File) Close() error {
	data := f.data
	f.data = nil
	if !f.mapped || data == nil {
		return nil
	}
	f.mapped = false
	if err := unix.Munmap(data); err != nil {
		return &Error{Op: "unmap", Path: f.path, Err: err}
	}
	return nil
}
