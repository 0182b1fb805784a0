//go:build unix

package textdb

import (
	"os"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// MappedFile is a read-only memory-mapped file. Slices point directly
// into the mapping and become invalid once the file is closed.
//
// The mapping is shared with the file system: if another process
// truncates the file while it is mapped, reads past the new end fault.
type MappedFile struct {
	data []byte
}

// OpenMapped maps the named file into memory.
func OpenMapped(name string) (*MappedFile, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "textdb: open %s", name)
	}
	defer f.Close()

	fi, err := f.Stat()
	if err != nil {
		return nil, errors.Wrapf(err, "textdb: stat %s", name)
	}

	size := fi.Size()
	if size == 0 {
		return &MappedFile{}, nil
	}
	if int64(int(size)) != size {
		return nil, errors.Errorf("textdb: %s is too large to map", name)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, errors.Wrapf(err, "textdb: mmap %s", name)
	}
	return &MappedFile{data: data}, nil
}

// Size implements Source.
func (m *MappedFile) Size() int64 { return int64(len(m.data)) }

// Slice implements Source.
func (m *MappedFile) Slice(start, end int64) ([]byte, error) {
	return m.data[start:end:end], nil
}

// Close unmaps the file.
func (m *MappedFile) Close() error {
	if m.data == nil {
		return nil
	}

	data := m.data
	m.data = nil
	return unix.Munmap(data)
}
