//go:build !unix

package textdb

import (
	"os"

	"github.com/pkg/errors"
)

// MappedFile holds the contents of a file. On this platform the file is
// read into memory instead of being mapped.
type MappedFile struct {
	data []byte
}

// OpenMapped reads the named file into memory.
func OpenMapped(name string) (*MappedFile, error) {
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "textdb: read %s", name)
	}
	return &MappedFile{data: data}, nil
}

// Size implements Source.
func (m *MappedFile) Size() int64 { return int64(len(m.data)) }

// Slice implements Source.
func (m *MappedFile) Slice(start, end int64) ([]byte, error) {
	return m.data[start:end:end], nil
}

// Close releases the data.
func (m *MappedFile) Close() error {
	m.data = nil
	return nil
}
