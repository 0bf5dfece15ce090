package archive

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

// Kind identifies the container format of an archive file.
type Kind int

const (
	// KindUnsupported is any file whose suffix is neither .zip nor .rar.
	KindUnsupported Kind = iota
	// KindZip is a ZIP container.
	KindZip
	// KindRar is a RAR container.
	KindRar
)

// String returns the lowercase format name.
func (k Kind) String() string {
	switch k {
	case KindZip:
		return "zip"
	case KindRar:
		return "rar"
	default:
		return "unsupported"
	}
}

// ErrEntryNotFound is returned by ReadFile when no entry has the given name.
var ErrEntryNotFound = errors.New("entry not found in archive")

// Archive is an open ZIP or RAR container.
type Archive interface {
	// Names returns the entry names in the container's native order.
	Names() []string

	// ReadFile returns the full contents of the named entry.
	ReadFile(name string) ([]byte, error)

	// Close releases the underlying file.
	Close() error
}

// KindFromPath resolves the archive kind from the file suffix.
// Matching is case-insensitive and never touches the filesystem.
func KindFromPath(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zip":
		return KindZip
	case ".rar":
		return KindRar
	default:
		return KindUnsupported
	}
}

// Open opens the archive at path as the given kind.
//
// The returned Archive owns the file handle. If Open fails the file is
// already closed.
func Open(fs afero.Fs, path string, kind Kind) (Archive, error) {
	if kind == KindUnsupported {
		return nil, fmt.Errorf("unsupported archive format: %s", path)
	}

	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	var a Archive
	switch kind {
	case KindZip:
		a, err = openZip(f)
	case KindRar:
		a, err = openRar(f)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to read %s archive %s: %w", kind, path, err)
	}

	return a, nil
}
