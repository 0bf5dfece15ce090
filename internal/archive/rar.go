package archive

import (
	"errors"
	"fmt"
	"io"

	"github.com/nwaples/rardecode/v2"
	"github.com/spf13/afero"
)

// rarArchive wraps a single-volume RAR file. RAR has no central directory,
// so the entry list is built by one pass over the headers at open time.
type rarArchive struct {
	file  afero.File
	names []string
}

func openRar(f afero.File) (*rarArchive, error) {
	a := &rarArchive{file: f}

	err := a.walk(func(hdr *rardecode.FileHeader, _ io.Reader) (bool, error) {
		if !hdr.IsDir {
			a.names = append(a.names, hdr.Name)
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return a, nil
}

// walk rewinds the file and calls fn for every header in order until fn
// reports done or the archive ends.
func (a *rarArchive) walk(fn func(hdr *rardecode.FileHeader, r io.Reader) (bool, error)) error {
	if _, err := a.file.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("failed to rewind archive: %w", err)
	}

	rr, err := rardecode.NewReader(a.file)
	if err != nil {
		return err
	}

	for {
		hdr, err := rr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		done, err := fn(hdr, rr)
		if err != nil || done {
			return err
		}
	}
}

func (a *rarArchive) Names() []string {
	names := make([]string, len(a.names))
	copy(names, a.names)
	return names
}

func (a *rarArchive) ReadFile(name string) ([]byte, error) {
	var (
		data  []byte
		found bool
	)

	err := a.walk(func(hdr *rardecode.FileHeader, r io.Reader) (bool, error) {
		if hdr.IsDir || hdr.Name != name {
			return false, nil
		}
		found = true

		var err error
		data, err = io.ReadAll(r)
		if err != nil {
			return true, fmt.Errorf("failed to read entry %s: %w", name, err)
		}
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
	}

	return data, nil
}

func (a *rarArchive) Close() error {
	return a.file.Close()
}
