package archive

import (
	"fmt"
	"io"

	"github.com/klauspost/compress/zip"
	"github.com/spf13/afero"
)

type zipArchive struct {
	file   afero.File
	reader *zip.Reader
}

func openZip(f afero.File) (*zipArchive, error) {
	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	r, err := zip.NewReader(f, stat.Size())
	if err != nil {
		return nil, err
	}

	return &zipArchive{file: f, reader: r}, nil
}

func (z *zipArchive) Names() []string {
	names := make([]string, 0, len(z.reader.File))
	for _, entry := range z.reader.File {
		names = append(names, entry.Name)
	}
	return names
}

func (z *zipArchive) ReadFile(name string) ([]byte, error) {
	for _, entry := range z.reader.File {
		if entry.Name != name {
			continue
		}

		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open entry %s: %w", name, err)
		}
		defer rc.Close()

		data, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("failed to read entry %s: %w", name, err)
		}
		return data, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrEntryNotFound, name)
}

func (z *zipArchive) Close() error {
	return z.file.Close()
}
