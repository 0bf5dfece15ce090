// Package archivetest builds ZIP and RAR archives for tests.
//
// RAR archives are written in the RAR 5 format with every entry stored
// uncompressed, which is enough for readers that only need to list and
// extract entries.
package archivetest

import (
	"archive/zip"
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/spf13/afero"
)

// Entry is one archive member. Dir entries carry no content.
type Entry struct {
	Name    string
	Content []byte
	Dir     bool
}

// File returns a regular file entry.
func File(name string, content []byte) Entry {
	return Entry{Name: name, Content: content}
}

// Dir returns a directory entry.
func Dir(name string) Entry {
	return Entry{Name: name, Dir: true}
}

// Zip returns a ZIP archive holding entries in the given order.
func Zip(tb testing.TB, entries ...Entry) []byte {
	tb.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range entries {
		name := e.Name
		if e.Dir && (name == "" || name[len(name)-1] != '/') {
			name += "/"
		}
		w, err := zw.Create(name)
		if err != nil {
			tb.Fatalf("failed to create zip entry %s: %v", name, err)
		}
		if _, err := w.Write(e.Content); err != nil {
			tb.Fatalf("failed to write zip entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		tb.Fatalf("failed to close zip: %v", err)
	}
	return buf.Bytes()
}

// RAR 5 block types and flags.
const (
	rarBlockMain = 1
	rarBlockFile = 2
	rarBlockEnd  = 5

	rarHasData = 0x0002

	rarFileIsDir    = 0x0001
	rarFileHasCRC32 = 0x0004

	rarHostUnix = 1
)

var rarSignature = []byte("Rar!\x1a\x07\x01\x00")

// Rar returns a single-volume RAR 5 archive holding entries in the given
// order, all stored without compression.
func Rar(tb testing.TB, entries ...Entry) []byte {
	tb.Helper()

	var buf bytes.Buffer
	buf.Write(rarSignature)

	// Main archive header with no archive flags.
	writeRarBlock(&buf, rarBlockMain, 0, 0, binary.AppendUvarint(nil, 0))

	for _, e := range entries {
		var (
			fileFlags uint64
			attrs     uint64 = 0o100644
			flags     uint64 = rarHasData
		)
		if e.Dir {
			fileFlags |= rarFileIsDir
			attrs = 0o040755
			flags = 0
		} else {
			fileFlags |= rarFileHasCRC32
		}

		var fields []byte
		fields = binary.AppendUvarint(fields, fileFlags)
		fields = binary.AppendUvarint(fields, uint64(len(e.Content)))
		fields = binary.AppendUvarint(fields, attrs)
		if !e.Dir {
			fields = binary.LittleEndian.AppendUint32(fields, crc32.ChecksumIEEE(e.Content))
		}
		fields = binary.AppendUvarint(fields, 0) // compression: stored
		fields = binary.AppendUvarint(fields, rarHostUnix)
		fields = binary.AppendUvarint(fields, uint64(len(e.Name)))
		fields = append(fields, e.Name...)

		writeRarBlock(&buf, rarBlockFile, flags, uint64(len(e.Content)), fields)
		if !e.Dir {
			buf.Write(e.Content)
		}
	}

	// End of archive, last volume.
	writeRarBlock(&buf, rarBlockEnd, 0, 0, binary.AppendUvarint(nil, 0))

	return buf.Bytes()
}

// writeRarBlock writes one header: CRC32, size, type, flags, optional data
// size, then the type specific fields. The CRC covers everything after
// itself.
func writeRarBlock(buf *bytes.Buffer, blockType, flags, dataSize uint64, fields []byte) {
	var hdr []byte
	hdr = binary.AppendUvarint(hdr, blockType)
	hdr = binary.AppendUvarint(hdr, flags)
	if flags&rarHasData != 0 {
		hdr = binary.AppendUvarint(hdr, dataSize)
	}
	hdr = append(hdr, fields...)

	sized := binary.AppendUvarint(nil, uint64(len(hdr)))
	sized = append(sized, hdr...)

	var crc [4]byte
	binary.LittleEndian.PutUint32(crc[:], crc32.ChecksumIEEE(sized))
	buf.Write(crc[:])
	buf.Write(sized)
}

// WriteZip stores a ZIP archive of entries at path on fs.
func WriteZip(tb testing.TB, fs afero.Fs, path string, entries ...Entry) {
	tb.Helper()
	if err := afero.WriteFile(fs, path, Zip(tb, entries...), 0644); err != nil {
		tb.Fatalf("failed to write %s: %v", path, err)
	}
}

// WriteRar stores a RAR archive of entries at path on fs.
func WriteRar(tb testing.TB, fs afero.Fs, path string, entries ...Entry) {
	tb.Helper()
	if err := afero.WriteFile(fs, path, Rar(tb, entries...), 0644); err != nil {
		tb.Fatalf("failed to write %s: %v", path, err)
	}
}
