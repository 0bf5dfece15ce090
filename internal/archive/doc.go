// Package archive reads entries out of ZIP and RAR containers.
//
// The package exposes a small capability surface shared by both formats:
// list the entry names in the container's native order and read the full
// contents of one entry by name. Format detection is done once from the
// file suffix (see KindFromPath) and the caller branches on the resulting
// Kind.
//
// # Formats
//
//   - ZIP: random access through the central directory
//     (github.com/klauspost/compress/zip).
//   - RAR: sequential access (github.com/nwaples/rardecode/v2). Reading an
//     entry rewinds the file and streams forward until the entry is found.
//
// # Resource Ownership
//
// An Archive owns the file it was opened from. Callers must call Close once
// they are done, typically with defer immediately after a successful Open.
//
// All file access goes through an afero.Fs so tests can run against an
// in-memory filesystem.
package archive
