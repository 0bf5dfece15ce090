package thumbnail

import (
	"errors"
	"fmt"
)

// ErrorKind classifies why thumbnail generation failed.
type ErrorKind int

const (
	// UnsupportedFormat means the input suffix is neither .zip nor .rar.
	UnsupportedFormat ErrorKind = iota + 1
	// NoImageFound means the archive has no entry with a supported image suffix.
	NoImageFound
	// ArchiveError means the container could not be opened or read.
	ArchiveError
	// DecodeError means the selected entry is not a decodable image.
	DecodeError
	// IOError means the thumbnail could not be written.
	IOError
)

// String returns the kind's name, e.g. "NoImageFound".
func (k ErrorKind) String() string {
	switch k {
	case UnsupportedFormat:
		return "UnsupportedFormat"
	case NoImageFound:
		return "NoImageFound"
	case ArchiveError:
		return "ArchiveError"
	case DecodeError:
		return "DecodeError"
	case IOError:
		return "IOError"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Sentinel causes for the two failures detected by the generator itself.
// Their text is the user-facing diagnostic, hence the capitalisation.
var (
	// ErrUnsupportedFormat is the cause of UnsupportedFormat errors.
	ErrUnsupportedFormat = errors.New("Unsupported format") //nolint:staticcheck // ST1005: printed verbatim as the diagnostic

	// ErrNoImageFound is the cause of NoImageFound errors.
	ErrNoImageFound = errors.New("No images found in archive") //nolint:staticcheck // ST1005: printed verbatim as the diagnostic
)

// Error is a classified generation failure.
type Error struct {
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(kind ErrorKind, err error) *Error {
	return &Error{Kind: kind, Err: err}
}

// KindOf returns the ErrorKind of err, or 0 if err is nil or unclassified
// (for example a cancelled context).
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// ExitCode maps a Generate result to a process exit status: 0 on success,
// 1 on any failure.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
