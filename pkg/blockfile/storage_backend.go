package blockfile

import (
	"time"
)

// StorageBackend is a random access byte store against which a
// BlockFile performs its I/O. It has a single file pointer, which is
// owned by the BlockFile that uses it.
//
// Implementations do not perform any retrying or locking. Errors are
// returned to the caller as is.
type StorageBackend interface {
	// Set the position at which the next read or write starts.
	SetFilePointer(position int64) error
	// Read exactly len(p) bytes at the current position, advancing
	// the file pointer.
	ReadFully(p []byte) error
	// Write all of p at the current position, advancing the file
	// pointer.
	Write(p []byte) error

	Length() (int64, error)
	// Grow or shrink the store. Growing fills the store with null
	// bytes.
	SetLength(length int64) error

	// Flush any buffered writes to persistent storage.
	Flush() error
	Close() error

	IsReadOnly() bool
	// The time at which the store was last modified, regardless of
	// through which channel that happened.
	GetLastModified() (time.Time, error)
}
