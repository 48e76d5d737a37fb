package blockfile

import (
	"time"
)

// BlockFile provides access to a StorageBackend as a fixed-size header
// region, followed by an array of equally sized blocks.
//
// Byte offset of block i = HeaderSizeBytes() + i*BlockSizeBytes().
type BlockFile interface {
	BlockSizeBytes() int
	HeaderSizeBytes() int

	// The number of blocks that fit in the storage backend. Changing
	// the capacity grows or truncates the storage backend.
	BlockCapacity() int
	SetBlockCapacity(capacity int) error

	// Access the region preceding block zero. The contents of this
	// region are opaque to the BlockFile.
	ReadHeader(p []byte) error
	WriteHeader(p []byte) error

	// Whole block I/O. The variants taking a list of indices transfer
	// the blocks in the order provided, where runs of consecutive
	// indices are transferred using a single backend call. The
	// buffer may be shorter than the combined size of the blocks, in
	// which case only a prefix is transferred.
	ReadBlock(p []byte, index int) error
	ReadBlocks(p []byte, indices []int) error
	WriteBlock(p []byte, index int) error
	WriteBlocks(p []byte, indices []int) error

	// Partial block I/O, starting at a byte offset within the block.
	// The variants taking a list of indices transfer exactly length
	// bytes per block, packed contiguously in the buffer.
	ReadPartialBlock(p []byte, index, blockOffset int) error
	ReadPartialBlocks(p []byte, indices []int, blockOffset, length int) error
	WritePartialBlock(p []byte, index, blockOffset int) error
	WritePartialBlocks(p []byte, indices []int, blockOffset, length int) error

	// The cached position of the storage backend's file pointer.
	// Negative values indicate that the position is unknown, either
	// because no I/O took place yet, or because the last I/O
	// operation failed.
	Position() int64

	// The time at which this BlockFile last modified the storage
	// backend, and the time at which the storage backend was last
	// modified through any channel.
	LastWrite() time.Time
	GetLastModified() (time.Time, error)
	// Whether the storage backend was modified by another party
	// after this BlockFile last wrote to it. This is advisory.
	IsModifiedExternally() (bool, error)

	IsReadOnly() bool
	Sync() error
	Close() error
}
