package datafile

import (
	"github.com/google/uuid"
)

// DataFile stores variable length items in a BlockFile. Every item is
// stored as a chain of blocks, linked together through block headers.
// Items are identified by the index of the first block in their chain,
// which remains stable for the lifetime of the item.
//
// Implementations are not safe for concurrent use. Use
// NewLockingDataFile() to serialize access.
type DataFile interface {
	// Create a new item, returning the index of its start block.
	InsertItemData(data []byte) (int, error)
	InsertBlankItemData(size int) (int, error)

	GetItemData(startBlock int) ([]byte, error)
	GetPartialItemData(startBlock, offset, length int) ([]byte, error)
	GetItemSize(startBlock int) (int, error)

	// Replace the contents of an item. The chain is extended or
	// truncated to match the new size.
	UpdateItemData(startBlock int, data []byte) error
	// Overwrite the contents of an item, starting at a given
	// offset. Data extending past the end of the item grows it.
	UpdatePartialItemData(startBlock, offset int, data []byte) error
	AppendItemData(startBlock int, data []byte) error
	AppendBlankItemData(startBlock, size int) error
	// Remove a number of bytes from the end of an item.
	DeletePartialItemData(startBlock, removeSize int) error
	DeleteItemData(startBlock int) error

	// Return the start blocks of all items, in increasing order.
	GetDataStartBlocks() ([]int, error)
	// Remove all items, shrinking the file to its initial capacity.
	ClearAllBlocks() error
	// Release unused capacity at the end of the file.
	TrimToSize() error
	GetStatistics() Statistics

	IsModifiedExternally() (bool, error)
	Sync() error
	Close() error
}

// Statistics on the utilization of a DataFile.
type Statistics struct {
	FileID               uuid.UUID
	BlockSizeBytes       int
	PayloadSizeBytes     int
	HeaderSizeBytes      int
	InitialBlockCapacity int
	BlockCapacity        int
	AllocatedBlocks      int
	SpaceInUseBlocks     int
}
