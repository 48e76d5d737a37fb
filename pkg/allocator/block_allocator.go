package allocator

// BlockAllocator keeps track of which blocks in the index space
// [0, Capacity()) of a block file are in use. It has no knowledge of
// the contents of the blocks.
//
// Implementations are not safe for concurrent use. Callers that share
// a BlockAllocator between goroutines need to provide their own
// locking.
type BlockAllocator interface {
	// Allocate a single free block. The search for a free block
	// starts where the previous allocation left off and wraps around
	// once. The boolean is false if all blocks are in use.
	AllocateBlock() (int, bool)
	// Mark a specific block as allocated. Allocating a block that is
	// already allocated is a no-op.
	AllocateBlockAt(index int) error
	// Allocate up to n blocks. If fewer than n blocks are free, the
	// blocks that could be allocated are returned. It is up to the
	// caller to detect the short result and to grow the capacity.
	AllocateBlocks(n int) []int

	// Mark a block as free. Freeing a block that is already free is
	// a no-op.
	DeallocateBlock(index int) error
	// Mark a list of blocks as free. All indices are validated
	// before any of them are freed.
	DeallocateBlocks(indices []int) error
	// Free all blocks and reset the capacity to the one with which
	// the allocator was created.
	DeallocateAllBlocks()

	IsAllocated(index int) (bool, error)
	// Return the indices of all allocated blocks in ascending order.
	GetAllocatedBlocks() []int
	AllocatedBlockCount() int
	// One past the highest allocated index, or zero if no blocks are
	// allocated. Blocks at or beyond this index may be truncated.
	SpaceInUse() int

	Capacity() int
	// Grow or shrink the index space. Shrinking below SpaceInUse()
	// is rejected, as it would discard allocated blocks.
	SetCapacity(capacity int) error
}

// BlockAllocatorFactory creates BlockAllocators. The allocation bitmap
// is not persisted, which is why the owner of a block file needs to
// provide the list of occupied indices upon creation.
type BlockAllocatorFactory interface {
	NewBlockAllocator(initialCapacity int, occupiedIndices []int) (BlockAllocator, error)
}
