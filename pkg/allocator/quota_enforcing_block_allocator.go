package allocator

type quotaEnforcingBlockAllocator struct {
	BlockAllocator

	blocksRemaining blockQuota
}

// NewQuotaEnforcingBlockAllocator creates a BlockAllocator that limits
// how many blocks may be allocated from an underlying BlockAllocator at
// the same time, regardless of its capacity. This can be used to put
// an upper bound on the size of a data file, as the data file grows its
// capacity whenever the allocator runs out of blocks.
func NewQuotaEnforcingBlockAllocator(base BlockAllocator, maximumBlocks int64) BlockAllocator {
	ba := &quotaEnforcingBlockAllocator{
		BlockAllocator: base,
	}
	ba.blocksRemaining.release(maximumBlocks - int64(base.AllocatedBlockCount()))
	return ba
}

func (ba *quotaEnforcingBlockAllocator) AllocateBlock() (int, bool) {
	if !ba.blocksRemaining.reserve(1) {
		return 0, false
	}
	index, ok := ba.BlockAllocator.AllocateBlock()
	if !ok {
		ba.blocksRemaining.release(1)
	}
	return index, ok
}

func (ba *quotaEnforcingBlockAllocator) AllocateBlockAt(index int) error {
	allocated, err := ba.BlockAllocator.IsAllocated(index)
	if err != nil {
		return err
	}
	if allocated {
		return nil
	}
	// Blocks marked explicitly are already in use, for example when
	// restoring the state of an existing data file. They are charged
	// like seeded blocks, even if this exceeds the quota.
	if err := ba.BlockAllocator.AllocateBlockAt(index); err != nil {
		return err
	}
	ba.blocksRemaining.release(-1)
	return nil
}

func (ba *quotaEnforcingBlockAllocator) AllocateBlocks(n int) []int {
	indices := make([]int, 0, n)
	for len(indices) < n {
		index, ok := ba.AllocateBlock()
		if !ok {
			break
		}
		indices = append(indices, index)
	}
	return indices
}

func (ba *quotaEnforcingBlockAllocator) DeallocateBlock(index int) error {
	return ba.DeallocateBlocks([]int{index})
}

func (ba *quotaEnforcingBlockAllocator) DeallocateBlocks(indices []int) error {
	// Only blocks that transition from allocated to free give back
	// quota. Duplicate indices are counted once.
	released := make(map[int]struct{}, len(indices))
	for _, index := range indices {
		allocated, err := ba.BlockAllocator.IsAllocated(index)
		if err != nil {
			return err
		}
		if allocated {
			released[index] = struct{}{}
		}
	}
	if err := ba.BlockAllocator.DeallocateBlocks(indices); err != nil {
		return err
	}
	ba.blocksRemaining.release(int64(len(released)))
	return nil
}

func (ba *quotaEnforcingBlockAllocator) DeallocateAllBlocks() {
	ba.blocksRemaining.release(int64(ba.BlockAllocator.AllocatedBlockCount()))
	ba.BlockAllocator.DeallocateAllBlocks()
}

type quotaEnforcingBlockAllocatorFactory struct {
	base          BlockAllocatorFactory
	maximumBlocks int64
}

// NewQuotaEnforcingBlockAllocatorFactory creates a BlockAllocatorFactory
// that wraps all allocators created by an underlying factory with
// NewQuotaEnforcingBlockAllocator().
func NewQuotaEnforcingBlockAllocatorFactory(base BlockAllocatorFactory, maximumBlocks int64) BlockAllocatorFactory {
	return &quotaEnforcingBlockAllocatorFactory{
		base:          base,
		maximumBlocks: maximumBlocks,
	}
}

func (f *quotaEnforcingBlockAllocatorFactory) NewBlockAllocator(initialCapacity int, occupiedIndices []int) (BlockAllocator, error) {
	ba, err := f.base.NewBlockAllocator(initialCapacity, occupiedIndices)
	if err != nil {
		return nil, err
	}
	return NewQuotaEnforcingBlockAllocator(ba, f.maximumBlocks), nil
}
