package allocator

import (
	"math/bits"

	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	allBits = ^uint64(0)
)

type bitmapBlockAllocator struct {
	freeBitmap      []uint64 // One bits indicate blocks that are free.
	capacity        int
	initialCapacity int
	allocatedCount  int
	nextBlock       int
}

// newFreeBitmap constructs a bitmap in which all blocks are free. The
// bitmap is a bit too big, so that it's always terminated with one or
// more bits that are permanently in use. This prevents the need for
// explicit bounds checking while scanning.
func newFreeBitmap(capacity int) []uint64 {
	freeBitmap := make([]uint64, capacity/64+1)
	for i := 0; i < capacity/64; i++ {
		freeBitmap[i] = allBits
	}
	freeBitmap[capacity/64] = ^(allBits << (capacity % 64))
	return freeBitmap
}

// NewBitmapBlockAllocator creates a BlockAllocator that stores
// information on which blocks are allocated in a bitmap. Blocks are
// allocated by sequentially scanning the bitmap, continuing where
// previous calls left off. This prevents allocations from being biased
// towards the start of the file.
func NewBitmapBlockAllocator(initialCapacity int) BlockAllocator {
	return &bitmapBlockAllocator{
		freeBitmap:      newFreeBitmap(initialCapacity),
		capacity:        initialCapacity,
		initialCapacity: initialCapacity,
	}
}

type bitmapBlockAllocatorFactory struct{}

func (bitmapBlockAllocatorFactory) NewBlockAllocator(initialCapacity int, occupiedIndices []int) (BlockAllocator, error) {
	if initialCapacity < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "Negative block capacity: %d", initialCapacity)
	}
	ba := NewBitmapBlockAllocator(initialCapacity)
	for _, index := range occupiedIndices {
		if err := ba.AllocateBlockAt(index); err != nil {
			return nil, util.StatusWrap(err, "Failed to mark occupied block")
		}
	}
	return ba, nil
}

// BitmapBlockAllocatorFactory is a BlockAllocatorFactory that creates
// instances of NewBitmapBlockAllocator().
var BitmapBlockAllocatorFactory BlockAllocatorFactory = bitmapBlockAllocatorFactory{}

func (ba *bitmapBlockAllocator) checkBounds(index int) error {
	if index < 0 || index >= ba.capacity {
		return status.Errorf(codes.OutOfRange, "Block %d is outside the range [0, %d)", index, ba.capacity)
	}
	return nil
}

func (ba *bitmapBlockAllocator) isFree(index int) bool {
	return ba.freeBitmap[index/64]&(1<<(index%64)) != 0
}

// validMask returns the bits of a bitmap word that correspond to
// blocks within the current capacity.
func validMask(capacity, word int) uint64 {
	switch {
	case word < capacity/64:
		return allBits
	case word == capacity/64:
		return ^(allBits << (capacity % 64))
	default:
		return 0
	}
}

func (ba *bitmapBlockAllocator) AllocateBlock() (int, bool) {
	if ba.allocatedCount == ba.capacity {
		return 0, false
	}

	// Allocate from the current bitmap word.
	split := ba.nextBlock / 64
	if m := ba.freeBitmap[split] & (allBits << (ba.nextBlock % 64)); m != 0 {
		return ba.allocateAt(split, m), true
	}

	// Allocate from the current location to the end.
	for i := split + 1; i < len(ba.freeBitmap); i++ {
		if m := ba.freeBitmap[i]; m != 0 {
			return ba.allocateAt(i, m), true
		}
	}

	// Allocate from the beginning to the current location.
	for i := 0; i <= split; i++ {
		if m := ba.freeBitmap[i]; m != 0 {
			return ba.allocateAt(i, m), true
		}
	}
	panic("Allocated block count is inconsistent with the bitmap")
}

func (ba *bitmapBlockAllocator) allocateAt(word int, mask uint64) int {
	shift := bits.TrailingZeros64(mask)
	ba.freeBitmap[word] &^= 1 << shift
	ba.allocatedCount++

	index := word*64 + shift
	ba.nextBlock = index + 1
	if ba.nextBlock >= ba.capacity {
		ba.nextBlock = 0
	}
	return index
}

func (ba *bitmapBlockAllocator) AllocateBlockAt(index int) error {
	if err := ba.checkBounds(index); err != nil {
		return err
	}
	if ba.isFree(index) {
		ba.freeBitmap[index/64] &^= 1 << (index % 64)
		ba.allocatedCount++
	}
	return nil
}

func (ba *bitmapBlockAllocator) AllocateBlocks(n int) []int {
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

func (ba *bitmapBlockAllocator) DeallocateBlock(index int) error {
	if err := ba.checkBounds(index); err != nil {
		return err
	}
	if !ba.isFree(index) {
		ba.freeBitmap[index/64] |= 1 << (index % 64)
		ba.allocatedCount--
	}
	return nil
}

func (ba *bitmapBlockAllocator) DeallocateBlocks(indices []int) error {
	for _, index := range indices {
		if err := ba.checkBounds(index); err != nil {
			return err
		}
	}
	for _, index := range indices {
		ba.DeallocateBlock(index)
	}
	return nil
}

func (ba *bitmapBlockAllocator) DeallocateAllBlocks() {
	ba.freeBitmap = newFreeBitmap(ba.initialCapacity)
	ba.capacity = ba.initialCapacity
	ba.allocatedCount = 0
	ba.nextBlock = 0
}

func (ba *bitmapBlockAllocator) IsAllocated(index int) (bool, error) {
	if err := ba.checkBounds(index); err != nil {
		return false, err
	}
	return !ba.isFree(index), nil
}

func (ba *bitmapBlockAllocator) GetAllocatedBlocks() []int {
	indices := make([]int, 0, ba.allocatedCount)
	for word := range ba.freeBitmap {
		m := ^ba.freeBitmap[word] & validMask(ba.capacity, word)
		for m != 0 {
			shift := bits.TrailingZeros64(m)
			indices = append(indices, word*64+shift)
			m &^= 1 << shift
		}
	}
	return indices
}

func (ba *bitmapBlockAllocator) AllocatedBlockCount() int {
	return ba.allocatedCount
}

func (ba *bitmapBlockAllocator) SpaceInUse() int {
	for word := len(ba.freeBitmap) - 1; word >= 0; word-- {
		if m := ^ba.freeBitmap[word] & validMask(ba.capacity, word); m != 0 {
			return word*64 + 64 - bits.LeadingZeros64(m)
		}
	}
	return 0
}

func (ba *bitmapBlockAllocator) Capacity() int {
	return ba.capacity
}

func (ba *bitmapBlockAllocator) SetCapacity(capacity int) error {
	if capacity < 0 {
		return status.Errorf(codes.InvalidArgument, "Negative block capacity: %d", capacity)
	}
	if spaceInUse := ba.SpaceInUse(); capacity < spaceInUse {
		return status.Errorf(codes.FailedPrecondition, "Cannot shrink capacity to %d blocks, as block %d is still allocated", capacity, spaceInUse-1)
	}

	// Carry over the allocated blocks into a fresh bitmap.
	freeBitmap := newFreeBitmap(capacity)
	for word := 0; word < len(freeBitmap) && word < len(ba.freeBitmap); word++ {
		freeBitmap[word] &^= ^ba.freeBitmap[word] & validMask(ba.capacity, word)
	}
	ba.freeBitmap = freeBitmap
	ba.capacity = capacity
	if ba.nextBlock >= capacity {
		ba.nextBlock = 0
	}
	return nil
}
