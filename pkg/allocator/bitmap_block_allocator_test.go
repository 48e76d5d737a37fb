package allocator_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/buildbarn/bb-datafile/pkg/allocator"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/stretchr/testify/require"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestBitmapBlockAllocatorExample(t *testing.T) {
	blockAllocator := allocator.NewBitmapBlockAllocator(130)

	// Allocate all blocks. As the cursor starts at zero, they
	// should be handed out in incrementing order.
	for i := 0; i < 130; i++ {
		index, ok := blockAllocator.AllocateBlock()
		require.True(t, ok)
		require.Equal(t, i, index)
	}
	require.Equal(t, 130, blockAllocator.AllocatedBlockCount())

	// Allocating successive blocks should fail.
	_, ok := blockAllocator.AllocateBlock()
	require.False(t, ok)

	// Free up some blocks here and there. They should be returned
	// in incrementing order, as the cursor wrapped around.
	require.NoError(t, blockAllocator.DeallocateBlocks([]int{70, 3, 129, 5}))
	require.Equal(t, 126, blockAllocator.AllocatedBlockCount())
	for _, expected := range []int{3, 5, 70, 129} {
		index, ok := blockAllocator.AllocateBlock()
		require.True(t, ok)
		require.Equal(t, expected, index)
	}

	_, ok = blockAllocator.AllocateBlock()
	require.False(t, ok)
}

func TestBitmapBlockAllocatorRotatingCursor(t *testing.T) {
	blockAllocator := allocator.NewBitmapBlockAllocator(10)

	require.Equal(t, []int{0, 1, 2}, blockAllocator.AllocateBlocks(3))

	// Block zero is freed, but the next allocation continues where
	// the previous one left off.
	require.NoError(t, blockAllocator.DeallocateBlock(0))
	index, ok := blockAllocator.AllocateBlock()
	require.True(t, ok)
	require.Equal(t, 3, index)

	// Only after wrapping around is block zero handed out again.
	require.Equal(t, []int{4, 5, 6, 7, 8, 9, 0}, blockAllocator.AllocateBlocks(7))
}

func TestBitmapBlockAllocatorAllocateBlockAt(t *testing.T) {
	blockAllocator := allocator.NewBitmapBlockAllocator(100)

	// Allocating the same block twice is a no-op.
	require.NoError(t, blockAllocator.AllocateBlockAt(64))
	require.NoError(t, blockAllocator.AllocateBlockAt(64))
	require.Equal(t, 1, blockAllocator.AllocatedBlockCount())

	allocated, err := blockAllocator.IsAllocated(64)
	require.NoError(t, err)
	require.True(t, allocated)
	allocated, err = blockAllocator.IsAllocated(63)
	require.NoError(t, err)
	require.False(t, allocated)

	// The same holds for freeing.
	require.NoError(t, blockAllocator.DeallocateBlock(64))
	require.NoError(t, blockAllocator.DeallocateBlock(64))
	require.Equal(t, 0, blockAllocator.AllocatedBlockCount())
}

func TestBitmapBlockAllocatorOutOfBounds(t *testing.T) {
	blockAllocator := allocator.NewBitmapBlockAllocator(10)

	_, err := blockAllocator.IsAllocated(-1)
	testutil.RequireEqualStatus(t, status.Error(codes.OutOfRange, "Block -1 is outside the range [0, 10)"), err)
	_, err = blockAllocator.IsAllocated(10)
	testutil.RequireEqualStatus(t, status.Error(codes.OutOfRange, "Block 10 is outside the range [0, 10)"), err)
	testutil.RequireEqualStatus(t, status.Error(codes.OutOfRange, "Block 11 is outside the range [0, 10)"), blockAllocator.AllocateBlockAt(11))
	testutil.RequireEqualStatus(t, status.Error(codes.OutOfRange, "Block 12 is outside the range [0, 10)"), blockAllocator.DeallocateBlock(12))

	// Batch deallocation validates all indices before freeing any.
	require.NoError(t, blockAllocator.AllocateBlockAt(2))
	testutil.RequireEqualStatus(t, status.Error(codes.OutOfRange, "Block 10 is outside the range [0, 10)"), blockAllocator.DeallocateBlocks([]int{2, 10}))
	allocated, err := blockAllocator.IsAllocated(2)
	require.NoError(t, err)
	require.True(t, allocated)
}

func TestBitmapBlockAllocatorAllocateBlocksShort(t *testing.T) {
	blockAllocator := allocator.NewBitmapBlockAllocator(5)

	require.NoError(t, blockAllocator.AllocateBlockAt(1))
	require.Equal(t, []int{0, 2, 3, 4}, blockAllocator.AllocateBlocks(10))
	require.Empty(t, blockAllocator.AllocateBlocks(1))
}

func TestBitmapBlockAllocatorSetCapacity(t *testing.T) {
	blockAllocator := allocator.NewBitmapBlockAllocator(4)
	require.Equal(t, []int{0, 1, 2, 3}, blockAllocator.AllocateBlocks(4))
	require.Equal(t, 4, blockAllocator.SpaceInUse())

	t.Run("Grow", func(t *testing.T) {
		// Growing makes the new indices allocatable, while
		// retaining existing allocations.
		require.NoError(t, blockAllocator.SetCapacity(200))
		require.Equal(t, 200, blockAllocator.Capacity())
		require.Equal(t, []int{4, 5, 6}, blockAllocator.AllocateBlocks(3))
		require.Equal(t, 7, blockAllocator.AllocatedBlockCount())
		require.NoError(t, blockAllocator.AllocateBlockAt(199))
		require.Equal(t, 200, blockAllocator.SpaceInUse())
	})

	t.Run("ShrinkBelowSpaceInUse", func(t *testing.T) {
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.FailedPrecondition, "Cannot shrink capacity to 100 blocks, as block 199 is still allocated"),
			blockAllocator.SetCapacity(100))
		require.Equal(t, 200, blockAllocator.Capacity())
	})

	t.Run("Shrink", func(t *testing.T) {
		require.NoError(t, blockAllocator.DeallocateBlock(199))
		require.NoError(t, blockAllocator.SetCapacity(7))
		require.Equal(t, 7, blockAllocator.Capacity())
		require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, blockAllocator.GetAllocatedBlocks())
		_, ok := blockAllocator.AllocateBlock()
		require.False(t, ok)

		_, err := blockAllocator.IsAllocated(7)
		testutil.RequireEqualStatus(t, status.Error(codes.OutOfRange, "Block 7 is outside the range [0, 7)"), err)
	})

	t.Run("Negative", func(t *testing.T) {
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Negative block capacity: -1"), blockAllocator.SetCapacity(-1))
	})
}

func TestBitmapBlockAllocatorDeallocateAllBlocks(t *testing.T) {
	blockAllocator := allocator.NewBitmapBlockAllocator(8)
	require.NoError(t, blockAllocator.SetCapacity(300))
	require.Len(t, blockAllocator.AllocateBlocks(250), 250)

	// Deallocating everything resets the allocator to its initial
	// capacity, as opposed to the current one.
	blockAllocator.DeallocateAllBlocks()
	require.Equal(t, 8, blockAllocator.Capacity())
	require.Equal(t, 0, blockAllocator.AllocatedBlockCount())
	require.Equal(t, 0, blockAllocator.SpaceInUse())
	require.Empty(t, blockAllocator.GetAllocatedBlocks())

	index, ok := blockAllocator.AllocateBlock()
	require.True(t, ok)
	require.Equal(t, 0, index)
}

func TestBitmapBlockAllocatorZeroCapacity(t *testing.T) {
	blockAllocator := allocator.NewBitmapBlockAllocator(0)

	_, ok := blockAllocator.AllocateBlock()
	require.False(t, ok)
	require.Equal(t, 0, blockAllocator.SpaceInUse())
	require.Empty(t, blockAllocator.GetAllocatedBlocks())
}

func TestBitmapBlockAllocatorRandomized(t *testing.T) {
	// Perform a random sequence of operations, while tracking the
	// expected state separately. The number of allocated blocks and
	// the set of allocated blocks must always match.
	blockAllocator := allocator.NewBitmapBlockAllocator(300)
	expected := map[int]struct{}{}
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		switch r.Intn(4) {
		case 0:
			index, ok := blockAllocator.AllocateBlock()
			if len(expected) == 300 {
				require.False(t, ok)
			} else {
				require.True(t, ok)
				_, alreadyAllocated := expected[index]
				require.False(t, alreadyAllocated, "Block %d was handed out twice", index)
				expected[index] = struct{}{}
			}
		case 1:
			index := r.Intn(300)
			require.NoError(t, blockAllocator.AllocateBlockAt(index))
			expected[index] = struct{}{}
		default:
			index := r.Intn(300)
			require.NoError(t, blockAllocator.DeallocateBlock(index))
			delete(expected, index)
		}
		require.Equal(t, len(expected), blockAllocator.AllocatedBlockCount())
	}

	expectedList := make([]int, 0, len(expected))
	for index := range expected {
		expectedList = append(expectedList, index)
	}
	sort.Ints(expectedList)
	require.Equal(t, expectedList, blockAllocator.GetAllocatedBlocks())
	for index := 0; index < 300; index++ {
		_, isExpected := expected[index]
		allocated, err := blockAllocator.IsAllocated(index)
		require.NoError(t, err)
		require.Equal(t, isExpected, allocated)
	}

	// Exhausting the remaining free blocks must succeed exactly
	// Capacity()-AllocatedBlockCount() times.
	remaining := 300 - blockAllocator.AllocatedBlockCount()
	require.Len(t, blockAllocator.AllocateBlocks(remaining), remaining)
	_, ok := blockAllocator.AllocateBlock()
	require.False(t, ok)
}

func TestBitmapBlockAllocatorFactory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		blockAllocator, err := allocator.BitmapBlockAllocatorFactory.NewBlockAllocator(16, []int{3, 7, 3})
		require.NoError(t, err)
		require.Equal(t, []int{3, 7}, blockAllocator.GetAllocatedBlocks())
		require.Equal(t, 8, blockAllocator.SpaceInUse())
	})

	t.Run("OutOfRange", func(t *testing.T) {
		_, err := allocator.BitmapBlockAllocatorFactory.NewBlockAllocator(16, []int{16})
		testutil.RequireEqualStatus(t, status.Error(codes.OutOfRange, "Failed to mark occupied block: Block 16 is outside the range [0, 16)"), err)
	})
}
