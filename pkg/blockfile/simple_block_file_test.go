package blockfile_test

import (
	"testing"
	"time"

	"github.com/buildbarn/bb-datafile/internal/mock"
	"github.com/buildbarn/bb-datafile/pkg/blockfile"
	"github.com/buildbarn/bb-storage/pkg/clock"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func newMockedBlockFile(t *testing.T, ctrl *gomock.Controller, length int64) (*mock.MockStorageBackend, *mock.MockClock, blockfile.BlockFile) {
	backend := mock.NewMockStorageBackend(ctrl)
	clock := mock.NewMockClock(ctrl)
	backend.EXPECT().Length().Return(length, nil)
	backend.EXPECT().GetLastModified().Return(time.Unix(1000, 0), nil)
	bf, err := blockfile.NewBlockFile(backend, clock, 16, 4, blockfile.DefaultModificationMargin)
	require.NoError(t, err)
	return backend, clock, bf
}

func TestNewBlockFile(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("InvalidBlockSize", func(t *testing.T) {
		_, err := blockfile.NewBlockFile(mock.NewMockStorageBackend(ctrl), clock.SystemClock, 0, 4, time.Second)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Block size must be positive, while 0 bytes was provided"), err)
	})

	t.Run("NegativeHeaderSize", func(t *testing.T) {
		_, err := blockfile.NewBlockFile(mock.NewMockStorageBackend(ctrl), clock.SystemClock, 16, -1, time.Second)
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Negative header size: -1"), err)
	})

	t.Run("LengthFailure", func(t *testing.T) {
		backend := mock.NewMockStorageBackend(ctrl)
		backend.EXPECT().Length().Return(int64(0), status.Error(codes.Internal, "Disk on fire"))

		_, err := blockfile.NewBlockFile(backend, clock.SystemClock, 16, 4, time.Second)
		testutil.RequireEqualStatus(t, status.Error(codes.Internal, "Failed to obtain storage backend length: Disk on fire"), err)
	})

	t.Run("CapacityFromLength", func(t *testing.T) {
		// Trailing bytes that don't make up a full block are
		// not part of the capacity.
		_, _, bf := newMockedBlockFile(t, ctrl, 4+3*16+7)
		require.Equal(t, 3, bf.BlockCapacity())
		require.Equal(t, 16, bf.BlockSizeBytes())
		require.Equal(t, 4, bf.HeaderSizeBytes())
		require.Equal(t, int64(-1), bf.Position())
		require.Equal(t, time.Unix(1000, 0), bf.LastWrite())
	})

	t.Run("ShorterThanHeader", func(t *testing.T) {
		_, _, bf := newMockedBlockFile(t, ctrl, 2)
		require.Equal(t, 0, bf.BlockCapacity())
	})
}

func TestSimpleBlockFileWriteBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("Coalescing", func(t *testing.T) {
		// Blocks 3, 4 and 5 are consecutive, meaning they
		// can be written using a single call. Block 9 needs
		// to be written separately. As the buffer is shorter
		// than four blocks, only a part of block 9 is written.
		backend, clock, bf := newMockedBlockFile(t, ctrl, 4+10*16)
		p := make([]byte, 3*16+5)
		for i := range p {
			p[i] = byte(i)
		}
		backend.EXPECT().IsReadOnly().Return(false)
		gomock.InOrder(
			backend.EXPECT().SetFilePointer(int64(4+3*16)),
			backend.EXPECT().Write(p[:3*16]),
			clock.EXPECT().Now().Return(time.Unix(1001, 0)),
			backend.EXPECT().SetFilePointer(int64(4+9*16)),
			backend.EXPECT().Write(p[3*16:]),
			clock.EXPECT().Now().Return(time.Unix(1002, 0)),
		)

		require.NoError(t, bf.WriteBlocks(p, []int{3, 4, 5, 9}))
		require.Equal(t, int64(4+9*16+5), bf.Position())
		require.Equal(t, time.Unix(1002, 0), bf.LastWrite())
	})

	t.Run("NoRedundantSeeks", func(t *testing.T) {
		// Writing blocks 2 and 3 through separate calls should
		// only cause a single seek, as the position after the
		// first write is cached.
		backend, clock, bf := newMockedBlockFile(t, ctrl, 4+10*16)
		p := make([]byte, 16)
		backend.EXPECT().IsReadOnly().Return(false).Times(2)
		gomock.InOrder(
			backend.EXPECT().SetFilePointer(int64(4+2*16)),
			backend.EXPECT().Write(p),
			clock.EXPECT().Now().Return(time.Unix(1001, 0)),
			backend.EXPECT().Write(p),
			clock.EXPECT().Now().Return(time.Unix(1002, 0)),
		)

		require.NoError(t, bf.WriteBlock(p, 2))
		require.NoError(t, bf.WriteBlock(p, 3))
		require.Equal(t, int64(4+4*16), bf.Position())
	})

	t.Run("FailureInvalidatesPosition", func(t *testing.T) {
		// After a failed write, the position of the file
		// pointer is unknown. The next write must seek
		// explicitly, even if it targets the same offset.
		backend, clock, bf := newMockedBlockFile(t, ctrl, 4+10*16)
		p := make([]byte, 16)
		backend.EXPECT().IsReadOnly().Return(false).Times(2)
		gomock.InOrder(
			backend.EXPECT().SetFilePointer(int64(4+16)),
			backend.EXPECT().Write(p).Return(status.Error(codes.Internal, "Disk on fire")),
			backend.EXPECT().SetFilePointer(int64(4+16)),
			backend.EXPECT().Write(p),
			clock.EXPECT().Now().Return(time.Unix(1001, 0)),
		)

		testutil.RequireEqualStatus(t, status.Error(codes.Internal, "Disk on fire"), bf.WriteBlock(p, 1))
		require.Equal(t, int64(-1-(4+16)), bf.Position())
		require.Equal(t, time.Unix(1000, 0), bf.LastWrite())

		require.NoError(t, bf.WriteBlock(p, 1))
		require.Equal(t, int64(4+2*16), bf.Position())
	})

	t.Run("BufferTooLarge", func(t *testing.T) {
		_, _, bf := newMockedBlockFile(t, ctrl, 4+10*16)
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.InvalidArgument, "Buffer is 33 bytes in size, while 2 blocks can only hold 32 bytes"),
			bf.WriteBlocks(make([]byte, 33), []int{0, 1}))
	})

	t.Run("OutOfBounds", func(t *testing.T) {
		_, _, bf := newMockedBlockFile(t, ctrl, 4+10*16)
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.OutOfRange, "Block 10 is outside the range [0, 10)"),
			bf.WriteBlocks(make([]byte, 32), []int{9, 10}))
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.OutOfRange, "Block -1 is outside the range [0, 10)"),
			bf.ReadBlock(make([]byte, 16), -1))
	})

	t.Run("ReadOnly", func(t *testing.T) {
		backend, _, bf := newMockedBlockFile(t, ctrl, 4+10*16)
		backend.EXPECT().IsReadOnly().Return(true).AnyTimes()

		require.True(t, bf.IsReadOnly())
		testutil.RequireEqualStatus(t, status.Error(codes.PermissionDenied, "Block file is opened read-only"), bf.WriteBlock(make([]byte, 16), 0))
		testutil.RequireEqualStatus(t, status.Error(codes.PermissionDenied, "Block file is opened read-only"), bf.WritePartialBlock(make([]byte, 1), 0, 3))
		testutil.RequireEqualStatus(t, status.Error(codes.PermissionDenied, "Block file is opened read-only"), bf.WriteHeader(make([]byte, 4)))
		testutil.RequireEqualStatus(t, status.Error(codes.PermissionDenied, "Block file is opened read-only"), bf.SetBlockCapacity(20))
		require.Equal(t, 10, bf.BlockCapacity())
	})
}

func TestSimpleBlockFileReadBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("Coalescing", func(t *testing.T) {
		backend, _, bf := newMockedBlockFile(t, ctrl, 4+10*16)
		gomock.InOrder(
			backend.EXPECT().SetFilePointer(int64(4+7*16)),
			backend.EXPECT().ReadFully(gomock.Len(2*16)).DoAndReturn(func(p []byte) error {
				copy(p, "Hello")
				return nil
			}),
			backend.EXPECT().SetFilePointer(int64(4+1*16)),
			backend.EXPECT().ReadFully(gomock.Len(16)).DoAndReturn(func(p []byte) error {
				copy(p, "world")
				return nil
			}),
		)

		p := make([]byte, 3*16)
		require.NoError(t, bf.ReadBlocks(p, []int{7, 8, 1}))
		require.Equal(t, []byte("Hello"), p[:5])
		require.Equal(t, []byte("world"), p[32:37])
		require.Equal(t, int64(4+2*16), bf.Position())
	})

	t.Run("ReadFailure", func(t *testing.T) {
		backend, _, bf := newMockedBlockFile(t, ctrl, 4+10*16)
		gomock.InOrder(
			backend.EXPECT().SetFilePointer(int64(4)),
			backend.EXPECT().ReadFully(gomock.Len(16)).Return(status.Error(codes.Internal, "Disk on fire")),
		)

		testutil.RequireEqualStatus(t, status.Error(codes.Internal, "Disk on fire"), bf.ReadBlock(make([]byte, 16), 0))
		require.Equal(t, int64(-5), bf.Position())
	})

	t.Run("SeekFailure", func(t *testing.T) {
		backend, _, bf := newMockedBlockFile(t, ctrl, 4+10*16)
		backend.EXPECT().SetFilePointer(int64(4+16)).Return(status.Error(codes.Internal, "Bad seek"))

		testutil.RequireEqualStatus(t, status.Error(codes.Internal, "Bad seek"), bf.ReadBlock(make([]byte, 16), 1))
		require.Equal(t, int64(-1-(4+16)), bf.Position())
	})
}

func TestSimpleBlockFilePartialBlocks(t *testing.T) {
	ctrl := gomock.NewController(t)

	t.Run("OutOfRange", func(t *testing.T) {
		_, _, bf := newMockedBlockFile(t, ctrl, 4+10*16)
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.OutOfRange, "Attempted to access 5 bytes at offset 12, while blocks are only 16 bytes in size"),
			bf.ReadPartialBlock(make([]byte, 5), 0, 12))
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.OutOfRange, "Attempted to access 2 bytes at offset 15, while blocks are only 16 bytes in size"),
			bf.WritePartialBlocks(make([]byte, 4), []int{0, 1}, 15, 2))
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.InvalidArgument, "Negative block offset: -1"),
			bf.ReadPartialBlock(make([]byte, 1), 0, -1))
	})

	t.Run("BufferSizeMismatch", func(t *testing.T) {
		_, _, bf := newMockedBlockFile(t, ctrl, 4+10*16)
		testutil.RequireEqualStatus(
			t,
			status.Error(codes.InvalidArgument, "Buffer is 5 bytes in size, while 3 blocks of 1 bytes require 3 bytes"),
			bf.ReadPartialBlocks(make([]byte, 5), []int{0, 1, 2}, 0, 1))
	})

	t.Run("ReadPartialBlocks", func(t *testing.T) {
		// Each block contributes exactly the requested number
		// of bytes, packed contiguously.
		backend, _, bf := newMockedBlockFile(t, ctrl, 4+10*16)
		gomock.InOrder(
			backend.EXPECT().SetFilePointer(int64(4+2*16+1)),
			backend.EXPECT().ReadFully(gomock.Len(2)).DoAndReturn(func(p []byte) error {
				copy(p, "ab")
				return nil
			}),
			backend.EXPECT().SetFilePointer(int64(4+5*16+1)),
			backend.EXPECT().ReadFully(gomock.Len(2)).DoAndReturn(func(p []byte) error {
				copy(p, "cd")
				return nil
			}),
		)

		p := make([]byte, 4)
		require.NoError(t, bf.ReadPartialBlocks(p, []int{2, 5}, 1, 2))
		require.Equal(t, []byte("abcd"), p)
	})

	t.Run("FullBlocksAreCoalesced", func(t *testing.T) {
		backend, clock, bf := newMockedBlockFile(t, ctrl, 4+10*16)
		p := make([]byte, 2*16)
		backend.EXPECT().IsReadOnly().Return(false)
		gomock.InOrder(
			backend.EXPECT().SetFilePointer(int64(4+6*16)),
			backend.EXPECT().Write(p),
			clock.EXPECT().Now().Return(time.Unix(1001, 0)),
		)

		require.NoError(t, bf.WritePartialBlocks(p, []int{6, 7}, 0, 16))
	})
}

func TestSimpleBlockFileHeader(t *testing.T) {
	ctrl := gomock.NewController(t)

	backend, clock, bf := newMockedBlockFile(t, ctrl, 4+10*16)
	testutil.RequireEqualStatus(
		t,
		status.Error(codes.OutOfRange, "Attempted to access 5 bytes of the header, while the header is only 4 bytes in size"),
		bf.WriteHeader(make([]byte, 5)))

	backend.EXPECT().IsReadOnly().Return(false)
	gomock.InOrder(
		backend.EXPECT().SetFilePointer(int64(0)),
		backend.EXPECT().Write([]byte("BBDF")),
		clock.EXPECT().Now().Return(time.Unix(1001, 0)),
		backend.EXPECT().SetFilePointer(int64(0)),
		backend.EXPECT().ReadFully(gomock.Len(4)).DoAndReturn(func(p []byte) error {
			copy(p, "BBDF")
			return nil
		}),
	)

	require.NoError(t, bf.WriteHeader([]byte("BBDF")))
	var p [4]byte
	require.NoError(t, bf.ReadHeader(p[:]))
	require.Equal(t, []byte("BBDF"), p[:])
}

func TestSimpleBlockFileSetBlockCapacity(t *testing.T) {
	ctrl := gomock.NewController(t)

	backend, clock, bf := newMockedBlockFile(t, ctrl, 4+10*16)
	testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Negative block capacity: -1"), bf.SetBlockCapacity(-1))

	backend.EXPECT().IsReadOnly().Return(false).Times(2)
	backend.EXPECT().SetLength(int64(4+20*16))
	clock.EXPECT().Now().Return(time.Unix(1001, 0))
	require.NoError(t, bf.SetBlockCapacity(20))
	require.Equal(t, 20, bf.BlockCapacity())

	backend.EXPECT().SetLength(int64(4)).Return(status.Error(codes.Internal, "Cannot truncate"))
	testutil.RequireEqualStatus(t, status.Error(codes.Internal, "Cannot truncate"), bf.SetBlockCapacity(0))
	require.Equal(t, 20, bf.BlockCapacity())
}

func TestSimpleBlockFileIsModifiedExternally(t *testing.T) {
	ctrl := gomock.NewController(t)

	backend, clock, bf := newMockedBlockFile(t, ctrl, 4+10*16)

	// Modifications within the margin are attributed to this
	// block file.
	backend.EXPECT().GetLastModified().Return(time.Unix(1002, 0), nil)
	modified, err := bf.IsModifiedExternally()
	require.NoError(t, err)
	require.False(t, modified)

	backend.EXPECT().GetLastModified().Return(time.Unix(1003, 0), nil)
	modified, err = bf.IsModifiedExternally()
	require.NoError(t, err)
	require.True(t, modified)

	// Writing to the file moves the reference point.
	backend.EXPECT().IsReadOnly().Return(false)
	backend.EXPECT().SetFilePointer(int64(4))
	backend.EXPECT().Write(gomock.Len(16))
	clock.EXPECT().Now().Return(time.Unix(1003, 0))
	require.NoError(t, bf.WriteBlock(make([]byte, 16), 0))

	backend.EXPECT().GetLastModified().Return(time.Unix(1003, 0), nil)
	modified, err = bf.IsModifiedExternally()
	require.NoError(t, err)
	require.False(t, modified)

	backend.EXPECT().GetLastModified().Return(time.Time{}, status.Error(codes.Internal, "Stat failed"))
	_, err = bf.IsModifiedExternally()
	testutil.RequireEqualStatus(t, status.Error(codes.Internal, "Stat failed"), err)
}

func TestSimpleBlockFileInMemory(t *testing.T) {
	// End-to-end test against an in-memory storage backend,
	// validating that transfers to non-consecutive blocks end up
	// in the right place.
	bf, err := blockfile.NewBlockFile(blockfile.NewInMemoryStorageBackend(clock.SystemClock), clock.SystemClock, 8, 3, blockfile.DefaultModificationMargin)
	require.NoError(t, err)
	require.Equal(t, 0, bf.BlockCapacity())
	require.NoError(t, bf.SetBlockCapacity(10))

	require.NoError(t, bf.WriteBlocks([]byte("AAAAAAAABBBBBBBBCCCCCCCCDD"), []int{3, 4, 5, 9}))

	p := make([]byte, 8)
	require.NoError(t, bf.ReadBlock(p, 4))
	require.Equal(t, []byte("BBBBBBBB"), p)
	require.NoError(t, bf.ReadBlock(p, 9))
	require.Equal(t, []byte("DD\x00\x00\x00\x00\x00\x00"), p)
	require.NoError(t, bf.ReadBlock(p, 6))
	require.Equal(t, make([]byte, 8), p)

	require.NoError(t, bf.WritePartialBlocks([]byte("xy"), []int{3, 5}, 7, 1))
	q := make([]byte, 24)
	require.NoError(t, bf.ReadBlocks(q, []int{3, 4, 5}))
	require.Equal(t, []byte("AAAAAAAxBBBBBBBBCCCCCCCy"), q)

	first := make([]byte, 4)
	require.NoError(t, bf.ReadPartialBlocks(first, []int{9, 5, 4, 3}, 0, 1))
	require.Equal(t, []byte("DCBA"), first)

	// Shrinking the capacity makes the trailing blocks
	// inaccessible.
	require.NoError(t, bf.SetBlockCapacity(5))
	testutil.RequireEqualStatus(t, status.Error(codes.OutOfRange, "Block 5 is outside the range [0, 5)"), bf.ReadBlock(p, 5))

	require.NoError(t, bf.Sync())
	require.NoError(t, bf.Close())
}
