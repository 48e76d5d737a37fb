package blockfile_test

import (
	"testing"
	"time"

	"github.com/buildbarn/bb-datafile/internal/mock"
	"github.com/buildbarn/bb-datafile/pkg/blockfile"
	"github.com/buildbarn/bb-storage/pkg/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestBlockDeviceStorageBackend(t *testing.T) {
	ctrl := gomock.NewController(t)

	blockDevice := mock.NewMockBlockDevice(ctrl)
	clock := mock.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(1000, 0))
	sb := blockfile.NewBlockDeviceStorageBackend(blockDevice, 100, 20, clock)

	t.Run("ReadPastLength", func(t *testing.T) {
		require.NoError(t, sb.SetFilePointer(15))
		var p [10]byte
		testutil.RequireEqualStatus(t, status.Error(codes.OutOfRange, "Attempted to read 10 bytes at offset 15, while the store is only 20 bytes in size"), sb.ReadFully(p[:]))
	})

	t.Run("Read", func(t *testing.T) {
		blockDevice.EXPECT().ReadAt(gomock.Len(5), int64(15)).DoAndReturn(func(p []byte, off int64) (int, error) {
			return copy(p, "Hello"), nil
		})
		var p [5]byte
		require.NoError(t, sb.ReadFully(p[:]))
		require.Equal(t, []byte("Hello"), p[:])

		blockDevice.EXPECT().ReadAt(gomock.Len(2), int64(0)).Return(0, status.Error(codes.Internal, "I/O error"))
		require.NoError(t, sb.SetFilePointer(0))
		testutil.RequireEqualStatus(t, status.Error(codes.Internal, "I/O error"), sb.ReadFully(p[:2]))
	})

	t.Run("WriteGrowsLength", func(t *testing.T) {
		blockDevice.EXPECT().WriteAt([]byte("Hello"), int64(30)).Return(5, nil)
		clock.EXPECT().Now().Return(time.Unix(1001, 0))
		require.NoError(t, sb.SetFilePointer(30))
		require.NoError(t, sb.Write([]byte("Hello")))

		length, err := sb.Length()
		require.NoError(t, err)
		require.Equal(t, int64(35), length)
		lastModified, err := sb.GetLastModified()
		require.NoError(t, err)
		require.Equal(t, time.Unix(1001, 0), lastModified)
	})

	t.Run("WritePastDevice", func(t *testing.T) {
		require.NoError(t, sb.SetFilePointer(98))
		testutil.RequireEqualStatus(t, status.Error(codes.ResourceExhausted, "Attempted to write 5 bytes at offset 98, while the block device is only 100 bytes in size"), sb.Write([]byte("Hello")))
	})

	t.Run("SetLength", func(t *testing.T) {
		testutil.RequireEqualStatus(t, status.Error(codes.ResourceExhausted, "Cannot grow the store to 101 bytes, as the block device is only 100 bytes in size"), sb.SetLength(101))

		clock.EXPECT().Now().Return(time.Unix(1002, 0))
		require.NoError(t, sb.SetLength(100))
		length, err := sb.Length()
		require.NoError(t, err)
		require.Equal(t, int64(100), length)
	})

	t.Run("Flush", func(t *testing.T) {
		blockDevice.EXPECT().Sync().Return(status.Error(codes.Internal, "Sync failed"))
		testutil.RequireEqualStatus(t, status.Error(codes.Internal, "Sync failed"), sb.Flush())
	})
}
