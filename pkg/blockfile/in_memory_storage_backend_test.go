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

func TestInMemoryStorageBackend(t *testing.T) {
	ctrl := gomock.NewController(t)

	clock := mock.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(time.Unix(1000, 0))
	sb := blockfile.NewInMemoryStorageBackend(clock)
	require.False(t, sb.IsReadOnly())

	t.Run("Empty", func(t *testing.T) {
		length, err := sb.Length()
		require.NoError(t, err)
		require.Equal(t, int64(0), length)

		var p [1]byte
		testutil.RequireEqualStatus(t, status.Error(codes.OutOfRange, "Attempted to read 1 bytes at offset 0, while the store is only 0 bytes in size"), sb.ReadFully(p[:]))
	})

	t.Run("ZeroSizedWrite", func(t *testing.T) {
		// A zero-sized write should not cause the store to
		// grow.
		require.NoError(t, sb.SetFilePointer(123))
		require.NoError(t, sb.Write(nil))

		length, err := sb.Length()
		require.NoError(t, err)
		require.Equal(t, int64(0), length)

		lastModified, err := sb.GetLastModified()
		require.NoError(t, err)
		require.Equal(t, time.Unix(1000, 0), lastModified)
	})

	t.Run("WriteAndRead", func(t *testing.T) {
		clock.EXPECT().Now().Return(time.Unix(1001, 0))
		require.NoError(t, sb.SetFilePointer(5))
		require.NoError(t, sb.Write([]byte("Hello")))

		length, err := sb.Length()
		require.NoError(t, err)
		require.Equal(t, int64(10), length)

		// The file pointer advances past written data, so
		// that reads continue where they left off.
		require.NoError(t, sb.SetFilePointer(3))
		var p [4]byte
		require.NoError(t, sb.ReadFully(p[:]))
		require.Equal(t, []byte("\x00\x00He"), p[:])
		require.NoError(t, sb.ReadFully(p[:3]))
		require.Equal(t, []byte("llo"), p[:3])

		lastModified, err := sb.GetLastModified()
		require.NoError(t, err)
		require.Equal(t, time.Unix(1001, 0), lastModified)
	})

	t.Run("SetLength", func(t *testing.T) {
		testutil.RequireEqualStatus(t, status.Error(codes.InvalidArgument, "Negative store length: -1"), sb.SetLength(-1))

		clock.EXPECT().Now().Return(time.Unix(1002, 0))
		require.NoError(t, sb.SetLength(7))
		clock.EXPECT().Now().Return(time.Unix(1003, 0))
		require.NoError(t, sb.SetLength(9))

		// Growing the store again should not bring back data
		// that was truncated.
		require.NoError(t, sb.SetFilePointer(5))
		var p [4]byte
		require.NoError(t, sb.ReadFully(p[:]))
		require.Equal(t, []byte("He\x00\x00"), p[:])
	})

	t.Run("Closed", func(t *testing.T) {
		require.NoError(t, sb.Flush())
		require.NoError(t, sb.Close())
		testutil.RequireEqualStatus(t, status.Error(codes.Unavailable, "Storage backend is closed"), sb.Write([]byte("x")))
		_, err := sb.Length()
		testutil.RequireEqualStatus(t, status.Error(codes.Unavailable, "Storage backend is closed"), err)
	})
}
