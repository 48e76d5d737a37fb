package blockfile

import (
	"time"

	"github.com/buildbarn/bb-storage/pkg/blockdevice"
	"github.com/buildbarn/bb-storage/pkg/clock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type blockDeviceStorageBackend struct {
	blockDevice      blockdevice.BlockDevice
	clock            clock.Clock
	maximumSizeBytes int64

	length       int64
	position     int64
	lastModified time.Time
}

// NewBlockDeviceStorageBackend creates a StorageBackend that stores
// data directly on a block device, or a file that is used as one.
//
// Block devices have a fixed size and no notion of a file length. The
// length is therefore only tracked in memory, starting off at the
// provided initial length. Attempts to grow the store past the size of
// the block device fail. Changes to the block device made through other
// channels cannot be observed.
func NewBlockDeviceStorageBackend(blockDevice blockdevice.BlockDevice, maximumSizeBytes, initialLength int64, clock clock.Clock) StorageBackend {
	return &blockDeviceStorageBackend{
		blockDevice:      blockDevice,
		clock:            clock,
		maximumSizeBytes: maximumSizeBytes,
		length:           initialLength,
		lastModified:     clock.Now(),
	}
}

func (sb *blockDeviceStorageBackend) SetFilePointer(position int64) error {
	if position < 0 {
		return status.Errorf(codes.InvalidArgument, "Negative file pointer: %d", position)
	}
	sb.position = position
	return nil
}

func (sb *blockDeviceStorageBackend) ReadFully(p []byte) error {
	if end := sb.position + int64(len(p)); end > sb.length {
		return status.Errorf(codes.OutOfRange, "Attempted to read %d bytes at offset %d, while the store is only %d bytes in size", len(p), sb.position, sb.length)
	}
	n, err := sb.blockDevice.ReadAt(p, sb.position)
	if err != nil {
		return err
	}
	if n != len(p) {
		return status.Errorf(codes.Internal, "Read against block device returned %d bytes, while %d bytes were expected", n, len(p))
	}
	sb.position += int64(n)
	return nil
}

func (sb *blockDeviceStorageBackend) Write(p []byte) error {
	end := sb.position + int64(len(p))
	if end > sb.maximumSizeBytes {
		return status.Errorf(codes.ResourceExhausted, "Attempted to write %d bytes at offset %d, while the block device is only %d bytes in size", len(p), sb.position, sb.maximumSizeBytes)
	}
	if _, err := sb.blockDevice.WriteAt(p, sb.position); err != nil {
		return err
	}
	sb.position = end
	if sb.length < end {
		sb.length = end
	}
	sb.lastModified = sb.clock.Now()
	return nil
}

func (sb *blockDeviceStorageBackend) Length() (int64, error) {
	return sb.length, nil
}

func (sb *blockDeviceStorageBackend) SetLength(length int64) error {
	if length < 0 {
		return status.Errorf(codes.InvalidArgument, "Negative store length: %d", length)
	}
	if length > sb.maximumSizeBytes {
		return status.Errorf(codes.ResourceExhausted, "Cannot grow the store to %d bytes, as the block device is only %d bytes in size", length, sb.maximumSizeBytes)
	}
	sb.length = length
	sb.lastModified = sb.clock.Now()
	return nil
}

func (sb *blockDeviceStorageBackend) Flush() error {
	return sb.blockDevice.Sync()
}

func (sb *blockDeviceStorageBackend) Close() error {
	return nil
}

func (sb *blockDeviceStorageBackend) IsReadOnly() bool {
	return false
}

func (sb *blockDeviceStorageBackend) GetLastModified() (time.Time, error) {
	return sb.lastModified, nil
}
