package blockfile

import (
	"time"

	"github.com/buildbarn/bb-storage/pkg/clock"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type inMemoryStorageBackend struct {
	clock clock.Clock

	data         []byte
	position     int64
	lastModified time.Time
	closed       bool
}

// NewInMemoryStorageBackend creates a StorageBackend that stores all
// data in memory. It is mainly useful for testing and for data files
// whose contents don't need to survive the process.
func NewInMemoryStorageBackend(clock clock.Clock) StorageBackend {
	return &inMemoryStorageBackend{
		clock:        clock,
		lastModified: clock.Now(),
	}
}

func (sb *inMemoryStorageBackend) checkOpen() error {
	if sb.closed {
		return status.Error(codes.Unavailable, "Storage backend is closed")
	}
	return nil
}

func (sb *inMemoryStorageBackend) SetFilePointer(position int64) error {
	if err := sb.checkOpen(); err != nil {
		return err
	}
	if position < 0 {
		return status.Errorf(codes.InvalidArgument, "Negative file pointer: %d", position)
	}
	sb.position = position
	return nil
}

func (sb *inMemoryStorageBackend) ReadFully(p []byte) error {
	if err := sb.checkOpen(); err != nil {
		return err
	}
	position := sb.position
	if position < int64(len(sb.data)) {
		sb.position += int64(copy(p, sb.data[position:]))
	}
	// Like io.ReadFull(), short reads still return the data that
	// could be read.
	if end := position + int64(len(p)); end > int64(len(sb.data)) {
		return status.Errorf(codes.OutOfRange, "Attempted to read %d bytes at offset %d, while the store is only %d bytes in size", len(p), position, len(sb.data))
	}
	return nil
}

func (sb *inMemoryStorageBackend) Write(p []byte) error {
	if err := sb.checkOpen(); err != nil {
		return err
	}
	// Zero-sized writes should not cause the store to grow.
	if len(p) == 0 {
		return nil
	}
	if size := sb.position + int64(len(p)); int64(len(sb.data)) < size {
		sb.data = append(sb.data, make([]byte, size-int64(len(sb.data)))...)
	}
	sb.position += int64(copy(sb.data[sb.position:], p))
	sb.lastModified = sb.clock.Now()
	return nil
}

func (sb *inMemoryStorageBackend) Length() (int64, error) {
	if err := sb.checkOpen(); err != nil {
		return 0, err
	}
	return int64(len(sb.data)), nil
}

func (sb *inMemoryStorageBackend) SetLength(length int64) error {
	if err := sb.checkOpen(); err != nil {
		return err
	}
	if length < 0 {
		return status.Errorf(codes.InvalidArgument, "Negative store length: %d", length)
	}
	if int64(len(sb.data)) >= length {
		sb.data = sb.data[:length]
	} else {
		sb.data = append(sb.data, make([]byte, length-int64(len(sb.data)))...)
	}
	sb.lastModified = sb.clock.Now()
	return nil
}

func (sb *inMemoryStorageBackend) Flush() error {
	return sb.checkOpen()
}

func (sb *inMemoryStorageBackend) Close() error {
	sb.data = nil
	sb.closed = true
	return nil
}

func (sb *inMemoryStorageBackend) IsReadOnly() bool {
	return false
}

func (sb *inMemoryStorageBackend) GetLastModified() (time.Time, error) {
	if err := sb.checkOpen(); err != nil {
		return time.Time{}, err
	}
	return sb.lastModified, nil
}
