package blockfile

import (
	"time"

	"github.com/buildbarn/bb-storage/pkg/clock"
	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DefaultModificationMargin is the amount of time by which the last
// modification time of a storage backend may exceed the time of the
// last write, before it is considered to be modified externally. File
// systems tend to store modification times with limited precision.
const DefaultModificationMargin = 2 * time.Second

type simpleBlockFile struct {
	backend            StorageBackend
	clock              clock.Clock
	blockSizeBytes     int
	headerSizeBytes    int
	modificationMargin time.Duration

	blockCapacity int
	position      int64
	lastWrite     time.Time
}

// NewBlockFile creates a BlockFile on top of a StorageBackend. The
// initial block capacity is derived from the length of the storage
// backend. Trailing bytes that do not make up a full block are
// ignored.
func NewBlockFile(backend StorageBackend, clock clock.Clock, blockSizeBytes, headerSizeBytes int, modificationMargin time.Duration) (BlockFile, error) {
	if blockSizeBytes <= 0 {
		return nil, status.Errorf(codes.InvalidArgument, "Block size must be positive, while %d bytes was provided", blockSizeBytes)
	}
	if headerSizeBytes < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "Negative header size: %d", headerSizeBytes)
	}
	length, err := backend.Length()
	if err != nil {
		return nil, util.StatusWrap(err, "Failed to obtain storage backend length")
	}
	lastModified, err := backend.GetLastModified()
	if err != nil {
		return nil, util.StatusWrap(err, "Failed to obtain storage backend modification time")
	}

	blockCapacity := 0
	if length > int64(headerSizeBytes) {
		blockCapacity = int((length - int64(headerSizeBytes)) / int64(blockSizeBytes))
	}
	return &simpleBlockFile{
		backend:            backend,
		clock:              clock,
		blockSizeBytes:     blockSizeBytes,
		headerSizeBytes:    headerSizeBytes,
		modificationMargin: modificationMargin,

		blockCapacity: blockCapacity,
		position:      -1,
		lastWrite:     lastModified,
	}, nil
}

func (bf *simpleBlockFile) BlockSizeBytes() int {
	return bf.blockSizeBytes
}

func (bf *simpleBlockFile) HeaderSizeBytes() int {
	return bf.headerSizeBytes
}

func (bf *simpleBlockFile) BlockCapacity() int {
	return bf.blockCapacity
}

func (bf *simpleBlockFile) checkWritable() error {
	if bf.backend.IsReadOnly() {
		return status.Error(codes.PermissionDenied, "Block file is opened read-only")
	}
	return nil
}

func (bf *simpleBlockFile) SetBlockCapacity(capacity int) error {
	if capacity < 0 {
		return status.Errorf(codes.InvalidArgument, "Negative block capacity: %d", capacity)
	}
	if err := bf.checkWritable(); err != nil {
		return err
	}
	if err := bf.backend.SetLength(int64(bf.headerSizeBytes) + int64(capacity)*int64(bf.blockSizeBytes)); err != nil {
		return err
	}
	bf.blockCapacity = capacity
	bf.lastWrite = bf.clock.Now()
	return nil
}

// seek moves the file pointer of the storage backend, but only if the
// cached position differs from the desired one.
func (bf *simpleBlockFile) seek(offset int64) error {
	if bf.position == offset {
		return nil
	}
	bf.position = -1 - offset
	if err := bf.backend.SetFilePointer(offset); err != nil {
		return err
	}
	bf.position = offset
	return nil
}

func (bf *simpleBlockFile) readAt(p []byte, offset int64) error {
	if err := bf.seek(offset); err != nil {
		return err
	}
	// Leave the position invalidated if the read fails, so that the
	// next operation performs an explicit seek.
	bf.position = -1 - offset
	if err := bf.backend.ReadFully(p); err != nil {
		return err
	}
	bf.position = offset + int64(len(p))
	return nil
}

func (bf *simpleBlockFile) writeAt(p []byte, offset int64) error {
	if err := bf.seek(offset); err != nil {
		return err
	}
	bf.position = -1 - offset
	if err := bf.backend.Write(p); err != nil {
		return err
	}
	bf.position = offset + int64(len(p))
	bf.lastWrite = bf.clock.Now()
	return nil
}

func (bf *simpleBlockFile) checkHeaderBounds(p []byte) error {
	if len(p) > bf.headerSizeBytes {
		return status.Errorf(codes.OutOfRange, "Attempted to access %d bytes of the header, while the header is only %d bytes in size", len(p), bf.headerSizeBytes)
	}
	return nil
}

func (bf *simpleBlockFile) ReadHeader(p []byte) error {
	if err := bf.checkHeaderBounds(p); err != nil {
		return err
	}
	return bf.readAt(p, 0)
}

func (bf *simpleBlockFile) WriteHeader(p []byte) error {
	if err := bf.checkHeaderBounds(p); err != nil {
		return err
	}
	if err := bf.checkWritable(); err != nil {
		return err
	}
	return bf.writeAt(p, 0)
}

func (bf *simpleBlockFile) checkBlockIndex(index int) error {
	if index < 0 || index >= bf.blockCapacity {
		return status.Errorf(codes.OutOfRange, "Block %d is outside the range [0, %d)", index, bf.blockCapacity)
	}
	return nil
}

func (bf *simpleBlockFile) checkBlockIndices(indices []int) error {
	for _, index := range indices {
		if err := bf.checkBlockIndex(index); err != nil {
			return err
		}
	}
	return nil
}

func (bf *simpleBlockFile) checkPartialBounds(index, blockOffset, length int) error {
	if err := bf.checkBlockIndex(index); err != nil {
		return err
	}
	if blockOffset < 0 {
		return status.Errorf(codes.InvalidArgument, "Negative block offset: %d", blockOffset)
	}
	if blockOffset+length > bf.blockSizeBytes {
		return status.Errorf(codes.OutOfRange, "Attempted to access %d bytes at offset %d, while blocks are only %d bytes in size", length, blockOffset, bf.blockSizeBytes)
	}
	return nil
}

func (bf *simpleBlockFile) checkBlocksBufferSize(p []byte, indices []int) error {
	if maximumSize := len(indices) * bf.blockSizeBytes; len(p) > maximumSize {
		return status.Errorf(codes.InvalidArgument, "Buffer is %d bytes in size, while %d blocks can only hold %d bytes", len(p), len(indices), maximumSize)
	}
	return nil
}

func (bf *simpleBlockFile) getBlockOffset(index, blockOffset int) int64 {
	return int64(bf.headerSizeBytes) + int64(index)*int64(bf.blockSizeBytes) + int64(blockOffset)
}

// getBlocksContiguous computes how many of the provided block indices
// are consecutive, starting at the first one.
func getBlocksContiguous(indices []int) int {
	nContiguous := 1
	for nContiguous < len(indices) && indices[nContiguous] == indices[0]+nContiguous {
		nContiguous++
	}
	return nContiguous
}

// limitBufferToBlockBoundary limits the size of a buffer to a given
// number of blocks. This function is used to restrict the size of a
// transfer to just that part that can be performed contiguously.
func (bf *simpleBlockFile) limitBufferToBlockBoundary(p []byte, blockCount int) []byte {
	if n := blockCount * bf.blockSizeBytes; n < len(p) {
		return p[:n]
	}
	return p
}

// forEachContiguousRun splits up a buffer into runs of consecutive
// blocks, calling into a function for each of them.
func (bf *simpleBlockFile) forEachContiguousRun(p []byte, indices []int, transfer func(p []byte, offset int64) error) error {
	for len(p) > 0 {
		blockCount := getBlocksContiguous(indices)
		run := bf.limitBufferToBlockBoundary(p, blockCount)
		if err := transfer(run, bf.getBlockOffset(indices[0], 0)); err != nil {
			return err
		}
		p = p[len(run):]
		indices = indices[blockCount:]
	}
	return nil
}

func (bf *simpleBlockFile) ReadBlock(p []byte, index int) error {
	return bf.ReadBlocks(p, []int{index})
}

func (bf *simpleBlockFile) ReadBlocks(p []byte, indices []int) error {
	if err := bf.checkBlocksBufferSize(p, indices); err != nil {
		return err
	}
	if err := bf.checkBlockIndices(indices); err != nil {
		return err
	}
	return bf.forEachContiguousRun(p, indices, bf.readAt)
}

func (bf *simpleBlockFile) WriteBlock(p []byte, index int) error {
	return bf.WriteBlocks(p, []int{index})
}

func (bf *simpleBlockFile) WriteBlocks(p []byte, indices []int) error {
	if err := bf.checkBlocksBufferSize(p, indices); err != nil {
		return err
	}
	if err := bf.checkBlockIndices(indices); err != nil {
		return err
	}
	if err := bf.checkWritable(); err != nil {
		return err
	}
	return bf.forEachContiguousRun(p, indices, bf.writeAt)
}

func (bf *simpleBlockFile) ReadPartialBlock(p []byte, index, blockOffset int) error {
	if err := bf.checkPartialBounds(index, blockOffset, len(p)); err != nil {
		return err
	}
	return bf.readAt(p, bf.getBlockOffset(index, blockOffset))
}

func (bf *simpleBlockFile) WritePartialBlock(p []byte, index, blockOffset int) error {
	if err := bf.checkPartialBounds(index, blockOffset, len(p)); err != nil {
		return err
	}
	if err := bf.checkWritable(); err != nil {
		return err
	}
	return bf.writeAt(p, bf.getBlockOffset(index, blockOffset))
}

func (bf *simpleBlockFile) checkPartialBlocksBufferSize(p []byte, indices []int, length int) error {
	if length < 0 {
		return status.Errorf(codes.InvalidArgument, "Negative length: %d", length)
	}
	if expectedSize := len(indices) * length; len(p) != expectedSize {
		return status.Errorf(codes.InvalidArgument, "Buffer is %d bytes in size, while %d blocks of %d bytes require %d bytes", len(p), len(indices), length, expectedSize)
	}
	return nil
}

func (bf *simpleBlockFile) ReadPartialBlocks(p []byte, indices []int, blockOffset, length int) error {
	if err := bf.checkPartialBlocksBufferSize(p, indices, length); err != nil {
		return err
	}
	if blockOffset == 0 && length == bf.blockSizeBytes {
		return bf.ReadBlocks(p, indices)
	}
	for _, index := range indices {
		if err := bf.checkPartialBounds(index, blockOffset, length); err != nil {
			return err
		}
	}
	for i, index := range indices {
		if err := bf.readAt(p[i*length:(i+1)*length], bf.getBlockOffset(index, blockOffset)); err != nil {
			return err
		}
	}
	return nil
}

func (bf *simpleBlockFile) WritePartialBlocks(p []byte, indices []int, blockOffset, length int) error {
	if err := bf.checkPartialBlocksBufferSize(p, indices, length); err != nil {
		return err
	}
	if blockOffset == 0 && length == bf.blockSizeBytes {
		return bf.WriteBlocks(p, indices)
	}
	for _, index := range indices {
		if err := bf.checkPartialBounds(index, blockOffset, length); err != nil {
			return err
		}
	}
	if err := bf.checkWritable(); err != nil {
		return err
	}
	for i, index := range indices {
		if err := bf.writeAt(p[i*length:(i+1)*length], bf.getBlockOffset(index, blockOffset)); err != nil {
			return err
		}
	}
	return nil
}

func (bf *simpleBlockFile) Position() int64 {
	return bf.position
}

func (bf *simpleBlockFile) LastWrite() time.Time {
	return bf.lastWrite
}

func (bf *simpleBlockFile) GetLastModified() (time.Time, error) {
	return bf.backend.GetLastModified()
}

func (bf *simpleBlockFile) IsModifiedExternally() (bool, error) {
	lastModified, err := bf.backend.GetLastModified()
	if err != nil {
		return false, err
	}
	return lastModified.After(bf.lastWrite.Add(bf.modificationMargin)), nil
}

func (bf *simpleBlockFile) IsReadOnly() bool {
	return bf.backend.IsReadOnly()
}

func (bf *simpleBlockFile) Sync() error {
	return bf.backend.Flush()
}

func (bf *simpleBlockFile) Close() error {
	return bf.backend.Close()
}
