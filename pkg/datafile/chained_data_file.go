package datafile

import (
	"github.com/buildbarn/bb-datafile/pkg/allocator"
	"github.com/buildbarn/bb-datafile/pkg/blockfile"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/google/uuid"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Upper bound on the amount of memory used to scan or clear blocks in
// bulk.
const bulkTransferSizeBytes = 1 << 20

type chainedDataFile struct {
	blockFile            blockfile.BlockFile
	allocator            allocator.BlockAllocator
	errorLogger          util.ErrorLogger
	initialBlockCapacity int
	capacityIncrement    int
	payloadSizeBytes     int
	header               fileHeader
}

// NewChainedDataFile creates a DataFile that stores items as chains of
// blocks in a BlockFile.
//
// If the block file has not been initialized yet, a file header is
// written and the file is grown to the initial block capacity.
// Otherwise the file header is validated and the set of allocated
// blocks is reconstructed by walking all chains. Chains that turn out
// to be malformed are reported through the error logger and are not
// recovered.
//
// Whenever the block allocator runs out of free blocks, the file is
// grown by the largest of the shortfall, the capacity increment and
// 10% of the current capacity.
func NewChainedDataFile(blockFile blockfile.BlockFile, allocatorFactory allocator.BlockAllocatorFactory, initialBlockCapacity, capacityIncrement int, errorLogger util.ErrorLogger) (DataFile, error) {
	blockSizeBytes := blockFile.BlockSizeBytes()
	if blockSizeBytes <= BlockHeaderSizeBytes {
		return nil, status.Errorf(codes.InvalidArgument, "Block size is %d bytes, while it must exceed the block header size of %d bytes", blockSizeBytes, BlockHeaderSizeBytes)
	}
	if headerSizeBytes := blockFile.HeaderSizeBytes(); headerSizeBytes < FileHeaderSizeBytes {
		return nil, status.Errorf(codes.InvalidArgument, "Header size is %d bytes, while at least %d bytes are needed to store the file header", headerSizeBytes, FileHeaderSizeBytes)
	}
	if initialBlockCapacity < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "Negative initial block capacity: %d", initialBlockCapacity)
	}
	if capacityIncrement < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "Negative capacity increment: %d", capacityIncrement)
	}

	df := &chainedDataFile{
		blockFile:            blockFile,
		errorLogger:          errorLogger,
		initialBlockCapacity: initialBlockCapacity,
		capacityIncrement:    capacityIncrement,
		payloadSizeBytes:     blockSizeBytes - BlockHeaderSizeBytes,
	}

	// Files that are shorter than the header region are reported as
	// being out of range. These are treated as being empty.
	var rawHeader [FileHeaderSizeBytes]byte
	err := blockFile.ReadHeader(rawHeader[:])
	if err != nil && status.Code(err) != codes.OutOfRange {
		return nil, util.StatusWrap(err, "Failed to read file header")
	}
	if isZeroFileHeader(rawHeader[:]) {
		if err := df.initialize(allocatorFactory); err != nil {
			return nil, err
		}
		return df, nil
	}
	if err != nil {
		return nil, status.Error(codes.DataLoss, "File header is truncated")
	}
	if err := df.open(allocatorFactory, rawHeader[:]); err != nil {
		return nil, err
	}
	return df, nil
}

func (df *chainedDataFile) initialize(allocatorFactory allocator.BlockAllocatorFactory) error {
	if df.blockFile.IsReadOnly() {
		return status.Error(codes.FailedPrecondition, "Data file has not been initialized, and cannot be initialized as it is opened read-only")
	}
	ba, err := allocatorFactory.NewBlockAllocator(df.initialBlockCapacity, nil)
	if err != nil {
		return util.StatusWrap(err, "Failed to create block allocator")
	}
	df.allocator = ba

	if err := df.blockFile.SetBlockCapacity(df.initialBlockCapacity); err != nil {
		return util.StatusWrapf(err, "Failed to grow data file to %d blocks", df.initialBlockCapacity)
	}
	// Block devices may contain leftovers of a previous data file.
	if err := df.zeroBlocks(df.initialBlockCapacity); err != nil {
		return err
	}

	// The file header is written last. An interrupted
	// initialization is thus retried when reopened.
	header := fileHeader{
		blockSizeBytes: df.blockFile.BlockSizeBytes(),
		blockCapacity:  df.initialBlockCapacity,
		fileID:         uuid.New(),
	}
	if err := df.blockFile.WriteHeader(header.marshal()); err != nil {
		return util.StatusWrap(err, "Failed to write file header")
	}
	df.header = header
	return nil
}

func (df *chainedDataFile) open(allocatorFactory allocator.BlockAllocatorFactory, rawHeader []byte) error {
	header, err := parseFileHeader(rawHeader)
	if err != nil {
		return util.StatusWrap(err, "Invalid file header")
	}
	if blockSizeBytes := df.blockFile.BlockSizeBytes(); header.blockSizeBytes != blockSizeBytes {
		return status.Errorf(codes.InvalidArgument, "Data file has a block size of %d bytes, while %d bytes was configured", header.blockSizeBytes, blockSizeBytes)
	}
	fileBlockCapacity := df.blockFile.BlockCapacity()
	if header.blockCapacity > fileBlockCapacity {
		return status.Errorf(codes.DataLoss, "File header states that the data file holds %d blocks, while it only holds %d blocks", header.blockCapacity, fileBlockCapacity)
	}
	df.header = header

	occupied, err := df.scanChains(header.blockCapacity)
	if err != nil {
		return err
	}

	// The block allocator factory can only seed blocks that lie
	// within the initial capacity. Blocks past it are marked after
	// the allocator has been resized.
	var seeded, remaining []int
	for _, index := range occupied {
		if index < df.initialBlockCapacity {
			seeded = append(seeded, index)
		} else {
			remaining = append(remaining, index)
		}
	}
	ba, err := allocatorFactory.NewBlockAllocator(df.initialBlockCapacity, seeded)
	if err != nil {
		return util.StatusWrap(err, "Failed to create block allocator")
	}
	if err := ba.SetCapacity(header.blockCapacity); err != nil {
		return util.StatusWrap(err, "Failed to resize block allocator")
	}
	for _, index := range remaining {
		if err := ba.AllocateBlockAt(index); err != nil {
			return util.StatusWrap(err, "Failed to mark occupied block")
		}
	}
	df.allocator = ba

	if df.blockFile.IsReadOnly() {
		return nil
	}
	if header.blockCapacity < df.initialBlockCapacity {
		return df.setBlockCapacity(df.initialBlockCapacity)
	}
	if fileBlockCapacity > header.blockCapacity {
		// Blocks past the capacity stored in the file header
		// are leftovers of an interrupted truncation, or belong
		// to unused parts of a block device.
		if err := df.blockFile.SetBlockCapacity(header.blockCapacity); err != nil {
			return util.StatusWrapf(err, "Failed to shrink data file to %d blocks", header.blockCapacity)
		}
	}
	return nil
}

// forEachBlockBatch splits up a range of blocks into batches that can
// be transferred using a bounded amount of memory.
func (df *chainedDataFile) forEachBlockBatch(blockCapacity int, f func(p []byte, indices []int) error) error {
	blockSizeBytes := df.blockFile.BlockSizeBytes()
	batchBlocks := max(bulkTransferSizeBytes/blockSizeBytes, 1)
	buf := make([]byte, min(batchBlocks, blockCapacity)*blockSizeBytes)
	indices := make([]int, 0, batchBlocks)
	for first := 0; first < blockCapacity; first += batchBlocks {
		indices = indices[:0]
		for index := first; index < blockCapacity && index < first+batchBlocks; index++ {
			indices = append(indices, index)
		}
		p := buf[:len(indices)*blockSizeBytes]
		if err := f(p, indices); err != nil {
			return util.StatusWrapf(err, "Failed to process blocks [%d, %d)", first, first+len(indices))
		}
	}
	return nil
}

func (df *chainedDataFile) zeroBlocks(blockCapacity int) error {
	return df.forEachBlockBatch(blockCapacity, func(p []byte, indices []int) error {
		clear(p)
		return df.blockFile.WriteBlocks(p, indices)
	})
}

// findChainStarts returns the indices of all blocks that have their
// chain start flag set, regardless of whether they are allocated.
func (df *chainedDataFile) findChainStarts(blockCapacity int) ([]int, error) {
	blockSizeBytes := df.blockFile.BlockSizeBytes()
	var chainStarts []int
	if err := df.forEachBlockBatch(blockCapacity, func(p []byte, indices []int) error {
		if err := df.blockFile.ReadBlocks(p, indices); err != nil {
			return err
		}
		for i, index := range indices {
			if p[i*blockSizeBytes] != 0 {
				chainStarts = append(chainStarts, index)
			}
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return chainStarts, nil
}

// scanChains reconstructs the list of occupied blocks by walking all
// chains stored in the data file.
func (df *chainedDataFile) scanChains(blockCapacity int) ([]int, error) {
	chainStarts, err := df.findChainStarts(blockCapacity)
	if err != nil {
		return nil, err
	}

	visited := make([]bool, blockCapacity)
	var occupied []int
	for _, startBlock := range chainStarts {
		indices, _, err := df.readChain(startBlock, blockCapacity, func(index int) error {
			if visited[index] {
				return status.Errorf(codes.DataLoss, "Block %d in the item with start block %d is also part of another item", index, startBlock)
			}
			return nil
		})
		if err != nil {
			df.errorLogger.Log(util.StatusWrapf(err, "Skipping item with start block %d", startBlock))
			continue
		}
		for _, index := range indices {
			visited[index] = true
		}
		occupied = append(occupied, indices...)
	}
	return occupied, nil
}

func notStartBlockError(index int) error {
	return status.Errorf(codes.InvalidArgument, "Block %d is not the start block of an item", index)
}

// readChain walks a chain of blocks, returning the indices of all
// blocks in the chain and their headers. Every block apart from the
// start block is validated by the provided function.
func (df *chainedDataFile) readChain(startBlock, blockCapacity int, checkBlock func(index int) error) ([]int, []blockHeader, error) {
	var rawHeader [BlockHeaderSizeBytes]byte
	var indices []int
	var headers []blockHeader
	for index := startBlock; index != noNextBlock; {
		isStartBlock := len(indices) == 0
		if len(indices) >= blockCapacity {
			return nil, nil, status.Errorf(codes.DataLoss, "Item with start block %d contains a cycle", startBlock)
		}
		if !isStartBlock {
			if err := checkBlock(index); err != nil {
				return nil, nil, err
			}
		}
		if err := df.blockFile.ReadPartialBlock(rawHeader[:], index, 0); err != nil {
			return nil, nil, util.StatusWrapf(err, "Failed to read header of block %d", index)
		}
		h, err := parseBlockHeader(rawHeader[:], index, blockCapacity, df.payloadSizeBytes)
		if err != nil {
			return nil, nil, err
		}
		if h.isChainStart != isStartBlock {
			if isStartBlock {
				return nil, nil, notStartBlockError(index)
			}
			return nil, nil, status.Errorf(codes.DataLoss, "Block %d in the item with start block %d is marked as the start block of an item", index, startBlock)
		}
		indices = append(indices, index)
		headers = append(headers, h)
		index = h.nextBlock
	}
	return indices, headers, nil
}

// getChain walks the chain of an existing item.
func (df *chainedDataFile) getChain(startBlock int) ([]int, []blockHeader, error) {
	blockCapacity := df.allocator.Capacity()
	if startBlock < 0 || startBlock >= blockCapacity {
		return nil, nil, notStartBlockError(startBlock)
	}
	if allocated, err := df.allocator.IsAllocated(startBlock); err != nil {
		return nil, nil, err
	} else if !allocated {
		return nil, nil, notStartBlockError(startBlock)
	}
	return df.readChain(startBlock, blockCapacity, func(index int) error {
		allocated, err := df.allocator.IsAllocated(index)
		if err != nil {
			return err
		}
		if !allocated {
			return status.Errorf(codes.DataLoss, "Block %d in the item with start block %d is not allocated", index, startBlock)
		}
		return nil
	})
}

func getItemSize(headers []blockHeader) int {
	size := 0
	for _, h := range headers {
		size += h.payloadLength
	}
	return size
}

func (df *chainedDataFile) getBlocksNeeded(sizeBytes int) int {
	if sizeBytes == 0 {
		return 1
	}
	return (sizeBytes + df.payloadSizeBytes - 1) / df.payloadSizeBytes
}

// encodeChain converts item data to the on-disk representation of a
// chain consisting of the provided blocks. As all blocks apart from
// the last one are full, the resulting buffer can be written using a
// single call to WriteBlocks().
func (df *chainedDataFile) encodeChain(indices []int, data []byte, isChainStart bool) []byte {
	p := make([]byte, 0, len(indices)*df.blockFile.BlockSizeBytes())
	for i := range indices {
		h := blockHeader{
			isChainStart:  isChainStart && i == 0,
			nextBlock:     noNextBlock,
			payloadLength: min(len(data), df.payloadSizeBytes),
		}
		if i+1 < len(indices) {
			h.nextBlock = indices[i+1]
		}
		p = h.appendTo(p)
		p = append(p, data[:h.payloadLength]...)
		data = data[h.payloadLength:]
	}
	return p
}

// forEachPayloadRange calls into a function for every block holding a
// part of the byte range [offset, offset+length) of an item.
func (df *chainedDataFile) forEachPayloadRange(indices []int, offset, length int, f func(index, blockOffset, dataOffset, n int) error) error {
	for dataOffset := 0; dataOffset < length; {
		position := offset + dataOffset
		offsetWithinPayload := position % df.payloadSizeBytes
		n := min(df.payloadSizeBytes-offsetWithinPayload, length-dataOffset)
		if err := f(indices[position/df.payloadSizeBytes], BlockHeaderSizeBytes+offsetWithinPayload, dataOffset, n); err != nil {
			return err
		}
		dataOffset += n
	}
	return nil
}

func (df *chainedDataFile) checkWritable() error {
	if df.blockFile.IsReadOnly() {
		return status.Error(codes.PermissionDenied, "Data file is opened read-only")
	}
	return nil
}

// releaseBlocks returns blocks to the allocator after a failed
// operation. Failures are only logged, as the original error is more
// relevant to the caller.
func (df *chainedDataFile) releaseBlocks(indices []int) {
	if len(indices) > 0 {
		if err := df.allocator.DeallocateBlocks(indices); err != nil {
			df.errorLogger.Log(util.StatusWrap(err, "Failed to release blocks"))
		}
	}
}

func (df *chainedDataFile) deallocateBlocks(indices []int) error {
	if len(indices) == 0 {
		return nil
	}
	if err := df.allocator.DeallocateBlocks(indices); err != nil {
		return util.StatusWrap(err, "Failed to deallocate blocks")
	}
	return nil
}

func (df *chainedDataFile) setBlockCapacity(blockCapacity int) error {
	oldBlockCapacity := df.allocator.Capacity()
	header := df.header
	header.blockCapacity = blockCapacity
	if blockCapacity >= oldBlockCapacity {
		if err := df.blockFile.SetBlockCapacity(blockCapacity); err != nil {
			return util.StatusWrapf(err, "Failed to grow data file to %d blocks", blockCapacity)
		}
		if err := df.blockFile.WriteHeader(header.marshal()); err != nil {
			return util.StatusWrap(err, "Failed to write file header")
		}
		df.header = header
		return df.allocator.SetCapacity(blockCapacity)
	}

	// When shrinking, update the file header before truncating. An
	// interrupted truncation then leaves behind trailing blocks,
	// which are discarded when reopened.
	if err := df.allocator.SetCapacity(blockCapacity); err != nil {
		return err
	}
	if err := df.blockFile.WriteHeader(header.marshal()); err != nil {
		if restoreErr := df.allocator.SetCapacity(oldBlockCapacity); restoreErr != nil {
			df.errorLogger.Log(util.StatusWrap(restoreErr, "Failed to restore block allocator capacity"))
		}
		return util.StatusWrap(err, "Failed to write file header")
	}
	df.header = header
	if err := df.blockFile.SetBlockCapacity(blockCapacity); err != nil {
		return util.StatusWrapf(err, "Failed to shrink data file to %d blocks", blockCapacity)
	}
	return nil
}

// allocateBlocks allocates a number of blocks, growing the data file
// if the block allocator has no free blocks left.
func (df *chainedDataFile) allocateBlocks(count int) ([]int, error) {
	indices := df.allocator.AllocateBlocks(count)
	shortfall := count - len(indices)
	if shortfall == 0 {
		return indices, nil
	}

	// Only grow the data file if the allocator truly ran out of
	// blocks. Allocators may also refuse to hand out blocks due to
	// quota.
	if blockCapacity := df.allocator.Capacity(); df.allocator.AllocatedBlockCount() == blockCapacity {
		if err := df.setBlockCapacity(blockCapacity + max(shortfall, df.capacityIncrement, blockCapacity/10)); err != nil {
			df.releaseBlocks(indices)
			return nil, err
		}
		indices = append(indices, df.allocator.AllocateBlocks(shortfall)...)
	}
	if len(indices) < count {
		df.releaseBlocks(indices)
		return nil, status.Errorf(codes.ResourceExhausted, "Failed to allocate %d blocks, as only %d blocks could be allocated", count, len(indices))
	}
	return indices, nil
}

func (df *chainedDataFile) insertItem(data []byte) (int, error) {
	indices, err := df.allocateBlocks(df.getBlocksNeeded(len(data)))
	if err != nil {
		return 0, err
	}
	if err := df.blockFile.WriteBlocks(df.encodeChain(indices, data, true), indices); err != nil {
		df.releaseBlocks(indices)
		return 0, util.StatusWrap(err, "Failed to write item")
	}
	return indices[0], nil
}

func (df *chainedDataFile) InsertItemData(data []byte) (int, error) {
	if err := df.checkWritable(); err != nil {
		return 0, err
	}
	return df.insertItem(data)
}

func (df *chainedDataFile) InsertBlankItemData(size int) (int, error) {
	if size < 0 {
		return 0, status.Errorf(codes.InvalidArgument, "Negative item size: %d", size)
	}
	if err := df.checkWritable(); err != nil {
		return 0, err
	}
	return df.insertItem(make([]byte, size))
}

func (df *chainedDataFile) GetItemData(startBlock int) ([]byte, error) {
	indices, headers, err := df.getChain(startBlock)
	if err != nil {
		return nil, err
	}

	// Read all blocks in one go, so that runs of consecutive blocks
	// are coalesced.
	blockSizeBytes := df.blockFile.BlockSizeBytes()
	lastPayloadLength := headers[len(headers)-1].payloadLength
	blocks := make([]byte, (len(indices)-1)*blockSizeBytes+BlockHeaderSizeBytes+lastPayloadLength)
	if err := df.blockFile.ReadBlocks(blocks, indices); err != nil {
		return nil, util.StatusWrap(err, "Failed to read item")
	}
	data := make([]byte, 0, getItemSize(headers))
	for i, h := range headers {
		payloadOffset := i*blockSizeBytes + BlockHeaderSizeBytes
		data = append(data, blocks[payloadOffset:payloadOffset+h.payloadLength]...)
	}
	return data, nil
}

func (df *chainedDataFile) GetPartialItemData(startBlock, offset, length int) ([]byte, error) {
	if offset < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "Negative read offset: %d", offset)
	}
	if length < 0 {
		return nil, status.Errorf(codes.InvalidArgument, "Negative read length: %d", length)
	}
	indices, headers, err := df.getChain(startBlock)
	if err != nil {
		return nil, err
	}
	if size := getItemSize(headers); offset+length > size {
		return nil, status.Errorf(codes.OutOfRange, "Attempted to read %d bytes at offset %d, while the item is only %d bytes in size", length, offset, size)
	}

	data := make([]byte, length)
	if err := df.forEachPayloadRange(indices, offset, length, func(index, blockOffset, dataOffset, n int) error {
		return df.blockFile.ReadPartialBlock(data[dataOffset:dataOffset+n], index, blockOffset)
	}); err != nil {
		return nil, util.StatusWrap(err, "Failed to read item")
	}
	return data, nil
}

func (df *chainedDataFile) GetItemSize(startBlock int) (int, error) {
	_, headers, err := df.getChain(startBlock)
	if err != nil {
		return 0, err
	}
	return getItemSize(headers), nil
}

func (df *chainedDataFile) UpdateItemData(startBlock int, data []byte) error {
	if err := df.checkWritable(); err != nil {
		return err
	}
	indices, _, err := df.getChain(startBlock)
	if err != nil {
		return err
	}

	blocksNeeded := df.getBlocksNeeded(len(data))
	if blocksNeeded <= len(indices) {
		// Rewrite the leading blocks and release the remainder.
		kept := indices[:blocksNeeded]
		if err := df.blockFile.WriteBlocks(df.encodeChain(kept, data, true), kept); err != nil {
			return util.StatusWrap(err, "Failed to write item")
		}
		return df.deallocateBlocks(indices[blocksNeeded:])
	}

	// Write the additional blocks before the existing ones, so that
	// they are only linked into the chain once they are complete.
	extra, err := df.allocateBlocks(blocksNeeded - len(indices))
	if err != nil {
		return err
	}
	encoded := df.encodeChain(append(append([]int(nil), indices...), extra...), data, true)
	existingSizeBytes := len(indices) * df.blockFile.BlockSizeBytes()
	if err := df.blockFile.WriteBlocks(encoded[existingSizeBytes:], extra); err != nil {
		df.releaseBlocks(extra)
		return util.StatusWrap(err, "Failed to write item")
	}
	if err := df.blockFile.WriteBlocks(encoded[:existingSizeBytes], indices); err != nil {
		df.releaseBlocks(extra)
		return util.StatusWrap(err, "Failed to write item")
	}
	return nil
}

func (df *chainedDataFile) UpdatePartialItemData(startBlock, offset int, data []byte) error {
	if offset < 0 {
		return status.Errorf(codes.InvalidArgument, "Negative write offset: %d", offset)
	}
	if err := df.checkWritable(); err != nil {
		return err
	}
	indices, headers, err := df.getChain(startBlock)
	if err != nil {
		return err
	}
	size := getItemSize(headers)
	if offset > size {
		return status.Errorf(codes.OutOfRange, "Attempted to write at offset %d, while the item is only %d bytes in size", offset, size)
	}

	inPlace := min(len(data), size-offset)
	if err := df.forEachPayloadRange(indices, offset, inPlace, func(index, blockOffset, dataOffset, n int) error {
		return df.blockFile.WritePartialBlock(data[dataOffset:dataOffset+n], index, blockOffset)
	}); err != nil {
		return util.StatusWrap(err, "Failed to write item")
	}
	return df.appendToChain(indices, headers, data[inPlace:])
}

// appendToChain adds data to the end of an existing chain. The last
// block of the chain is filled up first. New blocks are only linked
// into the chain after they have been written.
func (df *chainedDataFile) appendToChain(indices []int, headers []blockHeader, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	tailBlock := indices[len(indices)-1]
	oldTail := headers[len(headers)-1]
	topUp := min(df.payloadSizeBytes-oldTail.payloadLength, len(data))
	newTail := oldTail
	newTail.payloadLength += topUp

	var extra []int
	if remainder := data[topUp:]; len(remainder) > 0 {
		var err error
		extra, err = df.allocateBlocks(df.getBlocksNeeded(len(remainder)))
		if err != nil {
			return err
		}
		if err := df.blockFile.WriteBlocks(df.encodeChain(extra, remainder, false), extra); err != nil {
			df.releaseBlocks(extra)
			return util.StatusWrap(err, "Failed to write appended blocks")
		}
		newTail.nextBlock = extra[0]
	}
	if topUp > 0 {
		if err := df.blockFile.WritePartialBlock(data[:topUp], tailBlock, BlockHeaderSizeBytes+oldTail.payloadLength); err != nil {
			df.releaseBlocks(extra)
			return util.StatusWrapf(err, "Failed to write payload of block %d", tailBlock)
		}
	}
	if err := df.blockFile.WritePartialBlock(newTail.appendTo(nil), tailBlock, 0); err != nil {
		df.releaseBlocks(extra)
		return util.StatusWrapf(err, "Failed to write header of block %d", tailBlock)
	}
	return nil
}

func (df *chainedDataFile) AppendItemData(startBlock int, data []byte) error {
	if err := df.checkWritable(); err != nil {
		return err
	}
	indices, headers, err := df.getChain(startBlock)
	if err != nil {
		return err
	}
	return df.appendToChain(indices, headers, data)
}

func (df *chainedDataFile) AppendBlankItemData(startBlock, size int) error {
	if size < 0 {
		return status.Errorf(codes.InvalidArgument, "Negative append size: %d", size)
	}
	if err := df.checkWritable(); err != nil {
		return err
	}
	indices, headers, err := df.getChain(startBlock)
	if err != nil {
		return err
	}
	return df.appendToChain(indices, headers, make([]byte, size))
}

func (df *chainedDataFile) DeletePartialItemData(startBlock, removeSize int) error {
	if removeSize < 0 {
		return status.Errorf(codes.InvalidArgument, "Negative removal size: %d", removeSize)
	}
	if err := df.checkWritable(); err != nil {
		return err
	}
	indices, headers, err := df.getChain(startBlock)
	if err != nil {
		return err
	}
	size := getItemSize(headers)
	if removeSize > size {
		return status.Errorf(codes.OutOfRange, "Attempted to remove %d bytes, while the item is only %d bytes in size", removeSize, size)
	}
	if removeSize == 0 {
		return nil
	}

	newSize := size - removeSize
	blocksNeeded := df.getBlocksNeeded(newSize)
	newTailBlock := indices[blocksNeeded-1]
	newTail := blockHeader{
		isChainStart:  blocksNeeded == 1,
		nextBlock:     noNextBlock,
		payloadLength: newSize - (blocksNeeded-1)*df.payloadSizeBytes,
	}
	if err := df.blockFile.WritePartialBlock(newTail.appendTo(nil), newTailBlock, 0); err != nil {
		return util.StatusWrapf(err, "Failed to write header of block %d", newTailBlock)
	}
	return df.deallocateBlocks(indices[blocksNeeded:])
}

func (df *chainedDataFile) DeleteItemData(startBlock int) error {
	if err := df.checkWritable(); err != nil {
		return err
	}
	indices, _, err := df.getChain(startBlock)
	if err != nil {
		return err
	}
	// Clear the chain start flag first, so that the item is not
	// brought back when the data file is reopened.
	if err := df.blockFile.WritePartialBlock([]byte{0}, startBlock, 0); err != nil {
		return util.StatusWrapf(err, "Failed to clear chain start flag of block %d", startBlock)
	}
	return df.deallocateBlocks(indices)
}

func (df *chainedDataFile) GetDataStartBlocks() ([]int, error) {
	allocated := df.allocator.GetAllocatedBlocks()
	chainStartFlags := make([]byte, len(allocated))
	if err := df.blockFile.ReadPartialBlocks(chainStartFlags, allocated, 0, 1); err != nil {
		return nil, util.StatusWrap(err, "Failed to read chain start flags")
	}
	startBlocks := []int{}
	for i, flag := range chainStartFlags {
		if flag != 0 {
			startBlocks = append(startBlocks, allocated[i])
		}
	}
	return startBlocks, nil
}

func (df *chainedDataFile) ClearAllBlocks() error {
	if err := df.checkWritable(); err != nil {
		return err
	}
	df.allocator.DeallocateAllBlocks()
	blockCapacity := df.allocator.Capacity()

	header := df.header
	header.blockCapacity = blockCapacity
	if err := df.blockFile.WriteHeader(header.marshal()); err != nil {
		return util.StatusWrap(err, "Failed to write file header")
	}
	df.header = header
	if err := df.blockFile.SetBlockCapacity(blockCapacity); err != nil {
		return util.StatusWrapf(err, "Failed to resize data file to %d blocks", blockCapacity)
	}
	// Remove chain start flags, so that items don't reappear when
	// the data file is reopened.
	return df.zeroBlocks(blockCapacity)
}

func (df *chainedDataFile) TrimToSize() error {
	if err := df.checkWritable(); err != nil {
		return err
	}
	if blockCapacity := max(df.allocator.SpaceInUse(), df.initialBlockCapacity); blockCapacity < df.allocator.Capacity() {
		return df.setBlockCapacity(blockCapacity)
	}
	return nil
}

func (df *chainedDataFile) GetStatistics() Statistics {
	return Statistics{
		FileID:               df.header.fileID,
		BlockSizeBytes:       df.blockFile.BlockSizeBytes(),
		PayloadSizeBytes:     df.payloadSizeBytes,
		HeaderSizeBytes:      df.blockFile.HeaderSizeBytes(),
		InitialBlockCapacity: df.initialBlockCapacity,
		BlockCapacity:        df.allocator.Capacity(),
		AllocatedBlocks:      df.allocator.AllocatedBlockCount(),
		SpaceInUseBlocks:     df.allocator.SpaceInUse(),
	}
}

func (df *chainedDataFile) IsModifiedExternally() (bool, error) {
	return df.blockFile.IsModifiedExternally()
}

func (df *chainedDataFile) Sync() error {
	if modified, err := df.blockFile.IsModifiedExternally(); err != nil {
		df.errorLogger.Log(util.StatusWrap(err, "Failed to check for external modifications"))
	} else if modified {
		df.errorLogger.Log(status.Errorf(codes.FailedPrecondition, "Data file %s was modified externally", df.header.fileID))
	}
	return df.blockFile.Sync()
}

func (df *chainedDataFile) Close() error {
	return df.blockFile.Close()
}
