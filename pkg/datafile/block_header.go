package datafile

import (
	"encoding/binary"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// BlockHeaderSizeBytes is the number of bytes at the start of every
// block that are used to link blocks together into chains.
//
// Layout (big endian):
//
//	offset 0: isChainStart (1 byte, 0 or 1)
//	offset 1: nextBlock (int32, -1 for the last block of a chain)
//	offset 5: payloadLength (uint32)
const BlockHeaderSizeBytes = 9

const (
	blockHeaderNextBlockOffset     = 1
	blockHeaderPayloadLengthOffset = 5

	noNextBlock = -1
)

// blockHeader is the decoded form of the header stored at the start of
// every allocated block.
type blockHeader struct {
	isChainStart  bool
	nextBlock     int
	payloadLength int
}

func (h blockHeader) appendTo(p []byte) []byte {
	chainStart := byte(0)
	if h.isChainStart {
		chainStart = 1
	}
	p = append(p, chainStart)
	p = binary.BigEndian.AppendUint32(p, uint32(int32(h.nextBlock)))
	return binary.BigEndian.AppendUint32(p, uint32(h.payloadLength))
}

// parseBlockHeader decodes a block header, validating that its fields
// are consistent with the block file it was read from.
func parseBlockHeader(p []byte, index, blockCapacity, payloadSizeBytes int) (blockHeader, error) {
	h := blockHeader{
		isChainStart:  p[0] != 0,
		nextBlock:     int(int32(binary.BigEndian.Uint32(p[blockHeaderNextBlockOffset:]))),
		payloadLength: int(binary.BigEndian.Uint32(p[blockHeaderPayloadLengthOffset:])),
	}
	if p[0] > 1 {
		return blockHeader{}, status.Errorf(codes.DataLoss, "Block %d has invalid chain start flag %d", index, p[0])
	}
	if h.nextBlock != noNextBlock && (h.nextBlock < 0 || h.nextBlock >= blockCapacity) {
		return blockHeader{}, status.Errorf(codes.DataLoss, "Block %d refers to next block %d, which is outside the range [0, %d)", index, h.nextBlock, blockCapacity)
	}
	if h.payloadLength > payloadSizeBytes {
		return blockHeader{}, status.Errorf(codes.DataLoss, "Block %d has payload length %d, while blocks can only hold %d bytes of payload", index, h.payloadLength, payloadSizeBytes)
	}
	if h.nextBlock != noNextBlock && h.payloadLength != payloadSizeBytes {
		return blockHeader{}, status.Errorf(codes.DataLoss, "Block %d is not the last block of its chain, but only has payload length %d", index, h.payloadLength)
	}
	return h, nil
}
