package datafile

import (
	"bytes"
	"encoding/binary"

	"github.com/google/uuid"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FileHeaderSizeBytes is the minimum size of the header region of the
// block file in which a data file is stored.
//
// Layout (big endian):
//
//	offset  0: magic "BBDF"
//	offset  4: version (uint16)
//	offset  6: reserved (uint16)
//	offset  8: block size in bytes (uint32)
//	offset 12: block capacity (uint32)
//	offset 16: file identifier (UUID, 16 bytes)
const FileHeaderSizeBytes = 32

const fileHeaderVersion = 1

var fileHeaderMagic = [...]byte{'B', 'B', 'D', 'F'}

type fileHeader struct {
	blockSizeBytes int
	blockCapacity  int
	fileID         uuid.UUID
}

func (h fileHeader) marshal() []byte {
	p := make([]byte, 0, FileHeaderSizeBytes)
	p = append(p, fileHeaderMagic[:]...)
	p = binary.BigEndian.AppendUint16(p, fileHeaderVersion)
	p = binary.BigEndian.AppendUint16(p, 0)
	p = binary.BigEndian.AppendUint32(p, uint32(h.blockSizeBytes))
	p = binary.BigEndian.AppendUint32(p, uint32(h.blockCapacity))
	return append(p, h.fileID[:]...)
}

// isZeroFileHeader returns true if the header region has never been
// written to, which is the case for newly created files and block
// devices.
func isZeroFileHeader(p []byte) bool {
	for _, b := range p {
		if b != 0 {
			return false
		}
	}
	return true
}

func parseFileHeader(p []byte) (fileHeader, error) {
	if !bytes.Equal(p[:4], fileHeaderMagic[:]) {
		return fileHeader{}, status.Errorf(codes.InvalidArgument, "File header has magic %#v, while %#v was expected", string(p[:4]), string(fileHeaderMagic[:]))
	}
	if version := binary.BigEndian.Uint16(p[4:]); version != fileHeaderVersion {
		return fileHeader{}, status.Errorf(codes.Unimplemented, "File header has version %d, while only version %d is supported", version, fileHeaderVersion)
	}
	h := fileHeader{
		blockSizeBytes: int(binary.BigEndian.Uint32(p[8:])),
		blockCapacity:  int(binary.BigEndian.Uint32(p[12:])),
	}
	copy(h.fileID[:], p[16:32])
	return h, nil
}
