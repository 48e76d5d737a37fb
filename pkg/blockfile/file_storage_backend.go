package blockfile

import (
	"io"
	"os"
	"time"

	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fileStorageBackend struct {
	file     *os.File
	readOnly bool
}

// NewFileStorageBackend creates a StorageBackend that is backed by a
// file on the local file system. The file is created if it does not
// exist, unless it is opened read-only.
func NewFileStorageBackend(path string, readOnly bool) (StorageBackend, error) {
	flags := os.O_RDWR | os.O_CREATE
	if readOnly {
		flags = os.O_RDONLY
	}
	f, err := os.OpenFile(path, flags, 0o666)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, util.StatusWrapfWithCode(err, codes.NotFound, "Failed to open file %#v", path)
		}
		return nil, util.StatusWrapf(err, "Failed to open file %#v", path)
	}
	return &fileStorageBackend{
		file:     f,
		readOnly: readOnly,
	}, nil
}

func (sb *fileStorageBackend) checkWritable() error {
	if sb.readOnly {
		return status.Error(codes.PermissionDenied, "File is opened read-only")
	}
	return nil
}

func (sb *fileStorageBackend) SetFilePointer(position int64) error {
	if position < 0 {
		return status.Errorf(codes.InvalidArgument, "Negative file pointer: %d", position)
	}
	if _, err := sb.file.Seek(position, io.SeekStart); err != nil {
		return util.StatusWrapf(err, "Failed to seek to offset %d", position)
	}
	return nil
}

func (sb *fileStorageBackend) ReadFully(p []byte) error {
	if _, err := io.ReadFull(sb.file, p); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return status.Errorf(codes.OutOfRange, "Attempted to read %d bytes past the end of the file", len(p))
		}
		return util.StatusWrap(err, "Failed to read from file")
	}
	return nil
}

func (sb *fileStorageBackend) Write(p []byte) error {
	if err := sb.checkWritable(); err != nil {
		return err
	}
	if _, err := sb.file.Write(p); err != nil {
		return util.StatusWrap(err, "Failed to write to file")
	}
	return nil
}

func (sb *fileStorageBackend) Length() (int64, error) {
	fileInfo, err := sb.file.Stat()
	if err != nil {
		return 0, util.StatusWrap(err, "Failed to obtain file size")
	}
	return fileInfo.Size(), nil
}

func (sb *fileStorageBackend) SetLength(length int64) error {
	if err := sb.checkWritable(); err != nil {
		return err
	}
	if length < 0 {
		return status.Errorf(codes.InvalidArgument, "Negative file length: %d", length)
	}
	if err := sb.file.Truncate(length); err != nil {
		return util.StatusWrapf(err, "Failed to truncate file to %d bytes", length)
	}
	return nil
}

func (sb *fileStorageBackend) Flush() error {
	if sb.readOnly {
		return nil
	}
	if err := sb.file.Sync(); err != nil {
		return util.StatusWrap(err, "Failed to synchronize file")
	}
	return nil
}

func (sb *fileStorageBackend) Close() error {
	return sb.file.Close()
}

func (sb *fileStorageBackend) IsReadOnly() bool {
	return sb.readOnly
}

func (sb *fileStorageBackend) GetLastModified() (time.Time, error) {
	fileInfo, err := sb.file.Stat()
	if err != nil {
		return time.Time{}, util.StatusWrap(err, "Failed to obtain file modification time")
	}
	return fileInfo.ModTime(), nil
}
