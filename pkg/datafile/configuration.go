package datafile

import (
	"github.com/buildbarn/bb-datafile/pkg/allocator"
	"github.com/buildbarn/bb-datafile/pkg/blockfile"
	"github.com/buildbarn/bb-datafile/pkg/configuration"
	"github.com/buildbarn/bb-storage/pkg/blockdevice"
	"github.com/buildbarn/bb-storage/pkg/clock"
	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewStorageBackendFromConfiguration creates a StorageBackend based on
// parameters provided in a configuration file.
func NewStorageBackendFromConfiguration(config *configuration.StorageBackendConfiguration, readOnly bool, clock clock.Clock) (blockfile.StorageBackend, error) {
	switch {
	case config.File != nil:
		return blockfile.NewFileStorageBackend(config.File.Path, readOnly)
	case config.InMemory != nil:
		if readOnly {
			return nil, status.Error(codes.InvalidArgument, "In-memory storage backends cannot be opened read-only")
		}
		return blockfile.NewInMemoryStorageBackend(clock), nil
	case len(config.BlockDevice) > 0:
		if readOnly {
			return nil, status.Error(codes.InvalidArgument, "Block device storage backends cannot be opened read-only")
		}
		blockDeviceConfiguration, err := config.GetBlockDeviceConfiguration()
		if err != nil {
			return nil, err
		}
		blockDevice, sectorSizeBytes, sectorCount, err := blockdevice.NewBlockDeviceFromConfiguration(blockDeviceConfiguration, true)
		if err != nil {
			return nil, util.StatusWrap(err, "Failed to create block device")
		}
		// The length of the data file is not stored on the
		// block device. Expose the full block device, so that
		// the data file can obtain its capacity from the file
		// header.
		sizeBytes := int64(sectorSizeBytes) * sectorCount
		return blockfile.NewBlockDeviceStorageBackend(blockDevice, sizeBytes, sizeBytes, clock), nil
	default:
		return nil, status.Error(codes.InvalidArgument, "Configuration did not contain a supported storage backend")
	}
}

// NewDataFileFromConfiguration opens or creates a DataFile based on
// parameters provided in a configuration file. The resulting DataFile
// is safe for concurrent use.
func NewDataFileFromConfiguration(config *configuration.DataFileConfiguration, clock clock.Clock, errorLogger util.ErrorLogger) (DataFile, error) {
	if config == nil {
		return nil, status.Error(codes.InvalidArgument, "No data file configuration provided")
	}
	modificationMargin, err := config.GetModificationMargin(blockfile.DefaultModificationMargin)
	if err != nil {
		return nil, err
	}
	headerSizeBytes := config.HeaderSizeBytes
	if headerSizeBytes == 0 {
		headerSizeBytes = FileHeaderSizeBytes
	}

	backend, err := NewStorageBackendFromConfiguration(&config.Backend, config.ReadOnly, clock)
	if err != nil {
		return nil, err
	}
	blockFile, err := blockfile.NewBlockFile(backend, clock, config.BlockSizeBytes, headerSizeBytes, modificationMargin)
	if err != nil {
		backend.Close()
		return nil, err
	}

	allocatorFactory := allocator.BitmapBlockAllocatorFactory
	if config.MaximumAllocatedBlocks > 0 {
		allocatorFactory = allocator.NewQuotaEnforcingBlockAllocatorFactory(allocatorFactory, config.MaximumAllocatedBlocks)
	}
	if config.MetricsName != "" {
		allocatorFactory = allocator.NewMetricsBlockAllocatorFactory(allocatorFactory, config.MetricsName)
	}

	dataFile, err := NewChainedDataFile(blockFile, allocatorFactory, config.InitialBlockCapacity, config.CapacityIncrement, errorLogger)
	if err != nil {
		blockFile.Close()
		return nil, err
	}
	if config.MetricsName != "" {
		dataFile = NewMetricsDataFile(dataFile, clock, config.MetricsName)
	}
	return NewLockingDataFile(dataFile), nil
}
