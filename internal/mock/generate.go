package mock

//go:generate go run go.uber.org/mock/mockgen -package mock -destination allocator.go github.com/buildbarn/bb-datafile/pkg/allocator BlockAllocator,BlockAllocatorFactory
//go:generate go run go.uber.org/mock/mockgen -package mock -destination blockdevice.go github.com/buildbarn/bb-storage/pkg/blockdevice BlockDevice
//go:generate go run go.uber.org/mock/mockgen -package mock -destination blockfile.go github.com/buildbarn/bb-datafile/pkg/blockfile BlockFile,StorageBackend
//go:generate go run go.uber.org/mock/mockgen -package mock -destination clock.go github.com/buildbarn/bb-storage/pkg/clock Clock
//go:generate go run go.uber.org/mock/mockgen -package mock -destination datafile.go github.com/buildbarn/bb-datafile/pkg/datafile DataFile
//go:generate go run go.uber.org/mock/mockgen -package mock -destination util.go github.com/buildbarn/bb-storage/pkg/util ErrorLogger
