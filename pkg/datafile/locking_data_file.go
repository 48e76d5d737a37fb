package datafile

import (
	"sync"
)

type lockingDataFile struct {
	base DataFile
	lock sync.Mutex
}

// NewLockingDataFile is an adapter for DataFile that serializes all
// calls against the underlying DataFile. Even read operations need to
// be serialized, as they move the file pointer of the underlying
// storage backend.
func NewLockingDataFile(base DataFile) DataFile {
	return &lockingDataFile{
		base: base,
	}
}

func (df *lockingDataFile) InsertItemData(data []byte) (int, error) {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.InsertItemData(data)
}

func (df *lockingDataFile) InsertBlankItemData(size int) (int, error) {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.InsertBlankItemData(size)
}

func (df *lockingDataFile) GetItemData(startBlock int) ([]byte, error) {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.GetItemData(startBlock)
}

func (df *lockingDataFile) GetPartialItemData(startBlock, offset, length int) ([]byte, error) {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.GetPartialItemData(startBlock, offset, length)
}

func (df *lockingDataFile) GetItemSize(startBlock int) (int, error) {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.GetItemSize(startBlock)
}

func (df *lockingDataFile) UpdateItemData(startBlock int, data []byte) error {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.UpdateItemData(startBlock, data)
}

func (df *lockingDataFile) UpdatePartialItemData(startBlock, offset int, data []byte) error {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.UpdatePartialItemData(startBlock, offset, data)
}

func (df *lockingDataFile) AppendItemData(startBlock int, data []byte) error {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.AppendItemData(startBlock, data)
}

func (df *lockingDataFile) AppendBlankItemData(startBlock, size int) error {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.AppendBlankItemData(startBlock, size)
}

func (df *lockingDataFile) DeletePartialItemData(startBlock, removeSize int) error {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.DeletePartialItemData(startBlock, removeSize)
}

func (df *lockingDataFile) DeleteItemData(startBlock int) error {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.DeleteItemData(startBlock)
}

func (df *lockingDataFile) GetDataStartBlocks() ([]int, error) {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.GetDataStartBlocks()
}

func (df *lockingDataFile) ClearAllBlocks() error {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.ClearAllBlocks()
}

func (df *lockingDataFile) TrimToSize() error {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.TrimToSize()
}

func (df *lockingDataFile) GetStatistics() Statistics {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.GetStatistics()
}

func (df *lockingDataFile) IsModifiedExternally() (bool, error) {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.IsModifiedExternally()
}

func (df *lockingDataFile) Sync() error {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.Sync()
}

func (df *lockingDataFile) Close() error {
	df.lock.Lock()
	defer df.lock.Unlock()
	return df.base.Close()
}
