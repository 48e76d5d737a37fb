package datafile

import (
	"sync"
	"time"

	"github.com/buildbarn/bb-storage/pkg/clock"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/prometheus/client_golang/prometheus"

	"google.golang.org/grpc/status"
)

var (
	dataFilePrometheusMetrics sync.Once

	dataFileOperationsDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "datafile",
			Name:      "data_file_operations_duration_seconds",
			Help:      "Amount of time spent per operation on data files, in seconds.",
			Buckets:   util.DecimalExponentialBuckets(-3, 6, 2),
		},
		[]string{"name", "operation", "status_code"})
	dataFileItemSizeBytes = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "datafile",
			Name:      "data_file_item_size_bytes",
			Help:      "Size of data transferred per operation on data files, in bytes.",
			Buckets:   prometheus.ExponentialBuckets(1.0, 2.0, 33),
		},
		[]string{"name", "operation"})
)

// operationMetrics holds references to Prometheus metrics for a single
// data file operation.
type operationMetrics struct {
	ok      prometheus.Observer
	failure prometheus.ObserverVec
	size    prometheus.Observer
}

func newOperationMetrics(name, operation string) operationMetrics {
	return operationMetrics{
		ok: dataFileOperationsDurationSeconds.WithLabelValues(name, operation, "OK"),
		failure: dataFileOperationsDurationSeconds.MustCurryWith(map[string]string{
			"name":      name,
			"operation": operation,
		}),
		size: dataFileItemSizeBytes.WithLabelValues(name, operation),
	}
}

func (m *operationMetrics) observe(timeStart, timeStop time.Time, err error) {
	d := timeStop.Sub(timeStart).Seconds()
	if err == nil {
		m.ok.Observe(d)
	} else {
		m.failure.WithLabelValues(status.Code(err).String()).Observe(d)
	}
}

func (m *operationMetrics) observeWithSize(timeStart, timeStop time.Time, sizeBytes int, err error) {
	m.observe(timeStart, timeStop, err)
	if err == nil {
		m.size.Observe(float64(sizeBytes))
	}
}

type metricsDataFile struct {
	base  DataFile
	clock clock.Clock

	insertItemData        operationMetrics
	insertBlankItemData   operationMetrics
	getItemData           operationMetrics
	getPartialItemData    operationMetrics
	getItemSize           operationMetrics
	updateItemData        operationMetrics
	updatePartialItemData operationMetrics
	appendItemData        operationMetrics
	appendBlankItemData   operationMetrics
	deletePartialItemData operationMetrics
	deleteItemData        operationMetrics
	getDataStartBlocks    operationMetrics
	clearAllBlocks        operationMetrics
	trimToSize            operationMetrics
	sync                  operationMetrics
}

// NewMetricsDataFile creates a decorator for DataFile that exposes
// Prometheus metrics on the duration of operations and the amount of
// data transferred.
func NewMetricsDataFile(base DataFile, clock clock.Clock, name string) DataFile {
	dataFilePrometheusMetrics.Do(func() {
		prometheus.MustRegister(dataFileOperationsDurationSeconds)
		prometheus.MustRegister(dataFileItemSizeBytes)
	})

	return &metricsDataFile{
		base:  base,
		clock: clock,

		insertItemData:        newOperationMetrics(name, "InsertItemData"),
		insertBlankItemData:   newOperationMetrics(name, "InsertBlankItemData"),
		getItemData:           newOperationMetrics(name, "GetItemData"),
		getPartialItemData:    newOperationMetrics(name, "GetPartialItemData"),
		getItemSize:           newOperationMetrics(name, "GetItemSize"),
		updateItemData:        newOperationMetrics(name, "UpdateItemData"),
		updatePartialItemData: newOperationMetrics(name, "UpdatePartialItemData"),
		appendItemData:        newOperationMetrics(name, "AppendItemData"),
		appendBlankItemData:   newOperationMetrics(name, "AppendBlankItemData"),
		deletePartialItemData: newOperationMetrics(name, "DeletePartialItemData"),
		deleteItemData:        newOperationMetrics(name, "DeleteItemData"),
		getDataStartBlocks:    newOperationMetrics(name, "GetDataStartBlocks"),
		clearAllBlocks:        newOperationMetrics(name, "ClearAllBlocks"),
		trimToSize:            newOperationMetrics(name, "TrimToSize"),
		sync:                  newOperationMetrics(name, "Sync"),
	}
}

func (df *metricsDataFile) InsertItemData(data []byte) (int, error) {
	timeStart := df.clock.Now()
	startBlock, err := df.base.InsertItemData(data)
	df.insertItemData.observeWithSize(timeStart, df.clock.Now(), len(data), err)
	return startBlock, err
}

func (df *metricsDataFile) InsertBlankItemData(size int) (int, error) {
	timeStart := df.clock.Now()
	startBlock, err := df.base.InsertBlankItemData(size)
	df.insertBlankItemData.observeWithSize(timeStart, df.clock.Now(), size, err)
	return startBlock, err
}

func (df *metricsDataFile) GetItemData(startBlock int) ([]byte, error) {
	timeStart := df.clock.Now()
	data, err := df.base.GetItemData(startBlock)
	df.getItemData.observeWithSize(timeStart, df.clock.Now(), len(data), err)
	return data, err
}

func (df *metricsDataFile) GetPartialItemData(startBlock, offset, length int) ([]byte, error) {
	timeStart := df.clock.Now()
	data, err := df.base.GetPartialItemData(startBlock, offset, length)
	df.getPartialItemData.observeWithSize(timeStart, df.clock.Now(), len(data), err)
	return data, err
}

func (df *metricsDataFile) GetItemSize(startBlock int) (int, error) {
	timeStart := df.clock.Now()
	size, err := df.base.GetItemSize(startBlock)
	df.getItemSize.observe(timeStart, df.clock.Now(), err)
	return size, err
}

func (df *metricsDataFile) UpdateItemData(startBlock int, data []byte) error {
	timeStart := df.clock.Now()
	err := df.base.UpdateItemData(startBlock, data)
	df.updateItemData.observeWithSize(timeStart, df.clock.Now(), len(data), err)
	return err
}

func (df *metricsDataFile) UpdatePartialItemData(startBlock, offset int, data []byte) error {
	timeStart := df.clock.Now()
	err := df.base.UpdatePartialItemData(startBlock, offset, data)
	df.updatePartialItemData.observeWithSize(timeStart, df.clock.Now(), len(data), err)
	return err
}

func (df *metricsDataFile) AppendItemData(startBlock int, data []byte) error {
	timeStart := df.clock.Now()
	err := df.base.AppendItemData(startBlock, data)
	df.appendItemData.observeWithSize(timeStart, df.clock.Now(), len(data), err)
	return err
}

func (df *metricsDataFile) AppendBlankItemData(startBlock, size int) error {
	timeStart := df.clock.Now()
	err := df.base.AppendBlankItemData(startBlock, size)
	df.appendBlankItemData.observeWithSize(timeStart, df.clock.Now(), size, err)
	return err
}

func (df *metricsDataFile) DeletePartialItemData(startBlock, removeSize int) error {
	timeStart := df.clock.Now()
	err := df.base.DeletePartialItemData(startBlock, removeSize)
	df.deletePartialItemData.observeWithSize(timeStart, df.clock.Now(), removeSize, err)
	return err
}

func (df *metricsDataFile) DeleteItemData(startBlock int) error {
	timeStart := df.clock.Now()
	err := df.base.DeleteItemData(startBlock)
	df.deleteItemData.observe(timeStart, df.clock.Now(), err)
	return err
}

func (df *metricsDataFile) GetDataStartBlocks() ([]int, error) {
	timeStart := df.clock.Now()
	startBlocks, err := df.base.GetDataStartBlocks()
	df.getDataStartBlocks.observe(timeStart, df.clock.Now(), err)
	return startBlocks, err
}

func (df *metricsDataFile) ClearAllBlocks() error {
	timeStart := df.clock.Now()
	err := df.base.ClearAllBlocks()
	df.clearAllBlocks.observe(timeStart, df.clock.Now(), err)
	return err
}

func (df *metricsDataFile) TrimToSize() error {
	timeStart := df.clock.Now()
	err := df.base.TrimToSize()
	df.trimToSize.observe(timeStart, df.clock.Now(), err)
	return err
}

func (df *metricsDataFile) GetStatistics() Statistics {
	return df.base.GetStatistics()
}

func (df *metricsDataFile) IsModifiedExternally() (bool, error) {
	return df.base.IsModifiedExternally()
}

func (df *metricsDataFile) Sync() error {
	timeStart := df.clock.Now()
	err := df.base.Sync()
	df.sync.observe(timeStart, df.clock.Now(), err)
	return err
}

func (df *metricsDataFile) Close() error {
	return df.base.Close()
}
