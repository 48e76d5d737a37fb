package allocator

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	blockAllocatorPrometheusMetrics sync.Once

	blockAllocatorBlocksAllocated = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "datafile",
			Name:      "block_allocator_blocks_allocated_total",
			Help:      "Number of blocks that were handed out by the block allocator.",
		},
		[]string{"name"})
	blockAllocatorBlocksReleased = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "datafile",
			Name:      "block_allocator_blocks_released_total",
			Help:      "Number of blocks that were returned to the block allocator.",
		},
		[]string{"name"})
	blockAllocatorAllocatedBlocks = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "buildbarn",
			Subsystem: "datafile",
			Name:      "block_allocator_allocated_blocks",
			Help:      "Number of blocks that are currently allocated.",
		},
		[]string{"name"})
	blockAllocatorCapacityBlocks = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "buildbarn",
			Subsystem: "datafile",
			Name:      "block_allocator_capacity_blocks",
			Help:      "Number of blocks that may be allocated without growing the block file.",
		},
		[]string{"name"})
)

type metricsBlockAllocator struct {
	BlockAllocator

	blocksAllocated prometheus.Counter
	blocksReleased  prometheus.Counter
	allocatedBlocks prometheus.Gauge
	capacityBlocks  prometheus.Gauge
}

// NewMetricsBlockAllocator creates a decorator for BlockAllocator that
// exposes Prometheus metrics on the number of blocks allocated and
// released, and on the current utilization of the index space.
func NewMetricsBlockAllocator(base BlockAllocator, name string) BlockAllocator {
	blockAllocatorPrometheusMetrics.Do(func() {
		prometheus.MustRegister(blockAllocatorBlocksAllocated)
		prometheus.MustRegister(blockAllocatorBlocksReleased)
		prometheus.MustRegister(blockAllocatorAllocatedBlocks)
		prometheus.MustRegister(blockAllocatorCapacityBlocks)
	})

	ba := &metricsBlockAllocator{
		BlockAllocator:  base,
		blocksAllocated: blockAllocatorBlocksAllocated.WithLabelValues(name),
		blocksReleased:  blockAllocatorBlocksReleased.WithLabelValues(name),
		allocatedBlocks: blockAllocatorAllocatedBlocks.WithLabelValues(name),
		capacityBlocks:  blockAllocatorCapacityBlocks.WithLabelValues(name),
	}
	ba.updateGauges()
	return ba
}

func (ba *metricsBlockAllocator) updateGauges() {
	ba.allocatedBlocks.Set(float64(ba.BlockAllocator.AllocatedBlockCount()))
	ba.capacityBlocks.Set(float64(ba.BlockAllocator.Capacity()))
}

// trackDelta observes the change in the number of allocated blocks
// caused by an operation.
func (ba *metricsBlockAllocator) trackDelta(before int) {
	if after := ba.BlockAllocator.AllocatedBlockCount(); after > before {
		ba.blocksAllocated.Add(float64(after - before))
	} else if after < before {
		ba.blocksReleased.Add(float64(before - after))
	}
	ba.updateGauges()
}

func (ba *metricsBlockAllocator) AllocateBlock() (int, bool) {
	before := ba.BlockAllocator.AllocatedBlockCount()
	index, ok := ba.BlockAllocator.AllocateBlock()
	ba.trackDelta(before)
	return index, ok
}

func (ba *metricsBlockAllocator) AllocateBlockAt(index int) error {
	before := ba.BlockAllocator.AllocatedBlockCount()
	err := ba.BlockAllocator.AllocateBlockAt(index)
	ba.trackDelta(before)
	return err
}

func (ba *metricsBlockAllocator) AllocateBlocks(n int) []int {
	before := ba.BlockAllocator.AllocatedBlockCount()
	indices := ba.BlockAllocator.AllocateBlocks(n)
	ba.trackDelta(before)
	return indices
}

func (ba *metricsBlockAllocator) DeallocateBlock(index int) error {
	before := ba.BlockAllocator.AllocatedBlockCount()
	err := ba.BlockAllocator.DeallocateBlock(index)
	ba.trackDelta(before)
	return err
}

func (ba *metricsBlockAllocator) DeallocateBlocks(indices []int) error {
	before := ba.BlockAllocator.AllocatedBlockCount()
	err := ba.BlockAllocator.DeallocateBlocks(indices)
	ba.trackDelta(before)
	return err
}

func (ba *metricsBlockAllocator) DeallocateAllBlocks() {
	before := ba.BlockAllocator.AllocatedBlockCount()
	ba.BlockAllocator.DeallocateAllBlocks()
	ba.trackDelta(before)
}

func (ba *metricsBlockAllocator) SetCapacity(capacity int) error {
	err := ba.BlockAllocator.SetCapacity(capacity)
	ba.updateGauges()
	return err
}

type metricsBlockAllocatorFactory struct {
	base BlockAllocatorFactory
	name string
}

// NewMetricsBlockAllocatorFactory creates a BlockAllocatorFactory that
// wraps all allocators created by an underlying factory with
// NewMetricsBlockAllocator().
func NewMetricsBlockAllocatorFactory(base BlockAllocatorFactory, name string) BlockAllocatorFactory {
	return &metricsBlockAllocatorFactory{
		base: base,
		name: name,
	}
}

func (f *metricsBlockAllocatorFactory) NewBlockAllocator(initialCapacity int, occupiedIndices []int) (BlockAllocator, error) {
	ba, err := f.base.NewBlockAllocator(initialCapacity, occupiedIndices)
	if err != nil {
		return nil, err
	}
	return NewMetricsBlockAllocator(ba, f.name), nil
}
