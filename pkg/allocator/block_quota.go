package allocator

import "sync/atomic"

// blockQuota counts the number of blocks that may still be allocated.
// The counter may become negative when an allocator is seeded with, or
// explicitly marked with, more occupied blocks than the quota permits. Allocations then fail until
// enough blocks are released.
type blockQuota struct {
	remaining atomic.Int64
}

func (q *blockQuota) reserve(n int64) bool {
	for {
		remaining := q.remaining.Load()
		if remaining < n {
			return false
		}
		if q.remaining.CompareAndSwap(remaining, remaining-n) {
			return true
		}
	}
}

func (q *blockQuota) release(n int64) {
	q.remaining.Add(n)
}
