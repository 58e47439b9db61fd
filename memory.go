package linecache

import "sync"

// minTotalMemory is the floor reported by TotalMemory so the cache stays
// usable in memory-constrained test environments.
const minTotalMemory = 1 << 30 // 1 GiB

var (
	totalMemOnce  sync.Once
	totalMemBytes uint64
)

// TotalMemory returns the total physical memory of the machine in bytes,
// probed once per process and cached thereafter. The result is never below
// 1 GiB. Callers deriving their own budgets can use this directly instead
// of DefaultOptions.
func TotalMemory() uint64 {
	totalMemOnce.Do(func() {
		totalMemBytes = probeTotalMemory()
		if totalMemBytes < minTotalMemory {
			totalMemBytes = minTotalMemory
		}
	})
	return totalMemBytes
}
