package linecache

import (
	"fmt"

	"github.com/dgraph-io/ristretto/v2"
)

const (
	// entryOverhead is a conservative per-entry charge for object headers
	// and allocator alignment, added on top of the measured payload.
	entryOverhead = 128

	// stringHeaderSize is the size of a string header on 64-bit platforms.
	stringHeaderSize = 16
)

// weightedStore membungkus ristretto sebagai penyimpanan ber-budget byte:
// setiap entri ditimbang oleh fungsi weigher, dan total bobot entri hidup
// tidak melebihi maxBytes (eviction aproksimatif, bukan LRU ketat).
//
// Semua operasi aman untuk goroutine; set bersifat buffered, panggil wait
// untuk memaksa rekonsiliasi (dipakai oleh test).
type weightedStore[V any] struct {
	c *ristretto.Cache[string, V]
}

func newWeightedStore[V any](maxBytes int64, weigh func(V) int64) (*weightedStore[V], error) {
	if maxBytes <= 0 {
		return nil, fmt.Errorf("weighted store: budget must be positive, got %d", maxBytes)
	}

	// Size the admission counters for roughly 1 KiB average entries,
	// clamped so tiny test budgets and huge machines both behave.
	counters := maxBytes / 1024 * 10
	if counters < 1<<12 {
		counters = 1 << 12
	}
	if counters > 1<<24 {
		counters = 1 << 24
	}

	c, err := ristretto.NewCache(&ristretto.Config[string, V]{
		NumCounters:        counters,
		MaxCost:            maxBytes,
		BufferItems:        64,
		Cost:               weigh,
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("weighted store: %w", err)
	}
	return &weightedStore[V]{c: c}, nil
}

func (s *weightedStore[V]) get(key string) (V, bool) { return s.c.Get(key) }

// set inserts or replaces key. The cost is computed by the configured
// weigher; an entry heavier than the whole budget is declined, which the
// read-through path tolerates (the loaded value is returned regardless).
func (s *weightedStore[V]) set(key string, value V) { s.c.Set(key, value, 0) }

func (s *weightedStore[V]) del(key string) { s.c.Del(key) }

func (s *weightedStore[V]) clear() { s.c.Clear() }

// wait blocks until buffered sets have been applied or dropped.
func (s *weightedStore[V]) wait() { s.c.Wait() }

func (s *weightedStore[V]) close() { s.c.Close() }

// weighLines charges the allocated footprint of a line sequence: the
// backing array by capacity, every string payload, plus entryOverhead.
func weighLines(l *Lines) int64 {
	if l == nil {
		return entryOverhead
	}
	total := int64(cap(l.items)) * stringHeaderSize
	for _, s := range l.items {
		total += int64(len(s))
	}
	return total + entryOverhead
}

// weighContent charges the verbatim content payload plus entryOverhead.
func weighContent(s string) int64 {
	return int64(len(s)) + entryOverhead
}
