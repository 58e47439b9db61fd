package linecache

import "sync/atomic"

// Stats menyimpan statistik hit/miss lookup baris.
// HitRatio dalam persentase (0-100).
type Stats struct {
	Hits     uint64
	Misses   uint64
	HitRatio float64
}

// GetStats mengambil snapshot statistik tanpa lock berat. Hit berarti
// lookup baris terlayani dari cache; miss berarti load read-through.
func (c *LineCache) GetStats() Stats {
	hits := atomic.LoadUint64(&c.statHits)
	misses := atomic.LoadUint64(&c.statMisses)
	total := hits + misses
	ratio := 0.0
	if total > 0 {
		ratio = float64(hits) / float64(total) * 100.0
	}
	return Stats{Hits: hits, Misses: misses, HitRatio: ratio}
}

// ResetStats mengatur ulang penghitung hit/miss.
func (c *LineCache) ResetStats() {
	atomic.StoreUint64(&c.statHits, 0)
	atomic.StoreUint64(&c.statMisses, 0)
}

// LineBudget mengembalikan budget byte cache baris.
func (c *LineCache) LineBudget() int64 { return c.options.LineCacheBytes }

// ContentBudget mengembalikan budget byte cache konten.
func (c *LineCache) ContentBudget() int64 { return c.options.ContentCacheBytes }
