package linecache

import (
	"fmt"
	"math/rand"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// LineCache melayani baris, daftar baris, dan konten utuh dari file yang
// dialamatkan lewat path, dengan tiga cache independen: urutan baris dan
// konten mentah dalam penyimpanan ber-budget byte, plus fingerprint
// (mtime, size) berkapasitas kecil untuk deteksi perubahan file.
//
// Ketiga cache di-evict secara independen; entri baris dan entri konten
// untuk path yang sama boleh hilang sendiri-sendiri.
//
// Semua operasi aman untuk goroutine.
type LineCache struct {
	lines        *weightedStore[*Lines]
	contents     *weightedStore[string]
	fingerprints *lru.Cache[string, fingerprint]
	options      Options

	loads *singleflight.Group // nil unless Options.SingleFlight

	pick func(n int) int // uniform draw from [0, n); injectable in tests

	statMisses uint64 // read-through loads
	statHits   uint64 // line lookups served from cache
}

// New membuat cache dengan opsi default (lihat DefaultOptions).
func New() (*LineCache, error) {
	return NewWithOptions(DefaultOptions())
}

// NewWithOptions membuat cache dengan opsi kustom. Bidang bernilai nol
// diisi dari DefaultOptions.
func NewWithOptions(opts Options) (*LineCache, error) {
	def := DefaultOptions()
	if opts.LineCacheBytes <= 0 {
		opts.LineCacheBytes = def.LineCacheBytes
	}
	if opts.ContentCacheBytes <= 0 {
		opts.ContentCacheBytes = def.ContentCacheBytes
	}
	if opts.FingerprintEntries <= 0 {
		opts.FingerprintEntries = def.FingerprintEntries
	}

	lines, err := newWeightedStore(opts.LineCacheBytes, weighLines)
	if err != nil {
		return nil, fmt.Errorf("line cache: %w", err)
	}
	contents, err := newWeightedStore(opts.ContentCacheBytes, weighContent)
	if err != nil {
		lines.close()
		return nil, fmt.Errorf("content cache: %w", err)
	}
	fingerprints, err := lru.New[string, fingerprint](opts.FingerprintEntries)
	if err != nil {
		lines.close()
		contents.close()
		return nil, fmt.Errorf("fingerprint cache: %w", err)
	}

	c := &LineCache{
		lines:        lines,
		contents:     contents,
		fingerprints: fingerprints,
		options:      opts,
		pick:         rand.Intn,
	}
	if opts.SingleFlight {
		c.loads = new(singleflight.Group)
	}
	return c, nil
}
