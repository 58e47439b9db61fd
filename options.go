package linecache

// Options menyediakan opsi konfigurasi untuk LineCache.
//
//   - LineCacheBytes:    budget byte untuk cache baris (0 = default)
//   - ContentCacheBytes: budget byte untuk cache konten mentah (0 = default)
//   - FingerprintEntries: kapasitas cache fingerprint dalam jumlah entri,
//     bukan byte (entri fingerprint kecil dan seragam)
//   - SingleFlight: gabungkan load bersamaan untuk path yang sama sehingga
//     hanya satu goroutine yang membaca file (default mati: dua miss
//     bersamaan boleh sama-sama membaca, insert terakhir menang)
//
// Semua bidang bersifat opsi; nilai 0 artinya gunakan default.
// Lihat DefaultOptions() untuk nilai bawaan.
type Options struct {
	LineCacheBytes     int64 // Budget cache baris dalam byte (0 = default)
	ContentCacheBytes  int64 // Budget cache konten dalam byte (0 = default)
	FingerprintEntries int   // Kapasitas cache fingerprint (0 = default)
	SingleFlight       bool  // Dedup load bersamaan per path
}

// DefaultOptions mengembalikan konfigurasi default yang digunakan New:
// 85% dari total memori fisik, dibagi rata antara cache baris dan cache
// konten, dengan 8192 slot fingerprint.
func DefaultOptions() Options {
	total := int64(TotalMemory()) * 85 / 100
	return Options{
		LineCacheBytes:     total / 2,
		ContentCacheBytes:  total / 2,
		FingerprintEntries: 8192,
	}
}
