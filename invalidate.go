package linecache

// Invalidate membuang entri path ini dari ketiga cache tanpa syarat.
// Entri path lain tidak tersentuh.
func (c *LineCache) Invalidate(filename string) {
	c.lines.del(filename)
	c.contents.del(filename)
	c.fingerprints.Remove(filename)
}

// Clear mengosongkan ketiga cache sekaligus.
func (c *LineCache) Clear() {
	c.lines.clear()
	c.contents.clear()
	c.fingerprints.Purge()
}

// Wait memblokir sampai insert yang masih ter-buffer di kedua store
// ber-budget selesai direkonsiliasi. Berguna ketika test perlu mengamati
// isi cache secara deterministik.
func (c *LineCache) Wait() {
	c.lines.wait()
	c.contents.wait()
}

// Close melepaskan sumber daya latar belakang milik kedua store.
// Cache tidak boleh dipakai lagi setelah Close.
func (c *LineCache) Close() error {
	c.lines.close()
	c.contents.close()
	return nil
}
