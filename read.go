package linecache

import (
	"errors"
	"io/fs"
	"os"
	"sync/atomic"
)

// GetLine mengembalikan baris ke-lineno dari file (dihitung dari 1).
// Nomor baris 0, negatif, atau melebihi jumlah baris mengembalikan
// absen (false), bukan error.
func (c *LineCache) GetLine(filename string, lineno int) (string, bool, error) {
	lines, err := c.linesFor(filename)
	if err != nil {
		return "", false, err
	}
	line, ok := lines.At(lineno - 1)
	return line, ok, nil
}

// GetLines mengembalikan salinan owned dari seluruh baris file. File
// kosong (atau tidak ada) dilaporkan absen, bukan slice kosong,
// mengikuti semantik legacy.
func (c *LineCache) GetLines(filename string) ([]string, bool, error) {
	lines, err := c.linesFor(filename)
	if err != nil {
		return nil, false, err
	}
	if lines.Len() == 0 {
		return nil, false, nil
	}
	return lines.Clone(), true, nil
}

// Lines mengembalikan urutan baris yang dibagikan tanpa menyalin.
// Pemanggil tidak boleh memutasi hasilnya; gunakan Clone untuk salinan.
func (c *LineCache) Lines(filename string) (*Lines, bool, error) {
	lines, err := c.linesFor(filename)
	if err != nil {
		return nil, false, err
	}
	if lines.Len() == 0 {
		return nil, false, nil
	}
	return lines, true, nil
}

// GetContent mengembalikan konten file persis seperti di disk. Konten
// disimpan terpisah dari cache baris karena menyambung ulang baris tidak
// dijamin mereproduksi byte aslinya (trailing newline, terminator
// campuran). File yang tidak ada dilaporkan absen, bukan error.
func (c *LineCache) GetContent(filename string) (string, bool, error) {
	modified, err := c.isModified(filename)
	if err != nil {
		return "", false, err
	}
	if modified {
		c.Invalidate(filename)
	}

	if content, ok := c.contents.get(filename); ok {
		return content, true, nil
	}

	if c.loads != nil {
		v, err, _ := c.loads.Do("content\x00"+filename, func() (any, error) {
			content, ok, err := c.loadContent(filename)
			if err != nil {
				return nil, err
			}
			if !ok {
				return nil, nil
			}
			return content, nil
		})
		if err != nil {
			return "", false, err
		}
		if v == nil {
			return "", false, nil
		}
		return v.(string), true, nil
	}
	return c.loadContent(filename)
}

// linesFor returns the cached line sequence for filename, loading it on
// a miss. Stale entries are dropped first. Without SingleFlight two
// concurrent misses may both read the file; the last insert wins, which
// is safe because every stored value comes from a real read.
func (c *LineCache) linesFor(filename string) (*Lines, error) {
	modified, err := c.isModified(filename)
	if err != nil {
		return nil, err
	}
	if modified {
		c.Invalidate(filename)
	}

	if lines, ok := c.lines.get(filename); ok {
		atomic.AddUint64(&c.statHits, 1)
		return lines, nil
	}
	atomic.AddUint64(&c.statMisses, 1)

	if c.loads != nil {
		v, err, _ := c.loads.Do("lines\x00"+filename, func() (any, error) {
			return c.loadLines(filename)
		})
		if err != nil {
			return nil, err
		}
		return v.(*Lines), nil
	}
	return c.loadLines(filename)
}

// loadLines membaca file, memecah baris, lalu mencatat urutan baris dan
// fingerprint barunya. File yang hilang di antara pengecekan fingerprint
// dan pembacaan diperlakukan sebagai "sedang kosong", bukan kesalahan.
func (c *LineCache) loadLines(filename string) (*Lines, error) {
	fi, err := os.Stat(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.Invalidate(filename)
			return emptyLines, nil
		}
		return nil, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.Invalidate(filename)
			return emptyLines, nil
		}
		return nil, err
	}

	lines := SplitLines(data)
	c.lines.set(filename, lines)
	c.fingerprints.Add(filename, fingerprintOf(fi))
	return lines, nil
}

func (c *LineCache) loadContent(filename string) (string, bool, error) {
	fi, err := os.Stat(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.Invalidate(filename)
			return "", false, nil
		}
		return "", false, err
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.Invalidate(filename)
			return "", false, nil
		}
		return "", false, err
	}

	content := string(data)
	c.contents.set(filename, content)
	c.fingerprints.Add(filename, fingerprintOf(fi))
	return content, true, nil
}
