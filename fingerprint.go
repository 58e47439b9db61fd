package linecache

import (
	"errors"
	"io/fs"
	"os"
	"time"
)

// fingerprint mengidentifikasi keadaan sebuah file di disk pada saat
// di-cache: waktu modifikasi + ukuran byte. Immutable; dibandingkan
// dengan equal, tidak pernah diurutkan.
type fingerprint struct {
	mtime time.Time
	size  int64
}

func fingerprintOf(fi os.FileInfo) fingerprint {
	return fingerprint{mtime: fi.ModTime(), size: fi.Size()}
}

func (f fingerprint) equal(other fingerprint) bool {
	return f.size == other.size && f.mtime.Equal(other.mtime)
}

// isModified reports whether filename changed on disk since it was
// cached. It is the sole staleness mechanism and runs before every
// public read.
//
//   - no cached fingerprint -> modified (forces the first load)
//   - mtime or size differs -> modified
//   - file absent           -> invalidate the path everywhere, modified
//   - any other stat error  -> propagated
func (c *LineCache) isModified(filename string) (bool, error) {
	fi, err := os.Stat(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.Invalidate(filename)
			return true, nil
		}
		return false, err
	}
	cached, ok := c.fingerprints.Get(filename)
	if !ok {
		return true, nil
	}
	return !cached.equal(fingerprintOf(fi)), nil
}
