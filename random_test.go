package linecache

import (
	"os"
	"path/filepath"
	"testing"
)

func writeRandomTestFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "r.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRandomLineDeterministic(t *testing.T) {
	c := newTestCache(t)
	path := writeRandomTestFile(t, "a\nb\nc")

	c.pick = func(n int) int { return 0 }
	line, ok, err := c.RandomLine(path)
	if err != nil || !ok || line != "a" {
		t.Fatalf("pick=first: got (%q, %v, %v)", line, ok, err)
	}

	c.pick = func(n int) int { return n - 1 }
	line, ok, err = c.RandomLine(path)
	if err != nil || !ok || line != "c" {
		t.Fatalf("pick=last: got (%q, %v, %v)", line, ok, err)
	}
}

func TestRandomLineSpread(t *testing.T) {
	c := newTestCache(t)
	path := writeRandomTestFile(t, "0\n1\n2\n3\n4\n5\n6\n7\n8\n9")

	seen := make(map[string]bool)
	for i := 0; i < 200; i++ {
		line, ok, err := c.RandomLine(path)
		if err != nil || !ok {
			t.Fatalf("draw %d: (%v, %v)", i, ok, err)
		}
		seen[line] = true
	}
	if len(seen) < 2 {
		t.Fatalf("200 draws over 10 lines produced %d distinct values", len(seen))
	}
}

func TestRandomCharDeterministic(t *testing.T) {
	c := newTestCache(t)
	path := writeRandomTestFile(t, "héllo→世界")

	c.pick = func(n int) int { return 0 }
	r, ok, err := c.RandomChar(path)
	if err != nil || !ok || r != 'h' {
		t.Fatalf("pick=first: got (%q, %v, %v)", r, ok, err)
	}

	c.pick = func(n int) int { return n - 1 }
	r, ok, err = c.RandomChar(path)
	if err != nil || !ok || r != '界' {
		t.Fatalf("pick=last: got (%q, %v, %v)", r, ok, err)
	}

	s, ok, err := c.RandomCharString(path)
	if err != nil || !ok || s != "界" {
		t.Fatalf("RandomCharString: got (%q, %v, %v)", s, ok, err)
	}
}

func TestRandomCharSpread(t *testing.T) {
	c := newTestCache(t)
	path := writeRandomTestFile(t, "abcdefghij")

	seen := make(map[rune]bool)
	for i := 0; i < 200; i++ {
		r, ok, err := c.RandomChar(path)
		if err != nil || !ok {
			t.Fatalf("draw %d: (%v, %v)", i, ok, err)
		}
		if r < 'a' || r > 'j' {
			t.Fatalf("draw %d out of alphabet: %q", i, r)
		}
		seen[r] = true
	}
	if len(seen) < 2 {
		t.Fatalf("200 draws over 10 runes produced %d distinct values", len(seen))
	}
}

func TestRandomCharEmptyLine(t *testing.T) {
	c := newTestCache(t)
	path := writeRandomTestFile(t, "\n")

	// both lines of "\n" are empty: a line exists, a char does not
	_, ok, err := c.RandomLine(path)
	if err != nil || !ok {
		t.Fatalf("RandomLine: (%v, %v)", ok, err)
	}
	_, ok, err = c.RandomChar(path)
	if err != nil {
		t.Fatalf("RandomChar errored: %v", err)
	}
	if ok {
		t.Fatal("empty line has no characters")
	}
}

func TestRandomAbsentFile(t *testing.T) {
	c := newTestCache(t)
	path := filepath.Join(t.TempDir(), "missing.txt")

	if _, ok, err := c.RandomLine(path); err != nil || ok {
		t.Fatalf("RandomLine on missing file: (%v, %v)", ok, err)
	}
	if _, ok, err := c.RandomChar(path); err != nil || ok {
		t.Fatalf("RandomChar on missing file: (%v, %v)", ok, err)
	}
}
