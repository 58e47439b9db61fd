package linecache

import "strings"

// Lines adalah urutan baris yang immutable dan dibagikan apa adanya ke
// semua pembaca sebuah file; tidak pernah dimutasi setelah dibuat, hanya
// diganti utuh saat reload. Pemanggil yang butuh salinan mutable harus
// memanggil Clone.
type Lines struct {
	items []string
}

// emptyLines is the shared sentinel for absent or empty files.
var emptyLines = &Lines{}

// Len returns the number of lines in the sequence.
func (l *Lines) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}

// At returns the line at index i (0-based). Any index outside the
// sequence reports false rather than panicking.
func (l *Lines) At(i int) (string, bool) {
	if l == nil || i < 0 || i >= len(l.items) {
		return "", false
	}
	return l.items[i], true
}

// Clone returns an owned copy of the sequence that the caller may mutate
// freely without affecting other readers.
func (l *Lines) Clone() []string {
	if l.Len() == 0 {
		return nil
	}
	out := make([]string, len(l.items))
	copy(out, l.items)
	return out
}

// SplitLines splits raw file content into lines, terminators stripped.
// A lone trailing '\r' per line is removed so CRLF input splits cleanly.
//
// Legacy convention: a trailing terminator begins a new, currently empty
// line rather than merely closing the previous one, so non-empty input
// ending in '\n' yields a final empty line. Empty input yields zero
// lines, not one empty line.
//
//	SplitLines(nil)               -> []
//	SplitLines([]byte("\n"))      -> ["", ""]
//	SplitLines([]byte("hello\n")) -> ["hello", ""]
//	SplitLines([]byte("hello"))   -> ["hello"]
func SplitLines(data []byte) *Lines {
	if len(data) == 0 {
		return emptyLines
	}
	items := strings.Split(string(data), "\n")
	for i, s := range items {
		if strings.HasSuffix(s, "\r") {
			items[i] = s[:len(s)-1]
		}
	}
	return &Lines{items: items}
}
