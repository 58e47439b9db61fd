package linecache

// RandomLine mengembalikan satu baris acak (seragam) dari file. Pemilihan
// bekerja langsung pada urutan baris yang dibagikan, tanpa membaca ulang
// file atau alokasi tambahan. File kosong atau tidak ada dilaporkan absen.
func (c *LineCache) RandomLine(filename string) (string, bool, error) {
	lines, err := c.linesFor(filename)
	if err != nil {
		return "", false, err
	}
	if lines.Len() == 0 {
		return "", false, nil
	}
	line, ok := lines.At(c.pick(lines.Len()))
	return line, ok, nil
}

// RandomChar menggambar satu baris acak lalu memilih satu Unicode scalar
// value acak darinya. Baris kosong (atau file tanpa baris) absen.
func (c *LineCache) RandomChar(filename string) (rune, bool, error) {
	line, ok, err := c.RandomLine(filename)
	if err != nil || !ok {
		return 0, false, err
	}
	runes := []rune(line)
	if len(runes) == 0 {
		return 0, false, nil
	}
	return runes[c.pick(len(runes))], true, nil
}

// RandomCharString sama dengan RandomChar tetapi mengembalikan string.
func (c *LineCache) RandomCharString(filename string) (string, bool, error) {
	r, ok, err := c.RandomChar(filename)
	if err != nil || !ok {
		return "", false, err
	}
	return string(r), true, nil
}
