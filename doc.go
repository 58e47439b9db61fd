// Package linecache provides a concurrent, memory-bounded line cache for
// text files: individual lines, full line lists, or verbatim content are
// served by path with O(1) repeated access, automatic staleness detection
// via (mtime, size) fingerprints, and byte-for-byte compatibility with the
// legacy trailing-newline splitting convention.
//
// The library is organised into several files for clarity:
//
//	options.go     – configuration struct & defaults
//	memory.go      – total physical memory probe (budget bootstrap)
//	cache.go       – constructors & core fields
//	store.go       – weighted byte-bounded store & weighers
//	lines.go       – shared line sequence & splitter
//	fingerprint.go – (mtime, size) freshness fingerprints
//	read.go        – GetLine / GetLines / GetContent & load path
//	random.go      – RandomLine / RandomChar helpers
//	invalidate.go  – invalidation, clear & close helpers
//	stats.go       – lightweight stats accessors
//
// See the README for usage examples.
package linecache
