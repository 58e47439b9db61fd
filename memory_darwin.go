//go:build darwin

package linecache

import "golang.org/x/sys/unix"

func probeTotalMemory() uint64 {
	mem, err := unix.SysctlUint64("hw.memsize")
	if err != nil {
		return 0 // fall back to the floor
	}
	return mem
}
