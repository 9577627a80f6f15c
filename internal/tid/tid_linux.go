//go:build linux

package tid

import "golang.org/x/sys/unix"

// Supported reports whether Current works on this platform.
const Supported = true

// Current returns the kernel thread id of the calling thread.
func Current() (uint64, error) {
	return uint64(unix.Gettid()), nil
}
