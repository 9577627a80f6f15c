//go:build !linux

package tid

// Supported reports whether Current works on this platform.
const Supported = false

// Current always fails on this platform.
func Current() (uint64, error) {
	return 0, ErrUnsupported
}
