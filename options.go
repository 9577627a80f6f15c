package scopedtls

import "github.com/baxromumarov/scopedtls/internal/tid"

// Mode selects the execution context a [Slot] is private to.
type Mode int

const (
	// PerGoroutine keys a slot by the calling goroutine. Code running in the
	// same goroutine inside a Set body sees the value; every other goroutine,
	// including ones started inside the body, sees an empty slot.
	PerGoroutine Mode = iota

	// PerThread keys a slot by the calling OS thread. Every operation wires
	// the goroutine to its thread with runtime.LockOSThread for its extent,
	// so a Set body runs on one thread from start to finish.
	// Only available where [ThreadModeSupported] reports true.
	PerThread
)

// String returns the mode's name.
func (m Mode) String() string {
	switch m {
	case PerGoroutine:
		return "goroutine"
	case PerThread:
		return "thread"
	default:
		return "unknown"
	}
}

// ThreadModeSupported reports whether [PerThread] can be used on this
// platform.
func ThreadModeSupported() bool {
	return tid.Supported
}

type config struct {
	mode    Mode
	onEvent func(Event)
}

// Option configures a [Slot].
type Option func(*config)

func defaultConfig() config {
	return config{
		mode: PerGoroutine,
	}
}

// WithMode sets the execution context the slot is keyed by.
// It panics if m is not a known Mode value, or if m is [PerThread] and the
// platform has no thread id source.
func WithMode(m Mode) Option {
	return func(c *config) {
		switch m {
		case PerGoroutine:
		case PerThread:
			if !tid.Supported {
				panic("scopedtls: thread mode is not supported on this platform")
			}
		default:
			panic("scopedtls: invalid mode")
		}
		c.mode = m
	}
}

// WithOnEvent registers a hook invoked synchronously, in the calling
// context, for every state change of the slot. See [EventKind].
//
// The hook must not call back into the same slot.
func WithOnEvent(fn func(Event)) Option {
	return func(c *config) {
		c.onEvent = fn
	}
}
