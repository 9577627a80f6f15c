package scopedtls

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrNotSet is matched by every [*NotSetError] via [errors.Is].
var ErrNotSet = errors.New("scopedtls: slot is empty")

// NotSetError reports access to a slot that holds no value in the calling
// context: either no Set is active, or an enclosing With on the same slot is
// holding the value out.
//
// [With] and [Slot.Do] panic with a *NotSetError; [TryWith] returns it.
type NotSetError struct {
	// Slot is the name of the slot.
	Slot string

	// Mode is the slot's execution context mode.
	Mode Mode

	// Stack is the goroutine stack trace at the point of the failed access.
	Stack string
}

func (e *NotSetError) Error() string {
	return fmt.Sprintf("scopedtls: slot %q is empty", e.Slot)
}

// Is reports whether target is [ErrNotSet].
func (e *NotSetError) Is(target error) bool {
	return target == ErrNotSet
}

func newNotSetError(slot string, mode Mode) *NotSetError {
	// 4 KiB covers the frames that matter; runtime.Stack truncates
	// gracefully if the buffer is too small.
	buf := make([]byte, 4096)
	n := runtime.Stack(buf, false)
	return &NotSetError{
		Slot:  slot,
		Mode:  mode,
		Stack: string(buf[:n]),
	}
}

// IsNotSet reports whether v is a [*NotSetError] or an error wrapping one.
//
// v may be an error or a value recovered from a panic, so the result of
// recover can be passed directly:
//
//	defer func() {
//	    if r := recover(); scopedtls.IsNotSet(r) {
//	        // a slot was read outside its Set
//	    }
//	}()
func IsNotSet(v any) bool {
	err, ok := v.(error)
	if !ok || err == nil {
		return false
	}
	return errors.Is(err, ErrNotSet)
}

// SlotOf extracts the slot name from the first [*NotSetError] in err's chain.
// Returns false if no NotSetError is found.
func SlotOf(err error) (string, bool) {
	if err == nil {
		return "", false
	}

	var ne *NotSetError
	if errors.As(err, &ne) {
		return ne.Slot, true
	}
	return "", false
}
