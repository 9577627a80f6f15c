// Package scopedtls provides scoped context-local storage slots for Go.
//
// A [Slot] is a named cell private to one execution context that holds a
// value only for the dynamic extent of a call. Code running inside that
// extent, however deeply nested, can reach the value; as soon as the extent
// ends, normally or by panic, the slot is restored to its previous contents.
//
// # Declaring a Slot
//
// Create one slot per name with [New], usually as a package-level variable.
// The variable is the slot's identity; the name shows up in errors and
// events:
//
//	type Request struct {
//	    ID    string
//	    Calls int
//	}
//
//	var current = scopedtls.New[Request]("current")
//
// # Installing and Borrowing
//
// [Slot.Set] installs a value for the duration of a function and returns it
// afterwards. [With] and [Slot.Do] lend a pointer to the value to a callback:
//
//	req := current.Set(Request{ID: "r-1"}, func() {
//	    handle() // may call current.Do(func(r *Request) { r.Calls++ })
//	})
//	// req.Calls reflects every change made during handle.
//
// The pointer handed to a callback is valid only until the callback returns.
// While the callback runs the value is held out of the slot, so a nested
// With on the same slot fails instead of producing a second live pointer.
// [Slot.IsSet] reports whether a value is currently reachable.
//
// # Nesting
//
// A Set inside another Set's body hides the outer value until it returns;
// the outer value then reappears unchanged. Nested calls form an implicit
// stack, realised by the call stack itself.
//
// # Errors and Panics
//
// Reaching an empty slot is a programming error. [With] and [Slot.Do] panic
// with a [*NotSetError], which matches [ErrNotSet]; [TryWith] returns the
// error instead. Use [IsNotSet] and [SlotOf] to inspect it.
//
// Panics raised by a Set body or a With callback are never recovered: the
// slot is restored and the panic keeps propagating.
//
// # Execution Contexts
//
// Go does not expose thread-local storage, so a slot is keyed by the
// calling goroutine by default ([PerGoroutine]). With [WithMode]([PerThread])
// a slot is keyed by the OS thread instead, and every operation keeps the
// goroutine wired to its thread for its extent. In both modes a goroutine
// started inside a Set body does not see the value.
//
// # Observability
//
// [WithOnEvent] registers a hook receiving an [Event] for every state
// change: set, restore, borrow, return and not-set.
//
// # Swap Guards
//
// The [github.com/baxromumarov/scopedtls/swap] subpackage provides the cell
// and the exchange, lend and probe guards the slot is built on.
package scopedtls
