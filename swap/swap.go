package swap

// Cell holds at most one value of type T. The zero Cell is empty.
//
// A Cell is not safe for concurrent use. It is meant to be owned by a single
// goroutine at a time.
type Cell[T any] struct {
	val  T
	full bool
}

// Full returns a Cell occupied by v.
func Full[T any](v T) Cell[T] {
	return Cell[T]{val: v, full: true}
}

// IsFull reports whether the cell holds a value.
func (c *Cell[T]) IsFull() bool {
	return c.full
}

// Swap exchanges the contents (value and occupancy) of c and o.
func (c *Cell[T]) Swap(o *Cell[T]) {
	c.val, o.val = o.val, c.val
	c.full, o.full = o.full, c.full
}

// Take removes the value from the cell and returns it. The second result is
// false if the cell was already empty.
func (c *Cell[T]) Take() (T, bool) {
	var zero T
	if !c.full {
		return zero, false
	}
	v := c.val
	c.val, c.full = zero, false
	return v, true
}

// Put stores v in the cell, replacing any previous value.
func (c *Cell[T]) Put(v T) {
	c.val, c.full = v, true
}

// Exchange swaps the contents of cell and incoming and returns a function
// that swaps them back. The returned function restores at most once; later
// calls are no-ops.
//
// Typical use registers the restore before any further work:
//
//	restore := swap.Exchange(cell, &incoming)
//	defer restore()
func Exchange[T any](cell, incoming *Cell[T]) (restore func()) {
	cell.Swap(incoming)

	done := false
	return func() {
		if done {
			return
		}
		done = true
		cell.Swap(incoming)
	}
}

// With installs the contents of incoming into cell for the duration of body.
//
// When With returns, normally or because body panicked or called
// runtime.Goexit, cell holds exactly what it held on entry and incoming holds
// what cell held when body ended. Panics are not recovered.
func With[T any](cell, incoming *Cell[T], body func()) {
	restore := Exchange(cell, incoming)
	defer restore()

	body()
}

// Lend takes the value out of cell, passes a pointer to it to fn and puts the
// (possibly modified) value back once fn ends, on every exit path.
//
// While fn runs the cell is empty, so a nested Lend on the same cell reports
// false instead of handing out a second pointer. If cell is empty on entry fn
// is not called and Lend returns false.
//
// The pointer is valid only until fn returns.
func Lend[T, R any](cell *Cell[T], fn func(*T) R) (R, bool) {
	v, ok := cell.Take()
	if !ok {
		var zero R
		return zero, false
	}
	defer func() { cell.Put(v) }()

	return fn(&v), true
}

// Probe reports whether cell is occupied. It takes the value out and puts it
// back immediately, so it observes the same state Lend would.
func Probe[T any](cell *Cell[T]) bool {
	v, ok := cell.Take()
	if ok {
		defer func() { cell.Put(v) }()
	}
	return ok
}
