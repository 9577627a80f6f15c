// Package swap provides a one-value cell and scoped guards that exchange a
// cell's contents for the extent of a function call.
//
// The guards restore the cell on every exit path. Restoration is registered
// with defer before the protected function runs, so it also happens when the
// function panics or calls [runtime.Goexit]. Panics are never recovered; they
// keep unwinding after the cell has been restored.
//
//   - [With] installs a value, runs a body, restores the previous contents.
//   - [Exchange] is the guard form of With for callers that manage the defer.
//   - [Lend] takes the value out, lends a pointer to it, puts it back.
//   - [Probe] tests occupancy with the same take-out/put-back step.
//
// Because Lend leaves the cell empty while the pointer is out, a nested Lend
// on the same cell fails instead of producing a second live pointer.
package swap
