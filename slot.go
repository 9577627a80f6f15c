package scopedtls

import (
	"runtime"
	"sync"

	"github.com/baxromumarov/scopedtls/internal/goid"
	"github.com/baxromumarov/scopedtls/internal/tid"
	"github.com/baxromumarov/scopedtls/swap"
)

// Slot is a named storage cell private to one execution context (a goroutine
// or an OS thread, see [Mode]) that holds a value only for the extent of a
// [Slot.Set] call.
//
// A Slot is safe for concurrent use: every context has its own independent
// occupant. Declare one per name, usually as a package-level variable:
//
//	var requestCtx = scopedtls.New[*Request]("requestCtx")
//
// The zero Slot is not usable; create one with [New].
type Slot[T any] struct {
	name string
	cfg  config

	// entries maps a context key to its *entry[T]. An entry is only ever
	// touched by the context it belongs to.
	entries sync.Map
}

// entry is the per-context state of a slot.
type entry[T any] struct {
	cell swap.Cell[T]

	depth int // active Set calls
	refs  int // active Set and With calls; the entry is dropped at zero
}

// New creates a slot named name for values of type T.
// It panics if name is empty or an option is invalid.
func New[T any](name string, opts ...Option) *Slot[T] {
	if name == "" {
		panic("scopedtls: slot name must not be empty")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Slot[T]{
		name: name,
		cfg:  cfg,
	}
}

// Name returns the name the slot was created with.
func (s *Slot[T]) Name() string {
	return s.name
}

// Mode returns the execution context mode of the slot.
func (s *Slot[T]) Mode() Mode {
	return s.cfg.mode
}

// Set installs value into the slot for the calling context, runs body and
// restores the slot's previous contents (empty, or the value of an enclosing
// Set) when body ends.
//
// Set returns the installed value once body returns, including any changes
// made through [With] during body. If body panics, the slot is restored and
// the panic keeps propagating unchanged.
//
// Calling Set again from inside body, on the same slot, is supported: the
// inner value hides the outer one until the inner Set returns.
func (s *Slot[T]) Set(value T, body func()) T {
	key, leave := s.enter()
	defer leave()

	e := s.acquire(key)
	defer s.release(key, e)

	e.depth++
	defer func() {
		e.depth--
		s.emit(EventRestore, key, e.depth)
	}()

	// EventSet fires once the value is installed, inside the guarded extent.
	incoming := swap.Full(value)
	swap.With(&e.cell, &incoming, func() {
		s.emit(EventSet, key, e.depth)
		body()
	})

	v, _ := incoming.Take()
	return v
}

// IsSet reports whether the slot holds a value in the calling context.
//
// IsSet returns false inside a [With] callback for the same slot, because
// the value is held out of the slot while the callback runs.
func (s *Slot[T]) IsSet() bool {
	key, leave := s.enter()
	defer leave()

	e, ok := s.lookup(key)
	return ok && swap.Probe(&e.cell)
}

// Depth returns the number of Set calls on this slot active in the calling
// context.
func (s *Slot[T]) Depth() int {
	key, leave := s.enter()
	defer leave()

	if e, ok := s.lookup(key); ok {
		return e.depth
	}
	return 0
}

// Do is [With] for callbacks without a result.
func (s *Slot[T]) Do(fn func(v *T)) {
	With(s, func(v *T) struct{} {
		fn(v)
		return struct{}{}
	})
}

// With takes the value installed by the innermost active [Slot.Set] out of
// the slot, passes fn a pointer to it and puts it back when fn ends, on every
// exit path. Changes made through the pointer are kept.
//
// The pointer is valid only until fn returns and must not be retained.
//
// With panics with a [*NotSetError] if the slot is empty in the calling
// context: no Set is active, or With is called re-entrantly for the same
// slot from inside another With callback. Use [TryWith] to get the error
// instead.
func With[T, R any](s *Slot[T], fn func(v *T) R) R {
	r, err := TryWith(s, fn)
	if err != nil {
		panic(err)
	}
	return r
}

// TryWith is like [With] but returns a [*NotSetError] instead of panicking
// when the slot is empty. Panics raised by fn still propagate.
func TryWith[T, R any](s *Slot[T], fn func(v *T) R) (R, error) {
	key, leave := s.enter()
	defer leave()

	e, ok := s.lookup(key)
	if !ok {
		s.emit(EventNotSet, key, 0)
		var zero R
		return zero, newNotSetError(s.name, s.cfg.mode)
	}

	e.refs++
	defer s.release(key, e)

	lent := false
	defer func() {
		if lent {
			s.emit(EventReturn, key, e.depth)
		}
	}()

	r, ok := swap.Lend(&e.cell, func(v *T) R {
		lent = true
		s.emit(EventBorrow, key, e.depth)
		return fn(v)
	})
	if !ok {
		s.emit(EventNotSet, key, e.depth)
		return r, newNotSetError(s.name, s.cfg.mode)
	}
	return r, nil
}

// enter returns the key of the calling context and a function that must be
// called when the operation ends. In PerThread mode the goroutine stays
// wired to its thread until then.
func (s *Slot[T]) enter() (uint64, func()) {
	if s.cfg.mode != PerThread {
		return goid.Current(), func() {}
	}

	runtime.LockOSThread()
	id, err := tid.Current()
	if err != nil {
		runtime.UnlockOSThread()
		panic(err)
	}
	return id, runtime.UnlockOSThread
}

func (s *Slot[T]) lookup(key uint64) (*entry[T], bool) {
	v, ok := s.entries.Load(key)
	if !ok {
		return nil, false
	}
	return v.(*entry[T]), true
}

// acquire returns the entry for key, creating it on first use, and takes a
// reference on it.
func (s *Slot[T]) acquire(key uint64) *entry[T] {
	e, ok := s.lookup(key)
	if !ok {
		e = new(entry[T])
		s.entries.Store(key, e)
	}
	e.refs++
	return e
}

// release drops a reference taken by acquire or TryWith. The last reference
// removes the entry; its cell is empty by then.
func (s *Slot[T]) release(key uint64, e *entry[T]) {
	e.refs--
	if e.refs == 0 {
		s.entries.Delete(key)
	}
}

// active returns the number of contexts that currently have an entry.
func (s *Slot[T]) active() int {
	n := 0
	s.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (s *Slot[T]) emit(kind EventKind, key uint64, depth int) {
	if s.cfg.onEvent == nil {
		return
	}
	s.cfg.onEvent(Event{
		Kind:  kind,
		Slot:  s.name,
		Key:   key,
		Depth: depth,
	})
}
