package scopedtls

// EventKind identifies a slot state change reported to a [WithOnEvent] hook.
type EventKind int

const (
	// EventSet is emitted once Set has installed a value, before the body
	// runs. If the hook panics the slot is restored and EventRestore
	// follows.
	EventSet EventKind = iota

	// EventRestore is emitted when Set has restored the previous contents,
	// whether the body returned or panicked.
	EventRestore

	// EventBorrow is emitted when With takes the value out, before the
	// callback runs.
	EventBorrow

	// EventReturn is emitted when With has put the value back.
	EventReturn

	// EventNotSet is emitted when With or TryWith finds the slot empty.
	EventNotSet
)

// String returns the kind's name.
func (k EventKind) String() string {
	switch k {
	case EventSet:
		return "set"
	case EventRestore:
		return "restore"
	case EventBorrow:
		return "borrow"
	case EventReturn:
		return "return"
	case EventNotSet:
		return "not-set"
	default:
		return "unknown"
	}
}

// Event describes one state change of a slot in one execution context.
type Event struct {
	Kind EventKind

	// Slot is the name the slot was created with.
	Slot string

	// Key identifies the execution context: a goroutine id in
	// PerGoroutine mode, a kernel thread id in PerThread mode.
	Key uint64

	// Depth is the number of Set calls active in this context after the
	// change. It is 1 inside the outermost Set body and 0 after it restores.
	Depth int
}
