package scopedtls

// ActiveContexts returns the number of execution contexts holding an entry
// in s.
func ActiveContexts[T any](s *Slot[T]) int {
	return s.active()
}
