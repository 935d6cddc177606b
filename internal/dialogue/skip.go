package dialogue

// SkipSet remembers levels whose intro should not replay on the next visit.
// The zero value is ready to use.
type SkipSet[K comparable] struct {
	marked map[K]struct{}
}

// Mark flags k to be skipped once.
func (s *SkipSet[K]) Mark(k K) {
	if s.marked == nil {
		s.marked = make(map[K]struct{})
	}
	s.marked[k] = struct{}{}
}

// Consume reports whether k was marked and clears the mark.
func (s *SkipSet[K]) Consume(k K) bool {
	if _, ok := s.marked[k]; !ok {
		return false
	}
	delete(s.marked, k)
	return true
}
