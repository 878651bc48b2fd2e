package reactive

// StateStore holds a component's private keyed values. The key set is fixed
// at construction: updates may change values for existing keys but never add
// or remove keys.
type StateStore struct {
	values map[string]any
}

// NewStateStore creates a store seeded with a deep copy of initial.
func NewStateStore(initial map[string]any) *StateStore {
	return &StateStore{values: copyStateMap(initial)}
}

// Snapshot returns a deep, independent copy of the current mapping.
// Mutating the returned map never affects the store. Struct values with
// unexported fields are copied by assignment so nothing is lost, at the
// cost of sharing any pointers those fields hold.
func (s *StateStore) Snapshot() map[string]any {
	return copyStateMap(s.values)
}

// Has reports whether key belongs to the store's schema.
func (s *StateStore) Has(key string) bool {
	_, ok := s.values[key]
	return ok
}

// Change updates key to value, reporting whether the stored value actually
// differed. Unknown keys are silently ignored and report false. Comparison
// uses identity semantics (primitives by value, reference types by
// reference), not deep equality; an identical value leaves the store
// untouched.
func (s *StateStore) Change(key string, value any) bool {
	current, ok := s.values[key]
	if !ok {
		return false
	}
	if strictEqual(current, value) {
		return false
	}
	s.values[key] = value
	return true
}
