package reactive

// Effect is a listener invoked when a specific state key changes.
type Effect func()

// GlobalEffect is a listener invoked after any batch of changes, receiving
// the full list of changed keys in the order they were supplied.
type GlobalEffect func(keys []string)

type effectEntry struct {
	fn      Effect
	gfn     GlobalEffect
	removed bool
}

// EffectRef identifies one registered listener. Function values are not
// reliably comparable in Go (distinct closures of the same literal share a
// code pointer), so Add and AddGlobal hand back a ref and removal goes
// through it. A nil ref passed to Remove clears the whole list instead.
type EffectRef struct {
	entry *effectEntry
}

// EffectRegistry keeps per-key listener lists plus a global listener list
// and dispatches them when state keys change. Listener order is insertion
// order and is meaningful for dispatch.
type EffectRegistry struct {
	keyed   map[string][]*effectEntry
	globals []*effectEntry
}

// NewEffectRegistry creates an empty registry.
func NewEffectRegistry() *EffectRegistry {
	return &EffectRegistry{keyed: make(map[string][]*effectEntry)}
}

// Add appends a listener to key's list, creating the list if absent, and
// returns the ref that removes exactly this registration. A nil listener
// fails with ErrInvalidListener.
func (r *EffectRegistry) Add(key string, fn Effect) (*EffectRef, error) {
	if fn == nil {
		return nil, ErrInvalidListener
	}
	entry := &effectEntry{fn: fn}
	r.keyed[key] = append(r.keyed[key], entry)
	return &EffectRef{entry: entry}, nil
}

// AddGlobal appends a listener to the global list. A nil listener fails with
// ErrInvalidListener.
func (r *EffectRegistry) AddGlobal(fn GlobalEffect) (*EffectRef, error) {
	if fn == nil {
		return nil, ErrInvalidListener
	}
	entry := &effectEntry{gfn: fn}
	r.globals = append(r.globals, entry)
	return &EffectRef{entry: entry}, nil
}

// Remove detaches listeners for key. With a nil ref the whole list for key
// is cleared and Remove reports true whenever the key is known, even if its
// list was already empty. With a non-nil ref only that registration is
// removed, reporting whether it was still attached under key.
func (r *EffectRegistry) Remove(key string, ref *EffectRef) bool {
	entries, known := r.keyed[key]
	if !known {
		return false
	}
	if ref == nil {
		for _, e := range entries {
			e.removed = true
		}
		r.keyed[key] = nil
		return true
	}
	for i, e := range entries {
		if e == ref.entry {
			e.removed = true
			r.keyed[key] = append(entries[:i], entries[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveGlobal detaches global listeners. With a nil ref all globals are
// cleared, reporting whether any existed; with a non-nil ref only that
// registration is removed, reporting whether it was still attached.
func (r *EffectRegistry) RemoveGlobal(ref *EffectRef) bool {
	if ref == nil {
		existed := len(r.globals) > 0
		for _, e := range r.globals {
			e.removed = true
		}
		r.globals = nil
		return existed
	}
	for i, e := range r.globals {
		if e == ref.entry {
			e.removed = true
			r.globals = append(r.globals[:i], r.globals[i+1:]...)
			return true
		}
	}
	return false
}

// DispatchKey invokes every listener registered for key in insertion order,
// ignoring globals. Unknown keys are a no-op. A listener removed while the
// batch is firing is not invoked again.
func (r *EffectRegistry) DispatchKey(key string) {
	entries := r.keyed[key]
	if len(entries) == 0 {
		return
	}
	snapshot := make([]*effectEntry, len(entries))
	copy(snapshot, entries)
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		e.fn()
	}
}

// DispatchGlobals invokes every global listener in insertion order, passing
// the changed-key list.
func (r *EffectRegistry) DispatchGlobals(keys []string) {
	if len(r.globals) == 0 {
		return
	}
	snapshot := make([]*effectEntry, len(r.globals))
	copy(snapshot, r.globals)
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		e.gfn(keys)
	}
}

// Dispatch fires key's listeners, then the globals with just that key.
// Component sequences the two phases itself to support multi-key batches;
// Dispatch is the convenience form for external callers.
func (r *EffectRegistry) Dispatch(key string) {
	r.DispatchKey(key)
	r.DispatchGlobals([]string{key})
}
