package domain

// ChangeTracker records which cart lines were modified or removed since the
// aggregate was loaded. Repositories use it to build minimal mutation sets
// instead of rewriting the whole cart.
type ChangeTracker struct {
	cartDirty bool
	dirty     map[LineKey]bool
	removed   map[LineKey]bool
}

// NewChangeTracker creates an empty ChangeTracker.
func NewChangeTracker() *ChangeTracker {
	return &ChangeTracker{
		dirty:   make(map[LineKey]bool),
		removed: make(map[LineKey]bool),
	}
}

// MarkCartDirty marks the cart row itself (timestamps) as needing a write.
func (ct *ChangeTracker) MarkCartDirty() {
	ct.cartDirty = true
}

// MarkDirty marks a line as inserted or updated. A line re-added after a
// removal is written, not deleted.
func (ct *ChangeTracker) MarkDirty(key LineKey) {
	delete(ct.removed, key)
	ct.dirty[key] = true
	ct.cartDirty = true
}

// MarkRemoved marks a line as deleted.
func (ct *ChangeTracker) MarkRemoved(key LineKey) {
	delete(ct.dirty, key)
	ct.removed[key] = true
	ct.cartDirty = true
}

// CartDirty reports whether the cart row needs a write.
func (ct *ChangeTracker) CartDirty() bool {
	return ct.cartDirty
}

// Dirty reports whether a line was inserted or updated.
func (ct *ChangeTracker) Dirty(key LineKey) bool {
	return ct.dirty[key]
}

// RemovedKeys returns the keys of all deleted lines.
func (ct *ChangeTracker) RemovedKeys() []LineKey {
	keys := make([]LineKey, 0, len(ct.removed))
	for key := range ct.removed {
		keys = append(keys, key)
	}
	return keys
}

// HasChanges reports whether anything needs persisting.
func (ct *ChangeTracker) HasChanges() bool {
	return ct.cartDirty || len(ct.dirty) > 0 || len(ct.removed) > 0
}

// Reset clears all markers (called after a successful commit).
func (ct *ChangeTracker) Reset() {
	ct.cartDirty = false
	ct.dirty = make(map[LineKey]bool)
	ct.removed = make(map[LineKey]bool)
}
