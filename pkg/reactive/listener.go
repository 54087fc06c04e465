package reactive

// Listener is anything that can be notified when a dependency changes.
// Memos implement it; tests implement it to observe invalidation.
type Listener interface {
	// MarkDirty notifies the listener that one of its dependencies changed.
	MarkDirty()

	// ID returns a unique identifier used for deduplication.
	ID() uint64
}

// source is implemented by a listener that wants to remember what it read,
// so it can unsubscribe before recomputing.
type source interface {
	Listener
	addSource(s *node)
}
