package reactive

// SliceSignal is an observable, mutable, ordered collection.
// Every mutation replaces the slice held by the underlying signal, so any
// memo that read the collection is invalidated.
type SliceSignal[T any] struct {
	*Signal[[]T]
}

// NewSliceSignal creates a collection holding initial.
// A nil initial value becomes an empty slice.
func NewSliceSignal[T any](initial []T) *SliceSignal[T] {
	if initial == nil {
		initial = []T{}
	}
	return &SliceSignal[T]{NewSignal(initial)}
}

// Append adds items to the end of the collection.
func (s *SliceSignal[T]) Append(items ...T) {
	if len(items) == 0 {
		return
	}
	s.Update(func(current []T) []T {
		next := make([]T, 0, len(current)+len(items))
		next = append(next, current...)
		return append(next, items...)
	})
}

// Prepend adds an item to the beginning of the collection.
func (s *SliceSignal[T]) Prepend(item T) {
	s.InsertAt(0, item)
}

// InsertAt inserts item at index. An index below zero prepends and an index
// past the end appends.
func (s *SliceSignal[T]) InsertAt(index int, item T) {
	s.Update(func(current []T) []T {
		if index < 0 {
			index = 0
		}
		if index > len(current) {
			index = len(current)
		}
		next := make([]T, 0, len(current)+1)
		next = append(next, current[:index]...)
		next = append(next, item)
		return append(next, current[index:]...)
	})
}

// RemoveAt removes the item at index. Out of range indexes are ignored.
func (s *SliceSignal[T]) RemoveAt(index int) {
	s.Update(func(current []T) []T {
		if index < 0 || index >= len(current) {
			return current
		}
		next := make([]T, 0, len(current)-1)
		next = append(next, current[:index]...)
		return append(next, current[index+1:]...)
	})
}

// SetAt replaces the item at index. Out of range indexes are ignored.
func (s *SliceSignal[T]) SetAt(index int, item T) {
	s.Update(func(current []T) []T {
		if index < 0 || index >= len(current) {
			return current
		}
		next := make([]T, len(current))
		copy(next, current)
		next[index] = item
		return next
	})
}

// RemoveWhere removes every item matching predicate.
func (s *SliceSignal[T]) RemoveWhere(predicate func(T) bool) {
	s.Update(func(current []T) []T {
		next := make([]T, 0, len(current))
		for _, item := range current {
			if !predicate(item) {
				next = append(next, item)
			}
		}
		return next
	})
}

// Clear removes all items.
func (s *SliceSignal[T]) Clear() {
	s.Set([]T{})
}

// Len returns the number of items. It is a tracked read.
func (s *SliceSignal[T]) Len() int {
	return len(s.Get())
}
