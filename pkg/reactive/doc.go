// Package reactive provides the signal graph that paged collections are
// built on.
//
// Signals hold mutable inputs. Memos hold derived values: a memo records the
// signals and memos it reads while computing, caches its result, and is
// marked dirty the moment any of those sources changes. The next read
// recomputes it. Invalidation is synchronous, so a read that follows a write
// always observes the write.
//
// # Core Types
//
// Signal[T] is a reactive value container:
//
//	size := NewSignal(50)
//	n := size.Get()  // tracked read
//	size.Set(25)     // marks dependents dirty
//
// Memo[T] is a cached derived computation:
//
//	pages := NewMemo(func() int { return (count.Get() + size.Get() - 1) / size.Get() })
//
// SliceSignal[T] is an observable, mutable, ordered collection.
//
// # Versions
//
// Every signal and memo carries a version counter that is bumped each time
// its value changes (signals) or is recomputed (memos). Tests and
// instrumentation use it to tell whether a cached value was reused.
//
// # Thread Safety
//
// Primitives are mutex guarded and dependency tracking is per goroutine, but
// propagation is designed for a single writer.
package reactive
