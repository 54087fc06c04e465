package reactive

// Batch groups several writes so that listeners outside the memo graph are
// notified once, after fn returns. Memos are still invalidated as each write
// happens, so reads inside fn observe every earlier write.
//
// Batches can be nested. Notifications fire when the outermost batch ends.
//
//	Batch(func() {
//	    pageSize.Set(10)
//	    pageNumber.Set(1)
//	})
func Batch(fn func()) {
	ctx := current()
	ctx.batchDepth++

	defer func() {
		ctx.batchDepth--
		if ctx.batchDepth == 0 {
			flush(ctx)
		}
	}()

	fn()
}

// flush deduplicates and notifies the listeners queued during a batch.
func flush(ctx *trackingContext) {
	updates := ctx.pending
	ctx.pending = nil
	if len(updates) == 0 {
		return
	}

	seen := make(map[uint64]bool, len(updates))
	for _, l := range updates {
		id := l.ID()
		if seen[id] {
			continue
		}
		seen[id] = true
		l.MarkDirty()
	}
}
