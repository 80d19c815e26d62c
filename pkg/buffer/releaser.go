package buffer

import "sync/atomic"

// releaser is the reference-counted handle shared by every Owned/Shared
// view derived from one Pool.Acquire call. SplitAt and Shared.Clone each
// retain; every view's terminal Close releases. When the count reaches
// zero the original, full-capacity Block is zeroed and returned to the
// Pool exactly once.
type releaser struct {
	pool     *Pool
	original *Block
	refs     atomic.Int32
}

func newReleaser(pool *Pool, original *Block) *releaser {
	r := &releaser{pool: pool, original: original}
	r.refs.Store(1)
	return r
}

func (r *releaser) retain() {
	r.refs.Add(1)
}

func (r *releaser) release() {
	if r.refs.Add(-1) == 0 {
		r.pool.put(r.original.release())
	}
}
