package buffer

// Owned is a mutable, fill-tracked view over a Block. At most one Owned
// exists per region at a time: SplitAt transfers ownership of the left
// range to a new Owned and shrinks the receiver to the right range, and
// IntoShared consumes the receiver outright. There is no way to produce a
// second mutable handle over the same bytes through this API.
type Owned struct {
	block    *Block
	filled   int
	rel      *releaser
	consumed bool
}

// Capacity returns the size of the view's active range.
func (o *Owned) Capacity() int {
	return o.block.Capacity()
}

// Filled returns the [0, filled) prefix that has been written so far.
func (o *Owned) Filled() []byte {
	return o.block.AsSlice()[:o.filled]
}

// Unfilled returns the [filled, capacity) mutable tail.
func (o *Owned) Unfilled() []byte {
	return o.block.AsMutSlice()[o.filled:]
}

// UnfilledCapacity is Capacity() - filled.
func (o *Owned) UnfilledCapacity() int {
	return o.Capacity() - o.filled
}

// Fill advances the filled cursor by n. The caller asserts that the first
// n bytes of the prior Unfilled() region are now valid data.
func (o *Owned) Fill(n int) error {
	if n < 0 || o.filled+n > o.Capacity() {
		return ErrFillOverflow
	}
	o.filled += n
	return nil
}

// SplitAt splits the view at index i: the returned Owned covers [0, i)
// with filled = min(filled, i); the receiver becomes [i, capacity) with
// filled reduced by the left half's filled count. Both views share the
// same releaser, so the underlying Block returns to the Pool only once
// both are eventually closed (or converted to Shared and closed).
func (o *Owned) SplitAt(i int) (*Owned, error) {
	if o.consumed {
		return nil, ErrOwnedConsumed
	}
	if i < 0 || i > o.Capacity() {
		return nil, ErrSplitOutOfRange
	}

	leftBlock, err := o.block.SplitAt(i)
	if err != nil {
		return nil, err
	}

	leftFilled := o.filled
	if leftFilled > i {
		leftFilled = i
	}

	o.rel.retain()
	left := &Owned{block: leftBlock, filled: leftFilled, rel: o.rel}
	o.filled -= leftFilled
	return left, nil
}

// IntoShared freezes the current active region into an immutable Shared
// view and consumes the receiver; no further mutation through o is
// possible. The ownership unit held by o transfers to the returned Shared
// without changing the refcount.
func (o *Owned) IntoShared() (*Shared, error) {
	if o.consumed {
		return nil, ErrOwnedConsumed
	}
	o.consumed = true
	return &Shared{block: o.block, rel: o.rel}, nil
}

// Close releases the view's ownership unit back toward the Pool. If the
// view was already consumed by IntoShared this is a no-op: ownership
// moved to the resulting Shared, which is responsible for its own Close.
func (o *Owned) Close() {
	if o.consumed {
		return
	}
	o.consumed = true
	o.rel.release()
}
