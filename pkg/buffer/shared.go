package buffer

import "bytes"

// Shared is an immutable, reference-counted view over a Block. Clone is
// cheap (it shares the backing array and bumps the releaser's refcount);
// the last Close of the last clone returns the underlying Block to the
// Pool. Shared is safe for concurrent readers: nothing about it mutates
// once constructed.
type Shared struct {
	block *Block
	rel   *releaser
}

// Len returns the number of bytes in the active range.
func (s *Shared) Len() int {
	return s.block.Capacity()
}

// Bytes returns the active range. Callers must not retain the slice past
// Close, since the backing storage is recycled and zeroed on last release.
func (s *Shared) Bytes() []byte {
	return s.block.AsSlice()
}

// Clone returns a new Shared aliasing the same bytes, retaining the
// releaser so the Block is not returned to the Pool until this clone is
// also closed.
func (s *Shared) Clone() *Shared {
	s.rel.retain()
	return &Shared{block: s.block, rel: s.rel}
}

// Close releases this view's ownership unit. Once every clone derived
// from the originating Acquire has been closed, the Block returns to the
// Pool zeroed.
func (s *Shared) Close() {
	s.rel.release()
}

// Equal compares the active byte ranges for equality, matching the
// byte-wise equality the spec requires of Shared.
func (s *Shared) Equal(other *Shared) bool {
	if other == nil {
		return false
	}
	return bytes.Equal(s.Bytes(), other.Bytes())
}
