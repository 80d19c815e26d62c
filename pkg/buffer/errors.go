package buffer

import "errors"

// These sentinels cover the fixed failure kinds of the buffer substrate.
// Protocol-level callers (packet, wire) wrap these with their own
// structured errors where more context is useful.
var (
	// ErrPoolClosed indicates acquire was attempted after Pool.Close
	// (pool torn down, possibly while holders exist).
	ErrPoolClosed = errors.New("buffer: pool closed")

	// ErrAcquireTimeout indicates acquire's configured AcquireTimeout
	// elapsed before a Block became available.
	ErrAcquireTimeout = errors.New("buffer: acquire timed out")

	// ErrOwnedConsumed indicates an operation was attempted on an Owned
	// that already transitioned into a Shared via IntoShared.
	ErrOwnedConsumed = errors.New("buffer: owned buffer already consumed")

	// ErrSplitOutOfRange indicates SplitAt was called with an index
	// outside the current capacity of the view being split.
	ErrSplitOutOfRange = errors.New("buffer: split index out of range")

	// ErrFillOverflow indicates Fill(n) was asked to advance the filled
	// cursor past the view's capacity.
	ErrFillOverflow = errors.New("buffer: fill exceeds capacity")
)

// OwnedRemaining reports that a nested decode needed more of an Owned
// buffer's unfilled capacity than remained.
type OwnedRemaining struct {
	Acquire  int
	Capacity int
}

func (e *OwnedRemaining) Error() string {
	return "buffer: nested decode needs more capacity than remains"
}
