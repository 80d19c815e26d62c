package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
)

func newTestPool(t *testing.T, blockSize, capacity int) *buffer.Pool {
	t.Helper()
	return buffer.NewPool(buffer.Config{BlockSize: blockSize, Capacity: capacity})
}

func TestOwnedFillAndUnfilled(t *testing.T) {
	p := newTestPool(t, 16, 1)
	o, err := p.Acquire("test")
	require.NoError(t, err)
	defer o.Close()

	assert.Equal(t, 16, o.UnfilledCapacity())
	copy(o.Unfilled(), []byte("hello"))
	require.NoError(t, o.Fill(5))
	assert.Equal(t, []byte("hello"), o.Filled())
	assert.Equal(t, 11, o.UnfilledCapacity())
}

func TestOwnedFillOverflow(t *testing.T) {
	p := newTestPool(t, 4, 1)
	o, err := p.Acquire("test")
	require.NoError(t, err)
	defer o.Close()

	err = o.Fill(5)
	assert.ErrorIs(t, err, buffer.ErrFillOverflow)
}

func TestOwnedSplitAt(t *testing.T) {
	p := newTestPool(t, 10, 1)
	o, err := p.Acquire("test")
	require.NoError(t, err)

	copy(o.Unfilled(), []byte("0123456789"))
	require.NoError(t, o.Fill(7))

	left, err := o.SplitAt(4)
	require.NoError(t, err)

	assert.Equal(t, 4, left.Capacity())
	assert.Equal(t, []byte("0123"), left.Filled())

	assert.Equal(t, 6, o.Capacity())
	assert.Equal(t, 3, len(o.Filled()))

	left.Close()
	o.Close()
}

func TestOwnedIntoSharedConsumesOwned(t *testing.T) {
	p := newTestPool(t, 8, 1)
	o, err := p.Acquire("test")
	require.NoError(t, err)

	copy(o.Unfilled(), []byte("abcdefgh"))
	require.NoError(t, o.Fill(8))

	shared, err := o.IntoShared()
	require.NoError(t, err)
	assert.Equal(t, []byte("abcdefgh"), shared.Bytes())

	_, err = o.SplitAt(1)
	assert.ErrorIs(t, err, buffer.ErrOwnedConsumed)

	// Close after IntoShared is a no-op, ownership already transferred.
	o.Close()
	shared.Close()
}

func TestSharedCloneKeepsBlockAliveUntilAllClosed(t *testing.T) {
	p := newTestPool(t, 8, 1)
	o, err := p.Acquire("test")
	require.NoError(t, err)
	copy(o.Unfilled(), []byte("testdata"))
	require.NoError(t, o.Fill(8))

	shared, err := o.IntoShared()
	require.NoError(t, err)
	clone := shared.Clone()

	shared.Close()

	// pool has capacity 1 and the clone is still outstanding; acquiring
	// again must not see a Block returned yet.
	acquired := make(chan struct{})
	go func() {
		o2, aerr := p.Acquire("second")
		require.NoError(t, aerr)
		o2.Close()
		close(acquired)
	}()

	select {
	case <-acquired:
		t.Fatal("block was returned before the last Shared clone closed")
	default:
	}

	clone.Close()
	<-acquired
}
