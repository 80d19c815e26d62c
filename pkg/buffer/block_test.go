package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlockSplitAtAliasesStorage(t *testing.T) {
	b := newBlock(10)
	copy(b.AsMutSlice(), []byte("0123456789"))

	left, err := b.SplitAt(4)
	require.NoError(t, err)

	assert.Equal(t, []byte("0123"), left.AsSlice())
	assert.Equal(t, []byte("456789"), b.AsSlice())

	// mutating through the right half is visible in the backing array the
	// left half also points into, proving aliasing rather than a copy.
	b.AsMutSlice()[0] = 'X'
	assert.Equal(t, byte('X'), left.storage[left.end])
	_ = b
}

func TestBlockReleaseZeroesAndRestoresFullRange(t *testing.T) {
	b := newBlock(6)
	copy(b.AsMutSlice(), []byte("abcdef"))

	left, err := b.SplitAt(3)
	require.NoError(t, err)
	_ = left

	fresh := b.release()
	assert.Equal(t, 6, fresh.Capacity())
	for _, byt := range fresh.AsSlice() {
		assert.Equal(t, byte(0), byt)
	}
}

func TestBlockSplitAtOutOfRange(t *testing.T) {
	b := newBlock(4)
	_, err := b.SplitAt(5)
	assert.ErrorIs(t, err, ErrSplitOutOfRange)
	_, err = b.SplitAt(-1)
	assert.ErrorIs(t, err, ErrSplitOutOfRange)
}
