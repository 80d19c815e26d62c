package buffer_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
)

func TestPoolAcquireRelease(t *testing.T) {
	p := buffer.NewPool(buffer.Config{BlockSize: 128, Capacity: 2})

	o1, err := p.Acquire("test")
	require.NoError(t, err)
	o2, err := p.Acquire("test")
	require.NoError(t, err)

	assert.Equal(t, 128, o1.Capacity())
	assert.Equal(t, 128, o2.Capacity())

	o1.Close()
	o2.Close()
}

func TestPoolConservationUnderNormalUse(t *testing.T) {
	p := buffer.NewPool(buffer.Config{BlockSize: 64, Capacity: 1})

	for i := 0; i < 5; i++ {
		o, err := p.Acquire("loop")
		require.NoError(t, err)
		require.NoError(t, o.Fill(10))
		shared, err := o.IntoShared()
		require.NoError(t, err)
		shared.Close()
	}

	// capacity is 1: this blocks forever if any prior iteration leaked.
	done := make(chan struct{})
	go func() {
		o, err := p.Acquire("final")
		require.NoError(t, err)
		o.Close()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("acquire did not return a Block; pool leaked")
	}
}

func TestPoolConservationUnderError(t *testing.T) {
	p := buffer.NewPool(buffer.Config{BlockSize: 64, Capacity: 1})

	o, err := p.Acquire("scenario-4")
	require.NoError(t, err)
	// Simulate a decode that fails partway through: the caller still owns
	// the Owned and must close it to release the Block.
	o.Close()

	o2, err := p.Acquire("after-error")
	require.NoError(t, err)
	o2.Close()
}

func TestPoolAcquireTimeout(t *testing.T) {
	p := buffer.NewPool(buffer.Config{BlockSize: 64, Capacity: 1, AcquireTimeout: 10 * time.Millisecond})

	o, err := p.Acquire("hold")
	require.NoError(t, err)

	_, err = p.Acquire("should-timeout")
	assert.ErrorIs(t, err, buffer.ErrAcquireTimeout)

	o.Close()
}

func TestPoolClosedFailsAcquire(t *testing.T) {
	p := buffer.NewPool(buffer.Config{BlockSize: 64, Capacity: 1})
	o, err := p.Acquire("first")
	require.NoError(t, err)
	o.Close()

	p.Close()

	_, err = p.Acquire("after-close")
	assert.ErrorIs(t, err, buffer.ErrPoolClosed)
}
