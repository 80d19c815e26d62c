package buffer

import (
	"time"

	"github.com/nyanzoo/necronomicon/internal/logger"
)

// Pool is a bounded, channel-backed factory/recycler of Blocks. It holds
// exactly Capacity Blocks at steady state: every Acquire removes one from
// the channel, and every last-drop of the resulting Owned/Shared chain
// puts one back. No additional locking is needed beyond the channel.
//
// Modeled on the bounded channel pool pattern (acquire blocks on a
// buffered channel, release is a non-blocking send back into it) rather
// than a sync.Pool: a sync.Pool may silently drop items under GC pressure,
// which would violate the "Blocks in existence == capacity" invariant.
type Pool struct {
	blockSize int
	capacity  int
	timeout   time.Duration
	blocks    chan *Block
	closed    chan struct{}
}

// NewPool creates a Pool and eagerly allocates Capacity Blocks of
// BlockSize bytes each. Zero-valued Config fields fall back to
// DefaultConfig's values.
func NewPool(cfg Config) *Pool {
	if cfg.BlockSize <= 0 {
		cfg.BlockSize = DefaultBlockSize
	}
	if cfg.Capacity <= 0 {
		cfg.Capacity = DefaultCapacity
	}

	p := &Pool{
		blockSize: cfg.BlockSize,
		capacity:  cfg.Capacity,
		timeout:   cfg.AcquireTimeout,
		blocks:    make(chan *Block, cfg.Capacity),
		closed:    make(chan struct{}),
	}
	for i := 0; i < cfg.Capacity; i++ {
		p.blocks <- newBlock(cfg.BlockSize)
	}
	return p
}

// BlockSize returns the configured per-Block capacity in bytes.
func (p *Pool) BlockSize() int { return p.blockSize }

// Capacity returns the configured steady-state Block count.
func (p *Pool) Capacity() int { return p.capacity }

// Acquire blocks until a Block is available, wrapping it in a fresh Owned.
// reason is a short static descriptor used only for tracing; it carries no
// behavior beyond the debug log line it produces.
func (p *Pool) Acquire(reason string) (*Owned, error) {
	logger.Debug("buffer: acquiring block", "reason", reason, "capacity", p.capacity)

	select {
	case <-p.closed:
		return nil, ErrPoolClosed
	default:
	}

	if p.timeout > 0 {
		timer := time.NewTimer(p.timeout)
		defer timer.Stop()
		select {
		case blk, ok := <-p.blocks:
			if !ok {
				return nil, ErrPoolClosed
			}
			return p.wrap(blk), nil
		case <-timer.C:
			logger.Debug("buffer: acquire timed out", "reason", reason)
			return nil, ErrAcquireTimeout
		case <-p.closed:
			return nil, ErrPoolClosed
		}
	}

	select {
	case blk, ok := <-p.blocks:
		if !ok {
			return nil, ErrPoolClosed
		}
		return p.wrap(blk), nil
	case <-p.closed:
		return nil, ErrPoolClosed
	}
}

func (p *Pool) wrap(blk *Block) *Owned {
	rel := newReleaser(p, blk)
	return &Owned{block: blk, rel: rel}
}

// put returns a zeroed, full-capacity Block to the channel. It is called
// exactly once per Acquire's worth of outstanding references, by the
// releaser when the last Owned/Shared view derived from that Acquire is
// closed.
func (p *Pool) put(blk *Block) {
	select {
	case p.blocks <- blk:
	case <-p.closed:
	}
}

// Close marks the Pool closed; the Block channel itself is left open, so
// Blocks released afterward are still accepted. Acquire calls in flight or
// issued afterward fail with ErrPoolClosed; it does not wait for
// outstanding Blocks to be returned.
func (p *Pool) Close() {
	close(p.closed)
}
