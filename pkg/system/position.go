package system

import (
	"io"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/wire"
)

// PositionTag discriminates the six Position variants.
type PositionTag uint8

const (
	PositionHead      PositionTag = 1
	PositionMiddle    PositionTag = 2
	PositionTail      PositionTag = 3
	PositionCandidate PositionTag = 4
	PositionFrontend  PositionTag = 5
	PositionObserver  PositionTag = 6
)

// Position describes a node's place in the replication chain. Only the
// fields relevant to Tag are meaningful; the others are zero.
type Position struct {
	Tag PositionTag

	Next      *wire.ByteStr // Head, Middle
	Candidate *wire.ByteStr // Tail (optional)
	Head      *wire.ByteStr // Frontend (optional)
	Tail      *wire.ByteStr // Frontend (optional)
	Chain     []Role        // Observer, head to tail
}

// NewHeadPosition builds a Head position pointing at next.
func NewHeadPosition(next string) Position {
	bs := wire.NewByteStr(next)
	return Position{Tag: PositionHead, Next: &bs}
}

// NewMiddlePosition builds a Middle position pointing at next.
func NewMiddlePosition(next string) Position {
	bs := wire.NewByteStr(next)
	return Position{Tag: PositionMiddle, Next: &bs}
}

// NewTailPosition builds a Tail position with an optional failover
// candidate address.
func NewTailPosition(candidate *string) Position {
	p := Position{Tag: PositionTail}
	if candidate != nil {
		bs := wire.NewByteStr(*candidate)
		p.Candidate = &bs
	}
	return p
}

// NewCandidatePosition builds the fieldless Candidate position.
func NewCandidatePosition() Position {
	return Position{Tag: PositionCandidate}
}

// NewFrontendPosition builds a Frontend position with optional head/tail
// addresses.
func NewFrontendPosition(head, tail *string) Position {
	p := Position{Tag: PositionFrontend}
	if head != nil {
		bs := wire.NewByteStr(*head)
		p.Head = &bs
	}
	if tail != nil {
		bs := wire.NewByteStr(*tail)
		p.Tail = &bs
	}
	return p
}

// NewObserverPosition builds an Observer position carrying the full chain,
// head to tail.
func NewObserverPosition(chain []Role) Position {
	return Position{Tag: PositionObserver, Chain: chain}
}

// Close releases any pool Blocks backing this Position's address fields.
func (p Position) Close() {
	for _, bs := range []*wire.ByteStr{p.Next, p.Candidate, p.Head, p.Tail} {
		if bs != nil {
			bs.Close()
		}
	}
	for _, role := range p.Chain {
		role.Close()
	}
}

func byteStrPtrEqual(a, b *wire.ByteStr) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// Equal performs a structural comparison appropriate to Tag.
func (p Position) Equal(other Position) bool {
	if p.Tag != other.Tag {
		return false
	}
	switch p.Tag {
	case PositionHead, PositionMiddle:
		return byteStrPtrEqual(p.Next, other.Next)
	case PositionTail:
		return byteStrPtrEqual(p.Candidate, other.Candidate)
	case PositionCandidate:
		return true
	case PositionFrontend:
		return byteStrPtrEqual(p.Head, other.Head) && byteStrPtrEqual(p.Tail, other.Tail)
	case PositionObserver:
		if len(p.Chain) != len(other.Chain) {
			return false
		}
		for i := range p.Chain {
			if !p.Chain[i].Equal(other.Chain[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Encode writes the one-byte discriminant then the variant-specific body.
func (p Position) Encode(w io.Writer) error {
	if err := wire.WriteUint8(w, uint8(p.Tag)); err != nil {
		return err
	}

	switch p.Tag {
	case PositionHead, PositionMiddle:
		return p.Next.Encode(w)
	case PositionTail:
		return wire.WriteOption(w, p.Candidate, func(w io.Writer, v wire.ByteStr) error { return v.Encode(w) })
	case PositionCandidate:
		return nil
	case PositionFrontend:
		if err := wire.WriteOption(w, p.Head, func(w io.Writer, v wire.ByteStr) error { return v.Encode(w) }); err != nil {
			return err
		}
		return wire.WriteOption(w, p.Tail, func(w io.Writer, v wire.ByteStr) error { return v.Encode(w) })
	case PositionObserver:
		return wire.WriteVec(w, p.Chain, func(w io.Writer, r Role) error { return r.Encode(w) })
	default:
		return &SystemBadPosition{Value: uint8(p.Tag)}
	}
}

// DecodePosition reads the discriminant and decodes the matching variant
// body, landing any address bytes in owned.
func DecodePosition(r io.Reader, owned *buffer.Owned) (Position, error) {
	tag, err := wire.ReadUint8(r)
	if err != nil {
		return Position{}, err
	}

	decodeByteStr := func(r io.Reader) (wire.ByteStr, error) { return wire.DecodeByteStr(r, owned) }

	switch PositionTag(tag) {
	case PositionHead:
		next, err := wire.DecodeByteStr(r, owned)
		if err != nil {
			return Position{}, err
		}
		return Position{Tag: PositionHead, Next: &next}, nil
	case PositionMiddle:
		next, err := wire.DecodeByteStr(r, owned)
		if err != nil {
			return Position{}, err
		}
		return Position{Tag: PositionMiddle, Next: &next}, nil
	case PositionTail:
		candidate, err := wire.ReadOption(r, decodeByteStr)
		if err != nil {
			return Position{}, err
		}
		return Position{Tag: PositionTail, Candidate: candidate}, nil
	case PositionCandidate:
		return Position{Tag: PositionCandidate}, nil
	case PositionFrontend:
		head, err := wire.ReadOption(r, decodeByteStr)
		if err != nil {
			return Position{}, err
		}
		tail, err := wire.ReadOption(r, decodeByteStr)
		if err != nil {
			if head != nil {
				head.Close()
			}
			return Position{}, err
		}
		return Position{Tag: PositionFrontend, Head: head, Tail: tail}, nil
	case PositionObserver:
		var chain []Role
		length, err := wire.ReadVecLen(r)
		if err != nil {
			return Position{}, err
		}
		chain = make([]Role, 0, length)
		for i := uint64(0); i < length; i++ {
			role, err := DecodeRole(r, owned)
			if err != nil {
				for _, decoded := range chain {
					decoded.Close()
				}
				return Position{}, err
			}
			chain = append(chain, role)
		}
		return Position{Tag: PositionObserver, Chain: chain}, nil
	default:
		return Position{}, &SystemBadPosition{Value: tag}
	}
}
