package deque

import (
	"io"

	"github.com/google/uuid"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/header"
	"github.com/nyanzoo/necronomicon/pkg/response"
	"github.com/nyanzoo/necronomicon/pkg/wire"
)

// Peek returns the value at the head of the queue at path without
// removing it.
type Peek struct {
	header header.Header
	path   wire.ByteStr
}

// NewPeek builds a Peek with header.Len computed from the encoded size of
// its payload.
func NewPeek(version uint8, id uuid.UUID, path string) (Peek, error) {
	p := Peek{path: wire.NewByteStr(path)}
	n, err := encodedLen(p.encodeBody)
	if err != nil {
		return Peek{}, err
	}
	h := header.New(header.Peek, version, id)
	h.Len = uint64(n)
	p.header = h
	return p, nil
}

// Header returns the frame header.
func (p Peek) Header() header.Header { return p.header }

// Path returns the target queue's path.
func (p Peek) Path() wire.ByteStr { return p.path }

// Ack builds a successful PeekAck carrying sequence and value, preserving
// version and uuid. sequence identifies the peeked entry so a caller can
// issue a matching Dequeue without a race against concurrent peekers.
func (p Peek) Ack(sequence uint64, value []byte) PeekAck {
	v := wire.NewBinaryData(value)
	return PeekAck{
		header:   header.New(header.PeekAck, p.header.Version, p.header.UUID),
		response: response.Success(),
		sequence: sequence,
		value:    &v,
	}
}

// Nack builds a failed PeekAck preserving version and uuid.
func (p Peek) Nack(code response.Code, reason string) PeekAck {
	return PeekAck{
		header:   header.New(header.PeekAck, p.header.Version, p.header.UUID),
		response: response.Fail(code, reason),
	}
}

// Close releases any pool Block backing Path.
func (p Peek) Close() { p.path.Close() }

func (p Peek) encodeBody(w io.Writer) error {
	return p.path.Encode(w)
}

// Encode writes the header then the payload.
func (p Peek) Encode(w io.Writer) error {
	if err := p.header.Encode(w); err != nil {
		return err
	}
	return p.encodeBody(w)
}

// DecodePeekPartial decodes the Peek body given its already-consumed
// header.
func DecodePeekPartial(h header.Header, r io.Reader, owned *buffer.Owned) (Peek, error) {
	path, err := wire.DecodeByteStr(r, owned)
	if err != nil {
		return Peek{}, err
	}
	return Peek{header: h, path: path}, nil
}

// PeekAck is the ack to a Peek, carrying the peeked entry's sequence
// number and value on success. Value is an Option, absent rather than
// present-but-empty on failure.
type PeekAck struct {
	header   header.Header
	response response.Response
	sequence uint64
	value    *wire.BinaryData
}

// Header returns the frame header.
func (a PeekAck) Header() header.Header { return a.header }

// Response returns the carried response.
func (a PeekAck) Response() response.Response { return a.response }

// Sequence returns the peeked entry's sequence number; zero on failure.
func (a PeekAck) Sequence() uint64 { return a.sequence }

// Value returns the peeked payload; empty if absent.
func (a PeekAck) Value() wire.BinaryData {
	if a.value == nil {
		return wire.BinaryData{}
	}
	return *a.value
}

// Close releases any pool Blocks backing Response.Reason and Value.
func (a PeekAck) Close() {
	a.response.Close()
	if a.value != nil {
		a.value.Close()
	}
}

func (a PeekAck) encodeBody(w io.Writer) error {
	if err := a.response.Encode(w); err != nil {
		return err
	}
	if err := wire.WriteUint64(w, a.sequence); err != nil {
		return err
	}
	return wire.WriteOption(w, a.value, func(w io.Writer, v wire.BinaryData) error { return v.Encode(w) })
}

// Encode writes the header then the payload.
func (a PeekAck) Encode(w io.Writer) error {
	if err := a.header.Encode(w); err != nil {
		return err
	}
	return a.encodeBody(w)
}

// DecodePeekAckPartial decodes the PeekAck body given its already-consumed
// header.
func DecodePeekAckPartial(h header.Header, r io.Reader, owned *buffer.Owned) (PeekAck, error) {
	resp, err := response.DecodePartial(r, owned)
	if err != nil {
		return PeekAck{}, err
	}
	sequence, err := wire.ReadUint64(r)
	if err != nil {
		resp.Close()
		return PeekAck{}, err
	}
	value, err := wire.ReadOption(r, func(r io.Reader) (wire.BinaryData, error) {
		return wire.DecodeBinaryData(r, owned)
	})
	if err != nil {
		resp.Close()
		return PeekAck{}, err
	}
	return PeekAck{header: h, response: resp, sequence: sequence, value: value}, nil
}
