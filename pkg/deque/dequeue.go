package deque

import (
	"io"

	"github.com/google/uuid"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/header"
	"github.com/nyanzoo/necronomicon/pkg/response"
	"github.com/nyanzoo/necronomicon/pkg/wire"
)

// Dequeue pops and returns the value at the head of the queue at path.
type Dequeue struct {
	header header.Header
	path   wire.ByteStr
}

// NewDequeue builds a Dequeue with header.Len computed from the encoded
// size of its payload.
func NewDequeue(version uint8, id uuid.UUID, path string) (Dequeue, error) {
	d := Dequeue{path: wire.NewByteStr(path)}
	n, err := encodedLen(d.encodeBody)
	if err != nil {
		return Dequeue{}, err
	}
	h := header.New(header.Dequeue, version, id)
	h.Len = uint64(n)
	d.header = h
	return d, nil
}

// Header returns the frame header.
func (d Dequeue) Header() header.Header { return d.header }

// Path returns the target queue's path.
func (d Dequeue) Path() wire.ByteStr { return d.path }

// Ack builds a successful DequeueAck carrying value, preserving version
// and uuid.
func (d Dequeue) Ack(value []byte) DequeueAck {
	v := wire.NewBinaryData(value)
	return DequeueAck{
		header:   header.New(header.DequeueAck, d.header.Version, d.header.UUID),
		response: response.Success(),
		value:    &v,
	}
}

// Nack builds a failed DequeueAck preserving version and uuid.
func (d Dequeue) Nack(code response.Code, reason string) DequeueAck {
	return DequeueAck{
		header:   header.New(header.DequeueAck, d.header.Version, d.header.UUID),
		response: response.Fail(code, reason),
	}
}

// Close releases any pool Block backing Path.
func (d Dequeue) Close() { d.path.Close() }

func (d Dequeue) encodeBody(w io.Writer) error {
	return d.path.Encode(w)
}

// Encode writes the header then the payload.
func (d Dequeue) Encode(w io.Writer) error {
	if err := d.header.Encode(w); err != nil {
		return err
	}
	return d.encodeBody(w)
}

// DecodeDequeuePartial decodes the Dequeue body given its already-consumed
// header.
func DecodeDequeuePartial(h header.Header, r io.Reader, owned *buffer.Owned) (Dequeue, error) {
	path, err := wire.DecodeByteStr(r, owned)
	if err != nil {
		return Dequeue{}, err
	}
	return Dequeue{header: h, path: path}, nil
}

// DequeueAck is the ack to a Dequeue, carrying the popped value on
// success. Value is an Option, absent rather than present-but-empty on
// failure.
type DequeueAck struct {
	header   header.Header
	response response.Response
	value    *wire.BinaryData
}

// Header returns the frame header.
func (a DequeueAck) Header() header.Header { return a.header }

// Response returns the carried response.
func (a DequeueAck) Response() response.Response { return a.response }

// Value returns the popped payload; empty if absent.
func (a DequeueAck) Value() wire.BinaryData {
	if a.value == nil {
		return wire.BinaryData{}
	}
	return *a.value
}

// Close releases any pool Blocks backing Response.Reason and Value.
func (a DequeueAck) Close() {
	a.response.Close()
	if a.value != nil {
		a.value.Close()
	}
}

func (a DequeueAck) encodeBody(w io.Writer) error {
	if err := a.response.Encode(w); err != nil {
		return err
	}
	return wire.WriteOption(w, a.value, func(w io.Writer, v wire.BinaryData) error { return v.Encode(w) })
}

// Encode writes the header then the payload.
func (a DequeueAck) Encode(w io.Writer) error {
	if err := a.header.Encode(w); err != nil {
		return err
	}
	return a.encodeBody(w)
}

// DecodeDequeueAckPartial decodes the DequeueAck body given its
// already-consumed header.
func DecodeDequeueAckPartial(h header.Header, r io.Reader, owned *buffer.Owned) (DequeueAck, error) {
	resp, err := response.DecodePartial(r, owned)
	if err != nil {
		return DequeueAck{}, err
	}
	value, err := wire.ReadOption(r, func(r io.Reader) (wire.BinaryData, error) {
		return wire.DecodeBinaryData(r, owned)
	})
	if err != nil {
		resp.Close()
		return DequeueAck{}, err
	}
	return DequeueAck{header: h, response: resp, value: value}, nil
}
