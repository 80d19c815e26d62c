package deque

import (
	"io"

	"github.com/google/uuid"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/header"
	"github.com/nyanzoo/necronomicon/pkg/response"
	"github.com/nyanzoo/necronomicon/pkg/wire"
)

// Enqueue appends value to the tail of the queue at path.
type Enqueue struct {
	header header.Header
	path   wire.ByteStr
	value  wire.BinaryData
}

// NewEnqueue builds an Enqueue with header.Len computed from the encoded
// size of its payload.
func NewEnqueue(version uint8, id uuid.UUID, path string, value []byte) (Enqueue, error) {
	e := Enqueue{path: wire.NewByteStr(path), value: wire.NewBinaryData(value)}
	n, err := encodedLen(e.encodeBody)
	if err != nil {
		return Enqueue{}, err
	}
	h := header.New(header.Enqueue, version, id)
	h.Len = uint64(n)
	e.header = h
	return e, nil
}

// Header returns the frame header.
func (e Enqueue) Header() header.Header { return e.header }

// Path returns the target queue's path.
func (e Enqueue) Path() wire.ByteStr { return e.path }

// Value returns the enqueued payload.
func (e Enqueue) Value() wire.BinaryData { return e.value }

// Ack builds a successful EnqueueAck preserving version and uuid.
func (e Enqueue) Ack() EnqueueAck {
	return EnqueueAck{
		header:   header.New(header.EnqueueAck, e.header.Version, e.header.UUID),
		response: response.Success(),
	}
}

// Nack builds a failed EnqueueAck preserving version and uuid.
func (e Enqueue) Nack(code response.Code, reason string) EnqueueAck {
	return EnqueueAck{
		header:   header.New(header.EnqueueAck, e.header.Version, e.header.UUID),
		response: response.Fail(code, reason),
	}
}

// Close releases any pool Blocks backing Path and Value.
func (e Enqueue) Close() {
	e.path.Close()
	e.value.Close()
}

func (e Enqueue) encodeBody(w io.Writer) error {
	if err := e.path.Encode(w); err != nil {
		return err
	}
	return e.value.Encode(w)
}

// Encode writes the header then the payload.
func (e Enqueue) Encode(w io.Writer) error {
	if err := e.header.Encode(w); err != nil {
		return err
	}
	return e.encodeBody(w)
}

// DecodeEnqueuePartial decodes the Enqueue body given its already-consumed
// header.
func DecodeEnqueuePartial(h header.Header, r io.Reader, owned *buffer.Owned) (Enqueue, error) {
	path, err := wire.DecodeByteStr(r, owned)
	if err != nil {
		return Enqueue{}, err
	}
	value, err := wire.DecodeBinaryData(r, owned)
	if err != nil {
		path.Close()
		return Enqueue{}, err
	}
	return Enqueue{header: h, path: path, value: value}, nil
}

// EnqueueAck is the ack to an Enqueue.
type EnqueueAck struct {
	header   header.Header
	response response.Response
}

// Header returns the frame header.
func (a EnqueueAck) Header() header.Header { return a.header }

// Response returns the carried response.
func (a EnqueueAck) Response() response.Response { return a.response }

// Close releases the pool Block backing Response.Reason, if any.
func (a EnqueueAck) Close() { a.response.Close() }

// Encode writes the header then the Response body.
func (a EnqueueAck) Encode(w io.Writer) error {
	if err := a.header.Encode(w); err != nil {
		return err
	}
	return a.response.Encode(w)
}

// DecodeEnqueueAckPartial decodes the EnqueueAck body given its
// already-consumed header.
func DecodeEnqueueAckPartial(h header.Header, r io.Reader, owned *buffer.Owned) (EnqueueAck, error) {
	resp, err := response.DecodePartial(r, owned)
	if err != nil {
		return EnqueueAck{}, err
	}
	return EnqueueAck{header: h, response: resp}, nil
}
