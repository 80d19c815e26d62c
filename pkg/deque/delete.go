package deque

import (
	"io"

	"github.com/google/uuid"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/header"
	"github.com/nyanzoo/necronomicon/pkg/response"
	"github.com/nyanzoo/necronomicon/pkg/wire"
)

// DeleteQueue tears down the queue at path and its on-disk segments.
type DeleteQueue struct {
	header header.Header
	path   wire.ByteStr
}

// NewDeleteQueue builds a DeleteQueue with header.Len computed from the
// encoded size of its payload.
func NewDeleteQueue(version uint8, id uuid.UUID, path string) (DeleteQueue, error) {
	d := DeleteQueue{path: wire.NewByteStr(path)}
	n, err := encodedLen(d.encodeBody)
	if err != nil {
		return DeleteQueue{}, err
	}
	h := header.New(header.DeleteQueue, version, id)
	h.Len = uint64(n)
	d.header = h
	return d, nil
}

// Header returns the frame header.
func (d DeleteQueue) Header() header.Header { return d.header }

// Path returns the target queue's path.
func (d DeleteQueue) Path() wire.ByteStr { return d.path }

// Ack builds a successful DeleteQueueAck preserving version and uuid.
func (d DeleteQueue) Ack() DeleteQueueAck {
	return DeleteQueueAck{
		header:   header.New(header.DeleteQueueAck, d.header.Version, d.header.UUID),
		response: response.Success(),
	}
}

// Nack builds a failed DeleteQueueAck preserving version and uuid.
func (d DeleteQueue) Nack(code response.Code, reason string) DeleteQueueAck {
	return DeleteQueueAck{
		header:   header.New(header.DeleteQueueAck, d.header.Version, d.header.UUID),
		response: response.Fail(code, reason),
	}
}

// Close releases any pool Block backing Path.
func (d DeleteQueue) Close() { d.path.Close() }

func (d DeleteQueue) encodeBody(w io.Writer) error {
	return d.path.Encode(w)
}

// Encode writes the header then the payload.
func (d DeleteQueue) Encode(w io.Writer) error {
	if err := d.header.Encode(w); err != nil {
		return err
	}
	return d.encodeBody(w)
}

// DecodeDeleteQueuePartial decodes the DeleteQueue body given its
// already-consumed header.
func DecodeDeleteQueuePartial(h header.Header, r io.Reader, owned *buffer.Owned) (DeleteQueue, error) {
	path, err := wire.DecodeByteStr(r, owned)
	if err != nil {
		return DeleteQueue{}, err
	}
	return DeleteQueue{header: h, path: path}, nil
}

// DeleteQueueAck is the ack to a DeleteQueue.
type DeleteQueueAck struct {
	header   header.Header
	response response.Response
}

// Header returns the frame header.
func (a DeleteQueueAck) Header() header.Header { return a.header }

// Response returns the carried response.
func (a DeleteQueueAck) Response() response.Response { return a.response }

// Close releases the pool Block backing Response.Reason, if any.
func (a DeleteQueueAck) Close() { a.response.Close() }

// Encode writes the header then the Response body.
func (a DeleteQueueAck) Encode(w io.Writer) error {
	if err := a.header.Encode(w); err != nil {
		return err
	}
	return a.response.Encode(w)
}

// DecodeDeleteQueueAckPartial decodes the DeleteQueueAck body given its
// already-consumed header.
func DecodeDeleteQueueAckPartial(h header.Header, r io.Reader, owned *buffer.Owned) (DeleteQueueAck, error) {
	resp, err := response.DecodePartial(r, owned)
	if err != nil {
		return DeleteQueueAck{}, err
	}
	return DeleteQueueAck{header: h, response: resp}, nil
}
