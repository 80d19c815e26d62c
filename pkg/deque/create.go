package deque

import (
	"io"

	"github.com/google/uuid"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/header"
	"github.com/nyanzoo/necronomicon/pkg/response"
	"github.com/nyanzoo/necronomicon/pkg/wire"
)

// CreateQueue provisions a new durable queue at path, with a fixed
// per-node segment size and a cap on total on-disk usage.
type CreateQueue struct {
	header       header.Header
	path         wire.ByteStr
	nodeSize     uint64
	maxDiskUsage uint64
}

// NewCreateQueue builds a CreateQueue with header.Len computed from the
// encoded size of its payload.
func NewCreateQueue(version uint8, id uuid.UUID, path string, nodeSize, maxDiskUsage uint64) (CreateQueue, error) {
	c := CreateQueue{path: wire.NewByteStr(path), nodeSize: nodeSize, maxDiskUsage: maxDiskUsage}
	n, err := encodedLen(c.encodeBody)
	if err != nil {
		return CreateQueue{}, err
	}
	h := header.New(header.CreateQueue, version, id)
	h.Len = uint64(n)
	c.header = h
	return c, nil
}

// Header returns the frame header.
func (c CreateQueue) Header() header.Header { return c.header }

// Path returns the new queue's path.
func (c CreateQueue) Path() wire.ByteStr { return c.path }

// NodeSize returns the fixed size of each on-disk segment.
func (c CreateQueue) NodeSize() uint64 { return c.nodeSize }

// MaxDiskUsage returns the cap on the queue's total on-disk footprint.
func (c CreateQueue) MaxDiskUsage() uint64 { return c.maxDiskUsage }

// Ack builds a successful CreateQueueAck preserving version and uuid.
func (c CreateQueue) Ack() CreateQueueAck {
	return CreateQueueAck{
		header:   header.New(header.CreateQueueAck, c.header.Version, c.header.UUID),
		response: response.Success(),
	}
}

// Nack builds a failed CreateQueueAck preserving version and uuid.
func (c CreateQueue) Nack(code response.Code, reason string) CreateQueueAck {
	return CreateQueueAck{
		header:   header.New(header.CreateQueueAck, c.header.Version, c.header.UUID),
		response: response.Fail(code, reason),
	}
}

// Close releases any pool Block backing Path.
func (c CreateQueue) Close() { c.path.Close() }

func (c CreateQueue) encodeBody(w io.Writer) error {
	if err := c.path.Encode(w); err != nil {
		return err
	}
	if err := wire.WriteUint64(w, c.nodeSize); err != nil {
		return err
	}
	return wire.WriteUint64(w, c.maxDiskUsage)
}

// Encode writes the header then the payload.
func (c CreateQueue) Encode(w io.Writer) error {
	if err := c.header.Encode(w); err != nil {
		return err
	}
	return c.encodeBody(w)
}

// DecodeCreateQueuePartial decodes the CreateQueue body given its
// already-consumed header.
func DecodeCreateQueuePartial(h header.Header, r io.Reader, owned *buffer.Owned) (CreateQueue, error) {
	path, err := wire.DecodeByteStr(r, owned)
	if err != nil {
		return CreateQueue{}, err
	}
	nodeSize, err := wire.ReadUint64(r)
	if err != nil {
		path.Close()
		return CreateQueue{}, err
	}
	maxDiskUsage, err := wire.ReadUint64(r)
	if err != nil {
		path.Close()
		return CreateQueue{}, err
	}
	return CreateQueue{header: h, path: path, nodeSize: nodeSize, maxDiskUsage: maxDiskUsage}, nil
}

// CreateQueueAck is the ack to a CreateQueue.
type CreateQueueAck struct {
	header   header.Header
	response response.Response
}

// Header returns the frame header.
func (a CreateQueueAck) Header() header.Header { return a.header }

// Response returns the carried response.
func (a CreateQueueAck) Response() response.Response { return a.response }

// Close releases the pool Block backing Response.Reason, if any.
func (a CreateQueueAck) Close() { a.response.Close() }

// Encode writes the header then the Response body.
func (a CreateQueueAck) Encode(w io.Writer) error {
	if err := a.header.Encode(w); err != nil {
		return err
	}
	return a.response.Encode(w)
}

// DecodeCreateQueueAckPartial decodes the CreateQueueAck body given its
// already-consumed header.
func DecodeCreateQueueAckPartial(h header.Header, r io.Reader, owned *buffer.Owned) (CreateQueueAck, error) {
	resp, err := response.DecodePartial(r, owned)
	if err != nil {
		return CreateQueueAck{}, err
	}
	return CreateQueueAck{header: h, response: resp}, nil
}
