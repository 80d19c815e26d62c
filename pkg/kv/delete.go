package kv

import (
	"io"

	"github.com/google/uuid"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/header"
	"github.com/nyanzoo/necronomicon/pkg/response"
	"github.com/nyanzoo/necronomicon/pkg/wire"
)

// Delete removes the entry stored under key, if any.
type Delete struct {
	header header.Header
	key    wire.BinaryData
}

// NewDelete builds a Delete with header.Len computed from the encoded
// size of its payload.
func NewDelete(version uint8, id uuid.UUID, key []byte) (Delete, error) {
	d := Delete{key: wire.NewBinaryData(key)}
	n, err := encodedLen(d.encodeBody)
	if err != nil {
		return Delete{}, err
	}
	h := header.New(header.KVDelete, version, id)
	h.Len = uint64(n)
	d.header = h
	return d, nil
}

// Header returns the frame header.
func (d Delete) Header() header.Header { return d.header }

// Key returns the target key.
func (d Delete) Key() wire.BinaryData { return d.key }

// Ack builds a successful DeleteAck preserving version and uuid.
func (d Delete) Ack() DeleteAck {
	return DeleteAck{
		header:   header.New(header.KVDeleteAck, d.header.Version, d.header.UUID),
		response: response.Success(),
	}
}

// Nack builds a failed DeleteAck preserving version and uuid.
func (d Delete) Nack(code response.Code, reason string) DeleteAck {
	return DeleteAck{
		header:   header.New(header.KVDeleteAck, d.header.Version, d.header.UUID),
		response: response.Fail(code, reason),
	}
}

// Close releases any pool Block backing Key.
func (d Delete) Close() { d.key.Close() }

func (d Delete) encodeBody(w io.Writer) error {
	return d.key.Encode(w)
}

// Encode writes the header then the payload.
func (d Delete) Encode(w io.Writer) error {
	if err := d.header.Encode(w); err != nil {
		return err
	}
	return d.encodeBody(w)
}

// DecodeDeletePartial decodes the Delete body given its already-consumed
// header.
func DecodeDeletePartial(h header.Header, r io.Reader, owned *buffer.Owned) (Delete, error) {
	key, err := wire.DecodeBinaryData(r, owned)
	if err != nil {
		return Delete{}, err
	}
	return Delete{header: h, key: key}, nil
}

// DeleteAck is the ack to a Delete.
type DeleteAck struct {
	header   header.Header
	response response.Response
}

// Header returns the frame header.
func (a DeleteAck) Header() header.Header { return a.header }

// Response returns the carried response.
func (a DeleteAck) Response() response.Response { return a.response }

// Close releases the pool Block backing Response.Reason, if any.
func (a DeleteAck) Close() { a.response.Close() }

// Encode writes the header then the Response body.
func (a DeleteAck) Encode(w io.Writer) error {
	if err := a.header.Encode(w); err != nil {
		return err
	}
	return a.response.Encode(w)
}

// DecodeDeleteAckPartial decodes the DeleteAck body given its
// already-consumed header.
func DecodeDeleteAckPartial(h header.Header, r io.Reader, owned *buffer.Owned) (DeleteAck, error) {
	resp, err := response.DecodePartial(r, owned)
	if err != nil {
		return DeleteAck{}, err
	}
	return DeleteAck{header: h, response: resp}, nil
}
