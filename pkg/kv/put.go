package kv

import (
	"io"

	"github.com/google/uuid"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/header"
	"github.com/nyanzoo/necronomicon/pkg/response"
	"github.com/nyanzoo/necronomicon/pkg/wire"
)

// Put writes value under key, overwriting any existing entry.
type Put struct {
	header header.Header
	key    wire.BinaryData
	value  wire.BinaryData
}

// NewPut builds a Put with header.Len computed from the encoded size of
// its payload.
func NewPut(version uint8, id uuid.UUID, key, value []byte) (Put, error) {
	p := Put{key: wire.NewBinaryData(key), value: wire.NewBinaryData(value)}
	n, err := encodedLen(p.encodeBody)
	if err != nil {
		return Put{}, err
	}
	h := header.New(header.Put, version, id)
	h.Len = uint64(n)
	p.header = h
	return p, nil
}

// Header returns the frame header.
func (p Put) Header() header.Header { return p.header }

// Key returns the target key.
func (p Put) Key() wire.BinaryData { return p.key }

// Value returns the value to store.
func (p Put) Value() wire.BinaryData { return p.value }

// Ack builds a successful PutAck preserving version and uuid.
func (p Put) Ack() PutAck {
	return PutAck{
		header:   header.New(header.PutAck, p.header.Version, p.header.UUID),
		response: response.Success(),
	}
}

// Nack builds a failed PutAck preserving version and uuid.
func (p Put) Nack(code response.Code, reason string) PutAck {
	return PutAck{
		header:   header.New(header.PutAck, p.header.Version, p.header.UUID),
		response: response.Fail(code, reason),
	}
}

// Close releases any pool Blocks backing Key and Value.
func (p Put) Close() {
	p.key.Close()
	p.value.Close()
}

func (p Put) encodeBody(w io.Writer) error {
	if err := p.key.Encode(w); err != nil {
		return err
	}
	return p.value.Encode(w)
}

// Encode writes the header then the payload.
func (p Put) Encode(w io.Writer) error {
	if err := p.header.Encode(w); err != nil {
		return err
	}
	return p.encodeBody(w)
}

// DecodePutPartial decodes the Put body given its already-consumed
// header.
func DecodePutPartial(h header.Header, r io.Reader, owned *buffer.Owned) (Put, error) {
	key, err := wire.DecodeBinaryData(r, owned)
	if err != nil {
		return Put{}, err
	}
	value, err := wire.DecodeBinaryData(r, owned)
	if err != nil {
		key.Close()
		return Put{}, err
	}
	return Put{header: h, key: key, value: value}, nil
}

// PutAck is the ack to a Put.
type PutAck struct {
	header   header.Header
	response response.Response
}

// Header returns the frame header.
func (a PutAck) Header() header.Header { return a.header }

// Response returns the carried response.
func (a PutAck) Response() response.Response { return a.response }

// Close releases the pool Block backing Response.Reason, if any.
func (a PutAck) Close() { a.response.Close() }

// Encode writes the header then the Response body.
func (a PutAck) Encode(w io.Writer) error {
	if err := a.header.Encode(w); err != nil {
		return err
	}
	return a.response.Encode(w)
}

// DecodePutAckPartial decodes the PutAck body given its already-consumed
// header.
func DecodePutAckPartial(h header.Header, r io.Reader, owned *buffer.Owned) (PutAck, error) {
	resp, err := response.DecodePartial(r, owned)
	if err != nil {
		return PutAck{}, err
	}
	return PutAck{header: h, response: resp}, nil
}
