package kv

import (
	"io"

	"github.com/google/uuid"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/header"
	"github.com/nyanzoo/necronomicon/pkg/response"
	"github.com/nyanzoo/necronomicon/pkg/wire"
)

// Get retrieves the value stored under key.
type Get struct {
	header header.Header
	key    wire.BinaryData
}

// NewGet builds a Get with header.Len computed from the encoded size of
// its payload.
func NewGet(version uint8, id uuid.UUID, key []byte) (Get, error) {
	g := Get{key: wire.NewBinaryData(key)}
	n, err := encodedLen(g.encodeBody)
	if err != nil {
		return Get{}, err
	}
	h := header.New(header.Get, version, id)
	h.Len = uint64(n)
	g.header = h
	return g, nil
}

// Header returns the frame header.
func (g Get) Header() header.Header { return g.header }

// Key returns the target key.
func (g Get) Key() wire.BinaryData { return g.key }

// Ack builds a successful GetAck carrying value, preserving version and
// uuid.
func (g Get) Ack(value []byte) GetAck {
	v := wire.NewBinaryData(value)
	return GetAck{
		header:   header.New(header.GetAck, g.header.Version, g.header.UUID),
		response: response.Success(),
		value:    &v,
	}
}

// Nack builds a failed GetAck preserving version and uuid.
func (g Get) Nack(code response.Code, reason string) GetAck {
	return GetAck{
		header:   header.New(header.GetAck, g.header.Version, g.header.UUID),
		response: response.Fail(code, reason),
	}
}

// Close releases any pool Block backing Key.
func (g Get) Close() { g.key.Close() }

func (g Get) encodeBody(w io.Writer) error {
	return g.key.Encode(w)
}

// Encode writes the header then the payload.
func (g Get) Encode(w io.Writer) error {
	if err := g.header.Encode(w); err != nil {
		return err
	}
	return g.encodeBody(w)
}

// DecodeGetPartial decodes the Get body given its already-consumed
// header.
func DecodeGetPartial(h header.Header, r io.Reader, owned *buffer.Owned) (Get, error) {
	key, err := wire.DecodeBinaryData(r, owned)
	if err != nil {
		return Get{}, err
	}
	return Get{header: h, key: key}, nil
}

// GetAck is the ack to a Get, carrying the stored value on success. Value
// is an Option: on the S2 scenario -- a key that does not exist -- it is
// absent (a single 0 presence byte) and Response.Code is
// KEY_DOES_NOT_EXIST, rather than present-but-empty.
type GetAck struct {
	header   header.Header
	response response.Response
	value    *wire.BinaryData
}

// Header returns the frame header.
func (a GetAck) Header() header.Header { return a.header }

// Response returns the carried response.
func (a GetAck) Response() response.Response { return a.response }

// Value returns the stored payload; empty if absent.
func (a GetAck) Value() wire.BinaryData {
	if a.value == nil {
		return wire.BinaryData{}
	}
	return *a.value
}

// Close releases any pool Blocks backing Response.Reason and Value.
func (a GetAck) Close() {
	a.response.Close()
	if a.value != nil {
		a.value.Close()
	}
}

func (a GetAck) encodeBody(w io.Writer) error {
	if err := a.response.Encode(w); err != nil {
		return err
	}
	return wire.WriteOption(w, a.value, func(w io.Writer, v wire.BinaryData) error { return v.Encode(w) })
}

// Encode writes the header then the payload.
func (a GetAck) Encode(w io.Writer) error {
	if err := a.header.Encode(w); err != nil {
		return err
	}
	return a.encodeBody(w)
}

// DecodeGetAckPartial decodes the GetAck body given its already-consumed
// header.
func DecodeGetAckPartial(h header.Header, r io.Reader, owned *buffer.Owned) (GetAck, error) {
	resp, err := response.DecodePartial(r, owned)
	if err != nil {
		return GetAck{}, err
	}
	value, err := wire.ReadOption(r, func(r io.Reader) (wire.BinaryData, error) {
		return wire.DecodeBinaryData(r, owned)
	})
	if err != nil {
		resp.Close()
		return GetAck{}, err
	}
	return GetAck{header: h, response: resp, value: value}, nil
}
