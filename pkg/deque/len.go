package deque

import (
	"io"

	"github.com/google/uuid"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/header"
	"github.com/nyanzoo/necronomicon/pkg/response"
	"github.com/nyanzoo/necronomicon/pkg/wire"
)

// Len returns the current element count of the queue at path.
type Len struct {
	header header.Header
	path   wire.ByteStr
}

// NewLen builds a Len with header.Len computed from the encoded size of
// its payload.
func NewLen(version uint8, id uuid.UUID, path string) (Len, error) {
	l := Len{path: wire.NewByteStr(path)}
	n, err := encodedLen(l.encodeBody)
	if err != nil {
		return Len{}, err
	}
	h := header.New(header.Len, version, id)
	h.Len = uint64(n)
	l.header = h
	return l, nil
}

// Header returns the frame header.
func (l Len) Header() header.Header { return l.header }

// Path returns the target queue's path.
func (l Len) Path() wire.ByteStr { return l.path }

// Ack builds a successful LenAck carrying length, preserving version and
// uuid.
func (l Len) Ack(length uint64) LenAck {
	return LenAck{
		header:   header.New(header.LenAck, l.header.Version, l.header.UUID),
		response: response.Success(),
		length:   length,
	}
}

// Nack builds a failed LenAck preserving version and uuid.
func (l Len) Nack(code response.Code, reason string) LenAck {
	return LenAck{
		header:   header.New(header.LenAck, l.header.Version, l.header.UUID),
		response: response.Fail(code, reason),
	}
}

// Close releases any pool Block backing Path.
func (l Len) Close() { l.path.Close() }

func (l Len) encodeBody(w io.Writer) error {
	return l.path.Encode(w)
}

// Encode writes the header then the payload.
func (l Len) Encode(w io.Writer) error {
	if err := l.header.Encode(w); err != nil {
		return err
	}
	return l.encodeBody(w)
}

// DecodeLenPartial decodes the Len body given its already-consumed
// header.
func DecodeLenPartial(h header.Header, r io.Reader, owned *buffer.Owned) (Len, error) {
	path, err := wire.DecodeByteStr(r, owned)
	if err != nil {
		return Len{}, err
	}
	return Len{header: h, path: path}, nil
}

// LenAck is the ack to a Len, carrying the queue's element count on
// success.
type LenAck struct {
	header   header.Header
	response response.Response
	length   uint64
}

// Header returns the frame header.
func (a LenAck) Header() header.Header { return a.header }

// Response returns the carried response.
func (a LenAck) Response() response.Response { return a.response }

// Length returns the queue's element count; zero on failure.
func (a LenAck) Length() uint64 { return a.length }

// Close releases the pool Block backing Response.Reason, if any.
func (a LenAck) Close() { a.response.Close() }

func (a LenAck) encodeBody(w io.Writer) error {
	if err := a.response.Encode(w); err != nil {
		return err
	}
	return wire.WriteUint64(w, a.length)
}

// Encode writes the header then the payload.
func (a LenAck) Encode(w io.Writer) error {
	if err := a.header.Encode(w); err != nil {
		return err
	}
	return a.encodeBody(w)
}

// DecodeLenAckPartial decodes the LenAck body given its already-consumed
// header.
func DecodeLenAckPartial(h header.Header, r io.Reader, owned *buffer.Owned) (LenAck, error) {
	resp, err := response.DecodePartial(r, owned)
	if err != nil {
		return LenAck{}, err
	}
	length, err := wire.ReadUint64(r)
	if err != nil {
		resp.Close()
		return LenAck{}, err
	}
	return LenAck{header: h, response: resp, length: length}, nil
}
