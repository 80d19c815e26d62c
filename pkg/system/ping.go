package system

import (
	"io"

	"github.com/google/uuid"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/header"
	"github.com/nyanzoo/necronomicon/pkg/response"
)

// Ping is an empty-body liveness probe between chain neighbors.
type Ping struct {
	header header.Header
}

// NewPing builds a Ping. Its body is empty so header.Len is always 0.
func NewPing(version uint8, id uuid.UUID) Ping {
	return Ping{header: header.New(header.Ping, version, id)}
}

// Header returns the frame header.
func (p Ping) Header() header.Header { return p.header }

// Ack builds the PingAck. Response is always SUCCESS; a Ping that reaches
// its peer has already proven liveness, so there is no Nack.
func (p Ping) Ack() PingAck {
	return PingAck{header: header.New(header.PingAck, p.header.Version, p.header.UUID)}
}

// Close is a no-op; Ping owns no pool-backed storage.
func (p Ping) Close() {}

// Encode writes the header. Ping has no body.
func (p Ping) Encode(w io.Writer) error {
	return p.header.Encode(w)
}

// DecodePingPartial returns a Ping from its already-consumed header. There
// is no body to read.
func DecodePingPartial(h header.Header, r io.Reader, owned *buffer.Owned) (Ping, error) {
	return Ping{header: h}, nil
}

// PingAck is the ack to a Ping, always carrying a SUCCESS response.
type PingAck struct {
	header header.Header
}

// Header returns the frame header.
func (a PingAck) Header() header.Header { return a.header }

// Response always reports success.
func (a PingAck) Response() response.Response { return response.Success() }

// Close is a no-op; PingAck owns no pool-backed storage.
func (a PingAck) Close() {}

// Encode writes the header. PingAck has no body.
func (a PingAck) Encode(w io.Writer) error {
	return a.header.Encode(w)
}

// DecodePingAckPartial returns a PingAck from its already-consumed header.
// There is no body to read.
func DecodePingAckPartial(h header.Header, r io.Reader, owned *buffer.Owned) (PingAck, error) {
	return PingAck{header: h}, nil
}
