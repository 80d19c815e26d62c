package system

import (
	"io"

	"github.com/google/uuid"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/header"
	"github.com/nyanzoo/necronomicon/pkg/response"
	"github.com/nyanzoo/necronomicon/pkg/wire"
)

// Join announces a node's role and store version to the control plane
// during failure recovery, along with whether its successor was lost.
type Join struct {
	header        header.Header
	role          Role
	instance      wire.Uint128
	successorLost bool
}

// NewJoin builds a Join with header.Len computed from the encoded size of
// its payload.
func NewJoin(version uint8, id uuid.UUID, role Role, instance wire.Uint128, successorLost bool) (Join, error) {
	j := Join{role: role, instance: instance, successorLost: successorLost}
	n, err := encodedLen(j.encodeBody)
	if err != nil {
		return Join{}, err
	}
	h := header.New(header.Join, version, id)
	h.Len = uint64(n)
	j.header = h
	return j, nil
}

// Header returns the frame header.
func (j Join) Header() header.Header { return j.header }

// Role returns the joining node's role.
func (j Join) Role() Role { return j.role }

// Instance returns the joining node's store version.
func (j Join) Instance() wire.Uint128 { return j.instance }

// SuccessorLost reports whether the joining node's successor was lost.
func (j Join) SuccessorLost() bool { return j.successorLost }

// Ack builds a successful JoinAck preserving version and uuid.
func (j Join) Ack() JoinAck {
	return JoinAck{
		header:   header.New(header.JoinAck, j.header.Version, j.header.UUID),
		response: response.Success(),
	}
}

// Nack builds a failed JoinAck preserving version and uuid.
func (j Join) Nack(code response.Code, reason string) JoinAck {
	return JoinAck{
		header:   header.New(header.JoinAck, j.header.Version, j.header.UUID),
		response: response.Fail(code, reason),
	}
}

// Close releases any pool Block backing the Role's address.
func (j Join) Close() { j.role.Close() }

func (j Join) encodeBody(w io.Writer) error {
	if err := j.role.Encode(w); err != nil {
		return err
	}
	if err := wire.WriteUint128(w, j.instance); err != nil {
		return err
	}
	return wire.WriteBool(w, j.successorLost)
}

// Encode writes the header then the payload.
func (j Join) Encode(w io.Writer) error {
	if err := j.header.Encode(w); err != nil {
		return err
	}
	return j.encodeBody(w)
}

// DecodeJoinPartial decodes the Join body given its already-consumed
// header.
func DecodeJoinPartial(h header.Header, r io.Reader, owned *buffer.Owned) (Join, error) {
	role, err := DecodeRole(r, owned)
	if err != nil {
		return Join{}, err
	}
	instance, err := wire.ReadUint128(r)
	if err != nil {
		role.Close()
		return Join{}, err
	}
	successorLost, err := wire.ReadBool(r)
	if err != nil {
		role.Close()
		return Join{}, err
	}
	return Join{header: h, role: role, instance: instance, successorLost: successorLost}, nil
}

// JoinAck is the ack to a Join.
type JoinAck struct {
	header   header.Header
	response response.Response
}

// Header returns the frame header.
func (a JoinAck) Header() header.Header { return a.header }

// Response returns the carried response.
func (a JoinAck) Response() response.Response { return a.response }

// Close releases the pool Block backing Response.Reason, if any.
func (a JoinAck) Close() { a.response.Close() }

// Encode writes the header then the Response body.
func (a JoinAck) Encode(w io.Writer) error {
	if err := a.header.Encode(w); err != nil {
		return err
	}
	return a.response.Encode(w)
}

// DecodeJoinAckPartial decodes the JoinAck body given its already-consumed
// header.
func DecodeJoinAckPartial(h header.Header, r io.Reader, owned *buffer.Owned) (JoinAck, error) {
	resp, err := response.DecodePartial(r, owned)
	if err != nil {
		return JoinAck{}, err
	}
	return JoinAck{header: h, response: resp}, nil
}
