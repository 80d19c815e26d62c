// Package system implements the cluster-membership/control message
// family: Report, Join, Transfer, Ping and their acks, plus the Role and
// Position tagged enums those messages carry.
package system

import (
	"io"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/wire"
)

// RoleTag discriminates the three Role variants.
type RoleTag uint8

const (
	RoleBackend  RoleTag = 1
	RoleFrontend RoleTag = 2
	RoleObserver RoleTag = 3
)

// Role is a chain-topology role: a Backend or Frontend carries the node's
// own address, an Observer carries nothing.
type Role struct {
	Tag  RoleTag
	Addr wire.ByteStr
}

// NewBackendRole builds a Backend role carrying addr.
func NewBackendRole(addr string) Role {
	return Role{Tag: RoleBackend, Addr: wire.NewByteStr(addr)}
}

// NewFrontendRole builds a Frontend role carrying addr.
func NewFrontendRole(addr string) Role {
	return Role{Tag: RoleFrontend, Addr: wire.NewByteStr(addr)}
}

// NewObserverRole builds the addressless Observer role.
func NewObserverRole() Role {
	return Role{Tag: RoleObserver}
}

// Equal compares tag and, for Backend/Frontend, address content.
func (r Role) Equal(other Role) bool {
	if r.Tag != other.Tag {
		return false
	}
	switch r.Tag {
	case RoleBackend, RoleFrontend:
		return r.Addr.Equal(other.Addr)
	default:
		return true
	}
}

// Close releases the pool Block backing Addr, if pool-backed.
func (r Role) Close() {
	switch r.Tag {
	case RoleBackend, RoleFrontend:
		r.Addr.Close()
	}
}

// Encode writes the one-byte discriminant then the variant body.
func (r Role) Encode(w io.Writer) error {
	if err := wire.WriteUint8(w, uint8(r.Tag)); err != nil {
		return err
	}
	switch r.Tag {
	case RoleBackend, RoleFrontend:
		return r.Addr.Encode(w)
	case RoleObserver:
		return nil
	default:
		return &SystemBadRole{Value: uint8(r.Tag)}
	}
}

// DecodeRole reads the discriminant and decodes the matching variant body,
// landing any address bytes in owned.
func DecodeRole(r io.Reader, owned *buffer.Owned) (Role, error) {
	tag, err := wire.ReadUint8(r)
	if err != nil {
		return Role{}, err
	}

	switch RoleTag(tag) {
	case RoleBackend:
		addr, err := wire.DecodeByteStr(r, owned)
		if err != nil {
			return Role{}, err
		}
		return Role{Tag: RoleBackend, Addr: addr}, nil
	case RoleFrontend:
		addr, err := wire.DecodeByteStr(r, owned)
		if err != nil {
			return Role{}, err
		}
		return Role{Tag: RoleFrontend, Addr: addr}, nil
	case RoleObserver:
		return Role{Tag: RoleObserver}, nil
	default:
		return Role{}, &SystemBadRole{Value: tag}
	}
}
