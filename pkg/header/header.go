// Package header implements the 26-byte fixed frame preamble every Packet
// carries: kind, version, body length, and a request-correlation uuid.
package header

import (
	"io"

	"github.com/google/uuid"

	"github.com/nyanzoo/necronomicon/pkg/wire"
)

// Size is the fixed encoded size of a Header in bytes.
const Size = 1 + 1 + 8 + 16

// Header is the fixed preamble of every wire frame: kind byte, version
// byte, body length as a big-endian u64, and a 128-bit uuid used to
// correlate a request with its ack.
//
// Len is a body-size prefix: it tells the receiver how many bytes follow
// before it has to commit to reading the body, which is what makes the
// two-phase decode in package packet possible.
type Header struct {
	Kind    Kind
	Version uint8
	Len     uint64
	UUID    uuid.UUID
}

// New builds a Header for the given kind, version and uuid. Len is left
// at zero; callers that build a Header for encoding set Len to the exact
// number of body bytes Encode will produce, per invariant I1.
func New(kind Kind, version uint8, id uuid.UUID) Header {
	return Header{Kind: kind, Version: version, UUID: id}
}

// Encode writes the 26-byte frame in field order: kind, version, len,
// uuid.
func (h Header) Encode(w io.Writer) error {
	if err := wire.WriteUint8(w, uint8(h.Kind)); err != nil {
		return err
	}
	if err := wire.WriteUint8(w, h.Version); err != nil {
		return err
	}
	if err := wire.WriteUint64(w, h.Len); err != nil {
		return err
	}
	idBytes, err := h.UUID.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := w.Write(idBytes); err != nil {
		return err
	}
	return nil
}

// Decode reads a 26-byte frame. It validates nothing beyond byte count;
// Kind validity is checked only when dispatch tries to match it against
// the known set.
func Decode(r io.Reader) (Header, error) {
	kindByte, err := wire.ReadUint8(r)
	if err != nil {
		return Header{}, err
	}
	version, err := wire.ReadUint8(r)
	if err != nil {
		return Header{}, err
	}
	length, err := wire.ReadUint64(r)
	if err != nil {
		return Header{}, err
	}
	var idBytes [16]byte
	if _, err := io.ReadFull(r, idBytes[:]); err != nil {
		return Header{}, err
	}
	id, err := uuid.FromBytes(idBytes[:])
	if err != nil {
		return Header{}, err
	}

	return Header{Kind: Kind(kindByte), Version: version, Len: length, UUID: id}, nil
}
