package wire

import (
	"io"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
)

// BinaryData is a length-prefixed byte payload. Wire form: u64 big-endian
// length, then that many raw bytes.
//
// A BinaryData built via NewBinaryData (for outbound construction) owns a
// plain slice. A BinaryData produced by DecodeBinaryData holds a
// buffer.Shared view into pool storage instead, so the bytes it exposes
// live as long as that Shared is kept open and the Pool Block backing it
// is not reused underneath the packet.
type BinaryData struct {
	bytes  []byte
	shared *buffer.Shared
}

// NewBinaryData wraps a caller-owned byte slice for encoding. No pool
// involvement; used when building outbound requests/acks.
func NewBinaryData(b []byte) BinaryData {
	return BinaryData{bytes: b}
}

// Len returns the payload length in bytes.
func (b BinaryData) Len() int {
	if b.shared != nil {
		return b.shared.Len()
	}
	return len(b.bytes)
}

// Bytes returns the payload bytes.
func (b BinaryData) Bytes() []byte {
	if b.shared != nil {
		return b.shared.Bytes()
	}
	return b.bytes
}

// Equal compares payload content byte-for-byte, independent of whether
// either side is pool-backed.
func (b BinaryData) Equal(other BinaryData) bool {
	ba, bb := b.Bytes(), other.Bytes()
	if len(ba) != len(bb) {
		return false
	}
	for i := range ba {
		if ba[i] != bb[i] {
			return false
		}
	}
	return true
}

// Close releases the underlying pool Block, if this BinaryData was
// produced by DecodeBinaryData. A no-op for caller-constructed values.
func (b BinaryData) Close() {
	if b.shared != nil {
		b.shared.Close()
	}
}

// Encode writes the u64 length prefix followed by the payload bytes.
func (b BinaryData) Encode(w io.Writer) error {
	if err := WriteUint64(w, uint64(b.Len())); err != nil {
		return err
	}
	if _, err := w.Write(b.Bytes()); err != nil {
		return err
	}
	return nil
}

// DecodeBinaryData reads a u64 length prefix and then that many bytes
// directly into owned's unfilled tail, returning a BinaryData backed by a
// Shared split off that region. This is the zero-copy path: no
// per-message heap allocation for the payload, it lands in pool storage.
//
// If owned does not have enough remaining capacity, this returns
// *buffer.OwnedRemaining without consuming the length-prefixed bytes from
// the reader (the length itself has already been consumed).
func DecodeBinaryData(r io.Reader, owned *buffer.Owned) (BinaryData, error) {
	length, err := ReadUint64(r)
	if err != nil {
		return BinaryData{}, err
	}

	if length > uint64(owned.UnfilledCapacity()) {
		return BinaryData{}, &buffer.OwnedRemaining{
			Acquire:  int(length),
			Capacity: owned.UnfilledCapacity(),
		}
	}

	dst := owned.Unfilled()[:length]
	n, err := io.ReadFull(r, dst)
	if err != nil {
		return BinaryData{}, &BinaryDataSizeMismatch{Expected: length, Read: n}
	}

	if err := owned.Fill(int(length)); err != nil {
		return BinaryData{}, err
	}

	region, err := owned.SplitAt(int(length))
	if err != nil {
		return BinaryData{}, err
	}

	shared, err := region.IntoShared()
	if err != nil {
		return BinaryData{}, err
	}

	return BinaryData{shared: shared}, nil
}

// ByteStr is a length-prefixed UTF-8 string payload; identical wire form
// to BinaryData with a string view accessor layered on top.
type ByteStr struct {
	data BinaryData
}

// NewByteStr wraps a caller-owned string for encoding.
func NewByteStr(s string) ByteStr {
	return ByteStr{data: NewBinaryData([]byte(s))}
}

// String returns the UTF-8 view of the payload.
func (s ByteStr) String() string {
	return string(s.data.Bytes())
}

// Len returns the payload length in bytes.
func (s ByteStr) Len() int { return s.data.Len() }

// Bytes returns the raw payload bytes.
func (s ByteStr) Bytes() []byte { return s.data.Bytes() }

// Equal compares string content.
func (s ByteStr) Equal(other ByteStr) bool { return s.data.Equal(other.data) }

// Close releases the underlying pool Block, if pool-backed.
func (s ByteStr) Close() { s.data.Close() }

// Encode writes the length-prefixed payload.
func (s ByteStr) Encode(w io.Writer) error { return s.data.Encode(w) }

// DecodeByteStr is DecodeBinaryData with a ByteStr wrapper.
func DecodeByteStr(r io.Reader, owned *buffer.Owned) (ByteStr, error) {
	data, err := DecodeBinaryData(r, owned)
	if err != nil {
		return ByteStr{}, err
	}
	return ByteStr{data: data}, nil
}
