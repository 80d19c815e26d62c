// Package wire implements the primitive binary codec this protocol's
// framing and message bodies are built from: big-endian fixed-width
// integers, presence-tagged optionals, length-prefixed vectors, and the
// pool-backed length-prefixed byte/string payloads (BinaryData, ByteStr).
//
// There is no 4-byte alignment padding here, unlike the RFC 4506 XDR
// convention this package's shape is otherwise modeled on — the wire
// format this package serializes has no padding requirement, so adding it
// would silently break interoperability with anything else that reads
// these frames.
package wire

import (
	"encoding/binary"
	"fmt"
	"io"
)

// WriteUint8 writes a single byte.
func WriteUint8(w io.Writer, v uint8) error {
	if _, err := w.Write([]byte{v}); err != nil {
		return fmt.Errorf("write uint8: %w", err)
	}
	return nil
}

// ReadUint8 reads a single byte.
func ReadUint8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("read uint8: %w", err)
	}
	return buf[0], nil
}

// WriteUint16 writes a big-endian uint16.
func WriteUint16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("write uint16: %w", err)
	}
	return nil
}

// ReadUint16 reads a big-endian uint16.
func ReadUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("read uint16: %w", err)
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

// WriteUint32 writes a big-endian uint32.
func WriteUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("write uint32: %w", err)
	}
	return nil
}

// ReadUint32 reads a big-endian uint32.
func ReadUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("read uint32: %w", err)
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

// WriteUint64 writes a big-endian uint64. This is also the wire form for
// usize fields (len prefixes, Vec lengths): the spec fixes usize at 8
// bytes on the wire regardless of host pointer width.
func WriteUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return fmt.Errorf("write uint64: %w", err)
	}
	return nil
}

// ReadUint64 reads a big-endian uint64.
func ReadUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, fmt.Errorf("read uint64: %w", err)
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// Uint128 is a 128-bit big-endian value with no native Go integer
// counterpart; used for the wire uuid/instance fields that aren't modeled
// as uuid.UUID.
type Uint128 [16]byte

// WriteUint128 writes the 16 octets of v in wire (big-endian) order.
func WriteUint128(w io.Writer, v Uint128) error {
	if _, err := w.Write(v[:]); err != nil {
		return fmt.Errorf("write uint128: %w", err)
	}
	return nil
}

// ReadUint128 reads 16 octets into a Uint128.
func ReadUint128(r io.Reader) (Uint128, error) {
	var v Uint128
	if _, err := io.ReadFull(r, v[:]); err != nil {
		return v, fmt.Errorf("read uint128: %w", err)
	}
	return v, nil
}

// WriteInt8 writes a signed byte.
func WriteInt8(w io.Writer, v int8) error { return WriteUint8(w, uint8(v)) }

// ReadInt8 reads a signed byte.
func ReadInt8(r io.Reader) (int8, error) {
	v, err := ReadUint8(r)
	return int8(v), err
}

// WriteInt16 writes a big-endian signed 16-bit integer.
func WriteInt16(w io.Writer, v int16) error { return WriteUint16(w, uint16(v)) }

// ReadInt16 reads a big-endian signed 16-bit integer.
func ReadInt16(r io.Reader) (int16, error) {
	v, err := ReadUint16(r)
	return int16(v), err
}

// WriteInt32 writes a big-endian signed 32-bit integer.
func WriteInt32(w io.Writer, v int32) error { return WriteUint32(w, uint32(v)) }

// ReadInt32 reads a big-endian signed 32-bit integer.
func ReadInt32(r io.Reader) (int32, error) {
	v, err := ReadUint32(r)
	return int32(v), err
}

// WriteInt64 writes a big-endian signed 64-bit integer.
func WriteInt64(w io.Writer, v int64) error { return WriteUint64(w, uint64(v)) }

// ReadInt64 reads a big-endian signed 64-bit integer.
func ReadInt64(r io.Reader) (int64, error) {
	v, err := ReadUint64(r)
	return int64(v), err
}

// WriteBool writes a single presence/truth byte: 0 for false, 1 for true.
func WriteBool(w io.Writer, v bool) error {
	var b uint8
	if v {
		b = 1
	}
	return WriteUint8(w, b)
}

// ReadBool reads a single byte; any nonzero value is true.
func ReadBool(r io.Reader) (bool, error) {
	v, err := ReadUint8(r)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}

// WriteOptionPresence writes the presence byte for an Option<T>: the
// caller is responsible for writing the body afterward when present.
func WriteOptionPresence(w io.Writer, present bool) error {
	return WriteBool(w, present)
}

// ReadOptionPresence reads the presence byte for an Option<T>.
func ReadOptionPresence(r io.Reader) (bool, error) {
	return ReadBool(r)
}

// WriteVecLen writes a Vec<T>'s element count as the fixed 8-byte length
// prefix.
func WriteVecLen(w io.Writer, n int) error {
	return WriteUint64(w, uint64(n))
}

// ReadVecLen reads a Vec<T>'s element count.
func ReadVecLen(r io.Reader) (uint64, error) {
	return ReadUint64(r)
}
