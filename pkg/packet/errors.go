package packet

import (
	"fmt"

	"github.com/nyanzoo/necronomicon/pkg/header"
)

// BufferTooSmallForPacketDecode is returned by FullDecode when a Header's
// declared body length exceeds the Owned buffer's remaining capacity. The
// header itself has already been consumed; a caller should retry
// FullDecode against a larger Owned, passing Header back in via
// previousHeader so the header bytes are not read twice.
type BufferTooSmallForPacketDecode struct {
	Header   header.Header
	Size     uint64
	Capacity int
}

func (e *BufferTooSmallForPacketDecode) Error() string {
	return fmt.Sprintf("packet: body of %d bytes for %s exceeds buffer capacity %d", e.Size, e.Header.Kind, e.Capacity)
}

// UnknownPacketKind is returned when a Header carries a Kind byte outside
// every family range, or one this dispatch table has no case for.
type UnknownPacketKind struct {
	Kind header.Kind
}

func (e *UnknownPacketKind) Error() string {
	return fmt.Sprintf("packet: no decoder for kind %s", e.Kind)
}

// NoNackForAck is returned by Nack when called on a Packet that already
// is an ack variant (acks don't themselves get nacked) or on Ping, which
// has no failure response.
type NoNackForAck struct {
	Kind header.Kind
}

func (e *NoNackForAck) Error() string {
	return fmt.Sprintf("packet: %s has no nack", e.Kind)
}
