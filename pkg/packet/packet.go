// Package packet ties the deque, kv, and system message families
// together into a single framed wire protocol: a Packet is any message
// type carrying a Header, and decoding proceeds in two phases so a
// caller holding a too-small buffer can retry without re-reading the
// header it already consumed.
package packet

import (
	"io"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/deque"
	"github.com/nyanzoo/necronomicon/pkg/header"
	"github.com/nyanzoo/necronomicon/pkg/kv"
	"github.com/nyanzoo/necronomicon/pkg/system"
)

// Packet is any message in the protocol: every deque, kv, and system
// request/ack type satisfies this by having a Header, an Encode, and a
// Close to release any pool-backed fields.
type Packet interface {
	Header() header.Header
	Encode(w io.Writer) error
	Close()
}

// PartialDecode dispatches on h.Kind to decode the body that follows an
// already-consumed Header, landing any pool-backed fields in owned.
func PartialDecode(h header.Header, r io.Reader, owned *buffer.Owned) (Packet, error) {
	switch h.Kind {
	case header.Enqueue:
		return deque.DecodeEnqueuePartial(h, r, owned)
	case header.EnqueueAck:
		return deque.DecodeEnqueueAckPartial(h, r, owned)
	case header.Dequeue:
		return deque.DecodeDequeuePartial(h, r, owned)
	case header.DequeueAck:
		return deque.DecodeDequeueAckPartial(h, r, owned)
	case header.Peek:
		return deque.DecodePeekPartial(h, r, owned)
	case header.PeekAck:
		return deque.DecodePeekAckPartial(h, r, owned)
	case header.Len:
		return deque.DecodeLenPartial(h, r, owned)
	case header.LenAck:
		return deque.DecodeLenAckPartial(h, r, owned)
	case header.CreateQueue:
		return deque.DecodeCreateQueuePartial(h, r, owned)
	case header.CreateQueueAck:
		return deque.DecodeCreateQueueAckPartial(h, r, owned)
	case header.DeleteQueue:
		return deque.DecodeDeleteQueuePartial(h, r, owned)
	case header.DeleteQueueAck:
		return deque.DecodeDeleteQueueAckPartial(h, r, owned)

	case header.Put:
		return kv.DecodePutPartial(h, r, owned)
	case header.PutAck:
		return kv.DecodePutAckPartial(h, r, owned)
	case header.Get:
		return kv.DecodeGetPartial(h, r, owned)
	case header.GetAck:
		return kv.DecodeGetAckPartial(h, r, owned)
	case header.KVDelete:
		return kv.DecodeDeletePartial(h, r, owned)
	case header.KVDeleteAck:
		return kv.DecodeDeleteAckPartial(h, r, owned)

	case header.Report:
		return system.DecodeReportPartial(h, r, owned)
	case header.ReportAck:
		return system.DecodeReportAckPartial(h, r, owned)
	case header.Join:
		return system.DecodeJoinPartial(h, r, owned)
	case header.JoinAck:
		return system.DecodeJoinAckPartial(h, r, owned)
	case header.Transfer:
		return system.DecodeTransferPartial(h, r, owned)
	case header.TransferAck:
		return system.DecodeTransferAckPartial(h, r, owned)
	case header.Ping:
		return system.DecodePingPartial(h, r, owned)
	case header.PingAck:
		return system.DecodePingAckPartial(h, r, owned)

	default:
		return nil, &UnknownPacketKind{Kind: h.Kind}
	}
}

// FullDecode reads a Header (unless previousHeader is supplied, for a
// retry after a BufferTooSmallForPacketDecode) and, if owned has enough
// remaining capacity for the declared body, decodes it. Otherwise it
// returns BufferTooSmallForPacketDecode without touching owned, so a
// caller can acquire a larger buffer and retry by passing the same header
// back in as previousHeader -- the header bytes are consumed exactly
// once regardless of how many retries occur.
func FullDecode(r io.Reader, owned *buffer.Owned, previousHeader *header.Header) (Packet, error) {
	h := header.Header{}
	if previousHeader != nil {
		h = *previousHeader
	} else {
		decoded, err := header.Decode(r)
		if err != nil {
			return nil, err
		}
		h = decoded
	}

	if h.Len > uint64(owned.UnfilledCapacity()) {
		return nil, &BufferTooSmallForPacketDecode{
			Header:   h,
			Size:     h.Len,
			Capacity: owned.UnfilledCapacity(),
		}
	}

	return PartialDecode(h, r, owned)
}
