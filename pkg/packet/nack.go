package packet

import (
	"github.com/nyanzoo/necronomicon/pkg/deque"
	"github.com/nyanzoo/necronomicon/pkg/kv"
	"github.com/nyanzoo/necronomicon/pkg/response"
	"github.com/nyanzoo/necronomicon/pkg/system"
)

// Nack builds the failure ack for a request Packet, preserving its
// header's version and uuid per invariant I4. It returns NoNackForAck for
// any ack-variant Packet and for Ping, which always acks SUCCESS.
func Nack(p Packet, code response.Code, reason string) (Packet, error) {
	switch v := p.(type) {
	case deque.Enqueue:
		return v.Nack(code, reason), nil
	case deque.Dequeue:
		return v.Nack(code, reason), nil
	case deque.Peek:
		return v.Nack(code, reason), nil
	case deque.Len:
		return v.Nack(code, reason), nil
	case deque.CreateQueue:
		return v.Nack(code, reason), nil
	case deque.DeleteQueue:
		return v.Nack(code, reason), nil

	case kv.Put:
		return v.Nack(code, reason), nil
	case kv.Get:
		return v.Nack(code, reason), nil
	case kv.Delete:
		return v.Nack(code, reason), nil

	case system.Report:
		return v.Nack(code, reason), nil
	case system.Join:
		return v.Nack(code, reason), nil
	case system.Transfer:
		return v.Nack(code, reason), nil

	default:
		return nil, &NoNackForAck{Kind: p.Header().Kind}
	}
}
