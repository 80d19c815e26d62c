// Package response implements the universal ack payload: a status code
// plus an optional human-readable reason string, carried by every Ack.
package response

import (
	"io"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/wire"
)

// Response is {code, reason}, carried by every ack. Wire form: code byte
// then an Option<ByteStr> reason (presence byte, then body if present).
type Response struct {
	Code   Code
	Reason *wire.ByteStr
}

// Success returns the canonical {SUCCESS, None} response.
func Success() Response {
	return Response{Code: SUCCESS}
}

// Fail returns a response carrying a failure code and an optional reason
// string.
func Fail(code Code, reason string) Response {
	r := Response{Code: code}
	if reason != "" {
		bs := wire.NewByteStr(reason)
		r.Reason = &bs
	}
	return r
}

// Encode writes the code byte then the optional reason.
func (r Response) Encode(w io.Writer) error {
	if err := wire.WriteUint8(w, uint8(r.Code)); err != nil {
		return err
	}
	return wire.WriteOption(w, r.Reason, func(w io.Writer, v wire.ByteStr) error {
		return v.Encode(w)
	})
}

// DecodePartial decodes a Response given an Owned to land the optional
// reason's bytes in.
func DecodePartial(r io.Reader, owned *buffer.Owned) (Response, error) {
	code, err := wire.ReadUint8(r)
	if err != nil {
		return Response{}, err
	}
	reason, err := wire.ReadOption(r, func(r io.Reader) (wire.ByteStr, error) {
		return wire.DecodeByteStr(r, owned)
	})
	if err != nil {
		return Response{}, err
	}
	return Response{Code: Code(code), Reason: reason}, nil
}

// Close releases the pool Block backing Reason, if present and
// pool-backed.
func (r Response) Close() {
	if r.Reason != nil {
		r.Reason.Close()
	}
}
