package system

import (
	"io"

	"github.com/google/uuid"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/header"
	"github.com/nyanzoo/necronomicon/pkg/response"
)

// Report informs the control plane of a node's current chain Position.
type Report struct {
	header   header.Header
	position Position
}

// NewReport builds a Report with header.Len computed from the encoded
// size of Position.
func NewReport(version uint8, id uuid.UUID, position Position) (Report, error) {
	n, err := encodedLen(position.Encode)
	if err != nil {
		return Report{}, err
	}
	h := header.New(header.Report, version, id)
	h.Len = uint64(n)
	return Report{header: h, position: position}, nil
}

// Header returns the frame header.
func (r Report) Header() header.Header { return r.header }

// Position returns the reported chain position.
func (r Report) Position() Position { return r.position }

// Ack builds a successful ReportAck preserving version and uuid.
func (r Report) Ack() ReportAck {
	return ReportAck{
		header:   header.New(header.ReportAck, r.header.Version, r.header.UUID),
		response: response.Success(),
	}
}

// Nack builds a failed ReportAck preserving version and uuid.
func (r Report) Nack(code response.Code, reason string) ReportAck {
	return ReportAck{
		header:   header.New(header.ReportAck, r.header.Version, r.header.UUID),
		response: response.Fail(code, reason),
	}
}

// Close releases any pool Blocks backing Position's address fields.
func (r Report) Close() { r.position.Close() }

// Encode writes the header then the Position body.
func (r Report) Encode(w io.Writer) error {
	if err := r.header.Encode(w); err != nil {
		return err
	}
	return r.position.Encode(w)
}

// DecodeReportPartial decodes the Report body given its already-consumed
// header.
func DecodeReportPartial(h header.Header, r io.Reader, owned *buffer.Owned) (Report, error) {
	position, err := DecodePosition(r, owned)
	if err != nil {
		return Report{}, err
	}
	return Report{header: h, position: position}, nil
}

// ReportAck is the ack to a Report.
type ReportAck struct {
	header   header.Header
	response response.Response
}

// Header returns the frame header.
func (a ReportAck) Header() header.Header { return a.header }

// Response returns the carried response.
func (a ReportAck) Response() response.Response { return a.response }

// Close releases the pool Block backing Response.Reason, if any.
func (a ReportAck) Close() { a.response.Close() }

// Encode writes the header then the Response body.
func (a ReportAck) Encode(w io.Writer) error {
	if err := a.header.Encode(w); err != nil {
		return err
	}
	return a.response.Encode(w)
}

// DecodeReportAckPartial decodes the ReportAck body given its
// already-consumed header.
func DecodeReportAckPartial(h header.Header, r io.Reader, owned *buffer.Owned) (ReportAck, error) {
	resp, err := response.DecodePartial(r, owned)
	if err != nil {
		return ReportAck{}, err
	}
	return ReportAck{header: h, response: resp}, nil
}

// encodedLen runs encode against a byte-counting sink to compute the
// body's exact wire size for Header.Len, per invariant I1.
func encodedLen(encode func(io.Writer) error) (int, error) {
	var counter countingWriter
	if err := encode(&counter); err != nil {
		return 0, err
	}
	return counter.n, nil
}

type countingWriter struct{ n int }

func (c *countingWriter) Write(p []byte) (int, error) {
	c.n += len(p)
	return len(p), nil
}
