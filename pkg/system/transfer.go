package system

import (
	"io"

	"github.com/google/uuid"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/header"
	"github.com/nyanzoo/necronomicon/pkg/response"
	"github.com/nyanzoo/necronomicon/pkg/wire"
)

// Transfer ships a chunk of a single node's state to a new chain member
// during recovery, at the given byte offset.
type Transfer struct {
	header  header.Header
	path    wire.ByteStr
	offset  uint64
	content wire.BinaryData
}

// NewTransfer builds a Transfer with header.Len computed from the encoded
// size of its payload.
func NewTransfer(version uint8, id uuid.UUID, path string, offset uint64, content []byte) (Transfer, error) {
	t := Transfer{path: wire.NewByteStr(path), offset: offset, content: wire.NewBinaryData(content)}
	n, err := encodedLen(t.encodeBody)
	if err != nil {
		return Transfer{}, err
	}
	h := header.New(header.Transfer, version, id)
	h.Len = uint64(n)
	t.header = h
	return t, nil
}

// Header returns the frame header.
func (t Transfer) Header() header.Header { return t.header }

// Path returns the target node's identifying path.
func (t Transfer) Path() wire.ByteStr { return t.path }

// Offset returns the byte offset of Content within the target's state.
func (t Transfer) Offset() uint64 { return t.offset }

// Content returns the transferred chunk.
func (t Transfer) Content() wire.BinaryData { return t.content }

// Ack builds a successful TransferAck preserving version and uuid.
func (t Transfer) Ack() TransferAck {
	return TransferAck{
		header:   header.New(header.TransferAck, t.header.Version, t.header.UUID),
		response: response.Success(),
	}
}

// Nack builds a failed TransferAck preserving version and uuid.
func (t Transfer) Nack(code response.Code, reason string) TransferAck {
	return TransferAck{
		header:   header.New(header.TransferAck, t.header.Version, t.header.UUID),
		response: response.Fail(code, reason),
	}
}

// Close releases any pool Blocks backing Path and Content.
func (t Transfer) Close() {
	t.path.Close()
	t.content.Close()
}

func (t Transfer) encodeBody(w io.Writer) error {
	if err := t.path.Encode(w); err != nil {
		return err
	}
	if err := wire.WriteUint64(w, t.offset); err != nil {
		return err
	}
	return t.content.Encode(w)
}

// Encode writes the header then the payload.
func (t Transfer) Encode(w io.Writer) error {
	if err := t.header.Encode(w); err != nil {
		return err
	}
	return t.encodeBody(w)
}

// DecodeTransferPartial decodes the Transfer body given its
// already-consumed header.
func DecodeTransferPartial(h header.Header, r io.Reader, owned *buffer.Owned) (Transfer, error) {
	path, err := wire.DecodeByteStr(r, owned)
	if err != nil {
		return Transfer{}, err
	}
	offset, err := wire.ReadUint64(r)
	if err != nil {
		path.Close()
		return Transfer{}, err
	}
	content, err := wire.DecodeBinaryData(r, owned)
	if err != nil {
		path.Close()
		return Transfer{}, err
	}
	return Transfer{header: h, path: path, offset: offset, content: content}, nil
}

// TransferAck is the ack to a Transfer.
type TransferAck struct {
	header   header.Header
	response response.Response
}

// Header returns the frame header.
func (a TransferAck) Header() header.Header { return a.header }

// Response returns the carried response.
func (a TransferAck) Response() response.Response { return a.response }

// Close releases the pool Block backing Response.Reason, if any.
func (a TransferAck) Close() { a.response.Close() }

// Encode writes the header then the Response body.
func (a TransferAck) Encode(w io.Writer) error {
	if err := a.header.Encode(w); err != nil {
		return err
	}
	return a.response.Encode(w)
}

// DecodeTransferAckPartial decodes the TransferAck body given its
// already-consumed header.
func DecodeTransferAckPartial(h header.Header, r io.Reader, owned *buffer.Owned) (TransferAck, error) {
	resp, err := response.DecodePartial(r, owned)
	if err != nil {
		return TransferAck{}, err
	}
	return TransferAck{header: h, response: resp}, nil
}
