package kv_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/header"
	"github.com/nyanzoo/necronomicon/pkg/kv"
	"github.com/nyanzoo/necronomicon/pkg/response"
)

func newTestPool(t *testing.T) *buffer.Pool {
	t.Helper()
	p := buffer.NewPool(buffer.Config{BlockSize: 4096, Capacity: 4})
	t.Cleanup(p.Close)
	return p
}

func acquire(t *testing.T, p *buffer.Pool) *buffer.Owned {
	t.Helper()
	o, err := p.Acquire("test")
	require.NoError(t, err)
	return o
}

func TestPutRoundTrip(t *testing.T) {
	p := newTestPool(t)
	id := uuid.New()

	put, err := kv.NewPut(1, id, []byte("key1"), []byte("value1"))
	require.NoError(t, err)
	defer put.Close()

	var buf bytes.Buffer
	require.NoError(t, put.Encode(&buf))

	h, err := header.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, header.Put, h.Kind)

	owned := acquire(t, p)
	defer owned.Close()
	decoded, err := kv.DecodePutPartial(h, &buf, owned)
	require.NoError(t, err)
	defer decoded.Close()

	require.Equal(t, []byte("key1"), decoded.Key().Bytes())
	require.Equal(t, []byte("value1"), decoded.Value().Bytes())
}

func TestPutAckNack(t *testing.T) {
	id := uuid.New()
	put, err := kv.NewPut(1, id, []byte("k"), []byte("v"))
	require.NoError(t, err)
	defer put.Close()

	ack := put.Ack()
	require.Equal(t, header.PutAck, ack.Header().Kind)
	require.Equal(t, response.SUCCESS, ack.Response().Code)
}

// TestGetAckKeyDoesNotExist covers the S2 scenario: a Get for a missing
// key acks with an empty value and code KEY_DOES_NOT_EXIST. The encoded
// body is 3 bytes (1 code byte, 1 absent-reason presence byte, 1
// absent-value presence byte); this test checks the decoded code and
// value, not the body size.
func TestGetAckKeyDoesNotExist(t *testing.T) {
	p := newTestPool(t)
	id := uuid.New()

	get, err := kv.NewGet(1, id, []byte("missing"))
	require.NoError(t, err)
	defer get.Close()

	nack := get.Nack(response.KEY_DOES_NOT_EXIST, "")
	var buf bytes.Buffer
	require.NoError(t, nack.Encode(&buf))

	h, err := header.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, header.GetAck, h.Kind)

	owned := acquire(t, p)
	defer owned.Close()
	decoded, err := kv.DecodeGetAckPartial(h, &buf, owned)
	require.NoError(t, err)
	defer decoded.Close()

	require.Equal(t, response.KEY_DOES_NOT_EXIST, decoded.Response().Code)
	require.Empty(t, decoded.Value().Bytes())
}

func TestGetAckSuccessRoundTrip(t *testing.T) {
	p := newTestPool(t)
	id := uuid.New()

	get, err := kv.NewGet(1, id, []byte("key1"))
	require.NoError(t, err)
	defer get.Close()

	ack := get.Ack([]byte("value1"))
	var buf bytes.Buffer
	require.NoError(t, ack.Encode(&buf))

	h, err := header.Decode(&buf)
	require.NoError(t, err)
	owned := acquire(t, p)
	defer owned.Close()
	decoded, err := kv.DecodeGetAckPartial(h, &buf, owned)
	require.NoError(t, err)
	defer decoded.Close()

	require.Equal(t, response.SUCCESS, decoded.Response().Code)
	require.Equal(t, []byte("value1"), decoded.Value().Bytes())
}

func TestDeleteRoundTrip(t *testing.T) {
	p := newTestPool(t)
	id := uuid.New()

	del, err := kv.NewDelete(1, id, []byte("key1"))
	require.NoError(t, err)
	defer del.Close()

	var buf bytes.Buffer
	require.NoError(t, del.Encode(&buf))

	h, err := header.Decode(&buf)
	require.NoError(t, err)
	require.Equal(t, header.KVDelete, h.Kind)

	owned := acquire(t, p)
	defer owned.Close()
	decoded, err := kv.DecodeDeletePartial(h, &buf, owned)
	require.NoError(t, err)
	defer decoded.Close()
	require.Equal(t, []byte("key1"), decoded.Key().Bytes())
}

// TestPutBufferTooSmallRetry covers the S3 scenario: decoding a Put whose
// value exceeds the Owned buffer's remaining capacity reports
// OwnedRemaining without consuming the pool block, and a retry against a
// larger buffer succeeds.
func TestPutBufferTooSmallRetry(t *testing.T) {
	id := uuid.New()
	value := bytes.Repeat([]byte{0xAB}, 900)
	put, err := kv.NewPut(1, id, []byte("key1"), value)
	require.NoError(t, err)
	defer put.Close()

	var buf bytes.Buffer
	require.NoError(t, put.Encode(&buf))
	encoded := buf.Bytes()

	smallPool := buffer.NewPool(buffer.Config{BlockSize: 64, Capacity: 1})
	defer smallPool.Close()

	r := bytes.NewReader(encoded)
	h, err := header.Decode(r)
	require.NoError(t, err)

	small := acquire(t, smallPool)
	_, err = kv.DecodePutPartial(h, r, small)
	require.Error(t, err)
	small.Close()

	bigPool := buffer.NewPool(buffer.Config{BlockSize: 4096, Capacity: 1})
	defer bigPool.Close()

	r2 := bytes.NewReader(encoded)
	h2, err := header.Decode(r2)
	require.NoError(t, err)
	big := acquire(t, bigPool)
	defer big.Close()
	decoded, err := kv.DecodePutPartial(h2, r2, big)
	require.NoError(t, err)
	defer decoded.Close()
	require.Equal(t, value, decoded.Value().Bytes())
}
