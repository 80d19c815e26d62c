package packet_test

import (
	"bytes"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/deque"
	"github.com/nyanzoo/necronomicon/pkg/header"
	"github.com/nyanzoo/necronomicon/pkg/kv"
	"github.com/nyanzoo/necronomicon/pkg/packet"
	"github.com/nyanzoo/necronomicon/pkg/response"
	"github.com/nyanzoo/necronomicon/pkg/system"
)

func TestFullDecodeEnqueueRoundTrip(t *testing.T) {
	id := uuid.New()
	enq, err := deque.NewEnqueue(1, id, "hello", []byte{1, 2, 3})
	require.NoError(t, err)
	defer enq.Close()

	var buf bytes.Buffer
	require.NoError(t, enq.Encode(&buf))

	pool := buffer.NewPool(buffer.Config{BlockSize: 4096, Capacity: 1})
	defer pool.Close()
	owned, err := pool.Acquire("test")
	require.NoError(t, err)
	defer owned.Close()

	decoded, err := packet.FullDecode(&buf, owned, nil)
	require.NoError(t, err)
	defer decoded.Close()

	enqDecoded, ok := decoded.(deque.Enqueue)
	require.True(t, ok)
	require.Equal(t, "hello", enqDecoded.Path().String())
	require.Equal(t, []byte{1, 2, 3}, enqDecoded.Value().Bytes())
}

// TestFullDecodeBufferTooSmallRetry covers the S3 scenario: a Put with a
// 900-byte value fails FullDecode against a 64-byte block, reports
// BufferTooSmallForPacketDecode without consuming the header twice, and
// then succeeds when retried with a 4096-byte block and the header
// passed back in as previousHeader.
func TestFullDecodeBufferTooSmallRetry(t *testing.T) {
	id := uuid.New()
	value := bytes.Repeat([]byte{0xCD}, 900)
	put, err := kv.NewPut(1, id, []byte("key1"), value)
	require.NoError(t, err)
	defer put.Close()

	var buf bytes.Buffer
	require.NoError(t, put.Encode(&buf))
	encoded := buf.Bytes()

	smallPool := buffer.NewPool(buffer.Config{BlockSize: 64, Capacity: 1})
	defer smallPool.Close()
	small, err := smallPool.Acquire("test")
	require.NoError(t, err)

	r := bytes.NewReader(encoded)
	_, err = packet.FullDecode(r, small, nil)
	var tooSmall *packet.BufferTooSmallForPacketDecode
	require.ErrorAs(t, err, &tooSmall)
	require.Equal(t, header.Put, tooSmall.Header.Kind)
	small.Close()

	bigPool := buffer.NewPool(buffer.Config{BlockSize: 4096, Capacity: 1})
	defer bigPool.Close()
	big, err := bigPool.Acquire("test")
	require.NoError(t, err)
	defer big.Close()

	decoded, err := packet.FullDecode(r, big, &tooSmall.Header)
	require.NoError(t, err)
	defer decoded.Close()

	putDecoded, ok := decoded.(kv.Put)
	require.True(t, ok)
	require.Equal(t, value, putDecoded.Value().Bytes())
}

// TestPoolConservationAfterDecodeError covers the S4 scenario: a decode
// failure must not leak the acquired Block back out of the Pool.
func TestPoolConservationAfterDecodeError(t *testing.T) {
	pool := buffer.NewPool(buffer.Config{BlockSize: 8, Capacity: 1})
	defer pool.Close()

	id := uuid.New()
	put, err := kv.NewPut(1, id, []byte("k"), bytes.Repeat([]byte{1}, 200))
	require.NoError(t, err)
	defer put.Close()

	var buf bytes.Buffer
	require.NoError(t, put.Encode(&buf))

	owned, err := pool.Acquire("test")
	require.NoError(t, err)
	_, err = packet.FullDecode(&buf, owned, nil)
	require.Error(t, err)
	owned.Close()

	again, err := pool.Acquire("test")
	require.NoError(t, err)
	again.Close()
}

// TestObserverPositionRoundTripAndBadTag covers the S5 scenario.
func TestObserverPositionRoundTripAndBadTag(t *testing.T) {
	pool := buffer.NewPool(buffer.Config{BlockSize: 4096, Capacity: 1})
	defer pool.Close()

	chain := []system.Role{
		system.NewBackendRole("backend-1"),
		system.NewFrontendRole("frontend-1"),
		system.NewObserverRole(),
	}
	pos := system.NewObserverPosition(chain)
	report, err := system.NewReport(1, uuid.New(), pos)
	require.NoError(t, err)
	defer report.Close()

	var buf bytes.Buffer
	require.NoError(t, report.Encode(&buf))

	owned, err := pool.Acquire("test")
	require.NoError(t, err)
	defer owned.Close()
	decoded, err := packet.FullDecode(&buf, owned, nil)
	require.NoError(t, err)
	defer decoded.Close()

	reportDecoded, ok := decoded.(system.Report)
	require.True(t, ok)
	require.True(t, pos.Equal(reportDecoded.Position()))

	badBuf := bytes.NewBuffer([]byte{0x00})
	owned2, err := pool.Acquire("test")
	require.NoError(t, err)
	defer owned2.Close()
	_, err = system.DecodePosition(badBuf, owned2)
	var badPos *system.SystemBadPosition
	require.ErrorAs(t, err, &badPos)
	require.Equal(t, uint8(0), badPos.Value)
}

// TestJoinSuccessorLostMutation covers the S6 scenario: flipping
// successor_lost from false to true produces a Join that otherwise
// compares equal on role and instance.
func TestJoinSuccessorLostMutation(t *testing.T) {
	id := uuid.New()
	role := system.NewBackendRole("node-a")
	var instance [16]byte
	instance[0] = 0x01

	notLost, err := system.NewJoin(1, id, role, instance, false)
	require.NoError(t, err)
	defer notLost.Close()

	lost, err := system.NewJoin(1, id, role, instance, true)
	require.NoError(t, err)
	defer lost.Close()

	require.NotEqual(t, notLost.SuccessorLost(), lost.SuccessorLost())
	require.True(t, notLost.Role().Equal(lost.Role()))
	require.Equal(t, notLost.Instance(), lost.Instance())
}

func TestNackDispatchForRequestVariants(t *testing.T) {
	id := uuid.New()
	enq, err := deque.NewEnqueue(1, id, "q", []byte("v"))
	require.NoError(t, err)
	defer enq.Close()

	nacked, err := packet.Nack(enq, response.QUEUE_FULL, "full")
	require.NoError(t, err)
	defer nacked.Close()

	ack, ok := nacked.(deque.EnqueueAck)
	require.True(t, ok)
	require.Equal(t, response.QUEUE_FULL, ack.Response().Code)
}

func TestNackRejectsAckVariants(t *testing.T) {
	id := uuid.New()
	enq, err := deque.NewEnqueue(1, id, "q", []byte("v"))
	require.NoError(t, err)
	defer enq.Close()
	ack := enq.Ack()
	defer ack.Close()

	_, err = packet.Nack(ack, response.QUEUE_FULL, "full")
	var noNack *packet.NoNackForAck
	require.ErrorAs(t, err, &noNack)
}

func TestNackRejectsPing(t *testing.T) {
	ping := system.NewPing(1, uuid.New())
	_, err := packet.Nack(ping, response.INTERNAL_ERROR, "")
	var noNack *packet.NoNackForAck
	require.ErrorAs(t, err, &noNack)
}
