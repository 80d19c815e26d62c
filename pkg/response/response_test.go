package response_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyanzoo/necronomicon/pkg/buffer"
	"github.com/nyanzoo/necronomicon/pkg/response"
)

func TestResponseSuccessRoundTrip(t *testing.T) {
	p := buffer.NewPool(buffer.Config{BlockSize: 64, Capacity: 1})
	owned, err := p.Acquire("test")
	require.NoError(t, err)
	defer owned.Close()

	var buf bytes.Buffer
	require.NoError(t, response.Success().Encode(&buf))
	assert.Equal(t, 2, buf.Len()) // code byte + absent-reason presence byte

	decoded, err := response.DecodePartial(&buf, owned)
	require.NoError(t, err)
	assert.Equal(t, response.SUCCESS, decoded.Code)
	assert.Nil(t, decoded.Reason)
}

func TestResponseFailWithReasonRoundTrip(t *testing.T) {
	p := buffer.NewPool(buffer.Config{BlockSize: 64, Capacity: 1})
	owned, err := p.Acquire("test")
	require.NoError(t, err)
	defer owned.Close()

	var buf bytes.Buffer
	require.NoError(t, response.Fail(response.KEY_DOES_NOT_EXIST, "no such key").Encode(&buf))

	decoded, err := response.DecodePartial(&buf, owned)
	require.NoError(t, err)
	assert.Equal(t, response.KEY_DOES_NOT_EXIST, decoded.Code)
	require.NotNil(t, decoded.Reason)
	assert.Equal(t, "no such key", decoded.Reason.String())
}
