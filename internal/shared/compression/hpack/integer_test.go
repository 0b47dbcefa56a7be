package hpack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeIntegerExampleC11(t *testing.T) {
	value, _, consumed, err := decodeInteger([]byte{0x0a}, 5)
	require.NoError(t, err)
	assert.Equal(t, 10, value)
	assert.Equal(t, 1, consumed)
}

func TestEncodeIntegerExampleC11(t *testing.T) {
	assert.Equal(t, []byte{0x0a}, encodeInteger(10, 5, 0))
}

func TestDecodeIntegerExampleC12(t *testing.T) {
	value, _, consumed, err := decodeInteger([]byte{31, 154, 10}, 5)
	require.NoError(t, err)
	assert.Equal(t, 1337, value)
	assert.Equal(t, 3, consumed)
}

func TestEncodeIntegerExampleC12(t *testing.T) {
	assert.Equal(t, []byte{31, 154, 10}, encodeInteger(1337, 5, 0))
}

func TestDecodeIntegerExampleC13(t *testing.T) {
	value, _, consumed, err := decodeInteger([]byte{42}, 8)
	require.NoError(t, err)
	assert.Equal(t, 42, value)
	assert.Equal(t, 1, consumed)
}

func TestEncodeIntegerExampleC13(t *testing.T) {
	assert.Equal(t, []byte{42}, encodeInteger(42, 8, 0))
}

func TestIntegerRoundTrip(t *testing.T) {
	values := []int{0, 1, 15, 16, 127, 128, 1337, 16383, 16384, 1 << 20}
	for _, prefix := range []int{4, 5, 6, 7} {
		for _, v := range values {
			encoded := encodeInteger(v, prefix, 0)
			decoded, _, consumed, err := decodeInteger(encoded, prefix)
			require.NoError(t, err)
			assert.Equal(t, v, decoded)
			assert.Equal(t, len(encoded), consumed)
		}
	}
}

func TestIntegerFlagsPreserved(t *testing.T) {
	encoded := encodeInteger(5, 7, flagIndexed)
	_, flags, _, err := decodeInteger(encoded, 7)
	require.NoError(t, err)
	assert.Equal(t, flagIndexed, flags)
}

func TestDecodeIntegerTruncated(t *testing.T) {
	_, _, _, err := decodeInteger([]byte{0xff}, 5)
	assert.ErrorIs(t, err, ErrMalformedInteger)
}

func TestDecodeIntegerOverflow(t *testing.T) {
	// An absurdly long continuation run that would overflow past 2^31.
	buf := []byte{0x1f}
	for i := 0; i < 6; i++ {
		buf = append(buf, 0xff)
	}
	buf = append(buf, 0x7f)
	_, _, _, err := decodeInteger(buf, 5)
	assert.ErrorIs(t, err, ErrMalformedInteger)
}
