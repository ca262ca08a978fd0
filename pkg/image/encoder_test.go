package image

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"io"
	"strings"
	"testing"
	"textsteg/internal/bits"
	"textsteg/pkg/config"
	"textsteg/pkg/message"
)

func TestNewImageEncoderErrors(t *testing.T) {
	_, err := NewImageEncoder(nil, config.ImageEncodeConfig{})
	assert.ErrorIs(t, err, ErrImageEmpty)

	_, err = NewImageEncoder(image.NewNRGBA(image.Rect(0, 0, 0, 10)), config.ImageEncodeConfig{})
	assert.ErrorIs(t, err, ErrImageEmpty)

	_, err = NewImageEncoder(generateImage(4, 4, false), config.ImageEncodeConfig{OutputFormat: "jpeg"})
	assert.ErrorIs(t, err, config.ErrUnsupportedOutputFormat)
}

func TestEncodeMessageParityInvariant(t *testing.T) {
	runImageTestsWithAllSizesAndAlphaSettings(t, func(t *testing.T, width, height int, randomizeAlpha bool) {
		img := generateImage(width, height, randomizeAlpha)
		original := cloneImage(img)

		encoder, err := NewImageEncoder(img, config.ImageEncodeConfig{})
		require.NoError(t, err)

		msg := "Hidden in plain sight"
		result, err := encoder.EncodeMessage(msg)
		require.NoError(t, err)

		capacity := message.Capacity(width, height)
		expectedFramed := message.Frame(msg, capacity)
		expectedBits, err := message.ToBits(expectedFramed.Payload)
		require.NoError(t, err)

		assert.Equal(t, capacity, result.Capacity)
		assert.Equal(t, len(expectedBits), result.BitsWritten)
		assert.Equal(t, expectedFramed.Truncated, result.Truncated)
		checkParityAgainstBits(t, original, img, expectedBits)
	})
}

func TestEncodeMessageRejectsWideCharactersWithoutMutation(t *testing.T) {
	img := generateImage(32, 32, false)
	original := cloneImage(img)

	encoder, err := NewImageEncoder(img, config.ImageEncodeConfig{})
	require.NoError(t, err)

	_, err = encoder.EncodeMessage("price: 10€")
	var validationErr *message.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, '€', validationErr.Char)
	assert.Equal(t, 9, validationErr.Position)
	assert.Equal(t, original.Pix, img.Pix)
}

func TestEncodeMessageTruncation(t *testing.T) {
	// 10x10 pixels hold 37 characters, 33 of them for the message
	img := generateImage(10, 10, false)
	encoder, err := NewImageEncoder(img, config.ImageEncodeConfig{})
	require.NoError(t, err)

	msg := strings.Repeat("abcdefghij", 5)
	result, err := encoder.EncodeMessage(msg)
	require.NoError(t, err)
	assert.True(t, result.Truncated)
	assert.True(t, result.TerminatorStored)
	assert.Equal(t, 37, result.Capacity)
	assert.Equal(t, 33, result.MessageLength)
	assert.Equal(t, 37*8, result.BitsWritten)

	decoder, err := NewImageDecoder(img)
	require.NoError(t, err)
	raw := message.FromBits(decoder.DecodeBits())
	assert.True(t, strings.HasPrefix(raw, msg[:33]+message.Terminator))

	decoded := decoder.DecodeMessage()
	assert.True(t, decoded.Found)
	assert.Equal(t, msg[:33], decoded.Text)
}

func TestEncodeMessageIntoTwoByTwoImage(t *testing.T) {
	// 12 channels hold a single character, so only the first character of the terminator is stored
	img := generateImage(2, 2, false)
	original := cloneImage(img)

	encoder, err := NewImageEncoder(img, config.ImageEncodeConfig{})
	require.NoError(t, err)

	result, err := encoder.EncodeMessage("A")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Capacity)
	assert.Equal(t, 0, result.MessageLength)
	assert.True(t, result.Truncated)
	assert.False(t, result.TerminatorStored)
	assert.Equal(t, 8, result.BitsWritten)

	checkParityAgainstBits(t, original, img, bits.FromBytes([]byte("S")))

	decoder, err := NewImageDecoder(img)
	require.NoError(t, err)
	decoded := decoder.DecodeMessage()
	assert.False(t, decoded.Found)
	assert.Equal(t, "S", decoded.Text)
}

func TestEncodeMessageExactCapacity(t *testing.T) {
	// 8x4 pixels give 96 channels, exactly 12 characters
	img := generateImage(8, 4, true)
	original := cloneImage(img)

	encoder, err := NewImageEncoder(img, config.ImageEncodeConfig{})
	require.NoError(t, err)

	result, err := encoder.EncodeMessage("12345678")
	require.NoError(t, err)
	assert.False(t, result.Truncated)
	assert.True(t, result.TerminatorStored)
	assert.Equal(t, 12, result.Capacity)
	assert.Equal(t, 96, result.BitsWritten)
	checkParityAgainstBits(t, original, img, bits.FromBytes([]byte("12345678STOP")))

	decoder, err := NewImageDecoder(img)
	require.NoError(t, err)
	assert.Equal(t, "12345678", decoder.DecodeMessage().Text)
}

func TestEncodeStatsResetPerMessage(t *testing.T) {
	encoder, err := NewImageEncoder(generateImage(100, 100, false), config.ImageEncodeConfig{})
	require.NoError(t, err)

	require.NoError(t, encoder.WriteEncodedImage(io.Discard))
	_, err = encoder.EncodeMessage("stats")
	require.NoError(t, err)
	assert.Zero(t, encoder.Stats().OutputImageEncoding)
}
