package image

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"image/color"
	"testing"
	"textsteg/pkg/config"
	"textsteg/pkg/message"
)

func TestNewImageDecoderErrors(t *testing.T) {
	_, err := NewImageDecoder(nil)
	assert.ErrorIs(t, err, ErrImageEmpty)

	_, err = NewImageDecoder(image.NewNRGBA(image.Rect(0, 0, 5, 0)))
	assert.ErrorIs(t, err, ErrImageEmpty)
}

func TestDecodeMessageWithoutTerminator(t *testing.T) {
	// Every channel even decodes to NUL characters only
	img := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}

	decoder, err := NewImageDecoder(img)
	require.NoError(t, err)

	decoded := decoder.DecodeMessage()
	assert.False(t, decoded.Found)
	assert.Equal(t, string(make([]byte, message.Capacity(8, 8))), decoded.Text)
}

func TestDecodeBitsReadsWholeImage(t *testing.T) {
	img := generateImage(13, 7, false)
	encoder, err := NewImageEncoder(img, config.ImageEncodeConfig{})
	require.NoError(t, err)
	_, err = encoder.EncodeMessage("x")
	require.NoError(t, err)

	decoder, err := NewImageDecoder(img)
	require.NoError(t, err)
	assert.Len(t, decoder.DecodeBits(), 13*7*message.ChannelsPerPixel)
}

func TestDecodeMessageStopsAtFirstTerminator(t *testing.T) {
	img := generateImage(40, 40, false)
	encoder, err := NewImageEncoder(img, config.ImageEncodeConfig{})
	require.NoError(t, err)
	_, err = encoder.EncodeMessage("first")
	require.NoError(t, err)

	decoder, err := NewImageDecoder(img)
	require.NoError(t, err)
	decoded := decoder.DecodeMessage()
	assert.True(t, decoded.Found)
	assert.Equal(t, "first", decoded.Text)
}
