package image

import (
	"bytes"
	"encoding/binary"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"
)

var (
	pixelA = color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	pixelB = color.NRGBA{R: 40, G: 50, B: 60, A: 255}
	pixelC = color.NRGBA{R: 70, G: 80, B: 90, A: 255}
	pixelD = color.NRGBA{R: 100, G: 110, B: 120, A: 255}
)

func TestApplyOrientation(t *testing.T) {
	// A B
	// C D
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, pixelA)
	src.SetNRGBA(1, 0, pixelB)
	src.SetNRGBA(0, 1, pixelC)
	src.SetNRGBA(1, 1, pixelD)

	tests := []struct {
		orientation int
		exp         [4]color.NRGBA
	}{
		{1, [4]color.NRGBA{pixelA, pixelB, pixelC, pixelD}},
		{2, [4]color.NRGBA{pixelB, pixelA, pixelD, pixelC}},
		{3, [4]color.NRGBA{pixelD, pixelC, pixelB, pixelA}},
		{4, [4]color.NRGBA{pixelC, pixelD, pixelA, pixelB}},
		{5, [4]color.NRGBA{pixelA, pixelC, pixelB, pixelD}},
		{6, [4]color.NRGBA{pixelC, pixelA, pixelD, pixelB}},
		{7, [4]color.NRGBA{pixelD, pixelB, pixelC, pixelA}},
		{8, [4]color.NRGBA{pixelB, pixelD, pixelA, pixelC}},
		{42, [4]color.NRGBA{pixelA, pixelB, pixelC, pixelD}},
	}
	for _, tt := range tests {
		oriented := ToNRGBA(applyOrientation(src, tt.orientation))
		got := [4]color.NRGBA{oriented.NRGBAAt(0, 0), oriented.NRGBAAt(1, 0), oriented.NRGBAAt(0, 1), oriented.NRGBAAt(1, 1)}
		assert.Equal(t, tt.exp, got, "orientation %d", tt.orientation)
	}
}

func TestReadImageAppliesJPEGOrientation(t *testing.T) {
	var plain bytes.Buffer
	require.NoError(t, jpeg.Encode(&plain, generateImage(8, 2, false), nil))

	tests := []struct {
		name      string
		data      []byte
		expBounds image.Rectangle
	}{
		{"no exif", plain.Bytes(), image.Rect(0, 0, 8, 2)},
		{"normal", withExifOrientation(plain.Bytes(), 1), image.Rect(0, 0, 8, 2)},
		{"upside down", withExifOrientation(plain.Bytes(), 3), image.Rect(0, 0, 8, 2)},
		{"rotated clockwise", withExifOrientation(plain.Bytes(), 6), image.Rect(0, 0, 2, 8)},
		{"rotated counter-clockwise", withExifOrientation(plain.Bytes(), 8), image.Rect(0, 0, 2, 8)},
	}
	assert.Equal(t, orientationNormal, readOrientation(plain.Bytes()))
	assert.Equal(t, 6, readOrientation(withExifOrientation(plain.Bytes(), 6)))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, format, err := ReadImage(bytes.NewReader(tt.data))
			require.NoError(t, err)
			assert.Equal(t, "jpeg", format)
			assert.Equal(t, tt.expBounds, img.Bounds())
		})
	}
}

func TestReadImageIgnoresOrientationOfLosslessImages(t *testing.T) {
	src := generateImage(5, 3, true)
	var pngImage bytes.Buffer
	require.NoError(t, png.Encode(&pngImage, src))

	img, _, err := ReadImage(&pngImage)
	require.NoError(t, err)
	assert.Equal(t, src.Pix, img.Pix)
}

// withExifOrientation inserts an APP1 segment holding a single orientation tag right after the JPEG start marker
func withExifOrientation(jpegData []byte, orientation uint16) []byte {
	var tiff bytes.Buffer
	tiff.WriteString("MM\x00\x2a")
	binary.Write(&tiff, binary.BigEndian, uint32(8))      // offset of IFD0
	binary.Write(&tiff, binary.BigEndian, uint16(1))      // number of entries
	binary.Write(&tiff, binary.BigEndian, uint16(0x0112)) // orientation tag
	binary.Write(&tiff, binary.BigEndian, uint16(3))      // SHORT
	binary.Write(&tiff, binary.BigEndian, uint32(1))
	binary.Write(&tiff, binary.BigEndian, orientation)
	binary.Write(&tiff, binary.BigEndian, uint16(0))
	binary.Write(&tiff, binary.BigEndian, uint32(0)) // no next IFD

	payload := append([]byte("Exif\x00\x00"), tiff.Bytes()...)

	var out bytes.Buffer
	out.Write(jpegData[:2])
	out.Write([]byte{0xFF, 0xE1})
	binary.Write(&out, binary.BigEndian, uint16(len(payload)+2))
	out.Write(payload)
	out.Write(jpegData[2:])
	return out.Bytes()
}
