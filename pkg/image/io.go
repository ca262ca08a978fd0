package image

import (
	"bytes"
	"errors"
	"golang.org/x/image/bmp"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"textsteg/pkg/config"
)

var (
	ErrImageEmpty = errors.New("image has no pixels")
)

// ReadImage decodes a png, jpeg, gif or bmp image and converts it to NRGBA. Lossy inputs are fine as carriers, but
// the encoded output must be written in a lossless format. JPEGs are turned upright according to their EXIF
// orientation, so the output looks the way the carrier was displayed
func ReadImage(r io.Reader) (*image.NRGBA, string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, "", err
	}

	srcImage, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", err
	}
	if format == "jpeg" {
		srcImage = applyOrientation(srcImage, readOrientation(data))
	}
	return ToNRGBA(srcImage), format, nil
}

// ReadImageDimensions reads only the image header, which is all the capacity of an image depends on
func ReadImageDimensions(r io.Reader) (width, height int, format string, err error) {
	imgConfig, format, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, "", err
	}
	return imgConfig.Width, imgConfig.Height, format, nil
}

// ToNRGBA returns a copy of img as NRGBA, with bounds starting at the origin
func ToNRGBA(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	// Going through draw would premultiply and then unpremultiply translucent pixels, changing their values
	if src, ok := img.(*image.NRGBA); ok {
		rowLen := bounds.Dx() * 4
		for y := 0; y < bounds.Dy(); y++ {
			srcOffset := src.PixOffset(bounds.Min.X, bounds.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+rowLen], src.Pix[srcOffset:srcOffset+rowLen])
		}
		return dst
	}

	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return dst
}

// WriteImage writes img using the output format and png compression level from iConfig
func WriteImage(w io.Writer, img image.Image, iConfig config.ImageEncodeConfig) error {
	iConfig = iConfig.PopulateUnsetConfigVars()
	if err := iConfig.Validate(); err != nil {
		return err
	}

	switch iConfig.OutputFormat {
	case config.OutputFormatBMP:
		return bmp.Encode(w, img)
	default:
		enc := png.Encoder{CompressionLevel: iConfig.PngCompressionLevel}
		return enc.Encode(w, img)
	}
}
