package image

import (
	"bytes"
	"github.com/disintegration/gift"
	"github.com/rwcarlsen/goexif/exif"
	"image"
)

const orientationNormal = 1

// orientationFilters turn an image stored with the given EXIF orientation upright. gift rotates counter-clockwise
var orientationFilters = map[int]gift.Filter{
	2: gift.FlipHorizontal(),
	3: gift.Rotate180(),
	4: gift.FlipVertical(),
	5: gift.Transpose(),
	6: gift.Rotate270(),
	7: gift.Transverse(),
	8: gift.Rotate90(),
}

// readOrientation returns the EXIF orientation of an encoded image, orientationNormal when there is none
func readOrientation(data []byte) int {
	exifData, err := exif.Decode(bytes.NewReader(data))
	if err != nil {
		return orientationNormal
	}
	tag, err := exifData.Get(exif.Orientation)
	if err != nil {
		return orientationNormal
	}
	orientation, err := tag.Int(0)
	if err != nil {
		return orientationNormal
	}
	return orientation
}

func applyOrientation(img image.Image, orientation int) image.Image {
	filter, found := orientationFilters[orientation]
	if !found {
		return img
	}

	g := gift.New(filter)
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}
