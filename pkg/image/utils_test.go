package image

import (
	"fmt"
	"image"
	"testing"
	"textsteg/test"
)

type testFunc func(t *testing.T, width, height int, randomizeAlpha bool)

var testImageSizes = [][2]int{{1, 1}, {2, 2}, {3, 5}, {16, 9}, {64, 64}, {301, 7}}

func runImageTestsWithAllSizesAndAlphaSettings(t *testing.T, testFunc testFunc) {
	for _, size := range testImageSizes {
		width, height := size[0], size[1]
		t.Run(fmt.Sprintf("%dx%d", width, height), func(t *testing.T) {
			t.Parallel()
			t.Run("opaque", func(t *testing.T) {
				t.Parallel()
				testFunc(t, width, height, false)
			})
			t.Run("translucent", func(t *testing.T) {
				t.Parallel()
				testFunc(t, width, height, true)
			})
		})
	}
}

func cloneImage(img *image.NRGBA) *image.NRGBA {
	clone := *img
	clone.Pix = append([]uint8(nil), img.Pix...)
	return &clone
}

func generateImage(width, height int, randomizeAlpha bool) *image.NRGBA {
	return test.GenerateImage(width, height, randomizeAlpha)
}

func getAlphaLabel(randomizeAlpha bool) string {
	if randomizeAlpha {
		return "translucent"
	}
	return "opaque"
}
