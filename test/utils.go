package test

import (
	"image"
	"image/color"
	"math/rand"
)

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GenerateLatin1Text returns a string of the requested length in characters, every character having a code point
// below 256
func GenerateLatin1Text(numOfChars int) string {
	runes := make([]rune, numOfChars)
	for i := range runes {
		runes[i] = rune(rand.Intn(256))
	}
	return string(runes)
}

// GenerateImage builds an image filled with random channel values. When randomizeAlpha is false every pixel is opaque
func GenerateImage(width, height int, randomizeAlpha bool) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			alpha := uint8(255)
			if randomizeAlpha {
				alpha = randUint8()
			}
			img.SetNRGBA(x, y, color.NRGBA{R: randUint8(), G: randUint8(), B: randUint8(), A: alpha})
		}
	}
	return img
}

func randUint8() uint8 {
	return uint8(rand.Intn(256))
}
