package image

import (
	"fmt"
	"image/png"
	"io"
	"testing"
	"textsteg/pkg/config"
	"textsteg/pkg/message"
	"textsteg/test"
)

const (
	benchImageSize = 2000
)

func BenchmarkEncodeMessage(b *testing.B) {
	for _, randomizeAlpha := range []bool{false, true} {
		img := generateImage(benchImageSize, benchImageSize, randomizeAlpha)
		msg := test.GenerateLatin1Text(message.Capacity(benchImageSize, benchImageSize) - len(message.Terminator))
		b.Run(getAlphaLabel(randomizeAlpha), func(b *testing.B) {
			b.SetBytes(int64(len(msg)))
			for i := 0; i < b.N; i++ {
				encoder, err := NewImageEncoder(img, config.ImageEncodeConfig{})
				if err != nil {
					b.Fatalf("Error creating image encoder for benchmark: %s", err)
				}
				if _, err = encoder.EncodeMessage(msg); err != nil {
					b.Fatalf("Error during image encoding: %s", err)
				}
			}
		})
	}
}

func BenchmarkEncodeWithPNGOutput(b *testing.B) {
	compressionLevelNames := map[png.CompressionLevel]string{
		png.NoCompression:      "none",
		png.DefaultCompression: "default",
		png.BestSpeed:          "fast",
		png.BestCompression:    "best",
	}

	img := generateImage(benchImageSize/4, benchImageSize/4, false)
	msg := test.GenerateLatin1Text(1000)
	for compressionLevel, name := range compressionLevelNames {
		b.Run(fmt.Sprintf("png.CompressionLevel=%s", name), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				encoder, err := NewImageEncoder(img, config.ImageEncodeConfig{PngCompressionLevel: compressionLevel})
				if err != nil {
					b.Fatalf("Error creating image encoder for benchmark: %s", err)
				}
				if _, err = encoder.EncodeMessage(msg); err != nil {
					b.Fatalf("Error during image encoding: %s", err)
				}
				if err = encoder.WriteEncodedImage(io.Discard); err != nil {
					b.Fatalf("Error writing PNG image: %s", err)
				}
			}
		})
	}
}

func BenchmarkDecodeMessage(b *testing.B) {
	img := generateImage(benchImageSize, benchImageSize, false)
	b.SetBytes(int64(message.Capacity(benchImageSize, benchImageSize)))
	for i := 0; i < b.N; i++ {
		decoder, err := NewImageDecoder(img)
		if err != nil {
			b.Fatalf("Error creating image decoder for benchmark: %s", err)
		}
		decoder.DecodeMessage()
	}
}
