package config

import (
	"errors"
	"fmt"
	"image/png"
)

type OutputFormat string

const (
	OutputFormatPNG OutputFormat = "png"
	OutputFormatBMP OutputFormat = "bmp"

	DefaultOutputFormat = OutputFormatPNG
)

var (
	pngCompressionMapping = map[string]png.CompressionLevel{
		"default": png.DefaultCompression,
		"none":    png.NoCompression,
		"fast":    png.BestSpeed,
		"best":    png.BestCompression,
	}

	ErrUnsupportedOutputFormat = errors.New("unsupported output format, only lossless formats (png, bmp) preserve hidden messages")
	ErrInvalidPngCompression   = errors.New("invalid png compression level")
)

type ImageEncodeConfig struct {
	PngCompressionLevel png.CompressionLevel
	OutputFormat        OutputFormat
}

func (c ImageEncodeConfig) PopulateUnsetConfigVars() ImageEncodeConfig {
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutputFormat
	}
	return c
}

func (c ImageEncodeConfig) Validate() error {
	switch c.OutputFormat {
	case OutputFormatPNG, OutputFormatBMP:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedOutputFormat, c.OutputFormat)
	}
	if c.PngCompressionLevel > png.DefaultCompression || c.PngCompressionLevel < png.BestCompression {
		return fmt.Errorf("%w: %d", ErrInvalidPngCompression, c.PngCompressionLevel)
	}
	return nil
}

// FileExtension returns the extension, dot included, files in the configured output format should carry
func (c ImageEncodeConfig) FileExtension() string {
	return "." + string(c.PopulateUnsetConfigVars().OutputFormat)
}

// ParsePngCompression maps default, none, fast and best to png compression levels. An empty name is the default
func ParsePngCompression(name string) (png.CompressionLevel, error) {
	if name == "" {
		return png.DefaultCompression, nil
	}
	level, found := pngCompressionMapping[name]
	if !found {
		return 0, fmt.Errorf("%w: %q, options are default, none, fast, best", ErrInvalidPngCompression, name)
	}
	return level, nil
}
