package image

import (
	"image"
	"io"
	"textsteg/internal/bits"
	"textsteg/pkg/config"
	"textsteg/pkg/message"
	"textsteg/pkg/model"
	"time"
)

type Encoder struct {
	image  *image.NRGBA
	pixels Accessor
	config config.ImageEncodeConfig
	stats  model.EncodeStats
}

func NewImageEncoder(img *image.NRGBA, iConfig config.ImageEncodeConfig) (*Encoder, error) {
	if img == nil || img.Rect.Empty() {
		return nil, ErrImageEmpty
	}

	iConfig = iConfig.PopulateUnsetConfigVars()
	if err := iConfig.Validate(); err != nil {
		return nil, err
	}

	return &Encoder{
		image:  img,
		pixels: NewNRGBAAccessor(img),
		config: iConfig,
	}, nil
}

func (e *Encoder) Stats() model.EncodeStats {
	return e.stats
}

// Capacity is the number of characters, terminator included, that fit in the image
func (e *Encoder) Capacity() int {
	return message.Capacity(e.pixels.Width(), e.pixels.Height())
}

// EncodeMessage hides text in the image. A message that does not fit is cut short, which is reported in the result
// rather than as an error. The only error is a *message.ValidationError, returned before any pixel is modified
func (e *Encoder) EncodeMessage(text string) (model.EncodeResult, error) {
	e.stats = model.EncodeStats{}

	setupStart := time.Now()
	if err := message.Validate(text); err != nil {
		return model.EncodeResult{}, err
	}

	capacity := e.Capacity()
	framed := message.Frame(text, capacity)
	seq, err := message.ToBits(framed.Payload)
	if err != nil {
		return model.EncodeResult{}, err
	}
	e.stats.Setup = time.Since(setupStart)

	bitsWritten := e.encodeBits(seq)

	return model.EncodeResult{
		Capacity:         capacity,
		MessageLength:    framed.MessageLength,
		Truncated:        framed.Truncated,
		TerminatorStored: framed.TerminatorStored(),
		BitsWritten:      bitsWritten,
	}, nil
}

func (e *Encoder) encodeBits(seq bits.Sequence) int {
	encodeStart := time.Now()
	defer func() {
		e.stats.DataEncoding = time.Since(encodeStart)
	}()

	return EmbedBits(e.pixels, seq)
}

func (e *Encoder) WriteEncodedImage(output io.Writer) error {
	imageEncodeStart := time.Now()
	defer func() {
		e.stats.OutputImageEncoding = time.Since(imageEncodeStart)
	}()
	return WriteImage(output, e.image, e.config)
}
