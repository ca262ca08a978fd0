package image

import (
	"image"
	"textsteg/internal/bits"
	"textsteg/pkg/message"
	"textsteg/pkg/model"
	"time"
)

type Decoder struct {
	pixels Accessor
	stats  model.DecodeStats
}

func NewImageDecoder(img *image.NRGBA) (*Decoder, error) {
	if img == nil || img.Rect.Empty() {
		return nil, ErrImageEmpty
	}

	return &Decoder{
		pixels: NewNRGBAAccessor(img),
	}, nil
}

func (d *Decoder) Stats() model.DecodeStats {
	return d.stats
}

// DecodeBits reads one bit from every channel of every pixel, the receiver has no way of knowing how long the
// message is
func (d *Decoder) DecodeBits() bits.Sequence {
	decodeStart := time.Now()
	defer func() {
		d.stats.DataDecoding = time.Since(decodeStart)
	}()

	return ExtractBits(d.pixels)
}

// DecodeMessage returns the text before the first terminator. If there is none the whole decoded text is returned
// with Found unset
func (d *Decoder) DecodeMessage() model.DecodedMessage {
	seq := d.DecodeBits()

	messageDecodeStart := time.Now()
	defer func() {
		d.stats.MessageDecoding = time.Since(messageDecodeStart)
	}()

	msg, found := message.Unframe(message.FromBits(seq))
	return model.DecodedMessage{
		Text:  msg,
		Found: found,
	}
}
