package image

import (
	"image"
	"textsteg/pkg/message"
)

type Channels [message.ChannelsPerPixel]uint8

// Accessor gives read and write access to the red, green and blue channels of every pixel of an image. Coordinates
// are relative to the top left pixel, so x is in [0, Width()) and y in [0, Height())
type Accessor interface {
	Width() int
	Height() int
	Channels(x, y int) Channels
	SetChannels(x, y int, channels Channels)
}

// NRGBAAccessor works on the non alpha premultiplied pixels of an *image.NRGBA, which keeps channel values of
// translucent pixels intact when the image is written out as PNG
type NRGBAAccessor struct {
	img *image.NRGBA
}

func NewNRGBAAccessor(img *image.NRGBA) *NRGBAAccessor {
	return &NRGBAAccessor{img: img}
}

func (a *NRGBAAccessor) Width() int {
	return a.img.Rect.Dx()
}

func (a *NRGBAAccessor) Height() int {
	return a.img.Rect.Dy()
}

func (a *NRGBAAccessor) Channels(x, y int) Channels {
	offset := a.pixOffset(x, y)
	return Channels(a.img.Pix[offset : offset+message.ChannelsPerPixel])
}

func (a *NRGBAAccessor) SetChannels(x, y int, channels Channels) {
	offset := a.pixOffset(x, y)
	copy(a.img.Pix[offset:offset+message.ChannelsPerPixel], channels[:])
}

func (a *NRGBAAccessor) pixOffset(x, y int) int {
	return a.img.PixOffset(a.img.Rect.Min.X+x, a.img.Rect.Min.Y+y)
}
