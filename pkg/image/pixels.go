package image

import (
	"textsteg/internal/bits"
	"textsteg/pkg/message"
)

// EmbedBits sets the parity of each channel to the matching bit of seq. Pixels are visited row by row, left to right,
// and channels in red, green, blue order. Channels after the last bit are left untouched. Returns how many bits were
// written, which is less than len(seq) when the image runs out of channels
func EmbedBits(pixels Accessor, seq bits.Sequence) int {
	var bitIdx int
	for y := 0; y < pixels.Height() && bitIdx < len(seq); y++ {
		for x := 0; x < pixels.Width() && bitIdx < len(seq); x++ {
			channels := pixels.Channels(x, y)
			for c := 0; c < message.ChannelsPerPixel && bitIdx < len(seq); c++ {
				channels[c] = withParity(channels[c], seq[bitIdx])
				bitIdx++
			}
			pixels.SetChannels(x, y, channels)
		}
	}
	return bitIdx
}

// ExtractBits reads the parity of every channel of every pixel, in the same order EmbedBits writes them
func ExtractBits(pixels Accessor) bits.Sequence {
	seq := make(bits.Sequence, 0, pixels.Width()*pixels.Height()*message.ChannelsPerPixel)
	for y := 0; y < pixels.Height(); y++ {
		for x := 0; x < pixels.Width(); x++ {
			channels := pixels.Channels(x, y)
			for c := 0; c < message.ChannelsPerPixel; c++ {
				seq = append(seq, channels[c]&1)
			}
		}
	}
	return seq
}

// 0 is even and 255 is odd, so moving a value by one towards the wanted parity never leaves [0, 255]
func withParity(value, bit byte) byte {
	switch {
	case value&1 == bit&1:
		return value
	case bit&1 == 1:
		return value + 1
	default:
		return value - 1
	}
}
