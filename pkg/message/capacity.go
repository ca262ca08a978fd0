package message

const (
	ChannelsPerPixel = 3
	BitsPerChar      = 8
)

// Capacity is the number of characters, terminator included, an image of the given dimensions can carry
func Capacity(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return width * height * ChannelsPerPixel / BitsPerChar
}
