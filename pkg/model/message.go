package model

// EncodeResult describes what was stored in an image by an encode operation
type EncodeResult struct {
	// Capacity is the number of characters, terminator included, the image can carry
	Capacity int `json:"capacity"`
	// MessageLength is how many characters of the message were stored
	MessageLength int `json:"message_length"`
	// Truncated is set when the message did not fit and was cut short
	Truncated bool `json:"truncated"`
	// TerminatorStored is false when the image is too small to hold even the terminator
	TerminatorStored bool `json:"terminator_stored"`
	BitsWritten      int  `json:"bits_written"`
}

// DecodedMessage is the text recovered from an image. When Found is false no terminator was present and Text holds
// everything that was read, which is very likely noise
type DecodedMessage struct {
	Text  string `json:"text"`
	Found bool   `json:"found"`
}
