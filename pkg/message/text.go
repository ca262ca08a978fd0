package message

import (
	"fmt"
	"golang.org/x/text/encoding/charmap"
	"textsteg/internal/bits"
)

// ValidationError is returned when a message holds a character that does not fit in a single byte
type ValidationError struct {
	Char     rune
	Position int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("character %q (U+%04X) at position %d cannot be encoded, only characters with a code point below 256 are supported",
		e.Char, e.Char, e.Position)
}

// Validate returns a *ValidationError for the first character of text that does not fit in a single byte
func Validate(text string) error {
	var position int
	for _, char := range text {
		if _, ok := charmap.ISO8859_1.EncodeRune(char); !ok {
			return &ValidationError{Char: char, Position: position}
		}
		position++
	}
	return nil
}

// EncodeText transcodes text to ISO-8859-1 so that every character takes exactly one byte
func EncodeText(text string) ([]byte, error) {
	encoded := make([]byte, 0, len(text))
	var position int
	for _, char := range text {
		b, ok := charmap.ISO8859_1.EncodeRune(char)
		if !ok {
			return nil, &ValidationError{Char: char, Position: position}
		}
		encoded = append(encoded, b)
		position++
	}
	return encoded, nil
}

func DecodeText(encoded []byte) string {
	runes := make([]rune, len(encoded))
	for i, b := range encoded {
		runes[i] = charmap.ISO8859_1.DecodeByte(b)
	}
	return string(runes)
}

// ToBits converts text into 8 bits per character, most significant bit first
func ToBits(text string) (bits.Sequence, error) {
	encoded, err := EncodeText(text)
	if err != nil {
		return nil, err
	}
	return bits.FromBytes(encoded), nil
}

// FromBits is the inverse of ToBits. Trailing bits that do not complete a character are ignored
func FromBits(seq bits.Sequence) string {
	return DecodeText(seq.Bytes())
}
