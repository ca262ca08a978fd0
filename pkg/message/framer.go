package message

import (
	"strings"
	"unicode/utf8"
)

// Terminator marks the end of a hidden message
const Terminator = "STOP"

type Framed struct {
	// Payload is the message followed by as much of the terminator as fits
	Payload string
	// MessageLength is the number of message characters kept in Payload
	MessageLength int
	// Truncated is set when characters of the message had to be dropped to fit the capacity
	Truncated bool
}

// TerminatorStored reports whether the whole terminator made it into the payload. It does not when capacity is
// smaller than the terminator itself, in which case the payload can not be recovered as a message
func (f Framed) TerminatorStored() bool {
	return utf8.RuneCountInString(f.Payload) == f.MessageLength+len(Terminator)
}

// Frame limits text to capacity-len(Terminator) characters, appends the terminator and cuts the result down to
// capacity characters
func Frame(text string, capacity int) Framed {
	capacity = max(capacity, 0)
	limit := max(capacity-len(Terminator), 0)

	chars := []rune(text)
	truncated := len(chars) > limit
	if truncated {
		chars = chars[:limit]
	}

	payload := append(chars, []rune(Terminator)...)
	if len(payload) > capacity {
		payload = payload[:capacity]
	}

	return Framed{
		Payload:       string(payload),
		MessageLength: len(chars),
		Truncated:     truncated,
	}
}

// Unframe returns everything before the first terminator. found is false when no terminator exists, in which case
// decoded is returned unchanged
func Unframe(decoded string) (msg string, found bool) {
	idx := strings.Index(decoded, Terminator)
	if idx < 0 {
		return decoded, false
	}
	return decoded[:idx], true
}
