package bits

// BitReader implements methods to help with reading bits from an array of bytes. Bits are read from most significant
// to least significant, so the first bit read from a byte is its 2^7 bit
type BitReader struct {
	bytes         []byte
	currentBitIdx uint
}

func NewBitReader(bytes []byte) *BitReader {
	return &BitReader{
		bytes: bytes,
	}
}

func (br *BitReader) BitsLeftToRead() int {
	if len(br.bytes) == 0 {
		return 0
	}
	return (len(br.bytes)-1)*8 + (8 - int(br.currentBitIdx))
}

// ReadBit returns the next bit, or false once every byte has been consumed
func (br *BitReader) ReadBit() (bit byte, ok bool) {
	if len(br.bytes) == 0 {
		return 0, false
	}

	bit = (br.bytes[0] >> (7 - br.currentBitIdx)) & 1
	br.currentBitIdx++
	if br.currentBitIdx == 8 {
		br.bytes = br.bytes[1:]
		br.currentBitIdx = 0
	}
	return bit, true
}

// ReadBits reads up to 8 bits and packs them into the low end of the returned byte, first bit read ending up as the
// most significant of the group
func (br *BitReader) ReadBits(bitsToRead uint) (byteWithRequestedBits byte) {
	for i := uint(0); i < bitsToRead; i++ {
		bit, ok := br.ReadBit()
		if !ok {
			break
		}
		byteWithRequestedBits = byteWithRequestedBits<<1 | bit
	}
	return byteWithRequestedBits
}
