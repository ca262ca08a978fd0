package bits

// Sequence is a flat list of bits, each element holding 0 or 1. Bit 8k+j of a sequence built from bytes is the j-th
// most significant bit of byte k
type Sequence []byte

func FromBytes(b []byte) Sequence {
	br := NewBitReader(b)
	seq := make(Sequence, 0, br.BitsLeftToRead())
	for br.BitsLeftToRead() > 0 {
		seq = append(seq, br.ReadBits(1))
	}
	return seq
}

// Bytes packs the sequence back into bytes. Trailing bits that do not fill a whole byte are dropped
func (s Sequence) Bytes() []byte {
	out := make([]byte, len(s)/8)
	for i := range out {
		var v byte
		for j := 0; j < 8; j++ {
			v = v<<1 | s[i*8+j]&1
		}
		out[i] = v
	}
	return out
}
