package bits

// BitsPerByte is the number of bitstream entries a single message byte expands to.
const BitsPerByte = 8

// BytesToBits expands every byte into 8 entries of value 0 or 1, most significant bit first.
func BytesToBits(bytes []byte) []uint8 {
	br := NewBitReader(bytes)
	bitstream := make([]uint8, 0, len(bytes)*BitsPerByte)
	for br.BitsLeftToRead() > 0 {
		bitstream = append(bitstream, br.ReadBits(1))
	}
	return bitstream
}

// BitsToByte rebuilds a byte from exactly 8 bits ordered most significant first.
func BitsToByte(bits []uint8) byte {
	var b byte
	for _, bit := range bits[:BitsPerByte] {
		b <<= 1
		b |= bit & 1
	}
	return b
}

// ChannelLSB returns the lowest bit of a channel value, 1 for odd values.
func ChannelLSB(channelValue uint8) uint8 {
	return channelValue % 2
}

// SetChannelLSB leaves every bit but the lowest untouched, so a value that already carries the requested bit is
// returned as is.
func SetChannelLSB(channelValue, bit uint8) uint8 {
	return channelValue&^1 | bit&1
}
