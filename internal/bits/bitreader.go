package bits

// BitReader implements methods to help with reading bits from an array of bytes. Bits are read from most significant
// to least significant, which is the order in which they are laid out in a carrier image
type BitReader struct {
	bytes         []byte
	currentBitIdx uint
}

func NewBitReader(bytes []byte) *BitReader {
	return &BitReader{
		bytes: bytes,
	}
}

func (br *BitReader) BytesLeftToRead() int {
	return len(br.bytes)
}

func (br *BitReader) BitsLeftToRead() int {
	if len(br.bytes) == 0 {
		return 0
	}
	return (len(br.bytes)-1)*BitsPerByte + (BitsPerByte - int(br.currentBitIdx))
}

func (br *BitReader) Reset() {
	br.bytes = nil
	br.currentBitIdx = 0
}

// ReadBits returns up to 8 bits right aligned in a byte. If fewer bits than requested remain, only the remaining bits
// are returned
func (br *BitReader) ReadBits(bitsToRead uint) (byteWithRequestedBits byte) {
	for numOfBitsRead := uint(0); numOfBitsRead < bitsToRead && len(br.bytes) > 0; numOfBitsRead++ {
		byteWithRequestedBits = byteWithRequestedBits<<1 | (br.bytes[0]>>(BitsPerByte-1-br.currentBitIdx))&1
		br.currentBitIdx++
		if br.currentBitIdx == BitsPerByte {
			br.bytes = br.bytes[1:]
			br.currentBitIdx = 0
		}
	}
	return byteWithRequestedBits
}
