package bits

import (
	"testing"
)

func TestReadBits(t *testing.T) {

	// 10000000 00000111 11111111 01100101
	bytesToTestWith := []byte{128, 7, 255, 101}
	expectedBitsToRead := map[uint][]byte{
		1: {1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 0, 1, 1, 0, 0, 1, 0, 1},
		2: {2, 0, 0, 0, 0, 0, 1, 3, 3, 3, 3, 3, 1, 2, 1, 1},
		3: {4, 0, 0, 0, 3, 7, 7, 7, 3, 1, 1},
		4: {8, 0, 0, 7, 15, 15, 6, 5},
		5: {16, 0, 3, 31, 30, 25, 1},
		8: {128, 7, 255, 101},
	}

	for bitsToRead, expectedBits := range expectedBitsToRead {
		tBitReader := NewBitReader(bytesToTestWith)
		for iter, expected := range expectedBits {
			bits := tBitReader.ReadBits(bitsToRead)
			if bits != expected {
				t.Errorf("Failure testing bit reader with %d bits per read on iter %d, result was: %d, expected %d", bitsToRead, iter+1, bits, expected)
			}
		}
		if tBitReader.BitsLeftToRead() != 0 {
			t.Errorf("Expected bit reader with %d bits per read to be drained, %d bits left", bitsToRead, tBitReader.BitsLeftToRead())
		}
	}
}

func TestBitsLeftToRead(t *testing.T) {
	br := NewBitReader([]byte{0xff, 0x00})
	if br.BitsLeftToRead() != 16 {
		t.Fatalf("Expected 16 bits left, got %d", br.BitsLeftToRead())
	}
	br.ReadBits(3)
	if br.BitsLeftToRead() != 13 || br.BytesLeftToRead() != 2 {
		t.Errorf("Expected 13 bits in 2 bytes left, got %d bits in %d bytes", br.BitsLeftToRead(), br.BytesLeftToRead())
	}
	br.ReadBits(5)
	if br.BitsLeftToRead() != 8 || br.BytesLeftToRead() != 1 {
		t.Errorf("Expected 8 bits in 1 byte left, got %d bits in %d bytes", br.BitsLeftToRead(), br.BytesLeftToRead())
	}
	br.Reset()
	if br.BitsLeftToRead() != 0 {
		t.Errorf("Expected no bits left after reset, got %d", br.BitsLeftToRead())
	}
	if br.ReadBits(8) != 0 {
		t.Errorf("Reading from an empty reader should yield 0")
	}
}
