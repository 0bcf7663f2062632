package model

import "strings"

// Bitstream holds one entry per bit, each 0 or 1, in the order the bits are written to a carrier.
type Bitstream []uint8

// String renders the bitstream as a run of '0' and '1' characters.
func (b Bitstream) String() string {
	var sb strings.Builder
	sb.Grow(len(b))
	for _, bit := range b {
		sb.WriteByte('0' + bit&1)
	}
	return sb.String()
}
