package image

import (
	"tsteg/internal/bits"
	"tsteg/pkg/model"
)

// Normalize returns a copy of src in which the LSB of every R, G and B value is 0. Odd values are decremented, never
// incremented, so 255 can not overflow. Alpha is copied as is and src is left untouched.
func Normalize(src model.PixelBuffer) model.PixelBuffer {
	normalized := src.Clone()
	for p := 0; p+channelsPerPixel <= len(normalized.Pix); p += channelsPerPixel {
		for c := 0; c < channelsToWrite; c++ {
			normalized.Pix[p+c] = bits.SetChannelLSB(normalized.Pix[p+c], 0)
		}
	}
	return normalized
}
