package image

import (
	"time"
	"tsteg/internal/bits"
	"tsteg/pkg/model"
	"unicode/utf16"
)

const (
	channelsPerPixel = 4
	channelsToWrite  = 3
	alphaChannel     = 3
)

// Capacity is the number of message bits the carrier can hold: one per R, G and B channel.
func Capacity(carrier model.PixelBuffer) int {
	return carrier.Width * carrier.Height * channelsToWrite
}

// MaxMessageLength is the number of message characters (UTF-16 code units) that fit in the carrier.
func MaxMessageLength(carrier model.PixelBuffer) int {
	return Capacity(carrier) / bits.BitsPerByte
}

// MessageBytes splits message into UTF-16 code units and keeps the low 8 bits of each. Characters above U+00FF are
// therefore not recoverable, and characters outside the BMP take two code units.
func MessageBytes(message string) []byte {
	codeUnits := utf16.Encode([]rune(message))
	messageBytes := make([]byte, len(codeUnits))
	for i, codeUnit := range codeUnits {
		messageBytes[i] = byte(codeUnit)
	}
	return messageBytes
}

// Encode hides message in a normalized copy of carrier. The carrier is validated and its capacity checked before
// anything is allocated, and on failure no partial result is returned. No length or terminator is written, the end
// of the message is found on decode by the first control byte.
func Encode(carrier model.PixelBuffer, message string) (model.EncodeResult, error) {
	setupStart := time.Now()

	if err := checkPixelBuffer(carrier); err != nil {
		return model.EncodeResult{}, err
	}

	messageBytes := MessageBytes(message)
	requiredBits := len(messageBytes) * bits.BitsPerByte
	availableBits := Capacity(carrier)
	if requiredBits > availableBits {
		return model.EncodeResult{}, &CapacityError{RequiredBits: requiredBits, AvailableBits: availableBits}
	}

	result := model.EncodeResult{
		Normalized: Normalize(carrier),
		Stats: model.EncodeStats{
			BitsEmbedded: requiredBits,
			CapacityBits: availableBits,
		},
	}
	result.Stats.Setup = time.Since(setupStart)

	encodeStart := time.Now()
	result.Bitstream = bits.BytesToBits(messageBytes)
	result.Embedded = result.Normalized.Clone()
	embedBitstream(result.Embedded.Pix, result.Bitstream)
	result.Stats.DataEncoding = time.Since(encodeStart)

	return result, nil
}

// embedBitstream adds each bit to the next R, G or B value. Values are expected to be even already, which makes the
// addition equivalent to setting the LSB.
func embedBitstream(pix []uint8, bitstream model.Bitstream) {
	var currentBit int
	for p := 0; p < len(pix) && currentBit < len(bitstream); p++ {
		if p%channelsPerPixel == alphaChannel {
			continue
		}
		pix[p] += bitstream[currentBit]
		currentBit++
	}
}
