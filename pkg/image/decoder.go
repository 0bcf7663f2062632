package image

import (
	"time"
	"tsteg/internal/bits"
	"tsteg/pkg/model"

	"golang.org/x/text/encoding/charmap"
)

type decoderState int

const (
	reading decoderState = iota
	stopped
)

// ExtractBitstream reads the LSB of every R, G and B value in raster order. The result always holds Capacity(carrier)
// bits, there is no notion of where a message ends at this level.
func ExtractBitstream(carrier model.PixelBuffer) (model.Bitstream, error) {
	if err := checkPixelBuffer(carrier); err != nil {
		return nil, err
	}

	bitstream := make(model.Bitstream, 0, Capacity(carrier))
	for p, channelValue := range carrier.Pix {
		if p%channelsPerPixel == alphaChannel {
			continue
		}
		bitstream = append(bitstream, bits.ChannelLSB(channelValue))
	}
	return bitstream, nil
}

// Decode recovers the text hidden in carrier. Images that never had a message embedded decode to whatever printable
// prefix their LSBs happen to spell, often nothing.
func Decode(carrier model.PixelBuffer) (string, error) {
	result, err := DecodeMessage(carrier)
	if err != nil {
		return "", err
	}
	return result.Message, nil
}

func DecodeMessage(carrier model.PixelBuffer) (model.DecodeResult, error) {
	decodeStart := time.Now()

	bitstream, err := ExtractBitstream(carrier)
	if err != nil {
		return model.DecodeResult{}, err
	}

	messageBytes := assembleMessage(bitstream)
	// Every byte maps to the code point of the same value, as ISO 8859-1 defines it
	message, err := charmap.ISO8859_1.NewDecoder().Bytes(messageBytes)
	if err != nil {
		return model.DecodeResult{}, err
	}

	return model.DecodeResult{
		Message:   string(message),
		BytesRead: len(messageBytes),
		Stats: model.DecodeStats{
			DataDecoding: time.Since(decodeStart),
			BitsScanned:  len(bitstream),
		},
	}, nil
}

// assembleMessage groups the bitstream into bytes and keeps them until the first terminating byte. Trailing bits
// that do not fill a byte are dropped.
func assembleMessage(bitstream model.Bitstream) []byte {
	var messageBytes []byte
	state := reading
	for offset := 0; state == reading && offset+bits.BitsPerByte <= len(bitstream); offset += bits.BitsPerByte {
		b := bits.BitsToByte(bitstream[offset : offset+bits.BitsPerByte])
		if isTerminator(b) {
			state = stopped
			continue
		}
		messageBytes = append(messageBytes, b)
	}
	return messageBytes
}

// isTerminator reports whether b ends a message: NUL, or any other control character apart from tab, line feed and
// carriage return. A message that itself contains such a character is cut short at that point.
func isTerminator(b byte) bool {
	return b == 0 || (b < 32 && b != '\t' && b != '\n' && b != '\r')
}
