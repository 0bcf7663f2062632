package test

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/png"
	"math/rand"
	"tsteg/pkg/model"
)

const printableMessageAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789 .,;:!?'\"()[]{}<>@#$%^&*-_=+/\\|~`\t\n\r"

func GenerateRandomBytes(numOfBytesToGenerate int) []byte {
	generatedBytes := make([]byte, numOfBytesToGenerate)
	_, err := rand.Read(generatedBytes)
	if err != nil {
		panic(err)
	}
	return generatedBytes
}

// GeneratePrintableMessage returns a message made of printable ASCII plus tab, line feed and carriage return, which
// are the characters guaranteed to survive an encode/decode round trip.
func GeneratePrintableMessage(length int) string {
	message := make([]byte, length)
	for i := range message {
		message[i] = printableMessageAlphabet[rand.Intn(len(printableMessageAlphabet))]
	}
	return string(message)
}

// GenerateRandomPixelBuffer fills every channel with random values. When opaque is set every alpha value is 255.
func GenerateRandomPixelBuffer(width, height int, opaque bool) model.PixelBuffer {
	buf := model.PixelBuffer{Width: width, Height: height, Pix: GenerateRandomBytes(width * height * 4)}
	if opaque {
		for p := 3; p < len(buf.Pix); p += 4 {
			buf.Pix[p] = 255
		}
	}
	return buf
}

// GenerateUniformPixelBuffer sets every channel, alpha included, to value.
func GenerateUniformPixelBuffer(width, height int, value uint8) model.PixelBuffer {
	buf := model.NewPixelBuffer(width, height)
	for i := range buf.Pix {
		buf.Pix[i] = value
	}
	return buf
}

// GeneratePNGWithDeclaredSize returns a 1x1 PNG whose IHDR chunk claims width x height. The header checksum is
// valid, so only a full decode notices the pixel data does not match.
func GeneratePNGWithDeclaredSize(width, height uint32) []byte {
	var encoded bytes.Buffer
	if err := png.Encode(&encoded, image.NewNRGBA(image.Rect(0, 0, 1, 1))); err != nil {
		panic(err)
	}

	// 8 byte signature, then the IHDR chunk: length (4), type (4), width (4), height (4), ..., crc
	pngBytes := encoded.Bytes()
	const ihdrType, ihdrData, ihdrDataLength = 12, 16, 13
	binary.BigEndian.PutUint32(pngBytes[ihdrData:], width)
	binary.BigEndian.PutUint32(pngBytes[ihdrData+4:], height)
	crcOffset := ihdrData + ihdrDataLength
	binary.BigEndian.PutUint32(pngBytes[crcOffset:], crc32.ChecksumIEEE(pngBytes[ihdrType:crcOffset]))
	return pngBytes
}
