package model

// EncodeResult is everything produced by a single encode call. Both buffers are owned by the caller and share no
// storage with the carrier that was supplied.
type EncodeResult struct {
	Normalized PixelBuffer
	Embedded   PixelBuffer
	Bitstream  Bitstream
	Stats      EncodeStats
}

type DecodeResult struct {
	Message string
	// BytesRead counts the bytes that made it into Message, which excludes the byte that stopped decoding.
	BytesRead int
	Stats     DecodeStats
}
