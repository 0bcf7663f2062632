package api

import (
	"tsteg/api/fb/TSteg"
	"tsteg/pkg/model"

	flatbuffers "github.com/google/flatbuffers/go"
)

// Nested objects can not be created while a table is being built, so every vector and string is created before the
// table is started.

func BuildEncodeImageRequest(imageToEncode []byte, message, outputFormat string, includeNormalized bool) []byte {
	builder := flatbuffers.NewBuilder(len(imageToEncode) + len(message) + 64)
	imageOffset := builder.CreateByteVector(imageToEncode)
	messageOffset := builder.CreateString(message)
	formatOffset := builder.CreateString(outputFormat)

	TSteg.EncodeImageRequestStart(builder)
	TSteg.EncodeImageRequestAddImageToEncode(builder, imageOffset)
	TSteg.EncodeImageRequestAddMessage(builder, messageOffset)
	TSteg.EncodeImageRequestAddOutputFormat(builder, formatOffset)
	TSteg.EncodeImageRequestAddIncludeNormalized(builder, includeNormalized)
	builder.Finish(TSteg.EncodeImageRequestEnd(builder))
	return builder.FinishedBytes()
}

// BuildEncodeImageResponse carries the same fields as EncodeImageResponse. Durations are sent in nanoseconds and the
// normalized image is left out when empty.
func BuildEncodeImageResponse(response EncodeImageResponse) []byte {
	builder := flatbuffers.NewBuilder(len(response.EncodedImage) + len(response.NormalizedImage) + len(response.Bitstream) + 128)
	imageOffset := builder.CreateByteVector(response.EncodedImage)
	bitstreamOffset := builder.CreateString(response.Bitstream)
	var normalizedOffset flatbuffers.UOffsetT
	if len(response.NormalizedImage) > 0 {
		normalizedOffset = builder.CreateByteVector(response.NormalizedImage)
	}

	TSteg.EncodeImageResponseStart(builder)
	TSteg.EncodeImageResponseAddEncodedImage(builder, imageOffset)
	TSteg.EncodeImageResponseAddBitstream(builder, bitstreamOffset)
	if normalizedOffset != 0 {
		TSteg.EncodeImageResponseAddNormalizedImage(builder, normalizedOffset)
	}
	TSteg.EncodeImageResponseAddSetupNs(builder, response.Stats.Setup.Nanoseconds())
	TSteg.EncodeImageResponseAddDataEncodingNs(builder, response.Stats.DataEncoding.Nanoseconds())
	TSteg.EncodeImageResponseAddOutputImageEncodingNs(builder, response.Stats.OutputImageEncoding.Nanoseconds())
	TSteg.EncodeImageResponseAddBitsEmbedded(builder, int32(response.Stats.BitsEmbedded))
	TSteg.EncodeImageResponseAddCapacityBits(builder, int32(response.Stats.CapacityBits))
	builder.Finish(TSteg.EncodeImageResponseEnd(builder))
	return builder.FinishedBytes()
}

func BuildDecodeImageRequest(imageToDecode []byte) []byte {
	builder := flatbuffers.NewBuilder(len(imageToDecode) + 32)
	imageOffset := builder.CreateByteVector(imageToDecode)

	TSteg.DecodeImageRequestStart(builder)
	TSteg.DecodeImageRequestAddImageToDecode(builder, imageOffset)
	builder.Finish(TSteg.DecodeImageRequestEnd(builder))
	return builder.FinishedBytes()
}

func BuildDecodeImageResponse(message string, stats model.DecodeStats) []byte {
	builder := flatbuffers.NewBuilder(len(message) + 48)
	messageOffset := builder.CreateString(message)

	TSteg.DecodeImageResponseStart(builder)
	TSteg.DecodeImageResponseAddMessage(builder, messageOffset)
	TSteg.DecodeImageResponseAddDataDecodingNs(builder, stats.DataDecoding.Nanoseconds())
	TSteg.DecodeImageResponseAddBitsScanned(builder, int32(stats.BitsScanned))
	builder.Finish(TSteg.DecodeImageResponseEnd(builder))
	return builder.FinishedBytes()
}
