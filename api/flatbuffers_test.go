package api

import (
	"bytes"
	"testing"
	"time"
	"tsteg/api/fb/TSteg"
	"tsteg/pkg/model"
)

func TestEncodeImageRequestFlatbuffer(t *testing.T) {
	image := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	request := TSteg.GetRootAsEncodeImageRequest(BuildEncodeImageRequest(image, "Hi", "bmp", true), 0)

	if !bytes.Equal(request.ImageToEncodeBytes(), image) || request.ImageToEncodeLength() != len(image) {
		t.Errorf("Image not preserved, got %v", request.ImageToEncodeBytes())
	}
	if request.ImageToEncode(1) != 'P' {
		t.Errorf("Expected indexed access to return 'P', got %d", request.ImageToEncode(1))
	}
	if string(request.Message()) != "Hi" || string(request.OutputFormat()) != "bmp" {
		t.Errorf("Strings not preserved, got %q and %q", request.Message(), request.OutputFormat())
	}
	if !request.IncludeNormalized() {
		t.Errorf("Expected include normalized to be set")
	}

	request = TSteg.GetRootAsEncodeImageRequest(BuildEncodeImageRequest(image, "Hi", "", false), 0)
	if request.IncludeNormalized() {
		t.Errorf("Expected include normalized to default to false")
	}
}

func TestEncodeImageResponseFlatbuffer(t *testing.T) {
	response := EncodeImageResponse{
		EncodedImage:    []byte{1, 2, 3},
		NormalizedImage: []byte{4, 5},
		Bitstream:       "0100100001101001",
		Stats: model.EncodeStats{
			Setup:               time.Microsecond,
			DataEncoding:        2 * time.Millisecond,
			OutputImageEncoding: 3 * time.Second,
			BitsEmbedded:        16,
			CapacityBits:        768,
		},
	}
	fbResponse := TSteg.GetRootAsEncodeImageResponse(BuildEncodeImageResponse(response), 0)

	if !bytes.Equal(fbResponse.EncodedImageBytes(), response.EncodedImage) {
		t.Errorf("Encoded image not preserved, got %v", fbResponse.EncodedImageBytes())
	}
	if !bytes.Equal(fbResponse.NormalizedImageBytes(), response.NormalizedImage) {
		t.Errorf("Normalized image not preserved, got %v", fbResponse.NormalizedImageBytes())
	}
	if string(fbResponse.Bitstream()) != response.Bitstream {
		t.Errorf("Bitstream not preserved, got %q", fbResponse.Bitstream())
	}
	if fbResponse.SetupNs() != 1000 || fbResponse.DataEncodingNs() != 2_000_000 || fbResponse.OutputImageEncodingNs() != 3_000_000_000 {
		t.Errorf("Durations not preserved, got %d, %d and %d", fbResponse.SetupNs(), fbResponse.DataEncodingNs(), fbResponse.OutputImageEncodingNs())
	}
	if fbResponse.BitsEmbedded() != 16 || fbResponse.CapacityBits() != 768 {
		t.Errorf("Bit counts not preserved, got %d and %d", fbResponse.BitsEmbedded(), fbResponse.CapacityBits())
	}

	response.NormalizedImage = nil
	fbResponse = TSteg.GetRootAsEncodeImageResponse(BuildEncodeImageResponse(response), 0)
	if fbResponse.NormalizedImageLength() != 0 || fbResponse.NormalizedImageBytes() != nil {
		t.Errorf("Expected no normalized image, got %v", fbResponse.NormalizedImageBytes())
	}
}

func TestDecodeImageResponseFlatbuffer(t *testing.T) {
	stats := model.DecodeStats{DataDecoding: 5 * time.Millisecond, BitsScanned: 3072}
	response := TSteg.GetRootAsDecodeImageResponse(BuildDecodeImageResponse("hidden\ttext", stats), 0)
	if string(response.Message()) != "hidden\ttext" {
		t.Errorf("Expected message to be preserved, got %q", response.Message())
	}
	if response.DataDecodingNs() != 5_000_000 || response.BitsScanned() != 3072 {
		t.Errorf("Stats not preserved, got %d and %d", response.DataDecodingNs(), response.BitsScanned())
	}

	empty := TSteg.GetRootAsDecodeImageResponse(BuildDecodeImageResponse("", model.DecodeStats{}), 0)
	if len(empty.Message()) != 0 {
		t.Errorf("Expected empty message, got %q", empty.Message())
	}
}
