package api

import "tsteg/pkg/model"

type EncodeImageRequest struct {
	ImageToEncode []byte `json:"image_to_encode" binding:"required"`
	Message       string `json:"message"`
	// OutputFormat is png or bmp, png when empty
	OutputFormat      string `json:"output_format,omitempty"`
	IncludeNormalized bool   `json:"include_normalized,omitempty"`
}

type EncodeImageResponse struct {
	EncodedImage    []byte            `json:"encoded_image"`
	NormalizedImage []byte            `json:"normalized_image,omitempty"`
	Bitstream       string            `json:"bitstream"`
	Stats           model.EncodeStats `json:"stats"`
}
