package api

import "tsteg/pkg/model"

type DecodeImageRequest struct {
	ImageToDecode []byte `json:"image_to_decode" binding:"required"`
}

type DecodeImageResponse struct {
	Message string            `json:"message"`
	Stats   model.DecodeStats `json:"stats"`
}
