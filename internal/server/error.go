package server

import (
	"bytes"
	"errors"
	"net/http"
	"tsteg/api"
	"tsteg/internal/logging"
	"tsteg/internal/metrics"
	tstegImage "tsteg/pkg/image"
	"tsteg/pkg/model"

	"github.com/gin-gonic/gin"
)

var (
	errRequestBodyDecode = api.Error{Code: "invalid_request", Error: "Error reading request body"}
	errRequestTooLarge   = api.Error{Code: "request_too_large", Error: "Request body exceeds the maximum allowed size"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errImageTooLarge     = api.Error{Code: "request_too_large", Error: "Image dimensions exceed the maximum allowed pixel count"}
	errUnsupportedFormat = api.Error{Code: "unsupported_format", Error: "Unsupported output format, use png or bmp"}
	errEncode            = api.Error{Code: "encode_error", Error: "An error occurred while encoding the image"}
	errDecode            = api.Error{Code: "decode_error", Error: "An error occurred while decoding the image"}
)

func handleRequestBodyError(ctx *gin.Context, logger *logging.Logger, err error) {
	logger.WithError(err).Error("Error decoding request body")

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		ctx.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, errRequestTooLarge)
		return
	}
	ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
}

// readRequestImage decodes an image from a request body, bounded by the pixel limit the router was configured with.
// On failure the response is already written and ok is false.
func readRequestImage(ctx *gin.Context, logger *logging.Logger, data []byte) (carrier model.PixelBuffer, format string, ok bool) {
	carrier, format, err := tstegImage.ReadPixelBufferWithLimit(bytes.NewReader(data), ctx.GetInt(maxImagePixelsKey))
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		if errors.Is(err, tstegImage.ErrImageTooLarge) {
			ctx.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, errImageTooLarge)
		} else {
			ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		}
		return model.PixelBuffer{}, "", false
	}
	return carrier, format, true
}

// handleCodecError maps codec failures to responses. Only capacity errors carry details back to the caller, since
// they are the ones the caller can act on.
func handleCodecError(ctx *gin.Context, logger *logging.Logger, err error, fallback api.Error) {
	logger.WithError(err).Error("Error running steganography codec")

	var capacityErr *tstegImage.CapacityError
	switch {
	case errors.As(err, &capacityErr):
		metrics.CapacityRejections.Inc()
		ctx.AbortWithStatusJSON(http.StatusBadRequest, api.Error{
			Code:          "capacity_exceeded",
			Error:         capacityErr.Error(),
			RequiredBits:  capacityErr.RequiredBits,
			AvailableBits: capacityErr.AvailableBits,
		})
	case errors.Is(err, tstegImage.ErrInvalidPixelBuffer):
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
	default:
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, fallback)
	}
}
