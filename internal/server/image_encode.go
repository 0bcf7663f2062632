package server

import (
	"bytes"
	"image/png"
	"net/http"
	"tsteg/api"
	"tsteg/api/fb/TSteg"
	"tsteg/internal/logging"
	"tsteg/internal/metrics"
	"tsteg/pkg/config"
	tstegImage "tsteg/pkg/image"

	"github.com/gin-gonic/gin"
)

// EncodeImageHandler godoc
//
// @Summary Encode a message into supplied image
// @Description This endpoint hides the message in the least significant bits of the image and returns the encoded image. The success response format is dictated by the Content-Type header, but all errors are returned as JSON. Octet-stream responses carry the same fields as the JSON response, with durations in nanoseconds
// @Tags image
// @Accept json,octet-stream
// @Produce json,octet-stream
// @Param requestBody body api.EncodeImageRequest true "Body with the image to encode the message into, the message, and the output format"
// @Success 200 {object} api.EncodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 413 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /encode/image [post]
func EncodeImageHandler(ctx *gin.Context) {
	var requestBody api.EncodeImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image encode request")

	if err := bindEncodeImageRequest(ctx, &requestBody); err != nil {
		handleRequestBodyError(ctx, logger, err)
		return
	}

	carrier, format, ok := readRequestImage(ctx, logger, requestBody.ImageToEncode)
	if !ok {
		return
	}

	outputConfig := config.ImageOutputConfig{
		Format:              requestBody.OutputFormat,
		PngCompressionLevel: png.BestCompression, // to reduce bandwidth costs since lower compression results in huge images
	}
	outputConfig.PopulateUnsetConfigVars()
	if err := outputConfig.Validate(); err != nil {
		logger.WithError(err).Error("Unsupported output format requested")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errUnsupportedFormat)
		return
	}

	result, err := tstegImage.Encode(carrier, requestBody.Message)
	if err != nil {
		handleCodecError(ctx, logger, err, errEncode)
		return
	}

	encodedImageBuffer := bytes.NewBuffer(make([]byte, 0, len(requestBody.ImageToEncode))) // pre allocate with size of original, since it should be similar
	result.Stats.OutputImageEncoding, err = tstegImage.WritePixelBuffer(encodedImageBuffer, result.Embedded, outputConfig)
	if err != nil {
		handleCodecError(ctx, logger, err, errEncode)
		return
	}

	metrics.MessagesEncoded.Inc()
	metrics.BitsEmbedded.Add(float64(result.Stats.BitsEmbedded))
	logger.With("stats", toHumanizedEncodeStats(result.Stats), "source_format", format, "output_format", outputConfig.Format).Info("Image encoding was successful")

	response := api.EncodeImageResponse{
		EncodedImage: encodedImageBuffer.Bytes(),
		Bitstream:    result.Bitstream.String(),
		Stats:        result.Stats,
	}
	if requestBody.IncludeNormalized {
		normalizedImageBuffer := bytes.NewBuffer(make([]byte, 0, len(requestBody.ImageToEncode)))
		if _, err = tstegImage.WritePixelBuffer(normalizedImageBuffer, result.Normalized, outputConfig); err != nil {
			handleCodecError(ctx, logger, err, errEncode)
			return
		}
		response.NormalizedImage = normalizedImageBuffer.Bytes()
	}

	if isFlatbufferRequest(ctx) {
		ctx.Data(http.StatusOK, mimeOctetStream, api.BuildEncodeImageResponse(response))
		return
	}
	ctx.JSON(http.StatusOK, response)
}

func bindEncodeImageRequest(ctx *gin.Context, requestBody *api.EncodeImageRequest) error {
	if !isFlatbufferRequest(ctx) {
		return ctx.ShouldBindJSON(requestBody)
	}

	return readFlatbuffer(ctx, func(body []byte) {
		encodeImageRequest := TSteg.GetRootAsEncodeImageRequest(body, 0)
		requestBody.ImageToEncode = encodeImageRequest.ImageToEncodeBytes()
		requestBody.Message = string(encodeImageRequest.Message())
		requestBody.OutputFormat = string(encodeImageRequest.OutputFormat())
		requestBody.IncludeNormalized = encodeImageRequest.IncludeNormalized()
	})
}
