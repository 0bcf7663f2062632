package server

import (
	"net/http"
	"tsteg/api"
	"tsteg/api/fb/TSteg"
	"tsteg/internal/logging"
	"tsteg/internal/metrics"
	tstegImage "tsteg/pkg/image"

	"github.com/gin-gonic/gin"
)

// DecodeImageHandler godoc
//
// @Summary Decode a message from an image
// @Description This endpoint recovers the message previously encoded in the supplied image. The success response format is dictated by the Content-Type header, but all errors are returned as JSON. Octet-stream responses carry the same fields as the JSON response, with durations in nanoseconds
// @Tags image
// @Accept json,octet-stream
// @Produce json,octet-stream
// @Param requestBody body api.DecodeImageRequest true "Body with image to decode"
// @Success 200 {object} api.DecodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 413 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /decode/image [post]
func DecodeImageHandler(ctx *gin.Context) {
	var requestBody api.DecodeImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image decode request")

	if err := bindDecodeImageRequest(ctx, &requestBody); err != nil {
		handleRequestBodyError(ctx, logger, err)
		return
	}

	carrier, _, ok := readRequestImage(ctx, logger, requestBody.ImageToDecode)
	if !ok {
		return
	}

	result, err := tstegImage.DecodeMessage(carrier)
	if err != nil {
		handleCodecError(ctx, logger, err, errDecode)
		return
	}

	metrics.MessagesDecoded.Inc()
	logger.With("stats", toHumanizedDecodeStats(result.Stats), "bytes_read", result.BytesRead).Info("Image decoding was successful")

	if isFlatbufferRequest(ctx) {
		ctx.Data(http.StatusOK, mimeOctetStream, api.BuildDecodeImageResponse(result.Message, result.Stats))
		return
	}
	ctx.JSON(http.StatusOK, api.DecodeImageResponse{Message: result.Message, Stats: result.Stats})
}

func bindDecodeImageRequest(ctx *gin.Context, requestBody *api.DecodeImageRequest) error {
	if !isFlatbufferRequest(ctx) {
		return ctx.ShouldBindJSON(requestBody)
	}

	return readFlatbuffer(ctx, func(body []byte) {
		requestBody.ImageToDecode = TSteg.GetRootAsDecodeImageRequest(body, 0).ImageToDecodeBytes()
	})
}
