package server

import (
	"net/http"
	"tsteg/api"
	"tsteg/internal/logging"
	tstegImage "tsteg/pkg/image"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

// CapacityImageHandler godoc
//
// @Summary Report how much text an image can hold
// @Description Returns the number of bits and characters the supplied image can carry
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.CapacityImageRequest true "Body with the candidate carrier image"
// @Success 200 {object} api.CapacityImageResponse
// @Failure 400 {object} api.Error
// @Failure 413 {object} api.Error
// @Router /capacity/image [post]
func CapacityImageHandler(ctx *gin.Context) {
	var requestBody api.CapacityImageRequest

	logger := logging.BuildLoggerFromCtx(ctx)

	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		handleRequestBodyError(ctx, logger, err)
		return
	}

	carrier, _, ok := readRequestImage(ctx, logger, requestBody.Image)
	if !ok {
		return
	}

	capacityBits := tstegImage.Capacity(carrier)
	ctx.JSON(http.StatusOK, api.CapacityImageResponse{
		Width:            carrier.Width,
		Height:           carrier.Height,
		CapacityBits:     capacityBits,
		MaxMessageLength: tstegImage.MaxMessageLength(carrier),
		CapacityHuman:    humanize.Bytes(uint64(tstegImage.MaxMessageLength(carrier))),
	})
}
