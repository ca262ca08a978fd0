package server

import (
	"bytes"
	"github.com/gin-gonic/gin"
	"net/http"
	"textsteg/api"
	"textsteg/internal/logging"
	stegImage "textsteg/pkg/image"
	"textsteg/pkg/message"
)

// CapacityImageHandler godoc
//
// @Summary Compute how many characters an image can hide
// @Tags image
// @Accept json
// @Produce json
// @Param requestBody body api.CapacityImageRequest true "Body with the image to measure"
// @Success 200 {object} api.CapacityImageResponse
// @Failure 400 {object} api.Error
// @Router /capacity/image [post]
func CapacityImageHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)

	var requestBody api.CapacityImageRequest
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	width, height, _, err := stegImage.ReadImageDimensions(bytes.NewReader(requestBody.Image))
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return
	}

	capacity := message.Capacity(width, height)
	ctx.JSON(http.StatusOK, api.CapacityImageResponse{
		Width:            width,
		Height:           height,
		Capacity:         capacity,
		MaxMessageLength: max(capacity-len(message.Terminator), 0),
	})
}
