package server

import (
	"bytes"
	"github.com/gin-gonic/gin"
	"net/http"
	"textsteg/api"
	"textsteg/internal/logging"
	stegImage "textsteg/pkg/image"
	"textsteg/pkg/model"
)

var (
	errDecode = api.Error{Code: "decode_error", Error: "error while decoding message from image"}
)

// DecodeImageHandler godoc
//
// @Summary Read a message hidden in an image
// @Description This endpoint reads the message previously hidden in the supplied image. When the image holds no message, found is false and message is empty. Requests sent as application/octet-stream are read as flatbuffers and answered with flatbuffers, all errors are returned as JSON
// @Tags image
// @Accept json,octet-stream
// @Produce json,octet-stream
// @Param requestBody body api.DecodeImageRequest true "Body with image to decode"
// @Success 200 {object} api.DecodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /decode/image [post]
func DecodeImageHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image decode request")

	var (
		imageBytes []byte
		err        error
	)
	if isFlatbufferRequest(ctx) {
		imageBytes, err = readDecodeImageFlatbuffer(ctx)
	} else {
		var requestBody api.DecodeImageRequest
		err = ctx.ShouldBindJSON(&requestBody)
		imageBytes = requestBody.ImageToDecode
	}
	if err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	imageToDecode, _, err := stegImage.ReadImage(bytes.NewReader(imageBytes))
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return
	}

	imageDecoder, err := stegImage.NewImageDecoder(imageToDecode)
	if err != nil {
		logger.WithError(err).Error("Error creating image decoder")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errDecode)
		return
	}

	decoded := imageDecoder.DecodeMessage()
	if !decoded.Found {
		// Without a terminator the text is just noise read from the pixels
		decoded = model.DecodedMessage{}
	}

	logger.With("stats", toHumanizedDecodeStats(imageDecoder.Stats()), "found", decoded.Found).Info("Image decoding was successful")

	if isFlatbufferRequest(ctx) {
		ctx.Data(http.StatusOK, contentTypeFlatbuffers, buildDecodeImageFlatbuffer(decoded))
		return
	}
	ctx.JSON(http.StatusOK, api.DecodeImageResponse{Message: decoded.Text, Found: decoded.Found})
}
