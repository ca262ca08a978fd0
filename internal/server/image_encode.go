package server

import (
	"bytes"
	"errors"
	"github.com/gin-gonic/gin"
	"image/png"
	"net/http"
	"textsteg/api"
	"textsteg/internal/logging"
	"textsteg/pkg/config"
	stegImage "textsteg/pkg/image"
	"textsteg/pkg/message"
)

type encodeRequest struct {
	image          []byte
	message        string
	pngCompression int
	outputFormat   string
}

func bindEncodeImageJSON(ctx *gin.Context) (encodeRequest, error) {
	var requestBody api.EncodeImageRequest
	if err := ctx.ShouldBindJSON(&requestBody); err != nil {
		return encodeRequest{}, err
	}

	compression, err := config.ParsePngCompression(requestBody.PngCompression)
	if err != nil {
		return encodeRequest{}, err
	}
	return encodeRequest{
		image:          requestBody.ImageToEncode,
		message:        requestBody.Message,
		pngCompression: int(compression),
		outputFormat:   requestBody.OutputFormat,
	}, nil
}

// EncodeImageHandler godoc
//
// @Summary Hide a message in the supplied image
// @Description This endpoint hides the message in the image and returns the encoded image, always as a lossless format. Messages that do not fit are cut short and flagged as truncated. Requests sent as application/octet-stream are read as flatbuffers and answered with flatbuffers, all errors are returned as JSON
// @Tags image
// @Accept json,octet-stream
// @Produce json,octet-stream
// @Param requestBody body api.EncodeImageRequest true "Body with the image to encode and the message to hide in it, as well as configuration for the output image"
// @Success 200 {object} api.EncodeImageResponse
// @Failure 400 {object} api.Error
// @Failure 500 {object} api.Error
// @Router /encode/image [post]
func EncodeImageHandler(ctx *gin.Context) {
	logger := logging.BuildLoggerFromCtx(ctx)
	logger.Debug("Processing image encode request")

	var (
		req encodeRequest
		err error
	)
	if isFlatbufferRequest(ctx) {
		req, err = readEncodeImageFlatbuffer(ctx)
	} else {
		req, err = bindEncodeImageJSON(ctx)
	}
	if err != nil {
		logger.WithError(err).Error("Error decoding request body")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errRequestBodyDecode)
		return
	}

	imageToEncode, _, err := stegImage.ReadImage(bytes.NewReader(req.image))
	if err != nil {
		logger.WithError(err).Error("Error decoding request image")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, errInvalidImage)
		return
	}

	imageEncoder, err := stegImage.NewImageEncoder(imageToEncode, config.ImageEncodeConfig{
		PngCompressionLevel: png.CompressionLevel(req.pngCompression),
		OutputFormat:        config.OutputFormat(req.outputFormat),
	})
	if err != nil {
		logger.WithError(err).Error("Error creating image encoder")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, api.Error{Code: "invalid_config", Error: err.Error()})
		return
	}

	result, err := imageEncoder.EncodeMessage(req.message)
	var validationErr *message.ValidationError
	if errors.As(err, &validationErr) {
		logger.WithError(err).Info("Rejected message that cannot be encoded")
		ctx.AbortWithStatusJSON(http.StatusBadRequest, api.Error{Code: "invalid_message", Error: validationErr.Error()})
		return
	} else if err != nil {
		logger.WithError(err).Error("Error encoding message into image")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errEncode)
		return
	}

	encodedImageBuffer := bytes.NewBuffer(make([]byte, 0, len(req.image))) // pre allocate with size of original, since it should be similar
	if err = imageEncoder.WriteEncodedImage(encodedImageBuffer); err != nil {
		logger.WithError(err).Error("Error writing encoded image")
		ctx.AbortWithStatusJSON(http.StatusInternalServerError, errEncode)
		return
	}

	logger.With("stats", toHumanizedEncodeStats(imageEncoder.Stats()), "truncated", result.Truncated).Info("Image encoding was successful")

	if isFlatbufferRequest(ctx) {
		ctx.Data(http.StatusOK, contentTypeFlatbuffers, buildEncodeImageFlatbuffer(encodedImageBuffer.Bytes(), result))
		return
	}
	ctx.JSON(http.StatusOK, api.EncodeImageResponse{
		EncodedImage:     encodedImageBuffer.Bytes(),
		Capacity:         result.Capacity,
		MessageLength:    result.MessageLength,
		Truncated:        result.Truncated,
		TerminatorStored: result.TerminatorStored,
	})
}
