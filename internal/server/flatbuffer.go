package server

import (
	"errors"
	"github.com/gin-gonic/gin"
	flatbuffers "github.com/google/flatbuffers/go"
	"textsteg/api/textsteg/Message"
	"textsteg/pkg/model"
)

const (
	contentTypeFlatbuffers = "application/octet-stream"
)

var (
	errInvalidFlatbuffer = errors.New("request body is not a valid flatbuffer")
)

// Requests sent as application/octet-stream carry flatbuffers tables, and get flatbuffers tables back
func isFlatbufferRequest(ctx *gin.Context) bool {
	return ctx.ContentType() == contentTypeFlatbuffers
}

// readFlatbuffer hands the request body to read. Tables are read lazily, so every field has to be copied out inside
// read for malformed buffers to be caught here instead of panicking later
func readFlatbuffer(ctx *gin.Context, read func(body []byte)) (err error) {
	body, err := ctx.GetRawData()
	if err != nil {
		return err
	}
	if len(body) < flatbuffers.SizeUOffsetT {
		return errInvalidFlatbuffer
	}

	defer func() {
		if r := recover(); r != nil {
			err = errInvalidFlatbuffer
		}
	}()
	read(body)
	return nil
}

func readEncodeImageFlatbuffer(ctx *gin.Context) (req encodeRequest, err error) {
	err = readFlatbuffer(ctx, func(body []byte) {
		fbRequest := Message.GetRootAsEncodeImageRequest(body, 0)
		req = encodeRequest{
			image:          fbRequest.ImageToEncodeBytes(),
			message:        string(fbRequest.Message()),
			pngCompression: int(fbRequest.PngCompression()),
			outputFormat:   string(fbRequest.OutputFormat()),
		}
	})
	return req, err
}

func readDecodeImageFlatbuffer(ctx *gin.Context) (image []byte, err error) {
	err = readFlatbuffer(ctx, func(body []byte) {
		image = Message.GetRootAsDecodeImageRequest(body, 0).ImageToDecodeBytes()
	})
	return image, err
}

func buildEncodeImageFlatbuffer(encodedImage []byte, result model.EncodeResult) []byte {
	builder := flatbuffers.NewBuilder(len(encodedImage) + 64)
	encodedImageOffset := builder.CreateByteVector(encodedImage)

	Message.EncodeImageResponseStart(builder)
	Message.EncodeImageResponseAddEncodedImage(builder, encodedImageOffset)
	Message.EncodeImageResponseAddCapacity(builder, int32(result.Capacity))
	Message.EncodeImageResponseAddMessageLength(builder, int32(result.MessageLength))
	Message.EncodeImageResponseAddTruncated(builder, result.Truncated)
	Message.EncodeImageResponseAddTerminatorStored(builder, result.TerminatorStored)
	Message.FinishEncodeImageResponseBuffer(builder, Message.EncodeImageResponseEnd(builder))

	return builder.FinishedBytes()
}

func buildDecodeImageFlatbuffer(decoded model.DecodedMessage) []byte {
	builder := flatbuffers.NewBuilder(len(decoded.Text) + 32)
	messageOffset := builder.CreateString(decoded.Text)

	Message.DecodeImageResponseStart(builder)
	Message.DecodeImageResponseAddMessage(builder, messageOffset)
	Message.DecodeImageResponseAddFound(builder, decoded.Found)
	Message.FinishDecodeImageResponseBuffer(builder, Message.DecodeImageResponseEnd(builder))

	return builder.FinishedBytes()
}
