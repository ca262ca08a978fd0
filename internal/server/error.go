package server

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"textsteg/api"
)

var (
	errRequestBodyDecode = api.Error{Code: "invalid_request", Error: "Error reading request body"}
	errInvalidImage      = api.Error{Code: "invalid_image", Error: "Invalid image supplied in request body"}
	errEncode            = api.Error{Code: "encode_error", Error: "An error occurred while encoding the image"}
)

func limitRequestBody(maxBytes int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBytes)
		ctx.Next()
	}
}
