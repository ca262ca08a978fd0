package server

import (
	"fmt"
	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"time"

	_ "textsteg/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"

	// MaxRequestBodySize bounds uploaded images, which are fully decoded into memory
	MaxRequestBodySize = 64 << 20
)

// StartServer godoc
// @title textsteg API
// @version 1.0
// @description An API to hide text messages in images and read them back
// @BasePath /api/v1
func StartServer(port string) error {
	return NewRouter().Run(fmt.Sprintf(":%s", port))
}

func NewRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter}), gin.Recovery(), limitRequestBody(MaxRequestBodySize))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	v1.POST("/encode/image", EncodeImageHandler)
	v1.POST("/decode/image", DecodeImageHandler)
	v1.POST("/capacity/image", CapacityImageHandler)

	return r
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	return fmt.Sprintf("{\"timestamp\":%q, \"status_code\": \"%d\", \"latency\": %q, \"latency_raw\": \"%d\", \"response_size\": %q, \"response_size_raw\": \"%d\", \"client_ip\":%q, \"method\": %q, \"path\": %q, \"error\": %q}\n",
		param.TimeStamp.Format(RFC3339Millis),
		param.StatusCode,
		param.Latency.String(),
		param.Latency,
		humanize.Bytes(uint64(max(param.BodySize, 0))),
		param.BodySize,
		param.ClientIP,
		param.Method,
		param.Path,
		param.ErrorMessage,
	)
}
