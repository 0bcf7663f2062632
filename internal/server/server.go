package server

import (
	"fmt"
	"net/http"
	"time"
	"tsteg/internal/logging"
	"tsteg/internal/metrics"
	"tsteg/pkg/config"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "tsteg/docs"
)

const (
	RFC3339Millis = "2006-01-02T15:04:05.000Z07:00"

	maxImagePixelsKey = "max_image_pixels"
)

// StartServer godoc
// @title tSteg API
// @version 1.0
// @description An API to hide text in images
// @BasePath /api/v1
func StartServer(serverConfig config.ServerConfig) error {
	serverConfig.PopulateUnsetConfigVars()
	logging.BuildLogger().Info("Starting server", "port", serverConfig.Port, "max_body_size", humanize.Bytes(uint64(serverConfig.MaxBodyBytes)))
	return NewRouter(serverConfig).Run(fmt.Sprintf(":%s", serverConfig.Port))
}

func NewRouter(serverConfig config.ServerConfig) *gin.Engine {
	serverConfig.PopulateUnsetConfigVars()

	r := gin.New()
	r.Use(requestIDMiddleware(), gin.LoggerWithConfig(gin.LoggerConfig{Formatter: logFormatter, Output: logging.Output()}), gin.Recovery(), metrics.Middleware())
	if serverConfig.EnableSwagger {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	r.GET("/metrics", metrics.Handler())

	v1 := r.Group("/api/v1", maxBodySizeMiddleware(serverConfig.MaxBodyBytes), maxImagePixelsMiddleware(serverConfig.MaxImagePixels))
	v1.POST("/encode/image", EncodeImageHandler)
	v1.POST("/decode/image", DecodeImageHandler)
	v1.POST("/capacity/image", CapacityImageHandler)

	return r
}

func maxBodySizeMiddleware(maxBodyBytes int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBodyBytes)
		ctx.Next()
	}
}

func maxImagePixelsMiddleware(maxImagePixels int) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set(maxImagePixelsKey, maxImagePixels)
		ctx.Next()
	}
}

func logFormatter(param gin.LogFormatterParams) string {
	if param.Latency > time.Minute {
		param.Latency = param.Latency.Truncate(time.Second)
	}

	requestID, _ := param.Keys[logging.RequestIDKey].(string)
	return fmt.Sprintf("{\"timestamp\":\"%v\", \"status_code\": \"%d\", \"latency\": \"%v\", \"latency_raw\": \"%d\", \"request_size\": \"%s\", \"request_size_raw\": \"%d\", \"client_ip\":\"%s\", \"method\": \"%s\", \"path\": \"%v\", \"request_id\": \"%s\", \"error\": \"%s\"}\n",
		param.TimeStamp.Format(RFC3339Millis),
		param.StatusCode,
		param.Latency,
		param.Latency,
		humanize.Bytes(uint64(param.BodySize)),
		param.BodySize,
		param.ClientIP,
		param.Method,
		param.Path,
		requestID,
		param.ErrorMessage,
	)
}
