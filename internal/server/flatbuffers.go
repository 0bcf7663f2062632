package server

import (
	"fmt"
	"io"

	"github.com/gin-gonic/gin"
)

const mimeOctetStream = "application/octet-stream"

func isFlatbufferRequest(ctx *gin.Context) bool {
	return ctx.ContentType() == mimeOctetStream
}

// readFlatbuffer hands the raw body to parse. Generated accessors index straight into the buffer and panic on
// truncated input, which is turned into an error here.
func readFlatbuffer(ctx *gin.Context, parse func(body []byte)) (err error) {
	body, err := io.ReadAll(ctx.Request.Body)
	if err != nil {
		return err
	}
	if len(body) < 4 {
		return fmt.Errorf("flatbuffer body too short: %d bytes", len(body))
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("malformed flatbuffer body: %v", r)
		}
	}()
	parse(body)
	return nil
}
