package middleware

import (
	"compress/gzip"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/wsgateway/internal/domain/model"
)

// DecompressRequest transparently handles gzip encoded request bodies.
// A body that is not valid gzip is rejected with a 400 Status.
func DecompressRequest() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !isGzipEncoded(c.GetHeader("Content-Encoding")) {
			c.Next()
			return
		}

		originalBody := c.Request.Body
		reader, err := gzip.NewReader(originalBody)
		if err != nil {
			st := model.BadRequest("invalid gzip request body: %v", err)
			_ = c.Error(st)
			c.AbortWithStatusJSON(st.Code, st)
			return
		}
		defer reader.Close()
		defer originalBody.Close()

		c.Request.Body = io.NopCloser(reader)
		c.Request.Header.Del("Content-Encoding")
		c.Request.ContentLength = -1
		c.Next()
	}
}

func isGzipEncoded(header string) bool {
	for _, enc := range strings.Split(header, ",") {
		switch strings.ToLower(strings.TrimSpace(enc)) {
		case "gzip", "x-gzip":
			return true
		}
	}
	return false
}
