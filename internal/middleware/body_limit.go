package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UploadBodyLimit rejects bodies larger than maxSizeMB. A declared
// Content-Length over the limit is refused up front; chunked bodies are cut
// off while being read.
func UploadBodyLimit(maxSizeMB int) gin.HandlerFunc {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	maxBytes := int64(maxSizeMB) * 1024 * 1024

	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"error": fmt.Sprintf("el archivo no puede superar %dMB", maxSizeMB)})
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
