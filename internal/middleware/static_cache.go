package middleware

import "github.com/gin-gonic/gin"

// StaticCache sets Cache-Control on served uploads. An empty value sends nothing.
func StaticCache(cacheControl string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cacheControl != "" {
			c.Header("Cache-Control", cacheControl)
		}
		c.Next()
	}
}
