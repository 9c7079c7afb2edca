package middleware

import (
	"github.com/gin-gonic/gin"
)

// NoStore marks responses as uncacheable. API data changes on every write
// and is never served from an intermediary cache.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
