package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

// proxy headers consulted in order; the first one carrying a parseable
// address wins
var ipHeaders = []string{"CF-Connecting-IP", "X-Forwarded-For"}

// RealIP resolves the client address behind proxies and stores it in the
// Gin context under "real_ip". Rate-limit keys read it from there.
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("real_ip", resolveIP(c))
		c.Next()
	}
}

func resolveIP(c *gin.Context) string {
	for _, h := range ipHeaders {
		v := c.GetHeader(h)
		if v == "" {
			continue
		}
		// X-Forwarded-For may hold a chain; the left-most entry is the client
		first := strings.TrimSpace(strings.SplitN(v, ",", 2)[0])
		if ip := net.ParseIP(first); ip != nil {
			return ip.String()
		}
	}
	return c.ClientIP()
}
