package middleware

import (
	"net"
	"strings"

	"github.com/gin-gonic/gin"
)

const RealIPKey = "real_ip"

// RealIP resolves the client address behind proxies, in order:
// CF-Connecting-IP, the left-most X-Forwarded-For entry, then c.ClientIP().
func RealIP() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(RealIPKey, realIP(c))
		c.Next()
	}
}

func realIP(c *gin.Context) string {
	if cf := strings.TrimSpace(c.GetHeader("CF-Connecting-IP")); cf != "" {
		if ip := net.ParseIP(cf); ip != nil {
			return ip.String()
		}
	}
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if ip := net.ParseIP(strings.TrimSpace(first)); ip != nil {
			return ip.String()
		}
	}
	return c.ClientIP()
}

// ClientIP prefers the address resolved by RealIP.
func ClientIP(c *gin.Context) string {
	if ip := c.GetString(RealIPKey); ip != "" {
		return ip
	}
	return c.ClientIP()
}
