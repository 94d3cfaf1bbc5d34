package handlers

import (
	"net/http"
	"strings"

	"recipebox/internal/auth"
	"recipebox/internal/services"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthRequired verifies the bearer token and attaches the resolved
// identity to the request context. No database round-trip happens here;
// the token payload is the identity source for authorization decisions.
func (h *Handler) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			fail(c, http.StatusUnauthorized, "No token provided")
			c.Abort()
			return
		}

		identity, err := h.tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			fail(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// CurrentIdentity returns the identity AuthRequired attached, if any.
func CurrentIdentity(c *gin.Context) (auth.Identity, bool) {
	val, exists := c.Get(identityKey)
	if !exists {
		return auth.Identity{}, false
	}
	identity, ok := val.(auth.Identity)
	return identity, ok
}

func (h *Handler) RateLimitMiddleware(limiter *services.IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		l := limiter.GetLimiter(ip)
		if !l.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success": false,
				"message": "Rate limit exceeded. Please try again later.",
			})
			return
		}
		c.Next()
	}
}
