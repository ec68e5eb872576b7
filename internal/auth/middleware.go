package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/marketloop/commerce-backend/internal/identity"
)

const principalKey = "principal"

// Middleware resolves the request principal from the Authorization header and
// stores it in the gin context. A missing or unparseable token yields an
// anonymous principal; the services decide whether authentication is required.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		tokenStr := strings.TrimSpace(strings.TrimPrefix(header, "Bearer"))
		if tokenStr == "" {
			c.Next()
			return
		}
		claims, err := ParseToken(secret, tokenStr)
		if err != nil {
			c.Next()
			return
		}
		c.Set(principalKey, claims.Principal())
		c.Next()
	}
}

// PrincipalFrom extracts the principal resolved by Middleware. Requests that
// carried no valid token get the anonymous principal.
func PrincipalFrom(c *gin.Context) identity.Principal {
	if v, ok := c.Get(principalKey); ok {
		if p, ok := v.(identity.Principal); ok {
			return p
		}
	}
	return identity.Principal{}
}
