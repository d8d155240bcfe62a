package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/fitness-booking/internal/auth"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
)

const ContextClaims = "claims"

// AuthMiddleware requires a bearer token. A missing or malformed header is
// 401; a token that fails verification for any reason is 403.
func AuthMiddleware(tokens *auth.TokenIssuer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Unauthorized(c, "missing_authorization_header", "Unauthorized")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Unauthorized(c, "invalid_authorization_header", "Unauthorized")
			c.Abort()
			return
		}

		claims, err := tokens.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Forbidden(c, "invalid_token", "Access forbidden")
			c.Abort()
			return
		}

		c.Set(ContextClaims, claims)
		c.Next()
	}
}

// ClaimsFrom returns the verified claims stored by AuthMiddleware.
func ClaimsFrom(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok && claims != nil
}

// MustClaims is for handlers mounted behind AuthMiddleware.
func MustClaims(c *gin.Context) *auth.Claims {
	return c.MustGet(ContextClaims).(*auth.Claims)
}
