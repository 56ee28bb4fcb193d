package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/justsurfingit/placement-portal/internal/auth"
	"github.com/justsurfingit/placement-portal/internal/dtos"
)

const claimsKey = "claims"

// TokenVerifier is satisfied by *auth.Issuer.
type TokenVerifier interface {
	VerifyToken(token string) (*auth.Claims, error)
}

// Authenticate gates a route group on a valid token in the Authorization
// header. Routes opt in by adding it to their chain.
func Authenticate(verifier TokenVerifier, log logrus.FieldLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dtos.MessageResponse{Message: "Token required"})
			return
		}

		claims, err := verifier.VerifyToken(token)
		if err != nil {
			log.WithError(err).WithField("path", c.Request.URL.Path).Warn("token rejected")
			c.AbortWithStatusJSON(http.StatusForbidden, dtos.MessageResponse{Message: "Invalid or expired token"})
			return
		}

		c.Set(claimsKey, claims)
		c.Next()
	}
}

// RequireRole must run after Authenticate.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok || claims.Principal().Role != role {
			c.AbortWithStatusJSON(http.StatusForbidden, dtos.MessageResponse{Message: "Insufficient role"})
			return
		}
		c.Next()
	}
}

func ClaimsFromContext(c *gin.Context) (*auth.Claims, bool) {
	v, ok := c.Get(claimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*auth.Claims)
	return claims, ok
}
