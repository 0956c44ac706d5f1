package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"opentrip/internal/domain"
)

const authUserKey = "auth_user"

// RequireAuth validates the Bearer token and stores the authenticated
// principal in the context. Aggregates never see credentials.
func RequireAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token tidak ditemukan"})
			return
		}
		raw := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token tidak valid"})
			return
		}

		rc := domain.RequestContext{}
		if v, ok := claims["user_id"].(string); ok {
			rc.UserID = v
		}
		if v, ok := claims["sub"].(string); ok {
			rc.Username = v
		}
		if rc.Username == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token tidak valid"})
			return
		}

		c.Set(authUserKey, rc)
		c.Next()
	}
}

// GetAuthUser extracts the authenticated principal when present.
func GetAuthUser(c *gin.Context) (domain.RequestContext, bool) {
	if v, ok := c.Get(authUserKey); ok {
		if rc, ok := v.(domain.RequestContext); ok {
			return rc, true
		}
	}
	return domain.RequestContext{}, false
}
