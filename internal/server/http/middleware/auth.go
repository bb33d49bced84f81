package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	pkgAuth "github.com/zoombxu/surplus/internal/pkg/auth"
)

const (
	// ClaimsContextKey is a gin context key for the authenticated principal.
	ClaimsContextKey = "authClaims"
	authCookieName   = "surplus_token"
)

// TokenParser resolves a raw token into claims.
type TokenParser interface {
	ParseToken(token string) (pkgAuth.Claims, error)
}

// AuthRequired ensures the request carries a valid token before the
// handler runs. Tokens are accepted from the Authorization header, the
// auth cookie, or a token query parameter (used by websocket clients).
func AuthRequired(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, err := parser.ParseToken(token)
		if err != nil {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// AdminOnly rejects non-admin principals. It must run after AuthRequired.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(ClaimsContextKey)
		if !ok {
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		claims, _ := val.(pkgAuth.Claims)
		if claims.Role != pkgAuth.RoleAdmin {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}

	if cookie, err := c.Cookie(authCookieName); err == nil && cookie != "" {
		return cookie
	}

	return c.Query("token")
}

// SetAuthCookie writes the auth token cookie to the response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}
