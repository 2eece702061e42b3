package auth

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	// AuthClaimsKey is the key used to store JWT claims in gin context
	AuthClaimsKey = "auth_claims"

	// TokenCookie carries the identity token for browser requests
	TokenCookie = "campus_token"
)

// OptionalIdentity adds the caller's claims to the context when a valid
// token is present and lets every request through
func OptionalIdentity(jwtService *JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := extractToken(c); tokenString != "" {
			if claims, err := jwtService.ValidateToken(tokenString); err == nil {
				c.Set(AuthClaimsKey, claims)
			}
		}
		c.Next()
	}
}

// RequireIdentity redirects requests without valid claims to loginURL.
// It must run after OptionalIdentity.
func RequireIdentity(loginURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if IsAuthenticated(c) {
			c.Next()
			return
		}

		target := loginURL
		if u, err := url.Parse(loginURL); err == nil {
			q := u.Query()
			q.Set("next", c.Request.URL.RequestURI())
			u.RawQuery = q.Encode()
			target = u.String()
		}

		c.Redirect(http.StatusFound, target)
		c.Abort()
	}
}

// extractToken reads a Bearer token from the Authorization header, falling
// back to the token cookie
func extractToken(c *gin.Context) string {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.ToLower(parts[0]) == "bearer" {
			return strings.TrimSpace(parts[1])
		}
		return ""
	}

	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	return ""
}

// GetAuthClaims retrieves auth claims from gin context
func GetAuthClaims(c *gin.Context) *Claims {
	claims, exists := c.Get(AuthClaimsKey)
	if !exists {
		return nil
	}
	return claims.(*Claims)
}

// IsAuthenticated checks if user is authenticated
func IsAuthenticated(c *gin.Context) bool {
	return GetAuthClaims(c) != nil
}

// UserID returns the caller's user id, or "" without identity
func UserID(c *gin.Context) string {
	if claims := GetAuthClaims(c); claims != nil {
		return claims.UserID.String()
	}
	return ""
}
