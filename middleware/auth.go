package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"api/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "userID"

// AuthMiddleware validates the bearer token and stores the authenticated
// user ID in the request context. User accounts live in a separate service;
// here identity is the token subject.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing bearer token"})
			return
		}

		userID, err := parseToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// GetUserIDFromRequest returns the authenticated user's ID. It responds
// with 401 itself when the context carries no identity, so callers can just
// return on error.
func GetUserIDFromRequest(c *gin.Context) (string, error) {
	userID := c.GetString(userIDKey)
	if userID == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return "", fmt.Errorf("no authenticated user in context")
	}
	return userID, nil
}

// ParseUserToken validates a raw token outside the middleware chain. Used by
// the websocket endpoint, where browsers cannot set an Authorization header.
func ParseUserToken(token string) (string, error) {
	return parseToken(token)
}

func parseToken(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(config.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return subject, nil
}
