package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"travelapp/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const userIDKey = "user_id"

// RequireSession gates booking and search endpoints behind the active
// session. A Bearer token, when sent, must parse with our secret and carry
// the session user's id; without a header the persisted session alone is
// enough (single active user per process).
func RequireSession(sessions *services.SessionService, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := sessions.CurrentUser()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":      "no active session",
				"code":       "no_active_session",
				"request_id": GetRequestID(c),
			})
			return
		}

		if header := c.GetHeader("Authorization"); header != "" {
			tokenString := strings.TrimPrefix(header, "Bearer ")
			claimed, err := subjectFromToken(tokenString, secret)
			if err != nil || claimed != user.ID {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
					"error":      "invalid token",
					"code":       "invalid_token",
					"request_id": GetRequestID(c),
				})
				return
			}
		}

		c.Set(userIDKey, user.ID)
		c.Next()
	}
}

func subjectFromToken(tokenString string, secret []byte) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid claims")
	}
	sub, _ := claims["user_id"].(string)
	return sub, nil
}

// GetUserID extracts the authenticated user id set by RequireSession.
func GetUserID(c *gin.Context) string {
	if v, ok := c.Get(userIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
