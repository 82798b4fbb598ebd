// Package middleware provides the authentication gate for kiosk endpoints.
package middleware

import (
	"net/http"
	"strings"

	"ramen-kiosk/database/model"
	"ramen-kiosk/web/entity"
	"ramen-kiosk/web/service"

	"github.com/gin-gonic/gin"
)

const userKey = "user"

// TokenAuth resolves the bearer token of each request into a user and puts
// it into the gin context. Requests without a valid token are rejected
// before any handler runs.
func TokenAuth(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing Authorization header")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid Authorization header format")
			return
		}

		user, err := authService.ResolveToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "could not validate credentials")
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// AdminRequired rejects requests whose resolved user is not an admin. Must
// be mounted after TokenAuth.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := GetUser(c)
		if user == nil {
			abortUnauthorized(c, "could not validate credentials")
			return
		}
		if !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, entity.Msg{
				Success: false,
				Msg:     "not authorized",
			})
			return
		}
		c.Next()
	}
}

// GetUser returns the user resolved by TokenAuth, or nil.
func GetUser(c *gin.Context) *model.User {
	value, exists := c.Get(userKey)
	if !exists {
		return nil
	}
	user, ok := value.(*model.User)
	if !ok {
		return nil
	}
	return user
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, entity.Msg{
		Success: false,
		Msg:     msg,
	})
}
