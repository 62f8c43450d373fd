package middleware

import (
	"net/http"
	"strings"

	"occlusa/models"
	"occlusa/utils"

	"github.com/gin-gonic/gin"
)

// UserContextKey is the gin context key holding the caller's models.UserContext.
const UserContextKey = "userContext"

// UserContextMiddleware extracts the staff caller's identity from a Bearer
// token. With optional set, requests without a token pass through with no
// user context (the patient-app form path); otherwise a missing or invalid
// token aborts the request.
func UserContextMiddleware(optional bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			if optional {
				c.Next()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		userCtx, err := utils.ParseUserContext(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Insufficient authorization",
			})
			return
		}

		c.Set(UserContextKey, userCtx)
		c.Next()
	}
}

// GetUserContext retrieves the caller identity stored by UserContextMiddleware.
func GetUserContext(c *gin.Context) (models.UserContext, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return models.UserContext{}, false
	}
	userCtx, ok := value.(models.UserContext)
	return userCtx, ok
}
