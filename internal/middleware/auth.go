package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/internal/model"
	"github.com/sricharan-thirnathi/Flutter-Project-X-Backend/pkg/auth"
)

// AuthMiddleware validates bearer tokens and injects the user id into context
func AuthMiddleware(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Error: "token is missing"})
			return
		}

		// "Bearer <token>": the token is whatever follows the first whitespace run
		fields := strings.Fields(authHeader)
		if len(fields) < 2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Error: "invalid token"})
			return
		}

		userID, err := jwtManager.Validate(fields[1])
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Error: "token has expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, model.ErrorResponse{Error: "invalid token"})
			return
		}

		// Store user info in context for downstream handlers
		c.Set("user_id", userID)

		c.Next()
	}
}
