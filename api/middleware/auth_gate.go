package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blogdeck/auth"
	"blogdeck/dto"
)

// ContextAuthUserID is the gin context key holding the authenticated user's
// ObjectID hex once the gate has passed.
const ContextAuthUserID = "auth_user_id"

// AuthGate rejects requests without a valid Bearer token. It only
// authenticates; resource-level authorization happens in the ownership
// checks behind it.
func AuthGate(tokens *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponseDTO{Message: "Unauthorized"})
			return
		}

		userID, err := tokens.Parse(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponseDTO{Message: "Unauthorized"})
			return
		}

		c.Set(ContextAuthUserID, userID)
		c.Next()
	}
}
