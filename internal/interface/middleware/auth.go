package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/healthplate/backend/internal/domain/entity"
	"github.com/healthplate/backend/internal/domain/repository"
	"github.com/healthplate/backend/pkg/helpers"
	"github.com/healthplate/backend/pkg/response"
)

const ctxUserKey = "currentUser"

// unauthorizedMsg is shared by every failure path: a missing header, a
// malformed or expired token and an unknown subject are indistinguishable
// from outside.
const unauthorizedMsg = "could not validate credentials"

// Auth resolves the Authorization bearer token to a persisted user and
// attaches it to the request context.
func Auth(users repository.UserRepository, tokens *helpers.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			response.AbortError(c, http.StatusUnauthorized, unauthorizedMsg)
			return
		}
		subject, err := tokens.Validate(token)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, unauthorizedMsg)
			return
		}
		u, err := users.FindByID(c.Request.Context(), subject)
		if err != nil {
			response.AbortError(c, http.StatusUnauthorized, unauthorizedMsg)
			return
		}
		c.Set(ctxUserKey, u)
		c.Next()
	}
}

// CurrentUser returns the user attached by Auth.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, exists := c.Get(ctxUserKey)
	if !exists {
		return nil, false
	}
	u, ok := v.(*entity.User)
	return u, ok
}
