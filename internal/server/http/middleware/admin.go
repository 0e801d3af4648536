package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domainErrors "github.com/mkarev/shopapi/internal/domain/errors"
	"github.com/mkarev/shopapi/internal/domain/model"
	"github.com/mkarev/shopapi/internal/server/http/dto"
)

// UserDirectory loads the full record of an authenticated user.
type UserDirectory interface {
	UserByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// AdminRequired rejects callers whose role is not admin. It must run after
// AuthRequired, and it rejects before the guarded handler touches storage.
func AdminRequired(users UserDirectory) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(UserIDContextKey)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
			return
		}
		userID, _ := val.(uuid.UUID)

		user, err := users.UserByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.MessageResponse{Message: "Unauthorized"})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.MessageResponse{Message: err.Error()})
			return
		}

		if !user.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.MessageResponse{Message: "Forbidden"})
			return
		}

		c.Next()
	}
}
