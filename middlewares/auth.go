// resolves the bearer token to a stored user and injects it into the gin
// context for downstream handlers.

package middlewares

import (
	"errors"
	"strings"

	"github.com/Modassir22/dream-home-hub/global"
	"github.com/Modassir22/dream-home-hub/models"
	"github.com/Modassir22/dream-home-hub/services"
	"github.com/Modassir22/dream-home-hub/utils"

	"github.com/gin-gonic/gin"
)

// UserLookup resolves a token subject to the stored user. services.AuthService
// satisfies it with its redis-cached GetByID.
type UserLookup interface {
	GetByID(id uint) (*models.User, error)
}

const (
	msgNoToken      = "No token, authorization denied"
	msgInvalidToken = "Token is not valid"
	msgAdminOnly    = "Access denied. Admin only."
)

// Authenticated requires a valid "Authorization: Bearer <token>" whose subject
// still exists. The user, its id and role are stored on the context.
func Authenticated(jwtSecret string, users UserLookup) Check {
	return func(c *gin.Context) Decision {
		auth := c.GetHeader("Authorization")
		raw, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || strings.TrimSpace(raw) == "" {
			return Decision{Outcome: Unauthenticated, Message: msgNoToken}
		}

		claims, err := utils.ParseToken(jwtSecret, strings.TrimSpace(raw))
		if err != nil {
			return Decision{Outcome: Unauthenticated, Message: msgInvalidToken}
		}
		id, err := claims.UserID()
		if err != nil {
			return Decision{Outcome: Unauthenticated, Message: msgInvalidToken}
		}

		u, err := users.GetByID(id)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) { // account deleted after the token was issued
				return Decision{Outcome: Unauthenticated, Message: msgInvalidToken}
			}
			return Decision{Outcome: Unavailable, Err: err}
		}

		c.Set(global.CtxUserKey, u)
		c.Set(global.CtxUserIDKey, u.ID)
		c.Set(global.CtxRoleKey, u.Role) // the stored role, not the token claim
		return allow()
	}
}

// AdminOnly must run after Authenticated.
func AdminOnly() Check {
	return func(c *gin.Context) Decision {
		if u := CurrentUser(c); u == nil || u.Role != global.RoleAdmin {
			return Decision{Outcome: Forbidden, Message: msgAdminOnly}
		}
		return allow()
	}
}

// Auth guards a route group for any signed-in user.
func Auth(jwtSecret string, users UserLookup) gin.HandlerFunc {
	return Guard(Authenticated(jwtSecret, users))
}

// Admin guards a route group for admins only.
func Admin(jwtSecret string, users UserLookup) gin.HandlerFunc {
	return Guard(Authenticated(jwtSecret, users), AdminOnly())
}

// CurrentUser returns the user attached by Authenticated, or nil.
func CurrentUser(c *gin.Context) *models.User {
	v, ok := c.Get(global.CtxUserKey)
	if !ok {
		return nil
	}
	u, _ := v.(*models.User)
	return u
}
