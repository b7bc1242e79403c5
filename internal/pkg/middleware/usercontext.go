package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/internal/pkg/cache"
	"github.com/wifey-app/wifey-api/internal/pkg/token"
	"github.com/wifey-app/wifey-api/internal/pkg/usercontext"
)

// UserContextMiddleware resolves the session cookie JWT into a user context
// for every request. Requests without a valid token proceed as anonymous;
// route-level gates decide whether that is acceptable.
func UserContextMiddleware(c *fiber.Ctx) error {
	anonymous := func() error {
		c.Locals(usercontext.KeyUserContext, usercontext.UserContext{})
		c.Locals(usercontext.KeyFromProtected, false)
		return c.Next()
	}

	raw := c.Cookies(token.CookieName)
	if raw == "" {
		return anonymous()
	}

	claims, err := token.Parse(raw)
	if err != nil {
		return anonymous()
	}

	// Tokens revoked by logout sit in the cache denylist until they expire.
	if denied, err := cache.Exists(denylistKey(claims.ID)); err == nil && denied {
		return anonymous()
	}

	userCtx := usercontext.UserContext{
		UserID:     claims.UserID,
		Username:   claims.Name,
		Email:      claims.Email,
		IsLoggedIn: true,
		IsAdmin:    claims.Role == models.ROLE_ADMIN,
	}
	c.Locals(usercontext.KeyUserContext, userCtx)
	c.Locals(usercontext.KeyFromProtected, true)
	c.Locals(usercontext.KeyUserID, claims.UserID)
	c.Locals(usercontext.KeyUsername, claims.Name)
	c.Locals(usercontext.KeyIsAdmin, userCtx.IsAdmin)

	return c.Next()
}

func denylistKey(jti string) string {
	return "auth:denylist:" + jti
}

// DenylistKey exposes the cache key for a revoked token id.
func DenylistKey(jti string) string {
	return denylistKey(jti)
}
