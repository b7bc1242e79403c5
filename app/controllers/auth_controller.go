package controllers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wifey-app/wifey-api/app/repository"
	"github.com/wifey-app/wifey-api/internal/pkg/cache"
	"github.com/wifey-app/wifey-api/internal/pkg/middleware"
	"github.com/wifey-app/wifey-api/internal/pkg/token"
	"github.com/wifey-app/wifey-api/internal/pkg/usercontext"
	"github.com/wifey-app/wifey-api/internal/pkg/utils"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies credentials and sets the session JWT cookie.
func HandleLogin(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if err := validate.Var(req.Email, "required,email"); err != nil {
		return badRequest(c, "INVALID_EMAIL", "A valid email address is required")
	}
	if req.Password == "" {
		return badRequest(c, "INVALID_CREDENTIALS", "Password is required")
	}

	user, err := repository.GetGlobalRepositories().User.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same response as a wrong password; do not reveal which
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":   "INVALID_CREDENTIALS",
				"message": "Email or password is incorrect",
			})
		}
		return internalError(c, err)
	}

	if !user.CheckPassword(req.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "INVALID_CREDENTIALS",
			"message": "Email or password is incorrect",
		})
	}
	if !user.IsActive() {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error":   "FORBIDDEN",
			"message": "Account is not active",
		})
	}

	now := time.Now()
	signed, _, err := token.Issue(user.ID, user.Name, user.Email, user.Role, now)
	if err != nil {
		return internalError(c, err)
	}

	user.LastLoginAt = &now
	if err := repository.GetGlobalRepositories().User.Update(user); err != nil {
		return internalError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     token.CookieName,
		Value:    signed,
		Expires:  now.Add(token.TTL()),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Logged in",
		"data":    fiber.Map{"user": user},
	})
}

// HandleLogout denylists the current token until it expires and clears the
// cookie.
func HandleLogout(c *fiber.Ctx) error {
	raw := c.Cookies(token.CookieName)
	if raw != "" {
		if claims, err := token.Parse(raw); err == nil {
			ttl := time.Until(claims.ExpiresAt.Time)
			if ttl > 0 {
				if err := cache.Set(middleware.DenylistKey(claims.ID), "1", ttl); err != nil {
					return internalError(c, err)
				}
			}
		}
	}

	c.Cookie(&fiber.Cookie{
		Name:     token.CookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{"message": "Logged out"})
}

// HandleMe returns the authenticated user's account.
func HandleMe(c *fiber.Ctx) error {
	userCtx := usercontext.GetUserContext(c)
	if !userCtx.IsLoggedIn {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error":   "UNAUTHORIZED",
			"message": "login required",
		})
	}

	user, err := repository.GetGlobalRepositories().User.GetByID(userCtx.UserID)
	if err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"user":      user,
		"avatarUrl": utils.GetGravatarURL(user.Email, 200),
	}})
}
