package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/app/repository"
)

type createUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

// HandleListUsers lists users, newest first, with optional ?q= search.
func HandleListUsers(c *fiber.Ctx) error {
	repos := repository.GetGlobalRepositories()

	if q := c.Query("q"); q != "" {
		users, err := repos.User.Search(q)
		if err != nil {
			return internalError(c, err)
		}
		return paginated(c, users, int64(len(users)), 1)
	}

	page := parsePage(c)
	total, err := repos.User.Count()
	if err != nil {
		return internalError(c, err)
	}
	users, err := repos.User.List(pageOffset(page), PageSize)
	if err != nil {
		return internalError(c, err)
	}
	return paginated(c, users, total, page)
}

// HandleCreateUser creates a user account.
func HandleCreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}

	user, err := models.CreateUser(req.Name, req.Email, req.Password)
	if err != nil {
		return handleDBError(c, err)
	}
	user.Phone = req.Phone
	if req.Role == models.ROLE_ADMIN {
		user.Role = models.ROLE_ADMIN
	}

	if err := repository.GetGlobalRepositories().User.Create(user); err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": user})
}

// HandleGetUser returns a user by id.
func HandleGetUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	user, err := repository.GetGlobalRepositories().User.GetByID(id)
	if err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": user})
}

// HandleUpdateUser updates profile fields; password changes go through
// SetPassword so the stored value stays hashed.
func HandleUpdateUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	repos := repository.GetGlobalRepositories()
	user, err := repos.User.GetByID(id)
	if err != nil {
		return handleDBError(c, err)
	}

	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}
	if req.Phone != "" {
		user.Phone = req.Phone
	}
	if req.Role != "" {
		user.Role = req.Role
	}
	if req.Password != "" {
		if err := user.SetPassword(req.Password); err != nil {
			return internalError(c, err)
		}
	}

	if err := user.Validate(); err != nil {
		return handleDBError(c, err)
	}
	if err := repos.User.Update(user); err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": user})
}

// HandleDeleteUser soft deletes a user.
func HandleDeleteUser(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.User.GetByID(id); err != nil {
		return handleDBError(c, err)
	}
	if err := repos.User.Delete(id); err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "User deleted"})
}
