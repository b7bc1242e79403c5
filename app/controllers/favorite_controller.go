package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/internal/pkg/database"
)

// HandleListFavorites lists favorites, optionally filtered by customer email.
func HandleListFavorites(c *fiber.Ctx) error {
	db := database.GetDB()
	page := parsePage(c)

	query := db.Model(&models.Favorite{})
	if email := strings.ToLower(strings.TrimSpace(c.Query("email"))); email != "" {
		query = query.Where("email = ?", email)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return internalError(c, err)
	}
	var favorites []models.Favorite
	if err := query.Preload("Product").Order("created_at DESC").
		Offset(pageOffset(page)).Limit(PageSize).
		Find(&favorites).Error; err != nil {
		return internalError(c, err)
	}
	return paginated(c, favorites, total, page)
}

// HandleCreateFavorite saves a product for a customer. Saving the same
// product twice is a 409 from the unique index.
func HandleCreateFavorite(c *fiber.Ctx) error {
	favorite := &models.Favorite{}
	if err := c.BodyParser(favorite); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	favorite.Email = strings.ToLower(strings.TrimSpace(favorite.Email))
	if err := validate.Struct(favorite); err != nil {
		return handleDBError(c, err)
	}

	db := database.GetDB()
	var product models.Product
	if err := db.First(&product, favorite.ProductID).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Create(favorite).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": favorite})
}

// HandleDeleteFavorite removes a saved product.
func HandleDeleteFavorite(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var favorite models.Favorite
	if err := db.First(&favorite, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Delete(&favorite).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Favorite removed"})
}
