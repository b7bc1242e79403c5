package controllers

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/internal/pkg/counter"
	"github.com/wifey-app/wifey-api/internal/pkg/database"
)

// HandleListPopups lists popups.
func HandleListPopups(c *fiber.Ctx) error {
	db := database.GetDB()
	page := parsePage(c)

	var total int64
	if err := db.Model(&models.Popup{}).Count(&total).Error; err != nil {
		return internalError(c, err)
	}
	var popups []models.Popup
	if err := db.Order("created_at DESC").
		Offset(pageOffset(page)).Limit(PageSize).
		Find(&popups).Error; err != nil {
		return internalError(c, err)
	}
	return paginated(c, popups, total, page)
}

// HandleGetActivePopup returns the popup currently visible on the storefront,
// if any, and counts the impression. Impressions are buffered in Redis and
// flushed to the popups table in batches.
func HandleGetActivePopup(c *fiber.Ctx) error {
	db := database.GetDB()
	var popups []models.Popup
	if err := db.Where("active = ?", true).
		Order("created_at DESC").Find(&popups).Error; err != nil {
		return internalError(c, err)
	}

	now := time.Now()
	for i := range popups {
		if popups[i].IsVisible(now) {
			if err := counter.AddPopupView(popups[i].ID); err != nil {
				log.Printf("popup: could not count impression for %d: %v", popups[i].ID, err)
			}
			return c.JSON(fiber.Map{"data": popups[i]})
		}
	}
	return c.JSON(fiber.Map{"data": nil})
}

// HandleCreatePopup creates a popup.
func HandleCreatePopup(c *fiber.Ctx) error {
	popup := &models.Popup{Active: true}
	if err := c.BodyParser(popup); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if err := validate.Struct(popup); err != nil {
		return handleDBError(c, err)
	}
	if err := database.GetDB().Create(popup).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": popup})
}

// HandleGetPopup returns a popup by id.
func HandleGetPopup(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	var popup models.Popup
	if err := database.GetDB().First(&popup, id).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": popup})
}

// HandleUpdatePopup updates a popup.
func HandleUpdatePopup(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var popup models.Popup
	if err := db.First(&popup, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := c.BodyParser(&popup); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	popup.ID = id
	if err := validate.Struct(&popup); err != nil {
		return handleDBError(c, err)
	}
	if err := db.Save(&popup).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": popup})
}

// HandleDeletePopup removes a popup.
func HandleDeletePopup(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var popup models.Popup
	if err := db.First(&popup, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Delete(&popup).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Popup deleted"})
}
