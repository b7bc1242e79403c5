package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/internal/pkg/database"
)

// HandleListDiscounts lists discount codes.
func HandleListDiscounts(c *fiber.Ctx) error {
	db := database.GetDB()
	page := parsePage(c)

	var total int64
	if err := db.Model(&models.Discount{}).Count(&total).Error; err != nil {
		return internalError(c, err)
	}
	var discounts []models.Discount
	if err := db.Order("created_at DESC").
		Offset(pageOffset(page)).Limit(PageSize).
		Find(&discounts).Error; err != nil {
		return internalError(c, err)
	}
	return paginated(c, discounts, total, page)
}

// HandleCreateDiscount creates a discount code. Codes are stored uppercase.
func HandleCreateDiscount(c *fiber.Ctx) error {
	discount := &models.Discount{Type: models.DiscountTypePercent, Active: true}
	if err := c.BodyParser(discount); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	discount.Code = strings.ToUpper(strings.TrimSpace(discount.Code))
	if err := validate.Struct(discount); err != nil {
		return handleDBError(c, err)
	}
	if discount.Type == models.DiscountTypePercent && discount.Value > 100 {
		return badRequest(c, "INVALID_VALUE", "Percent discounts cannot exceed 100")
	}
	if err := database.GetDB().Create(discount).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": discount})
}

// HandleGetDiscount returns a discount by id.
func HandleGetDiscount(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	var discount models.Discount
	if err := database.GetDB().First(&discount, id).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": discount})
}

// HandleUpdateDiscount updates a discount.
func HandleUpdateDiscount(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var discount models.Discount
	if err := db.First(&discount, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := c.BodyParser(&discount); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	discount.ID = id
	discount.Code = strings.ToUpper(strings.TrimSpace(discount.Code))
	if err := validate.Struct(&discount); err != nil {
		return handleDBError(c, err)
	}
	if discount.Type == models.DiscountTypePercent && discount.Value > 100 {
		return badRequest(c, "INVALID_VALUE", "Percent discounts cannot exceed 100")
	}
	if err := db.Save(&discount).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": discount})
}

// HandleDeleteDiscount removes a discount.
func HandleDeleteDiscount(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var discount models.Discount
	if err := db.First(&discount, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Delete(&discount).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Discount deleted"})
}

type validateDiscountRequest struct {
	Code     string  `json:"code"`
	SubTotal float64 `json:"sub_total"`
}

// HandleValidateDiscount checks a code against a cart subtotal and, when
// redeemable, returns the computed discount amount. Lookup is
// case-insensitive; an unknown code is a plain 404.
func HandleValidateDiscount(c *fiber.Ctx) error {
	req := &validateDiscountRequest{}
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	req.Code = strings.ToUpper(strings.TrimSpace(req.Code))
	if req.Code == "" {
		return badRequest(c, "INVALID_CODE", "code is required")
	}
	if req.SubTotal < 0 {
		return badRequest(c, "INVALID_SUBTOTAL", "sub_total cannot be negative")
	}

	var discount models.Discount
	err := database.GetDB().Where("code = ?", req.Code).First(&discount).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound(c, "NOT_FOUND", "Unknown discount code")
		}
		return internalError(c, err)
	}

	if !discount.IsRedeemable(time.Now(), req.SubTotal) {
		return c.JSON(fiber.Map{"data": fiber.Map{
			"valid": false,
			"code":  discount.Code,
		}})
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"valid":  true,
		"code":   discount.Code,
		"type":   discount.Type,
		"amount": discount.AmountFor(req.SubTotal),
	}})
}
