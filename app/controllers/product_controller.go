package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/internal/pkg/database"
)

// HandleListProducts lists products with their category joined. An optional
// ?q= filter matches name and slug.
func HandleListProducts(c *fiber.Ctx) error {
	db := database.GetDB()
	page := parsePage(c)

	query := db.Model(&models.Product{})
	if q := c.Query("q"); q != "" {
		like := "%" + q + "%"
		query = query.Where("name LIKE ? OR slug LIKE ?", like, like)
	}
	if categoryID := c.QueryInt("categoryId"); categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return internalError(c, err)
	}

	var products []models.Product
	if err := query.Preload("Category").
		Order("created_at DESC").
		Offset(pageOffset(page)).Limit(PageSize).
		Find(&products).Error; err != nil {
		return internalError(c, err)
	}
	return paginated(c, products, total, page)
}

// HandleCreateProduct creates a product.
func HandleCreateProduct(c *fiber.Ctx) error {
	product := &models.Product{Active: true}
	if err := c.BodyParser(product); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if err := validate.Struct(product); err != nil {
		return handleDBError(c, err)
	}
	if err := database.GetDB().Create(product).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": product})
}

// HandleGetProduct returns a product by id.
func HandleGetProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	var product models.Product
	if err := database.GetDB().Preload("Category").First(&product, id).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": product})
}

// HandleUpdateProduct updates a product.
func HandleUpdateProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := c.BodyParser(&product); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	product.ID = id
	if err := validate.Struct(&product); err != nil {
		return handleDBError(c, err)
	}
	if err := db.Save(&product).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": product})
}

// HandleDeleteProduct removes a product.
func HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var product models.Product
	if err := db.First(&product, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Delete(&product).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Product deleted"})
}
