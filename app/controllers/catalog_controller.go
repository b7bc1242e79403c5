package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/internal/pkg/database"
)

// Categories

// HandleListCategories lists categories.
func HandleListCategories(c *fiber.Ctx) error {
	db := database.GetDB()
	page := parsePage(c)

	var total int64
	if err := db.Model(&models.Category{}).Count(&total).Error; err != nil {
		return internalError(c, err)
	}
	var categories []models.Category
	if err := db.Order("name ASC").
		Offset(pageOffset(page)).Limit(PageSize).
		Find(&categories).Error; err != nil {
		return internalError(c, err)
	}
	return paginated(c, categories, total, page)
}

// HandleCreateCategory creates a category.
func HandleCreateCategory(c *fiber.Ctx) error {
	category := &models.Category{}
	if err := c.BodyParser(category); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if err := validate.Struct(category); err != nil {
		return handleDBError(c, err)
	}
	if err := database.GetDB().Create(category).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": category})
}

// HandleGetCategory returns a category by id.
func HandleGetCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	var category models.Category
	if err := database.GetDB().First(&category, id).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": category})
}

// HandleUpdateCategory updates a category.
func HandleUpdateCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := c.BodyParser(&category); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	category.ID = id
	if err := validate.Struct(&category); err != nil {
		return handleDBError(c, err)
	}
	if err := db.Save(&category).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": category})
}

// HandleDeleteCategory removes a category. Products keep their rows, the
// foreign key is simply left dangling at NULL.
func HandleDeleteCategory(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var category models.Category
	if err := db.First(&category, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Model(&models.Product{}).
		Where("category_id = ?", id).
		Update("category_id", nil).Error; err != nil {
		return internalError(c, err)
	}
	if err := db.Delete(&category).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}

// Collections

// HandleListCollections lists collections with their products joined.
func HandleListCollections(c *fiber.Ctx) error {
	db := database.GetDB()
	page := parsePage(c)

	var total int64
	if err := db.Model(&models.Collection{}).Count(&total).Error; err != nil {
		return internalError(c, err)
	}
	var collections []models.Collection
	if err := db.Preload("Products").Order("created_at DESC").
		Offset(pageOffset(page)).Limit(PageSize).
		Find(&collections).Error; err != nil {
		return internalError(c, err)
	}
	return paginated(c, collections, total, page)
}

type collectionRequest struct {
	models.Collection
	ProductIDs []uint `json:"product_ids"`
}

// HandleCreateCollection creates a collection and attaches the given products.
func HandleCreateCollection(c *fiber.Ctx) error {
	req := &collectionRequest{Collection: models.Collection{Active: true}}
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if err := validate.Struct(&req.Collection); err != nil {
		return handleDBError(c, err)
	}

	db := database.GetDB()
	if len(req.ProductIDs) > 0 {
		if err := db.Find(&req.Collection.Products, req.ProductIDs).Error; err != nil {
			return internalError(c, err)
		}
	}
	if err := db.Create(&req.Collection).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": req.Collection})
}

// HandleGetCollection returns a collection by id.
func HandleGetCollection(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	var collection models.Collection
	if err := database.GetDB().Preload("Products").First(&collection, id).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": collection})
}

// HandleUpdateCollection updates a collection and, when product_ids is sent,
// replaces its product membership.
func HandleUpdateCollection(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var collection models.Collection
	if err := db.First(&collection, id).Error; err != nil {
		return handleDBError(c, err)
	}

	req := &collectionRequest{Collection: collection, ProductIDs: nil}
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	req.Collection.ID = id
	if err := validate.Struct(&req.Collection); err != nil {
		return handleDBError(c, err)
	}
	if err := db.Omit("Products").Save(&req.Collection).Error; err != nil {
		return handleDBError(c, err)
	}
	if req.ProductIDs != nil {
		var products []models.Product
		if len(req.ProductIDs) > 0 {
			if err := db.Find(&products, req.ProductIDs).Error; err != nil {
				return internalError(c, err)
			}
		}
		if err := db.Model(&req.Collection).Association("Products").Replace(products); err != nil {
			return internalError(c, err)
		}
	}
	return c.JSON(fiber.Map{"data": req.Collection})
}

// HandleDeleteCollection removes a collection and clears its join rows.
func HandleDeleteCollection(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var collection models.Collection
	if err := db.First(&collection, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Model(&collection).Association("Products").Clear(); err != nil {
		return internalError(c, err)
	}
	if err := db.Delete(&collection).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Collection deleted"})
}
