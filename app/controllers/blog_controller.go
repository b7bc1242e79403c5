package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/internal/pkg/database"
	"github.com/wifey-app/wifey-api/internal/pkg/usercontext"
)

// HandleListBlogPosts lists posts, newest first, author joined.
// ?published=true narrows to published posts for the storefront.
func HandleListBlogPosts(c *fiber.Ctx) error {
	db := database.GetDB()
	page := parsePage(c)

	query := db.Model(&models.BlogPost{})
	if c.Query("published") == "true" {
		query = query.Where("published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return internalError(c, err)
	}
	var posts []models.BlogPost
	if err := query.Preload("Author").Order("created_at DESC").
		Offset(pageOffset(page)).Limit(PageSize).
		Find(&posts).Error; err != nil {
		return internalError(c, err)
	}
	return paginated(c, posts, total, page)
}

// HandleCreateBlogPost creates a post, attributed to the logged-in admin.
// Publishing at create time stamps published_at.
func HandleCreateBlogPost(c *fiber.Ctx) error {
	post := &models.BlogPost{}
	if err := c.BodyParser(post); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if err := validate.Struct(post); err != nil {
		return handleDBError(c, err)
	}
	if userID := usercontext.GetUserID(c); userID > 0 {
		post.AuthorID = &userID
	}
	if post.Published && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := database.GetDB().Create(post).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": post})
}

// HandleGetBlogPost returns a post by numeric id or slug.
func HandleGetBlogPost(c *fiber.Ctx) error {
	db := database.GetDB()
	var post models.BlogPost

	if id, err := parseIDParam(c); err == nil {
		if err := db.Preload("Author").First(&post, id).Error; err != nil {
			return handleDBError(c, err)
		}
		return c.JSON(fiber.Map{"data": post})
	}

	slug := c.Params("id")
	err := db.Preload("Author").Where("slug = ?", slug).First(&post).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return notFound(c, "NOT_FOUND", "Post not found")
		}
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"data": post})
}

// HandleUpdateBlogPost updates a post. Flipping published on for the first
// time stamps published_at.
func HandleUpdateBlogPost(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var post models.BlogPost
	if err := db.First(&post, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := c.BodyParser(&post); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	post.ID = id
	if err := validate.Struct(&post); err != nil {
		return handleDBError(c, err)
	}
	if post.Published && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}
	if err := db.Save(&post).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": post})
}

// HandleDeleteBlogPost removes a post.
func HandleDeleteBlogPost(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var post models.BlogPost
	if err := db.First(&post, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Delete(&post).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Post deleted"})
}
