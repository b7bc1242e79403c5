package controllers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PageSize is the fixed page size for all list endpoints.
const PageSize = 10

var validate = validator.New()

// parsePage reads the ?page=N query parameter, clamping to 1.
func parsePage(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}

// pageOffset converts a 1-based page into a row offset.
func pageOffset(page int) int {
	return (page - 1) * PageSize
}

// totalPages computes the page count for a fixed page size of PageSize.
func totalPages(total int64) int {
	pages := int(total) / PageSize
	if int(total)%PageSize > 0 {
		pages++
	}
	return pages
}

// paginated writes the standard list envelope:
// { data, total, currentPage, totalPages }
func paginated(c *fiber.Ctx, data interface{}, total int64, page int) error {
	return c.JSON(fiber.Map{
		"data":        data,
		"total":       total,
		"currentPage": page,
		"totalPages":  totalPages(total),
	})
}

// parseIDParam reads the :id route parameter.
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", c.Params("id"))
	}
	return uint(id), nil
}

// badRequest writes a 400 with a stable error code.
func badRequest(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}

// notFound writes a 404 with a stable error code.
func notFound(c *fiber.Ctx, code, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error":   code,
		"message": message,
	})
}

// internalError logs the cause and writes a generic 500; internals never
// leak into the response body.
func internalError(c *fiber.Ctx, err error) error {
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error":   "INTERNAL_SERVER_ERROR",
		"message": "Something went wrong",
	})
}

// handleDBError translates persistence failures into the shared taxonomy:
// validation 400, not found 404, duplicate key 409, everything else 500.
func handleDBError(c *fiber.Ctx, err error) error {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":    "VALIDATION_ERROR",
			"message":  "Validation failed",
			"messages": validationMessages(verrs),
		})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return notFound(c, "NOT_FOUND", "Resource not found")
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":   "CONFLICT",
			"message": "Duplicate entry",
		})
	default:
		return internalError(c, err)
	}
}

// validationMessages itemizes validator errors for the response body.
func validationMessages(verrs validator.ValidationErrors) []string {
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag()))
	}
	return messages
}
