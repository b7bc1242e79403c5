package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wifey-app/wifey-api/internal/pkg/statistics"
)

// HandlePublicStats returns the storefront counts. Values are served from
// the statistics cache, so they can trail the database by a few minutes.
func HandlePublicStats(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": statistics.GetStatisticsData()})
}
