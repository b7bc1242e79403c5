package controllers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/app/repository"
	"github.com/wifey-app/wifey-api/internal/pkg/analytics"
)

// HandleSubscriptionAnalytics produces summary financial metrics and the
// trailing 12-month trend from subscription records.
//
// Filters: ?month=YYYY-MM xor ?year=YYYY xor neither (all-time), plus an
// optional ?packageId. When the strict window matches zero rows the filter
// degrades progressively: trailing 12 months first, then no date filter at
// all, so the dashboard never renders an empty summary while data exists.
func HandleSubscriptionAnalytics(c *fiber.Ctx) error {
	month := c.Query("month")
	year := c.Query("year")
	now := time.Now()

	period, err := analytics.ResolveWindow(month, year, now)
	if err != nil {
		return badRequest(c, "INVALID_PERIOD", err.Error())
	}

	var packageID *uint
	if raw := c.Query("packageId"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return badRequest(c, "INVALID_PACKAGE_ID", "packageId must be numeric")
		}
		v := uint(id)
		packageID = &v
	}

	repos := repository.GetGlobalRepositories()

	subs, period, err := analytics.FindWithFallback(repos.Subscription.FindSubscribed, period, now, packageID)
	if err != nil {
		return internalError(c, err)
	}

	summary, packageStats := analytics.Aggregate(subs)
	monthlyData := analytics.MonthlySeries(subs, now)

	allPackages, err := repos.Package.GetAll()
	if err != nil {
		return internalError(c, err)
	}
	if allPackages == nil {
		allPackages = []models.Package{}
	}

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"period":       period,
			"summary":      summary,
			"packageStats": packageStats,
			"allPackages":  allPackages,
			"monthlyData":  monthlyData,
		},
	})
}
