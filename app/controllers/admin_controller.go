package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/app/repository"
	"github.com/wifey-app/wifey-api/internal/pkg/counter"
	"github.com/wifey-app/wifey-api/internal/pkg/database"
)

// HandleDashboard returns the headline counts for the admin landing page.
func HandleDashboard(c *fiber.Ctx) error {
	db := database.GetDB()
	repos := repository.GetGlobalRepositories()

	users, err := repos.User.Count()
	if err != nil {
		return internalError(c, err)
	}
	orders, err := repos.Order.Count()
	if err != nil {
		return internalError(c, err)
	}
	pendingOrders, err := repos.Order.CountByStatus(models.OrderStatusPending)
	if err != nil {
		return internalError(c, err)
	}
	subscriptions, err := repos.Subscription.Count()
	if err != nil {
		return internalError(c, err)
	}

	var products, videos, subscribers int64
	if err := db.Model(&models.Product{}).Count(&products).Error; err != nil {
		return internalError(c, err)
	}
	if err := db.Model(&models.Video{}).Count(&videos).Error; err != nil {
		return internalError(c, err)
	}
	if err := db.Model(&models.NewsletterSubscriber{}).
		Where("confirmed = ?", true).Count(&subscribers).Error; err != nil {
		return internalError(c, err)
	}

	return c.JSON(fiber.Map{"data": fiber.Map{
		"users":                 users,
		"orders":                orders,
		"pendingOrders":         pendingOrders,
		"subscriptions":         subscriptions,
		"products":              products,
		"videos":                videos,
		"newsletterSubscribers": subscribers,
	}})
}

// HandleFlushCounters drains the buffered view counters into the database.
// The scheduler calls this periodically; the endpoint exists so an admin can
// force a flush before reading stats.
func HandleFlushCounters(c *fiber.Ctx) error {
	if err := counter.FlushAll(); err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Counters flushed"})
}
