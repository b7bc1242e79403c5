package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/app/repository"
)

// HandleListSubscriptions lists subscriptions, newest first, package joined.
func HandleListSubscriptions(c *fiber.Ctx) error {
	page := parsePage(c)
	repos := repository.GetGlobalRepositories()

	total, err := repos.Subscription.Count()
	if err != nil {
		return internalError(c, err)
	}
	subs, err := repos.Subscription.List(pageOffset(page), PageSize)
	if err != nil {
		return internalError(c, err)
	}
	return paginated(c, subs, total, page)
}

// HandleCreateSubscription records a subscription, normally mirrored from the
// storefront checkout.
func HandleCreateSubscription(c *fiber.Ctx) error {
	sub := &models.Subscription{Subscribed: true}
	if err := c.BodyParser(sub); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if err := validate.Struct(sub); err != nil {
		return handleDBError(c, err)
	}
	repos := repository.GetGlobalRepositories()
	if _, err := repos.Package.GetByID(sub.PackageID); err != nil {
		return handleDBError(c, err)
	}
	if err := repos.Subscription.Create(sub); err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": sub})
}

// HandleGetSubscription returns a subscription by id.
func HandleGetSubscription(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	sub, err := repository.GetGlobalRepositories().Subscription.GetByID(id)
	if err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": sub})
}

// HandleUpdateSubscription updates a subscription record.
func HandleUpdateSubscription(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	repos := repository.GetGlobalRepositories()
	sub, err := repos.Subscription.GetByID(id)
	if err != nil {
		return handleDBError(c, err)
	}
	if err := c.BodyParser(sub); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	sub.ID = id
	if err := validate.Struct(sub); err != nil {
		return handleDBError(c, err)
	}
	if err := repos.Subscription.Update(sub); err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": sub})
}

// HandleDeleteSubscription removes a subscription.
func HandleDeleteSubscription(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.Subscription.GetByID(id); err != nil {
		return handleDBError(c, err)
	}
	if err := repos.Subscription.Delete(id); err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Subscription deleted"})
}
