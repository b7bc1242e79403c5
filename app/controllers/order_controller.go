package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/app/repository"
	"github.com/wifey-app/wifey-api/internal/pkg/ordercode"
)

// HandleListOrders lists orders, newest first, items and products joined.
func HandleListOrders(c *fiber.Ctx) error {
	page := parsePage(c)
	repos := repository.GetGlobalRepositories()

	total, err := repos.Order.Count()
	if err != nil {
		return internalError(c, err)
	}
	orders, err := repos.Order.List(pageOffset(page), PageSize)
	if err != nil {
		return internalError(c, err)
	}
	return paginated(c, orders, total, page)
}

// HandleCreateOrder creates an order together with its line items.
func HandleCreateOrder(c *fiber.Ctx) error {
	order := &models.Order{Status: models.OrderStatusPending}
	if err := c.BodyParser(order); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if order.OrderNumber == "" {
		number, err := ordercode.NewOrderNumber()
		if err != nil {
			return internalError(c, err)
		}
		order.OrderNumber = number
	}
	if err := validate.Struct(order); err != nil {
		return handleDBError(c, err)
	}
	if len(order.Items) == 0 {
		return badRequest(c, "INVALID_ITEMS", "An order needs at least one item")
	}
	if err := repository.GetGlobalRepositories().Order.Create(order); err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": order})
}

// HandleGetOrder returns an order by id.
func HandleGetOrder(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	order, err := repository.GetGlobalRepositories().Order.GetByID(id)
	if err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": order})
}

// HandleUpdateOrder updates an order header, most commonly its status.
func HandleUpdateOrder(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	repos := repository.GetGlobalRepositories()
	order, err := repos.Order.GetByID(id)
	if err != nil {
		return handleDBError(c, err)
	}
	if err := c.BodyParser(order); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	order.ID = id
	if err := validate.Struct(order); err != nil {
		return handleDBError(c, err)
	}
	if err := repos.Order.Update(order); err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": order})
}

// HandleDeleteOrder removes an order.
func HandleDeleteOrder(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.Order.GetByID(id); err != nil {
		return handleDBError(c, err)
	}
	if err := repos.Order.Delete(id); err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Order deleted"})
}
