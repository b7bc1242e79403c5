package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/internal/pkg/database"
)

// Partners

// HandleListPartners lists partners.
func HandleListPartners(c *fiber.Ctx) error {
	db := database.GetDB()
	page := parsePage(c)

	var total int64
	if err := db.Model(&models.Partner{}).Count(&total).Error; err != nil {
		return internalError(c, err)
	}
	var partners []models.Partner
	if err := db.Order("name ASC").
		Offset(pageOffset(page)).Limit(PageSize).
		Find(&partners).Error; err != nil {
		return internalError(c, err)
	}
	return paginated(c, partners, total, page)
}

// HandleCreatePartner creates a partner.
func HandleCreatePartner(c *fiber.Ctx) error {
	partner := &models.Partner{Active: true}
	if err := c.BodyParser(partner); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if err := validate.Struct(partner); err != nil {
		return handleDBError(c, err)
	}
	if err := database.GetDB().Create(partner).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": partner})
}

// HandleGetPartner returns a partner with their sessions.
func HandleGetPartner(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var partner models.Partner
	if err := db.First(&partner, id).Error; err != nil {
		return handleDBError(c, err)
	}
	var sessions []models.PartnerSession
	if err := db.Where("partner_id = ?", id).
		Order("created_at DESC").Find(&sessions).Error; err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"partner":  partner,
		"sessions": sessions,
	}})
}

// HandleUpdatePartner updates a partner.
func HandleUpdatePartner(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var partner models.Partner
	if err := db.First(&partner, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := c.BodyParser(&partner); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	partner.ID = id
	if err := validate.Struct(&partner); err != nil {
		return handleDBError(c, err)
	}
	if err := db.Save(&partner).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": partner})
}

// HandleDeletePartner removes a partner.
func HandleDeletePartner(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var partner models.Partner
	if err := db.First(&partner, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Delete(&partner).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Partner deleted"})
}

// Sessions

// HandleListPartnerSessions lists sessions, partner joined, optionally
// filtered by partner.
func HandleListPartnerSessions(c *fiber.Ctx) error {
	db := database.GetDB()
	page := parsePage(c)

	query := db.Model(&models.PartnerSession{})
	if partnerID := c.QueryInt("partnerId"); partnerID > 0 {
		query = query.Where("partner_id = ?", partnerID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return internalError(c, err)
	}
	var sessions []models.PartnerSession
	if err := query.Preload("Partner").Order("created_at DESC").
		Offset(pageOffset(page)).Limit(PageSize).
		Find(&sessions).Error; err != nil {
		return internalError(c, err)
	}
	return paginated(c, sessions, total, page)
}

// HandleCreatePartnerSession opens a session for a partner. The shareable
// code is always generated server side.
func HandleCreatePartnerSession(c *fiber.Ctx) error {
	session := &models.PartnerSession{Active: true}
	if err := c.BodyParser(session); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if session.PartnerID == 0 {
		return badRequest(c, "INVALID_PARTNER_ID", "partner_id is required")
	}

	db := database.GetDB()
	var partner models.Partner
	if err := db.First(&partner, session.PartnerID).Error; err != nil {
		return handleDBError(c, err)
	}
	session.Code = uuid.New().String()
	if err := db.Create(session).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": session})
}

// HandleGetPartnerSession returns a session with its attributed orders and
// running totals for commission accounting.
func HandleGetPartnerSession(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var session models.PartnerSession
	if err := db.Preload("Partner").First(&session, id).Error; err != nil {
		return handleDBError(c, err)
	}
	var sessionOrders []models.PartnerSessionOrder
	if err := db.Preload("Order").Where("session_id = ?", id).
		Order("created_at ASC").Find(&sessionOrders).Error; err != nil {
		return internalError(c, err)
	}

	var totalAmount float64
	for _, so := range sessionOrders {
		totalAmount += so.Amount
	}
	var commission float64
	if session.Partner != nil {
		commission = totalAmount * session.Partner.CommissionRate
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"session":     session,
		"orders":      sessionOrders,
		"orderCount":  len(sessionOrders),
		"totalAmount": totalAmount,
		"commission":  commission,
	}})
}

// HandleUpdatePartnerSession updates session timing and active flag. The
// code never changes once issued.
func HandleUpdatePartnerSession(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var session models.PartnerSession
	if err := db.First(&session, id).Error; err != nil {
		return handleDBError(c, err)
	}
	code := session.Code
	if err := c.BodyParser(&session); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	session.ID = id
	session.Code = code
	if err := db.Save(&session).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": session})
}

// HandleDeletePartnerSession closes out a session and its attributions.
func HandleDeletePartnerSession(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var session models.PartnerSession
	if err := db.First(&session, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Where("session_id = ?", id).
		Delete(&models.PartnerSessionOrder{}).Error; err != nil {
		return internalError(c, err)
	}
	if err := db.Delete(&session).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Partner session deleted"})
}

type attachSessionOrderRequest struct {
	OrderID uint `json:"order_id"`
}

// HandleAttachSessionOrder attributes an order to a session. An order can
// belong to at most one session, duplicates come back as 409.
func HandleAttachSessionOrder(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	req := &attachSessionOrderRequest{}
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if req.OrderID == 0 {
		return badRequest(c, "INVALID_ORDER_ID", "order_id is required")
	}

	db := database.GetDB()
	var session models.PartnerSession
	if err := db.First(&session, id).Error; err != nil {
		return handleDBError(c, err)
	}
	var order models.Order
	if err := db.First(&order, req.OrderID).Error; err != nil {
		return handleDBError(c, err)
	}

	sessionOrder := &models.PartnerSessionOrder{
		SessionID: id,
		OrderID:   order.ID,
		Amount:    order.Total,
	}
	if err := db.Create(sessionOrder).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": sessionOrder})
}
