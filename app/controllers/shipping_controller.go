package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/internal/pkg/database"
)

type shippingZoneRequest struct {
	models.ShippingZone
	CountryIDs []uint `json:"country_ids"`
	StateIDs   []uint `json:"state_ids"`
}

// HandleListShippingZones lists zones.
func HandleListShippingZones(c *fiber.Ctx) error {
	db := database.GetDB()
	page := parsePage(c)

	var total int64
	if err := db.Model(&models.ShippingZone{}).Count(&total).Error; err != nil {
		return internalError(c, err)
	}
	var zones []models.ShippingZone
	if err := db.Order("name ASC").
		Offset(pageOffset(page)).Limit(PageSize).
		Find(&zones).Error; err != nil {
		return internalError(c, err)
	}
	return paginated(c, zones, total, page)
}

// HandleCreateShippingZone creates a zone and assigns the named countries and
// states to it. The zone row and all reference rewrites commit together or
// not at all.
func HandleCreateShippingZone(c *fiber.Ctx) error {
	req := &shippingZoneRequest{ShippingZone: models.ShippingZone{Active: true}}
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if err := validate.Struct(&req.ShippingZone); err != nil {
		return handleDBError(c, err)
	}

	err := database.GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&req.ShippingZone).Error; err != nil {
			return err
		}
		return rewireZoneMembers(tx, req.ShippingZone.ID, req.CountryIDs, req.StateIDs)
	})
	if err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": req.ShippingZone})
}

// HandleGetShippingZone returns a zone with its member countries and states.
func HandleGetShippingZone(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var zone models.ShippingZone
	if err := db.First(&zone, id).Error; err != nil {
		return handleDBError(c, err)
	}
	var countries []models.ShippingCountry
	if err := db.Where("zone_id = ?", id).Find(&countries).Error; err != nil {
		return internalError(c, err)
	}
	var states []models.ShippingState
	if err := db.Where("zone_id = ?", id).Find(&states).Error; err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"zone":      zone,
		"countries": countries,
		"states":    states,
	}})
}

// HandleUpdateShippingZone updates a zone. When country_ids or state_ids is
// sent, membership is replaced: previous members move back to no zone, the
// listed ones are attached. Everything runs in one transaction.
func HandleUpdateShippingZone(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var zone models.ShippingZone
	if err := db.First(&zone, id).Error; err != nil {
		return handleDBError(c, err)
	}

	req := &shippingZoneRequest{ShippingZone: zone, CountryIDs: nil, StateIDs: nil}
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	req.ShippingZone.ID = id
	if err := validate.Struct(&req.ShippingZone); err != nil {
		return handleDBError(c, err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&req.ShippingZone).Error; err != nil {
			return err
		}
		if req.CountryIDs != nil {
			if err := tx.Model(&models.ShippingCountry{}).
				Where("zone_id = ?", id).
				Update("zone_id", nil).Error; err != nil {
				return err
			}
		}
		if req.StateIDs != nil {
			if err := tx.Model(&models.ShippingState{}).
				Where("zone_id = ?", id).
				Update("zone_id", nil).Error; err != nil {
				return err
			}
		}
		return rewireZoneMembers(tx, id, req.CountryIDs, req.StateIDs)
	})
	if err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": req.ShippingZone})
}

// HandleDeleteShippingZone removes a zone and detaches its members in the
// same transaction, so no country or state is ever left pointing at a
// deleted zone.
func HandleDeleteShippingZone(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var zone models.ShippingZone
	if err := db.First(&zone, id).Error; err != nil {
		return handleDBError(c, err)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.ShippingCountry{}).
			Where("zone_id = ?", id).
			Update("zone_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.ShippingState{}).
			Where("zone_id = ?", id).
			Update("zone_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(&zone).Error
	})
	if err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Shipping zone deleted"})
}

func rewireZoneMembers(tx *gorm.DB, zoneID uint, countryIDs, stateIDs []uint) error {
	if len(countryIDs) > 0 {
		if err := tx.Model(&models.ShippingCountry{}).
			Where("id IN ?", countryIDs).
			Update("zone_id", zoneID).Error; err != nil {
			return err
		}
	}
	if len(stateIDs) > 0 {
		if err := tx.Model(&models.ShippingState{}).
			Where("id IN ?", stateIDs).
			Update("zone_id", zoneID).Error; err != nil {
			return err
		}
	}
	return nil
}

// Countries

// HandleListShippingCountries lists countries with their zone joined.
func HandleListShippingCountries(c *fiber.Ctx) error {
	db := database.GetDB()
	page := parsePage(c)

	var total int64
	if err := db.Model(&models.ShippingCountry{}).Count(&total).Error; err != nil {
		return internalError(c, err)
	}
	var countries []models.ShippingCountry
	if err := db.Preload("Zone").Order("name ASC").
		Offset(pageOffset(page)).Limit(PageSize).
		Find(&countries).Error; err != nil {
		return internalError(c, err)
	}
	return paginated(c, countries, total, page)
}

// HandleCreateShippingCountry creates a country.
func HandleCreateShippingCountry(c *fiber.Ctx) error {
	country := &models.ShippingCountry{}
	if err := c.BodyParser(country); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	country.Code = strings.ToUpper(country.Code)
	if err := validate.Struct(country); err != nil {
		return handleDBError(c, err)
	}
	if err := database.GetDB().Create(country).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": country})
}

// HandleUpdateShippingCountry updates a country.
func HandleUpdateShippingCountry(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var country models.ShippingCountry
	if err := db.First(&country, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := c.BodyParser(&country); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	country.ID = id
	country.Code = strings.ToUpper(country.Code)
	if err := validate.Struct(&country); err != nil {
		return handleDBError(c, err)
	}
	if err := db.Save(&country).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": country})
}

// HandleDeleteShippingCountry removes a country together with its states.
func HandleDeleteShippingCountry(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var country models.ShippingCountry
	if err := db.First(&country, id).Error; err != nil {
		return handleDBError(c, err)
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("country_id = ?", id).
			Delete(&models.ShippingState{}).Error; err != nil {
			return err
		}
		return tx.Delete(&country).Error
	})
	if err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Shipping country deleted"})
}

// States

// HandleListShippingStates lists states, optionally filtered by country.
func HandleListShippingStates(c *fiber.Ctx) error {
	db := database.GetDB()
	page := parsePage(c)

	query := db.Model(&models.ShippingState{})
	if countryID := c.QueryInt("countryId"); countryID > 0 {
		query = query.Where("country_id = ?", countryID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return internalError(c, err)
	}
	var states []models.ShippingState
	if err := query.Preload("Country").Preload("Zone").Order("name ASC").
		Offset(pageOffset(page)).Limit(PageSize).
		Find(&states).Error; err != nil {
		return internalError(c, err)
	}
	return paginated(c, states, total, page)
}

// HandleCreateShippingState creates a state under an existing country.
func HandleCreateShippingState(c *fiber.Ctx) error {
	state := &models.ShippingState{}
	if err := c.BodyParser(state); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if err := validate.Struct(state); err != nil {
		return handleDBError(c, err)
	}
	db := database.GetDB()
	var country models.ShippingCountry
	if err := db.First(&country, state.CountryID).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Create(state).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": state})
}

// HandleUpdateShippingState updates a state.
func HandleUpdateShippingState(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var state models.ShippingState
	if err := db.First(&state, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := c.BodyParser(&state); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	state.ID = id
	if err := validate.Struct(&state); err != nil {
		return handleDBError(c, err)
	}
	if err := db.Save(&state).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": state})
}

// HandleDeleteShippingState removes a state.
func HandleDeleteShippingState(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var state models.ShippingState
	if err := db.First(&state, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Delete(&state).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Shipping state deleted"})
}
