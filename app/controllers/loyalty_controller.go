package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/app/repository"
	"github.com/wifey-app/wifey-api/internal/pkg/entitlements"
	"github.com/wifey-app/wifey-api/internal/pkg/loyalty"
)

const (
	minPoints = 1
	maxPoints = 10000
	maxReason = 500
)

type addPointsRequest struct {
	Email   string `json:"email"`
	Points  *int   `json:"points"`
	BonusID *uint  `json:"bonusID"`
	Reason  string `json:"reason"`
	Type    string `json:"type"`
}

// HandleAddPoints appends a transaction to the per-email point ledger and
// returns the freshly derived balance.
func HandleAddPoints(c *fiber.Ctx) error {
	var req addPointsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}

	if err := validate.Var(req.Email, "required,email"); err != nil {
		return badRequest(c, "INVALID_EMAIL", "A valid email address is required")
	}

	txType := req.Type
	if txType == "" {
		txType = models.LoyaltyTypeEarn
	}
	if txType != models.LoyaltyTypeEarn && txType != models.LoyaltyTypeSpend {
		return badRequest(c, "INVALID_TYPE", "type must be \"earn\" or \"spend\"")
	}

	if len(req.Reason) > maxReason {
		return badRequest(c, "INVALID_REASON", "reason must be at most 500 characters")
	}

	if req.Points == nil && req.BonusID == nil {
		return badRequest(c, "INVALID_POINTS", "Either points or bonusID is required")
	}
	if req.Points != nil {
		if *req.Points > maxPoints {
			return badRequest(c, "POINTS_TOO_LARGE", "points must be at most 10000")
		}
		if *req.Points < minPoints {
			return badRequest(c, "INVALID_POINTS", "points must be at least 1")
		}
	}

	repos := repository.GetGlobalRepositories()

	user, err := repos.User.GetByEmail(req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound(c, "USER_NOT_FOUND", "No user with that email")
		}
		return internalError(c, err)
	}

	if req.BonusID != nil {
		if _, err := repos.Loyalty.GetBonusByID(*req.BonusID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound(c, "BONUS_NOT_FOUND", "No bonus with that id")
			}
			return internalError(c, err)
		}
	}

	tx := &models.LoyaltyTransaction{
		Email:   req.Email,
		Type:    txType,
		Amount:  req.Points,
		BonusID: req.BonusID,
		Reason:  req.Reason,
	}
	if err := validate.Struct(tx); err != nil {
		return handleDBError(c, err)
	}
	if err := repos.Loyalty.CreateTransaction(tx); err != nil {
		return handleDBError(c, err)
	}

	// Reload so a bonus-backed transaction carries its bonus in the response.
	if created, err := repos.Loyalty.GetTransactionByID(tx.ID); err == nil {
		tx = created
	}

	balance, err := deriveBalance(repos, req.Email)
	if err != nil {
		return internalError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Points transaction recorded",
		"data": fiber.Map{
			"transaction": tx,
			"userPoints":  balance,
			"user":        user,
		},
	})
}

// deriveBalance folds the full ledger for an email. The balance is never
// stored, so every read recomputes from raw transactions.
func deriveBalance(repos *repository.Repositories, email string) (loyalty.Balance, error) {
	history, err := repos.Loyalty.GetHistory(email)
	if err != nil {
		return loyalty.Balance{}, err
	}
	return loyalty.Fold(history), nil
}

// HandleGetBalance returns the derived point balance for ?email=.
func HandleGetBalance(c *fiber.Ctx) error {
	email := c.Query("email")
	if err := validate.Var(email, "required,email"); err != nil {
		return badRequest(c, "INVALID_EMAIL", "A valid email address is required")
	}

	balance, err := deriveBalance(repository.GetGlobalRepositories(), email)
	if err != nil {
		return internalError(c, err)
	}

	tier := entitlements.TierFor(balance.TotalEarned)
	freeShipping, earlyAccess, birthdayBonus := entitlements.Perks(tier)

	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"email":      email,
			"userPoints": balance,
			"tier":       tier,
			"perks": fiber.Map{
				"freeShipping":  freeShipping,
				"earlyAccess":   earlyAccess,
				"birthdayBonus": birthdayBonus,
			},
		},
	})
}

// HandleListTransactions lists ledger entries, newest first, optionally
// filtered with ?email=.
func HandleListTransactions(c *fiber.Ctx) error {
	email := c.Query("email")
	if email != "" {
		if err := validate.Var(email, "email"); err != nil {
			return badRequest(c, "INVALID_EMAIL", "A valid email address is required")
		}
	}

	page := parsePage(c)
	repos := repository.GetGlobalRepositories()

	total, err := repos.Loyalty.CountTransactions(email)
	if err != nil {
		return internalError(c, err)
	}
	txs, err := repos.Loyalty.ListTransactions(email, pageOffset(page), PageSize)
	if err != nil {
		return internalError(c, err)
	}

	return paginated(c, txs, total, page)
}

// HandleGetTransaction returns a single ledger entry by id.
func HandleGetTransaction(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	tx, err := repository.GetGlobalRepositories().Loyalty.GetTransactionByID(id)
	if err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": tx})
}

// HandleUpdateTransaction replaces the mutable fields of a ledger entry with
// the same field-level validation as create. The resulting balance is not
// re-validated against zero.
func HandleUpdateTransaction(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	var req addPointsRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}

	repos := repository.GetGlobalRepositories()
	tx, err := repos.Loyalty.GetTransactionByID(id)
	if err != nil {
		return handleDBError(c, err)
	}

	if req.Email != "" {
		if err := validate.Var(req.Email, "email"); err != nil {
			return badRequest(c, "INVALID_EMAIL", "A valid email address is required")
		}
		tx.Email = req.Email
	}
	if req.Type != "" {
		if req.Type != models.LoyaltyTypeEarn && req.Type != models.LoyaltyTypeSpend {
			return badRequest(c, "INVALID_TYPE", "type must be \"earn\" or \"spend\"")
		}
		tx.Type = req.Type
	}
	if len(req.Reason) > maxReason {
		return badRequest(c, "INVALID_REASON", "reason must be at most 500 characters")
	}
	if req.Reason != "" {
		tx.Reason = req.Reason
	}
	if req.Points != nil {
		if *req.Points > maxPoints {
			return badRequest(c, "POINTS_TOO_LARGE", "points must be at most 10000")
		}
		if *req.Points < minPoints {
			return badRequest(c, "INVALID_POINTS", "points must be at least 1")
		}
		tx.Amount = req.Points
	}
	if req.BonusID != nil {
		if _, err := repos.Loyalty.GetBonusByID(*req.BonusID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound(c, "BONUS_NOT_FOUND", "No bonus with that id")
			}
			return internalError(c, err)
		}
		tx.BonusID = req.BonusID
	}

	if err := repos.Loyalty.UpdateTransaction(tx); err != nil {
		return handleDBError(c, err)
	}

	balance, err := deriveBalance(repos, tx.Email)
	if err != nil {
		return internalError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Transaction updated",
		"data": fiber.Map{
			"transaction": tx,
			"userPoints":  balance,
		},
	})
}

// HandleDeleteTransaction removes a ledger entry by id.
func HandleDeleteTransaction(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.Loyalty.GetTransactionByID(id); err != nil {
		return handleDBError(c, err)
	}
	if err := repos.Loyalty.DeleteTransaction(id); err != nil {
		return handleDBError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Transaction deleted"})
}

// HandleListBonuses lists bonus definitions.
func HandleListBonuses(c *fiber.Ctx) error {
	page := parsePage(c)
	repos := repository.GetGlobalRepositories()

	total, err := repos.Loyalty.CountBonuses()
	if err != nil {
		return internalError(c, err)
	}
	bonuses, err := repos.Loyalty.ListBonuses(pageOffset(page), PageSize)
	if err != nil {
		return internalError(c, err)
	}

	return paginated(c, bonuses, total, page)
}

// HandleCreateBonus creates a bonus definition.
func HandleCreateBonus(c *fiber.Ctx) error {
	bonus := &models.LoyaltyBonus{Active: true}
	if err := c.BodyParser(bonus); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if err := validate.Struct(bonus); err != nil {
		return handleDBError(c, err)
	}
	if err := repository.GetGlobalRepositories().Loyalty.CreateBonus(bonus); err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": bonus})
}

// HandleGetBonus returns a bonus definition by id.
func HandleGetBonus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	bonus, err := repository.GetGlobalRepositories().Loyalty.GetBonusByID(id)
	if err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": bonus})
}

// HandleUpdateBonus updates a bonus definition.
func HandleUpdateBonus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	repos := repository.GetGlobalRepositories()
	bonus, err := repos.Loyalty.GetBonusByID(id)
	if err != nil {
		return handleDBError(c, err)
	}
	if err := c.BodyParser(bonus); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	bonus.ID = id
	if err := validate.Struct(bonus); err != nil {
		return handleDBError(c, err)
	}
	if err := repos.Loyalty.UpdateBonus(bonus); err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": bonus})
}

// HandleDeleteBonus removes a bonus definition by id. Existing transactions
// keep their reference; derived balances fall back to zero for dangling ones.
func HandleDeleteBonus(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	repos := repository.GetGlobalRepositories()
	if _, err := repos.Loyalty.GetBonusByID(id); err != nil {
		return handleDBError(c, err)
	}
	if err := repos.Loyalty.DeleteBonus(id); err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Bonus deleted"})
}
