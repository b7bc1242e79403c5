package controllers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/app/repository"
)

func addPointsApp() *fiber.App {
	app := fiber.New()
	app.Post("/api/loyalty/addPoints", HandleAddPoints)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	return resp.StatusCode, payload
}

func TestHandleAddPointsValidation(t *testing.T) {
	app := addPointsApp()

	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{
			name:     "malformed body",
			body:     `{"email":`,
			wantCode: "INVALID_BODY",
		},
		{
			name:     "missing email",
			body:     `{"points": 10}`,
			wantCode: "INVALID_EMAIL",
		},
		{
			name:     "invalid email",
			body:     `{"email": "not-an-email", "points": 10}`,
			wantCode: "INVALID_EMAIL",
		},
		{
			name:     "unknown transaction type",
			body:     `{"email": "a@example.com", "points": 10, "type": "refund"}`,
			wantCode: "INVALID_TYPE",
		},
		{
			name:     "reason too long",
			body:     `{"email": "a@example.com", "points": 10, "reason": "` + strings.Repeat("x", 501) + `"}`,
			wantCode: "INVALID_REASON",
		},
		{
			name:     "neither points nor bonus",
			body:     `{"email": "a@example.com"}`,
			wantCode: "INVALID_POINTS",
		},
		{
			name:     "zero points",
			body:     `{"email": "a@example.com", "points": 0}`,
			wantCode: "INVALID_POINTS",
		},
		{
			name:     "negative points",
			body:     `{"email": "a@example.com", "points": -5}`,
			wantCode: "INVALID_POINTS",
		},
		{
			name:     "points above cap",
			body:     `{"email": "a@example.com", "points": 10001}`,
			wantCode: "POINTS_TOO_LARGE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, payload := postJSON(t, app, "/api/loyalty/addPoints", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, tt.wantCode, payload["error"])
		})
	}
}

func TestHandleAddPointsCapCheckedBeforeMinimum(t *testing.T) {
	// A value that is both above the cap and would be fine otherwise must
	// report the cap error, not the minimum one.
	app := addPointsApp()
	status, payload := postJSON(t, app, "/api/loyalty/addPoints", `{"email": "a@example.com", "points": 99999}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "POINTS_TOO_LARGE", payload["error"])
}

func TestHandleGetBalanceRequiresEmail(t *testing.T) {
	app := fiber.New()
	app.Get("/api/loyalty/balance", HandleGetBalance)

	req := httptest.NewRequest("GET", "/api/loyalty/balance", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, "INVALID_EMAIL", payload["error"])
}

type fakeUserRepo struct {
	repository.UserRepository
	user *models.User
}

func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	return f.user, nil
}

type fakeLoyaltyRepo struct {
	repository.LoyaltyRepository
	bonus  *models.LoyaltyBonus
	ledger []models.LoyaltyTransaction
}

func (f *fakeLoyaltyRepo) GetBonusByID(id uint) (*models.LoyaltyBonus, error) {
	if f.bonus == nil || f.bonus.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.bonus, nil
}

func (f *fakeLoyaltyRepo) CreateTransaction(tx *models.LoyaltyTransaction) error {
	tx.ID = uint(len(f.ledger) + 1)
	f.ledger = append(f.ledger, *tx)
	return nil
}

func (f *fakeLoyaltyRepo) GetTransactionByID(id uint) (*models.LoyaltyTransaction, error) {
	for i := range f.ledger {
		if f.ledger[i].ID == id {
			tx := f.ledger[i]
			if tx.BonusID != nil {
				tx.Bonus = f.bonus
			}
			return &tx, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLoyaltyRepo) GetHistory(email string) ([]models.LoyaltyTransaction, error) {
	out := make([]models.LoyaltyTransaction, 0, len(f.ledger))
	for _, tx := range f.ledger {
		if tx.Email == email {
			if tx.BonusID != nil {
				tx.Bonus = f.bonus
			}
			out = append(out, tx)
		}
	}
	return out, nil
}

func TestHandleAddPointsBonusTransactionCarriesBonus(t *testing.T) {
	bonus := &models.LoyaltyBonus{ID: 7, Title: "Birthday", BonusPoints: 250, Active: true}
	repository.SetGlobalRepositories(&repository.Repositories{
		User:    &fakeUserRepo{user: &models.User{ID: 1, Email: "a@example.com"}},
		Loyalty: &fakeLoyaltyRepo{bonus: bonus},
	})

	app := addPointsApp()
	status, payload := postJSON(t, app, "/api/loyalty/addPoints", `{"email": "a@example.com", "bonusID": 7}`)
	require.Equal(t, fiber.StatusOK, status)

	data, ok := payload["data"].(map[string]interface{})
	require.True(t, ok)

	tx, ok := data["transaction"].(map[string]interface{})
	require.True(t, ok)
	txBonus, ok := tx["bonus"].(map[string]interface{})
	require.True(t, ok, "bonus-backed transaction must carry its bonus")
	assert.Equal(t, float64(250), txBonus["bonus_points"])

	points, ok := data["userPoints"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(250), points["totalEarned"])
	assert.Equal(t, float64(250), points["currentPoints"])
}
