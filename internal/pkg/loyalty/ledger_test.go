package loyalty

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wifey-app/wifey-api/app/models"
)

func intp(v int) *int { return &v }

func TestFoldEmpty(t *testing.T) {
	b := Fold(nil)

	assert.Zero(t, b.TotalEarned)
	assert.Zero(t, b.TotalSpent)
	assert.Zero(t, b.CurrentPoints)
}

func TestFoldEarnAndSpend(t *testing.T) {
	txs := []models.LoyaltyTransaction{
		{Type: models.LoyaltyTypeEarn, Amount: intp(100)},
		{Type: models.LoyaltyTypeEarn, Amount: intp(50)},
		{Type: models.LoyaltyTypeSpend, Amount: intp(30)},
	}

	b := Fold(txs)

	assert.Equal(t, 150, b.TotalEarned)
	assert.Equal(t, 30, b.TotalSpent)
	assert.Equal(t, 120, b.CurrentPoints)
}

func TestFoldBonusFallback(t *testing.T) {
	bonus := &models.LoyaltyBonus{BonusPoints: 75}
	txs := []models.LoyaltyTransaction{
		{Type: models.LoyaltyTypeEarn, Bonus: bonus},
	}

	b := Fold(txs)

	assert.Equal(t, 75, b.TotalEarned)
}

func TestFoldExplicitAmountWinsOverBonus(t *testing.T) {
	bonus := &models.LoyaltyBonus{BonusPoints: 75}
	txs := []models.LoyaltyTransaction{
		{Type: models.LoyaltyTypeEarn, Amount: intp(10), Bonus: bonus},
	}

	b := Fold(txs)

	assert.Equal(t, 10, b.TotalEarned)
}

func TestFoldEarnWithoutAmountOrBonusIsZero(t *testing.T) {
	txs := []models.LoyaltyTransaction{
		{Type: models.LoyaltyTypeEarn},
	}

	b := Fold(txs)

	assert.Zero(t, b.TotalEarned)
}

func TestFoldBalanceCanGoNegative(t *testing.T) {
	txs := []models.LoyaltyTransaction{
		{Type: models.LoyaltyTypeEarn, Amount: intp(20)},
		{Type: models.LoyaltyTypeSpend, Amount: intp(50)},
	}

	b := Fold(txs)

	assert.Equal(t, -30, b.CurrentPoints)
}

func TestTransactionPoints(t *testing.T) {
	assert.Equal(t, 5, TransactionPoints(models.LoyaltyTransaction{Amount: intp(5)}))
	assert.Equal(t, 40, TransactionPoints(models.LoyaltyTransaction{Bonus: &models.LoyaltyBonus{BonusPoints: 40}}))
	assert.Zero(t, TransactionPoints(models.LoyaltyTransaction{}))
}
