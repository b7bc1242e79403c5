package loyalty

import (
	"github.com/wifey-app/wifey-api/app/models"
)

// Balance is the derived state of a single email's point ledger. It is never
// stored; every read folds the full transaction history.
type Balance struct {
	TotalEarned   int `json:"totalEarned"`
	TotalSpent    int `json:"totalSpent"`
	CurrentPoints int `json:"currentPoints"`
}

// TransactionPoints returns the point value a transaction contributes before
// sign: the explicit amount when present, otherwise the linked bonus's value,
// otherwise zero.
func TransactionPoints(tx models.LoyaltyTransaction) int {
	if tx.Amount != nil {
		return *tx.Amount
	}
	if tx.Bonus != nil {
		return tx.Bonus.BonusPoints
	}
	return 0
}

// Fold derives the balance from a transaction history. Earn entries add
// their point value; spend entries subtract their explicit amount only.
// Spends are not validated against earned points, so the balance can go
// negative.
func Fold(txs []models.LoyaltyTransaction) Balance {
	var b Balance
	for _, tx := range txs {
		switch tx.Type {
		case models.LoyaltyTypeEarn:
			b.TotalEarned += TransactionPoints(tx)
		case models.LoyaltyTypeSpend:
			if tx.Amount != nil {
				b.TotalSpent += *tx.Amount
			}
		}
	}
	b.CurrentPoints = b.TotalEarned - b.TotalSpent
	return b
}
