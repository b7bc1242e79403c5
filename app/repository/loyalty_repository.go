package repository

import (
	"gorm.io/gorm"

	"github.com/wifey-app/wifey-api/app/models"
)

// loyaltyRepository implements the LoyaltyRepository interface
type loyaltyRepository struct {
	db *gorm.DB
}

// NewLoyaltyRepository creates a new loyalty repository instance
func NewLoyaltyRepository(db *gorm.DB) LoyaltyRepository {
	return &loyaltyRepository{db: db}
}

func (r *loyaltyRepository) CreateTransaction(tx *models.LoyaltyTransaction) error {
	return r.db.Create(tx).Error
}

func (r *loyaltyRepository) GetTransactionByID(id uint) (*models.LoyaltyTransaction, error) {
	var tx models.LoyaltyTransaction
	err := r.db.Preload("Bonus").First(&tx, id).Error
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (r *loyaltyRepository) UpdateTransaction(tx *models.LoyaltyTransaction) error {
	return r.db.Save(tx).Error
}

func (r *loyaltyRepository) DeleteTransaction(id uint) error {
	return r.db.Delete(&models.LoyaltyTransaction{}, id).Error
}

// ListTransactions returns a page of transactions, newest first, optionally
// filtered by email.
func (r *loyaltyRepository) ListTransactions(email string, offset, limit int) ([]models.LoyaltyTransaction, error) {
	query := r.db.Preload("Bonus").Order("created_at DESC")
	if email != "" {
		query = query.Where("email = ?", email)
	}
	var txs []models.LoyaltyTransaction
	err := query.Offset(offset).Limit(limit).Find(&txs).Error
	return txs, err
}

func (r *loyaltyRepository) CountTransactions(email string) (int64, error) {
	query := r.db.Model(&models.LoyaltyTransaction{})
	if email != "" {
		query = query.Where("email = ?", email)
	}
	var count int64
	err := query.Count(&count).Error
	return count, err
}

// GetHistory returns the full ledger for an email, oldest first, with bonus
// references joined so derived point values resolve.
func (r *loyaltyRepository) GetHistory(email string) ([]models.LoyaltyTransaction, error) {
	var txs []models.LoyaltyTransaction
	err := r.db.Preload("Bonus").Where("email = ?", email).Order("created_at").Find(&txs).Error
	return txs, err
}

func (r *loyaltyRepository) CreateBonus(bonus *models.LoyaltyBonus) error {
	return r.db.Create(bonus).Error
}

func (r *loyaltyRepository) GetBonusByID(id uint) (*models.LoyaltyBonus, error) {
	var bonus models.LoyaltyBonus
	err := r.db.First(&bonus, id).Error
	if err != nil {
		return nil, err
	}
	return &bonus, nil
}

func (r *loyaltyRepository) UpdateBonus(bonus *models.LoyaltyBonus) error {
	return r.db.Save(bonus).Error
}

func (r *loyaltyRepository) DeleteBonus(id uint) error {
	return r.db.Delete(&models.LoyaltyBonus{}, id).Error
}

func (r *loyaltyRepository) ListBonuses(offset, limit int) ([]models.LoyaltyBonus, error) {
	var bonuses []models.LoyaltyBonus
	err := r.db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&bonuses).Error
	return bonuses, err
}

func (r *loyaltyRepository) CountBonuses() (int64, error) {
	var count int64
	err := r.db.Model(&models.LoyaltyBonus{}).Count(&count).Error
	return count, err
}
