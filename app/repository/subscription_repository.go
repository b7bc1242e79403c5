package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/wifey-app/wifey-api/app/models"
)

// subscriptionRepository implements the SubscriptionRepository interface
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository instance
func NewSubscriptionRepository(db *gorm.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(sub *models.Subscription) error {
	return r.db.Create(sub).Error
}

func (r *subscriptionRepository) GetByID(id uint) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.Preload("Package").First(&sub, id).Error
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (r *subscriptionRepository) Update(sub *models.Subscription) error {
	return r.db.Save(sub).Error
}

func (r *subscriptionRepository) Delete(id uint) error {
	return r.db.Delete(&models.Subscription{}, id).Error
}

func (r *subscriptionRepository) List(offset, limit int) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := r.db.Preload("Package").Order("created_at DESC").Offset(offset).Limit(limit).Find(&subs).Error
	return subs, err
}

func (r *subscriptionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Subscription{}).Count(&count).Error
	return count, err
}

// FindSubscribed returns active subscriptions with their package joined.
// A nil start/end leaves the creation date unconstrained; a nil packageID
// spans all packages.
func (r *subscriptionRepository) FindSubscribed(start, end *time.Time, packageID *uint) ([]models.Subscription, error) {
	query := r.db.Preload("Package").Where("subscribed = ?", true)
	if start != nil && end != nil {
		query = query.Where("created_at BETWEEN ? AND ?", *start, *end)
	}
	if packageID != nil {
		query = query.Where("package_id = ?", *packageID)
	}

	var subs []models.Subscription
	err := query.Order("created_at").Find(&subs).Error
	return subs, err
}
