package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/wifey-app/wifey-api/app/models"
)

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
	List(offset, limit int) ([]models.User, error)
	Count() (int64, error)
	Search(query string) ([]models.User, error)
}

// PackageRepository defines the interface for subscription package operations
type PackageRepository interface {
	Create(pkg *models.Package) error
	GetByID(id uint) (*models.Package, error)
	GetAll() ([]models.Package, error)
	Update(pkg *models.Package) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Package, error)
	Count() (int64, error)
}

// SubscriptionRepository defines the interface for subscription operations
type SubscriptionRepository interface {
	Create(sub *models.Subscription) error
	GetByID(id uint) (*models.Subscription, error)
	Update(sub *models.Subscription) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Subscription, error)
	Count() (int64, error)
	// FindSubscribed returns subscribed=true rows with their package joined,
	// optionally restricted to a creation window and/or a single package.
	FindSubscribed(start, end *time.Time, packageID *uint) ([]models.Subscription, error)
}

// LoyaltyRepository defines the interface for the point ledger and bonuses
type LoyaltyRepository interface {
	CreateTransaction(tx *models.LoyaltyTransaction) error
	GetTransactionByID(id uint) (*models.LoyaltyTransaction, error)
	UpdateTransaction(tx *models.LoyaltyTransaction) error
	DeleteTransaction(id uint) error
	ListTransactions(email string, offset, limit int) ([]models.LoyaltyTransaction, error)
	CountTransactions(email string) (int64, error)
	// GetHistory returns the full ledger for an email, bonus joined, oldest first.
	GetHistory(email string) ([]models.LoyaltyTransaction, error)

	CreateBonus(bonus *models.LoyaltyBonus) error
	GetBonusByID(id uint) (*models.LoyaltyBonus, error)
	UpdateBonus(bonus *models.LoyaltyBonus) error
	DeleteBonus(id uint) error
	ListBonuses(offset, limit int) ([]models.LoyaltyBonus, error)
	CountBonuses() (int64, error)
}

// OrderRepository defines the interface for order operations
type OrderRepository interface {
	Create(order *models.Order) error
	GetByID(id uint) (*models.Order, error)
	Update(order *models.Order) error
	Delete(id uint) error
	List(offset, limit int) ([]models.Order, error)
	Count() (int64, error)
	CountByStatus(status string) (int64, error)
}

// Repositories struct holds all repository instances
type Repositories struct {
	User         UserRepository
	Package      PackageRepository
	Subscription SubscriptionRepository
	Loyalty      LoyaltyRepository
	Order        OrderRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Package:      NewPackageRepository(db),
		Subscription: NewSubscriptionRepository(db),
		Loyalty:      NewLoyaltyRepository(db),
		Order:        NewOrderRepository(db),
	}
}
