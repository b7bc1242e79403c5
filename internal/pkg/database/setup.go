package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/internal/pkg/env"
)

const maxRetries = 5
const retryDelay = 5 * time.Second

var DB *gorm.DB

// GetDB returns the process-wide gorm handle. It is initialized once by
// SetupDatabase at startup; the underlying sql.DB pools connections.
func GetDB() *gorm.DB {
	return DB
}

func SetupDatabase() {
	var err error
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		env.GetEnv("DB_USER", ""),
		env.GetEnv("DB_PASSWORD", ""),
		env.GetEnv("DB_HOST", "127.0.0.1"),
		env.GetEnv("DB_PORT", "3306"),
		env.GetEnv("DB_NAME", ""),
	)

	for i := 0; i < maxRetries; i++ {
		DB, err = gorm.Open(mysql.New(mysql.Config{
			DSN:                       dsn,
			DefaultStringSize:         256,
			DisableDatetimePrecision:  true,
			DontSupportRenameIndex:    true,
			DontSupportRenameColumn:   true,
			SkipInitializeWithVersion: false,
		}), &gorm.Config{
			// map driver duplicate-key errors onto gorm.ErrDuplicatedKey so
			// handlers can answer 409 without poking at driver error codes
			TranslateError: true,
		})
		if err == nil {
			DB.AutoMigrate(
				&models.User{},
				&models.Package{},
				&models.Subscription{},
				&models.LoyaltyBonus{},
				&models.LoyaltyTransaction{},
				&models.Category{},
				&models.Collection{},
				&models.Product{},
				&models.Order{},
				&models.OrderItem{},
				&models.NewsletterSubscriber{},
				&models.Partner{},
				&models.PartnerSession{},
				&models.PartnerSessionOrder{},
				&models.ShippingZone{},
				&models.ShippingCountry{},
				&models.ShippingState{},
				&models.Popup{},
				&models.Discount{},
				&models.Video{},
				&models.Playlist{},
				&models.PlaylistVideo{},
				&models.Favorite{},
				&models.BlogPost{},
				&models.WeddingTimeline{},
				&models.WeddingTimelineTask{},
			)

			return
		}

		log.Printf("Failed to connect to database (try %d/%d): %v", i+1, maxRetries, err)
		if i < maxRetries-1 {
			log.Printf("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		panic(err)
	}
}
