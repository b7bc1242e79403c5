package statistics

import (
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/internal/pkg/cache"
	"github.com/wifey-app/wifey-api/internal/pkg/database"
)

const (
	CacheKeyProducts    = "statistics:products:total"
	CacheKeyVideos      = "statistics:videos:published"
	CacheKeyPosts       = "statistics:blogs:published"
	CacheKeySubscribers = "statistics:newsletter:confirmed"
	CacheExpiration     = 30 * time.Minute
)

// StatisticsData holds the public counts shown on the storefront.
type StatisticsData struct {
	TotalProducts         int `json:"totalProducts"`
	PublishedVideos       int `json:"publishedVideos"`
	PublishedPosts        int `json:"publishedPosts"`
	NewsletterSubscribers int `json:"newsletterSubscribers"`
}

var (
	lastCacheUpdate     time.Time
	cacheUpdateMutex    sync.Mutex
	cacheUpdateInterval = 5 * time.Minute
)

// ShouldUpdateCache checks whether the cached counts are due for a refresh.
func ShouldUpdateCache() bool {
	cacheUpdateMutex.Lock()
	defer cacheUpdateMutex.Unlock()

	return time.Since(lastCacheUpdate) > cacheUpdateInterval
}

// UpdateCacheIfNeeded refreshes the cached counts when the interval elapsed.
func UpdateCacheIfNeeded() {
	if ShouldUpdateCache() {
		cacheUpdateMutex.Lock()
		defer cacheUpdateMutex.Unlock()

		if err := UpdateStatisticsCache(); err != nil {
			log.Printf("Failed to update statistics cache: %v", err)
		} else {
			lastCacheUpdate = time.Now()
		}
	}
}

// UpdateStatisticsCache recounts everything and stores the values in Redis.
func UpdateStatisticsCache() error {
	db := database.GetDB()

	var products int64
	if err := db.Model(&models.Product{}).Where("active = ?", true).Count(&products).Error; err != nil {
		return err
	}
	var videos int64
	if err := db.Model(&models.Video{}).Where("published = ?", true).Count(&videos).Error; err != nil {
		return err
	}
	var posts int64
	if err := db.Model(&models.BlogPost{}).Where("published = ?", true).Count(&posts).Error; err != nil {
		return err
	}
	var subscribers int64
	if err := db.Model(&models.NewsletterSubscriber{}).Where("confirmed = ?", true).Count(&subscribers).Error; err != nil {
		return err
	}

	for key, value := range map[string]int64{
		CacheKeyProducts:    products,
		CacheKeyVideos:      videos,
		CacheKeyPosts:       posts,
		CacheKeySubscribers: subscribers,
	} {
		if err := cache.Set(key, strconv.FormatInt(value, 10), CacheExpiration); err != nil {
			return err
		}
	}
	return nil
}

func getCached(key string) int {
	val, err := cache.Get(key)
	if err != nil {
		return 0
	}
	count, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0
	}
	return int(count)
}

// GetStatisticsData returns the storefront counts, refreshing the cache if
// it has gone stale.
func GetStatisticsData() StatisticsData {
	UpdateCacheIfNeeded()

	return StatisticsData{
		TotalProducts:         getCached(CacheKeyProducts),
		PublishedVideos:       getCached(CacheKeyVideos),
		PublishedPosts:        getCached(CacheKeyPosts),
		NewsletterSubscribers: getCached(CacheKeySubscribers),
	}
}
