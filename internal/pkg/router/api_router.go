package router

import (
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redisstorage "github.com/gofiber/storage/redis"

	"github.com/wifey-app/wifey-api/app/controllers"
	"github.com/wifey-app/wifey-api/internal/pkg/cache"
	"github.com/wifey-app/wifey-api/internal/pkg/env"
	"github.com/wifey-app/wifey-api/internal/pkg/middleware"
)

type ApiRouter struct {
}

func NewApiRouter() *ApiRouter {
	return &ApiRouter{}
}

func (h ApiRouter) InstallRouter(app *fiber.App) {
	// Resolve the session cookie into a user context for every request.
	app.Use(middleware.UserContextMiddleware)

	api := app.Group("/api", limiter.New(limiter.Config{
		Max:        env.GetEnvInt("API_RATE_LIMIT", 120),
		Expiration: time.Minute,
		Storage:    newLimiterStorage(),
	}))

	api.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Wifey API"})
	})

	// Auth
	auth := api.Group("/auth")
	auth.Post("/login", controllers.HandleLogin)
	auth.Post("/logout", controllers.HandleLogout)
	auth.Get("/me", middleware.RequireAuth, controllers.HandleMe)

	// Storefront-facing routes, no login required.
	api.Get("/stats", controllers.HandlePublicStats)
	api.Post("/newsletter", controllers.HandleNewsletterSignup)
	api.Get("/newsletter/confirm", controllers.HandleNewsletterConfirm)
	api.Post("/discounts/validate", controllers.HandleValidateDiscount)
	api.Get("/popups/active", controllers.HandleGetActivePopup)
	api.Get("/blogs", controllers.HandleListBlogPosts)
	api.Get("/blogs/:id", controllers.HandleGetBlogPost)
	api.Get("/videos", controllers.HandleListVideos)
	api.Get("/videos/:id", controllers.HandleGetVideo)
	api.Post("/videos/:id/view", controllers.HandleCountVideoView)
	api.Get("/playlists", controllers.HandleListPlaylists)
	api.Get("/playlists/:id", controllers.HandleGetPlaylist)
	api.Get("/products", controllers.HandleListProducts)
	api.Get("/products/:id", controllers.HandleGetProduct)
	api.Get("/categories", controllers.HandleListCategories)
	api.Get("/categories/:id", controllers.HandleGetCategory)
	api.Get("/collections", controllers.HandleListCollections)
	api.Get("/collections/:id", controllers.HandleGetCollection)
	api.Get("/favorites", controllers.HandleListFavorites)
	api.Post("/favorites", controllers.HandleCreateFavorite)
	api.Delete("/favorites/:id", controllers.HandleDeleteFavorite)
	api.Get("/wedding-timelines", controllers.HandleListWeddingTimelines)
	api.Post("/wedding-timelines", controllers.HandleCreateWeddingTimeline)
	api.Get("/wedding-timelines/:id", controllers.HandleGetWeddingTimeline)
	api.Put("/wedding-timelines/:id", controllers.HandleUpdateWeddingTimeline)
	api.Delete("/wedding-timelines/:id", controllers.HandleDeleteWeddingTimeline)
	api.Post("/wedding-timelines/:id/tasks", controllers.HandleCreateWeddingTimelineTask)
	api.Put("/wedding-timelines/:id/tasks/:taskId", controllers.HandleUpdateWeddingTimelineTask)
	api.Delete("/wedding-timelines/:id/tasks/:taskId", controllers.HandleDeleteWeddingTimelineTask)

	// Admin-gated routes on the main API surface.
	api.Get("/analytics/subscriptions", middleware.RequireAdmin, controllers.HandleSubscriptionAnalytics)

	loyalty := api.Group("/loyalty", middleware.RequireAdmin)
	loyalty.Post("/addPoints", controllers.HandleAddPoints)
	loyalty.Get("/balance", controllers.HandleGetBalance)
	loyalty.Get("/transactions", controllers.HandleListTransactions)
	loyalty.Get("/transactions/:id", controllers.HandleGetTransaction)
	loyalty.Put("/transactions/:id", controllers.HandleUpdateTransaction)
	loyalty.Delete("/transactions/:id", controllers.HandleDeleteTransaction)
	loyalty.Get("/bonuses", controllers.HandleListBonuses)
	loyalty.Post("/bonuses", controllers.HandleCreateBonus)
	loyalty.Get("/bonuses/:id", controllers.HandleGetBonus)
	loyalty.Put("/bonuses/:id", controllers.HandleUpdateBonus)
	loyalty.Delete("/bonuses/:id", controllers.HandleDeleteBonus)

	// Everything below is the admin surface.
	admin := api.Group("/admin", middleware.RequireAdmin)
	admin.Get("/dashboard", controllers.HandleDashboard)
	admin.Post("/counters/flush", controllers.HandleFlushCounters)

	admin.Get("/users", controllers.HandleListUsers)
	admin.Post("/users", controllers.HandleCreateUser)
	admin.Get("/users/:id", controllers.HandleGetUser)
	admin.Put("/users/:id", controllers.HandleUpdateUser)
	admin.Delete("/users/:id", controllers.HandleDeleteUser)

	admin.Get("/packages", controllers.HandleListPackages)
	admin.Post("/packages", controllers.HandleCreatePackage)
	admin.Get("/packages/:id", controllers.HandleGetPackage)
	admin.Put("/packages/:id", controllers.HandleUpdatePackage)
	admin.Delete("/packages/:id", controllers.HandleDeletePackage)

	admin.Get("/subscriptions", controllers.HandleListSubscriptions)
	admin.Post("/subscriptions", controllers.HandleCreateSubscription)
	admin.Get("/subscriptions/:id", controllers.HandleGetSubscription)
	admin.Put("/subscriptions/:id", controllers.HandleUpdateSubscription)
	admin.Delete("/subscriptions/:id", controllers.HandleDeleteSubscription)

	admin.Get("/orders", controllers.HandleListOrders)
	admin.Post("/orders", controllers.HandleCreateOrder)
	admin.Get("/orders/:id", controllers.HandleGetOrder)
	admin.Put("/orders/:id", controllers.HandleUpdateOrder)
	admin.Delete("/orders/:id", controllers.HandleDeleteOrder)

	admin.Post("/products", controllers.HandleCreateProduct)
	admin.Put("/products/:id", controllers.HandleUpdateProduct)
	admin.Delete("/products/:id", controllers.HandleDeleteProduct)

	admin.Post("/categories", controllers.HandleCreateCategory)
	admin.Put("/categories/:id", controllers.HandleUpdateCategory)
	admin.Delete("/categories/:id", controllers.HandleDeleteCategory)

	admin.Post("/collections", controllers.HandleCreateCollection)
	admin.Put("/collections/:id", controllers.HandleUpdateCollection)
	admin.Delete("/collections/:id", controllers.HandleDeleteCollection)

	admin.Get("/discounts", controllers.HandleListDiscounts)
	admin.Post("/discounts", controllers.HandleCreateDiscount)
	admin.Get("/discounts/:id", controllers.HandleGetDiscount)
	admin.Put("/discounts/:id", controllers.HandleUpdateDiscount)
	admin.Delete("/discounts/:id", controllers.HandleDeleteDiscount)

	admin.Get("/popups", controllers.HandleListPopups)
	admin.Post("/popups", controllers.HandleCreatePopup)
	admin.Get("/popups/:id", controllers.HandleGetPopup)
	admin.Put("/popups/:id", controllers.HandleUpdatePopup)
	admin.Delete("/popups/:id", controllers.HandleDeletePopup)

	admin.Get("/newsletter", controllers.HandleListNewsletterSubscribers)
	admin.Delete("/newsletter/:id", controllers.HandleDeleteNewsletterSubscriber)

	admin.Post("/videos", controllers.HandleCreateVideo)
	admin.Put("/videos/:id", controllers.HandleUpdateVideo)
	admin.Delete("/videos/:id", controllers.HandleDeleteVideo)

	admin.Post("/playlists", controllers.HandleCreatePlaylist)
	admin.Put("/playlists/:id", controllers.HandleUpdatePlaylist)
	admin.Delete("/playlists/:id", controllers.HandleDeletePlaylist)
	admin.Post("/playlists/:id/videos", controllers.HandleAddPlaylistVideo)
	admin.Delete("/playlists/:id/videos/:videoId", controllers.HandleRemovePlaylistVideo)

	admin.Post("/blogs", controllers.HandleCreateBlogPost)
	admin.Put("/blogs/:id", controllers.HandleUpdateBlogPost)
	admin.Delete("/blogs/:id", controllers.HandleDeleteBlogPost)

	admin.Get("/partners", controllers.HandleListPartners)
	admin.Post("/partners", controllers.HandleCreatePartner)
	admin.Get("/partners/:id", controllers.HandleGetPartner)
	admin.Put("/partners/:id", controllers.HandleUpdatePartner)
	admin.Delete("/partners/:id", controllers.HandleDeletePartner)

	admin.Get("/partner-sessions", controllers.HandleListPartnerSessions)
	admin.Post("/partner-sessions", controllers.HandleCreatePartnerSession)
	admin.Get("/partner-sessions/:id", controllers.HandleGetPartnerSession)
	admin.Put("/partner-sessions/:id", controllers.HandleUpdatePartnerSession)
	admin.Delete("/partner-sessions/:id", controllers.HandleDeletePartnerSession)
	admin.Post("/partner-sessions/:id/orders", controllers.HandleAttachSessionOrder)

	shipping := admin.Group("/shipping")
	shipping.Get("/zones", controllers.HandleListShippingZones)
	shipping.Post("/zones", controllers.HandleCreateShippingZone)
	shipping.Get("/zones/:id", controllers.HandleGetShippingZone)
	shipping.Put("/zones/:id", controllers.HandleUpdateShippingZone)
	shipping.Delete("/zones/:id", controllers.HandleDeleteShippingZone)
	shipping.Get("/countries", controllers.HandleListShippingCountries)
	shipping.Post("/countries", controllers.HandleCreateShippingCountry)
	shipping.Put("/countries/:id", controllers.HandleUpdateShippingCountry)
	shipping.Delete("/countries/:id", controllers.HandleDeleteShippingCountry)
	shipping.Get("/states", controllers.HandleListShippingStates)
	shipping.Post("/states", controllers.HandleCreateShippingState)
	shipping.Put("/states/:id", controllers.HandleUpdateShippingState)
	shipping.Delete("/states/:id", controllers.HandleDeleteShippingState)

	admin.Post("/media", controllers.HandleUploadMedia)
	admin.Delete("/media", controllers.HandleDeleteMedia)
}

// newLimiterStorage backs the rate limiter with Redis so counters survive
// restarts and are shared between instances. Database 1 keeps limiter keys
// away from the cache (DB 0).
func newLimiterStorage() *redisstorage.Storage {
	host := "localhost"
	port := 6379
	password := env.GetEnv("CACHE_PASSWORD", "")
	if cacheClient := cache.GetClient(); cacheClient != nil {
		addr := cacheClient.Options().Addr
		if h, p, err := net.SplitHostPort(addr); err == nil {
			host = h
			if v, err := strconv.Atoi(p); err == nil {
				port = v
			}
		}
		if p := cacheClient.Options().Password; p != "" {
			password = p
		}
	}
	return redisstorage.New(redisstorage.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 1,
		Reset:    false,
	})
}
