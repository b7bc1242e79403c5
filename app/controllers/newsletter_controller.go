package controllers

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/internal/pkg/cache"
	"github.com/wifey-app/wifey-api/internal/pkg/database"
	"github.com/wifey-app/wifey-api/internal/pkg/env"
	"github.com/wifey-app/wifey-api/internal/pkg/hcaptcha"
	"github.com/wifey-app/wifey-api/internal/pkg/mail"
)

const confirmTokenTTL = 48 * time.Hour

func confirmTokenKey(token string) string {
	return "newsletter:confirm:" + token
}

// HandleListNewsletterSubscribers lists signups, newest first.
func HandleListNewsletterSubscribers(c *fiber.Ctx) error {
	db := database.GetDB()
	page := parsePage(c)

	var total int64
	if err := db.Model(&models.NewsletterSubscriber{}).Count(&total).Error; err != nil {
		return internalError(c, err)
	}
	var subscribers []models.NewsletterSubscriber
	if err := db.Order("created_at DESC").
		Offset(pageOffset(page)).Limit(PageSize).
		Find(&subscribers).Error; err != nil {
		return internalError(c, err)
	}
	return paginated(c, subscribers, total, page)
}

type newsletterSignupRequest struct {
	Email        string `json:"email" validate:"required,email"`
	CaptchaToken string `json:"captcha_token"`
}

// HandleNewsletterSignup registers an address and mails a double-opt-in
// confirmation link. Signing up twice is a 409 from the unique index.
func HandleNewsletterSignup(c *fiber.Ctx) error {
	req := &newsletterSignupRequest{}
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if err := validate.Struct(req); err != nil {
		return badRequest(c, "INVALID_EMAIL", "A valid email is required")
	}
	if hcaptcha.Enabled() {
		if ok, err := hcaptcha.Verify(req.CaptchaToken); !ok {
			log.Printf("newsletter: captcha rejected for %s: %v", req.Email, err)
			return badRequest(c, "INVALID_CAPTCHA", "Captcha verification failed")
		}
	}

	subscriber := &models.NewsletterSubscriber{Email: req.Email}
	if err := database.GetDB().Create(subscriber).Error; err != nil {
		return handleDBError(c, err)
	}

	token := uuid.New().String()
	if err := cache.Set(confirmTokenKey(token), subscriber.Email, confirmTokenTTL); err != nil {
		log.Printf("newsletter: could not store confirm token for %s: %v", subscriber.Email, err)
	} else {
		confirmURL := fmt.Sprintf("%s/api/newsletter/confirm?token=%s",
			env.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080"), token)
		go func(email, url string) {
			if err := mail.SendNewsletterConfirmation(email, url); err != nil {
				log.Printf("newsletter: confirmation mail to %s failed: %v", email, err)
			}
		}(subscriber.Email, confirmURL)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Subscribed, confirmation mail sent",
		"data":    subscriber,
	})
}

// HandleNewsletterConfirm resolves a confirmation token and marks the
// subscriber confirmed. Tokens are single use and expire after 48 hours.
func HandleNewsletterConfirm(c *fiber.Ctx) error {
	token := c.Query("token")
	if token == "" {
		return badRequest(c, "INVALID_TOKEN", "token is required")
	}

	email, err := cache.Get(confirmTokenKey(token))
	if err != nil || email == "" {
		return notFound(c, "NOT_FOUND", "Unknown or expired token")
	}

	db := database.GetDB()
	var subscriber models.NewsletterSubscriber
	if err := db.Where("email = ?", email).First(&subscriber).Error; err != nil {
		return handleDBError(c, err)
	}
	if !subscriber.Confirmed {
		now := time.Now()
		subscriber.Confirmed = true
		subscriber.ConfirmedAt = &now
		if err := db.Save(&subscriber).Error; err != nil {
			return handleDBError(c, err)
		}
	}
	if err := cache.Delete(confirmTokenKey(token)); err != nil {
		log.Printf("newsletter: could not delete confirm token: %v", err)
	}
	return c.JSON(fiber.Map{"message": "Subscription confirmed", "data": subscriber})
}

// HandleDeleteNewsletterSubscriber removes a signup.
func HandleDeleteNewsletterSubscriber(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var subscriber models.NewsletterSubscriber
	if err := db.First(&subscriber, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Delete(&subscriber).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Subscriber deleted"})
}
