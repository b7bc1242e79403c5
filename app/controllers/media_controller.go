package controllers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/wifey-app/wifey-api/internal/pkg/mediastore"
	"github.com/wifey-app/wifey-api/internal/pkg/upload"
)

const maxUploadSize = 20 << 20 // 20 MB

// HandleUploadMedia accepts one multipart file under "file", stores it in
// the media bucket and returns the public URL. Controllers reference the
// returned URL in image_url / thumbnail_url fields.
func HandleUploadMedia(c *fiber.Ctx) error {
	client := mediastore.GetClient()
	if client == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "MEDIA_DISABLED",
			"message": "Media uploads are not configured",
		})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "INVALID_FILE", "A multipart file field named 'file' is required")
	}
	if fileHeader.Size > maxUploadSize {
		return badRequest(c, "FILE_TOO_LARGE", "Uploads are limited to 20 MB")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return internalError(c, err)
	}
	defer file.Close()

	head := make([]byte, 512)
	n, _ := file.Read(head)
	contentType, err := upload.ValidateMediaBySniff(fileHeader.Filename, head[:n])
	if err != nil {
		return badRequest(c, "UNSUPPORTED_FILE_TYPE", err.Error())
	}
	if _, err := file.Seek(0, 0); err != nil {
		return internalError(c, err)
	}

	key := mediastore.NewObjectKey(fileHeader.Filename, time.Now())
	url, err := client.Upload(c.Context(), key, contentType, file)
	if err != nil {
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": fiber.Map{
		"key": key,
		"url": url,
	}})
}

type deleteMediaRequest struct {
	Key string `json:"key"`
}

// HandleDeleteMedia removes a stored object by key.
func HandleDeleteMedia(c *fiber.Ctx) error {
	client := mediastore.GetClient()
	if client == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error":   "MEDIA_DISABLED",
			"message": "Media uploads are not configured",
		})
	}

	req := &deleteMediaRequest{}
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if req.Key == "" || !strings.HasPrefix(req.Key, "media/") {
		return badRequest(c, "INVALID_KEY", "key must reference an uploaded media object")
	}
	if err := client.Delete(c.Context(), req.Key); err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Media deleted"})
}
