package controllers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/internal/pkg/counter"
	"github.com/wifey-app/wifey-api/internal/pkg/database"
)

// HandleListVideos lists videos, newest first. ?published=true narrows to
// published ones.
func HandleListVideos(c *fiber.Ctx) error {
	db := database.GetDB()
	page := parsePage(c)

	query := db.Model(&models.Video{})
	if c.Query("published") == "true" {
		query = query.Where("published = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return internalError(c, err)
	}
	var videos []models.Video
	if err := query.Order("created_at DESC").
		Offset(pageOffset(page)).Limit(PageSize).
		Find(&videos).Error; err != nil {
		return internalError(c, err)
	}
	return paginated(c, videos, total, page)
}

// HandleCreateVideo creates a video.
func HandleCreateVideo(c *fiber.Ctx) error {
	video := &models.Video{}
	if err := c.BodyParser(video); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if err := validate.Struct(video); err != nil {
		return handleDBError(c, err)
	}
	if err := database.GetDB().Create(video).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": video})
}

// HandleGetVideo returns a video by id.
func HandleGetVideo(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	var video models.Video
	if err := database.GetDB().First(&video, id).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": video})
}

// HandleCountVideoView records one playback. Views are buffered in Redis and
// flushed to the videos table in batches, so the stored count trails by a
// flush interval.
func HandleCountVideoView(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	var video models.Video
	if err := database.GetDB().First(&video, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := counter.AddVideoView(video.ID); err != nil {
		log.Printf("video: could not count view for %d: %v", video.ID, err)
	}
	return c.JSON(fiber.Map{"message": "View counted"})
}

// HandleUpdateVideo updates a video.
func HandleUpdateVideo(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var video models.Video
	if err := db.First(&video, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := c.BodyParser(&video); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	video.ID = id
	if err := validate.Struct(&video); err != nil {
		return handleDBError(c, err)
	}
	if err := db.Save(&video).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": video})
}

// HandleDeleteVideo removes a video and its playlist memberships.
func HandleDeleteVideo(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var video models.Video
	if err := db.First(&video, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Where("video_id = ?", id).
		Delete(&models.PlaylistVideo{}).Error; err != nil {
		return internalError(c, err)
	}
	if err := db.Delete(&video).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Video deleted"})
}

// Playlists

// HandleListPlaylists lists playlists.
func HandleListPlaylists(c *fiber.Ctx) error {
	db := database.GetDB()
	page := parsePage(c)

	var total int64
	if err := db.Model(&models.Playlist{}).Count(&total).Error; err != nil {
		return internalError(c, err)
	}
	var playlists []models.Playlist
	if err := db.Order("created_at DESC").
		Offset(pageOffset(page)).Limit(PageSize).
		Find(&playlists).Error; err != nil {
		return internalError(c, err)
	}
	return paginated(c, playlists, total, page)
}

// HandleCreatePlaylist creates a playlist.
func HandleCreatePlaylist(c *fiber.Ctx) error {
	playlist := &models.Playlist{}
	if err := c.BodyParser(playlist); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if err := validate.Struct(playlist); err != nil {
		return handleDBError(c, err)
	}
	if err := database.GetDB().Create(playlist).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": playlist})
}

// HandleGetPlaylist returns a playlist with its videos in position order.
func HandleGetPlaylist(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var playlist models.Playlist
	if err := db.First(&playlist, id).Error; err != nil {
		return handleDBError(c, err)
	}
	var entries []models.PlaylistVideo
	if err := db.Preload("Video").Where("playlist_id = ?", id).
		Order("position ASC").Find(&entries).Error; err != nil {
		return internalError(c, err)
	}
	return c.JSON(fiber.Map{"data": fiber.Map{
		"playlist": playlist,
		"videos":   entries,
	}})
}

// HandleUpdatePlaylist updates playlist metadata.
func HandleUpdatePlaylist(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var playlist models.Playlist
	if err := db.First(&playlist, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := c.BodyParser(&playlist); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	playlist.ID = id
	if err := validate.Struct(&playlist); err != nil {
		return handleDBError(c, err)
	}
	if err := db.Save(&playlist).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": playlist})
}

// HandleDeletePlaylist removes a playlist and its membership rows.
func HandleDeletePlaylist(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var playlist models.Playlist
	if err := db.First(&playlist, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Where("playlist_id = ?", id).
		Delete(&models.PlaylistVideo{}).Error; err != nil {
		return internalError(c, err)
	}
	if err := db.Delete(&playlist).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Playlist deleted"})
}

type addPlaylistVideoRequest struct {
	VideoID  uint `json:"video_id"`
	Position int  `json:"position"`
}

// HandleAddPlaylistVideo appends or positions a video in a playlist. Adding
// the same video twice is a 409 from the unique index.
func HandleAddPlaylistVideo(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	req := &addPlaylistVideoRequest{Position: -1}
	if err := c.BodyParser(req); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	if req.VideoID == 0 {
		return badRequest(c, "INVALID_VIDEO_ID", "video_id is required")
	}

	db := database.GetDB()
	var playlist models.Playlist
	if err := db.First(&playlist, id).Error; err != nil {
		return handleDBError(c, err)
	}
	var video models.Video
	if err := db.First(&video, req.VideoID).Error; err != nil {
		return handleDBError(c, err)
	}

	position := req.Position
	if position < 0 {
		var count int64
		if err := db.Model(&models.PlaylistVideo{}).
			Where("playlist_id = ?", id).Count(&count).Error; err != nil {
			return internalError(c, err)
		}
		position = int(count)
	}

	entry := &models.PlaylistVideo{
		PlaylistID: id,
		VideoID:    req.VideoID,
		Position:   position,
	}
	if err := db.Create(entry).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": entry})
}

// HandleRemovePlaylistVideo removes a video from a playlist.
func HandleRemovePlaylistVideo(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	videoID, err := c.ParamsInt("videoId")
	if err != nil || videoID < 1 {
		return badRequest(c, "INVALID_VIDEO_ID", "invalid video id")
	}

	db := database.GetDB()
	var entry models.PlaylistVideo
	if err := db.Where("playlist_id = ? AND video_id = ?", id, videoID).
		First(&entry).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Delete(&entry).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Video removed from playlist"})
}
