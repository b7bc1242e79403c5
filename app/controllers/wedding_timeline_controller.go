package controllers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/wifey-app/wifey-api/app/models"
	"github.com/wifey-app/wifey-api/internal/pkg/database"
)

// HandleListWeddingTimelines lists timelines, optionally filtered by email.
func HandleListWeddingTimelines(c *fiber.Ctx) error {
	db := database.GetDB()
	page := parsePage(c)

	query := db.Model(&models.WeddingTimeline{})
	if email := strings.ToLower(strings.TrimSpace(c.Query("email"))); email != "" {
		query = query.Where("email = ?", email)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return internalError(c, err)
	}
	var timelines []models.WeddingTimeline
	if err := query.Order("created_at DESC").
		Offset(pageOffset(page)).Limit(PageSize).
		Find(&timelines).Error; err != nil {
		return internalError(c, err)
	}
	return paginated(c, timelines, total, page)
}

// HandleCreateWeddingTimeline creates a timeline, optionally seeded with
// tasks in one shot.
func HandleCreateWeddingTimeline(c *fiber.Ctx) error {
	timeline := &models.WeddingTimeline{}
	if err := c.BodyParser(timeline); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	timeline.Email = strings.ToLower(strings.TrimSpace(timeline.Email))
	if err := validate.Struct(timeline); err != nil {
		return handleDBError(c, err)
	}
	for i := range timeline.Tasks {
		timeline.Tasks[i].Position = i
	}
	if err := database.GetDB().Create(timeline).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": timeline})
}

// HandleGetWeddingTimeline returns a timeline with its tasks in order.
func HandleGetWeddingTimeline(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}
	var timeline models.WeddingTimeline
	if err := database.GetDB().
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("position ASC") }).
		First(&timeline, id).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": timeline})
}

// HandleUpdateWeddingTimeline updates timeline metadata only; tasks have
// their own endpoints.
func HandleUpdateWeddingTimeline(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var timeline models.WeddingTimeline
	if err := db.First(&timeline, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := c.BodyParser(&timeline); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	timeline.ID = id
	timeline.Email = strings.ToLower(strings.TrimSpace(timeline.Email))
	if err := validate.Struct(&timeline); err != nil {
		return handleDBError(c, err)
	}
	if err := db.Omit("Tasks").Save(&timeline).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": timeline})
}

// HandleDeleteWeddingTimeline removes a timeline and its tasks.
func HandleDeleteWeddingTimeline(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var timeline models.WeddingTimeline
	if err := db.First(&timeline, id).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Where("timeline_id = ?", id).
		Delete(&models.WeddingTimelineTask{}).Error; err != nil {
		return internalError(c, err)
	}
	if err := db.Delete(&timeline).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Timeline deleted"})
}

// HandleCreateWeddingTimelineTask appends a task to a timeline.
func HandleCreateWeddingTimelineTask(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return badRequest(c, "INVALID_ID", err.Error())
	}

	db := database.GetDB()
	var timeline models.WeddingTimeline
	if err := db.First(&timeline, id).Error; err != nil {
		return handleDBError(c, err)
	}

	task := &models.WeddingTimelineTask{}
	if err := c.BodyParser(task); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	task.TimelineID = id
	if err := validate.Struct(task); err != nil {
		return handleDBError(c, err)
	}
	if task.Position == 0 {
		var count int64
		if err := db.Model(&models.WeddingTimelineTask{}).
			Where("timeline_id = ?", id).Count(&count).Error; err != nil {
			return internalError(c, err)
		}
		task.Position = int(count)
	}
	if err := db.Create(task).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": task})
}

// HandleUpdateWeddingTimelineTask updates a task (title, due date, done,
// position).
func HandleUpdateWeddingTimelineTask(c *fiber.Ctx) error {
	taskID, err := c.ParamsInt("taskId")
	if err != nil || taskID < 1 {
		return badRequest(c, "INVALID_ID", "invalid task id")
	}

	db := database.GetDB()
	var task models.WeddingTimelineTask
	if err := db.First(&task, taskID).Error; err != nil {
		return handleDBError(c, err)
	}
	timelineID := task.TimelineID
	if err := c.BodyParser(&task); err != nil {
		return badRequest(c, "INVALID_BODY", "Request body must be valid JSON")
	}
	task.ID = uint(taskID)
	task.TimelineID = timelineID
	if err := validate.Struct(&task); err != nil {
		return handleDBError(c, err)
	}
	if err := db.Save(&task).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"data": task})
}

// HandleDeleteWeddingTimelineTask removes a task.
func HandleDeleteWeddingTimelineTask(c *fiber.Ctx) error {
	taskID, err := c.ParamsInt("taskId")
	if err != nil || taskID < 1 {
		return badRequest(c, "INVALID_ID", "invalid task id")
	}

	db := database.GetDB()
	var task models.WeddingTimelineTask
	if err := db.First(&task, taskID).Error; err != nil {
		return handleDBError(c, err)
	}
	if err := db.Delete(&task).Error; err != nil {
		return handleDBError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Task deleted"})
}
