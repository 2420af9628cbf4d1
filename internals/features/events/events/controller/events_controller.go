package controller

import (
	"log"

	"eventku_backend/internals/features/events/events/dto"
	"eventku_backend/internals/features/events/events/model"
	helper "eventku_backend/internals/helpers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EventController struct {
	DB *gorm.DB
}

func NewEventController(db *gorm.DB) *EventController {
	return &EventController{DB: db}
}

// 🟢 GET /api/public/events?page=&per_page=
func (ctrl *EventController) GetEvents(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.EventModel{}).
		Where("event_status = ?", "published")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Printf("[ERROR] Gagal hitung events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data event")
	}

	var events []model.EventModel
	if err := q.
		Order("event_start_date ASC, event_start_time ASC").
		Offset(paging.Offset).
		Limit(paging.Limit).
		Find(&events).Error; err != nil {
		log.Printf("[ERROR] Gagal ambil events: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data event")
	}

	return helper.JsonList(c, "Daftar event berhasil diambil",
		dto.ToEventResponseList(events), helper.BuildPagination(paging, total))
}

// 🟢 GET /api/public/events/:slug
func (ctrl *EventController) GetEventBySlug(c *fiber.Ctx) error {
	slug := c.Params("slug")
	if slug == "" {
		return helper.JsonError(c, fiber.StatusBadRequest, "Slug tidak boleh kosong")
	}

	var ev model.EventModel
	if err := ctrl.DB.Where("event_slug = ?", slug).First(&ev).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Event tidak ditemukan")
	}

	return helper.JsonOK(c, "Event berhasil ditemukan", dto.ToEventResponse(&ev))
}
