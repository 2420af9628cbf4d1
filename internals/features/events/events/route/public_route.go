package route

import (
	"eventku_backend/internals/features/events/events/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// EventPublicRoutes: read-only, tanpa auth.
func EventPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewEventController(db)

	events := api.Group("/events")
	events.Get("/", ctrl.GetEvents)
	events.Get("/:slug", ctrl.GetEventBySlug)
}
