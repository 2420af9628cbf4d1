package route

import (
	"eventku_backend/internals/features/events/aggregator/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AggregatorAdminRoutes: trigger sinkronisasi, dipanggil scheduler/cron.
func AggregatorAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAggregatorController(db)

	agg := api.Group("/events/aggregator")
	agg.Post("/run", ctrl.RunAggregator)
}
