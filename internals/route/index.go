// file: internals/route/index.go
package routes

import (
	"log"

	aggregatorRoute "eventku_backend/internals/features/events/aggregator/route"
	eventsRoute "eventku_backend/internals/features/events/events/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	eventsRoute.EventPublicRoutes(public, db)

	// ===================== ADMIN / INTERNAL =====================
	// Dipanggil scheduler internal; auth end-user di luar scope sistem ini.
	log.Println("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a")
	aggregatorRoute.AggregatorAdminRoutes(admin, db)
}
