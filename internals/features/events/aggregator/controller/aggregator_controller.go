package controller

import (
	"log"

	"eventku_backend/internals/features/events/aggregator/adapter"
	"eventku_backend/internals/features/events/aggregator/dto"
	"eventku_backend/internals/features/events/aggregator/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type AggregatorController struct {
	DB        *gorm.DB
	Factories []adapter.Factory
}

func NewAggregatorController(db *gorm.DB) *AggregatorController {
	return &AggregatorController{
		DB:        db,
		Factories: adapter.DefaultFactories(),
	}
}

// 🟢 POST /api/a/events/aggregator/run
// Trigger tanpa body. Status:
//   - 200: semua sumber sukses
//   - 207: sebagian sumber gagal (body tetap laporan lengkap)
//   - 500: gagal sebelum sumber pertama diproses (mis. config hilang)
//
// Body laporan dipakai scheduler eksternal — bentuknya kontrak, bukan
// envelope JsonOK standar.
func (ctrl *AggregatorController) RunAggregator(c *fiber.Ctx) error {
	svc := service.NewAggregatorService(ctrl.DB, ctrl.Factories)

	result, err := svc.Run(c.UserContext())
	if err != nil {
		log.Printf("[ERROR] Critical error in Event Aggregator: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
			"stats": dto.AggregatorRunStats{
				SourceBreakdown: map[string]dto.SourceStats{},
			},
			"errors": []string{err.Error()},
		})
	}

	status := fiber.StatusOK
	if !result.Success {
		status = fiber.StatusMultiStatus // 207: partial success
	}
	return c.Status(status).JSON(result)
}
