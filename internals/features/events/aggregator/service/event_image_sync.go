package service

import (
	"context"
	"fmt"
	"log"

	"eventku_backend/internals/features/events/events/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// syncEventImages: replace-all, bukan diff. Set gambar sebuah event selalu
// persis daftar URL terakhir, urut sesuai input, index 0 = primary.
// Delete + insert dibungkus satu transaksi supaya tidak ada jendela
// "event tanpa gambar" kalau insert gagal.
//
// Best-effort: kegagalan di sini cuma dicatat di log, TIDAK menggagalkan
// hasil reconcile event pemiliknya.
func (s *SyncService) syncEventImages(ctx context.Context, eventID uuid.UUID, imageURLs []string) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("event_image_event_id = ?", eventID).
			Delete(&model.EventImageModel{}).Error; err != nil {
			return fmt.Errorf("delete existing images: %w", err)
		}

		if len(imageURLs) == 0 {
			return nil
		}

		rows := make([]model.EventImageModel, 0, len(imageURLs))
		for i, url := range imageURLs {
			rows = append(rows, model.EventImageModel{
				EventImageEventID:      eventID,
				EventImageURL:          url,
				EventImageAltText:      fmt.Sprintf("Event image %d", i+1),
				EventImageDisplayOrder: i,
				EventImageIsPrimary:    i == 0,
			})
		}
		if err := tx.Create(&rows).Error; err != nil {
			return fmt.Errorf("insert images: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Printf("[ERROR] Gagal sync gambar event %s: %v", eventID, err)
	}
}
