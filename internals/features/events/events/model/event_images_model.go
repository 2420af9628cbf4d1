package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventImageModel struct {
	EventImageID      uuid.UUID `gorm:"column:event_image_id;type:uuid;primaryKey" json:"event_image_id"`
	EventImageEventID uuid.UUID `gorm:"column:event_image_event_id;type:uuid;not null;index:idx_event_images_event_id" json:"event_image_event_id"`
	EventImageURL     string    `gorm:"column:event_image_url;type:text;not null" json:"event_image_url"`
	EventImageAltText string    `gorm:"column:event_image_alt_text;type:varchar(255)" json:"event_image_alt_text"`

	// Urutan gambar signifikan: display_order 0..n, index 0 = primary.
	EventImageDisplayOrder int  `gorm:"column:event_image_display_order;not null" json:"event_image_display_order"`
	EventImageIsPrimary    bool `gorm:"column:event_image_is_primary;not null;default:false" json:"event_image_is_primary"`

	EventImageCreatedAt time.Time `gorm:"column:event_image_created_at;autoCreateTime" json:"event_image_created_at"`
}

func (EventImageModel) TableName() string {
	return "event_images"
}

func (m *EventImageModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventImageID == uuid.Nil {
		m.EventImageID = uuid.New()
	}
	return nil
}
