package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventCategoryModel struct {
	EventCategoryID          uuid.UUID `gorm:"column:event_category_id;type:uuid;primaryKey" json:"event_category_id"`
	EventCategoryName        string    `gorm:"column:event_category_name;type:varchar(100);not null;uniqueIndex:ux_event_categories_name" json:"event_category_name"`
	EventCategorySlug        string    `gorm:"column:event_category_slug;type:varchar(100);not null" json:"event_category_slug"`
	EventCategoryDescription string    `gorm:"column:event_category_description;type:text"           json:"event_category_description"`
	EventCategoryIcon        string    `gorm:"column:event_category_icon;type:varchar(20)"           json:"event_category_icon"`
	EventCategoryColor       string    `gorm:"column:event_category_color;type:varchar(10)"          json:"event_category_color"`
	EventCategoryCreatedAt   time.Time `gorm:"column:event_category_created_at;autoCreateTime" json:"event_category_created_at"`

	// NOTE: keunikan case-insensitive dibuat lewat migration:
	//   CREATE UNIQUE INDEX ux_event_categories_name_lower ON event_categories (LOWER(event_category_name));
	// Tidak bisa diekspresikan langsung via tag GORM. Resolver selalu
	// lookup pakai LOWER() supaya konsisten dengan index tsb.
}

func (EventCategoryModel) TableName() string {
	return "event_categories"
}

func (m *EventCategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventCategoryID == uuid.Nil {
		m.EventCategoryID = uuid.New()
	}
	return nil
}
