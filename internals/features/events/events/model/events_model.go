package model

import (
	"time"

	"eventku_backend/internals/helpers/dbtime"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventModel struct {
	EventID          uuid.UUID `gorm:"column:event_id;type:uuid;primaryKey" json:"event_id"`
	EventTitle       string    `gorm:"column:event_title;type:varchar(255);not null"   json:"event_title"`
	EventSlug        string    `gorm:"column:event_slug;type:varchar(100);not null"    json:"event_slug"`
	EventDescription string    `gorm:"column:event_description;type:text"              json:"event_description"`

	// Tanggal & jam dipisah (kolom DATE + TIME). Keduanya diturunkan dari
	// timestamp absolut dalam UTC — jangan campur derivasi lokal & UTC di satu row.
	EventStartDate dbtime.Ymd `gorm:"column:event_start_date;type:date;not null" json:"event_start_date"`
	EventEndDate   dbtime.Ymd `gorm:"column:event_end_date;type:date;not null"   json:"event_end_date"`
	EventStartTime dbtime.Tod `gorm:"column:event_start_time;type:time"          json:"event_start_time"`
	EventEndTime   dbtime.Tod `gorm:"column:event_end_time;type:time"           json:"event_end_time"`

	EventLocationName        string  `gorm:"column:event_location_name;type:varchar(255)" json:"event_location_name"`
	EventLocationAddress     string  `gorm:"column:event_location_address;type:text"      json:"event_location_address"`
	EventLocationCoordinates *string `gorm:"column:event_location_coordinates;type:point" json:"event_location_coordinates,omitempty"`

	EventCategoryID  uuid.UUID `gorm:"column:event_category_id;type:uuid;not null"  json:"event_category_id"`
	EventOrganizerID uuid.UUID `gorm:"column:event_organizer_id;type:uuid;not null" json:"event_organizer_id"`

	EventStatus   string `gorm:"column:event_status;type:varchar(20);not null;default:'published'" json:"event_status"`
	EventCapacity *int   `gorm:"column:event_capacity" json:"event_capacity,omitempty"`
	EventFeatured bool   `gorm:"column:event_featured;not null;default:false" json:"event_featured"`

	// Natural key: (source_platform, source_event_id) unik → re-run sinkronisasi
	// jatuh ke branch update, bukan bikin baris baru.
	EventSourcePlatform string `gorm:"column:event_source_platform;type:varchar(50);not null;uniqueIndex:ux_events_source_platform_event_id" json:"event_source_platform"`
	EventSourceEventID  string `gorm:"column:event_source_event_id;type:varchar(100);not null;uniqueIndex:ux_events_source_platform_event_id" json:"event_source_event_id"`

	EventExternalURL       *string `gorm:"column:event_external_url;type:text"        json:"event_external_url,omitempty"`
	EventExternalTicketURL string  `gorm:"column:event_external_ticket_url;type:text" json:"event_external_ticket_url"`

	EventCreatedAt time.Time `gorm:"column:event_created_at;autoCreateTime" json:"event_created_at"`
	EventUpdatedAt time.Time `gorm:"column:event_updated_at;autoUpdateTime" json:"event_updated_at"`
}

func (EventModel) TableName() string {
	return "events"
}

// BeforeCreate mengisi UUID di sisi aplikasi kalau DB tidak punya
// gen_random_uuid() (mis. sqlite saat test).
func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.EventID == uuid.Nil {
		m.EventID = uuid.New()
	}
	return nil
}
