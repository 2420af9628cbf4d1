package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrganizerModel struct {
	OrganizerID           uuid.UUID `gorm:"column:organizer_id;type:uuid;primaryKey" json:"organizer_id"`
	OrganizerUserID       uuid.UUID `gorm:"column:organizer_user_id;type:uuid;not null" json:"organizer_user_id"`
	// Matching organizer eksternal masih by nama persis (fragile, lihat DESIGN.md);
	// kolom ini yang jadi kunci lookup resolver.
	OrganizerBusinessName string    `gorm:"column:organizer_business_name;type:varchar(255);not null;index:idx_organizers_business_name" json:"organizer_business_name"`
	OrganizerContactEmail string    `gorm:"column:organizer_contact_email;type:varchar(255)" json:"organizer_contact_email"`
	OrganizerDescription  string    `gorm:"column:organizer_description;type:text"           json:"organizer_description"`
	OrganizerWebsite      *string   `gorm:"column:organizer_website;type:text"               json:"organizer_website,omitempty"`

	// "pending" untuk organizer self-register; organizer hasil agregasi
	// eksternal langsung "verified".
	OrganizerVerificationStatus string `gorm:"column:organizer_verification_status;type:varchar(20);not null;default:'pending'" json:"organizer_verification_status"`

	OrganizerCreatedAt time.Time `gorm:"column:organizer_created_at;autoCreateTime" json:"organizer_created_at"`
}

func (OrganizerModel) TableName() string {
	return "organizers"
}

func (m *OrganizerModel) BeforeCreate(tx *gorm.DB) error {
	if m.OrganizerID == uuid.Nil {
		m.OrganizerID = uuid.New()
	}
	return nil
}
