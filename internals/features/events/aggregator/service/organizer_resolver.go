package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eventku_backend/internals/features/events/aggregator/dto"
	eventmodel "eventku_backend/internals/features/events/events/model"
	usermodel "eventku_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// findOrCreateOrganizer: lookup by nama persis; tidak ada → provision akun
// sintetis (user + organizer) untuk organizer eksternal.
// Matching by display name memang fragile (lihat DESIGN.md) — dipertahankan
// demi kompatibilitas perilaku; metadata user menyimpan source_platform
// sebagai pijakan migrasi ke key (platform, upstream organizer id).
func (s *SyncService) findOrCreateOrganizer(ctx context.Context, info dto.OrganizerInfo, sourcePlatform string) (uuid.UUID, error) {
	var existing eventmodel.OrganizerModel
	err := s.db.WithContext(ctx).
		Where("organizer_business_name = ?", info.Name).
		First(&existing).Error
	if err == nil {
		return existing.OrganizerID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, fmt.Errorf("error finding organizer: %w", err)
	}

	user, err := s.provisionExternalUser(ctx, info, sourcePlatform)
	if err != nil {
		return uuid.Nil, fmt.Errorf("error creating system user for organizer: %w", err)
	}

	description := fmt.Sprintf("External organizer from %s", sourcePlatform)
	if info.Description != nil && *info.Description != "" {
		description = *info.Description
	}
	contactEmail := ""
	if info.Contact != nil {
		contactEmail = *info.Contact
	}

	org := eventmodel.OrganizerModel{
		OrganizerUserID:       user.UserID,
		OrganizerBusinessName: info.Name,
		OrganizerContactEmail: contactEmail,
		OrganizerDescription:  description,
		OrganizerWebsite:      info.Website,
		// Sumber agregasi tepercaya → langsung verified, bukan self-register.
		OrganizerVerificationStatus: "verified",
	}
	if err := s.db.WithContext(ctx).Create(&org).Error; err != nil {
		return uuid.Nil, fmt.Errorf("error creating organizer: %w", err)
	}
	return org.OrganizerID, nil
}

// provisionExternalUser membuat akun sintetis untuk organizer eksternal.
// Email: contact upstream kalau ada, kalau tidak generate placeholder unik.
// Password random (tidak pernah dipakai login) di-hash bcrypt.
func (s *SyncService) provisionExternalUser(ctx context.Context, info dto.OrganizerInfo, sourcePlatform string) (*usermodel.UserModel, error) {
	email := ""
	if info.Contact != nil && *info.Contact != "" {
		email = *info.Contact
	} else {
		email = fmt.Sprintf("external-%s-%d@example.com",
			strings.ToLower(sourcePlatform), time.Now().UnixMilli())
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.NewString()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := usermodel.UserModel{
		UserEmail:        email,
		UserPasswordHash: string(hash),
		UserFullName:     info.Name,
		UserMetadata: datatypes.JSONMap{
			"full_name":             info.Name,
			"is_external_organizer": true,
			"source_platform":       sourcePlatform,
		},
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// email contact sudah terdaftar → pakai user yang ada
			var again usermodel.UserModel
			if err2 := s.db.WithContext(ctx).
				Where("user_email = ?", email).
				First(&again).Error; err2 == nil {
				return &again, nil
			}
		}
		return nil, err
	}
	return &user, nil
}
