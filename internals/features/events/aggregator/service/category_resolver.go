package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"eventku_backend/internals/features/events/events/model"
	helper "eventku_backend/internals/helpers"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// categoryMapping: banyak label mentah collapse ke satu nama kanonik
// (case-insensitive); label yang tidak terdaftar lolos apa adanya.
var categoryMapping = map[string]string{
	// Music & Entertainment
	"music":           "Music",
	"concerts":        "Music",
	"entertainment":   "Entertainment",
	"comedy":          "Entertainment",
	"theater":         "Entertainment",
	"performing-arts": "Entertainment",

	// Arts & Culture
	"arts":        "Arts & Culture",
	"culture":     "Arts & Culture",
	"museums":     "Arts & Culture",
	"galleries":   "Arts & Culture",
	"exhibitions": "Arts & Culture",

	// Sports & Fitness
	"sports":  "Sports",
	"fitness": "Sports",
	"running": "Sports",
	"cycling": "Sports",
	"yoga":    "Sports",

	// Business & Professional
	"business":     "Business",
	"networking":   "Business",
	"professional": "Business",
	"conference":   "Business",
	"workshop":     "Business",

	// Technology
	"technology":  "Technology",
	"tech":        "Technology",
	"coding":      "Technology",
	"programming": "Technology",

	// Food & Drink
	"food":        "Food & Drink",
	"drinks":      "Food & Drink",
	"restaurants": "Food & Drink",
	"cooking":     "Food & Drink",

	// Default fallback
	"other":         "Other",
	"miscellaneous": "Other",
}

// NormalizeCategoryName menerapkan tabel mapping statis di atas.
func NormalizeCategoryName(rawLabel string) string {
	if mapped, ok := categoryMapping[strings.ToLower(strings.TrimSpace(rawLabel))]; ok {
		return mapped
	}
	return rawLabel
}

// findOrCreateCategory: lookup case-insensitive by nama ternormalisasi;
// tidak ada → insert dengan slug deterministik + atribut presentasi default.
// Lookup-then-insert sendirian TIDAK menjamin unik — unique index di DB yang
// jadi penjaga terakhir; konflik insert diartikan "sudah ada, fetch ulang".
func (s *SyncService) findOrCreateCategory(ctx context.Context, rawLabel string) (uuid.UUID, error) {
	name := NormalizeCategoryName(rawLabel)
	if strings.TrimSpace(name) == "" {
		name = "Other"
	}

	var existing model.EventCategoryModel
	err := s.db.WithContext(ctx).
		Where("LOWER(event_category_name) = LOWER(?)", name).
		First(&existing).Error
	if err == nil {
		return existing.EventCategoryID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, fmt.Errorf("error finding category: %w", err)
	}

	cat := model.EventCategoryModel{
		EventCategoryName:        name,
		EventCategorySlug:        helper.Slugify(name, 100),
		EventCategoryDescription: fmt.Sprintf("Auto-generated category for %s events", name),
		EventCategoryIcon:        "📅",
		EventCategoryColor:       "#6b7280",
	}
	if err := s.db.WithContext(ctx).Create(&cat).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// race / run sebelumnya sudah bikin → ambil yang ada
			var again model.EventCategoryModel
			if err2 := s.db.WithContext(ctx).
				Where("LOWER(event_category_name) = LOWER(?)", name).
				First(&again).Error; err2 == nil {
				return again.EventCategoryID, nil
			}
		}
		return uuid.Nil, fmt.Errorf("error creating category: %w", err)
	}
	return cat.EventCategoryID, nil
}
