package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"eventku_backend/internals/features/events/aggregator/dto"
	"eventku_backend/internals/features/events/events/model"
	helper "eventku_backend/internals/helpers"
	"eventku_backend/internals/helpers/dbtime"

	"gorm.io/gorm"
)

// SyncService merekonsiliasi canonical event hasil adapter terhadap storage.
// Idempoten: run ulang dengan data sama tidak menambah baris
// event/kategori/organizer.
//
// Referensi waktu: SEMUA dekomposisi tanggal (YYYY-MM-DD) dan jam (HH:MM:SS)
// memakai UTC. Jangan pernah campur derivasi lokal dan UTC di satu row.
type SyncService struct {
	db *gorm.DB
}

func NewSyncService(db *gorm.DB) *SyncService {
	return &SyncService{db: db}
}

type SyncResult struct {
	Created int
	Updated int
	Errors  []string
}

// SyncEvents memproses satu batch dari satu sumber, berurutan.
// Kegagalan per-event (lookup/resolver/write) dicatat di Errors dan
// TIDAK menghentikan event berikutnya.
func (s *SyncService) SyncEvents(ctx context.Context, events []dto.CanonicalEvent, sourcePlatform string) SyncResult {
	result := SyncResult{Errors: []string{}}

	log.Printf("[INFO] Sync mulai: %d events dari %s", len(events), sourcePlatform)

	for _, ev := range events {
		created, err := s.reconcileEvent(ctx, ev, sourcePlatform)
		if err != nil {
			msg := fmt.Sprintf("Error syncing event %q: %v", ev.Title, err)
			log.Printf("[ERROR] %s", msg)
			result.Errors = append(result.Errors, msg)
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	log.Printf("[INFO] Sync selesai: %d created, %d updated, %d errors",
		result.Created, result.Updated, len(result.Errors))
	return result
}

// reconcileEvent: find-or-create by natural key (source_platform, source_event_id).
// Return created=true kalau branch insert yang jalan.
func (s *SyncService) reconcileEvent(ctx context.Context, ev dto.CanonicalEvent, sourcePlatform string) (bool, error) {
	// 1) Cek event existing by natural key
	var existing model.EventModel
	found := true
	err := s.db.WithContext(ctx).
		Select("event_id", "event_slug").
		Where("event_source_platform = ? AND event_source_event_id = ?", sourcePlatform, ev.SourceEventID).
		First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, fmt.Errorf("error checking existing event: %w", err)
		}
		found = false
	}

	// 2) Resolver kategori & organizer (find-or-create, idempoten)
	categoryID, err := s.findOrCreateCategory(ctx, ev.Category)
	if err != nil {
		return false, err
	}
	organizerID, err := s.findOrCreateOrganizer(ctx, ev.OrganizerInfo, sourcePlatform)
	if err != nil {
		return false, err
	}

	// 3) Dekomposisi timestamp absolut → kolom DATE + TIME (UTC)
	startUTC := ev.StartTime.UTC()
	endUTC := ev.EndTime.UTC()

	row := model.EventModel{
		EventTitle:           ev.Title,
		EventDescription:     ev.Description,
		EventStartDate:       dbtime.DateOf(startUTC),
		EventEndDate:         dbtime.DateOf(endUTC),
		EventStartTime:       dbtime.From(startUTC),
		EventEndTime:         dbtime.From(endUTC),
		EventLocationName:    ev.Location.Name,
		EventLocationAddress: ev.Location.Address,
		EventCategoryID:      categoryID,
		EventOrganizerID:     organizerID,
		EventStatus:          "published",
		EventCapacity:        ev.Capacity,
		EventFeatured:        false,
		EventSourcePlatform:  sourcePlatform,
		EventSourceEventID:   ev.SourceEventID,
		EventExternalURL:     ev.ExternalURL,
	}
	if row.EventLocationName == "" {
		row.EventLocationName = "TBD"
	}
	if c := ev.Location.Coordinates; c != nil {
		// format point Postgres: (lng,lat)
		point := fmt.Sprintf("(%g,%g)", c.Lng, c.Lat)
		row.EventLocationCoordinates = &point
	}
	row.EventExternalTicketURL = ev.TicketInfo.PurchaseURL

	if found {
		// Slug existing TIDAK pernah diganti saat update, walau judul berubah.
		row.EventSlug = existing.EventSlug
		if err := s.db.WithContext(ctx).
			Model(&model.EventModel{}).
			Where("event_id = ?", existing.EventID).
			Updates(eventUpdateMap(&row)).Error; err != nil {
			return false, fmt.Errorf("error updating event: %w", err)
		}
		log.Printf("[INFO] Updated event: %s", ev.Title)
		s.syncEventImages(ctx, existing.EventID, ev.Images)
		return false, nil
	}

	row.EventSlug = helper.EventSlug(ev.Title, ev.SourceEventID)
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return false, fmt.Errorf("error creating event: %w", err)
	}
	log.Printf("[INFO] Created event: %s", ev.Title)
	s.syncEventImages(ctx, row.EventID, ev.Images)
	return true, nil
}

// eventUpdateMap: map eksplisit supaya zero value (capacity nil, featured false,
// koordinat nil) tetap ikut ter-update, bukan di-skip GORM.
func eventUpdateMap(row *model.EventModel) map[string]any {
	return map[string]any{
		"event_title":                row.EventTitle,
		"event_description":          row.EventDescription,
		"event_start_date":           row.EventStartDate,
		"event_end_date":             row.EventEndDate,
		"event_start_time":           row.EventStartTime,
		"event_end_time":             row.EventEndTime,
		"event_location_name":        row.EventLocationName,
		"event_location_address":     row.EventLocationAddress,
		"event_location_coordinates": row.EventLocationCoordinates,
		"event_category_id":          row.EventCategoryID,
		"event_organizer_id":         row.EventOrganizerID,
		"event_status":               row.EventStatus,
		"event_capacity":             row.EventCapacity,
		"event_external_url":         row.EventExternalURL,
		"event_external_ticket_url":  row.EventExternalTicketURL,
		"event_updated_at":           time.Now().UTC(),
	}
}
