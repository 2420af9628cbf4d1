package service

import (
	"context"
	"testing"
	"time"

	"eventku_backend/internals/features/events/aggregator/dto"
	eventmodel "eventku_backend/internals/features/events/events/model"
	usermodel "eventku_backend/internals/features/users/user/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func canonicalFixture() dto.CanonicalEvent {
	capacity := 120
	return dto.CanonicalEvent{
		Title:       "Test Concert",
		Description: "A night of live music",
		// Zona non-UTC disengaja: dekomposisi harus pakai UTC (16:30).
		StartTime: time.Date(2025, 3, 1, 18, 30, 0, 0, time.FixedZone("EET", 2*3600)),
		EndTime:   time.Date(2025, 3, 1, 21, 0, 0, 0, time.FixedZone("EET", 2*3600)),
		Images:    []string{"https://img.example.com/a.jpg", "https://img.example.com/b.jpg"},
		Location: dto.CanonicalLocation{
			Name:        "Blue Note",
			Address:     "131 W 3rd St, New York, NY",
			Coordinates: &dto.Coordinates{Lat: 40.7308, Lng: -74.0007},
		},
		OrganizerInfo: dto.OrganizerInfo{Name: "Blue Note Productions"},
		TicketInfo: dto.TicketInfo{
			PurchaseURL: "https://tickets.example.com/ev1",
			Price:       strPtrT("25 USD"),
			Currency:    strPtrT("USD"),
		},
		SourcePlatform: "Eventbrite",
		SourceEventID:  "ev1",
		Category:       "music",
		Capacity:       &capacity,
		ExternalURL:    strPtrT("https://eventbrite.com/e/ev1"),
	}
}

func TestSyncEventsCreatesEvent(t *testing.T) {
	db := newTestDB(t)
	svc := NewSyncService(db)
	ctx := context.Background()

	res := svc.SyncEvents(ctx, []dto.CanonicalEvent{canonicalFixture()}, "Eventbrite")
	assert.Equal(t, 1, res.Created)
	assert.Equal(t, 0, res.Updated)
	assert.Empty(t, res.Errors)

	var ev eventmodel.EventModel
	require.NoError(t, db.First(&ev, "event_source_event_id = ?", "ev1").Error)

	assert.Equal(t, "Test Concert", ev.EventTitle)
	assert.Equal(t, "test-concert-ev1", ev.EventSlug)
	assert.Equal(t, "published", ev.EventStatus)
	assert.False(t, ev.EventFeatured)
	assert.Equal(t, "Eventbrite", ev.EventSourcePlatform)

	// Dekomposisi UTC: 18:30 EET → 16:30 UTC.
	assert.Equal(t, "2025-03-01", ev.EventStartDate.String())
	assert.Equal(t, "16:30:00", ev.EventStartTime.String())
	assert.Equal(t, "2025-03-01", ev.EventEndDate.String())
	assert.Equal(t, "19:00:00", ev.EventEndTime.String())

	assert.Equal(t, "Blue Note", ev.EventLocationName)
	require.NotNil(t, ev.EventLocationCoordinates)
	assert.Equal(t, "(-74.0007,40.7308)", *ev.EventLocationCoordinates)

	require.NotNil(t, ev.EventCapacity)
	assert.Equal(t, 120, *ev.EventCapacity)
	require.NotNil(t, ev.EventExternalURL)
	assert.Equal(t, "https://eventbrite.com/e/ev1", *ev.EventExternalURL)
	assert.Equal(t, "https://tickets.example.com/ev1", ev.EventExternalTicketURL)

	// Kategori & organizer ikut ter-provision.
	assert.NotEqual(t, "", ev.EventCategoryID.String())
	assert.EqualValues(t, 1, countRows[eventmodel.EventCategoryModel](t, db))
	assert.EqualValues(t, 1, countRows[eventmodel.OrganizerModel](t, db))
	assert.EqualValues(t, 1, countRows[usermodel.UserModel](t, db))
	assert.EqualValues(t, 2, countRows[eventmodel.EventImageModel](t, db))
}

func TestSyncEventsIdempotentRerun(t *testing.T) {
	db := newTestDB(t)
	svc := NewSyncService(db)
	ctx := context.Background()

	batch := []dto.CanonicalEvent{canonicalFixture()}

	res := svc.SyncEvents(ctx, batch, "Eventbrite")
	assert.Equal(t, 1, res.Created)

	// Run kedua dengan data identik: update, tanpa baris baru di tabel manapun.
	res = svc.SyncEvents(ctx, batch, "Eventbrite")
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 1, res.Updated)
	assert.Empty(t, res.Errors)

	assert.EqualValues(t, 1, countRows[eventmodel.EventModel](t, db))
	assert.EqualValues(t, 1, countRows[eventmodel.EventCategoryModel](t, db))
	assert.EqualValues(t, 1, countRows[eventmodel.OrganizerModel](t, db))
	assert.EqualValues(t, 1, countRows[usermodel.UserModel](t, db))
	assert.EqualValues(t, 2, countRows[eventmodel.EventImageModel](t, db))
}

func TestSyncEventsUpdateKeepsSlug(t *testing.T) {
	db := newTestDB(t)
	svc := NewSyncService(db)
	ctx := context.Background()

	svc.SyncEvents(ctx, []dto.CanonicalEvent{canonicalFixture()}, "Eventbrite")

	// Judul berubah + beberapa field menyusut ke zero value.
	changed := canonicalFixture()
	changed.Title = "Test Concert (Rescheduled)"
	changed.Capacity = nil
	changed.Location.Coordinates = nil
	changed.Images = []string{"https://img.example.com/new.jpg"}

	res := svc.SyncEvents(ctx, []dto.CanonicalEvent{changed}, "Eventbrite")
	assert.Equal(t, 1, res.Updated)

	var ev eventmodel.EventModel
	require.NoError(t, db.First(&ev, "event_source_event_id = ?", "ev1").Error)

	assert.Equal(t, "Test Concert (Rescheduled)", ev.EventTitle)
	// Slug TIDAK ikut judul baru.
	assert.Equal(t, "test-concert-ev1", ev.EventSlug)
	// Zero value ikut ter-persist, bukan di-skip.
	assert.Nil(t, ev.EventCapacity)
	assert.Nil(t, ev.EventLocationCoordinates)

	// Replace-all gambar: set lama hilang total.
	var imgs []eventmodel.EventImageModel
	require.NoError(t, db.Order("event_image_display_order").
		Find(&imgs, "event_image_event_id = ?", ev.EventID).Error)
	require.Len(t, imgs, 1)
	assert.Equal(t, "https://img.example.com/new.jpg", imgs[0].EventImageURL)
}

func TestSyncEventsSameIDDifferentPlatform(t *testing.T) {
	db := newTestDB(t)
	svc := NewSyncService(db)
	ctx := context.Background()

	a := canonicalFixture()
	b := canonicalFixture()
	b.SourcePlatform = "Ticketmaster"
	b.Title = "Another Show"

	svc.SyncEvents(ctx, []dto.CanonicalEvent{a}, "Eventbrite")
	res := svc.SyncEvents(ctx, []dto.CanonicalEvent{b}, "Ticketmaster")

	// source_event_id sama tapi platform beda → dua event terpisah.
	assert.Equal(t, 1, res.Created)
	assert.EqualValues(t, 2, countRows[eventmodel.EventModel](t, db))
}

func TestSyncEventsLocationNameFallback(t *testing.T) {
	db := newTestDB(t)
	svc := NewSyncService(db)
	ctx := context.Background()

	ev := canonicalFixture()
	ev.Location.Name = ""

	res := svc.SyncEvents(ctx, []dto.CanonicalEvent{ev}, "Eventbrite")
	require.Equal(t, 1, res.Created)

	var row eventmodel.EventModel
	require.NoError(t, db.First(&row, "event_source_event_id = ?", "ev1").Error)
	assert.Equal(t, "TBD", row.EventLocationName)
}

func TestSyncEventsRecordErrorDoesNotAbortBatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewSyncService(db)

	// Context yang sudah dibatalkan menggagalkan reconcile per event;
	// error tercatat dengan format kontrak, batch tidak panic.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := svc.SyncEvents(ctx, []dto.CanonicalEvent{canonicalFixture()}, "Eventbrite")
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 0, res.Updated)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], `Error syncing event "Test Concert":`)
}
