package service

import (
	"context"
	"testing"

	eventmodel "eventku_backend/internals/features/events/events/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSyncEventImagesReplaceAll(t *testing.T) {
	db := newTestDB(t)
	svc := NewSyncService(db)
	ctx := context.Background()
	eventID := uuid.New()

	svc.syncEventImages(ctx, eventID, []string{
		"https://img.example.com/1.jpg",
		"https://img.example.com/2.jpg",
		"https://img.example.com/3.jpg",
	})

	var imgs []eventmodel.EventImageModel
	require.NoError(t, db.Order("event_image_display_order").
		Find(&imgs, "event_image_event_id = ?", eventID).Error)
	require.Len(t, imgs, 3)

	for i, img := range imgs {
		assert.Equal(t, i, img.EventImageDisplayOrder)
		assert.Equal(t, i == 0, img.EventImageIsPrimary)
	}
	assert.Equal(t, "Event image 1", imgs[0].EventImageAltText)
	assert.Equal(t, "https://img.example.com/1.jpg", imgs[0].EventImageURL)

	// Sync ulang dengan daftar lebih pendek: set lama diganti seluruhnya.
	svc.syncEventImages(ctx, eventID, []string{"https://img.example.com/9.jpg"})

	require.NoError(t, db.Order("event_image_display_order").
		Find(&imgs, "event_image_event_id = ?", eventID).Error)
	require.Len(t, imgs, 1)
	assert.Equal(t, "https://img.example.com/9.jpg", imgs[0].EventImageURL)
	assert.True(t, imgs[0].EventImageIsPrimary)
}

func TestSyncEventImagesEmptyListClears(t *testing.T) {
	db := newTestDB(t)
	svc := NewSyncService(db)
	ctx := context.Background()
	eventID := uuid.New()

	svc.syncEventImages(ctx, eventID, []string{"https://img.example.com/1.jpg"})
	svc.syncEventImages(ctx, eventID, nil)

	var n int64
	require.NoError(t, db.Model(&eventmodel.EventImageModel{}).
		Where("event_image_event_id = ?", eventID).Count(&n).Error)
	assert.EqualValues(t, 0, n)
}

func TestSyncEventImagesScopedToEvent(t *testing.T) {
	db := newTestDB(t)
	svc := NewSyncService(db)
	ctx := context.Background()

	evA, evB := uuid.New(), uuid.New()
	svc.syncEventImages(ctx, evA, []string{"https://img.example.com/a.jpg"})
	svc.syncEventImages(ctx, evB, []string{"https://img.example.com/b.jpg"})

	// Replace-all event A tidak menyentuh gambar event B.
	svc.syncEventImages(ctx, evA, []string{"https://img.example.com/a2.jpg"})

	var imgs []eventmodel.EventImageModel
	require.NoError(t, db.Find(&imgs, "event_image_event_id = ?", evB).Error)
	require.Len(t, imgs, 1)
	assert.Equal(t, "https://img.example.com/b.jpg", imgs[0].EventImageURL)
}
