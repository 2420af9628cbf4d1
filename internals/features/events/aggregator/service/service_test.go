package service

import (
	"fmt"
	"testing"

	eventmodel "eventku_backend/internals/features/events/events/model"
	usermodel "eventku_backend/internals/features/users/user/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB: sqlite in-memory per test. DSN unik + cache=shared +
// MaxOpenConns(1) supaya semua koneksi pool melihat database yang sama.
// TranslateError wajib nyala: resolver bergantung pada gorm.ErrDuplicatedKey.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&usermodel.UserModel{},
		&eventmodel.EventCategoryModel{},
		&eventmodel.OrganizerModel{},
		&eventmodel.EventModel{},
		&eventmodel.EventImageModel{},
	))
	return db
}

func countRows[T any](t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var model T
	var n int64
	require.NoError(t, db.Model(&model).Count(&n).Error)
	return n
}
