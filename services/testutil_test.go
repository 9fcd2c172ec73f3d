package services

import (
	"testing"

	"github.com/deividev5/Daily-Diet/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database with the real schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// a second connection would see a different empty :memory: database
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Meal{}))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, name string) *models.User {
	t.Helper()

	user, issued, err := NewSessionService(db).ResolveOrCreate("", name)
	require.NoError(t, err)
	require.True(t, issued)
	return user
}
