package repository

import (
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Sameer222006/flatfinder/internal/model"
)

// newTestDB opens a private in-memory sqlite database migrated with the
// full schema. The database name carries the test name so parallel tests
// never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	if err := db.AutoMigrate(
		&model.User{},
		&model.Property{},
		&model.PropertyImage{},
		&model.Amenity{},
		&model.PropertyAmenity{},
		&model.Favorite{},
		&model.Message{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
