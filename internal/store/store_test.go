package store

import (
	"path/filepath"
	"testing"

	"todolist/internal/models"
	"todolist/internal/util"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a throwaway sqlite database for one test.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Todo{}, &models.Session{}); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func newTestUserStore(t *testing.T) *UserStore {
	t.Helper()
	return NewUserStore(newTestDB(t), util.NewPasswordHasher(4))
}

// mustRegister creates a user and returns its id.
func mustRegister(t *testing.T, s *UserStore, username, email string) uint {
	t.Helper()
	id, err := s.Register(username, email, "password1")
	if err != nil {
		t.Fatalf("Register(%q, %q) error = %v", username, email, err)
	}
	return id
}
