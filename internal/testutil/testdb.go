// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	dbpkg "github.com/BruksfildServices01/fitness-booking/internal/db"
	"github.com/BruksfildServices01/fitness-booking/internal/models"
)

// NewDB opens a migrated in-memory SQLite database private to t.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// every connection to :memory: is a new database
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	// sqlite leaves foreign keys off unless asked, per connection
	if err := db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	if err := dbpkg.Migrate(db); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	return db
}

// CreateUser inserts an account with a throwaway password hash.
func CreateUser(t *testing.T, db *gorm.DB, username, role string) *models.User {
	t.Helper()

	u := &models.User{
		Username:       username,
		Email:          username + "@example.com",
		Phone:          randomPhone(),
		PasswordHash:   "not-a-real-hash",
		Role:           role,
		TrainerRequest: "none",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return u
}

func randomPhone() string {
	digits := []byte("08")
	for _, b := range uuid.New() {
		if len(digits) == 10 {
			break
		}
		digits = append(digits, '0'+b%10)
	}
	return string(digits)
}
