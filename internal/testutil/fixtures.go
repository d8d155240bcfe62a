package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/fitness-booking/internal/models"
)

// CreateClass inserts an active class owned by ownerID.
func CreateClass(t *testing.T, db *gorm.DB, ownerID uuid.UUID, name string) *models.FitnessClass {
	t.Helper()

	fc := &models.FitnessClass{
		ClassName:   name,
		TrainerName: "Coach",
		Price:       500,
		Phone:       "0812345678",
		Duration:    60,
		ClassType:   "yoga",
		Capacity:    20,
		Description: "A relaxing class for all levels.",
		ClassDate:   time.Date(2026, 12, 1, 10, 0, 0, 0, time.UTC),
		Status:      "active",
		Image:       "https://cdn.example.com/uploads/cover.png",
		Location:    "Bangkok",
		CreatedBy:   ownerID,
	}
	if err := db.Create(fc).Error; err != nil {
		t.Fatalf("failed to create class %s: %v", name, err)
	}
	return fc
}
