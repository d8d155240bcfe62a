package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Booking rows are unique per (user, class) whatever their status.
type Booking struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_bookings_user_class" json:"userId"`
	User   User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	ClassID uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_bookings_user_class" json:"classId"`
	Class   FitnessClass `gorm:"foreignKey:ClassID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	BookingDate time.Time `gorm:"not null" json:"bookingDate"`
	BookingTime string    `gorm:"size:5;not null" json:"bookingTime"`
	Status      string    `gorm:"size:20;default:'booked';not null" json:"status"`

	CancelledAt *time.Time `json:"cancelledAt"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
