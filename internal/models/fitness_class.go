package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FitnessClass struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	ClassName   string    `gorm:"size:120;not null" json:"className"`
	TrainerName string    `gorm:"size:100;not null" json:"trainerName"`
	Price       float64   `gorm:"not null" json:"price"`
	Phone       string    `gorm:"size:20;not null" json:"phone"`
	Duration    int       `gorm:"not null" json:"duration"`
	ClassType   string    `gorm:"size:50;not null" json:"classType"`
	Capacity    int       `gorm:"not null" json:"capacity"`
	Description string    `gorm:"type:text;not null" json:"description"`
	ClassDate   time.Time `gorm:"not null" json:"classDate"`
	Status      string    `gorm:"size:20;default:'active';not null" json:"status"`
	Image       string    `gorm:"size:500;not null" json:"image"`
	Location    string    `gorm:"size:255;not null" json:"location"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null;index" json:"createdBy"`
	Owner     User      `gorm:"foreignKey:CreatedBy;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (f *FitnessClass) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
