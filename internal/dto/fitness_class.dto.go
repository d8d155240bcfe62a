package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/fitness-booking/internal/models"
)

type OwnerDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

type FitnessClassDTO struct {
	ID          uuid.UUID `json:"id"`
	ClassName   string    `json:"className"`
	TrainerName string    `json:"trainerName"`
	Price       float64   `json:"price"`
	Phone       string    `json:"phone"`
	Duration    int       `json:"duration"`
	ClassType   string    `json:"classType"`
	Capacity    int       `json:"capacity"`
	Description string    `json:"description"`
	ClassDate   time.Time `json:"classDate"`
	Status      string    `json:"status"`
	Image       string    `json:"image"`
	Location    string    `json:"location"`
	CreatedBy   OwnerDTO  `json:"createdBy"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewFitnessClassDTO expects fc.Owner to be loaded; otherwise only the
// owner id is filled in.
func NewFitnessClassDTO(fc *models.FitnessClass) FitnessClassDTO {
	return FitnessClassDTO{
		ID:          fc.ID,
		ClassName:   fc.ClassName,
		TrainerName: fc.TrainerName,
		Price:       fc.Price,
		Phone:       fc.Phone,
		Duration:    fc.Duration,
		ClassType:   fc.ClassType,
		Capacity:    fc.Capacity,
		Description: fc.Description,
		ClassDate:   fc.ClassDate,
		Status:      fc.Status,
		Image:       fc.Image,
		Location:    fc.Location,
		CreatedBy: OwnerDTO{
			ID:       fc.CreatedBy,
			Username: fc.Owner.Username,
		},
		CreatedAt: fc.CreatedAt,
		UpdatedAt: fc.UpdatedAt,
	}
}

func NewFitnessClassDTOs(classes []models.FitnessClass) []FitnessClassDTO {
	out := make([]FitnessClassDTO, 0, len(classes))
	for i := range classes {
		out = append(out, NewFitnessClassDTO(&classes[i]))
	}
	return out
}
