package dto

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/fitness-booking/internal/models"
)

type UserDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
	}
}

// SessionUserDTO is what the client keeps after login.
type SessionUserDTO struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

type TrainerRequestDTO struct {
	ID             uuid.UUID `json:"id"`
	Username       string    `json:"username"`
	TrainerRequest string    `json:"trainerRequest"`
}

func NewTrainerRequestDTOs(users []models.User) []TrainerRequestDTO {
	out := make([]TrainerRequestDTO, 0, len(users))
	for _, u := range users {
		out = append(out, TrainerRequestDTO{
			ID:             u.ID,
			Username:       u.Username,
			TrainerRequest: u.TrainerRequest,
		})
	}
	return out
}
