package account

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/fitness-booking/internal/models"
)

var (
	ErrNotFound  = errors.New("account not found")
	ErrDuplicate = errors.New("account already exists")
)

// ProfileUpdate carries the profile fields a caller wants changed.
type ProfileUpdate struct {
	Username *string
	Email    *string
	Phone    *string
}

func (u ProfileUpdate) IsEmpty() bool {
	return u.Username == nil && u.Email == nil && u.Phone == nil
}

func (u ProfileUpdate) Columns() map[string]any {
	cols := map[string]any{}
	if u.Username != nil {
		cols["username"] = *u.Username
	}
	if u.Email != nil {
		cols["email"] = *u.Email
	}
	if u.Phone != nil {
		cols["phone"] = *u.Phone
	}
	return cols
}

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailOrPhoneTaken(ctx context.Context, email, phone string) (bool, error)

	UpdateProfile(ctx context.Context, id uuid.UUID, upd ProfileUpdate) (*models.User, error)
	Save(ctx context.Context, u *models.User) error

	ListByTrainerRequest(ctx context.Context, status TrainerRequest) ([]models.User, error)
}
