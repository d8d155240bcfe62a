package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/fitness-booking/internal/models"
)

var (
	ErrNotFound         = errors.New("booking not found")
	ErrDuplicate        = errors.New("booking already exists for user and class")
	ErrAlreadyCancelled = errors.New("booking already cancelled")
)

type Repository interface {
	// Create inserts b; the (user, class) unique index is the only
	// duplicate check and surfaces as ErrDuplicate.
	Create(ctx context.Context, b *models.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)

	// ListForUser returns the user's bookings with user and class loaded.
	ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Booking, error)

	// MarkCancelled flips a booked row to cancelled, returning
	// ErrAlreadyCancelled when no booked row matched.
	MarkCancelled(ctx context.Context, id uuid.UUID, at time.Time) (*models.Booking, error)
}
