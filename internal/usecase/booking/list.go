package booking

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/fitness-booking/internal/domain/booking"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/models"
)

type ListMyBookings struct {
	bookings domain.Repository
}

func NewListMyBookings(bookings domain.Repository) *ListMyBookings {
	return &ListMyBookings{bookings: bookings}
}

func (uc *ListMyBookings) Execute(ctx context.Context, userID uuid.UUID) ([]models.Booking, error) {
	if userID == uuid.Nil {
		return nil, httperr.ErrUnauthenticated("unauthorized", "Unauthorized")
	}
	return uc.bookings.ListForUser(ctx, userID)
}
