package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/fitness-booking/internal/audit"
	domain "github.com/BruksfildServices01/fitness-booking/internal/domain/booking"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/models"
)

type CancelBooking struct {
	bookings domain.Repository
	audit    *audit.Dispatcher
	now      func() time.Time
}

func NewCancelBooking(bookings domain.Repository, audit *audit.Dispatcher) *CancelBooking {
	return &CancelBooking{
		bookings: bookings,
		audit:    audit,
		now:      time.Now,
	}
}

func (uc *CancelBooking) Execute(
	ctx context.Context,
	rawBookingID string,
	callerID uuid.UUID,
	isAdmin bool,
) (*models.Booking, error) {

	bookingID, err := uuid.Parse(rawBookingID)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_booking_id", "Invalid bookingId")
	}

	b, err := uc.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errBookingNotFound()
		}
		return nil, err
	}

	if !isAdmin && b.UserID != callerID {
		return nil, httperr.ErrForbidden("forbidden", "Access denied")
	}

	if err := domain.CanCancel(domain.Status(b.Status)); err != nil {
		return nil, err
	}

	cancelled, err := uc.bookings.MarkCancelled(ctx, bookingID, uc.now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAlreadyCancelled):
			// lost a race with another cancel
			return nil, domain.CanCancel(domain.StatusCancelled)
		case errors.Is(err, domain.ErrNotFound):
			return nil, errBookingNotFound()
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  callerID,
		Action:   "booking_cancelled",
		Entity:   "booking",
		EntityID: bookingID,
	})

	return cancelled, nil
}

func errBookingNotFound() error {
	return httperr.ErrNotFound("booking_not_found", "Booking not found")
}
