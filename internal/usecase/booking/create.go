package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/fitness-booking/internal/audit"
	"github.com/BruksfildServices01/fitness-booking/internal/domain/account"
	domain "github.com/BruksfildServices01/fitness-booking/internal/domain/booking"
	"github.com/BruksfildServices01/fitness-booking/internal/domain/fitnessclass"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/models"
	"github.com/BruksfildServices01/fitness-booking/internal/timezone"
)

type CreateInput struct {
	ClassID     string
	BookingDate string
	BookingTime string
}

type CreateBooking struct {
	bookings domain.Repository
	accounts account.Repository
	classes  fitnessclass.Repository
	loc      *time.Location
	audit    *audit.Dispatcher
}

func NewCreateBooking(
	bookings domain.Repository,
	accounts account.Repository,
	classes fitnessclass.Repository,
	loc *time.Location,
	audit *audit.Dispatcher,
) *CreateBooking {
	return &CreateBooking{
		bookings: bookings,
		accounts: accounts,
		classes:  classes,
		loc:      loc,
		audit:    audit,
	}
}

// Execute books the class once per user. A second booking for the same
// class is refused by the unique index, whatever the first one's status.
func (uc *CreateBooking) Execute(ctx context.Context, userID uuid.UUID, in CreateInput) (*models.Booking, error) {
	if userID == uuid.Nil {
		return nil, httperr.ErrUnauthenticated("unauthorized", "Unauthorized")
	}

	rawClassID := strings.TrimSpace(in.ClassID)
	rawDate := strings.TrimSpace(in.BookingDate)
	clock := strings.TrimSpace(in.BookingTime)
	if rawClassID == "" || rawDate == "" || clock == "" {
		return nil, httperr.ErrValidation("missing_fields", "All fields are required")
	}

	classID, err := uuid.Parse(rawClassID)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_class_id", "Invalid classId")
	}

	date, err := timezone.ParseDate(rawDate, uc.loc)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_booking_date", "Invalid bookingDate")
	}
	if !timezone.ValidClock(clock) {
		return nil, httperr.ErrValidation("invalid_booking_time", "Invalid bookingTime")
	}

	ok, err := uc.accounts.Exists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrNotFound("user_not_found", "User not found")
	}

	ok, err = uc.classes.Exists(ctx, classID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrNotFound("class_not_found", "Class not found")
	}

	b := &models.Booking{
		UserID:      userID,
		ClassID:     classID,
		BookingDate: date,
		BookingTime: clock,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.bookings.Create(ctx, b); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, httperr.ErrConflict("already_booked", "You already booked this class")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  userID,
		Action:   "booking_created",
		Entity:   "booking",
		EntityID: b.ID,
		Metadata: map[string]any{"classId": classID},
	})

	return b, nil
}
