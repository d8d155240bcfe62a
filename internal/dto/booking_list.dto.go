package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/fitness-booking/internal/models"
)

type BookingListDTO struct {
	ID          uuid.UUID  `json:"id"`
	UserID      uuid.UUID  `json:"userId"`
	Username    string     `json:"username"`
	ClassID     uuid.UUID  `json:"classId"`
	ClassName   string     `json:"className"`
	ClassDate   time.Time  `json:"classDate"`
	BookingDate time.Time  `json:"bookingDate"`
	BookingTime string     `json:"bookingTime"`
	Status      string     `json:"status"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func NewBookingListDTOs(bookings []models.Booking) []BookingListDTO {
	out := make([]BookingListDTO, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, BookingListDTO{
			ID:          b.ID,
			UserID:      b.UserID,
			Username:    b.User.Username,
			ClassID:     b.ClassID,
			ClassName:   b.Class.ClassName,
			ClassDate:   b.Class.ClassDate,
			BookingDate: b.BookingDate,
			BookingTime: b.BookingTime,
			Status:      b.Status,
			CancelledAt: b.CancelledAt,
			CreatedAt:   b.CreatedAt,
		})
	}
	return out
}
