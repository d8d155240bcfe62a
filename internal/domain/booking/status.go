package booking

import "github.com/BruksfildServices01/fitness-booking/internal/httperr"

type Status string

const (
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
)

// CanCancel rejects cancelling a booking twice.
func CanCancel(current Status) error {
	if current != StatusBooked {
		return httperr.ErrValidation("already_cancelled", "Booking already cancelled")
	}
	return nil
}

func InitialStatus() Status {
	return StatusBooked
}
