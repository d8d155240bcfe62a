package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/fitness-booking/internal/dto"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/httpresp"
	"github.com/BruksfildServices01/fitness-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/fitness-booking/internal/usecase/booking"
)

type BookingHandler struct {
	create *ucBooking.CreateBooking
	mine   *ucBooking.ListMyBookings
	cancel *ucBooking.CancelBooking
}

func NewBookingHandler(
	create *ucBooking.CreateBooking,
	mine *ucBooking.ListMyBookings,
	cancel *ucBooking.CancelBooking,
) *BookingHandler {
	return &BookingHandler{
		create: create,
		mine:   mine,
		cancel: cancel,
	}
}

type CreateBookingRequest struct {
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		invalidBody(c)
		return
	}

	b, err := h.create.Execute(c.Request.Context(), middleware.MustClaims(c).UserID, ucBooking.CreateInput{
		ClassID:     c.Param("classId"),
		BookingDate: req.BookingDate,
		BookingTime: req.BookingTime,
	})
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"message": "Booking created successfully",
		"booking": b,
	})
}

func (h *BookingHandler) MyBookings(c *gin.Context) {
	bookings, err := h.mine.Execute(c.Request.Context(), middleware.MustClaims(c).UserID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{"bookings": dto.NewBookingListDTOs(bookings)})
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	claims := middleware.MustClaims(c)

	b, err := h.cancel.Execute(c.Request.Context(), c.Param("id"), claims.UserID, claims.IsAdmin())
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"message": "Booking cancelled successfully",
		"booking": b,
	})
}
