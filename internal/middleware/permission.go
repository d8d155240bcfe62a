package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/fitness-booking/internal/domain/booking"
	"github.com/BruksfildServices01/fitness-booking/internal/domain/fitnessclass"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/permission"
)

func errForbidden() error {
	return httperr.ErrForbidden("forbidden", "Access denied")
}

// RequireRole lets the request through when rule accepts the caller.
func RequireRole(rule permission.Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, _ := ClaimsFrom(c)
		if !rule(claims) {
			httperr.Abort(c, errForbidden())
			return
		}
		c.Next()
	}
}

// SelfOrAdmin guards routes whose param names an account id.
func SelfOrAdmin(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID, err := uuid.Parse(c.Param(param))
		if err != nil {
			httperr.Abort(c, httperr.ErrValidation("invalid_user_id", "Invalid userId"))
			return
		}

		claims, _ := ClaimsFrom(c)
		if !permission.OwnerOrAdmin(claims, targetID) {
			httperr.Abort(c, errForbidden())
			return
		}
		c.Next()
	}
}

// OwnerLookup resolves a resource id to the account that owns it.
type OwnerLookup func(ctx context.Context, id uuid.UUID) (uuid.UUID, error)

// ResourceOwnerOrAdmin loads the resource named by param and lets admins
// and its owner through. Admins still get a 404 for a missing resource.
func ResourceOwnerOrAdmin(param string, invalid error, lookup OwnerLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param(param))
		if err != nil {
			httperr.Abort(c, invalid)
			return
		}

		ownerID, err := lookup(c.Request.Context(), id)
		if err != nil {
			httperr.Abort(c, err)
			return
		}

		claims, _ := ClaimsFrom(c)
		if !permission.ResourceOwnerOrAdmin(claims, ownerID) {
			httperr.Abort(c, errForbidden())
			return
		}
		c.Next()
	}
}

func ClassOwnerOrAdmin(classes fitnessclass.Repository) gin.HandlerFunc {
	return ResourceOwnerOrAdmin(
		"id",
		httperr.ErrValidation("invalid_class_id", "Invalid classId"),
		func(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
			fc, err := classes.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, fitnessclass.ErrNotFound) {
					return uuid.Nil, httperr.ErrNotFound("class_not_found", "Class not found")
				}
				return uuid.Nil, err
			}
			return fc.CreatedBy, nil
		},
	)
}

func BookingOwnerOrAdmin(bookings booking.Repository) gin.HandlerFunc {
	return ResourceOwnerOrAdmin(
		"id",
		httperr.ErrValidation("invalid_booking_id", "Invalid bookingId"),
		func(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
			b, err := bookings.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, booking.ErrNotFound) {
					return uuid.Nil, httperr.ErrNotFound("booking_not_found", "Booking not found")
				}
				return uuid.Nil, err
			}
			return b.UserID, nil
		},
	)
}
