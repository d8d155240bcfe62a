package account

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/fitness-booking/internal/audit"
	domain "github.com/BruksfildServices01/fitness-booking/internal/domain/account"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/models"
	"github.com/BruksfildServices01/fitness-booking/internal/validators"
)

type UpdateProfile struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateProfile(repo domain.Repository, audit *audit.Dispatcher) *UpdateProfile {
	return &UpdateProfile{repo: repo, audit: audit}
}

// Execute applies the non-empty fields of upd. Blank strings count as absent.
func (uc *UpdateProfile) Execute(
	ctx context.Context,
	actorID uuid.UUID,
	userID uuid.UUID,
	upd domain.ProfileUpdate,
) (*models.User, error) {

	upd = normalizeProfile(upd)
	if upd.IsEmpty() {
		return nil, httperr.ErrValidation("empty_update", "No data provided for update")
	}
	if upd.Email != nil && !validators.IsEmail(*upd.Email) {
		return nil, httperr.ErrValidation("invalid_email", "Invalid email format")
	}
	if upd.Phone != nil && !validators.IsPhone(*upd.Phone) {
		return nil, httperr.ErrValidation("invalid_phone", "Invalid phone number format")
	}

	user, err := uc.repo.UpdateProfile(ctx, userID, upd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, httperr.ErrNotFound("user_not_found", "User not found")
		case errors.Is(err, domain.ErrDuplicate):
			return nil, errDuplicateAccount()
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "profile_updated",
		Entity:   "user",
		EntityID: user.ID,
		Metadata: upd.Columns(),
	})

	return user, nil
}

func normalizeProfile(upd domain.ProfileUpdate) domain.ProfileUpdate {
	trim := func(s *string, lower bool) *string {
		if s == nil {
			return nil
		}
		v := strings.TrimSpace(*s)
		if v == "" {
			return nil
		}
		if lower {
			v = strings.ToLower(v)
		}
		return &v
	}

	return domain.ProfileUpdate{
		Username: trim(upd.Username, false),
		Email:    trim(upd.Email, true),
		Phone:    trim(upd.Phone, false),
	}
}
