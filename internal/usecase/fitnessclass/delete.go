package fitnessclass

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/fitness-booking/internal/audit"
	domain "github.com/BruksfildServices01/fitness-booking/internal/domain/fitnessclass"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
)

type DeleteClass struct {
	classes domain.Repository
	audit   *audit.Dispatcher
}

func NewDeleteClass(classes domain.Repository, audit *audit.Dispatcher) *DeleteClass {
	return &DeleteClass{classes: classes, audit: audit}
}

// Execute deletes the class; non-admins may only delete their own.
func (uc *DeleteClass) Execute(ctx context.Context, rawClassID string, callerID uuid.UUID, isAdmin bool) error {
	classID, err := uuid.Parse(rawClassID)
	if err != nil {
		return errInvalidClassID()
	}

	if callerID == uuid.Nil && !isAdmin {
		return httperr.ErrUnauthenticated("unauthorized", "Unauthorized")
	}

	owner := callerID
	if isAdmin {
		owner = uuid.Nil
	}

	if err := uc.classes.Delete(ctx, classID, owner); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return httperr.ErrNotFound("class_not_found", "Class not found or not owned by this user")
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  callerID,
		Action:   "class_deleted",
		Entity:   "fitness_class",
		EntityID: classID,
	})

	return nil
}
