package fitnessclass

import (
	"context"
	"errors"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/fitness-booking/internal/audit"
	domain "github.com/BruksfildServices01/fitness-booking/internal/domain/fitnessclass"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/models"
	"github.com/BruksfildServices01/fitness-booking/internal/upload"
)

type UpdateInput struct {
	Fields
	Cover *multipart.FileHeader
}

type UpdateClass struct {
	classes  domain.Repository
	store    upload.Store
	maxBytes int64
	loc      *time.Location
	audit    *audit.Dispatcher
}

func NewUpdateClass(
	classes domain.Repository,
	store upload.Store,
	maxBytes int64,
	loc *time.Location,
	audit *audit.Dispatcher,
) *UpdateClass {
	return &UpdateClass{
		classes:  classes,
		store:    store,
		maxBytes: maxBytes,
		loc:      loc,
		audit:    audit,
	}
}

func (uc *UpdateClass) Execute(
	ctx context.Context,
	actorID uuid.UUID,
	rawClassID string,
	in UpdateInput,
) (*models.FitnessClass, error) {

	classID, err := uuid.Parse(rawClassID)
	if err != nil {
		return nil, errInvalidClassID()
	}

	upd, err := in.toUpdate(uc.loc)
	if err != nil {
		return nil, err
	}
	if upd.IsEmpty() && in.Cover == nil {
		return nil, httperr.ErrValidation("empty_update", "No data provided for update")
	}

	exists, err := uc.classes.Exists(ctx, classID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errClassNotFound()
	}

	if in.Cover != nil {
		image, err := storeCover(ctx, uc.store, in.Cover, uc.maxBytes)
		if err != nil {
			return nil, err
		}
		upd.Image = &image
	}

	fc, err := uc.classes.Update(ctx, classID, upd)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, errClassNotFound()
		case errors.Is(err, domain.ErrDuplicate):
			return nil, httperr.ErrConflict("class_conflict", "Class conflicts with an existing class")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "class_updated",
		Entity:   "fitness_class",
		EntityID: classID,
		Metadata: upd.Columns(),
	})

	return fc, nil
}
