package fitnessclass

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/fitness-booking/internal/audit"
	"github.com/BruksfildServices01/fitness-booking/internal/domain/account"
	domain "github.com/BruksfildServices01/fitness-booking/internal/domain/fitnessclass"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/models"
	"github.com/BruksfildServices01/fitness-booking/internal/upload"
)

type CreateInput struct {
	Fields
	Cover *multipart.FileHeader
}

type CreateClass struct {
	classes  domain.Repository
	accounts account.Repository
	store    upload.Store
	maxBytes int64
	loc      *time.Location
	audit    *audit.Dispatcher
}

func NewCreateClass(
	classes domain.Repository,
	accounts account.Repository,
	store upload.Store,
	maxBytes int64,
	loc *time.Location,
	audit *audit.Dispatcher,
) *CreateClass {
	return &CreateClass{
		classes:  classes,
		accounts: accounts,
		store:    store,
		maxBytes: maxBytes,
		loc:      loc,
		audit:    audit,
	}
}

// Execute checks every field before touching storage, so a rejected
// request never leaves an uploaded object or a row behind.
func (uc *CreateClass) Execute(ctx context.Context, ownerID uuid.UUID, in CreateInput) (*models.FitnessClass, error) {
	if !in.complete() {
		return nil, httperr.ErrValidation("missing_fields", "All fields are required")
	}
	if in.Cover == nil {
		return nil, httperr.ErrValidation("missing_cover", "Cover image is required")
	}

	upd, err := in.toUpdate(uc.loc)
	if err != nil {
		return nil, err
	}

	exists, err := uc.accounts.Exists(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrNotFound("user_not_found", "User not found")
	}

	image, err := storeCover(ctx, uc.store, in.Cover, uc.maxBytes)
	if err != nil {
		return nil, err
	}

	fc := &models.FitnessClass{
		ClassName:   *upd.ClassName,
		TrainerName: *upd.TrainerName,
		Price:       *upd.Price,
		Phone:       *upd.Phone,
		Duration:    *upd.Duration,
		ClassType:   *upd.ClassType,
		Capacity:    *upd.Capacity,
		Description: *upd.Description,
		ClassDate:   *upd.ClassDate,
		Status:      string(*upd.Status),
		Image:       image,
		Location:    *upd.Location,
		CreatedBy:   ownerID,
	}

	if err := uc.classes.Create(ctx, fc); err != nil {
		return nil, err
	}

	// reload so the owner is attached
	created, err := uc.classes.GetByID(ctx, fc.ID)
	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  ownerID,
		Action:   "class_created",
		Entity:   "fitness_class",
		EntityID: fc.ID,
		Metadata: map[string]any{"className": fc.ClassName},
	})

	return created, nil
}
