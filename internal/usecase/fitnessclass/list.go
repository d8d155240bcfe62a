package fitnessclass

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/fitness-booking/internal/domain/account"
	domain "github.com/BruksfildServices01/fitness-booking/internal/domain/fitnessclass"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/models"
)

type ListClasses struct {
	classes domain.Repository
}

func NewListClasses(classes domain.Repository) *ListClasses {
	return &ListClasses{classes: classes}
}

func (uc *ListClasses) Execute(ctx context.Context) ([]models.FitnessClass, error) {
	return uc.classes.List(ctx)
}

type ListOwnClasses struct {
	classes  domain.Repository
	accounts account.Repository
}

func NewListOwnClasses(classes domain.Repository, accounts account.Repository) *ListOwnClasses {
	return &ListOwnClasses{classes: classes, accounts: accounts}
}

func (uc *ListOwnClasses) Execute(ctx context.Context, callerID uuid.UUID, role account.Role) ([]models.FitnessClass, error) {
	if role != account.RoleTrainer && role != account.RoleAdmin {
		return nil, httperr.ErrForbidden("forbidden", "Access denied")
	}

	exists, err := uc.accounts.Exists(ctx, callerID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, httperr.ErrNotFound("user_not_found", "User not found")
	}

	return uc.classes.ListByOwner(ctx, callerID)
}
