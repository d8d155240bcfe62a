package fitnessclass

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/fitness-booking/internal/models"
)

var (
	ErrNotFound  = errors.New("fitness class not found")
	ErrDuplicate = errors.New("fitness class violates a unique constraint")
)

type Repository interface {
	Create(ctx context.Context, fc *models.FitnessClass) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.FitnessClass, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Update(ctx context.Context, id uuid.UUID, upd Update) (*models.FitnessClass, error)

	// List returns every class with its owner loaded.
	List(ctx context.Context) ([]models.FitnessClass, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FitnessClass, error)

	// Delete removes the class in a single statement, restricted to
	// ownerID unless ownerID is uuid.Nil.
	Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error
}
