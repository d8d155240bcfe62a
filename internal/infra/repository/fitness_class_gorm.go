package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/fitness-booking/internal/domain/fitnessclass"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/models"
)

type FitnessClassGormRepository struct {
	db *gorm.DB
}

func NewFitnessClassGormRepository(db *gorm.DB) *FitnessClassGormRepository {
	return &FitnessClassGormRepository{db: db}
}

func (r *FitnessClassGormRepository) Create(ctx context.Context, fc *models.FitnessClass) error {
	if err := r.db.WithContext(ctx).Create(fc).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return fitnessclass.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *FitnessClassGormRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.FitnessClass, error) {
	var fc models.FitnessClass
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("id = ?", id).
		First(&fc).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fitnessclass.ErrNotFound
		}
		return nil, err
	}
	return &fc, nil
}

func (r *FitnessClassGormRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.FitnessClass{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *FitnessClassGormRepository) Update(
	ctx context.Context,
	id uuid.UUID,
	upd fitnessclass.Update,
) (*models.FitnessClass, error) {

	res := r.db.WithContext(ctx).
		Model(&models.FitnessClass{}).
		Where("id = ?", id).
		Updates(upd.Columns())
	if res.Error != nil {
		if httperr.IsUniqueViolation(res.Error) {
			return nil, fitnessclass.ErrDuplicate
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, fitnessclass.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *FitnessClassGormRepository) List(ctx context.Context) ([]models.FitnessClass, error) {
	var classes []models.FitnessClass
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Order("class_date ASC").
		Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *FitnessClassGormRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]models.FitnessClass, error) {
	var classes []models.FitnessClass
	if err := r.db.WithContext(ctx).
		Preload("Owner").
		Where("created_by = ?", ownerID).
		Order("class_date ASC").
		Find(&classes).Error; err != nil {
		return nil, err
	}
	return classes, nil
}

func (r *FitnessClassGormRepository) Delete(ctx context.Context, id uuid.UUID, ownerID uuid.UUID) error {
	q := r.db.WithContext(ctx).Where("id = ?", id)
	if ownerID != uuid.Nil {
		q = q.Where("created_by = ?", ownerID)
	}

	res := q.Delete(&models.FitnessClass{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fitnessclass.ErrNotFound
	}
	return nil
}

var _ fitnessclass.Repository = (*FitnessClassGormRepository)(nil)
