package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/fitness-booking/internal/domain/account"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) Create(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return account.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *AccountGormRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, translateAccountErr(err)
	}
	return &u, nil
}

func (r *AccountGormRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, translateAccountErr(err)
	}
	return &u, nil
}

func (r *AccountGormRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	return r.exists(ctx, "id = ?", id)
}

func (r *AccountGormRepository) UsernameTaken(ctx context.Context, username string) (bool, error) {
	return r.exists(ctx, "username = ?", username)
}

func (r *AccountGormRepository) EmailOrPhoneTaken(ctx context.Context, email, phone string) (bool, error) {
	return r.exists(ctx, "email = ? OR phone = ?", email, phone)
}

func (r *AccountGormRepository) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where(query, args...).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AccountGormRepository) UpdateProfile(
	ctx context.Context,
	id uuid.UUID,
	upd account.ProfileUpdate,
) (*models.User, error) {

	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Updates(upd.Columns())
	if res.Error != nil {
		if httperr.IsUniqueViolation(res.Error) {
			return nil, account.ErrDuplicate
		}
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, account.ErrNotFound
	}

	return r.GetByID(ctx, id)
}

func (r *AccountGormRepository) Save(ctx context.Context, u *models.User) error {
	if err := r.db.WithContext(ctx).Save(u).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return account.ErrDuplicate
		}
		return err
	}
	return nil
}

func (r *AccountGormRepository) ListByTrainerRequest(
	ctx context.Context,
	status account.TrainerRequest,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Where("trainer_request = ?", string(status)).
		Order("updated_at ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func translateAccountErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return account.ErrNotFound
	}
	return err
}

var _ account.Repository = (*AccountGormRepository)(nil)
