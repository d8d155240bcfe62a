package account

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/fitness-booking/internal/audit"
	"github.com/BruksfildServices01/fitness-booking/internal/auth"
	domain "github.com/BruksfildServices01/fitness-booking/internal/domain/account"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/models"
	"github.com/BruksfildServices01/fitness-booking/internal/validators"
)

type RegisterInput struct {
	Username string
	Password string
	Email    string
	Phone    string
}

type Register struct {
	repo   domain.Repository
	hasher *auth.PasswordHasher
	audit  *audit.Dispatcher
}

func NewRegister(
	repo domain.Repository,
	hasher *auth.PasswordHasher,
	audit *audit.Dispatcher,
) *Register {
	return &Register{
		repo:   repo,
		hasher: hasher,
		audit:  audit,
	}
}

func (uc *Register) Execute(ctx context.Context, in RegisterInput) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	email := strings.ToLower(strings.TrimSpace(in.Email))
	phone := strings.TrimSpace(in.Phone)

	if username == "" || in.Password == "" || email == "" || phone == "" {
		return nil, httperr.ErrValidation("missing_fields", "All fields are required")
	}
	if !validators.IsStrongPassword(in.Password) {
		return nil, httperr.ErrValidation("weak_password",
			"Password must be at least 6 characters, contain 1 uppercase letter and 1 special character")
	}
	if !validators.IsEmail(email) {
		return nil, httperr.ErrValidation("invalid_email", "Invalid email format")
	}
	if !validators.IsPhone(phone) {
		return nil, httperr.ErrValidation("invalid_phone", "Invalid phone number format")
	}

	taken, err := uc.repo.UsernameTaken(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrConflict("username_taken", "Username already exists")
	}

	taken, err = uc.repo.EmailOrPhoneTaken(ctx, email, phone)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrConflict("email_or_phone_taken", "email or phone number already exists")
	}

	hashed, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:       username,
		Email:          email,
		Phone:          phone,
		PasswordHash:   hashed,
		Role:           string(domain.RoleUser),
		TrainerRequest: string(domain.TrainerRequestNone),
	}

	if err := uc.repo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, errDuplicateAccount()
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  user.ID,
		Action:   "account_registered",
		Entity:   "user",
		EntityID: user.ID,
	})

	return user, nil
}

func errDuplicateAccount() error {
	return httperr.ErrConflict("account_exists", "Username, email, or phone already exists")
}
