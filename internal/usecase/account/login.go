package account

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/fitness-booking/internal/auth"
	domain "github.com/BruksfildServices01/fitness-booking/internal/domain/account"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/models"
)

type LoginResult struct {
	User        *models.User
	AccessToken string
}

type Login struct {
	repo   domain.Repository
	hasher *auth.PasswordHasher
	tokens *auth.TokenIssuer
}

func NewLogin(
	repo domain.Repository,
	hasher *auth.PasswordHasher,
	tokens *auth.TokenIssuer,
) *Login {
	return &Login{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

func (uc *Login) Execute(ctx context.Context, username, password string) (*LoginResult, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, httperr.ErrValidation("missing_fields", "All fields are required")
	}

	user, err := uc.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrNotFound("user_not_found", "User not found")
		}
		return nil, err
	}

	if !uc.hasher.Verify(user.PasswordHash, password) {
		return nil, httperr.ErrUnauthenticated("invalid_password", "Invalid password")
	}

	token, err := uc.tokens.Issue(user.ID, user.Username, domain.Role(user.Role))
	if err != nil {
		return nil, err
	}

	return &LoginResult{User: user, AccessToken: token}, nil
}
