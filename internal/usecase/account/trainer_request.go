package account

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/fitness-booking/internal/audit"
	domain "github.com/BruksfildServices01/fitness-booking/internal/domain/account"
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/models"
)

type RequestTrainer struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewRequestTrainer(repo domain.Repository, audit *audit.Dispatcher) *RequestTrainer {
	return &RequestTrainer{repo: repo, audit: audit}
}

func (uc *RequestTrainer) Execute(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	if userID == uuid.Nil {
		return nil, httperr.ErrUnauthenticated("unauthorized", "Unauthorized")
	}

	user, err := loadUser(ctx, uc.repo, userID)
	if err != nil {
		return nil, err
	}

	if err := domain.RequestTrainer(user); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  userID,
		Action:   "trainer_requested",
		Entity:   "user",
		EntityID: userID,
	})

	return user, nil
}

// ReviewTrainer lets an admin approve or reject a pending request.
type ReviewTrainer struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewReviewTrainer(repo domain.Repository, audit *audit.Dispatcher) *ReviewTrainer {
	return &ReviewTrainer{repo: repo, audit: audit}
}

func (uc *ReviewTrainer) Approve(ctx context.Context, adminID, userID uuid.UUID) (*models.User, error) {
	return uc.review(ctx, adminID, userID, domain.ApproveTrainer, "trainer_approved")
}

func (uc *ReviewTrainer) Reject(ctx context.Context, adminID, userID uuid.UUID) (*models.User, error) {
	return uc.review(ctx, adminID, userID, domain.RejectTrainer, "trainer_rejected")
}

func (uc *ReviewTrainer) review(
	ctx context.Context,
	adminID uuid.UUID,
	userID uuid.UUID,
	transition func(*models.User) error,
	action string,
) (*models.User, error) {

	user, err := loadUser(ctx, uc.repo, userID)
	if err != nil {
		return nil, err
	}

	if err := transition(user); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  adminID,
		Action:   action,
		Entity:   "user",
		EntityID: userID,
	})

	return user, nil
}

type ListTrainerRequests struct {
	repo domain.Repository
}

func NewListTrainerRequests(repo domain.Repository) *ListTrainerRequests {
	return &ListTrainerRequests{repo: repo}
}

// Execute returns users with a pending request. An empty result is a
// not-found error, as API clients expect.
func (uc *ListTrainerRequests) Execute(ctx context.Context) ([]models.User, error) {
	users, err := uc.repo.ListByTrainerRequest(ctx, domain.TrainerRequestPending)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, httperr.ErrNotFound("user_not_found", "User not found")
	}
	return users, nil
}

func loadUser(ctx context.Context, repo domain.Repository, id uuid.UUID) (*models.User, error) {
	user, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrNotFound("user_not_found", "User not found")
		}
		return nil, err
	}
	return user, nil
}
