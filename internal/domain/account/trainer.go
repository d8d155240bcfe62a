package account

import (
	"github.com/BruksfildServices01/fitness-booking/internal/httperr"
	"github.com/BruksfildServices01/fitness-booking/internal/models"
)

// RequestTrainer moves a user into the pending state.
func RequestTrainer(u *models.User) error {
	if Role(u.Role) == RoleAdmin {
		return httperr.ErrValidation("already_admin", "Admins cannot request the trainer role")
	}
	if Role(u.Role) == RoleTrainer {
		return httperr.ErrValidation("already_trainer", "Already a trainer")
	}
	if TrainerRequest(u.TrainerRequest) == TrainerRequestPending {
		return httperr.ErrValidation("request_pending", "Request already pending")
	}

	u.TrainerRequest = string(TrainerRequestPending)
	return nil
}

// ApproveTrainer promotes a pending requester to trainer.
func ApproveTrainer(u *models.User) error {
	switch TrainerRequest(u.TrainerRequest) {
	case TrainerRequestApproved:
		return httperr.ErrValidation("already_approved", "User has already been approved")
	case TrainerRequestPending:
	default:
		return httperr.ErrValidation("no_pending_request", "User has no pending trainer request")
	}

	u.Role = string(RoleTrainer)
	u.TrainerRequest = string(TrainerRequestApproved)
	return nil
}

// RejectTrainer closes a pending request without changing the role.
func RejectTrainer(u *models.User) error {
	if TrainerRequest(u.TrainerRequest) != TrainerRequestPending {
		return httperr.ErrValidation("no_pending_request", "User has no pending trainer request")
	}

	u.TrainerRequest = string(TrainerRequestRejected)
	return nil
}
