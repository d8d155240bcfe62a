package account

// Role is the closed set of account roles carried in tokens.
type Role string

const (
	RoleUser    Role = "user"
	RoleTrainer Role = "trainer"
	RoleAdmin   Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleTrainer, RoleAdmin:
		return true
	}
	return false
}

func (r Role) IsAdmin() bool { return r == RoleAdmin }

// TrainerRequest tracks a user's request to be promoted to trainer.
type TrainerRequest string

const (
	TrainerRequestNone     TrainerRequest = "none"
	TrainerRequestPending  TrainerRequest = "pending"
	TrainerRequestApproved TrainerRequest = "approved"
	TrainerRequestRejected TrainerRequest = "rejected"
)
