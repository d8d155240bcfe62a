package permission

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/fitness-booking/internal/auth"
	"github.com/BruksfildServices01/fitness-booking/internal/domain/account"
)

func claimsFor(role account.Role) *auth.Claims {
	return &auth.Claims{UserID: uuid.New(), Username: string(role), Role: role}
}

func TestOwnerOrAdmin(t *testing.T) {
	user := claimsFor(account.RoleUser)
	admin := claimsFor(account.RoleAdmin)

	assert.True(t, OwnerOrAdmin(user, user.UserID))
	assert.False(t, OwnerOrAdmin(user, uuid.New()))
	assert.True(t, OwnerOrAdmin(admin, uuid.New()))
	assert.False(t, OwnerOrAdmin(nil, uuid.New()))
}

func TestResourceOwnerOrAdmin(t *testing.T) {
	trainer := claimsFor(account.RoleTrainer)
	other := claimsFor(account.RoleTrainer)
	admin := claimsFor(account.RoleAdmin)

	assert.True(t, ResourceOwnerOrAdmin(trainer, trainer.UserID))
	assert.False(t, ResourceOwnerOrAdmin(other, trainer.UserID))
	assert.False(t, ResourceOwnerOrAdmin(trainer, uuid.Nil))
	assert.True(t, ResourceOwnerOrAdmin(admin, trainer.UserID))
}

func TestRoleRules(t *testing.T) {
	tests := []struct {
		name string
		rule Rule
		want map[account.Role]bool
	}{
		{"admin only", AdminOnly, map[account.Role]bool{account.RoleUser: false, account.RoleTrainer: false, account.RoleAdmin: true}},
		{"trainer or admin", TrainerOrAdmin, map[account.Role]bool{account.RoleUser: false, account.RoleTrainer: true, account.RoleAdmin: true}},
		{"user or admin", UserOrAdmin, map[account.Role]bool{account.RoleUser: true, account.RoleTrainer: false, account.RoleAdmin: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for role, want := range tt.want {
				assert.Equal(t, want, tt.rule(claimsFor(role)), role)
			}
			assert.False(t, tt.rule(nil))
		})
	}
}
