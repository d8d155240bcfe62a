// Package permission holds the access rules of the API as side-effect free
// predicates over token claims.
package permission

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/fitness-booking/internal/auth"
	"github.com/BruksfildServices01/fitness-booking/internal/domain/account"
)

// Rule decides whether the caller may pass a role gate.
type Rule func(claims *auth.Claims) bool

// OwnerOrAdmin allows the account identified by targetID and admins.
func OwnerOrAdmin(claims *auth.Claims, targetID uuid.UUID) bool {
	if claims == nil {
		return false
	}
	return claims.IsAdmin() || claims.UserID == targetID
}

// ResourceOwnerOrAdmin allows admins, otherwise the account recorded as the
// resource owner.
func ResourceOwnerOrAdmin(claims *auth.Claims, ownerID uuid.UUID) bool {
	if claims == nil {
		return false
	}
	if claims.IsAdmin() {
		return true
	}
	return ownerID != uuid.Nil && claims.UserID == ownerID
}

func HasRole(claims *auth.Claims, roles ...account.Role) bool {
	if claims == nil {
		return false
	}
	for _, r := range roles {
		if claims.Role == r {
			return true
		}
	}
	return false
}

func AdminOnly(claims *auth.Claims) bool {
	return HasRole(claims, account.RoleAdmin)
}

func TrainerOrAdmin(claims *auth.Claims) bool {
	return HasRole(claims, account.RoleTrainer, account.RoleAdmin)
}

func UserOrAdmin(claims *auth.Claims) bool {
	return HasRole(claims, account.RoleUser, account.RoleAdmin)
}
