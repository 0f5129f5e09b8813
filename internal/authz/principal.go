// Package authz implements the authorization and team-scoping rules: who may
// perform which action on which resource, and which team a request concerns.
package authz

import (
	"wastetrack/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Principal is the authenticated actor making a request. It is passed
// explicitly into every decision, there is no ambient "current user".
type Principal struct {
	ID       primitive.ObjectID
	Username string
	Role     models.Role
	TeamID   *primitive.ObjectID // nil for admins
}

// PrincipalFromUser builds a Principal from a stored user record.
func PrincipalFromUser(user *models.User) Principal {
	return Principal{
		ID:       user.ID,
		Username: user.Username,
		Role:     user.Role,
		TeamID:   user.TeamID,
	}
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdmin
}

// OnTeam reports whether the principal is a member of the given team.
// Admins have no team and are never "on" one.
func (p Principal) OnTeam(teamID primitive.ObjectID) bool {
	return p.TeamID != nil && *p.TeamID == teamID
}
