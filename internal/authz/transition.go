package authz

import (
	apperrors "wastetrack/internal/errors"
	"wastetrack/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidateNewAssignment checks the role/team combination for a user being
// created. Admins must not carry a team; employees and managers must. Team
// existence is checked separately by the caller.
func ValidateNewAssignment(role models.Role, teamID *primitive.ObjectID) error {
	if role == models.RoleAdmin && teamID != nil {
		return apperrors.ErrAdminCannotHaveTeam
	}
	if role.In(models.RoleEmployee, models.RoleManager) && teamID == nil {
		return apperrors.ErrTeamRequired
	}
	return nil
}

// ResolveUpdatedAssignment computes the role and team a user update would
// result in, enforcing the transition invariants. Promoting to admin
// silently clears the team; demoting to employee or manager requires that a
// team remains. No other violation is auto-corrected.
func ResolveUpdatedAssignment(current *models.User, newRole *models.Role, teamPatch models.OptionalID) (models.Role, *primitive.ObjectID, error) {
	role := current.Role
	if newRole != nil {
		role = *newRole
	}

	teamID := current.TeamID
	if teamPatch.Set {
		teamID = teamPatch.Value
	}

	if role == models.RoleAdmin {
		return role, nil, nil
	}

	if teamID == nil {
		return role, nil, apperrors.ErrTeamRequired
	}
	return role, teamID, nil
}
