package authz

import (
	apperrors "wastetrack/internal/errors"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResolveTeamScope determines the effective team scope for a request. It is
// the single source of truth for "which team does this request concern" and
// is consulted by every team-scoped read and write.
//
// Admins have no inherent team and must name one explicitly; the requested id
// is returned verbatim without an existence check. Callers verify the team
// exists before using the scope. Non-admins may only request their own team.
func ResolveTeamScope(requested *primitive.ObjectID, p Principal) (primitive.ObjectID, error) {
	if p.IsAdmin() {
		if requested == nil {
			return primitive.NilObjectID, apperrors.ErrAdminTeamRequired
		}
		return *requested, nil
	}

	if requested != nil {
		if p.TeamID == nil || *requested != *p.TeamID {
			return primitive.NilObjectID, apperrors.ErrNotTeamMember
		}
		return *requested, nil
	}

	// Anomalous data state: a non-admin without a team cannot be scoped.
	if p.TeamID == nil {
		return primitive.NilObjectID, apperrors.ErrNoTeamAssigned
	}
	return *p.TeamID, nil
}
