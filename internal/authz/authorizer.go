package authz

import (
	apperrors "wastetrack/internal/errors"
	"wastetrack/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Action constants define the authorization actions.
const (
	ActionTeamCreate = "team:create"
	ActionTeamUpdate = "team:update"
	ActionTeamDelete = "team:delete"

	ActionUserCreate = "user:create"
	ActionUserUpdate = "user:update"
	ActionUserDelete = "user:delete"
	ActionUserList   = "user:list"

	ActionLogCreate  = "log:create"
	ActionLogListAll = "log:list_all"
	ActionLogUpdate  = "log:update"
	ActionLogDelete  = "log:delete"

	ActionTeamLogs     = "analytics:team_logs"
	ActionTeamSummary  = "analytics:team_summary"
	ActionReportCreate = "report:create"
)

// rolePermissions maps role-gated actions to the roles that can perform
// them. Ownership-sensitive checks (single team, single log, single user)
// live in the Can* helpers below.
var rolePermissions = map[string][]models.Role{
	ActionTeamCreate: {models.RoleAdmin},
	ActionTeamUpdate: {models.RoleAdmin},
	ActionTeamDelete: {models.RoleAdmin},

	ActionUserCreate: {models.RoleAdmin},
	ActionUserUpdate: {models.RoleAdmin},
	ActionUserDelete: {models.RoleAdmin},
	ActionUserList:   {models.RoleAdmin},

	ActionLogCreate:  {models.RoleEmployee, models.RoleManager, models.RoleAdmin},
	ActionLogListAll: {models.RoleAdmin},
	ActionLogUpdate:  {models.RoleAdmin},
	ActionLogDelete:  {models.RoleAdmin},

	ActionTeamLogs:     {models.RoleManager, models.RoleAdmin},
	ActionTeamSummary:  {models.RoleManager, models.RoleAdmin},
	ActionReportCreate: {models.RoleManager, models.RoleAdmin},
}

// CanPerform checks whether the principal's role permits an action. Unknown
// actions are denied.
func CanPerform(p Principal, action string) bool {
	allowed, exists := rolePermissions[action]
	if !exists {
		return false
	}
	return p.Role.In(allowed...)
}

// Require returns ErrForbidden unless the principal's role permits the
// action.
func Require(p Principal, action string) error {
	if !CanPerform(p, action) {
		return apperrors.ErrForbidden
	}
	return nil
}

// CanViewTeam checks single-team read access: admins see any team, everyone
// else only their own.
func CanViewTeam(p Principal, teamID primitive.ObjectID) bool {
	if p.IsAdmin() {
		return true
	}
	return p.OnTeam(teamID)
}

// CanViewWasteLog checks single-log read access. The chain short-circuits:
// admin, then same-team manager, then author; anything else is denied.
func CanViewWasteLog(p Principal, log *models.WasteLog) bool {
	if p.IsAdmin() {
		return true
	}
	if p.Role == models.RoleManager && p.OnTeam(log.TeamID) {
		return true
	}
	return p.ID == log.CreatedByID
}

// CanViewUser checks single-user read access: admins read anyone, everyone
// else only their own record.
func CanViewUser(p Principal, userID primitive.ObjectID) bool {
	return p.IsAdmin() || p.ID == userID
}
