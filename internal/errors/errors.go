// Package errors provides custom error types for the application.
package errors

import "errors"

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrInvalidToken       = errors.New("could not validate credentials")
	ErrSessionExpired     = errors.New("session expired, please login again")
)

// Authorization errors
var (
	ErrForbidden         = errors.New("you don't have permission to perform this action")
	ErrAdminTeamRequired = errors.New("admins must provide a team_id")
	ErrNotTeamMember     = errors.New("you are not a member of that team")
	ErrNoTeamAssigned    = errors.New("user has no team assigned")
)

// User errors
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrAdminCannotHaveTeam = errors.New("admin users cannot be assigned to a team")
	ErrTeamRequired        = errors.New("employees and managers must be assigned to a team")
)

// Team errors
var (
	ErrTeamNotFound = errors.New("team not found")
	ErrTeamHasUsers = errors.New("cannot delete team with assigned users")
)

// Waste log errors
var (
	ErrWasteLogNotFound = errors.New("waste log not found")
)

// Report errors
var (
	ErrReportNotFound  = errors.New("report not found")
	ErrReportQueueFull = errors.New("report queue is full, please try again later")
)

// Store errors
var (
	ErrDuplicateRecord  = errors.New("a record with these details already exists")
	ErrStoreUnavailable = errors.New("database is temporarily unavailable, please try again later")
)
