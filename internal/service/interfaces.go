// Package service contains business logic for the application.
package service

import (
	"context"

	"wastetrack/internal/authz"
	"wastetrack/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	ValidateSession(ctx context.Context, token string) (authz.Principal, error)
	InvalidateToken(ctx context.Context, userID primitive.ObjectID) error
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	CreateUser(ctx context.Context, p authz.Principal, req *models.CreateUserRequest) (*models.User, error)
	GetUser(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.User, error)
	ListUsers(ctx context.Context, p authz.Principal, page, limit int) (*models.UserListResponse, error)
	UpdateUser(ctx context.Context, p authz.Principal, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, p authz.Principal, id primitive.ObjectID) error
}

// TeamServicer defines the interface for team operations.
type TeamServicer interface {
	CreateTeam(ctx context.Context, p authz.Principal, req *models.CreateTeamRequest) (*models.Team, error)
	ListTeams(ctx context.Context, p authz.Principal, page, limit int) (*models.TeamListResponse, error)
	GetTeam(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.Team, error)
	UpdateTeam(ctx context.Context, p authz.Principal, id primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error)
	DeleteTeam(ctx context.Context, p authz.Principal, id primitive.ObjectID) error
}

// WasteLogServicer defines the interface for waste log operations.
type WasteLogServicer interface {
	CreateWasteLog(ctx context.Context, p authz.Principal, requestedTeam *primitive.ObjectID, req *models.CreateWasteLogRequest) (*models.WasteLog, error)
	GetWasteLog(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.WasteLog, error)
	ListWasteLogs(ctx context.Context, p authz.Principal, page, limit int) (*models.WasteLogListResponse, error)
	UpdateWasteLog(ctx context.Context, p authz.Principal, id primitive.ObjectID, req *models.UpdateWasteLogRequest) (*models.WasteLog, error)
	DeleteWasteLog(ctx context.Context, p authz.Principal, id primitive.ObjectID) error
}

// AnalyticsServicer defines the interface for team analytics operations.
type AnalyticsServicer interface {
	TeamLogs(ctx context.Context, p authz.Principal, requestedTeam *primitive.ObjectID, page, limit int) (*models.WasteLogListResponse, error)
	TeamSummary(ctx context.Context, p authz.Principal, requestedTeam *primitive.ObjectID) (*models.TeamWasteSummary, error)
}

// ReportServicer defines the interface for report export operations.
type ReportServicer interface {
	RequestReport(ctx context.Context, p authz.Principal, requestedTeam *primitive.ObjectID) (*models.Report, error)
	GetReport(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.Report, error)
}

// Ensure concrete types implement interfaces
var (
	_ AuthServicer      = (*AuthService)(nil)
	_ UserServicer      = (*UserService)(nil)
	_ TeamServicer      = (*TeamService)(nil)
	_ WasteLogServicer  = (*WasteLogService)(nil)
	_ AnalyticsServicer = (*AnalyticsService)(nil)
	_ ReportServicer    = (*ReportService)(nil)
)
