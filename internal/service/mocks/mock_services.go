// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"wastetrack/internal/authz"
	"wastetrack/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	LoginFunc           func(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error)
	ValidateSessionFunc func(ctx context.Context, token string) (authz.Principal, error)
	InvalidateTokenFunc func(ctx context.Context, userID primitive.ObjectID) error
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) ValidateSession(ctx context.Context, token string) (authz.Principal, error) {
	if m.ValidateSessionFunc != nil {
		return m.ValidateSessionFunc(ctx, token)
	}
	return authz.Principal{}, nil
}

func (m *MockAuthService) InvalidateToken(ctx context.Context, userID primitive.ObjectID) error {
	if m.InvalidateTokenFunc != nil {
		return m.InvalidateTokenFunc(ctx, userID)
	}
	return nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	CreateUserFunc func(ctx context.Context, p authz.Principal, req *models.CreateUserRequest) (*models.User, error)
	GetUserFunc    func(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.User, error)
	ListUsersFunc  func(ctx context.Context, p authz.Principal, page, limit int) (*models.UserListResponse, error)
	UpdateUserFunc func(ctx context.Context, p authz.Principal, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUserFunc func(ctx context.Context, p authz.Principal, id primitive.ObjectID) error
}

func (m *MockUserService) CreateUser(ctx context.Context, p authz.Principal, req *models.CreateUserRequest) (*models.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, p, req)
	}
	return nil, nil
}

func (m *MockUserService) GetUser(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, p, id)
	}
	return nil, nil
}

func (m *MockUserService) ListUsers(ctx context.Context, p authz.Principal, page, limit int) (*models.UserListResponse, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx, p, page, limit)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, p authz.Principal, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, p, id, req)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, p authz.Principal, id primitive.ObjectID) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, p, id)
	}
	return nil
}

// MockTeamService is a mock implementation of TeamServicer.
type MockTeamService struct {
	CreateTeamFunc func(ctx context.Context, p authz.Principal, req *models.CreateTeamRequest) (*models.Team, error)
	ListTeamsFunc  func(ctx context.Context, p authz.Principal, page, limit int) (*models.TeamListResponse, error)
	GetTeamFunc    func(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.Team, error)
	UpdateTeamFunc func(ctx context.Context, p authz.Principal, id primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error)
	DeleteTeamFunc func(ctx context.Context, p authz.Principal, id primitive.ObjectID) error
}

func (m *MockTeamService) CreateTeam(ctx context.Context, p authz.Principal, req *models.CreateTeamRequest) (*models.Team, error) {
	if m.CreateTeamFunc != nil {
		return m.CreateTeamFunc(ctx, p, req)
	}
	return nil, nil
}

func (m *MockTeamService) ListTeams(ctx context.Context, p authz.Principal, page, limit int) (*models.TeamListResponse, error) {
	if m.ListTeamsFunc != nil {
		return m.ListTeamsFunc(ctx, p, page, limit)
	}
	return nil, nil
}

func (m *MockTeamService) GetTeam(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.Team, error) {
	if m.GetTeamFunc != nil {
		return m.GetTeamFunc(ctx, p, id)
	}
	return nil, nil
}

func (m *MockTeamService) UpdateTeam(ctx context.Context, p authz.Principal, id primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error) {
	if m.UpdateTeamFunc != nil {
		return m.UpdateTeamFunc(ctx, p, id, req)
	}
	return nil, nil
}

func (m *MockTeamService) DeleteTeam(ctx context.Context, p authz.Principal, id primitive.ObjectID) error {
	if m.DeleteTeamFunc != nil {
		return m.DeleteTeamFunc(ctx, p, id)
	}
	return nil
}

// MockWasteLogService is a mock implementation of WasteLogServicer.
type MockWasteLogService struct {
	CreateWasteLogFunc func(ctx context.Context, p authz.Principal, requestedTeam *primitive.ObjectID, req *models.CreateWasteLogRequest) (*models.WasteLog, error)
	GetWasteLogFunc    func(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.WasteLog, error)
	ListWasteLogsFunc  func(ctx context.Context, p authz.Principal, page, limit int) (*models.WasteLogListResponse, error)
	UpdateWasteLogFunc func(ctx context.Context, p authz.Principal, id primitive.ObjectID, req *models.UpdateWasteLogRequest) (*models.WasteLog, error)
	DeleteWasteLogFunc func(ctx context.Context, p authz.Principal, id primitive.ObjectID) error
}

func (m *MockWasteLogService) CreateWasteLog(ctx context.Context, p authz.Principal, requestedTeam *primitive.ObjectID, req *models.CreateWasteLogRequest) (*models.WasteLog, error) {
	if m.CreateWasteLogFunc != nil {
		return m.CreateWasteLogFunc(ctx, p, requestedTeam, req)
	}
	return nil, nil
}

func (m *MockWasteLogService) GetWasteLog(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.WasteLog, error) {
	if m.GetWasteLogFunc != nil {
		return m.GetWasteLogFunc(ctx, p, id)
	}
	return nil, nil
}

func (m *MockWasteLogService) ListWasteLogs(ctx context.Context, p authz.Principal, page, limit int) (*models.WasteLogListResponse, error) {
	if m.ListWasteLogsFunc != nil {
		return m.ListWasteLogsFunc(ctx, p, page, limit)
	}
	return nil, nil
}

func (m *MockWasteLogService) UpdateWasteLog(ctx context.Context, p authz.Principal, id primitive.ObjectID, req *models.UpdateWasteLogRequest) (*models.WasteLog, error) {
	if m.UpdateWasteLogFunc != nil {
		return m.UpdateWasteLogFunc(ctx, p, id, req)
	}
	return nil, nil
}

func (m *MockWasteLogService) DeleteWasteLog(ctx context.Context, p authz.Principal, id primitive.ObjectID) error {
	if m.DeleteWasteLogFunc != nil {
		return m.DeleteWasteLogFunc(ctx, p, id)
	}
	return nil
}

// MockAnalyticsService is a mock implementation of AnalyticsServicer.
type MockAnalyticsService struct {
	TeamLogsFunc    func(ctx context.Context, p authz.Principal, requestedTeam *primitive.ObjectID, page, limit int) (*models.WasteLogListResponse, error)
	TeamSummaryFunc func(ctx context.Context, p authz.Principal, requestedTeam *primitive.ObjectID) (*models.TeamWasteSummary, error)
}

func (m *MockAnalyticsService) TeamLogs(ctx context.Context, p authz.Principal, requestedTeam *primitive.ObjectID, page, limit int) (*models.WasteLogListResponse, error) {
	if m.TeamLogsFunc != nil {
		return m.TeamLogsFunc(ctx, p, requestedTeam, page, limit)
	}
	return nil, nil
}

func (m *MockAnalyticsService) TeamSummary(ctx context.Context, p authz.Principal, requestedTeam *primitive.ObjectID) (*models.TeamWasteSummary, error) {
	if m.TeamSummaryFunc != nil {
		return m.TeamSummaryFunc(ctx, p, requestedTeam)
	}
	return nil, nil
}

// MockReportService is a mock implementation of ReportServicer.
type MockReportService struct {
	RequestReportFunc func(ctx context.Context, p authz.Principal, requestedTeam *primitive.ObjectID) (*models.Report, error)
	GetReportFunc     func(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.Report, error)
}

func (m *MockReportService) RequestReport(ctx context.Context, p authz.Principal, requestedTeam *primitive.ObjectID) (*models.Report, error) {
	if m.RequestReportFunc != nil {
		return m.RequestReportFunc(ctx, p, requestedTeam)
	}
	return nil, nil
}

func (m *MockReportService) GetReport(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.Report, error) {
	if m.GetReportFunc != nil {
		return m.GetReportFunc(ctx, p, id)
	}
	return nil, nil
}
