// Package fixtures provides test data builders for unit and integration tests.
package fixtures

import (
	"fmt"
	"time"

	"wastetrack/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ===== User Fixtures =====

// UserBuilder provides fluent API for building test users.
type UserBuilder struct {
	user models.User
}

// NewUser creates a new UserBuilder with sensible defaults: an active
// employee with no team and no stored session token. The password hash is
// left empty; seed helpers fill it in from a plain password.
func NewUser() *UserBuilder {
	suffix := primitive.NewObjectID().Hex()[:8]
	return &UserBuilder{
		user: models.User{
			ID:        primitive.NewObjectID(),
			Username:  fmt.Sprintf("user_%s", suffix),
			Email:     fmt.Sprintf("user-%s@example.com", suffix),
			FullName:  "Test User",
			Role:      models.RoleEmployee,
			IsActive:  true,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *UserBuilder) WithID(id primitive.ObjectID) *UserBuilder {
	b.user.ID = id
	return b
}

func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.user.Username = username
	return b
}

func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.user.Email = email
	return b
}

func (b *UserBuilder) WithHashedPassword(hash string) *UserBuilder {
	b.user.HashedPassword = hash
	return b
}

func (b *UserBuilder) WithRole(role models.Role) *UserBuilder {
	b.user.Role = role
	return b
}

func (b *UserBuilder) WithTeamID(teamID primitive.ObjectID) *UserBuilder {
	b.user.TeamID = &teamID
	return b
}

func (b *UserBuilder) AsEmployee() *UserBuilder {
	b.user.Role = models.RoleEmployee
	return b
}

func (b *UserBuilder) AsManager() *UserBuilder {
	b.user.Role = models.RoleManager
	return b
}

// AsAdmin sets the admin role and clears any team assignment, since admins
// never belong to a team.
func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.user.Role = models.RoleAdmin
	b.user.TeamID = nil
	return b
}

func (b *UserBuilder) Inactive() *UserBuilder {
	b.user.IsActive = false
	return b
}

func (b *UserBuilder) WithAuthToken(token string) *UserBuilder {
	b.user.AuthToken = token
	return b
}

func (b *UserBuilder) Build() models.User {
	return b.user
}

func (b *UserBuilder) BuildPtr() *models.User {
	return &b.user
}

// ===== Team Fixtures =====

// TeamBuilder provides fluent API for building test teams.
type TeamBuilder struct {
	team models.Team
}

// NewTeam creates a new TeamBuilder with sensible defaults.
func NewTeam() *TeamBuilder {
	return &TeamBuilder{
		team: models.Team{
			ID:        primitive.NewObjectID(),
			Name:      fmt.Sprintf("Test Team %s", primitive.NewObjectID().Hex()[:8]),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *TeamBuilder) WithID(id primitive.ObjectID) *TeamBuilder {
	b.team.ID = id
	return b
}

func (b *TeamBuilder) WithName(name string) *TeamBuilder {
	b.team.Name = name
	return b
}

func (b *TeamBuilder) Build() models.Team {
	return b.team
}

func (b *TeamBuilder) BuildPtr() *models.Team {
	return &b.team
}

// ===== WasteLog Fixtures =====

// WasteLogBuilder provides fluent API for building test waste logs.
type WasteLogBuilder struct {
	log models.WasteLog
}

// NewWasteLog creates a new WasteLogBuilder with sensible defaults.
func NewWasteLog() *WasteLogBuilder {
	return &WasteLogBuilder{
		log: models.WasteLog{
			ID:          primitive.NewObjectID(),
			WasteType:   models.WastePlastic,
			WeightKg:    12.5,
			Description: "Packaging from the loading dock",
			TeamID:      primitive.NewObjectID(),
			CreatedByID: primitive.NewObjectID(),
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}
}

func (b *WasteLogBuilder) WithID(id primitive.ObjectID) *WasteLogBuilder {
	b.log.ID = id
	return b
}

func (b *WasteLogBuilder) WithWasteType(wt models.WasteType) *WasteLogBuilder {
	b.log.WasteType = wt
	return b
}

func (b *WasteLogBuilder) WithWeightKg(weight float64) *WasteLogBuilder {
	b.log.WeightKg = weight
	return b
}

func (b *WasteLogBuilder) WithDescription(desc string) *WasteLogBuilder {
	b.log.Description = desc
	return b
}

func (b *WasteLogBuilder) WithTeamID(teamID primitive.ObjectID) *WasteLogBuilder {
	b.log.TeamID = teamID
	return b
}

func (b *WasteLogBuilder) WithCreatedByID(userID primitive.ObjectID) *WasteLogBuilder {
	b.log.CreatedByID = userID
	return b
}

func (b *WasteLogBuilder) WithCreatedAt(ts time.Time) *WasteLogBuilder {
	b.log.CreatedAt = ts
	return b
}

func (b *WasteLogBuilder) Build() models.WasteLog {
	return b.log
}

func (b *WasteLogBuilder) BuildPtr() *models.WasteLog {
	return &b.log
}

// ===== Report Fixtures =====

// ReportBuilder provides fluent API for building test reports.
type ReportBuilder struct {
	report models.Report
}

// NewReport creates a new ReportBuilder with sensible defaults.
func NewReport() *ReportBuilder {
	return &ReportBuilder{
		report: models.Report{
			ID:          primitive.NewObjectID(),
			TeamID:      primitive.NewObjectID(),
			RequestedBy: primitive.NewObjectID(),
			Status:      models.ReportPending,
			CreatedAt:   time.Now(),
			UpdatedAt:   time.Now(),
		},
	}
}

func (b *ReportBuilder) WithID(id primitive.ObjectID) *ReportBuilder {
	b.report.ID = id
	return b
}

func (b *ReportBuilder) WithTeamID(teamID primitive.ObjectID) *ReportBuilder {
	b.report.TeamID = teamID
	return b
}

func (b *ReportBuilder) WithRequestedBy(userID primitive.ObjectID) *ReportBuilder {
	b.report.RequestedBy = userID
	return b
}

func (b *ReportBuilder) WithStatus(status models.ReportStatus) *ReportBuilder {
	b.report.Status = status
	return b
}

func (b *ReportBuilder) Ready(fileKey string, entryCount int) *ReportBuilder {
	b.report.Status = models.ReportReady
	b.report.FileKey = fileKey
	b.report.EntryCount = entryCount
	return b
}

func (b *ReportBuilder) Failed() *ReportBuilder {
	b.report.Status = models.ReportFailed
	return b
}

func (b *ReportBuilder) Build() models.Report {
	return b.report
}

func (b *ReportBuilder) BuildPtr() *models.Report {
	return &b.report
}
