//go:build api

package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"wastetrack/internal/models"
	"wastetrack/pkg/auth"
	"wastetrack/test/fixtures"
	"wastetrack/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultPassword is the plain password seeded users log in with.
const DefaultPassword = "password123"

// AuthHelper provides authentication helpers for API tests.
type AuthHelper struct {
	server *TestServer
}

// NewAuthHelper creates a new auth helper.
func NewAuthHelper(server *TestServer) *AuthHelper {
	return &AuthHelper{server: server}
}

// SeedUser hashes the given password and inserts the user directly into the
// database (bypasses the API, which requires an admin session).
func (ah *AuthHelper) SeedUser(t *testing.T, user *models.User, password string) *models.User {
	t.Helper()
	ctx := context.Background()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err, "failed to hash password")
	user.HashedPassword = hash

	err = ah.server.UserRepo.Create(ctx, user)
	require.NoError(t, err, "failed to seed user")

	return user
}

// Login logs in a user and returns the response data containing the token.
func (ah *AuthHelper) Login(t *testing.T, username, password string) map[string]interface{} {
	t.Helper()

	req := models.LoginRequest{
		Username: username,
		Password: password,
	}

	w := testutil.MakeRequest(t, ah.server.Router, http.MethodPost, "/api/v1/auth/login", req)
	require.Equal(t, http.StatusOK, w.Code, "login should return 200, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "login response should be successful")
	require.NotNil(t, resp.Data)

	return resp.Data
}

// GetAccessToken logs in and returns just the access token.
func (ah *AuthHelper) GetAccessToken(t *testing.T, username, password string) string {
	t.Helper()

	data := ah.Login(t, username, password)
	token, ok := data["accessToken"].(string)
	require.True(t, ok, "accessToken should be a string")

	return token
}

// SeedAuthenticatedUser seeds a user with the default password and logs them
// in, returning the user and a valid session token.
func (ah *AuthHelper) SeedAuthenticatedUser(t *testing.T, user *models.User) (*models.User, string) {
	t.Helper()

	ah.SeedUser(t, user, DefaultPassword)
	token := ah.GetAccessToken(t, user.Username, DefaultPassword)

	return user, token
}

// SeedAdmin seeds an authenticated admin.
func (ah *AuthHelper) SeedAdmin(t *testing.T) (*models.User, string) {
	t.Helper()
	return ah.SeedAuthenticatedUser(t, fixtures.NewUser().AsAdmin().BuildPtr())
}

// SeedManager seeds an authenticated manager on the given team.
func (ah *AuthHelper) SeedManager(t *testing.T, teamID primitive.ObjectID) (*models.User, string) {
	t.Helper()
	return ah.SeedAuthenticatedUser(t, fixtures.NewUser().AsManager().WithTeamID(teamID).BuildPtr())
}

// SeedEmployee seeds an authenticated employee on the given team.
func (ah *AuthHelper) SeedEmployee(t *testing.T, teamID primitive.ObjectID) (*models.User, string) {
	t.Helper()
	return ah.SeedAuthenticatedUser(t, fixtures.NewUser().AsEmployee().WithTeamID(teamID).BuildPtr())
}

// TeamHelper provides team-related helpers for API tests.
type TeamHelper struct {
	server *TestServer
}

// NewTeamHelper creates a new team helper.
func NewTeamHelper(server *TestServer) *TeamHelper {
	return &TeamHelper{server: server}
}

// SeedTeam directly inserts a team into the database (bypasses API).
func (th *TeamHelper) SeedTeam(t *testing.T, team *models.Team) *models.Team {
	t.Helper()

	err := th.server.TeamRepo.Create(context.Background(), team)
	require.NoError(t, err, "failed to seed team")

	return team
}

// WasteLogHelper provides waste log helpers for API tests.
type WasteLogHelper struct {
	server *TestServer
}

// NewWasteLogHelper creates a new waste log helper.
func NewWasteLogHelper(server *TestServer) *WasteLogHelper {
	return &WasteLogHelper{server: server}
}

// CreateWasteLog creates a waste log via the API and returns the response data.
func (wh *WasteLogHelper) CreateWasteLog(t *testing.T, token string, wasteType models.WasteType, weightKg float64) map[string]interface{} {
	t.Helper()

	req := models.CreateWasteLogRequest{
		WasteType: wasteType,
		WeightKg:  weightKg,
	}

	w := testutil.MakeAuthRequest(t, wh.server.Router, http.MethodPost, "/api/v1/waste-logs", token, req)
	require.Equal(t, http.StatusCreated, w.Code, "create waste log should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "create waste log response should be successful")
	require.NotNil(t, resp.Data)

	return resp.Data
}

// SeedWasteLog directly inserts a waste log into the database (bypasses API).
func (wh *WasteLogHelper) SeedWasteLog(t *testing.T, log *models.WasteLog) *models.WasteLog {
	t.Helper()

	err := wh.server.WasteLogRepo.Create(context.Background(), log)
	require.NoError(t, err, "failed to seed waste log")

	return log
}

// ReportHelper provides report helpers for API tests.
type ReportHelper struct {
	server *TestServer
}

// NewReportHelper creates a new report helper.
func NewReportHelper(server *TestServer) *ReportHelper {
	return &ReportHelper{server: server}
}

// SeedReport inserts a report directly into MongoDB rather than through the
// repository, whose Create always starts reports in pending state. Direct
// insertion gives tests full control over status and file key.
func (rh *ReportHelper) SeedReport(t *testing.T, report *models.Report) *models.Report {
	t.Helper()

	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}

	collection := rh.server.MongoDB.Database.Collection("reports")
	_, err := collection.InsertOne(context.Background(), report)
	require.NoError(t, err, "failed to seed report")

	return report
}

// UploadReportFile puts a CSV object into the test bucket so presigned
// downloads of a seeded ready report resolve to real content.
func (rh *ReportHelper) UploadReportFile(t *testing.T, key, content string) {
	t.Helper()

	err := rh.server.MinIO.PutObject(context.Background(), key, []byte(content))
	require.NoError(t, err, "failed to upload report file")
}

// ParseResponseData is a generic helper to parse response data into a specific type.
func ParseResponseData[T any](t *testing.T, data map[string]interface{}) T {
	t.Helper()

	jsonBytes, err := json.Marshal(data)
	require.NoError(t, err, "failed to marshal response data")

	var result T
	err = json.Unmarshal(jsonBytes, &result)
	require.NoError(t, err, "failed to unmarshal response data")

	return result
}

// GetIDFromResponse extracts the ID from response data.
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	if id, ok := data["id"].(string); ok {
		return id
	}

	// Nested user object, for login responses
	if user, ok := data["user"].(map[string]interface{}); ok {
		if id, ok := user["id"].(string); ok {
			return id
		}
	}

	t.Fatal("id should be a string in response data (checked: id, user.id)")
	return ""
}

// GetObjectIDFromResponse extracts and parses the ID as ObjectID.
func GetObjectIDFromResponse(t *testing.T, data map[string]interface{}) primitive.ObjectID {
	t.Helper()

	oid, err := primitive.ObjectIDFromHex(GetIDFromResponse(t, data))
	require.NoError(t, err, "failed to parse ObjectID")

	return oid
}
