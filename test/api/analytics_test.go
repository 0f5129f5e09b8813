//go:build api

package api

import (
	"net/http"
	"testing"

	"wastetrack/internal/models"
	"wastetrack/test/api/testserver"
	"wastetrack/test/fixtures"
	"wastetrack/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestTeamLogs tests the GET /api/v1/analytics/team-logs endpoint.
func TestTeamLogs(t *testing.T) {
	auth := testserver.NewAuthHelper(testServer)
	teams := testserver.NewTeamHelper(testServer)
	logs := testserver.NewWasteLogHelper(testServer)

	t.Run("success - manager lists their own team's entries", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		team := teams.SeedTeam(t, fixtures.NewTeam().BuildPtr())
		otherTeam := teams.SeedTeam(t, fixtures.NewTeam().BuildPtr())
		_, managerToken := auth.SeedManager(t, team.ID)

		logs.SeedWasteLog(t, fixtures.NewWasteLog().WithTeamID(team.ID).BuildPtr())
		logs.SeedWasteLog(t, fixtures.NewWasteLog().WithTeamID(team.ID).BuildPtr())
		logs.SeedWasteLog(t, fixtures.NewWasteLog().WithTeamID(otherTeam.ID).BuildPtr())

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/analytics/team-logs", managerToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		items, ok := resp.Data["items"].([]interface{})
		require.True(t, ok)
		assert.Len(t, items, 2)

		for _, item := range items {
			entry, ok := item.(map[string]interface{})
			require.True(t, ok)
			assert.Equal(t, team.ID.Hex(), entry["teamId"])
		}
	})

	t.Run("success - admin names a team explicitly", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		_, adminToken := auth.SeedAdmin(t)
		team := teams.SeedTeam(t, fixtures.NewTeam().BuildPtr())
		logs.SeedWasteLog(t, fixtures.NewWasteLog().WithTeamID(team.ID).BuildPtr())

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/analytics/team-logs?teamId="+team.ID.Hex(), adminToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		items, ok := resp.Data["items"].([]interface{})
		require.True(t, ok)
		assert.Len(t, items, 1)
	})

	t.Run("error - admin without an explicit team", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		_, adminToken := auth.SeedAdmin(t)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/analytics/team-logs", adminToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - admin naming a nonexistent team", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		_, adminToken := auth.SeedAdmin(t)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/analytics/team-logs?teamId="+primitive.NewObjectID().Hex(), adminToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("error - manager naming another team", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		team := teams.SeedTeam(t, fixtures.NewTeam().BuildPtr())
		otherTeam := teams.SeedTeam(t, fixtures.NewTeam().BuildPtr())
		_, managerToken := auth.SeedManager(t, team.ID)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/analytics/team-logs?teamId="+otherTeam.ID.Hex(), managerToken, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("error - employee may not use analytics", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		team := teams.SeedTeam(t, fixtures.NewTeam().BuildPtr())
		_, token := auth.SeedEmployee(t, team.ID)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/analytics/team-logs", token, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

// TestTeamSummary tests the GET /api/v1/analytics/team-summary endpoint.
func TestTeamSummary(t *testing.T) {
	auth := testserver.NewAuthHelper(testServer)
	teams := testserver.NewTeamHelper(testServer)
	logs := testserver.NewWasteLogHelper(testServer)

	t.Run("success - aggregates the team's entries", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		team := teams.SeedTeam(t, fixtures.NewTeam().BuildPtr())
		_, managerToken := auth.SeedManager(t, team.ID)

		logs.SeedWasteLog(t, fixtures.NewWasteLog().
			WithTeamID(team.ID).WithWasteType(models.WastePlastic).WithWeightKg(10).BuildPtr())
		logs.SeedWasteLog(t, fixtures.NewWasteLog().
			WithTeamID(team.ID).WithWasteType(models.WastePlastic).WithWeightKg(2.5).BuildPtr())
		logs.SeedWasteLog(t, fixtures.NewWasteLog().
			WithTeamID(team.ID).WithWasteType(models.WasteGlass).WithWeightKg(4).BuildPtr())

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/analytics/team-summary", managerToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, float64(3), resp.Data["totalEntries"])
		assert.Equal(t, 16.5, resp.Data["totalWasteKg"])

		byType, ok := resp.Data["wasteByType"].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, 12.5, byType["plastic"])
		assert.Equal(t, float64(4), byType["glass"])
		// Every known type is present, zero-filled
		assert.Len(t, byType, len(models.WasteTypes))
		assert.Equal(t, float64(0), byType["electronic"])

		recent, ok := resp.Data["recentEntries"].([]interface{})
		require.True(t, ok)
		assert.Len(t, recent, 3)
	})

	t.Run("success - empty team yields a zero summary", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		team := teams.SeedTeam(t, fixtures.NewTeam().BuildPtr())
		_, managerToken := auth.SeedManager(t, team.ID)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/analytics/team-summary", managerToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, float64(0), resp.Data["totalEntries"])
		assert.Equal(t, float64(0), resp.Data["totalWasteKg"])

		byType, ok := resp.Data["wasteByType"].(map[string]interface{})
		require.True(t, ok)
		assert.Len(t, byType, len(models.WasteTypes))
	})

	t.Run("success - recent entries cap at ten", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		team := teams.SeedTeam(t, fixtures.NewTeam().BuildPtr())
		_, managerToken := auth.SeedManager(t, team.ID)

		for i := 0; i < 12; i++ {
			logs.SeedWasteLog(t, fixtures.NewWasteLog().WithTeamID(team.ID).BuildPtr())
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/analytics/team-summary", managerToken, nil)

		assert.Equal(t, http.StatusOK, w.Code)

		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, float64(12), resp.Data["totalEntries"])

		recent, ok := resp.Data["recentEntries"].([]interface{})
		require.True(t, ok)
		assert.Len(t, recent, 10)
	})

	t.Run("error - admin naming a nonexistent team", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		_, adminToken := auth.SeedAdmin(t)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/analytics/team-summary?teamId="+primitive.NewObjectID().Hex(), adminToken, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("error - employee may not read summaries", func(t *testing.T) {
		testServer.CleanupBetweenTests(t)

		team := teams.SeedTeam(t, fixtures.NewTeam().BuildPtr())
		_, token := auth.SeedEmployee(t, team.ID)

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodGet, "/api/v1/analytics/team-summary", token, nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
