package handler

import (
	"context"
	"net/http"
	"testing"

	"wastetrack/internal/authz"
	apperrors "wastetrack/internal/errors"
	"wastetrack/internal/models"
	"wastetrack/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupTeamRouter(p authz.Principal, teamService *mocks.MockTeamService) *gin.Engine {
	router := gin.New()
	h := NewTeamHandler(teamService)
	group := router.Group("/teams", injectPrincipal(p))
	group.POST("", h.CreateTeam)
	group.GET("", h.ListTeams)
	group.GET("/:id", h.GetTeam)
	group.PATCH("/:id", h.UpdateTeam)
	group.DELETE("/:id", h.DeleteTeam)
	return router
}

func TestTeamHandler_CreateTeam(t *testing.T) {
	t.Run("creates a team", func(t *testing.T) {
		mockTeams := &mocks.MockTeamService{
			CreateTeamFunc: func(ctx context.Context, p authz.Principal, req *models.CreateTeamRequest) (*models.Team, error) {
				return &models.Team{ID: primitive.NewObjectID(), Name: req.Name}, nil
			},
		}
		router := setupTeamRouter(adminPrincipal(), mockTeams)

		w := doRequest(router, http.MethodPost, "/teams", jsonBody(t, gin.H{"name": "North Depot"}))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "North Depot")
	})

	t.Run("rejects a missing name", func(t *testing.T) {
		router := setupTeamRouter(adminPrincipal(), &mocks.MockTeamService{})

		w := doRequest(router, http.MethodPost, "/teams", jsonBody(t, gin.H{}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTeamHandler_ListTeams(t *testing.T) {
	t.Run("returns the visible teams", func(t *testing.T) {
		mockTeams := &mocks.MockTeamService{
			ListTeamsFunc: func(ctx context.Context, p authz.Principal, page, limit int) (*models.TeamListResponse, error) {
				return &models.TeamListResponse{
					Items:      []models.Team{{ID: primitive.NewObjectID(), Name: "North"}},
					Pagination: models.NewPagination(page, limit, 1),
				}, nil
			},
		}
		router := setupTeamRouter(memberPrincipal(models.RoleEmployee, primitive.NewObjectID()), mockTeams)

		w := doRequest(router, http.MethodGet, "/teams", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "North")
	})
}

func TestTeamHandler_GetTeam(t *testing.T) {
	t.Run("maps forbidden to 403", func(t *testing.T) {
		mockTeams := &mocks.MockTeamService{
			GetTeamFunc: func(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.Team, error) {
				return nil, apperrors.ErrForbidden
			},
		}
		router := setupTeamRouter(memberPrincipal(models.RoleEmployee, primitive.NewObjectID()), mockTeams)

		w := doRequest(router, http.MethodGet, "/teams/"+primitive.NewObjectID().Hex(), nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("maps not found to 404", func(t *testing.T) {
		mockTeams := &mocks.MockTeamService{
			GetTeamFunc: func(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.Team, error) {
				return nil, apperrors.ErrTeamNotFound
			},
		}
		router := setupTeamRouter(adminPrincipal(), mockTeams)

		w := doRequest(router, http.MethodGet, "/teams/"+primitive.NewObjectID().Hex(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestTeamHandler_UpdateTeam(t *testing.T) {
	t.Run("renames a team", func(t *testing.T) {
		teamID := primitive.NewObjectID()
		mockTeams := &mocks.MockTeamService{
			UpdateTeamFunc: func(ctx context.Context, p authz.Principal, id primitive.ObjectID, req *models.UpdateTeamRequest) (*models.Team, error) {
				assert.Equal(t, teamID, id)
				return &models.Team{ID: id, Name: *req.Name}, nil
			},
		}
		router := setupTeamRouter(adminPrincipal(), mockTeams)

		w := doRequest(router, http.MethodPatch, "/teams/"+teamID.Hex(), jsonBody(t, gin.H{"name": "Renamed"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Renamed")
	})
}

func TestTeamHandler_DeleteTeam(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		mockTeams := &mocks.MockTeamService{
			DeleteTeamFunc: func(ctx context.Context, p authz.Principal, id primitive.ObjectID) error {
				return nil
			},
		}
		router := setupTeamRouter(adminPrincipal(), mockTeams)

		w := doRequest(router, http.MethodDelete, "/teams/"+primitive.NewObjectID().Hex(), nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("maps team-has-users to 400", func(t *testing.T) {
		mockTeams := &mocks.MockTeamService{
			DeleteTeamFunc: func(ctx context.Context, p authz.Principal, id primitive.ObjectID) error {
				return apperrors.ErrTeamHasUsers
			},
		}
		router := setupTeamRouter(adminPrincipal(), mockTeams)

		w := doRequest(router, http.MethodDelete, "/teams/"+primitive.NewObjectID().Hex(), nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), apperrors.ErrTeamHasUsers.Error())
	})
}
