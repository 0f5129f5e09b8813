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

func setupUserRouter(p authz.Principal, userService *mocks.MockUserService, authService *mocks.MockAuthService) *gin.Engine {
	router := gin.New()
	h := NewUserHandler(userService, authService)
	group := router.Group("/users", injectPrincipal(p))
	group.POST("", h.CreateUser)
	group.GET("", h.ListUsers)
	group.GET("/me", h.GetCurrentUser)
	group.GET("/:id", h.GetUser)
	group.PATCH("/:id", h.UpdateUser)
	group.DELETE("/:id", h.DeleteUser)
	group.POST("/:id/invalidate-token", h.InvalidateToken)
	return router
}

func TestUserHandler_CreateUser(t *testing.T) {
	teamID := primitive.NewObjectID()

	t.Run("creates a user", func(t *testing.T) {
		mockUsers := &mocks.MockUserService{
			CreateUserFunc: func(ctx context.Context, p authz.Principal, req *models.CreateUserRequest) (*models.User, error) {
				assert.Equal(t, models.RoleEmployee, req.Role)
				return &models.User{ID: primitive.NewObjectID(), Username: req.Username}, nil
			},
		}
		router := setupUserRouter(adminPrincipal(), mockUsers, &mocks.MockAuthService{})

		w := doRequest(router, http.MethodPost, "/users", jsonBody(t, gin.H{
			"username": "jdoe",
			"email":    "jdoe@example.com",
			"password": "secret123",
			"role":     "employee",
			"teamId":   teamID.Hex(),
		}))

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "jdoe")
	})

	t.Run("maps role/team violations to 400", func(t *testing.T) {
		mockUsers := &mocks.MockUserService{
			CreateUserFunc: func(ctx context.Context, p authz.Principal, req *models.CreateUserRequest) (*models.User, error) {
				return nil, apperrors.ErrAdminCannotHaveTeam
			},
		}
		router := setupUserRouter(adminPrincipal(), mockUsers, &mocks.MockAuthService{})

		w := doRequest(router, http.MethodPost, "/users", jsonBody(t, gin.H{
			"username": "boss",
			"email":    "boss@example.com",
			"password": "secret123",
			"role":     "admin",
			"teamId":   teamID.Hex(),
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps duplicate records to 409", func(t *testing.T) {
		mockUsers := &mocks.MockUserService{
			CreateUserFunc: func(ctx context.Context, p authz.Principal, req *models.CreateUserRequest) (*models.User, error) {
				return nil, apperrors.ErrDuplicateRecord
			},
		}
		router := setupUserRouter(adminPrincipal(), mockUsers, &mocks.MockAuthService{})

		w := doRequest(router, http.MethodPost, "/users", jsonBody(t, gin.H{
			"username": "jdoe",
			"email":    "jdoe@example.com",
			"password": "secret123",
			"role":     "employee",
			"teamId":   teamID.Hex(),
		}))

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("maps forbidden to 403", func(t *testing.T) {
		mockUsers := &mocks.MockUserService{
			CreateUserFunc: func(ctx context.Context, p authz.Principal, req *models.CreateUserRequest) (*models.User, error) {
				return nil, apperrors.ErrForbidden
			},
		}
		router := setupUserRouter(memberPrincipal(models.RoleManager, teamID), mockUsers, &mocks.MockAuthService{})

		w := doRequest(router, http.MethodPost, "/users", jsonBody(t, gin.H{
			"username": "jdoe",
			"email":    "jdoe@example.com",
			"password": "secret123",
			"role":     "employee",
			"teamId":   teamID.Hex(),
		}))

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestUserHandler_GetCurrentUser(t *testing.T) {
	t.Run("returns the principal's own record", func(t *testing.T) {
		p := adminPrincipal()
		mockUsers := &mocks.MockUserService{
			GetUserFunc: func(ctx context.Context, got authz.Principal, id primitive.ObjectID) (*models.User, error) {
				assert.Equal(t, p.ID, id)
				return &models.User{ID: id, Username: "admin"}, nil
			},
		}
		router := setupUserRouter(p, mockUsers, &mocks.MockAuthService{})

		w := doRequest(router, http.MethodGet, "/users/me", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "admin")
	})
}

func TestUserHandler_GetUser(t *testing.T) {
	t.Run("returns a user by id", func(t *testing.T) {
		userID := primitive.NewObjectID()
		mockUsers := &mocks.MockUserService{
			GetUserFunc: func(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.User, error) {
				assert.Equal(t, userID, id)
				return &models.User{ID: id, Username: "jdoe"}, nil
			},
		}
		router := setupUserRouter(adminPrincipal(), mockUsers, &mocks.MockAuthService{})

		w := doRequest(router, http.MethodGet, "/users/"+userID.Hex(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("rejects a malformed id", func(t *testing.T) {
		router := setupUserRouter(adminPrincipal(), &mocks.MockUserService{}, &mocks.MockAuthService{})

		w := doRequest(router, http.MethodGet, "/users/not-an-id", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("maps not found to 404", func(t *testing.T) {
		mockUsers := &mocks.MockUserService{
			GetUserFunc: func(ctx context.Context, p authz.Principal, id primitive.ObjectID) (*models.User, error) {
				return nil, apperrors.ErrUserNotFound
			},
		}
		router := setupUserRouter(adminPrincipal(), mockUsers, &mocks.MockAuthService{})

		w := doRequest(router, http.MethodGet, "/users/"+primitive.NewObjectID().Hex(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestUserHandler_ListUsers(t *testing.T) {
	t.Run("passes pagination through", func(t *testing.T) {
		mockUsers := &mocks.MockUserService{
			ListUsersFunc: func(ctx context.Context, p authz.Principal, page, limit int) (*models.UserListResponse, error) {
				assert.Equal(t, 2, page)
				assert.Equal(t, 5, limit)
				return &models.UserListResponse{
					Items:      []models.User{},
					Pagination: models.NewPagination(page, limit, 0),
				}, nil
			},
		}
		router := setupUserRouter(adminPrincipal(), mockUsers, &mocks.MockAuthService{})

		w := doRequest(router, http.MethodGet, "/users?page=2&limit=5", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("defaults and caps pagination", func(t *testing.T) {
		mockUsers := &mocks.MockUserService{
			ListUsersFunc: func(ctx context.Context, p authz.Principal, page, limit int) (*models.UserListResponse, error) {
				assert.Equal(t, 1, page)
				assert.Equal(t, 100, limit)
				return &models.UserListResponse{}, nil
			},
		}
		router := setupUserRouter(adminPrincipal(), mockUsers, &mocks.MockAuthService{})

		w := doRequest(router, http.MethodGet, "/users?limit=9999", nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestUserHandler_UpdateUser(t *testing.T) {
	t.Run("applies a partial update", func(t *testing.T) {
		userID := primitive.NewObjectID()
		mockUsers := &mocks.MockUserService{
			UpdateUserFunc: func(ctx context.Context, p authz.Principal, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
				assert.Equal(t, userID, id)
				assert.NotNil(t, req.Email)
				return &models.User{ID: id, Email: *req.Email}, nil
			},
		}
		router := setupUserRouter(adminPrincipal(), mockUsers, &mocks.MockAuthService{})

		w := doRequest(router, http.MethodPatch, "/users/"+userID.Hex(), jsonBody(t, gin.H{
			"email": "new@example.com",
		}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "new@example.com")
	})

	t.Run("maps team-required violation to 400", func(t *testing.T) {
		mockUsers := &mocks.MockUserService{
			UpdateUserFunc: func(ctx context.Context, p authz.Principal, id primitive.ObjectID, req *models.UpdateUserRequest) (*models.User, error) {
				return nil, apperrors.ErrTeamRequired
			},
		}
		router := setupUserRouter(adminPrincipal(), mockUsers, &mocks.MockAuthService{})

		w := doRequest(router, http.MethodPatch, "/users/"+primitive.NewObjectID().Hex(), jsonBody(t, gin.H{
			"role": "employee",
		}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestUserHandler_DeleteUser(t *testing.T) {
	t.Run("returns 204 on success", func(t *testing.T) {
		mockUsers := &mocks.MockUserService{
			DeleteUserFunc: func(ctx context.Context, p authz.Principal, id primitive.ObjectID) error {
				return nil
			},
		}
		router := setupUserRouter(adminPrincipal(), mockUsers, &mocks.MockAuthService{})

		w := doRequest(router, http.MethodDelete, "/users/"+primitive.NewObjectID().Hex(), nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestUserHandler_InvalidateToken(t *testing.T) {
	t.Run("admin invalidates any session", func(t *testing.T) {
		userID := primitive.NewObjectID()
		called := false
		mockAuth := &mocks.MockAuthService{
			InvalidateTokenFunc: func(ctx context.Context, id primitive.ObjectID) error {
				called = true
				assert.Equal(t, userID, id)
				return nil
			},
		}
		router := setupUserRouter(adminPrincipal(), &mocks.MockUserService{}, mockAuth)

		w := doRequest(router, http.MethodPost, "/users/"+userID.Hex()+"/invalidate-token", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.True(t, called)
	})

	t.Run("member invalidates their own session", func(t *testing.T) {
		p := memberPrincipal(models.RoleEmployee, primitive.NewObjectID())
		mockAuth := &mocks.MockAuthService{
			InvalidateTokenFunc: func(ctx context.Context, id primitive.ObjectID) error {
				assert.Equal(t, p.ID, id)
				return nil
			},
		}
		router := setupUserRouter(p, &mocks.MockUserService{}, mockAuth)

		w := doRequest(router, http.MethodPost, "/users/"+p.ID.Hex()+"/invalidate-token", nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("member cannot invalidate someone else's session", func(t *testing.T) {
		p := memberPrincipal(models.RoleManager, primitive.NewObjectID())
		mockAuth := &mocks.MockAuthService{
			InvalidateTokenFunc: func(ctx context.Context, id primitive.ObjectID) error {
				t.Fatal("service should not be called")
				return nil
			},
		}
		router := setupUserRouter(p, &mocks.MockUserService{}, mockAuth)

		w := doRequest(router, http.MethodPost, "/users/"+primitive.NewObjectID().Hex()+"/invalidate-token", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
