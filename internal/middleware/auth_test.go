package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"wastetrack/internal/authz"
	apperrors "wastetrack/internal/errors"
	"wastetrack/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubSessionValidator struct {
	ValidateSessionFunc func(ctx context.Context, token string) (authz.Principal, error)
}

func (s *stubSessionValidator) ValidateSession(ctx context.Context, token string) (authz.Principal, error) {
	return s.ValidateSessionFunc(ctx, token)
}

func setupAuthRouter(sessions SessionValidator) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Auth(sessions), func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"username": principal.Username})
	})
	return router
}

func TestAuth(t *testing.T) {
	principal := authz.Principal{
		ID:       primitive.NewObjectID(),
		Username: "jdoe",
		Role:     models.RoleEmployee,
	}

	t.Run("passes a valid session through", func(t *testing.T) {
		sessions := &stubSessionValidator{
			ValidateSessionFunc: func(ctx context.Context, token string) (authz.Principal, error) {
				assert.Equal(t, "good-token", token)
				return principal, nil
			},
		}
		router := setupAuthRouter(sessions)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "jdoe")
	})

	t.Run("rejects a missing header", func(t *testing.T) {
		sessions := &stubSessionValidator{
			ValidateSessionFunc: func(ctx context.Context, token string) (authz.Principal, error) {
				t.Fatal("validator should not be called")
				return authz.Principal{}, nil
			},
		}
		router := setupAuthRouter(sessions)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a malformed header", func(t *testing.T) {
		sessions := &stubSessionValidator{
			ValidateSessionFunc: func(ctx context.Context, token string) (authz.Principal, error) {
				t.Fatal("validator should not be called")
				return authz.Principal{}, nil
			},
		}
		router := setupAuthRouter(sessions)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		sessions := &stubSessionValidator{
			ValidateSessionFunc: func(ctx context.Context, token string) (authz.Principal, error) {
				return authz.Principal{}, apperrors.ErrInvalidToken
			},
		}
		router := setupAuthRouter(sessions)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), apperrors.ErrInvalidToken.Error())
	})

	t.Run("reports an expired session distinctly", func(t *testing.T) {
		sessions := &stubSessionValidator{
			ValidateSessionFunc: func(ctx context.Context, token string) (authz.Principal, error) {
				return authz.Principal{}, apperrors.ErrSessionExpired
			},
		}
		router := setupAuthRouter(sessions)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), apperrors.ErrSessionExpired.Error())
	})

	t.Run("surfaces a store outage as 503", func(t *testing.T) {
		sessions := &stubSessionValidator{
			ValidateSessionFunc: func(ctx context.Context, token string) (authz.Principal, error) {
				return authz.Principal{}, apperrors.ErrStoreUnavailable
			},
		}
		router := setupAuthRouter(sessions)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestGetPrincipal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("returns false without the middleware", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		_, ok := GetPrincipal(c)
		assert.False(t, ok)
	})
}
