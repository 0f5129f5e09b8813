package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wastetrack/internal/authz"
	"wastetrack/internal/middleware"
	"wastetrack/internal/models"
	"wastetrack/internal/validator"
	"wastetrack/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
}

// injectPrincipal stands in for the auth middleware in handler tests.
func injectPrincipal(p authz.Principal) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.PrincipalKey, p)
		c.Next()
	}
}

func adminPrincipal() authz.Principal {
	return authz.Principal{
		ID:       primitive.NewObjectID(),
		Username: "admin",
		Role:     models.RoleAdmin,
	}
}

func memberPrincipal(role models.Role, teamID primitive.ObjectID) authz.Principal {
	return authz.Principal{
		ID:       primitive.NewObjectID(),
		Username: "member",
		Role:     role,
		TeamID:   &teamID,
	}
}

func jsonBody(t *testing.T, v interface{}) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func doRequest(router *gin.Engine, method, path string, body *bytes.Reader) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	router.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
