package courses

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/durvibangera/sorte/internal/middleware"
	"github.com/durvibangera/sorte/internal/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func setupRouter(t *testing.T) (*gin.Engine, *jwt.Config, *fakeCascader) {
	t.Helper()
	svc, _, cascade := newTestService()
	cfg := jwt.DefaultConfig("test-secret")

	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewHandler(svc), middleware.Auth(cfg))
	return r, cfg, cascade
}

func tokenFor(t *testing.T, cfg *jwt.Config, userID string) string {
	t.Helper()
	token, err := jwt.GenerateToken(userID, userID+"@x.com", cfg)
	require.NoError(t, err)
	return token
}

func call(t *testing.T, r http.Handler, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func TestHandler_CourseLifecycle(t *testing.T) {
	r, cfg, cascade := setupRouter(t)
	tokenA := tokenFor(t, cfg, ownerA)
	tokenB := tokenFor(t, cfg, ownerB)

	status, _ := call(t, r, "GET", "/api/courses", "", nil)
	require.Equal(t, http.StatusUnauthorized, status)

	status, env := call(t, r, "POST", "/api/courses", tokenA, gin.H{"name": "ml", "instructor": "X", "location": "51"})
	require.Equal(t, http.StatusCreated, status)
	var course Course
	require.NoError(t, json.Unmarshal(env.Data, &course))
	require.Equal(t, "ML", course.Name)
	require.Equal(t, "yellow", course.Color)
	path := "/api/courses/" + course.ID.Hex()

	status, env = call(t, r, "POST", "/api/courses", tokenA, gin.H{"name": "ml", "location": "51"})
	require.Equal(t, http.StatusUnprocessableEntity, status)
	require.Equal(t, "VALIDATION_FAILED", env.Code)

	status, env = call(t, r, "GET", "/api/courses", tokenA, nil)
	require.Equal(t, http.StatusOK, status)
	var list []Course
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)

	status, env = call(t, r, "GET", "/api/courses", tokenB, nil)
	require.Equal(t, http.StatusOK, status)
	require.JSONEq(t, `[]`, string(env.Data))

	status, env = call(t, r, "GET", path, tokenB, nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Course not found", env.Message)

	status, env = call(t, r, "PUT", path, tokenA, gin.H{"color": "#ff8800"})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &course))
	require.Equal(t, "#ff8800", course.Color)
	require.Equal(t, "ML", course.Name)

	status, _ = call(t, r, "DELETE", path, tokenB, nil)
	require.Equal(t, http.StatusNotFound, status)
	require.Empty(t, cascade.calls)

	status, env = call(t, r, "DELETE", path, tokenA, nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Course deleted successfully", env.Message)
	require.Len(t, cascade.calls, 1)

	status, _ = call(t, r, "GET", path, tokenA, nil)
	require.Equal(t, http.StatusNotFound, status)
}
