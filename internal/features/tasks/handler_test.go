package tasks

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
	Message string          `json:"message"`
	Code    string          `json:"code"`
	Data    json.RawMessage `json:"data"`
}

func TestHandler_TaskRoutes(t *testing.T) {
	svc, repo, courses := newTestService()
	cfg := jwt.DefaultConfig("test-secret")
	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewHandler(svc), middleware.Auth(cfg))

	token, err := jwt.GenerateToken(ownerA, "a@x.com", cfg)
	require.NoError(t, err)
	courseID := courses.add(ownerA, "ML", "blue")
	foreignID := courses.add(ownerB, "OS", "green")

	call := func(method, path string, body any) (int, envelope) {
		var buf bytes.Buffer
		if body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		var env envelope
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		return w.Code, env
	}

	status, env := call("POST", "/api/tasks", gin.H{"title": "HW", "dueDate": "2025-03-20T23:59:00Z", "courseId": foreignID.Hex()})
	require.Equal(t, http.StatusNotFound, status)
	require.Equal(t, "Course not found", env.Message)
	require.Empty(t, repo.tasks)

	status, _ = call("POST", "/api/tasks", gin.H{"title": "HW", "courseId": courseID.Hex()})
	require.Equal(t, http.StatusUnprocessableEntity, status)

	status, env = call("POST", "/api/tasks", gin.H{"title": "HW", "dueDate": "2025-03-20T23:59:00Z", "courseId": courseID.Hex()})
	require.Equal(t, http.StatusCreated, status)
	var task Task
	require.NoError(t, json.Unmarshal(env.Data, &task))
	require.Equal(t, "blue", task.Color)

	status, env = call("PATCH", "/api/tasks/"+task.ID.Hex()+"/toggle", nil)
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &task))
	require.True(t, task.Completed)

	status, env = call("GET", "/api/tasks", nil)
	require.Equal(t, http.StatusOK, status)
	var views []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &views))
	require.Len(t, views, 1)
	course := views[0]["course"].(map[string]any)
	require.Equal(t, "ML", course["name"])
	require.Equal(t, "blue", views[0]["color"])

	status, env = call("GET", "/api/tasks/course/"+courseID.Hex(), nil)
	require.Equal(t, http.StatusOK, status)
	var byCourse []Task
	require.NoError(t, json.Unmarshal(env.Data, &byCourse))
	require.Len(t, byCourse, 1)

	status, _ = call("GET", "/api/tasks/course/"+foreignID.Hex(), nil)
	require.Equal(t, http.StatusNotFound, status)

	status, _ = call("PUT", "/api/tasks/"+task.ID.Hex(), gin.H{})
	require.Equal(t, http.StatusUnprocessableEntity, status)

	status, env = call("DELETE", "/api/tasks/"+task.ID.Hex(), nil)
	require.Equal(t, http.StatusOK, status)
	require.Equal(t, "Task deleted successfully", env.Message)

	status, _ = call("GET", "/api/tasks/"+task.ID.Hex(), nil)
	require.Equal(t, http.StatusNotFound, status)
}
