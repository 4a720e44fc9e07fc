package response

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	apperrors "github.com/durvibangera/sorte/pkg/errors"
)

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestSuccessAndErrorResponses(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Success(c, map[string]string{"foo": "bar"}, "ok")
	require.Equal(t, 200, w.Code)
	body := decode(t, w)
	require.Equal(t, true, body["success"])
	require.Equal(t, float64(200), body["statusCode"]) // json numbers decode to float64
	require.Equal(t, "ok", body["message"])
	require.Contains(t, body, "data")

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Error(c, 400, "bad request", "BAD_REQ")
	require.Equal(t, 400, w.Code)
	bodyErr := decode(t, w)
	require.Equal(t, false, bodyErr["success"])
	require.Equal(t, float64(400), bodyErr["statusCode"])
	require.Equal(t, "bad request", bodyErr["message"])
	require.Equal(t, "BAD_REQ", bodyErr["code"])
}

func TestFromErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		code   string
	}{
		{apperrors.NotFound("Course not found"), 404, "NOT_FOUND"},
		{apperrors.Conflict("User already exists"), 409, "CONFLICT"},
		{apperrors.Validation("End time must be after start time"), 422, "VALIDATION_FAILED"},
		{apperrors.InvalidCredentials("Invalid credentials"), 400, "INVALID_CREDENTIALS"},
		{apperrors.Unauthenticated("Invalid token"), 401, "AUTH_FAILED"},
		{apperrors.Unimplemented("Google Calendar sync not implemented yet"), 501, "NOT_IMPLEMENTED"},
		{apperrors.Unavailable("Image storage is not configured"), 503, "SERVICE_UNAVAILABLE"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		FromError(c, tc.err)

		require.Equal(t, tc.status, w.Code, tc.err.Error())
		body := decode(t, w)
		require.Equal(t, tc.code, body["code"])
		require.Equal(t, apperrors.MessageOf(tc.err), body["message"])
	}
}

func TestFromErrorDoesNotLeakInternalCause(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	FromError(c, errors.New("mongo: server selection timeout on 10.0.0.4"))

	require.Equal(t, 500, w.Code)
	body := decode(t, w)
	require.Equal(t, "internal server error", body["message"])
	require.NotContains(t, w.Body.String(), "10.0.0.4")
}
