package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blockingLimiter denies every attempt once tripped.
type blockingLimiter struct {
	blocked  bool
	recorded int
}

func (l *blockingLimiter) Check(string) bool { return !l.blocked }
func (l *blockingLimiter) Record(string)     { l.recorded++ }

func newTestServer(t *testing.T, limiter Limiter) *echo.Echo {
	t.Helper()
	svc, _ := testService(t)
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("test-secret"))))
	h := NewHandler(svc, limiter, nil)
	h.RegisterRoutes(e.Group("/api/auth"))
	return e
}

func postJSON(e *echo.Echo, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLoginEndpointSuccess(t *testing.T) {
	e := newTestServer(t, nil)
	rec := postJSON(e, "/api/auth/login", `{"email":"demo@example.com","password":"password"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "response body: %s", rec.Body.String())
	assert.Equal(t, "demo@example.com", user["email"])
	assert.NotContains(t, rec.Body.String(), "password")

	// A successful login establishes a cookie session.
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "showcase_session", cookies[0].Name)
}

func TestLoginEndpointInvalidCredentials(t *testing.T) {
	e := newTestServer(t, nil)
	rec := postJSON(e, "/api/auth/login", `{"email":"demo@example.com","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid credentials", decodeBody(t, rec)["error"])
}

func TestLoginEndpointMissingFields(t *testing.T) {
	e := newTestServer(t, nil)
	rec := postJSON(e, "/api/auth/login", `{"email":"demo@example.com"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Email and password are required", decodeBody(t, rec)["error"])
}

func TestLoginEndpointMalformedBody(t *testing.T) {
	e := newTestServer(t, nil)
	rec := postJSON(e, "/api/auth/login", `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", decodeBody(t, rec)["error"])
}

func TestLoginEndpointRateLimited(t *testing.T) {
	limiter := &blockingLimiter{}
	e := newTestServer(t, limiter)

	// Failed attempts are recorded against the client IP.
	rec := postJSON(e, "/api/auth/login", `{"email":"demo@example.com","password":"wrong"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 1, limiter.recorded)

	limiter.blocked = true
	rec = postJSON(e, "/api/auth/login", `{"email":"demo@example.com","password":"password"}`)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestSignupEndpointSuccess(t *testing.T) {
	e := newTestServer(t, nil)
	rec := postJSON(e, "/api/auth/signup", `{"name":"New User","email":"new@example.com","password":"secret1","confirmPassword":"secret1"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	user, ok := body["user"].(map[string]any)
	require.True(t, ok, "response body: %s", rec.Body.String())
	assert.Equal(t, "new@example.com", user["email"])
	assert.NotEmpty(t, user["id"])

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "showcase_session", cookies[0].Name)
}

func TestSignupEndpointValidation(t *testing.T) {
	e := newTestServer(t, nil)
	tests := []struct {
		body string
		want string
	}{
		{`{"name":"A","email":"a@b.c","password":"secret1"}`, "All fields are required"},
		{`{"name":"A","email":"a@b.c","password":"secret1","confirmPassword":"secret2"}`, "Passwords do not match"},
		{`{"name":"A","email":"a@b.c","password":"abc","confirmPassword":"abc"}`, "Password must be at least 6 characters"},
	}
	for _, tt := range tests {
		rec := postJSON(e, "/api/auth/signup", tt.body)
		require.Equal(t, http.StatusBadRequest, rec.Code, "body: %s", tt.body)
		assert.Equal(t, tt.want, decodeBody(t, rec)["error"])
	}
}

func TestSignupEndpointDuplicateEmail(t *testing.T) {
	e := newTestServer(t, nil)
	rec := postJSON(e, "/api/auth/signup", `{"name":"Other","email":"demo@example.com","password":"secret1","confirmPassword":"secret1"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "User already exists", decodeBody(t, rec)["error"])
}

func TestLogoutEndpoint(t *testing.T) {
	e := newTestServer(t, nil)
	rec := postJSON(e, "/api/auth/logout", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Logged out successfully", decodeBody(t, rec)["message"])

	// The session cookie is expired on the way out.
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "showcase_session", cookies[0].Name)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
