package api_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterEndpoint(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodPost, "/api/v1/auth/register", "", registerBody("new@example.com"))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	decode(t, w, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "new@example.com", resp.User.Email)

	// Same email again conflicts.
	w = app.request(t, http.MethodPost, "/api/v1/auth/register", "", registerBody("new@example.com"))
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	body := registerBody("bad@example.com")
	body["goal"] = "get_swole"
	w := app.request(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = registerBody("bad@example.com")
	delete(body, "cuisine_preferences")
	w = app.request(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	body = registerBody("bad@example.com")
	body["password"] = "short"
	w = app.request(t, http.MethodPost, "/api/v1/auth/register", "", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	app := newTestApp(t)
	app.registerUser(t, "login@example.com")

	w := app.request(t, http.MethodPost, "/api/v1/auth/login", "",
		`{"email":"login@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	decode(t, w, &resp)
	assert.NotEmpty(t, resp.Token)

	w = app.request(t, http.MethodPost, "/api/v1/auth/login", "",
		`{"email":"login@example.com","password":"wrong-password"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodGet, "/api/v1/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = app.request(t, http.MethodGet, "/api/v1/profile", "not-a-jwt", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	w := app.request(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
