package auth_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"redelex-panel/core/middleware/auth"
	"redelex-panel/core/session"
	"redelex-panel/core/session/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupApp(store session.Store) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(auth.Config{Store: store}))
	app.Get("/me", func(c *fiber.Ctx) error {
		u := session.Current(c)
		if u == nil {
			return c.SendString("anonymous")
		}
		return c.SendString(u.Role + ":" + session.Token(c))
	})
	return app
}

func body(t *testing.T, app *fiber.App, header string) (int, string) {
	t.Helper()
	req := httptest.NewRequest("GET", "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(data)
}

func TestAuth_Anonymous(t *testing.T) {
	store := new(mocks.Store)
	status, text := body(t, setupApp(store), "")
	assert.Equal(t, 200, status)
	assert.Equal(t, "anonymous", text)
	store.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}

func TestAuth_ValidToken(t *testing.T) {
	store := new(mocks.Store)
	store.On("Load", mock.Anything, "tok-1").Return(&session.User{ID: 1, Role: "admin"}, nil)

	status, text := body(t, setupApp(store), "Bearer tok-1")
	assert.Equal(t, 200, status)
	assert.Equal(t, "admin:tok-1", text)
}

func TestAuth_ExpiredTokenClearsSession(t *testing.T) {
	store := new(mocks.Store)
	store.On("Load", mock.Anything, "old").Return(nil, session.ErrSessionNotFound)
	store.On("Delete", mock.Anything, "old").Return(nil)

	app := setupApp(store)
	req := httptest.NewRequest("GET", "/me", nil)
	req.Header.Set("Authorization", "Bearer old")
	resp, err := app.Test(req)
	require.NoError(t, err)

	assert.Equal(t, 401, resp.StatusCode)
	var payload map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.Equal(t, "/auth/login", payload["redirect"])
	store.AssertCalled(t, "Delete", mock.Anything, "old")
}

func TestAuth_MalformedHeader(t *testing.T) {
	store := new(mocks.Store)
	status, _ := body(t, setupApp(store), "Basic abc")
	assert.Equal(t, 401, status)

	status, _ = body(t, setupApp(store), "Bearer   ")
	assert.Equal(t, 401, status)
}

func TestAuth_StoreFailure(t *testing.T) {
	store := new(mocks.Store)
	store.On("Load", mock.Anything, "tok").Return(nil, assert.AnError)

	status, _ := body(t, setupApp(store), "Bearer tok")
	assert.Equal(t, 503, status)
	store.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAuth_OnExpired(t *testing.T) {
	store := new(mocks.Store)
	store.On("Load", mock.Anything, "old").Return(nil, session.ErrSessionNotFound)
	store.On("Delete", mock.Anything, "old").Return(nil)

	var expired []string
	app := fiber.New()
	app.Use(auth.New(auth.Config{
		Store:     store,
		OnExpired: func(token string) { expired = append(expired, token) },
	}))
	app.Get("/me", func(c *fiber.Ctx) error { return c.SendString("ok") })

	status, _ := body(t, app, "Bearer old")
	assert.Equal(t, 401, status)
	assert.Equal(t, []string{"old"}, expired)
}

func TestAuth_NextSkips(t *testing.T) {
	store := new(mocks.Store)
	app := fiber.New()
	app.Use(auth.New(auth.Config{
		Store: store,
		Next:  func(c *fiber.Ctx) bool { return c.Path() == "/me" },
	}))
	app.Get("/me", func(c *fiber.Ctx) error {
		if session.Current(c) != nil {
			return c.SendString("user")
		}
		return c.SendString("anonymous")
	})

	status, text := body(t, app, "Bearer stale")
	assert.Equal(t, 200, status)
	assert.Equal(t, "anonymous", text)
	store.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}
