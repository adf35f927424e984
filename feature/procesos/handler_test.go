package procesos

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"redelex-panel/core/access"
	"redelex-panel/core/export"
	"redelex-panel/core/loader"
	"redelex-panel/core/redelex"
	"redelex-panel/core/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func upstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.URL.Path {
		case "/procesos/101":
			json.NewEncoder(w).Encode(sampleProcesos()[0])
		case "/procesos":
			if r.URL.Query().Get("identificacion") == "900123456" {
				json.NewEncoder(w).Encode(sampleProcesos())
				return
			}
			w.Write([]byte("[]"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func setupTestApp(t *testing.T, apiKey string, user *session.User) *fiber.App {
	t.Helper()
	srv := upstream(t)
	client := redelex.NewClient(redelex.Config{BaseURL: srv.URL, APIKey: apiKey, TimeoutSeconds: 2})
	f := NewFeature(client, nil, zap.NewNop())

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if user != nil {
			session.Attach(c, "token", user)
		}
		return c.Next()
	})
	require.NoError(t, loader.Mount(app, access.NewFilter(zap.NewNop()), f.Descriptor(), f.Handlers()))
	return app
}

func inmobiliaria() *session.User {
	return &session.User{
		ID:             7,
		Role:           session.RoleInmobiliaria,
		Identification: "900123456",
		Permissions:    access.DefaultPermissions(session.RoleInmobiliaria),
	}
}

func TestHandleDetail(t *testing.T) {
	app := setupTestApp(t, "test-key", &session.User{ID: 1, Role: session.RoleAdmin})

	resp, err := app.Test(httptest.NewRequest("GET", "/panel/consultas/consultar-proceso/101", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var p redelex.Proceso
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&p))
	assert.Equal(t, "11001400301220230001", p.Radicado)

	resp, err = app.Test(httptest.NewRequest("GET", "/panel/consultas/consultar-proceso/999", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleDetail_UpstreamRejectsKey(t *testing.T) {
	app := setupTestApp(t, "wrong-key", &session.User{ID: 1, Role: session.RoleAdmin})

	resp, err := app.Test(httptest.NewRequest("GET", "/panel/consultas/consultar-proceso/101", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
}

func TestHandleList(t *testing.T) {
	app := setupTestApp(t, "test-key", inmobiliaria())

	resp, err := app.Test(httptest.NewRequest("GET", "/panel/consultas/mis-procesos?estado=activo&size=1", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var page struct {
		Items []redelex.Proceso `json:"items"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, 2, page.Total)
	assert.Len(t, page.Items, 1)
}

func TestHandleList_Errors(t *testing.T) {
	t.Run("No identification", func(t *testing.T) {
		app := setupTestApp(t, "test-key", &session.User{ID: 1, Role: session.RoleAdmin})
		resp, err := app.Test(httptest.NewRequest("GET", "/panel/consultas/mis-procesos", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Upstream failure keeps an array", func(t *testing.T) {
		app := setupTestApp(t, "wrong-key", inmobiliaria())
		resp, err := app.Test(httptest.NewRequest("GET", "/panel/consultas/mis-procesos", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)

		var body map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, []any{}, body["items"])
	})

	t.Run("Missing permission", func(t *testing.T) {
		user := inmobiliaria()
		user.Permissions = nil
		app := setupTestApp(t, "test-key", user)
		resp, err := app.Test(httptest.NewRequest("GET", "/panel/consultas/mis-procesos", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	})
}

func TestHandleReport(t *testing.T) {
	app := setupTestApp(t, "test-key", inmobiliaria())

	resp, err := app.Test(httptest.NewRequest("GET", "/panel/reportes/procesos?format=xlsx", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, export.FormatXLSX.ContentType(), resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "procesos")
}
