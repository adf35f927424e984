package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"redelex-panel/core/database"
	"redelex-panel/core/navigation"
	"redelex-panel/core/redelex"
	"redelex-panel/core/server"
	"redelex-panel/core/session"
	"redelex-panel/core/session/mocks"
	inmobiliariasmodels "redelex-panel/feature/inmobiliarias/models"
	usuariosmodels "redelex-panel/feature/usuarios/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T) (*fiber.App, *mocks.Store, composition) {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, &usuariosmodels.Usuario{}, &inmobiliariasmodels.Inmobiliaria{}))

	store := new(mocks.Store)
	comp := compose(components{
		db:       db,
		sessions: store,
		redelex:  redelex.NewClient(redelex.Config{BaseURL: "http://127.0.0.1:1"}),
		logger:   zap.NewNop(),
	})
	app, err := newApp(server.Config{CorsOrigins: "http://localhost:4200", Environment: server.EnvProduction}, comp, store, zap.NewNop())
	require.NoError(t, err)
	return app, store, comp
}

func TestCompose_RegistersFeaturesInOrder(t *testing.T) {
	_, _, comp := setupApp(t)

	ids := []string{}
	for _, p := range comp.registry.EnabledPlugins() {
		ids = append(ids, p.ID)
	}
	// The report archive is disabled without object storage.
	assert.Equal(t, []string{"auth", "redelex", "usuarios", "inmobiliarias", "panel"}, ids)

	sections := comp.registry.MenuSections()
	require.Len(t, sections, 3)
	assert.Equal(t, "consultar-proceso", sections[0].Items[0].ID)
	assert.Empty(t, sections[1].Items)
	assert.Empty(t, sections[2].Items)
}

func TestApp_Health(t *testing.T) {
	app, _, _ := setupApp(t)
	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get("X-Ray-ID"))
}

func TestApp_SessionFlow(t *testing.T) {
	app, store, comp := setupApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go comp.shell.Run(ctx)

	inmo := &session.User{ID: 4, Role: session.RoleInmobiliaria, Permissions: []string{"procesos:ver"}}
	store.On("Load", mock.Anything, "good-token").Return(inmo, nil)
	store.On("Load", mock.Anything, "stale-token").Return(nil, session.ErrSessionNotFound)
	store.On("Delete", mock.Anything, "stale-token").Return(nil)

	assert.Eventually(t, func() bool {
		sections := comp.shell.MenuSections()
		return len(sections) == 3 && len(sections[0].Items) > 0
	}, time.Second, 10*time.Millisecond)

	req := httptest.NewRequest("GET", "/panel/navigation", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Home     string                   `json:"home"`
		Sections []navigation.MenuSection `json:"sections"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "/panel/consultas/mis-procesos", body.Home)
	require.Len(t, body.Sections, 1)
	assert.Equal(t, "consultas", body.Sections[0].ID)
	ids := []string{}
	for _, it := range body.Sections[0].Items {
		ids = append(ids, it.ID)
	}
	assert.Contains(t, ids, "mis-procesos")
	assert.NotContains(t, ids, "consultar-proceso")

	req = httptest.NewRequest("GET", "/panel/usuarios", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	req = httptest.NewRequest("GET", "/panel/navigation", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	store.AssertCalled(t, "Delete", mock.Anything, "stale-token")

	resp, err = app.Test(httptest.NewRequest("GET", "/swagger/index.html", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestApp_LoginWithStaleToken(t *testing.T) {
	app, store, _ := setupApp(t)
	store.On("Load", mock.Anything, "stale-token").Return(nil, session.ErrSessionNotFound)
	store.On("Delete", mock.Anything, "stale-token").Return(nil)

	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(`{"email":"nadie@example.com","password":"secreto123"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer stale-token")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Credenciales inválidas", body["error"])
	store.AssertNotCalled(t, "Load", mock.Anything, "stale-token")

	req = httptest.NewRequest("POST", "/auth/register", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer stale-token")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestApp_ExpiredSessionDropsTracker(t *testing.T) {
	app, store, comp := setupApp(t)
	store.On("Load", mock.Anything, "expired-token").Return(nil, session.ErrSessionNotFound)
	store.On("Delete", mock.Anything, "expired-token").Return(nil)

	comp.shell.Tracker("expired-token").NavigationEnd("/panel/consultas/mis-procesos")
	require.Equal(t, 1, comp.shell.Sessions())

	req := httptest.NewRequest("GET", "/panel/breadcrumb", nil)
	req.Header.Set("Authorization", "Bearer expired-token")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, comp.shell.Sessions())
}

func TestPrintMenu(t *testing.T) {
	comp := compose(components{logger: zap.NewNop()})

	var all bytes.Buffer
	require.NoError(t, printMenu(&all, comp.registry, nil))
	assert.Contains(t, all.String(), "# auth 1.0.0")
	assert.Contains(t, all.String(), "Usuarios")
	assert.Contains(t, all.String(), "/panel/consultas/mis-procesos")

	var inmo bytes.Buffer
	require.NoError(t, printMenu(&inmo, comp.registry, &session.User{Role: session.RoleInmobiliaria, Permissions: []string{"procesos:ver", "reportes:exportar"}}))
	assert.Contains(t, inmo.String(), "Mis procesos")
	assert.NotContains(t, inmo.String(), "/panel/inmobiliarias")
	assert.NotContains(t, inmo.String(), "Consultar proceso")
}

func TestCheckSchema(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	var out bytes.Buffer
	assert.Error(t, checkSchema(&out, db))
	assert.Contains(t, out.String(), "usuarios         missing")

	require.NoError(t, database.Migrate(db, &usuariosmodels.Usuario{}, &inmobiliariasmodels.Inmobiliaria{}))
	out.Reset()
	require.NoError(t, checkSchema(&out, db))
	assert.Contains(t, out.String(), "inmobiliarias    ok")
}
