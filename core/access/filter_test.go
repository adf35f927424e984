package access_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"redelex-panel/core/access"
	"redelex-panel/core/navigation"
	"redelex-panel/core/session"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupGuardApp(user *session.User, handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if user != nil {
			session.Attach(c, "tok", user)
		}
		return c.Next()
	})
	app.Get("/panel/usuarios", handler, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestFilter_Guard(t *testing.T) {
	f := access.NewFilter(zap.NewNop())

	tests := []struct {
		name     string
		user     *session.User
		status   int
		redirect string
	}{
		{"Admin", &session.User{Role: "admin"}, 200, ""},
		{"Inmobiliaria", &session.User{Role: "inmobiliaria"}, 403, "/panel/consultas/mis-procesos"},
		{"Anonymous", nil, 401, "/auth/login"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := setupGuardApp(tt.user, f.Guard(access.Rule{Roles: []string{"admin"}}))

			resp, err := app.Test(httptest.NewRequest("GET", "/panel/usuarios", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			if tt.redirect != "" {
				var body map[string]any
				require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
				assert.Equal(t, tt.redirect, body["redirect"])
				assert.NotEmpty(t, body["message"])
			}
		})
	}
}

func TestFilter_GuardPermissions(t *testing.T) {
	f := access.NewFilter(zap.NewNop())

	app := setupGuardApp(&session.User{Role: "admin"}, f.Guard(access.Rule{Permissions: []string{"usuarios:gestionar"}}))
	resp, err := app.Test(httptest.NewRequest("GET", "/panel/usuarios", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	app = setupGuardApp(&session.User{Role: "inmobiliaria"}, f.Guard(access.Rule{Permissions: []string{"usuarios:gestionar"}}))
	resp, err = app.Test(httptest.NewRequest("GET", "/panel/usuarios", nil))
	require.NoError(t, err)
	assert.Equal(t, 403, resp.StatusCode)
}

func TestVisibleSections(t *testing.T) {
	sections := []navigation.MenuSection{
		{ID: "consultas", Title: "Consultas", Items: []navigation.MenuItem{
			{ID: "open", Label: "Abierto"},
			{ID: "admin", Label: "Solo admin", Roles: []string{"admin"}},
			{ID: "perm", Label: "Exportar", Permissions: []string{"reportes:exportar"}},
			{ID: "off", Label: "Apagado", Enabled: navigation.Bool(false)},
		}},
		{ID: "sistema", Title: "Sistema", Items: []navigation.MenuItem{
			{ID: "users", Label: "Usuarios", Roles: []string{"admin"}},
		}},
	}

	ids := func(ss []navigation.MenuSection) map[string][]string {
		out := map[string][]string{}
		for _, s := range ss {
			for _, it := range s.Items {
				out[s.ID] = append(out[s.ID], it.ID)
			}
		}
		return out
	}

	admin := access.VisibleSections(sections, &session.User{Role: "admin"})
	assert.Equal(t, map[string][]string{
		"consultas": {"open", "admin", "perm"},
		"sistema":   {"users"},
	}, ids(admin))

	agent := access.VisibleSections(sections, &session.User{Role: "inmobiliaria", Permissions: []string{"reportes:exportar"}})
	assert.Equal(t, map[string][]string{"consultas": {"open", "perm"}}, ids(agent))
	assert.Len(t, agent, 1)

	// Input is not modified.
	assert.Len(t, sections[0].Items, 4)
}
