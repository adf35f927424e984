package reportes

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"redelex-panel/core/access"
	"redelex-panel/core/export"
	"redelex-panel/core/loader"
	"redelex-panel/core/navigation"
	"redelex-panel/core/session"
	"redelex-panel/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, archive *export.Archive) *fiber.App {
	t.Helper()
	f := NewFeature(archive, zap.NewNop())
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		session.Attach(c, "token", &session.User{ID: 1, Role: session.RoleAdmin})
		return c.Next()
	})
	require.NoError(t, loader.Mount(app, access.NewFilter(zap.NewNop()), f.Descriptor(), f.Handlers()))
	return app
}

func TestHandleList(t *testing.T) {
	client := new(mocks.Client)
	ch := make(chan minio.ObjectInfo, 2)
	ch <- minio.ObjectInfo{Key: "reports/procesos/2026/01/a.xlsx", Size: 10, LastModified: time.Now().Add(-time.Hour)}
	ch <- minio.ObjectInfo{Key: "reports/procesos/2026/01/b.pdf", Size: 20, LastModified: time.Now()}
	close(ch)
	client.On("ListObjects", mock.Anything, "reports", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	app := setupTestApp(t, export.NewArchive(client, "reports", zap.NewNop()))
	resp, err := app.Test(httptest.NewRequest("GET", "/panel/reportes/archivo?categoria=procesos", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Items []export.Entry `json:"items"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Items, 2)
	assert.Equal(t, "reports/procesos/2026/01/b.pdf", body.Items[0].Object)
}

func TestHandleDownload(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "reports", "reports/usuarios/2026/01/u.pdf", mock.Anything).
		Return(io.NopCloser(strings.NewReader("%PDF-1.3")), nil)

	app := setupTestApp(t, export.NewArchive(client, "reports", zap.NewNop()))
	resp, err := app.Test(httptest.NewRequest("GET", "/panel/reportes/archivo/descargar?object=reports/usuarios/2026/01/u.pdf", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	data, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "%PDF-1.3", string(data))

	resp, err = app.Test(httptest.NewRequest("GET", "/panel/reportes/archivo/descargar?object=../etc/passwd", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestHandleDelete(t *testing.T) {
	client := new(mocks.Client)
	client.On("RemoveObject", mock.Anything, "reports", "reports/usuarios/2026/01/u.pdf", mock.Anything).Return(nil)

	app := setupTestApp(t, export.NewArchive(client, "reports", zap.NewNop()))
	resp, err := app.Test(httptest.NewRequest("DELETE", "/panel/reportes/archivo?object=reports/usuarios/2026/01/u.pdf", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	client.AssertExpectations(t)
}

func TestDisabledWithoutArchive(t *testing.T) {
	f := NewFeature(nil, zap.NewNop())
	assert.False(t, f.Descriptor().Enabled)

	registry := navigation.NewRegistry(zap.NewNop())
	assert.False(t, registry.Register(f.Descriptor()))

	h := NewHandler(nil, zap.NewNop())
	app := fiber.New()
	app.Get("/archivo", h.HandleList)
	resp, err := app.Test(httptest.NewRequest("GET", "/archivo", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}
