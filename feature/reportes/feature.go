package reportes

import (
	"redelex-panel/core/export"
	"redelex-panel/core/loader"
	"redelex-panel/core/navigation"
	"redelex-panel/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PluginID identifies the feature in the navigation registry.
const PluginID = "reportes"

var admins = []string{session.RoleAdmin}

var descriptor = navigation.PluginDescriptor{
	ID:           PluginID,
	Name:         "Archivo de reportes",
	Version:      "1.0.0",
	Enabled:      true,
	Dependencies: []string{"auth"},
	MenuItems: []navigation.MenuItem{
		{ID: "archivo-reportes", Label: "Reportes generados", Icon: "inventory_2", Route: "/panel/reportes/archivo", Roles: admins, SectionID: navigation.SectionReportes, Order: 3},
	},
	Routes: []navigation.Route{
		{Method: fiber.MethodGet, Path: "/panel/reportes/archivo/descargar", Roles: admins},
		{Method: fiber.MethodGet, Path: "/panel/reportes/archivo", Roles: admins},
		{Method: fiber.MethodDelete, Path: "/panel/reportes/archivo", Roles: admins},
	},
}

// Feature is the report archive module.
type Feature struct {
	handler *Handler
	enabled bool
}

// NewFeature creates the report archive feature. With a nil archive the
// feature is registered disabled and its routes are not mounted.
func NewFeature(archive *export.Archive, logger *zap.Logger) *Feature {
	return &Feature{
		handler: NewHandler(archive, logger.Named(PluginID)),
		enabled: archive != nil,
	}
}

// Descriptor implements loader.Feature.
func (f *Feature) Descriptor() navigation.PluginDescriptor {
	d := descriptor
	d.Enabled = f.enabled
	return d
}

// Handlers implements loader.Feature.
func (f *Feature) Handlers() map[string]fiber.Handler {
	return map[string]fiber.Handler{
		loader.Key(fiber.MethodGet, "/panel/reportes/archivo/descargar"): f.handler.HandleDownload,
		loader.Key(fiber.MethodGet, "/panel/reportes/archivo"):           f.handler.HandleList,
		loader.Key(fiber.MethodDelete, "/panel/reportes/archivo"):        f.handler.HandleDelete,
	}
}
