package procesos

import (
	"redelex-panel/core/access"
	"redelex-panel/core/export"
	"redelex-panel/core/loader"
	"redelex-panel/core/navigation"
	"redelex-panel/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PluginID identifies the feature in the navigation registry.
const PluginID = "redelex"

var (
	allRoles = []string{session.RoleAdmin, session.RoleInmobiliaria}
	ver      = []string{access.PermProcesosVer}
	exportar = []string{access.PermReportesExportar}
)

var descriptor = navigation.PluginDescriptor{
	ID:           PluginID,
	Name:         "Procesos Redelex",
	Version:      "1.0.0",
	Enabled:      true,
	Dependencies: []string{"auth"},
	MenuItems: []navigation.MenuItem{
		{ID: "consultar-proceso", Label: "Consultar proceso", Icon: "search", Route: "/panel/consultas/consultar-proceso", Roles: []string{session.RoleAdmin}, SectionID: navigation.SectionConsultas, Order: 1},
		{ID: "mis-procesos", Label: "Mis procesos", Icon: "folder_open", Route: "/panel/consultas/mis-procesos", Roles: []string{session.RoleInmobiliaria}, Permissions: ver, SectionID: navigation.SectionConsultas, Order: 2},
		{ID: "reporte-procesos", Label: "Reporte de procesos", Icon: "summarize", Route: "/panel/reportes/procesos", Roles: allRoles, Permissions: exportar, SectionID: navigation.SectionReportes, Order: 1},
	},
	Routes: []navigation.Route{
		{Method: fiber.MethodGet, Path: "/panel/consultas/consultar-proceso/:id", Roles: allRoles, Permissions: ver},
		{Method: fiber.MethodGet, Path: "/panel/consultas/mis-procesos", Roles: allRoles, Permissions: ver},
		{Method: fiber.MethodGet, Path: "/panel/reportes/procesos", Roles: allRoles, Permissions: exportar},
	},
}

// Feature is the process lookup module.
type Feature struct {
	handler *Handler
}

// NewFeature creates the process feature over source. archive may be nil.
func NewFeature(source Source, archive *export.Archive, logger *zap.Logger) *Feature {
	l := logger.Named("procesos")
	return &Feature{handler: NewHandler(NewService(source, l), archive, l)}
}

// Descriptor implements loader.Feature.
func (f *Feature) Descriptor() navigation.PluginDescriptor {
	return descriptor
}

// Handlers implements loader.Feature.
func (f *Feature) Handlers() map[string]fiber.Handler {
	return map[string]fiber.Handler{
		loader.Key(fiber.MethodGet, "/panel/consultas/consultar-proceso/:id"): f.handler.HandleDetail,
		loader.Key(fiber.MethodGet, "/panel/consultas/mis-procesos"):          f.handler.HandleList,
		loader.Key(fiber.MethodGet, "/panel/reportes/procesos"):               f.handler.HandleReport,
	}
}
