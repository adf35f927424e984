package inmobiliarias

import (
	"redelex-panel/core/access"
	"redelex-panel/core/export"
	"redelex-panel/core/loader"
	"redelex-panel/core/navigation"
	"redelex-panel/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PluginID identifies the feature in the navigation registry.
const PluginID = "inmobiliarias"

var (
	admins  = []string{session.RoleAdmin}
	gestion = []string{access.PermInmobiliariasGestionar}
)

var descriptor = navigation.PluginDescriptor{
	ID:           PluginID,
	Name:         "Inmobiliarias",
	Version:      "1.0.0",
	Enabled:      true,
	Dependencies: []string{"auth"},
	MenuItems: []navigation.MenuItem{
		{ID: "inmobiliarias", Label: "Inmobiliarias", Icon: "business", Route: "/panel/inmobiliarias", Roles: admins, SectionID: navigation.SectionSistema, Order: 2},
		{ID: "reporte-inmobiliarias", Label: "Reporte de inmobiliarias", Icon: "table_view", Route: "/panel/inmobiliarias/export", Roles: admins, Permissions: []string{access.PermReportesExportar}, SectionID: navigation.SectionReportes, Order: 2},
	},
	Routes: []navigation.Route{
		{Method: fiber.MethodGet, Path: "/panel/inmobiliarias/export", Roles: admins, Permissions: []string{access.PermReportesExportar}},
		{Method: fiber.MethodGet, Path: "/panel/inmobiliarias", Roles: admins},
		{Method: fiber.MethodPost, Path: "/panel/inmobiliarias", Roles: admins, Permissions: gestion},
		{Method: fiber.MethodGet, Path: "/panel/inmobiliarias/:id", Roles: admins},
		{Method: fiber.MethodPut, Path: "/panel/inmobiliarias/:id", Roles: admins, Permissions: gestion},
		{Method: fiber.MethodDelete, Path: "/panel/inmobiliarias/:id", Roles: admins, Permissions: gestion},
	},
}

// Feature is the inmobiliarias module.
type Feature struct {
	handler *Handler
	service *Service
}

// NewFeature creates the inmobiliarias feature. archive may be nil.
func NewFeature(db *gorm.DB, archive *export.Archive, logger *zap.Logger) *Feature {
	svc := NewService(NewRepository(db), logger.Named(PluginID))
	return &Feature{
		handler: NewHandler(svc, archive, logger.Named(PluginID)),
		service: svc,
	}
}

// Service exposes the underlying service.
func (f *Feature) Service() *Service {
	return f.service
}

// Descriptor implements loader.Feature.
func (f *Feature) Descriptor() navigation.PluginDescriptor {
	return descriptor
}

// Handlers implements loader.Feature.
func (f *Feature) Handlers() map[string]fiber.Handler {
	return map[string]fiber.Handler{
		loader.Key(fiber.MethodGet, "/panel/inmobiliarias/export"): f.handler.HandleExport,
		loader.Key(fiber.MethodGet, "/panel/inmobiliarias"):        f.handler.HandleList,
		loader.Key(fiber.MethodPost, "/panel/inmobiliarias"):       f.handler.HandleCreate,
		loader.Key(fiber.MethodGet, "/panel/inmobiliarias/:id"):    f.handler.HandleGet,
		loader.Key(fiber.MethodPut, "/panel/inmobiliarias/:id"):    f.handler.HandleUpdate,
		loader.Key(fiber.MethodDelete, "/panel/inmobiliarias/:id"): f.handler.HandleDelete,
	}
}
