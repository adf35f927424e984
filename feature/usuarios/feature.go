package usuarios

import (
	"redelex-panel/core/export"
	"redelex-panel/core/loader"
	"redelex-panel/core/navigation"
	"redelex-panel/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PluginID identifies the feature in the navigation registry.
const PluginID = "usuarios"

var admins = []string{session.RoleAdmin}

var descriptor = navigation.PluginDescriptor{
	ID:           PluginID,
	Name:         "Gestión de usuarios",
	Version:      "1.0.0",
	Enabled:      true,
	Dependencies: []string{"auth"},
	MenuItems: []navigation.MenuItem{
		{ID: "usuarios", Label: "Usuarios", Icon: "people", Route: "/panel/usuarios", Roles: admins, SectionID: navigation.SectionSistema, Order: 1},
	},
	Routes: []navigation.Route{
		{Method: fiber.MethodGet, Path: "/panel/usuarios/export", Roles: admins},
		{Method: fiber.MethodGet, Path: "/panel/usuarios", Roles: admins},
		{Method: fiber.MethodPost, Path: "/panel/usuarios", Roles: admins},
		{Method: fiber.MethodGet, Path: "/panel/usuarios/:id", Roles: admins},
		{Method: fiber.MethodPut, Path: "/panel/usuarios/:id", Roles: admins},
		{Method: fiber.MethodDelete, Path: "/panel/usuarios/:id", Roles: admins},
	},
}

// Feature is the user management module.
type Feature struct {
	handler *Handler
	service *Service
}

// NewFeature creates the user management feature.
func NewFeature(db *gorm.DB, archive *export.Archive, logger *zap.Logger) *Feature {
	svc := NewService(NewRepository(db), logger.Named(PluginID))
	return &Feature{
		handler: NewHandler(svc, archive, logger.Named(PluginID)),
		service: svc,
	}
}

// Service exposes the user service to features that authenticate users.
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
		loader.Key(fiber.MethodGet, "/panel/usuarios/export"): f.handler.HandleExport,
		loader.Key(fiber.MethodGet, "/panel/usuarios"):        f.handler.HandleList,
		loader.Key(fiber.MethodPost, "/panel/usuarios"):       f.handler.HandleCreate,
		loader.Key(fiber.MethodGet, "/panel/usuarios/:id"):    f.handler.HandleGet,
		loader.Key(fiber.MethodPut, "/panel/usuarios/:id"):    f.handler.HandleUpdate,
		loader.Key(fiber.MethodDelete, "/panel/usuarios/:id"): f.handler.HandleDelete,
	}
}
