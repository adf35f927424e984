package panel

import (
	"redelex-panel/core/loader"
	"redelex-panel/core/navigation"
	"redelex-panel/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PluginID identifies the feature in the navigation registry.
const PluginID = "panel"

var signedIn = []string{session.RoleAdmin, session.RoleInmobiliaria}

var descriptor = navigation.PluginDescriptor{
	ID:           PluginID,
	Name:         "Panel",
	Version:      "1.0.0",
	Enabled:      true,
	Dependencies: []string{"auth"},
	Routes: []navigation.Route{
		{Method: fiber.MethodGet, Path: "/panel/navigation", Roles: signedIn},
		{Method: fiber.MethodPost, Path: "/panel/navigation/end", Roles: signedIn},
		{Method: fiber.MethodGet, Path: "/panel/breadcrumb", Roles: signedIn},
		{Method: fiber.MethodGet, Path: "/panel/plugins", Roles: []string{session.RoleAdmin}},
	},
}

// Feature is the shell module.
type Feature struct {
	shell   *Shell
	handler *Handler
}

// NewFeature creates the shell feature over registry.
func NewFeature(registry *navigation.Registry, logger *zap.Logger) *Feature {
	l := logger.Named(PluginID)
	shell := NewShell(registry, l)
	return &Feature{shell: shell, handler: NewHandler(shell, registry, l)}
}

// Shell returns the navigation shell. Its Run loop must be started by the caller.
func (f *Feature) Shell() *Shell {
	return f.shell
}

// Descriptor implements loader.Feature.
func (f *Feature) Descriptor() navigation.PluginDescriptor {
	return descriptor
}

// Handlers implements loader.Feature.
func (f *Feature) Handlers() map[string]fiber.Handler {
	return map[string]fiber.Handler{
		loader.Key(fiber.MethodGet, "/panel/navigation"):      f.handler.HandleNavigation,
		loader.Key(fiber.MethodPost, "/panel/navigation/end"): f.handler.HandleNavigationEnd,
		loader.Key(fiber.MethodGet, "/panel/breadcrumb"):      f.handler.HandleBreadcrumb,
		loader.Key(fiber.MethodGet, "/panel/plugins"):         f.handler.HandlePlugins,
	}
}
