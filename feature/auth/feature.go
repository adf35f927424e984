package auth

import (
	"redelex-panel/core/loader"
	"redelex-panel/core/navigation"
	"redelex-panel/core/session"
	"redelex-panel/feature/usuarios"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PluginID identifies the feature in the navigation registry. Other
// features list it as a dependency.
const PluginID = "auth"

var descriptor = navigation.PluginDescriptor{
	ID:      PluginID,
	Name:    "Autenticación",
	Version: "1.0.0",
	Enabled: true,
	Routes: []navigation.Route{
		{Method: fiber.MethodPost, Path: "/auth/login"},
		{Method: fiber.MethodPost, Path: "/auth/register"},
		{Method: fiber.MethodPost, Path: "/auth/logout"},
		{Method: fiber.MethodGet, Path: "/auth/me"},
	},
}

// Feature is the authentication module.
type Feature struct {
	handler *Handler
}

// NewFeature creates the authentication feature.
func NewFeature(users *usuarios.Service, store session.Store, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(users, store, logger.Named(PluginID))}
}

// OnLogout registers a hook run after a session is closed.
func (f *Feature) OnLogout(hook LogoutHook) {
	f.handler.hooks = append(f.handler.hooks, hook)
}

// Descriptor implements loader.Feature.
func (f *Feature) Descriptor() navigation.PluginDescriptor {
	return descriptor
}

// Handlers implements loader.Feature.
func (f *Feature) Handlers() map[string]fiber.Handler {
	return map[string]fiber.Handler{
		loader.Key(fiber.MethodPost, "/auth/login"):    f.handler.HandleLogin,
		loader.Key(fiber.MethodPost, "/auth/register"): f.handler.HandleRegister,
		loader.Key(fiber.MethodPost, "/auth/logout"):   f.handler.HandleLogout,
		loader.Key(fiber.MethodGet, "/auth/me"):        f.handler.HandleMe,
	}
}
