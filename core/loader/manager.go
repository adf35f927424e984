package loader

import (
	"fmt"

	"redelex-panel/core/access"
	"redelex-panel/core/navigation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature is a panel module: a static descriptor plus the handlers for the
// routes it declares.
type Feature interface {
	// Descriptor returns the feature's plugin descriptor.
	Descriptor() navigation.PluginDescriptor
	// Handlers maps Key(method, path) to the handler of every declared route.
	Handlers() map[string]fiber.Handler
}

// Key identifies a declared route in a Handlers map.
func Key(method, path string) string {
	return method + " " + path
}

// Manager registers features in the navigation registry and mounts the
// routes of the accepted ones.
type Manager struct {
	registry *navigation.Registry
	filter   *access.Filter
	logger   *zap.Logger
	features []Feature
}

// NewManager creates a feature manager.
func NewManager(registry *navigation.Registry, filter *access.Filter, logger *zap.Logger) *Manager {
	return &Manager{registry: registry, filter: filter, logger: logger}
}

// Register offers f to the registry. Rejected features (disabled or with
// missing dependencies) are not mounted later. Returns whether f was accepted.
func (m *Manager) Register(f Feature) bool {
	if !m.registry.Register(f.Descriptor()) {
		return false
	}
	m.features = append(m.features, f)
	return true
}

// Features returns the accepted features in registration order.
func (m *Manager) Features() []Feature {
	return append([]Feature(nil), m.features...)
}

// LoadAll mounts every accepted feature's routes on router.
func (m *Manager) LoadAll(router fiber.Router) error {
	for _, f := range m.features {
		d := f.Descriptor()
		if err := Mount(router, m.filter, d, f.Handlers()); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", d.ID, err)
		}
		m.logger.Info("Feature loaded", zap.String("feature", d.ID), zap.Int("routes", len(d.Routes)))
	}
	return nil
}

// Mount registers every route declared by d, behind a guard built from the
// route's roles and permissions. A declared route without a handler is an error.
func Mount(router fiber.Router, filter *access.Filter, d navigation.PluginDescriptor, handlers map[string]fiber.Handler) error {
	for _, r := range d.Routes {
		h, ok := handlers[Key(r.Method, r.Path)]
		if !ok {
			return fmt.Errorf("no handler for %s %s", r.Method, r.Path)
		}
		if len(r.Roles) == 0 && len(r.Permissions) == 0 {
			router.Add(r.Method, r.Path, h)
			continue
		}
		router.Add(r.Method, r.Path, filter.Guard(access.Rule{Roles: r.Roles, Permissions: r.Permissions}), h)
	}
	return nil
}
