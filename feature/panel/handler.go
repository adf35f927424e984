package panel

import (
	"redelex-panel/core/access"
	"redelex-panel/core/logger"
	"redelex-panel/core/navigation"
	"redelex-panel/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the panel chrome: menu, breadcrumb and plugin list.
type Handler struct {
	shell    *Shell
	registry *navigation.Registry
	logger   *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(shell *Shell, registry *navigation.Registry, logger *zap.Logger) *Handler {
	return &Handler{shell: shell, registry: registry, logger: logger}
}

type navigationEnd struct {
	URL string `json:"url"`
}

// HandleNavigation returns the menu visible to the session user.
// @Summary Navigation Menu
// @Tags panel
// @Produce json
// @Success 200 {array} navigation.MenuSection
// @Router /panel/navigation [get]
func (h *Handler) HandleNavigation(c *fiber.Ctx) error {
	user := session.Current(c)
	return c.JSON(fiber.Map{
		"user":     user,
		"home":     access.FallbackRoute(user.Role),
		"sections": access.VisibleSections(h.shell.MenuSections(), user),
	})
}

// HandleNavigationEnd records a completed navigation and returns the new
// breadcrumb.
// @Summary Navigation End
// @Tags panel
// @Accept json
// @Produce json
// @Param body body navigationEnd true "Reached URL"
// @Success 200 {array} navigation.Crumb
// @Router /panel/navigation/end [post]
func (h *Handler) HandleNavigationEnd(c *fiber.Ctx) error {
	var in navigationEnd
	if err := c.BodyParser(&in); err != nil || in.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "url es obligatoria"})
	}
	bc := h.shell.Tracker(session.Token(c)).NavigationEnd(in.URL)
	logger.WithUser(h.logger, c).Debug("Navigation end", zap.String("url", in.URL), zap.Int("crumbs", len(bc)))
	return c.JSON(bc)
}

// HandleBreadcrumb returns the last breadcrumb of the session.
// @Summary Breadcrumb
// @Tags panel
// @Produce json
// @Success 200 {array} navigation.Crumb
// @Router /panel/breadcrumb [get]
func (h *Handler) HandleBreadcrumb(c *fiber.Ctx) error {
	return c.JSON(h.shell.Tracker(session.Token(c)).Current())
}

// HandlePlugins lists the registered plugins.
// @Summary Plugins
// @Tags panel
// @Produce json
// @Success 200 {array} navigation.PluginDescriptor
// @Router /panel/plugins [get]
func (h *Handler) HandlePlugins(c *fiber.Ctx) error {
	return c.JSON(h.registry.EnabledPlugins())
}
