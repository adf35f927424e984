package access

import (
	"slices"

	"redelex-panel/core/logger"
	"redelex-panel/core/navigation"
	"redelex-panel/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Filter turns guard decisions into HTTP responses and trims menus to what
// a user may see.
type Filter struct {
	logger *zap.Logger
}

// NewFilter creates an access filter.
func NewFilter(logger *zap.Logger) *Filter {
	return &Filter{logger: logger}
}

// Guard returns middleware enforcing rule on the session user.
func (f *Filter) Guard(rule Rule) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := Evaluate(session.Current(c), rule)
		switch d.State {
		case Allowed:
			return c.Next()
		case Unauthenticated:
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error":    "unauthenticated",
				"message":  d.Message,
				"redirect": d.Redirect,
			})
		default:
			logger.WithRayID(f.logger, c).Warn("Access denied",
				zap.String("path", c.Path()),
				zap.Strings("roles", rule.Roles),
				zap.Strings("permissions", rule.Permissions))
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error":    "forbidden",
				"message":  d.Message,
				"redirect": d.Redirect,
			})
		}
	}
}

// CanSee reports whether item is visible to user.
func CanSee(user *session.User, item navigation.MenuItem) bool {
	if !item.IsEnabled() {
		return false
	}
	if len(item.Roles) > 0 && (user == nil || !slices.Contains(item.Roles, user.Role)) {
		return false
	}
	if len(item.Permissions) > 0 && !CheckPermission(user, item.Permissions).Allowed() {
		return false
	}
	return true
}

// VisibleSections returns the sections with only the items user may see.
// Sections left without items are dropped.
func VisibleSections(sections []navigation.MenuSection, user *session.User) []navigation.MenuSection {
	out := make([]navigation.MenuSection, 0, len(sections))
	for _, s := range sections {
		items := make([]navigation.MenuItem, 0, len(s.Items))
		for _, it := range s.Items {
			if CanSee(user, it) {
				items = append(items, it)
			}
		}
		if len(items) == 0 {
			continue
		}
		s.Items = items
		out = append(out, s)
	}
	return out
}
