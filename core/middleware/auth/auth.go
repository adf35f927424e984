package auth

import (
	"errors"
	"strings"

	"redelex-panel/core/logger"
	"redelex-panel/core/session"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Config configures the bearer token middleware.
type Config struct {
	// Store resolves tokens to session users.
	Store session.Store
	// Logger receives rejected-token warnings.
	Logger *zap.Logger
	// LoginRoute is returned as redirect target when a token is rejected.
	LoginRoute string
	// Next skips the middleware when it returns true.
	Next func(c *fiber.Ctx) bool
	// OnExpired runs with a token whose session is gone, after it is cleared.
	OnExpired func(token string)
}

// New returns middleware that resolves the bearer token into a session user.
//
// Requests without an Authorization header pass through anonymously; route
// guards decide what anonymous users may reach. A token that does not map to
// a live session is removed from the store and answered with 401.
func New(cfg Config) fiber.Handler {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.LoginRoute == "" {
		cfg.LoginRoute = "/auth/login"
	}

	return func(c *fiber.Ctx) error {
		if cfg.Next != nil && cfg.Next(c) {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return c.Next()
		}

		token, ok := bearer(header)
		if !ok {
			return unauthorized(c, cfg.LoginRoute, "Cabecera de autorización inválida")
		}

		user, err := cfg.Store.Load(c.UserContext(), token)
		if err != nil {
			l := logger.WithRayID(cfg.Logger, c)
			if errors.Is(err, session.ErrSessionNotFound) {
				if delErr := cfg.Store.Delete(c.UserContext(), token); delErr != nil {
					l.Warn("Failed to clear rejected session", zap.Error(delErr))
				}
				if cfg.OnExpired != nil {
					cfg.OnExpired(token)
				}
				return unauthorized(c, cfg.LoginRoute, "Tu sesión ha expirado")
			}
			l.Error("Session store unavailable", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "session store unavailable",
			})
		}

		session.Attach(c, token, user)
		return c.Next()
	}
}

func bearer(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func unauthorized(c *fiber.Ctx, redirect, msg string) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":    "unauthorized",
		"message":  msg,
		"redirect": redirect,
	})
}
