package cmd

import (
	"strings"

	"redelex-panel/core/access"
	"redelex-panel/core/export"
	"redelex-panel/core/loader"
	"redelex-panel/core/logger"
	authmw "redelex-panel/core/middleware/auth"
	"redelex-panel/core/middleware/rayid"
	"redelex-panel/core/navigation"
	"redelex-panel/core/server"
	"redelex-panel/core/session"
	"redelex-panel/feature/auth"
	"redelex-panel/feature/inmobiliarias"
	"redelex-panel/feature/panel"
	"redelex-panel/feature/procesos"
	"redelex-panel/feature/reportes"
	"redelex-panel/feature/usuarios"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "redelex-panel/docs/swagger"
)

// components are the shared services the features are built on.
type components struct {
	db       *gorm.DB
	sessions session.Store
	archive  *export.Archive
	redelex  procesos.Source
	logger   *zap.Logger
}

// composition is the result of registering every feature.
type composition struct {
	registry *navigation.Registry
	manager  *loader.Manager
	shell    *panel.Shell
}

// compose builds the features and registers them in menu order.
func compose(c components) composition {
	registry := navigation.NewRegistry(c.logger.Named("navigation"))
	mgr := loader.NewManager(registry, access.NewFilter(c.logger.Named("access")), c.logger)

	users := usuarios.NewFeature(c.db, c.archive, c.logger)
	authFeature := auth.NewFeature(users.Service(), c.sessions, c.logger)
	shellFeature := panel.NewFeature(registry, c.logger)
	authFeature.OnLogout(shellFeature.Shell().Forget)

	mgr.Register(authFeature)
	mgr.Register(procesos.NewFeature(c.redelex, c.archive, c.logger))
	mgr.Register(users)
	mgr.Register(inmobiliarias.NewFeature(c.db, c.archive, c.logger))
	mgr.Register(reportes.NewFeature(c.archive, c.logger))
	mgr.Register(shellFeature)

	return composition{registry: registry, manager: mgr, shell: shellFeature.Shell()}
}

// credentialRoutes accept requests that still carry an old bearer token.
var credentialRoutes = map[string]bool{
	"/auth/login":    true,
	"/auth/register": true,
}

// newApp builds the Fiber app with the middleware chain and every accepted
// feature mounted.
func newApp(cfg server.Config, comp composition, sessions session.Store, logg *zap.Logger) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		AppName:               "redelex-panel",
	})

	// RayID first so every later log line carries it.
	app.Use(rayid.New())
	app.Use(recover.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  strings.ReplaceAll(cfg.CorsOrigins, " ", ""),
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, X-Ray-ID",
		ExposeHeaders: "Content-Disposition, X-Report-Object, X-Ray-ID",
	}))

	if !cfg.IsProduction() {
		app.Get("/swagger/*", swagger.HandlerDefault)
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Use(authmw.New(authmw.Config{
		Store:      sessions,
		Logger:     logg.Named("auth"),
		LoginRoute: access.LoginRoute,
		Next: func(c *fiber.Ctx) bool {
			return credentialRoutes[c.Path()]
		},
		OnExpired: func(token string) {
			comp.shell.Forget(token)
			logg.Debug("Dropped expired session", zap.Int("sessions", comp.shell.Sessions()))
		},
	}))

	if err := comp.manager.LoadAll(app); err != nil {
		return nil, err
	}
	return app, nil
}
