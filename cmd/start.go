package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"redelex-panel/core/config"
	"redelex-panel/core/database"
	"redelex-panel/core/export"
	"redelex-panel/core/logger"
	"redelex-panel/core/redelex"
	"redelex-panel/core/session"
	"redelex-panel/core/storage"
	inmobiliariasmodels "redelex-panel/feature/inmobiliarias/models"
	usuariosmodels "redelex-panel/feature/usuarios/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title Redelex Panel API
// @version 1.0
// @description Backend of the Redelex administrative panel.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the panel server",
	Long:  `Starts the HTTP server and registers all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if !cfg.Server.IsValidEnvironment() {
			return fmt.Errorf("invalid environment: %s", cfg.Server.Environment)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)
		logg = logg.With(zap.String("env", cfg.Server.Environment))

		// 3. Connect to Database
		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}
		if err := database.Migrate(db, &usuariosmodels.Usuario{}, &inmobiliariasmodels.Inmobiliaria{}); err != nil {
			return err
		}
		logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

		// 4. Session Store
		redisClient := session.NewClient(cfg.Session)
		defer redisClient.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logg.Warn("Session store not reachable yet", zap.String("addr", cfg.Session.Addr), zap.Error(err))
		}
		cancel()
		sessions := session.NewRedisStore(redisClient, cfg.Session)

		// 5. Report Archive (Optional)
		var archive *export.Archive
		if cfg.Storage.Enabled {
			client, err := storage.NewClient(cfg.Storage)
			if err != nil {
				return fmt.Errorf("failed to create storage client: %w", err)
			}
			a := export.NewArchive(client, cfg.Storage.Bucket, logg.Named("archive"))
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			err = a.Ensure(ctx)
			cancel()
			if err != nil {
				logg.Warn("Report archive disabled", zap.Error(err))
			} else {
				archive = a
			}
		}

		// 6. Features
		api := redelex.New(cfg.Redelex)
		comp := compose(components{
			db:       db,
			sessions: sessions,
			archive:  archive,
			redelex:  api,
			logger:   logg,
		})

		app, err := newApp(cfg.Server, comp, sessions, logg)
		if err != nil {
			return err
		}

		// 7. Background Jobs
		scheduler, err := startJobs(maintenanceJobs(archive, cfg.Storage.RetentionDays, api, logg.Named("jobs")), logg)
		if err != nil {
			return fmt.Errorf("failed to schedule jobs: %w", err)
		}
		defer scheduler.Stop()

		// 8. Serve until a signal arrives or the listener fails
		sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		g, gctx := errgroup.WithContext(sigCtx)

		g.Go(func() error {
			comp.shell.Run(gctx)
			return nil
		})
		g.Go(func() error {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			logg.Info("Shutting down server...")
			return app.ShutdownWithTimeout(10 * time.Second)
		})

		return g.Wait()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
