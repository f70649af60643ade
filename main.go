package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Modassir22/dream-home-hub/config"
	"github.com/Modassir22/dream-home-hub/global"
	"github.com/Modassir22/dream-home-hub/repositories"
	"github.com/Modassir22/dream-home-hub/routes"
	"github.com/Modassir22/dream-home-hub/services"
	"github.com/Modassir22/dream-home-hub/utils/redislog"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load() // optional .env; APP_* variables feed viper

	rootCmd := &cobra.Command{
		Use:   "dreamhome",
		Short: "DreamHome plot marketplace API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
	rootCmd.AddCommand(serveCmd(), seedAdminCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func seedAdminCmd() *cobra.Command {
	var username, password, email string
	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the admin account if it does not exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if username == "" {
				username = cfg.AdminUsername
			}
			if password == "" {
				password = cfg.AdminPassword
			}
			if email == "" {
				email = cfg.AdminEmail
			}

			db := config.InitDB(cfg)
			defer closeDB(db)

			auth := services.NewAuthService(repositories.NewUserRepository(db), nil, nil, cfg.JWTSecret, cfg.JWTExpiry)
			u, created, err := auth.SeedAdmin(username, password, email)
			if err != nil {
				return err
			}
			if created {
				log.Printf("[seed] admin %q created (id=%d)", u.Username, u.ID)
			} else {
				log.Printf("[seed] admin %q already exists, nothing to do", u.Username)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&username, "username", "", "admin username (default admin_username)")
	cmd.Flags().StringVar(&password, "password", "", "admin password (default admin_password)")
	cmd.Flags().StringVar(&email, "email", "", "admin email (default admin_email)")
	return cmd
}

func serve() error {
	// 1) Load config from file and/or env
	cfg := config.Load()
	log.Printf("[boot] %s %s starting in %s on :%s", cfg.AppName, global.AppVersion, cfg.Env, cfg.HTTPPort)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// 2) Infrastructure: DB (migrated) and optional Redis.
	db := config.InitDB(cfg)
	defer closeDB(db)
	rdb := config.InitRedis(cfg)
	if rdb != nil {
		defer rdb.Close()
	}

	// 3) Redis audit log (list key: logs:app); a no-op without Redis.
	rlog := redislog.New(rdb, "logs:app", 1000, 7*24*time.Hour)
	rlog.Info("app boot", map[string]string{
		"env":   cfg.Env,
		"port":  cfg.HTTPPort,
		"db":    cfg.DBDriver,
		"redis": cfg.RedisAddr,
	})

	// 4) Repositories and services (dependency injection).
	userRepo := repositories.NewUserRepository(db)
	plotRepo := repositories.NewPlotRepository(db)
	svcs := routes.Services{
		Auth:         services.NewAuthService(userRepo, rdb, rlog, cfg.JWTSecret, cfg.JWTExpiry),
		Plots:        services.NewPlotService(plotRepo, rlog),
		Team:         services.NewTeamService(repositories.NewTeamRepository(db), rlog),
		Testimonials: services.NewTestimonialService(repositories.NewTestimonialRepository(db), rlog),
		Site:         services.NewSiteService(repositories.NewSiteRepository(db), rlog),
		Wishlist:     services.NewWishlistService(repositories.NewWishlistRepository(db), plotRepo, rlog),
		Upload:       services.NewUploadService(cfg.UploadDir, cfg.UploadPublicPath, rlog),
	}

	// 5) Gin engine without default middleware; routes.Setup adds ours.
	r := gin.New()
	_ = r.SetTrustedProxies(nil) // trust none
	r.MaxMultipartMemory = cfg.UploadMaxBytes
	routes.Setup(r, svcs, routes.Options{
		JWTSecret:        cfg.JWTSecret,
		CORSOrigins:      cfg.CORSOrigins,
		UploadDir:        cfg.UploadDir,
		UploadPublicPath: cfg.UploadPublicPath,
		UploadMaxBytes:   cfg.UploadMaxBytes,
		ShowStack:        !cfg.IsProduction(),
		DB:               db,
		Redis:            rdb,
		Log:              rlog,
	})

	// 6) Serve until SIGINT/SIGTERM, then drain in-flight requests.
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		rlog.Info("http server start", map[string]string{"port": cfg.HTTPPort})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			rlog.Error("http server error", map[string]string{"err": err.Error()})
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("[boot] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	rlog.Info("http server stopped", nil)
	log.Printf("[boot] server exited gracefully")
	return nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
