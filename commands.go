package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"menu-server/internal/config"
	"menu-server/internal/consts"
	"menu-server/internal/db"
	"menu-server/internal/di"
	"menu-server/internal/logging"
	"menu-server/internal/modules"
	"menu-server/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var configDir string

	rootCmd := &cobra.Command{
		Use:           consts.ApplicationName,
		Short:         "Restaurant menu backend: dish CRUD with image uploads",
		Version:       consts.ApplicationVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configDir)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "config", "Directory containing config.yaml")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(configDir)
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create or update the dishes table and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(configDir)
		},
	})

	var out string
	routesCmd := &cobra.Command{
		Use:   "routes",
		Short: "Export the registered routes as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configDir)
			if err != nil {
				return err
			}
			if err := exportRoutes(buildEngine(cfg), out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "routes written to %s\n", out)
			return nil
		},
	}
	routesCmd.Flags().StringVar(&out, "out", "routes.json", "Output file")
	rootCmd.AddCommand(routesCmd)

	return rootCmd
}

// loadConfig reads the configuration and installs the process-wide logger.
func loadConfig(configDir string) (*config.Config, error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}
	slog.SetDefault(logging.New(os.Stdout, logging.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, AddSource: cfg.Log.AddSource}))
	gin.SetMode(cfg.Server.Mode)
	return cfg, nil
}

func runServe(configDir string) error {
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	if err := config.CheckUploadPath(cfg.Upload.Path); err != nil {
		return err
	}

	app, cleanup, err := di.InitializeApplication(cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	defer app.Router.Close()

	r := gin.New()
	app.Router.Init(r)

	printWelcomeMessage(cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("server started", "addr", srv.Addr, "public_base_url", cfg.Server.PublicBaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeoutSeconds)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forced shutdown: %w", err)
	}
	slog.Info("server stopped")
	return nil
}

func runMigrate(configDir string) error {
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	gdb, err := db.Open(cfg.Database, cfg.Server.Mode)
	if err != nil {
		return err
	}
	return db.Close(gdb)
}

// buildEngine mounts every route without touching the database or upload
// directory. The handlers are never invoked.
func buildEngine(cfg *config.Config) *gin.Engine {
	rt := router.NewRouter(modules.New(cfg, nil, nil), cfg)
	defer rt.Close()

	r := gin.New()
	rt.Init(r)
	return r
}

type routeInfo struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Handler string `json:"handler"`
}

func exportRoutes(r *gin.Engine, out string) error {
	routes := r.Routes()
	exportList := make([]routeInfo, 0, len(routes))
	for _, route := range routes {
		exportList = append(exportList, routeInfo{
			Method:  route.Method,
			Path:    route.Path,
			Handler: route.Handler,
		})
	}

	data, err := json.MarshalIndent(exportList, "", "  ")
	if err != nil {
		return fmt.Errorf("encode routes: %w", err)
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	return nil
}

func printWelcomeMessage(cfg *config.Config) {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   %s\n", consts.ApplicationName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   version  : %s\n", consts.ApplicationVersion)
	fmt.Printf(" │   port     : %s\n", cfg.Server.Port)
	fmt.Printf(" │   database : %s\n", cfg.Database.Type)
	fmt.Printf(" │   uploads  : %s -> %s\n", cfg.Upload.Path, cfg.Upload.URLPrefix)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}
