package cli

import (
	"context"
	"crypto/rand"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/YoDarkol23/Absolute-Service/internal/handlers"
	"github.com/YoDarkol23/Absolute-Service/internal/server"
	"github.com/YoDarkol23/Absolute-Service/internal/store"
	"github.com/YoDarkol23/Absolute-Service/pkg/config"
	"github.com/YoDarkol23/Absolute-Service/pkg/logging"
	"github.com/YoDarkol23/Absolute-Service/pkg/pricing"
)

var (
	serveConfigPath string
	servePort       int
	serveAdminPort  int
	serveDataDir    string
	serveLogLevel   string
	serveLogFormat  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the car delivery server",
	Long: `Start the car delivery server.

By default clients are served on port 8080 and the admin API on port
8081. Settings come from a config file (--config), overridden by
flags.`,
	Example: `  # Start with defaults
  cardeliveryd serve

  # Start with a config file and custom data directory
  cardeliveryd serve --config cardelivery.yaml --data-dir /var/lib/cardelivery

  # Custom ports
  cardeliveryd serve --port 9080 --admin-port 9081`,
	RunE: runServe,
}

func init() {
	fl := serveCmd.Flags()
	fl.StringVarP(&serveConfigPath, "config", "c", "", "path to a YAML or JSON config file")
	fl.IntVarP(&servePort, "port", "p", 0, "client port (overrides config)")
	fl.IntVar(&serveAdminPort, "admin-port", 0, "admin port (overrides config)")
	fl.StringVar(&serveDataDir, "data-dir", "", "directory holding the entity data files")
	fl.StringVar(&serveLogLevel, "log-level", "", "log level: debug, info, warn, error")
	fl.StringVar(&serveLogFormat, "log-format", "", "log format: text or json")
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log := logging.New(logging.Config{
		Level:  logging.ParseLevel(cfg.Log.Level),
		Format: logging.ParseFormat(cfg.Log.Format),
	})
	log.Info("starting cardeliveryd",
		"version", buildInfo.Version,
		"dataDir", cfg.Storage.DataDir,
	)

	st := store.New(cfg.Storage.DataDir, log)
	api := handlers.New(st, pricing.Rates{
		USDToRUB:    cfg.Pricing.USDToRUB,
		EURToRUB:    cfg.Pricing.EURToRUB,
		CurrentYear: cfg.Pricing.CurrentYear,
	}, handlers.AuthConfig{
		Username: cfg.Admin.Username,
		Password: cfg.Admin.Password,
		Secret:   tokenSecret(cfg.Admin.TokenSecret),
	}, log)

	var listeners []server.ListenerConfig
	if cfg.Server.AdminPort > 0 {
		listeners = append(listeners,
			server.ListenerConfig{
				Name:    "client",
				Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
				Workers: cfg.Server.ClientWorkers,
				Routes:  api.ClientRoutes(),
			},
			server.ListenerConfig{
				Name:    "admin",
				Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.AdminPort),
				Workers: cfg.Server.AdminWorkers,
				Routes:  api.AdminRoutes(),
			},
		)
	} else {
		listeners = append(listeners, server.ListenerConfig{
			Name:    "client",
			Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Workers: cfg.Server.ClientWorkers,
			Routes:  api.CombinedRoutes(),
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(log, listeners...)
	if err := srv.Run(ctx); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	log.Info("server stopped")
	return nil
}

// loadConfig reads the config file when given and applies flag
// overrides on top.
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if serveConfigPath != "" {
		loaded, err := config.Load(serveConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if serveAdminPort != 0 {
		cfg.Server.AdminPort = serveAdminPort
	}
	if serveDataDir != "" {
		cfg.Storage.DataDir = serveDataDir
	}
	if serveLogLevel != "" {
		cfg.Log.Level = serveLogLevel
	}
	if serveLogFormat != "" {
		cfg.Log.Format = serveLogFormat
	}
	return cfg, nil
}

// tokenSecret returns the configured signing secret, or a random
// per-process one so login always works out of the box.
func tokenSecret(configured string) []byte {
	if configured != "" {
		return []byte(configured)
	}
	secret := make([]byte, 32)
	_, _ = rand.Read(secret)
	return secret
}
