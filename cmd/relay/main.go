// Friendship Lights relay.
//
// A small HTTP service that lets a fixed set of family members control
// shared Govee smart plugs and a colour bulb. Each caller presents a bearer
// token; the relay maps it to a role, checks the role's permissions, and
// forwards the resulting commands to the Govee cloud API.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nerrad567/friendship-lights/internal/app"
	"github.com/nerrad567/friendship-lights/internal/infrastructure/config"
	"github.com/nerrad567/friendship-lights/internal/infrastructure/logging"
)

// Version information, set at build time via ldflags.
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

const defaultConfigPath = "configs/config.yaml"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run starts the relay and blocks until ctx is cancelled.
//
// Returns:
//   - error: nil on clean shutdown, or error describing failure
func run(ctx context.Context) error {
	log := logging.Default()
	log.Info("starting friendship lights relay",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	relay, err := app.Build(cfg, log, version, app.Options{})
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := relay.Close(); closeErr != nil {
			log.Error("error during shutdown", "error", closeErr)
		}
	}()

	if err := relay.HealthCheck(ctx); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}

	if err := relay.Server.Start(ctx); err != nil {
		return fmt.Errorf("starting API server: %w", err)
	}

	log.Info("initialisation complete, waiting for shutdown signal")
	<-ctx.Done()
	log.Info("shutdown signal received, cleaning up")

	return nil
}

// getConfigPath returns FRIENDSHIP_CONFIG if set, otherwise the default.
// A missing default file is not an error; see config.Load.
func getConfigPath() string {
	if path := os.Getenv("FRIENDSHIP_CONFIG"); path != "" {
		return path
	}
	if _, err := os.Stat(defaultConfigPath); err != nil {
		return ""
	}
	return defaultConfigPath
}
