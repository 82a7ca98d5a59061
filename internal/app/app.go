package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/nerrad567/friendship-lights/internal/action"
	"github.com/nerrad567/friendship-lights/internal/api"
	"github.com/nerrad567/friendship-lights/internal/auth"
	"github.com/nerrad567/friendship-lights/internal/device"
	"github.com/nerrad567/friendship-lights/internal/govee"
	"github.com/nerrad567/friendship-lights/internal/infrastructure/config"
	"github.com/nerrad567/friendship-lights/internal/infrastructure/influxdb"
	"github.com/nerrad567/friendship-lights/internal/infrastructure/logging"
	"github.com/nerrad567/friendship-lights/internal/infrastructure/mqtt"
)

// App is a fully wired relay.
type App struct {
	Server *api.Server

	mqtt   *mqtt.Client
	influx *influxdb.Client
	log    *logging.Logger
}

// Options overrides parts of the stack. Zero values mean the defaults.
type Options struct {
	// Controller replaces the Govee client.
	Controller device.Controller

	// Delayer replaces the real signal timer.
	Delayer action.Delayer
}

// Build wires every component named in cfg.
//
// The MQTT and InfluxDB sinks are connected only when enabled; a failure to
// reach an enabled sink is returned as an error.
//
// Returns:
//   - *App: Ready to serve; call Close when done
//   - error: If a sink cannot be reached or the server cannot be built
func Build(cfg *config.Config, log *logging.Logger, version string, opts Options) (*App, error) {
	a := &App{log: log}

	ctrl := opts.Controller
	if ctrl == nil {
		client := govee.NewClient(cfg.Govee)
		client.SetLogger(log.With("component", "govee"))
		ctrl = client
	}

	op := device.NewOperator(ctrl, device.DefaultRegistry(), device.DefaultColors())
	handlers := action.NewHandlers(op)
	handlers.SetLogger(log.With("component", "actions"))
	if opts.Delayer != nil {
		handlers.SetDelayer(opts.Delayer)
	}

	perms := auth.LoadPermissions(cfg.Tokens)
	log.Info("permission table loaded", "tokens", perms.Len(), "roles", perms.Roles())

	observers, err := a.connectSinks(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}

	srv, err := api.New(api.Deps{
		Config:      cfg.API,
		Logger:      log.With("component", "api"),
		Permissions: perms,
		Handlers:    handlers,
		Observers:   observers,
		Version:     version,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("creating API server: %w", err)
	}
	a.Server = srv

	return a, nil
}

// connectSinks connects the optional event sinks and returns their observers.
func (a *App) connectSinks(cfg *config.Config) ([]api.ActionObserver, error) {
	var observers []api.ActionObserver

	if cfg.MQTT.Enabled {
		client, err := mqtt.Connect(cfg.MQTT)
		if err != nil {
			return nil, fmt.Errorf("connecting to MQTT: %w", err)
		}
		client.SetLogger(a.log.With("component", "mqtt"))
		client.SetOnConnect(func() {
			a.log.Info("MQTT reconnected")
		})
		client.SetOnDisconnect(func(err error) {
			a.log.Warn("MQTT disconnected", "error", err)
		})
		a.mqtt = client
		observers = append(observers, mqttObserver(client, a.log))
		a.log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)
	} else {
		a.log.Info("MQTT disabled")
	}

	if cfg.InfluxDB.Enabled {
		client, err := influxdb.Connect(cfg.InfluxDB)
		if err != nil {
			return nil, fmt.Errorf("connecting to InfluxDB: %w", err)
		}
		client.SetOnError(func(err error) {
			a.log.Error("InfluxDB write error", "error", err)
		})
		a.influx = client
		observers = append(observers, influxObserver(client))
		a.log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"org", cfg.InfluxDB.Org,
			"bucket", cfg.InfluxDB.Bucket,
		)
	} else {
		a.log.Info("InfluxDB disabled")
	}

	return observers, nil
}

// HealthCheck verifies every connected sink.
func (a *App) HealthCheck(ctx context.Context) error {
	if a.mqtt != nil {
		if err := a.mqtt.HealthCheck(ctx); err != nil {
			return fmt.Errorf("mqtt: %w", err)
		}
	}
	if a.influx != nil {
		if err := a.influx.HealthCheck(ctx); err != nil {
			return fmt.Errorf("influxdb: %w", err)
		}
	}
	return nil
}

// Close shuts down the server and the sinks, in that order, so the last
// events still reach the sinks.
func (a *App) Close() error {
	var errs []error

	if a.Server != nil {
		if err := a.Server.Close(); err != nil {
			errs = append(errs, fmt.Errorf("api: %w", err))
		}
	}
	if a.influx != nil {
		a.log.Info("closing InfluxDB connection")
		if err := a.influx.Close(); err != nil {
			errs = append(errs, fmt.Errorf("influxdb: %w", err))
		}
	}
	if a.mqtt != nil {
		a.log.Info("disconnecting from MQTT")
		if err := a.mqtt.Close(); err != nil {
			errs = append(errs, fmt.Errorf("mqtt: %w", err))
		}
	}

	return errors.Join(errs...)
}
