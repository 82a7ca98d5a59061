package action

import (
	"context"
	"strings"
	"time"

	"github.com/nerrad567/friendship-lights/internal/device"
	"github.com/nerrad567/friendship-lights/internal/infrastructure/config"
)

// Logger defines the logging interface used by Handlers.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// Handlers runs actions against the installed devices.
type Handlers struct {
	op      *device.Operator
	delayer Delayer
	delay   time.Duration
	logger  Logger
}

// NewHandlers creates Handlers that wait config.SignalDelay on a real timer.
func NewHandlers(op *device.Operator) *Handlers {
	return &Handlers{
		op:      op,
		delayer: TimerDelayer{},
		delay:   config.SignalDelay,
		logger:  noopLogger{},
	}
}

// SetLogger sets the logger for the handlers.
func (h *Handlers) SetLogger(logger Logger) {
	h.logger = logger
}

// SetDelayer replaces the signal delay primitive.
func (h *Handlers) SetDelayer(d Delayer) {
	h.delayer = d
}

// KnownTarget reports whether target is a registered device.
func (h *Handlers) KnownTarget(target string) bool {
	return h.op.Registry().Has(target)
}

// KnownColor reports whether color is in the colour table.
func (h *Handlers) KnownColor(color string) bool {
	return h.op.Colors().Has(color)
}

// PlugOn powers on target.
func (h *Handlers) PlugOn(ctx context.Context, target string) Result {
	if !h.KnownTarget(target) {
		return UnknownTarget(target)
	}

	if err := h.op.TurnOn(ctx, target); err != nil {
		h.logger.Warn("plug_on failed", "target", target, "error", err)
		return Failure("%s", err.Error())
	}

	h.logger.Info("plug_on complete", "target", target)
	return Success()
}

// DaughterSignal turns on the daughter's outlet, waits, then lights the bulb
// in color. The bulb is never touched if the outlet step fails.
func (h *Handlers) DaughterSignal(ctx context.Context, color string) Result {
	if !h.KnownColor(color) {
		return InvalidColor(color)
	}

	if err := h.op.TurnOn(ctx, device.DaughterOutlet); err != nil {
		h.logger.Warn("daughter_signal outlet step failed", "error", err)
		return Failure("Failed to turn on outlet: %s", err.Error())
	}

	h.logger.Debug("daughter_signal waiting", "delay", h.delay)
	h.delayer.Wait(h.delay)

	if err := h.op.SetBulbColor(ctx, color); err != nil {
		h.logger.Warn("daughter_signal bulb step failed", "color", color, "error", err)
		return Failure("Failed to set bulb: %s", err.Error())
	}

	h.logger.Info("daughter_signal complete", "color", color)
	return Success()
}

// AllOff powers off every registered device, continuing past failures.
func (h *Handlers) AllOff(ctx context.Context) Result {
	var failures []string

	for _, name := range h.op.Registry().Names() {
		if err := h.op.TurnOff(ctx, name); err != nil {
			h.logger.Warn("all_off device failed", "device", name, "error", err)
			failures = append(failures, name+": "+err.Error())
		}
	}

	if len(failures) > 0 {
		return Failure("%s", strings.Join(failures, "; "))
	}

	h.logger.Info("all_off complete")
	return Success()
}

// UnknownTarget is the result for a target that is not registered.
func UnknownTarget(target string) Result {
	return Failure("Unknown target: %s", target)
}

// InvalidColor is the result for a colour outside the colour table.
func InvalidColor(color string) Result {
	return Failure("Invalid color: %s. Must be 'red' or 'blue'.", color)
}
