package device

import (
	"context"
	"fmt"

	"github.com/nerrad567/friendship-lights/internal/govee"
)

// Controller issues a single capability command to a vendor device.
// *govee.Client satisfies it.
type Controller interface {
	ControlDevice(ctx context.Context, sku, deviceID string, capability govee.Capability) error
}

// Operator runs device-level operations against the registry.
type Operator struct {
	ctrl     Controller
	registry *Registry
	colors   *ColorTable
	bulb     string
}

// NewOperator creates an Operator. The colour bulb is DaughterBulb.
func NewOperator(ctrl Controller, registry *Registry, colors *ColorTable) *Operator {
	return &Operator{
		ctrl:     ctrl,
		registry: registry,
		colors:   colors,
		bulb:     DaughterBulb,
	}
}

// Registry returns the registry the operator resolves names against.
func (o *Operator) Registry() *Registry {
	return o.registry
}

// Colors returns the operator's colour table.
func (o *Operator) Colors() *ColorTable {
	return o.colors
}

// TurnOn switches a device on.
// Returns ErrDeviceNotFound without any vendor call if name is unknown.
func (o *Operator) TurnOn(ctx context.Context, name string) error {
	return o.power(ctx, name, true)
}

// TurnOff switches a device off.
// Returns ErrDeviceNotFound without any vendor call if name is unknown.
func (o *Operator) TurnOff(ctx context.Context, name string) error {
	return o.power(ctx, name, false)
}

func (o *Operator) power(ctx context.Context, name string, on bool) error {
	entry, err := o.registry.Lookup(name)
	if err != nil {
		return err
	}
	return o.ctrl.ControlDevice(ctx, entry.SKU, entry.DeviceID, govee.PowerSwitch(on))
}

// SetBulbColor powers the bulb on, then sets its colour.
//
// The colour-set call is only made after the power-on call succeeds; a
// power-on failure is returned as is.
func (o *Operator) SetBulbColor(ctx context.Context, color string) error {
	rgb, err := o.colors.RGB(color)
	if err != nil {
		return err
	}

	entry, err := o.registry.Lookup(o.bulb)
	if err != nil {
		return fmt.Errorf("resolving bulb: %w", err)
	}

	if err := o.ctrl.ControlDevice(ctx, entry.SKU, entry.DeviceID, govee.PowerSwitch(true)); err != nil {
		return err
	}

	return o.ctrl.ControlDevice(ctx, entry.SKU, entry.DeviceID, govee.ColorRGB(rgb))
}
