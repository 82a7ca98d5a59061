// Package device holds the static device and colour tables and the
// device operations built on the vendor control client.
//
// # Key Types
//
//   - Entry: a logical device name mapped to a vendor SKU and device ID
//   - Registry: the immutable, ordered set of entries
//   - ColorTable: symbolic colour names mapped to packed RGB values
//   - Operator: TurnOn, TurnOff and SetBulbColor on top of a Controller
//
// # Usage
//
//	registry := device.DefaultRegistry()
//	op := device.NewOperator(goveeClient, registry, device.DefaultColors())
//	if err := op.TurnOn(ctx, device.DaughterOutlet); err != nil {
//	    return err
//	}
//
// # Thread Safety
//
// Registry and ColorTable are never mutated after construction and are safe
// to share. Operator holds no state of its own.
package device
