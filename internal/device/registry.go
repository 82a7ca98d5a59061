package device

import (
	"fmt"
)

// Logical device names.
const (
	NathanOutlet       = "nathan_outlet"
	GirlfriendOutlet   = "girlfriend_outlet"
	GrandparentsOutlet = "grandparents_outlet"
	DaughterOutlet     = "daughter_outlet"
	DaughterBulb       = "daughter_bulb"
)

// Vendor SKUs of the installed hardware.
const (
	SKUSmartPlug = "H5086"
	SKUBulb      = "H6008"
)

// Entry maps a logical device name to its vendor identity.
type Entry struct {
	Name     string `json:"name" yaml:"name"`
	SKU      string `json:"sku" yaml:"sku"`
	DeviceID string `json:"device_id" yaml:"device_id"`
}

// defaultEntries is the installed hardware, in the order all_off visits it.
var defaultEntries = []Entry{
	{Name: NathanOutlet, SKU: SKUSmartPlug, DeviceID: "06:5E:5C:E7:53:3D:09:2E"},
	{Name: GirlfriendOutlet, SKU: SKUSmartPlug, DeviceID: "06:BD:5C:E7:53:42:C1:AE"},
	{Name: GrandparentsOutlet, SKU: SKUSmartPlug, DeviceID: "09:1F:5C:E7:53:60:A1:5E"},
	{Name: DaughterOutlet, SKU: SKUSmartPlug, DeviceID: "08:BF:5C:E7:53:3D:45:10"},
	{Name: DaughterBulb, SKU: SKUBulb, DeviceID: "2D:B8:98:17:3C:C6:09:A8"},
}

// Registry is an immutable, ordered lookup from logical name to Entry.
type Registry struct {
	entries []Entry
	byName  map[string]Entry
}

// NewRegistry builds a registry from entries, preserving their order.
// Returns ErrDeviceExists on a duplicate name and ErrInvalidDevice on an
// incomplete entry.
func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make([]Entry, 0, len(entries)),
		byName:  make(map[string]Entry, len(entries)),
	}

	for _, e := range entries {
		if e.Name == "" || e.SKU == "" || e.DeviceID == "" {
			return nil, fmt.Errorf("%w: %+v", ErrInvalidDevice, e)
		}
		if _, dup := r.byName[e.Name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDeviceExists, e.Name)
		}
		r.entries = append(r.entries, e)
		r.byName[e.Name] = e
	}

	return r, nil
}

// DefaultRegistry returns the registry of installed hardware.
func DefaultRegistry() *Registry {
	r, err := NewRegistry(defaultEntries...)
	if err != nil {
		panic(fmt.Sprintf("device: default registry: %v", err))
	}
	return r
}

// Lookup returns the entry for a logical name.
func (r *Registry) Lookup(name string) (Entry, error) {
	e, ok := r.byName[name]
	if !ok {
		return Entry{}, fmt.Errorf("%w: %s", ErrDeviceNotFound, name)
	}
	return e, nil
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// Names returns every logical name in registry order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Len returns the number of registered devices.
func (r *Registry) Len() int {
	return len(r.entries)
}
