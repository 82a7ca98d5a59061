package device

import (
	"fmt"
	"sort"
)

// Symbolic colour names accepted by the signal action.
const (
	ColorRed  = "red"
	ColorBlue = "blue"
)

// PackRGB packs 8-bit channels as R<<16 | G<<8 | B.
func PackRGB(r, g, b uint8) int {
	return int(r)<<16 | int(g)<<8 | int(b)
}

// ColorTable maps colour names to packed RGB values. It is never mutated.
type ColorTable struct {
	values map[string]int
}

// NewColorTable copies values into a new table.
func NewColorTable(values map[string]int) *ColorTable {
	t := &ColorTable{values: make(map[string]int, len(values))}
	for k, v := range values {
		t.values[k] = v
	}
	return t
}

// DefaultColors returns the colours the bulb signal uses.
func DefaultColors() *ColorTable {
	return NewColorTable(map[string]int{
		ColorRed:  PackRGB(0xFF, 0x00, 0x00),
		ColorBlue: PackRGB(0x00, 0x00, 0xFF),
	})
}

// RGB returns the packed value for name.
func (t *ColorTable) RGB(name string) (int, error) {
	v, ok := t.values[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownColor, name)
	}
	return v, nil
}

// Has reports whether name is a known colour.
func (t *ColorTable) Has(name string) bool {
	_, ok := t.values[name]
	return ok
}

// Names returns the colour names sorted alphabetically.
func (t *ColorTable) Names() []string {
	names := make([]string, 0, len(t.values))
	for k := range t.values {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
