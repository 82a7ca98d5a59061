package device

import (
	"errors"
	"testing"
)

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()

	want := []string{NathanOutlet, GirlfriendOutlet, GrandparentsOutlet, DaughterOutlet, DaughterBulb}
	got := r.Names()
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if r.Len() != 5 {
		t.Errorf("Len() = %d, want 5", r.Len())
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := DefaultRegistry()

	bulb, err := r.Lookup(DaughterBulb)
	if err != nil {
		t.Fatalf("Lookup(%q) error = %v", DaughterBulb, err)
	}
	if bulb.SKU != SKUBulb || bulb.DeviceID != "2D:B8:98:17:3C:C6:09:A8" {
		t.Errorf("Lookup(%q) = %+v", DaughterBulb, bulb)
	}

	_, err = r.Lookup("kitchen_outlet")
	if !errors.Is(err, ErrDeviceNotFound) {
		t.Errorf("Lookup(unknown) error = %v, want ErrDeviceNotFound", err)
	}

	if r.Has("kitchen_outlet") {
		t.Error("Has(unknown) = true")
	}
	if !r.Has(NathanOutlet) {
		t.Error("Has(nathan_outlet) = false")
	}
}

func TestNewRegistry_Errors(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		wantErr error
	}{
		{
			name: "duplicate name",
			entries: []Entry{
				{Name: "a", SKU: "H5086", DeviceID: "1"},
				{Name: "a", SKU: "H5086", DeviceID: "2"},
			},
			wantErr: ErrDeviceExists,
		},
		{
			name:    "missing sku",
			entries: []Entry{{Name: "a", DeviceID: "1"}},
			wantErr: ErrInvalidDevice,
		},
		{
			name:    "missing device id",
			entries: []Entry{{Name: "a", SKU: "H5086"}},
			wantErr: ErrInvalidDevice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.entries...)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewRegistry() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegistry_NamesIsACopy(t *testing.T) {
	r := DefaultRegistry()
	names := r.Names()
	names[0] = "mutated"

	if r.Names()[0] != NathanOutlet {
		t.Error("mutating Names() result changed the registry")
	}
}
