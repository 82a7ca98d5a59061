package device

import "errors"

// Domain errors for the device package.
//
//	if errors.Is(err, device.ErrDeviceNotFound) {
//	    // handle unknown logical name
//	}
var (
	// ErrDeviceNotFound is returned when a logical device name is not registered.
	ErrDeviceNotFound = errors.New("device: not found")

	// ErrDeviceExists is returned when a registry is built with a duplicate name.
	ErrDeviceExists = errors.New("device: already exists")

	// ErrInvalidDevice is returned when an entry is missing its SKU or identifier.
	ErrInvalidDevice = errors.New("device: invalid")

	// ErrUnknownColor is returned when a colour name is not in the colour table.
	ErrUnknownColor = errors.New("device: unknown color")
)
