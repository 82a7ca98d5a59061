package govee

import (
	"errors"
	"fmt"
)

// Sentinel errors for device-control calls.
//
//	if errors.Is(err, govee.ErrRequestFailed) {
//	    // network-level failure, the vendor never answered
//	}
var (
	// ErrRequestFailed is returned when the HTTP round trip fails.
	ErrRequestFailed = errors.New("govee: request failed")

	// ErrInvalidResponse is returned when the vendor body cannot be decoded.
	ErrInvalidResponse = errors.New("govee: invalid response")
)

// APIError is a well-formed vendor response with a non-success code.
type APIError struct {
	Code    int
	Message string
}

// Error returns the vendor message unchanged so callers can surface it as is.
func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("govee error code %d", e.Code)
	}
	return e.Message
}
