// Package govee is the device-control client for the Govee OpenAPI.
//
// A single call sends one capability command (type, instance, value) to one
// device and interprets the vendor's response code:
//
//	client := govee.NewClient(cfg.Govee)
//	err := client.ControlDevice(ctx, "H5086", "08:BF:5C:E7:53:3D:45:10", govee.PowerSwitch(true))
//
// Every call carries a fresh request ID. Calls are attempted exactly once;
// there is no retry or backoff. A non-success vendor code is reported as
// *APIError whose message is the vendor's own text, while transport and
// decoding failures wrap ErrRequestFailed and ErrInvalidResponse.
//
// Thread Safety: Client is safe for concurrent use.
package govee
