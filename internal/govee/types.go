package govee

// SuccessCode is the vendor response code for an accepted command.
const SuccessCode = 200

// Capability types and instances used by the relay.
const (
	CapabilityOnOff        = "devices.capabilities.on_off"
	CapabilityColorSetting = "devices.capabilities.color_setting"

	InstancePowerSwitch = "powerSwitch"
	InstanceColorRGB    = "colorRgb"
)

// Capability is one vendor-defined unit of control.
type Capability struct {
	Type     string `json:"type"`
	Instance string `json:"instance"`
	Value    int    `json:"value"`
}

// PowerSwitch returns the on/off capability.
func PowerSwitch(on bool) Capability {
	value := 0
	if on {
		value = 1
	}
	return Capability{Type: CapabilityOnOff, Instance: InstancePowerSwitch, Value: value}
}

// ColorRGB returns the colour capability for a packed R<<16|G<<8|B value.
func ColorRGB(rgb int) Capability {
	return Capability{Type: CapabilityColorSetting, Instance: InstanceColorRGB, Value: rgb}
}

// controlRequest is the body of a device-control call.
type controlRequest struct {
	RequestID string         `json:"requestId"`
	Payload   controlPayload `json:"payload"`
}

type controlPayload struct {
	SKU        string     `json:"sku"`
	Device     string     `json:"device"`
	Capability Capability `json:"capability"`
}

// controlResponse is the subset of the vendor response the relay reads.
type controlResponse struct {
	Code    *int   `json:"code"`
	Message string `json:"message"`
}
