package influxdb

import (
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api/write"
)

// MeasurementActions is the measurement every action point is written to.
const MeasurementActions = "relay_actions"

// WriteActionMetric records one dispatched action.
//
// The write is non-blocking; data is batched and sent asynchronously.
// It is a no-op when the client is not connected.
//
// Parameters:
//   - action: Action name, e.g. "all_off"
//   - role: Role of the caller, never the token
//   - outcome: "ok" or "error"
//   - duration: Wall time spent in the handler
//   - at: Point timestamp
func (c *Client) WriteActionMetric(action, role, outcome string, duration time.Duration, at time.Time) {
	if !c.IsConnected() {
		return
	}

	c.writeAPI.WritePoint(actionPoint(action, role, outcome, duration, at))
}

// actionPoint builds the relay_actions point.
func actionPoint(action, role, outcome string, duration time.Duration, at time.Time) *write.Point {
	return write.NewPoint(
		MeasurementActions,
		map[string]string{
			"action":  action,
			"role":    role,
			"outcome": outcome,
		},
		map[string]interface{}{
			"duration_ms": duration.Milliseconds(),
			"value":       1,
		},
		at,
	)
}
