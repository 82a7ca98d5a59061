// Package influxdb provides the relay's optional action metrics sink.
//
// It wraps the official influxdb-client-go v2 library with connection
// management, batched non-blocking writes, and health monitoring.
//
// # Purpose
//
// Every dispatched action is recorded as one point in the relay_actions
// measurement:
//   - tags: action, role, outcome ("ok" or "error")
//   - fields: duration_ms, value (always 1, for counting)
//
// # Usage
//
//	client, err := influxdb.Connect(cfg.InfluxDB)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	client.WriteActionMetric("daughter_signal", "mom", "ok", 10*time.Second, time.Now())
//
// # Error Handling
//
// Write operations are non-blocking and batch errors are delivered via the
// SetOnError callback. Connection and health check errors are returned directly.
package influxdb
