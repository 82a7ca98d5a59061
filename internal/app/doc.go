// Package app assembles the relay from configuration.
//
// Both entry points (the long-running HTTP server in cmd/relay and the
// Lambda function in cmd/relay-lambda) call Build to get the same handler
// stack: vendor client, device operator, action handlers, permission table
// and the optional MQTT and InfluxDB sinks.
package app
