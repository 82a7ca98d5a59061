// Package api implements the relay's HTTP surface: one authenticated endpoint,
// POST /signal.
//
// This package provides:
//   - The signal dispatcher (token check, body parsing, authorisation, routing)
//   - Middleware stack (request ID, logging, recovery, body size limit)
//   - TLS support for production deployments
//   - An AWS Lambda Function URL adapter over the same router
//
// # Request Pipeline
//
// Routing errors (404, 405) are answered before the token is looked at. A
// request then passes authentication (401), body validation (400) and
// authorisation (403) before any device is touched. Every response body is
// {"ok": bool, "error": string}, with error omitted on success.
//
// # Observers
//
// After a dispatched action completes, each ActionObserver receives an
// ActionEvent. Observers run after the response is written and cannot
// change it. The MQTT event bus and InfluxDB metrics are wired this way.
package api
