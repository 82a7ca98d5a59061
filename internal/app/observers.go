package app

import (
	"context"
	"time"

	"github.com/nerrad567/friendship-lights/internal/api"
	"github.com/nerrad567/friendship-lights/internal/infrastructure/logging"
	"github.com/nerrad567/friendship-lights/internal/infrastructure/mqtt"
)

// eventPublisher is the part of *mqtt.Client the event observer needs.
type eventPublisher interface {
	PublishJSON(topic string, v any, retained bool) error
}

// metricWriter is the part of *influxdb.Client the metric observer needs.
type metricWriter interface {
	WriteActionMetric(action, role, outcome string, duration time.Duration, at time.Time)
}

// mqttObserver publishes each event to friendshiplights/event/action/<action>.
// Publish failures are logged and never reach the caller.
func mqttObserver(p eventPublisher, log *logging.Logger) api.ActionObserver {
	return api.ObserverFunc(func(_ context.Context, e api.ActionEvent) {
		topic := mqtt.Topics{}.ActionEvent(string(e.Action))
		if err := p.PublishJSON(topic, e, false); err != nil {
			log.Warn("publishing action event failed",
				"topic", topic,
				"request_id", e.RequestID,
				"error", err,
			)
		}
	})
}

// influxObserver records each event as a relay_actions point.
func influxObserver(w metricWriter) api.ActionObserver {
	return api.ObserverFunc(func(_ context.Context, e api.ActionEvent) {
		duration := time.Duration(e.DurationMS) * time.Millisecond
		w.WriteActionMetric(string(e.Action), string(e.Role), e.Outcome(), duration, e.Timestamp)
	})
}
