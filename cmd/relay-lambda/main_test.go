package main

import (
	"context"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func TestBuild_MissingConfig(t *testing.T) {
	t.Setenv("FRIENDSHIP_CONFIG", "")
	t.Setenv("GOVEE_API_KEY", "")

	if _, err := build(); err == nil {
		t.Fatal("build() error = nil, want validation error")
	}
}

func TestBuild_HandlesFunctionURLEvent(t *testing.T) {
	t.Setenv("FRIENDSHIP_CONFIG", "")
	t.Setenv("GOVEE_API_KEY", "govee-key")
	t.Setenv("TOKEN_ADMIN", "admin-token")
	t.Setenv("FRIENDSHIP_LOG_LEVEL", "error")

	relay, err := build()
	if err != nil {
		t.Fatalf("build() error = %v", err)
	}
	defer relay.Close()

	var event events.LambdaFunctionURLRequest
	event.RawPath = "/signal"
	event.RequestContext.HTTP.Method = http.MethodPost
	event.Headers = map[string]string{"authorization": "Bearer wrong"}
	event.Body = `{"action":"all_off"}`

	resp, err := relay.Server.LambdaHandler()(context.Background(), event)
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("StatusCode = %d, want 401", resp.StatusCode)
	}
}
