package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"
)

// TestRun_InvalidConfig verifies run fails with a missing config file.
func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("FRIENDSHIP_CONFIG", "/nonexistent/path/config.yaml")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := run(ctx)
	if err == nil {
		t.Fatal("run() should fail with invalid config path")
	}
	if !strings.Contains(err.Error(), "loading config") {
		t.Errorf("run() error = %v, want loading config error", err)
	}
}

// TestRun_MissingSecrets verifies run refuses to start without a vendor key.
func TestRun_MissingSecrets(t *testing.T) {
	t.Setenv("FRIENDSHIP_CONFIG", "")
	t.Setenv("GOVEE_API_KEY", "")
	t.Setenv("TOKEN_ADMIN", "admin-token")

	err := run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "govee.api_key") {
		t.Fatalf("run() error = %v, want govee.api_key validation error", err)
	}
}

// TestRun_ServesUntilCancelled starts the relay on a free port and stops it.
func TestRun_ServesUntilCancelled(t *testing.T) {
	port := freePort(t)
	t.Setenv("FRIENDSHIP_CONFIG", "")
	t.Setenv("GOVEE_API_KEY", "govee-key")
	t.Setenv("TOKEN_ADMIN", "admin-token")
	t.Setenv("FRIENDSHIP_API_HOST", "127.0.0.1")
	t.Setenv("FRIENDSHIP_API_PORT", fmt.Sprint(port))
	t.Setenv("FRIENDSHIP_LOG_LEVEL", "error")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx) }()

	url := fmt.Sprintf("http://127.0.0.1:%d/signal", port)
	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		resp, err = http.Post(url, "application/json", strings.NewReader(`{"action":"all_off"}`))
		if err == nil {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}
	if err != nil {
		cancel()
		t.Fatalf("server never came up: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("unauthenticated status = %d, want 401", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run() error = %v, want nil on shutdown", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("run() did not return after cancel")
	}
}

// TestGetConfigPath_EnvOverride verifies the environment variable wins.
func TestGetConfigPath_EnvOverride(t *testing.T) {
	expected := "/custom/path/config.yaml"
	t.Setenv("FRIENDSHIP_CONFIG", expected)

	if path := getConfigPath(); path != expected {
		t.Errorf("getConfigPath() = %q, want %q", path, expected)
	}
}

// TestGetConfigPath_NoDefaultFile verifies a missing default file means
// environment-only configuration.
func TestGetConfigPath_NoDefaultFile(t *testing.T) {
	t.Setenv("FRIENDSHIP_CONFIG", "")
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	if path := getConfigPath(); path != "" {
		t.Errorf("getConfigPath() = %q, want empty", path)
	}
}

func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}
