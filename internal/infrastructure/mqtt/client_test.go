package mqtt

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/nerrad567/friendship-lights/internal/infrastructure/config"
)

// testConfig returns a valid MQTT configuration for testing.
func testConfig() config.MQTTConfig {
	return config.MQTTConfig{
		Enabled: true,
		Broker: config.MQTTBrokerConfig{
			Host:     "127.0.0.1",
			Port:     1883,
			ClientID: "friendship-lights-test",
		},
		QoS: 1,
		Reconnect: config.MQTTReconnectConfig{
			InitialDelay: 1,
			MaxDelay:     5,
		},
	}
}

// =============================================================================
// Options Tests
// =============================================================================

func TestBuildClientOptions(t *testing.T) {
	tests := []struct {
		name       string
		mutate     func(c *config.MQTTConfig)
		wantBroker string
		wantUser   string
		wantTLS    bool
	}{
		{
			name:       "plain tcp",
			mutate:     func(*config.MQTTConfig) {},
			wantBroker: "tcp://127.0.0.1:1883",
		},
		{
			name: "tls with auth",
			mutate: func(c *config.MQTTConfig) {
				c.Broker.TLS = true
				c.Broker.Port = 8883
				c.Auth.Username = "relay"
				c.Auth.Password = "secret"
			},
			wantBroker: "ssl://127.0.0.1:8883",
			wantUser:   "relay",
			wantTLS:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)

			opts := buildClientOptions(cfg)

			if len(opts.Servers) != 1 || opts.Servers[0].String() != tt.wantBroker {
				t.Errorf("Servers = %v, want [%s]", opts.Servers, tt.wantBroker)
			}
			if opts.ClientID != cfg.Broker.ClientID {
				t.Errorf("ClientID = %q, want %q", opts.ClientID, cfg.Broker.ClientID)
			}
			if opts.Username != tt.wantUser {
				t.Errorf("Username = %q, want %q", opts.Username, tt.wantUser)
			}
			if (opts.TLSConfig != nil) != tt.wantTLS {
				t.Errorf("TLSConfig set = %v, want %v", opts.TLSConfig != nil, tt.wantTLS)
			}
			if tt.wantTLS && opts.TLSConfig.MinVersion != tlsMinVersion {
				t.Errorf("TLS MinVersion = %x, want %x", opts.TLSConfig.MinVersion, tlsMinVersion)
			}
			if !opts.AutoReconnect || !opts.CleanSession {
				t.Error("expected auto-reconnect and clean session")
			}
		})
	}
}

func TestConfigureLWT(t *testing.T) {
	opts := buildClientOptions(testConfig())
	configureLWT(opts, "relay-1")

	if !opts.WillEnabled {
		t.Fatal("WillEnabled = false")
	}
	if opts.WillTopic != "friendshiplights/system/status" {
		t.Errorf("WillTopic = %q", opts.WillTopic)
	}
	if !opts.WillRetained || opts.WillQos != 1 {
		t.Errorf("Will retained=%v qos=%d, want true/1", opts.WillRetained, opts.WillQos)
	}

	var p statusPayload
	if err := json.Unmarshal(opts.WillPayload, &p); err != nil {
		t.Fatalf("will payload not JSON: %v", err)
	}
	if p.Status != "offline" || p.ClientID != "relay-1" || p.Reason != "unexpected_disconnect" {
		t.Errorf("will payload = %+v", p)
	}
}

func TestStatusPayloads(t *testing.T) {
	tests := []struct {
		name       string
		payload    []byte
		wantStatus string
		wantReason string
	}{
		{"online", buildOnlinePayload("c1"), "online", ""},
		{"offline", buildOfflinePayload("c1"), "offline", "graceful_shutdown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p statusPayload
			if err := json.Unmarshal(tt.payload, &p); err != nil {
				t.Fatalf("payload not JSON: %v", err)
			}
			if p.Status != tt.wantStatus || p.Reason != tt.wantReason || p.ClientID != "c1" {
				t.Errorf("payload = %+v", p)
			}
			if p.Timestamp == "" {
				t.Error("timestamp missing")
			}
		})
	}
}

func TestTopicBuilders(t *testing.T) {
	tests := []struct {
		name     string
		got      string
		expected string
	}{
		{"ActionEvent", Topics{}.ActionEvent("daughter_signal"), "friendshiplights/event/action/daughter_signal"},
		{"AllActionEvents", Topics{}.AllActionEvents(), "friendshiplights/event/action/+"},
		{"SystemStatus", Topics{}.SystemStatus(), "friendshiplights/system/status"},
	}

	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s() = %q, want %q", tt.name, tt.got, tt.expected)
		}
	}
}

// =============================================================================
// Disconnected Client Tests
// =============================================================================

func TestPublish_Validation(t *testing.T) {
	client := &Client{cfg: testConfig()}

	tests := []struct {
		name    string
		topic   string
		payload []byte
		qos     byte
		wantErr error
	}{
		{"empty topic", "", []byte("x"), 1, ErrInvalidTopic},
		{"invalid qos", "t", []byte("x"), 3, ErrInvalidQoS},
		{"payload too large", "t", make([]byte, maxPayloadSize+1), 1, ErrPublishFailed},
		{"not connected", "t", []byte("x"), 1, ErrNotConnected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := client.Publish(tt.topic, tt.payload, tt.qos, false)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Publish() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestPublishJSON_MarshalError(t *testing.T) {
	client := &Client{cfg: testConfig()}

	err := client.PublishJSON("t", map[string]any{"bad": make(chan int)}, false)
	if !errors.Is(err, ErrPublishFailed) {
		t.Errorf("PublishJSON() error = %v, want ErrPublishFailed", err)
	}
}

func TestPublishJSON_NotConnected(t *testing.T) {
	client := &Client{cfg: testConfig()}

	err := client.PublishJSON(Topics{}.ActionEvent("all_off"), map[string]bool{"ok": true}, false)
	if !errors.Is(err, ErrNotConnected) {
		t.Errorf("PublishJSON() error = %v, want ErrNotConnected", err)
	}
}

func TestCloseNil(t *testing.T) {
	client := &Client{}
	if err := client.Close(); err != nil {
		t.Errorf("Close() on nil client error = %v, want nil", err)
	}
}

func TestIsConnected_InitialState(t *testing.T) {
	client := &Client{}
	if client.IsConnected() {
		t.Error("IsConnected() should be false for uninitialised client")
	}
}

func TestHealthCheck_Disconnected(t *testing.T) {
	client := &Client{}

	if err := client.HealthCheck(context.Background()); !errors.Is(err, ErrNotConnected) {
		t.Errorf("HealthCheck() error = %v, want ErrNotConnected", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := client.HealthCheck(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("HealthCheck(cancelled) error = %v, want context.Canceled", err)
	}
}

func TestHandleDisconnect_Callbacks(t *testing.T) {
	client := &Client{connected: true}

	var got error
	client.SetOnDisconnect(func(err error) { got = err })
	client.SetLogger(nopLogger{})

	lost := errors.New("broker went away")
	client.handleDisconnect(lost)

	if got != lost {
		t.Errorf("onDisconnect error = %v, want %v", got, lost)
	}
	if client.IsConnected() {
		t.Error("IsConnected() = true after disconnect")
	}
}

type nopLogger struct{}

func (nopLogger) Error(string, ...any) {}
func (nopLogger) Warn(string, ...any)  {}
