package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// SignalDelay is the fixed gap between the outlet and bulb stages of the
// daughter signal. The API write timeout must leave room for it.
const SignalDelay = 10 * time.Second

// DefaultGoveeBaseURL is the Govee OpenAPI device-control endpoint.
const DefaultGoveeBaseURL = "https://openapi.api.govee.com/router/api/v1/device/control"

// Config is the root configuration structure for the relay.
// Configuration is loaded from an optional YAML file and overridden by environment variables.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Govee    GoveeConfig    `yaml:"govee"`
	Tokens   TokensConfig   `yaml:"tokens"`
	Logging  LoggingConfig  `yaml:"logging"`
	MQTT     MQTTConfig     `yaml:"mqtt"`
	InfluxDB InfluxDBConfig `yaml:"influxdb"`
}

// APIConfig contains HTTP API server settings.
type APIConfig struct {
	Host     string           `yaml:"host"`
	Port     int              `yaml:"port"`
	TLS      TLSConfig        `yaml:"tls"`
	Timeouts APITimeoutConfig `yaml:"timeouts"`
}

// TLSConfig contains TLS certificate settings.
type TLSConfig struct {
	Enabled  bool   `yaml:"enabled"`
	CertFile string `yaml:"cert_file"`
	KeyFile  string `yaml:"key_file"`
}

// APITimeoutConfig contains HTTP timeout settings in seconds.
type APITimeoutConfig struct {
	Read  int `yaml:"read"`
	Write int `yaml:"write"`
	Idle  int `yaml:"idle"`
}

// GoveeConfig contains the vendor device-control API settings.
type GoveeConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
	// Timeout bounds each outbound call in seconds. 0 disables the deadline.
	Timeout int `yaml:"timeout"`
}

// TokensConfig holds one bearer token per recognised person.
// Tokens are secrets: set them through the environment, not the file.
type TokensConfig struct {
	Nathan     string `yaml:"nathan"`
	Girlfriend string `yaml:"girlfriend"`
	Daughter   string `yaml:"daughter"`
	Mom        string `yaml:"mom"`
	Dad        string `yaml:"dad"`
	Admin      string `yaml:"admin"`
}

// Any reports whether at least one token is configured.
func (t TokensConfig) Any() bool {
	return t.Nathan != "" || t.Girlfriend != "" || t.Daughter != "" ||
		t.Mom != "" || t.Dad != "" || t.Admin != ""
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// MQTTConfig contains settings for the optional action event bus.
type MQTTConfig struct {
	Enabled   bool                `yaml:"enabled"`
	Broker    MQTTBrokerConfig    `yaml:"broker"`
	Auth      MQTTAuthConfig      `yaml:"auth"`
	QoS       int                 `yaml:"qos"`
	Reconnect MQTTReconnectConfig `yaml:"reconnect"`
}

// MQTTBrokerConfig contains MQTT broker connection details.
type MQTTBrokerConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	TLS      bool   `yaml:"tls"`
	ClientID string `yaml:"client_id"`
}

// MQTTAuthConfig contains MQTT authentication credentials.
type MQTTAuthConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// MQTTReconnectConfig contains MQTT reconnection settings in seconds.
type MQTTReconnectConfig struct {
	InitialDelay int `yaml:"initial_delay"`
	MaxDelay     int `yaml:"max_delay"`
}

// InfluxDBConfig contains settings for the optional action metrics sink.
type InfluxDBConfig struct {
	Enabled       bool   `yaml:"enabled"`
	URL           string `yaml:"url"`
	Token         string `yaml:"token"`
	Org           string `yaml:"org"`
	Bucket        string `yaml:"bucket"`
	BatchSize     int    `yaml:"batch_size"`
	FlushInterval int    `yaml:"flush_interval"`
}

// Load builds the configuration.
//
// The loading order is:
//  1. Default values (hardcoded)
//  2. YAML file values, if path is non-empty
//  3. Environment variables
//
// The vendor key and bearer tokens use the names the hosting environment
// already provides (GOVEE_API_KEY, TOKEN_MOM, ...). Everything else follows
// FRIENDSHIP_SECTION_KEY, for example FRIENDSHIP_API_PORT.
//
// Parameters:
//   - path: Path to the YAML configuration file, or "" for environment only
//
// Returns:
//   - *Config: Loaded and validated configuration
//   - error: If the file cannot be read or parsed, or validation fails
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, fmt.Errorf("applying environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// defaultConfig returns a Config with sensible defaults.
func defaultConfig() *Config {
	return &Config{
		API: APIConfig{
			Host: "0.0.0.0",
			Port: 8080,
			Timeouts: APITimeoutConfig{
				Read:  10,
				Write: 180,
				Idle:  60,
			},
		},
		Govee: GoveeConfig{
			BaseURL: DefaultGoveeBaseURL,
			Timeout: 30,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
		MQTT: MQTTConfig{
			Broker: MQTTBrokerConfig{
				Host:     "localhost",
				Port:     1883,
				ClientID: "friendship-lights",
			},
			QoS: 1,
			Reconnect: MQTTReconnectConfig{
				InitialDelay: 1,
				MaxDelay:     60,
			},
		},
		InfluxDB: InfluxDBConfig{
			BatchSize:     100,
			FlushInterval: 10,
		},
	}
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) error {
	// Secrets, named as the hosting environment provides them
	setString(&cfg.Govee.APIKey, "GOVEE_API_KEY")
	setString(&cfg.Tokens.Nathan, "TOKEN_NATHAN")
	setString(&cfg.Tokens.Girlfriend, "TOKEN_GIRLFRIEND")
	setString(&cfg.Tokens.Daughter, "TOKEN_DAUGHTER")
	setString(&cfg.Tokens.Mom, "TOKEN_MOM")
	setString(&cfg.Tokens.Dad, "TOKEN_DAD")
	setString(&cfg.Tokens.Admin, "TOKEN_ADMIN")

	// API
	setString(&cfg.API.Host, "FRIENDSHIP_API_HOST")
	setString(&cfg.Govee.BaseURL, "FRIENDSHIP_GOVEE_BASE_URL")

	// Logging
	setString(&cfg.Logging.Level, "FRIENDSHIP_LOG_LEVEL")
	setString(&cfg.Logging.Format, "FRIENDSHIP_LOG_FORMAT")

	// MQTT
	setString(&cfg.MQTT.Broker.Host, "FRIENDSHIP_MQTT_HOST")
	setString(&cfg.MQTT.Auth.Username, "FRIENDSHIP_MQTT_USERNAME")
	setString(&cfg.MQTT.Auth.Password, "FRIENDSHIP_MQTT_PASSWORD")

	// InfluxDB
	setString(&cfg.InfluxDB.URL, "FRIENDSHIP_INFLUXDB_URL")
	setString(&cfg.InfluxDB.Token, "FRIENDSHIP_INFLUXDB_TOKEN")

	var errs []error
	errs = append(errs,
		setInt(&cfg.API.Port, "FRIENDSHIP_API_PORT"),
		setInt(&cfg.Govee.Timeout, "FRIENDSHIP_GOVEE_TIMEOUT"),
		setBool(&cfg.MQTT.Enabled, "FRIENDSHIP_MQTT_ENABLED"),
		setBool(&cfg.InfluxDB.Enabled, "FRIENDSHIP_INFLUXDB_ENABLED"),
	)
	return errors.Join(errs...)
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}

func setBool(dst *bool, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

// Validate checks the configuration for errors.
//
// Returns:
//   - error: Description of every validation failure, or nil if valid
func (c *Config) Validate() error {
	var errs []string

	// Vendor API
	if c.Govee.APIKey == "" {
		errs = append(errs, "govee.api_key is required (set GOVEE_API_KEY environment variable)")
	}
	if c.Govee.BaseURL == "" {
		errs = append(errs, "govee.base_url is required")
	}
	if c.Govee.Timeout < 0 {
		errs = append(errs, "govee.timeout must not be negative")
	}

	// Without a single token every request is unauthenticated
	if !c.Tokens.Any() {
		errs = append(errs, "at least one bearer token is required (set TOKEN_* environment variables)")
	}

	// API
	if c.API.Port < 1 || c.API.Port > 65535 {
		errs = append(errs, "api.port must be between 1 and 65535")
	}
	if c.API.Timeouts.Write != 0 {
		if longest := c.LongestAction(); c.GetWriteTimeout() <= longest {
			errs = append(errs, fmt.Sprintf("api.timeouts.write must exceed %v, the longest action at govee.timeout %ds (or be 0)", longest, c.Govee.Timeout))
		}
	}

	// MQTT
	if c.MQTT.QoS < 0 || c.MQTT.QoS > 2 {
		errs = append(errs, "mqtt.qos must be 0, 1, or 2")
	}
	if c.MQTT.Enabled && c.MQTT.Broker.Host == "" {
		errs = append(errs, "mqtt.broker.host is required when mqtt is enabled")
	}

	// InfluxDB
	if c.InfluxDB.Enabled {
		if c.InfluxDB.URL == "" {
			errs = append(errs, "influxdb.url is required when influxdb is enabled")
		}
		if c.InfluxDB.Org == "" || c.InfluxDB.Bucket == "" {
			errs = append(errs, "influxdb.org and influxdb.bucket are required when influxdb is enabled")
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(errs, "; "))
	}

	return nil
}

// GetReadTimeout returns the API read timeout as a Duration.
func (c *Config) GetReadTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Read) * time.Second
}

// GetWriteTimeout returns the API write timeout as a Duration.
func (c *Config) GetWriteTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Write) * time.Second
}

// GetIdleTimeout returns the API idle timeout as a Duration.
func (c *Config) GetIdleTimeout() time.Duration {
	return time.Duration(c.API.Timeouts.Idle) * time.Second
}

// Vendor calls made by the longest actions.
const (
	allOffCalls         = 5 // one per registered device
	daughterSignalCalls = 3 // outlet on, bulb on, bulb colour
)

// LongestAction returns the worst-case handler duration: every vendor call
// running to govee.timeout. With no vendor deadline only the signal delay
// is known.
func (c *Config) LongestAction() time.Duration {
	call := c.GetGoveeTimeout()
	allOff := allOffCalls * call
	signal := SignalDelay + daughterSignalCalls*call
	return max(allOff, signal)
}

// GetGoveeTimeout returns the outbound vendor call timeout. Zero means none.
func (c *Config) GetGoveeTimeout() time.Duration {
	return c.Govee.RequestTimeout()
}

// RequestTimeout returns Timeout as a Duration.
func (g GoveeConfig) RequestTimeout() time.Duration {
	return time.Duration(g.Timeout) * time.Second
}
