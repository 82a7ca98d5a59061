package govee

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/nerrad567/friendship-lights/internal/infrastructure/config"
)

// maxResponseSize caps how much of a vendor response is read.
const maxResponseSize = 1 << 20

// Logger defines the logging interface used by the Client.
type Logger interface {
	Debug(msg string, args ...any)
	Warn(msg string, args ...any)
}

type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Warn(string, ...any)  {}

// Client sends capability commands to the Govee device-control endpoint.
type Client struct {
	url        string
	apiKey     string
	httpClient *http.Client
	newID      func() string
	logger     Logger
}

// NewClient creates a Client from the vendor configuration.
// A zero cfg.Timeout leaves outbound calls without a deadline.
func NewClient(cfg config.GoveeConfig) *Client {
	url := cfg.BaseURL
	if url == "" {
		url = config.DefaultGoveeBaseURL
	}

	return &Client{
		url:        url,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout()},
		newID:      uuid.NewString,
		logger:     noopLogger{},
	}
}

// SetLogger sets the logger for the client.
func (c *Client) SetLogger(logger Logger) {
	c.logger = logger
}

// ControlDevice sends one capability command to one device.
//
// Parameters:
//   - ctx: Context for the outbound request
//   - sku: Vendor model, e.g. "H5086"
//   - deviceID: Vendor device identifier
//   - capability: The command to apply
//
// Returns:
//   - error: nil when the vendor answers with SuccessCode; *APIError for any
//     other code; ErrRequestFailed or ErrInvalidResponse otherwise
func (c *Client) ControlDevice(ctx context.Context, sku, deviceID string, capability Capability) error {
	requestID := c.newID()

	body, err := json.Marshal(controlRequest{
		RequestID: requestID,
		Payload: controlPayload{
			SKU:        sku,
			Device:     deviceID,
			Capability: capability,
		},
	})
	if err != nil {
		return fmt.Errorf("marshalling control request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Govee-API-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug("sending device command",
		"request_id", requestID,
		"sku", sku,
		"device", deviceID,
		"instance", capability.Instance,
		"value", capability.Value,
	)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("device command failed", "request_id", requestID, "error", err)
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("%w: reading body: %w", ErrRequestFailed, err)
	}

	var result controlResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return fmt.Errorf("%w: http %d: %s", ErrInvalidResponse, resp.StatusCode, snippet(raw))
	}
	if result.Code == nil {
		return fmt.Errorf("%w: http %d: missing code", ErrInvalidResponse, resp.StatusCode)
	}

	if *result.Code != SuccessCode {
		c.logger.Warn("device command rejected",
			"request_id", requestID,
			"code", *result.Code,
			"message", result.Message,
		)
		return &APIError{Code: *result.Code, Message: result.Message}
	}

	return nil
}

// snippet trims a response body for inclusion in an error message.
func snippet(raw []byte) string {
	const limit = 128
	s := strings.TrimSpace(string(raw))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
