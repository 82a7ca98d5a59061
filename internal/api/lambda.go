package api

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/aws/aws-lambda-go/events"
)

// LambdaHandler returns a handler for AWS Lambda Function URL invocations
// that serves each event through the same router as the HTTP server.
func (s *Server) LambdaHandler() func(context.Context, events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	return func(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
		req, err := lambdaToHTTP(ctx, event)
		if err != nil {
			return events.LambdaFunctionURLResponse{}, err
		}

		rw := newResponseBuffer()
		s.router.ServeHTTP(rw, req)
		return rw.toLambda(), nil
	}
}

// lambdaToHTTP converts a Function URL event to an *http.Request.
func lambdaToHTTP(ctx context.Context, event events.LambdaFunctionURLRequest) (*http.Request, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return nil, fmt.Errorf("decoding lambda body: %w", err)
		}
		body = decoded
	}

	path := event.RawPath
	if path == "" {
		path = "/"
	}
	if event.RawQueryString != "" {
		path += "?" + event.RawQueryString
	}

	req, err := http.NewRequestWithContext(ctx, event.RequestContext.HTTP.Method, path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request from lambda event: %w", err)
	}

	for k, v := range event.Headers {
		req.Header.Set(k, v)
	}
	if req.Header.Get("X-Request-ID") == "" && event.RequestContext.RequestID != "" {
		req.Header.Set("X-Request-ID", event.RequestContext.RequestID)
	}
	req.RemoteAddr = event.RequestContext.HTTP.SourceIP

	return req, nil
}

// responseBuffer is an http.ResponseWriter that keeps the response in memory.
type responseBuffer struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newResponseBuffer() *responseBuffer {
	return &responseBuffer{header: make(http.Header)}
}

func (b *responseBuffer) Header() http.Header {
	return b.header
}

func (b *responseBuffer) WriteHeader(status int) {
	if b.status == 0 {
		b.status = status
	}
}

func (b *responseBuffer) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *responseBuffer) toLambda() events.LambdaFunctionURLResponse {
	status := b.status
	if status == 0 {
		status = http.StatusOK
	}

	headers := make(map[string]string, len(b.header))
	for k, v := range b.header {
		headers[k] = strings.Join(v, ",")
	}

	return events.LambdaFunctionURLResponse{
		StatusCode: status,
		Headers:    headers,
		Body:       b.body.String(),
	}
}
