package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/nerrad567/friendship-lights/internal/action"
	"github.com/nerrad567/friendship-lights/internal/auth"
)

const bearerPrefix = "Bearer "

// handleSignal authenticates, validates and authorises one action request,
// then runs it.
//
// Every rejection happens before the first device call.
func (s *Server) handleSignal(w http.ResponseWriter, r *http.Request) {
	requestID := requestIDFrom(r.Context())

	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, bearerPrefix) {
		writeFailure(w, http.StatusUnauthorized, msgMissingAuth)
		return
	}

	grant, ok := s.perms.Lookup(header[len(bearerPrefix):])
	if !ok {
		s.logger.Warn("unknown bearer token", "request_id", requestID)
		writeFailure(w, http.StatusUnauthorized, msgInvalidToken)
		return
	}

	req, err := decodeRequest(r.Body)
	if err != nil {
		s.logger.Debug("invalid signal body", "role", grant.Role, "error", err, "request_id", requestID)
		writeFailure(w, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	if msg := s.validate(req); msg != "" {
		writeFailure(w, http.StatusBadRequest, msg)
		return
	}

	if err := grant.Authorize(req); err != nil {
		s.logger.Warn("action forbidden",
			"role", grant.Role,
			"action", req.Action,
			"target", req.Target,
			"color", req.Color,
			"request_id", requestID,
		)
		writeFailure(w, http.StatusForbidden, msgForbidden)
		return
	}

	// A client disconnect must not abort the sequence halfway.
	ctx := context.WithoutCancel(r.Context())

	start := time.Now()
	res := s.run(ctx, req)
	elapsed := time.Since(start)

	s.logger.Info("action dispatched",
		"role", grant.Role,
		"action", req.Action,
		"ok", res.OK,
		"duration_ms", elapsed.Milliseconds(),
		"request_id", requestID,
	)
	writeResult(w, res)
	flushResponse(w)

	s.notify(ctx, ActionEvent{
		RequestID:  requestID,
		Role:       grant.Role,
		Action:     req.Action,
		Target:     req.Target,
		Color:      req.Color,
		OK:         res.OK,
		Error:      res.Error,
		DurationMS: elapsed.Milliseconds(),
		Timestamp:  start.UTC(),
	})
}

// flushResponse sends the buffered response to the client so observers do
// not hold it back. The error is ignored: the action has already run, and
// writers without flush support (the Lambda buffer) deliver on return.
func flushResponse(w http.ResponseWriter) {
	_ = http.NewResponseController(w).Flush()
}

// decodeRequest reads the whole body and decodes it as one JSON object.
func decodeRequest(body io.Reader) (auth.Request, error) {
	var req auth.Request

	raw, err := io.ReadAll(body)
	if err != nil {
		return req, fmt.Errorf("reading body: %w", err)
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, fmt.Errorf("decoding body: %w", err)
	}
	return req, nil
}

// validate returns the 400 message for req, or "" if it is well formed.
// Targets and colours must be registered regardless of the caller's grant.
func (s *Server) validate(req auth.Request) string {
	if req.Action == "" {
		return msgMissingAction
	}
	if !req.Action.IsKnown() {
		return fmt.Sprintf("Unknown action: %s", req.Action)
	}

	switch req.Action {
	case auth.ActionPlugOn:
		if req.Target == "" {
			return msgMissingTarget
		}
		if !s.handlers.KnownTarget(req.Target) {
			return action.UnknownTarget(req.Target).Error
		}
	case auth.ActionDaughterSignal:
		if req.Color == "" {
			return msgMissingColor
		}
		if !s.handlers.KnownColor(req.Color) {
			return action.InvalidColor(req.Color).Error
		}
	}
	return ""
}

// run invokes the handler for a validated, authorised request.
func (s *Server) run(ctx context.Context, req auth.Request) action.Result {
	switch req.Action {
	case auth.ActionPlugOn:
		return s.handlers.PlugOn(ctx, req.Target)
	case auth.ActionDaughterSignal:
		return s.handlers.DaughterSignal(ctx, req.Color)
	case auth.ActionAllOff:
		return s.handlers.AllOff(ctx)
	default:
		return action.Failure("Unknown action: %s", req.Action)
	}
}
