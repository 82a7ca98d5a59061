package api

import (
	"encoding/json"
	"net/http"

	"github.com/nerrad567/friendship-lights/internal/action"
)

// Client-facing error messages.
const (
	msgNotFound         = "Not found"
	msgMethodNotAllowed = "Method not allowed"
	msgMissingAuth      = "Missing or invalid authorization"
	msgInvalidToken     = "Invalid token"
	msgInvalidJSON      = "Invalid JSON body"
	msgMissingAction    = "Missing action field"
	msgMissingTarget    = "Missing target field for plug_on"
	msgMissingColor     = "Missing color field for daughter_signal"
	msgForbidden        = "Action not permitted for this token"
	msgInternal         = "internal server error"
)

// writeJSON writes a JSON response with the given status code and payload.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // Best-effort write to response; connection may be closed
		json.NewEncoder(w).Encode(v)
	}
}

// writeResult writes a handler outcome: 200 when ok, 500 otherwise.
func writeResult(w http.ResponseWriter, res action.Result) {
	status := http.StatusOK
	if !res.OK {
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, res)
}

// writeFailure writes {"ok":false,"error":message} with status.
func writeFailure(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, action.Result{OK: false, Error: message})
}

// writeInternalError writes a 500 error response.
func writeInternalError(w http.ResponseWriter) {
	writeFailure(w, http.StatusInternalServerError, msgInternal)
}
