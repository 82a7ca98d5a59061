package action

import "fmt"

// Result is the uniform outcome of an action. It is serialised to callers as is.
type Result struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Success returns an OK result.
func Success() Result {
	return Result{OK: true}
}

// Failure returns a failed result with a formatted message.
func Failure(format string, args ...any) Result {
	return Result{OK: false, Error: fmt.Sprintf(format, args...)}
}
