package auth

import "errors"

// Role names the holder of a bearer token.
type Role string

const (
	RoleNathan     Role = "nathan"
	RoleGirlfriend Role = "girlfriend"
	RoleDaughter   Role = "daughter"
	RoleMom        Role = "mom"
	RoleDad        Role = "dad"
	RoleAdmin      Role = "admin"
)

// Action is the value of the request's action field.
type Action string

const (
	ActionPlugOn         Action = "plug_on"
	ActionDaughterSignal Action = "daughter_signal"
	ActionAllOff         Action = "all_off"
)

// IsKnown reports whether a is one of the relay's actions.
func (a Action) IsKnown() bool {
	switch a {
	case ActionPlugOn, ActionDaughterSignal, ActionAllOff:
		return true
	}
	return false
}

// Request is the decoded body of a signal request.
type Request struct {
	Action Action `json:"action"`
	Target string `json:"target,omitempty"`
	Color  string `json:"color,omitempty"`
}

// Sentinel errors for auth operations.
var (
	ErrForbidden = errors.New("auth: action not permitted")
)
