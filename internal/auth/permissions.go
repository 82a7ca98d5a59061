package auth

import (
	"fmt"
	"slices"

	"github.com/nerrad567/friendship-lights/internal/device"
)

// Grant lists what one role may do.
type Grant struct {
	Role         Role
	PlugTargets  []string
	SignalColors []string
	AllOff       bool
}

// roleGrants is the single source of truth for the authorisation model.
var roleGrants = map[Role]Grant{
	RoleNathan:     {Role: RoleNathan, PlugTargets: []string{device.GirlfriendOutlet}},
	RoleGirlfriend: {Role: RoleGirlfriend, PlugTargets: []string{device.NathanOutlet}},
	RoleDaughter:   {Role: RoleDaughter, PlugTargets: []string{device.GrandparentsOutlet}},
	RoleMom:        {Role: RoleMom, SignalColors: []string{device.ColorRed}},
	RoleDad:        {Role: RoleDad, SignalColors: []string{device.ColorBlue}},
	RoleAdmin:      {Role: RoleAdmin, AllOff: true},
}

// GrantFor returns the grant for role. Unknown roles get an empty grant.
func GrantFor(role Role) Grant {
	g, ok := roleGrants[role]
	if !ok {
		return Grant{Role: role}
	}
	return g
}

// Authorize returns nil if the grant covers req, or ErrForbidden.
//
// Field presence and registry membership are the caller's concern; an
// unknown action is always forbidden.
func (g Grant) Authorize(req Request) error {
	var ok bool
	switch req.Action {
	case ActionPlugOn:
		ok = slices.Contains(g.PlugTargets, req.Target)
	case ActionDaughterSignal:
		ok = slices.Contains(g.SignalColors, req.Color)
	case ActionAllOff:
		ok = g.AllOff
	}

	if !ok {
		return fmt.Errorf("%w: role %s, action %s", ErrForbidden, g.Role, req.Action)
	}
	return nil
}
