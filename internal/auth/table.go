package auth

import (
	"crypto/subtle"

	"github.com/nerrad567/friendship-lights/internal/infrastructure/config"
)

type tokenEntry struct {
	token []byte
	grant Grant
}

// Table maps bearer tokens to grants. It is immutable after LoadPermissions.
type Table struct {
	entries []tokenEntry
}

// LoadPermissions builds the table from configured secrets.
// Empty tokens are skipped so an unset secret can never be matched.
func LoadPermissions(tokens config.TokensConfig) *Table {
	byRole := []struct {
		role  Role
		token string
	}{
		{RoleNathan, tokens.Nathan},
		{RoleGirlfriend, tokens.Girlfriend},
		{RoleDaughter, tokens.Daughter},
		{RoleMom, tokens.Mom},
		{RoleDad, tokens.Dad},
		{RoleAdmin, tokens.Admin},
	}

	t := &Table{}
	for _, r := range byRole {
		if r.token == "" {
			continue
		}
		t.entries = append(t.entries, tokenEntry{
			token: []byte(r.token),
			grant: GrantFor(r.role),
		})
	}
	return t
}

// Lookup returns the grant for token.
//
// Every entry is compared in constant time; the scan does not stop at the
// first match. If two roles share a token the last one in table order wins,
// so a shared admin token resolves to admin.
func (t *Table) Lookup(token string) (Grant, bool) {
	if token == "" {
		return Grant{}, false
	}

	candidate := []byte(token)
	var (
		found Grant
		ok    bool
	)
	for _, e := range t.entries {
		if subtle.ConstantTimeCompare(e.token, candidate) == 1 {
			found = e.grant
			ok = true
		}
	}
	return found, ok
}

// Len returns the number of configured tokens.
func (t *Table) Len() int {
	return len(t.entries)
}

// Roles returns the roles that have a token, in table order.
func (t *Table) Roles() []Role {
	roles := make([]Role, len(t.entries))
	for i, e := range t.entries {
		roles[i] = e.grant.Role
	}
	return roles
}
