// Package auth maps bearer tokens to roles and decides which actions a role
// may run.
//
// The model is a static grant table built once from configured secrets:
//   - nathan, girlfriend and daughter may each power on one other outlet
//   - mom may send the red signal, dad the blue one
//   - admin may switch everything off
//
// Tokens are opaque and compared in constant time. Only the role name is
// exposed to logs and events.
package auth
