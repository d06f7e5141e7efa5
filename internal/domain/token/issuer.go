// Package token defines the access-token issuing contract. Tokens are
// short-lived signed grants authorizing a participant identity to join a
// room; signing is a local deterministic operation backed by the server-held
// API key pair.
package token

import "time"

// PlaygroundToken bundles the generated identity and room with the signed
// token for the playground flow, which grants full publish and subscribe
// capabilities.
type PlaygroundToken struct {
	Identity    string `json:"identity"`
	Room        string `json:"room"`
	AccessToken string `json:"accessToken"`
}

// Issuer issues signed access tokens.
type Issuer interface {
	// IssueJoinToken issues a join-only token for the given room and
	// identity. Empty room or identity are replaced with generated values,
	// and a non-positive ttl falls back to the configured default.
	IssueJoinToken(room, identity string, ttl time.Duration) (string, error)

	// IssuePlaygroundToken issues a full-capability token for a generated
	// room and identity.
	IssuePlaygroundToken() (*PlaygroundToken, error)
}
