package handlers

import (
	"voicehub/control-api/internal/domain/token"
)

// TokenHandler handles token-related HTTP requests.
type TokenHandler struct {
	issuer token.Issuer
}

// NewTokenHandler creates a new token handler.
func NewTokenHandler(issuer token.Issuer) *TokenHandler {
	return &TokenHandler{issuer: issuer}
}

// IssueJoinToken issues a join-only token, defaulting ttl to the configured
// value.
func (h *TokenHandler) IssueJoinToken(room, identity string) (string, error) {
	return h.issuer.IssueJoinToken(room, identity, 0)
}

// IssuePlaygroundToken issues a full-capability token for a fresh room.
func (h *TokenHandler) IssuePlaygroundToken() (*token.PlaygroundToken, error) {
	return h.issuer.IssuePlaygroundToken()
}
