// Package security provides a static-policy implementation of the container
// Security contract: a capability callback for field writes plus anti-forgery
// tokens minted as uuid nonces remembered per scope. Hosts with a real
// security layer implement container.Security directly instead.
package security

import (
	"context"
	"crypto/subtle"
	"sync"

	"github.com/google/uuid"
)

// Policy decides whether the current actor may write a field. A nil policy
// allows everything.
type Policy func(ctx context.Context, entityID, fieldName string) bool

// Static implements container.Security with a fixed policy. Tokens are
// uuid-v4 nonces: one per scope, stable until reissue, verifiable with
// Verify.
type Static struct {
	mu     sync.Mutex
	policy Policy
	tokens map[string]string
}

// New constructs a Static checker. Pass nil to allow all writes.
func New(policy Policy) *Static {
	return &Static{
		policy: policy,
		tokens: make(map[string]string),
	}
}

// AllowAll permits every field write. Useful for examples and tests.
func AllowAll() *Static { return New(nil) }

// DenyAll refuses every field write.
func DenyAll() *Static {
	return New(func(context.Context, string, string) bool { return false })
}

// CanEditField applies the policy.
func (s *Static) CanEditField(ctx context.Context, entityID, fieldName string) bool {
	if s.policy == nil {
		return true
	}
	return s.policy(ctx, entityID, fieldName)
}

// AntiForgeryToken returns the nonce for scope, minting one on first use.
func (s *Static) AntiForgeryToken(scope string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token, ok := s.tokens[scope]; ok {
		return token
	}
	token := uuid.NewString()
	s.tokens[scope] = token
	return token
}

// Verify reports whether token matches the nonce issued for scope. The
// comparison is constant time.
func (s *Static) Verify(scope, token string) bool {
	s.mu.Lock()
	issued, ok := s.tokens[scope]
	s.mu.Unlock()
	if !ok || token == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(issued), []byte(token)) == 1
}
