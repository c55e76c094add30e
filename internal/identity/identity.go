// Package identity produces per-session identifiers.
package identity

import (
	"github.com/google/uuid"

	"pairchat/internal/domain"
)

// New returns a fresh session identifier, statistically unique across all
// concurrently running sessions. Called once per session at construction.
func New() domain.SessionID {
	return domain.SessionID(uuid.NewString())
}
