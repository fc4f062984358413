package ports

import (
	"context"

	"github.com/kum096/Dashboard/internal/core/domain"
)

// SessionStore persists live operator sessions.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	// Get returns domain.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*domain.Session, error)
	Delete(ctx context.Context, id string) error
}
