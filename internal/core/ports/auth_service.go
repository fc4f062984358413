package ports

import (
	"context"

	"github.com/kum096/Dashboard/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.Session, error)
	Resolve(ctx context.Context, token string) (*domain.Session, error)
	Logout(ctx context.Context, session *domain.Session) error
}
