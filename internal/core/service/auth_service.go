package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/kum096/Dashboard/internal/core/domain"
	"github.com/kum096/Dashboard/internal/core/ports"
	"github.com/kum096/Dashboard/internal/pkg/metrics"
)

// AuthConfig describes the single admin account and how sessions are signed.
type AuthConfig struct {
	Username string
	// PasswordHash is a bcrypt hash. When empty, Password is hashed at startup.
	PasswordHash string
	Password     string
	Secret       string
	TTL          time.Duration
}

// AuthService implements login, session resolution, and logout for the
// configured admin account.
type AuthService struct {
	store    ports.SessionStore
	username string
	hash     []byte
	secret   []byte
	ttl      time.Duration
	now      func() time.Time
}

func NewAuthService(store ports.SessionStore, cfg AuthConfig) (*AuthService, error) {
	if cfg.Username == "" {
		return nil, errors.New("auth: admin username is empty")
	}
	if cfg.Secret == "" {
		return nil, errors.New("auth: session secret is empty")
	}

	hash := []byte(cfg.PasswordHash)
	if len(hash) == 0 {
		if cfg.Password == "" {
			return nil, errors.New("auth: neither password nor password hash is set")
		}
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("auth: hash password: %w", err)
		}
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}

	return &AuthService{
		store:    store,
		username: cfg.Username,
		hash:     hash,
		secret:   []byte(cfg.Secret),
		ttl:      ttl,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

// Login checks the credentials, opens a session, and returns its signed token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.Session, error) {
	token, session, err := s.login(ctx, username, password)
	result := "success"
	if err != nil {
		result = "failure"
	}
	metrics.LoginsTotal.WithLabelValues(result).Inc()
	return token, session, err
}

func (s *AuthService) login(ctx context.Context, username, password string) (string, *domain.Session, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	if subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) != 1 {
		return "", nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(s.hash, []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	now := s.now()
	session := &domain.Session{
		ID:        uuid.NewString(),
		Username:  s.username,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.store.Save(ctx, session); err != nil {
		return "", nil, fmt.Errorf("save session: %w", err)
	}

	token, err := s.generateToken(session)
	if err != nil {
		return "", nil, err
	}
	return token, session, nil
}

// Resolve verifies token and returns the live session it refers to. Bad,
// expired, or revoked tokens all yield domain.ErrUnauthenticated.
func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthenticated
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return nil, domain.ErrUnauthenticated
	}

	session, err := s.store.Get(ctx, sid)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return nil, domain.ErrUnauthenticated
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if session.Expired(s.now()) {
		return nil, domain.ErrUnauthenticated
	}
	return session, nil
}

// Logout ends session. Logging out without a session is a no-op.
func (s *AuthService) Logout(ctx context.Context, session *domain.Session) error {
	if session == nil {
		return nil
	}
	if err := s.store.Delete(ctx, session.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *AuthService) generateToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sid":      session.ID,
		"username": session.Username,
		"iat":      session.CreatedAt.Unix(),
		"exp":      session.ExpiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}
