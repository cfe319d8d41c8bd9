package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abstraxion/abstraxion-dashboard/libs/go/logger"
	"github.com/abstraxion/abstraxion-dashboard/libs/go/types/business"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

var (
	// ErrInvalidToken is returned when the provided token is invalid
	ErrInvalidToken    = errors.New("invalid session token")
	ErrTokenExpired    = errors.New("session expired, please sign in again")
	ErrInvalidIssuer   = errors.New("session token has an invalid issuer")
	ErrInvalidAudience = errors.New("session token has an invalid audience")
	ErrJWKSUnavailable = errors.New("session keys are not available")
)

// SessionClaims are the claims of an auth provider session JWT.
type SessionClaims struct {
	jwt.RegisteredClaims
	Session *SessionInfo `json:"https://stytch.com/session,omitempty"`
}

// SessionInfo is the provider specific session object embedded in the JWT.
type SessionInfo struct {
	ID        string `json:"id"`
	StartedAt string `json:"started_at"`
	ExpiresAt string `json:"expires_at"`
}

// Authenticator returns the JWT authenticator id registered on XION smart
// accounts, "<aud>.<sub>".
func (c *SessionClaims) Authenticator() string {
	if len(c.Audience) == 0 || c.Subject == "" {
		return ""
	}
	return c.Audience[0] + "." + c.Subject
}

// Config configures session verification.
type Config struct {
	JWKSURL  string
	Issuer   string
	Audience string
}

// AuthClient verifies session JWTs against the provider JWKS.
type AuthClient struct {
	config  Config
	keyfunc jwt.Keyfunc
	jwks    *keyfunc.JWKS
	now     func() time.Time
}

// NewAuthClient fetches the JWKS and keeps it refreshed in the background.
func NewAuthClient(config Config) (*AuthClient, error) {
	if config.JWKSURL == "" {
		return nil, fmt.Errorf("AUTH_JWKS_ENDPOINT not set")
	}

	log := logger.ForComponent(logger.ComponentAuth)
	jwks, err := keyfunc.Get(config.JWKSURL, keyfunc.Options{
		RefreshInterval:  time.Hour,
		RefreshRateLimit: time.Minute,
		RefreshTimeout:   time.Second * 10,
		RefreshErrorHandler: func(err error) {
			log.Error("JWKS refresh error", zap.Error(err))
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create JWKS: %w", err)
	}

	log.Info("Session JWKS initialized",
		zap.String("jwks_url", config.JWKSURL),
		zap.String("issuer", config.Issuer),
	)

	client := NewAuthClientWithKeyfunc(config, jwks.Keyfunc)
	client.jwks = jwks
	return client, nil
}

// NewAuthClientWithKeyfunc builds a client that resolves signing keys with kf.
func NewAuthClientWithKeyfunc(config Config, kf jwt.Keyfunc) *AuthClient {
	return &AuthClient{
		config:  config,
		keyfunc: kf,
		now:     time.Now,
	}
}

// Close stops the background JWKS refresh.
func (ac *AuthClient) Close() {
	if ac.jwks != nil {
		ac.jwks.EndBackground()
	}
}

// ParseSession validates tokenString and returns its claims.
func (ac *AuthClient) ParseSession(tokenString string) (*SessionClaims, error) {
	if ac.keyfunc == nil {
		return nil, ErrJWKSUnavailable
	}

	opts := []jwt.ParserOption{
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(ac.now),
	}
	if ac.config.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(ac.config.Issuer))
	}
	if ac.config.Audience != "" {
		opts = append(opts, jwt.WithAudience(ac.config.Audience))
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, ac.keyfunc, opts...)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return nil, ErrInvalidIssuer
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return nil, ErrInvalidAudience
	case err != nil:
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	case !token.Valid:
		return nil, ErrInvalidToken
	}

	if claims.Authenticator() == "" {
		return nil, fmt.Errorf("%w: missing subject or audience", ErrInvalidToken)
	}
	return claims, nil
}

// VerifySession validates the token and returns the session it describes.
func (ac *AuthClient) VerifySession(_ context.Context, tokenString string) (*business.Session, error) {
	claims, err := ac.ParseSession(tokenString)
	if err != nil {
		return nil, err
	}

	session := &business.Session{
		Authenticator: claims.Authenticator(),
		Subject:       claims.Subject,
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}
	return session, nil
}
