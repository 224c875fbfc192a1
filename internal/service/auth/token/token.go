package service_token_auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/humanbelnik/kinoswap/swipematch/internal/config"
)

//! Dev identity bridge: whoever knows the admin code may act as any user.

type Token = string

var (
	ErrWrongCode    = errors.New("wrong code")
	ErrInvalidUser  = errors.New("user id is required")
	ErrInvalidToken = errors.New("invalid token")
	ErrInternal     = errors.New("internal error")
)

const issuer = "swipematch"

type claims struct {
	jwt.RegisteredClaims
}

type Service struct {
	secret    []byte
	adminCode string
	ttl       time.Duration
	now       func() time.Time
}

type ServiceOption func(*Service)

func WithClock(now func() time.Time) ServiceOption {
	return func(s *Service) {
		s.now = now
	}
}

func New(cfg config.Auth, opts ...ServiceOption) *Service {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	s := &Service{
		secret:    []byte(cfg.Secret),
		adminCode: cfg.AdminCode,
		ttl:       ttl,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Auth issues an HS256 token whose subject is the caller id.
func (s *Service) Auth(code string, userID string) (Token, error) {
	if code != s.adminCode {
		return "", ErrWrongCode
	}
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrInvalidUser
	}

	now := s.now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	})
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", errors.Join(ErrInternal, err)
	}
	return signed, nil
}

// UserID returns the subject of a valid token.
func (s *Service) UserID(t Token) (string, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(t, &c, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid || c.Subject == "" {
		return "", ErrInvalidToken
	}
	return c.Subject, nil
}
