package service_token_auth

import (
	"testing"
	"time"

	"github.com/humanbelnik/kinoswap/swipematch/internal/config"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TokenAuthSuite struct {
	suite.Suite
}

var issued = time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

func newService(secret string, at time.Time) *Service {
	return New(config.Auth{Secret: secret, AdminCode: "letmein", TokenTTL: time.Hour},
		WithClock(func() time.Time { return at }))
}

func (s *TokenAuthSuite) TestRoundTrip(t provider.T) {
	t.Parallel()

	token, err := newService("s3cret", issued).Auth("letmein", " alice ")
	require.NoError(t, err)

	userID, err := newService("s3cret", issued.Add(30*time.Minute)).UserID(token)

	require.NoError(t, err)
	assert.Equal(t, "alice", userID)
}

func (s *TokenAuthSuite) TestAuthRejects(t provider.T) {
	t.Parallel()
	svc := newService("s3cret", issued)

	_, err := svc.Auth("guess", "alice")
	assert.ErrorIs(t, err, ErrWrongCode)

	_, err = svc.Auth("letmein", "   ")
	assert.ErrorIs(t, err, ErrInvalidUser)
}

func (s *TokenAuthSuite) TestUserIDRejects(t provider.T) {
	t.Parallel()

	token, err := newService("s3cret", issued).Auth("letmein", "alice")
	require.NoError(t, err)

	testCases := []struct {
		name  string
		svc   *Service
		token string
	}{
		{name: "Should reject expired token", svc: newService("s3cret", issued.Add(2*time.Hour)), token: token},
		{name: "Should reject foreign signature", svc: newService("other", issued), token: token},
		{name: "Should reject garbage", svc: newService("s3cret", issued), token: "not.a.jwt"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()

			_, err := tc.svc.UserID(tc.token)

			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestTokenAuthSuite(t *testing.T) {
	suite.RunSuite(t, new(TokenAuthSuite))
}
