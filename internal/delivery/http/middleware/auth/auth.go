package http_auth_middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/common"
)

type TokenVerifier interface {
	UserID(token string) (string, error)
}

type Middleware struct {
	verifier TokenVerifier
	logger   *slog.Logger
}

type MiddlewareOption func(*Middleware)

func WithLogger(logger *slog.Logger) MiddlewareOption {
	return func(m *Middleware) {
		m.logger = logger
	}
}

func New(
	verifier TokenVerifier,
	opts ...MiddlewareOption,
) *Middleware {
	m := &Middleware{
		verifier: verifier,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// AuthRequired resolves the bearer token into the caller id.
func (m *Middleware) AuthRequired() gin.HandlerFunc {
	const prefix = "Bearer "
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, prefix) {
			http_common.Fail(ctx, http.StatusUnauthorized, "missing bearer token")
			ctx.Abort()
			return
		}

		userID, err := m.verifier.UserID(strings.TrimSpace(strings.TrimPrefix(header, prefix)))
		if err != nil {
			m.logger.Warn("invalid token", slog.String("path", ctx.FullPath()))
			http_common.Fail(ctx, http.StatusUnauthorized, "invalid token")
			ctx.Abort()
			return
		}

		ctx.Set(http_common.UserIDKey, userID)
		ctx.Next()
	}
}
