package usecase_friend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
)

//go:generate mockery --name=Repository --output=./mocks/friend/repository --filename=repository.go
type Repository interface {
	Accepted(ctx context.Context, userID string) ([]model.Friendship, error)
	ByID(ctx context.Context, id uuid.UUID) (model.Friendship, error)
	Request(ctx context.Context, f model.Friendship) (model.Friendship, error)
	Accept(ctx context.Context, id uuid.UUID, userID string, at time.Time) (model.Friendship, error)
}

type Usecase struct {
	Repository Repository

	now    func() time.Time
	logger *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithClock(now func() time.Time) UsecaseOption {
	return func(u *Usecase) {
		u.now = now
	}
}

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(repository Repository, opts ...UsecaseOption) *Usecase {
	u := &Usecase{
		Repository: repository,
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *Usecase) List(ctx context.Context, callerID string) ([]model.Friendship, error) {
	if callerID == "" {
		return nil, model.ErrUnauthenticated
	}
	friends, err := u.Repository.Accepted(ctx, callerID)
	if err != nil {
		return nil, errors.Join(model.ErrInternal, err)
	}
	return friends, nil
}

// SendRequest is idempotent: asking again returns the existing pair
// whatever its status.
func (u *Usecase) SendRequest(ctx context.Context, callerID, targetID string) (model.Friendship, error) {
	if callerID == "" {
		return model.Friendship{}, model.ErrUnauthenticated
	}
	targetID = strings.TrimSpace(targetID)
	if targetID == "" || targetID == callerID {
		return model.Friendship{}, fmt.Errorf("%w: invalid friend id", model.ErrInvalidInput)
	}

	first, second := model.FriendPair(callerID, targetID)
	f, err := u.Repository.Request(ctx, model.Friendship{
		ID:        uuid.New(),
		UserID1:   first,
		UserID2:   second,
		Status:    model.FriendshipPending,
		CreatedAt: u.now().UTC(),
	})
	if err != nil {
		return model.Friendship{}, errors.Join(model.ErrInternal, err)
	}
	return f, nil
}

func (u *Usecase) Accept(ctx context.Context, callerID string, id uuid.UUID) (model.Friendship, error) {
	if callerID == "" {
		return model.Friendship{}, model.ErrUnauthenticated
	}

	f, err := u.Repository.ByID(ctx, id)
	if err != nil {
		return model.Friendship{}, mapRepoErr(err)
	}
	if !f.Has(callerID) {
		return model.Friendship{}, fmt.Errorf("%w: not part of this friendship", model.ErrForbidden)
	}

	accepted, err := u.Repository.Accept(ctx, id, callerID, u.now().UTC())
	if err != nil {
		return model.Friendship{}, mapRepoErr(err)
	}

	u.logger.Info("friendship accepted",
		slog.String("friendship_id", id.String()),
		slog.String("user_id", callerID),
	)
	return accepted, nil
}

func mapRepoErr(err error) error {
	if errors.Is(err, model.ErrResourceNotFound) {
		return model.ErrResourceNotFound
	}
	return errors.Join(model.ErrInternal, err)
}
