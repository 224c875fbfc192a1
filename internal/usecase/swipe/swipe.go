package usecase_swipe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
)

//go:generate mockery --name=SessionRepository --output=./mocks/swipe/session --filename=session.go
type SessionRepository interface {
	ByID(ctx context.Context, id uuid.UUID) (model.Session, error)
	CompleteWithMatch(ctx context.Context, id uuid.UUID, movieID model.MovieID, at time.Time) (model.Match, bool, error)
}

//go:generate mockery --name=SwipeRepository --output=./mocks/swipe/repository --filename=repository.go
type SwipeRepository interface {
	// Upsert stores s only while the session is unfinished and its pool
	// is still exactly pool; stored is false otherwise.
	Upsert(ctx context.Context, s model.Swipe, pool []model.MovieID) (stored bool, err error)
	CountAccepts(ctx context.Context, sessionID uuid.UUID, movieID model.MovieID) (int, error)
	ByUser(ctx context.Context, sessionID uuid.UUID, userID string) ([]model.Swipe, error)
}

//go:generate mockery --name=MatchPublisher --output=./mocks/swipe/publisher --filename=publisher.go
type MatchPublisher interface {
	PublishMatch(ctx context.Context, m model.Match) error
}

type Usecase struct {
	SessionRepository SessionRepository
	SwipeRepository   SwipeRepository
	MatchPublisher    MatchPublisher

	publishTimeout time.Duration
	pending        sync.WaitGroup
	now            func() time.Time
	logger         *slog.Logger
}

const DefaultPublishTimeout = 5 * time.Second

type UsecaseOption func(*Usecase)

// WithPublisher announces matches. Without one matches are only stored.
func WithPublisher(p MatchPublisher) UsecaseOption {
	return func(u *Usecase) {
		u.MatchPublisher = p
	}
}

// WithPublishTimeout bounds a single match announcement.
func WithPublishTimeout(d time.Duration) UsecaseOption {
	return func(u *Usecase) {
		if d > 0 {
			u.publishTimeout = d
		}
	}
}

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

func New(
	SessionRepository SessionRepository,
	SwipeRepository SwipeRepository,
	opts ...UsecaseOption,
) *Usecase {
	u := &Usecase{
		SessionRepository: SessionRepository,
		SwipeRepository:   SwipeRepository,
		publishTimeout:    DefaultPublishTimeout,
		now:               time.Now,
		logger:            slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// RecordSwipe stores the caller's latest decision on a pool movie and
// completes the session once every participant has accepted it.
// Concurrent accepts are settled by the repository: exactly one caller
// completes the session, the rest report the stored match.
func (u *Usecase) RecordSwipe(ctx context.Context, sessionID uuid.UUID, callerID string, movieID model.MovieID, direction model.Direction) (model.SwipeResult, error) {
	if callerID == "" {
		return model.SwipeResult{}, model.ErrUnauthenticated
	}
	if !direction.Valid() {
		return model.SwipeResult{}, fmt.Errorf("%w: unknown direction %q", model.ErrInvalidInput, direction)
	}

	s, err := u.load(ctx, sessionID)
	if err != nil {
		return model.SwipeResult{}, err
	}
	if !s.IsParticipant(callerID) {
		return model.SwipeResult{}, fmt.Errorf("%w: not a participant", model.ErrForbidden)
	}
	if s.Status == model.StatusCompleted {
		return model.SwipeResult{}, fmt.Errorf("%w: session already matched", model.ErrInvalidState)
	}
	if !s.InPool(movieID) {
		return model.SwipeResult{}, fmt.Errorf("%w: movie %d is not in the session pool", model.ErrResourceNotFound, movieID)
	}

	swipe := model.Swipe{
		SessionID: sessionID,
		UserID:    callerID,
		MovieID:   movieID,
		Direction: direction,
		SwipedAt:  u.now().UTC(),
	}
	stored, err := u.SwipeRepository.Upsert(ctx, swipe, s.Pool)
	if err != nil {
		return model.SwipeResult{}, errors.Join(model.ErrInternal, err)
	}
	if !stored {
		return model.SwipeResult{}, u.rejected(ctx, sessionID, movieID)
	}

	if !direction.IsAccept() {
		return model.SwipeResult{}, nil
	}
	return u.evaluate(ctx, sessionID, movieID)
}

// rejected explains a swipe the store refused because the session moved
// on after it was read.
func (u *Usecase) rejected(ctx context.Context, sessionID uuid.UUID, movieID model.MovieID) error {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return err
	}
	switch {
	case s.Status == model.StatusCompleted:
		return fmt.Errorf("%w: session already matched", model.ErrInvalidState)
	case !s.InPool(movieID):
		return fmt.Errorf("%w: movie %d is not in the session pool", model.ErrResourceNotFound, movieID)
	default:
		return fmt.Errorf("%w: session pool changed, reload and swipe again", model.ErrInvalidState)
	}
}

// evaluate re-reads the participant list so late joiners count.
func (u *Usecase) evaluate(ctx context.Context, sessionID uuid.UUID, movieID model.MovieID) (model.SwipeResult, error) {
	s, err := u.load(ctx, sessionID)
	if err != nil {
		return model.SwipeResult{}, err
	}

	accepts, err := u.SwipeRepository.CountAccepts(ctx, sessionID, movieID)
	if err != nil {
		return model.SwipeResult{}, errors.Join(model.ErrInternal, err)
	}
	if accepts < len(s.ParticipantIDs) {
		return model.SwipeResult{}, nil
	}

	match, won, err := u.SessionRepository.CompleteWithMatch(ctx, sessionID, movieID, u.now().UTC())
	if err != nil {
		if errors.Is(err, model.ErrResourceNotFound) {
			return model.SwipeResult{}, model.ErrResourceNotFound
		}
		return model.SwipeResult{}, errors.Join(model.ErrInternal, err)
	}

	if won {
		u.logger.Info("session matched",
			slog.String("session_id", sessionID.String()),
			slog.Int64("movie_id", match.MovieID),
			slog.Int("participants", len(s.ParticipantIDs)),
		)
		u.announce(ctx, match)
	}

	matched := match.MovieID
	return model.SwipeResult{Matched: true, MovieID: &matched}, nil
}

// announce publishes in the background so a slow broker never holds the
// swipe that completed the session.
func (u *Usecase) announce(ctx context.Context, m model.Match) {
	if u.MatchPublisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), u.publishTimeout)
	u.pending.Add(1)
	go func() {
		defer u.pending.Done()
		defer cancel()
		if err := u.MatchPublisher.PublishMatch(ctx, m); err != nil {
			u.logger.Warn("match event not published",
				slog.String("session_id", m.SessionID.String()),
				slog.String("error", err.Error()),
			)
		}
	}()
}

// Flush waits for announcements still in flight.
func (u *Usecase) Flush() {
	u.pending.Wait()
}

// Swipes lists the caller's own decisions in the session.
func (u *Usecase) Swipes(ctx context.Context, sessionID uuid.UUID, callerID string) ([]model.Swipe, error) {
	if callerID == "" {
		return nil, model.ErrUnauthenticated
	}

	s, err := u.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !s.IsParticipant(callerID) {
		return nil, fmt.Errorf("%w: not a participant", model.ErrForbidden)
	}

	swipes, err := u.SwipeRepository.ByUser(ctx, sessionID, callerID)
	if err != nil {
		return nil, errors.Join(model.ErrInternal, err)
	}
	return swipes, nil
}

func (u *Usecase) load(ctx context.Context, id uuid.UUID) (model.Session, error) {
	s, err := u.SessionRepository.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrResourceNotFound) {
			return model.Session{}, model.ErrResourceNotFound
		}
		return model.Session{}, errors.Join(model.ErrInternal, err)
	}
	return s, nil
}
