package usecase_session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPoolSize   = 50
	DefaultTTL        = 2 * time.Hour
	HistoryLimit      = 20
	enrichConcurrency = 8
)

//go:generate mockery --name=SessionRepository --output=./mocks/session/repository --filename=repository.go
type SessionRepository interface {
	Create(ctx context.Context, s model.Session) error
	ByID(ctx context.Context, id uuid.UUID) (model.Session, error)
	ByCodePrefix(ctx context.Context, prefix string) (model.Session, error)
	AddParticipant(ctx context.Context, id uuid.UUID, userID string) (bool, error)
	SetStatus(ctx context.Context, id uuid.UUID, from, to model.SessionStatus) (bool, error)
	ReplacePool(ctx context.Context, id uuid.UUID, filters model.Filters, pool []model.MovieID) error
	Delete(ctx context.Context, id uuid.UUID) error
	Active(ctx context.Context, userID string, now time.Time) ([]model.Session, error)
	History(ctx context.Context, userID string, limit int) ([]model.Session, error)
}

//go:generate mockery --name=PoolBuilder --output=./mocks/session/pool --filename=pool.go
type PoolBuilder interface {
	Build(ctx context.Context, participantIDs []string, filters model.Filters, target int) ([]model.MovieID, error)
}

//go:generate mockery --name=MovieProvider --output=./mocks/session/movie --filename=movie.go
type MovieProvider interface {
	GetEnriched(ctx context.Context, id model.MovieID) (model.EnrichedMovie, error)
}

type Usecase struct {
	SessionRepository SessionRepository
	PoolBuilder       PoolBuilder
	MovieProvider     MovieProvider

	poolSize int
	ttl      time.Duration
	now      func() time.Time
	logger   *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithPoolSize(n int) UsecaseOption {
	return func(u *Usecase) {
		if n > 0 {
			u.poolSize = n
		}
	}
}

func WithTTL(ttl time.Duration) UsecaseOption {
	return func(u *Usecase) {
		if ttl > 0 {
			u.ttl = ttl
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
	PoolBuilder PoolBuilder,
	MovieProvider MovieProvider,
	opts ...UsecaseOption,
) *Usecase {
	u := &Usecase{
		SessionRepository: SessionRepository,
		PoolBuilder:       PoolBuilder,
		MovieProvider:     MovieProvider,
		poolSize:          DefaultPoolSize,
		ttl:               DefaultTTL,
		now:               time.Now,
		logger:            slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Create builds the pool first; nothing is stored when that fails.
func (u *Usecase) Create(ctx context.Context, callerID string, invited []string, filters model.Filters) (model.Session, error) {
	if callerID == "" {
		return model.Session{}, model.ErrUnauthenticated
	}
	if err := filters.Validate(); err != nil {
		return model.Session{}, err
	}
	filters = filters.Normalized()

	participants := model.MergeParticipants(callerID, invited)
	pool, err := u.buildPool(ctx, participants, filters)
	if err != nil {
		return model.Session{}, err
	}

	now := u.now().UTC()
	s := model.Session{
		ID:             uuid.New(),
		HostID:         callerID,
		ParticipantIDs: participants,
		Status:         model.StatusActive,
		Pool:           pool,
		Filters:        filters,
		CreatedAt:      now,
		ExpiresAt:      now.Add(u.ttl),
	}
	if err := u.SessionRepository.Create(ctx, s); err != nil {
		return model.Session{}, errors.Join(model.ErrInternal, err)
	}

	u.logger.Info("session created",
		slog.String("session_id", s.ID.String()),
		slog.String("host_id", callerID),
		slog.Int("participants", len(participants)),
		slog.Int("pool_size", len(pool)),
	)
	return s, nil
}

// Join accepts a full session id or its case-insensitive short code.
// Only an active session can be joined; joining it twice is a no-op.
func (u *Usecase) Join(ctx context.Context, callerID string, code string) (model.Session, error) {
	if callerID == "" {
		return model.Session{}, model.ErrUnauthenticated
	}

	s, err := u.resolve(ctx, code)
	if err != nil {
		return model.Session{}, err
	}
	if s.Status != model.StatusActive {
		return model.Session{}, fmt.Errorf("%w: session is %s", model.ErrInvalidState, s.Status)
	}
	if s.IsParticipant(callerID) {
		return u.view(s), nil
	}

	appended, err := u.SessionRepository.AddParticipant(ctx, s.ID, callerID)
	if err != nil {
		return model.Session{}, errors.Join(model.ErrInternal, err)
	}

	fresh, err := u.load(ctx, s.ID)
	if err != nil {
		return model.Session{}, err
	}
	if !appended && !fresh.IsParticipant(callerID) {
		return model.Session{}, fmt.Errorf("%w: session is %s", model.ErrInvalidState, fresh.Status)
	}
	return u.view(fresh), nil
}

func (u *Usecase) resolve(ctx context.Context, code string) (model.Session, error) {
	code = strings.TrimSpace(code)
	if id, err := uuid.Parse(code); err == nil {
		return u.load(ctx, id)
	}
	if !isShortCode(code) {
		return model.Session{}, fmt.Errorf("%w: malformed session code", model.ErrInvalidInput)
	}

	s, err := u.SessionRepository.ByCodePrefix(ctx, strings.ToLower(code))
	if err != nil {
		return model.Session{}, mapRepoErr(err)
	}
	return s, nil
}

func isShortCode(code string) bool {
	if len(code) != model.ShortCodeLen {
		return false
	}
	for _, r := range code {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}

// Start is host only; starting a started session is a no-op.
func (u *Usecase) Start(ctx context.Context, sessionID uuid.UUID, callerID string) (model.Session, error) {
	if callerID == "" {
		return model.Session{}, model.ErrUnauthenticated
	}

	s, err := u.load(ctx, sessionID)
	if err != nil {
		return model.Session{}, err
	}
	if !s.IsHost(callerID) {
		return model.Session{}, fmt.Errorf("%w: only the host can start the session", model.ErrForbidden)
	}

	moved, err := u.SessionRepository.SetStatus(ctx, sessionID, model.StatusActive, model.StatusStarted)
	if err != nil {
		return model.Session{}, errors.Join(model.ErrInternal, err)
	}

	fresh, err := u.load(ctx, sessionID)
	if err != nil {
		return model.Session{}, err
	}
	if !moved && fresh.Status != model.StatusStarted {
		return model.Session{}, fmt.Errorf("%w: session is %s", model.ErrInvalidState, fresh.Status)
	}
	return u.view(fresh), nil
}

// UpdatePreferences rebuilds the pool and drops every swipe of the session.
func (u *Usecase) UpdatePreferences(ctx context.Context, sessionID uuid.UUID, callerID string, filters model.Filters) (model.Session, error) {
	if callerID == "" {
		return model.Session{}, model.ErrUnauthenticated
	}
	if err := filters.Validate(); err != nil {
		return model.Session{}, err
	}
	filters = filters.Normalized()

	s, err := u.load(ctx, sessionID)
	if err != nil {
		return model.Session{}, err
	}
	if !s.IsParticipant(callerID) {
		return model.Session{}, fmt.Errorf("%w: not a participant", model.ErrForbidden)
	}
	if s.Status == model.StatusCompleted {
		return model.Session{}, fmt.Errorf("%w: session already matched", model.ErrInvalidState)
	}

	pool, err := u.buildPool(ctx, s.ParticipantIDs, filters)
	if err != nil {
		return model.Session{}, err
	}
	if err := u.SessionRepository.ReplacePool(ctx, sessionID, filters, pool); err != nil {
		return model.Session{}, mapRepoErr(err)
	}

	s.Filters = filters
	s.Pool = pool
	u.logger.Info("session preferences updated",
		slog.String("session_id", sessionID.String()),
		slog.String("caller_id", callerID),
		slog.Int("pool_size", len(pool)),
	)
	return u.view(s), nil
}

func (u *Usecase) Delete(ctx context.Context, sessionID uuid.UUID, callerID string) error {
	if callerID == "" {
		return model.ErrUnauthenticated
	}

	s, err := u.load(ctx, sessionID)
	if err != nil {
		return err
	}
	if !s.IsHost(callerID) {
		return fmt.Errorf("%w: only the host can delete the session", model.ErrForbidden)
	}

	if err := u.SessionRepository.Delete(ctx, sessionID); err != nil {
		return mapRepoErr(err)
	}
	return nil
}

func (u *Usecase) Get(ctx context.Context, sessionID uuid.UUID, callerID string) (model.Session, error) {
	s, err := u.participantSession(ctx, sessionID, callerID)
	if err != nil {
		return model.Session{}, err
	}
	return u.view(s), nil
}

func (u *Usecase) Active(ctx context.Context, callerID string) ([]model.Session, error) {
	if callerID == "" {
		return nil, model.ErrUnauthenticated
	}

	sessions, err := u.SessionRepository.Active(ctx, callerID, u.now())
	if err != nil {
		return nil, errors.Join(model.ErrInternal, err)
	}
	return u.views(sessions), nil
}

func (u *Usecase) History(ctx context.Context, callerID string) ([]model.Session, error) {
	if callerID == "" {
		return nil, model.ErrUnauthenticated
	}

	sessions, err := u.SessionRepository.History(ctx, callerID, HistoryLimit)
	if err != nil {
		return nil, errors.Join(model.ErrInternal, err)
	}
	return u.views(sessions), nil
}

// Participants is what the lobby polls before swiping starts.
func (u *Usecase) Participants(ctx context.Context, sessionID uuid.UUID, callerID string) (model.ParticipantsInfo, error) {
	s, err := u.participantSession(ctx, sessionID, callerID)
	if err != nil {
		return model.ParticipantsInfo{}, err
	}

	status := s.EffectiveStatus(u.now())
	return model.ParticipantsInfo{
		Count:   len(s.ParticipantIDs),
		Status:  status,
		Started: s.Status == model.StatusStarted,
	}, nil
}

// Movies resolves the pool through the movie cache in pool order.
// Movies that cannot be resolved are left out.
func (u *Usecase) Movies(ctx context.Context, sessionID uuid.UUID, callerID string) ([]model.EnrichedMovie, error) {
	s, err := u.participantSession(ctx, sessionID, callerID)
	if err != nil {
		return nil, err
	}

	resolved := make([]*model.EnrichedMovie, len(s.Pool))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(enrichConcurrency)
	for i, id := range s.Pool {
		g.Go(func() error {
			m, err := u.MovieProvider.GetEnriched(gctx, id)
			if err != nil {
				u.logger.Warn("pool movie skipped",
					slog.String("session_id", sessionID.String()),
					slog.Int64("movie_id", id),
					slog.String("error", err.Error()),
				)
				return nil
			}
			resolved[i] = &m
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	movies := make([]model.EnrichedMovie, 0, len(resolved))
	for _, m := range resolved {
		if m != nil {
			movies = append(movies, *m)
		}
	}
	return movies, nil
}

func (u *Usecase) participantSession(ctx context.Context, sessionID uuid.UUID, callerID string) (model.Session, error) {
	if callerID == "" {
		return model.Session{}, model.ErrUnauthenticated
	}

	s, err := u.load(ctx, sessionID)
	if err != nil {
		return model.Session{}, err
	}
	if !s.IsParticipant(callerID) {
		return model.Session{}, fmt.Errorf("%w: not a participant", model.ErrForbidden)
	}
	return s, nil
}

func (u *Usecase) buildPool(ctx context.Context, participants []string, filters model.Filters) ([]model.MovieID, error) {
	pool, err := u.PoolBuilder.Build(ctx, participants, filters, u.poolSize)
	if err != nil {
		if errors.Is(err, model.ErrUpstream) || errors.Is(err, model.ErrInvalidInput) {
			return nil, err
		}
		return nil, errors.Join(model.ErrInternal, err)
	}
	if len(pool) == 0 {
		return nil, model.ErrEmptyPool
	}
	return pool, nil
}

func (u *Usecase) load(ctx context.Context, id uuid.UUID) (model.Session, error) {
	s, err := u.SessionRepository.ByID(ctx, id)
	if err != nil {
		return model.Session{}, mapRepoErr(err)
	}
	return s, nil
}

// view reports the lazily computed expired status.
func (u *Usecase) view(s model.Session) model.Session {
	s.Status = s.EffectiveStatus(u.now())
	return s
}

func (u *Usecase) views(sessions []model.Session) []model.Session {
	out := make([]model.Session, len(sessions))
	for i, s := range sessions {
		out[i] = u.view(s)
	}
	return out
}

func mapRepoErr(err error) error {
	switch {
	case errors.Is(err, model.ErrResourceNotFound):
		return model.ErrResourceNotFound
	case errors.Is(err, model.ErrInvalidState):
		return err
	default:
		return errors.Join(model.ErrInternal, err)
	}
}
