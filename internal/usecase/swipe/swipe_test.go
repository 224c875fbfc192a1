package usecase_swipe

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
	publisher_mocks "github.com/humanbelnik/kinoswap/swipematch/internal/usecase/swipe/mocks/swipe/publisher"
	swipe_mocks "github.com/humanbelnik/kinoswap/swipematch/internal/usecase/swipe/mocks/swipe/repository"
	session_mocks "github.com/humanbelnik/kinoswap/swipematch/internal/usecase/swipe/mocks/swipe/session"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type UsecaseSwipeUnitSuite struct {
	suite.Suite
}

var now = time.Date(2026, 5, 10, 21, 30, 0, 0, time.UTC)

type resources struct {
	usecase   *Usecase
	sessions  *session_mocks.SessionRepository
	swipes    *swipe_mocks.SwipeRepository
	publisher *publisher_mocks.MatchPublisher
	ctx       context.Context
}

func initResources(t provider.T) *resources {
	sessions := session_mocks.NewSessionRepository(t)
	swipes := swipe_mocks.NewSwipeRepository(t)
	publisher := publisher_mocks.NewMatchPublisher(t)

	return &resources{
		usecase: New(sessions, swipes,
			WithPublisher(publisher),
			WithClock(func() time.Time { return now }),
		),
		sessions:  sessions,
		swipes:    swipes,
		publisher: publisher,
		ctx:       context.Background(),
	}
}

var (
	sessionID = uuid.MustParse("9d1f0c55-2222-4333-8444-555566667777")
	pool      = []model.MovieID{550, 603, 680}
)

func pair(status model.SessionStatus) model.Session {
	return model.Session{
		ID:             sessionID,
		HostID:         "alice",
		ParticipantIDs: []string{"alice", "bob"},
		Status:         status,
		Pool:           pool,
		ExpiresAt:      now.Add(time.Hour),
	}
}

func swipeOf(userID string, movieID model.MovieID, d model.Direction) model.Swipe {
	return model.Swipe{SessionID: sessionID, UserID: userID, MovieID: movieID, Direction: d, SwipedAt: now}
}

func (s *UsecaseSwipeUnitSuite) TestRecordSwipe(t provider.T) {
	t.Parallel()

	match := model.Match{SessionID: sessionID, MovieID: 603, MatchedAt: now}

	testCases := []struct {
		name          string
		callerID      string
		movieID       model.MovieID
		direction     model.Direction
		setupMocks    func(r *resources)
		expectMatch   bool
		expectedError error
	}{
		{
			name:      "Should match when last participant accepts",
			callerID:  "bob",
			movieID:   603,
			direction: model.DirectionRight,
			setupMocks: func(r *resources) {
				r.sessions.On("ByID", r.ctx, sessionID).Return(pair(model.StatusStarted), nil).Twice()
				r.swipes.On("Upsert", r.ctx, swipeOf("bob", 603, model.DirectionRight), pool).Return(true, nil).Once()
				r.swipes.On("CountAccepts", r.ctx, sessionID, model.MovieID(603)).Return(2, nil).Once()
				r.sessions.On("CompleteWithMatch", r.ctx, sessionID, model.MovieID(603), now).Return(match, true, nil).Once()
				r.publisher.On("PublishMatch", mock.Anything, match).Return(nil).Once()
			},
			expectMatch: true,
		},
		{
			name:      "Should count super like as accept",
			callerID:  "bob",
			movieID:   603,
			direction: model.DirectionSuper,
			setupMocks: func(r *resources) {
				r.sessions.On("ByID", r.ctx, sessionID).Return(pair(model.StatusActive), nil).Twice()
				r.swipes.On("Upsert", r.ctx, swipeOf("bob", 603, model.DirectionSuper), pool).Return(true, nil).Once()
				r.swipes.On("CountAccepts", r.ctx, sessionID, model.MovieID(603)).Return(2, nil).Once()
				r.sessions.On("CompleteWithMatch", r.ctx, sessionID, model.MovieID(603), now).Return(match, true, nil).Once()
				r.publisher.On("PublishMatch", mock.Anything, match).Return(errors.New("broker down")).Once()
			},
			expectMatch: true,
		},
		{
			name:      "Should report stored match to race loser without publishing",
			callerID:  "bob",
			movieID:   603,
			direction: model.DirectionRight,
			setupMocks: func(r *resources) {
				r.sessions.On("ByID", r.ctx, sessionID).Return(pair(model.StatusStarted), nil).Twice()
				r.swipes.On("Upsert", r.ctx, swipeOf("bob", 603, model.DirectionRight), pool).Return(true, nil).Once()
				r.swipes.On("CountAccepts", r.ctx, sessionID, model.MovieID(603)).Return(2, nil).Once()
				r.sessions.On("CompleteWithMatch", r.ctx, sessionID, model.MovieID(603), now).Return(match, false, nil).Once()
			},
			expectMatch: true,
		},
		{
			name:      "Should not match while someone has not accepted",
			callerID:  "alice",
			movieID:   603,
			direction: model.DirectionRight,
			setupMocks: func(r *resources) {
				r.sessions.On("ByID", r.ctx, sessionID).Return(pair(model.StatusStarted), nil).Twice()
				r.swipes.On("Upsert", r.ctx, swipeOf("alice", 603, model.DirectionRight), pool).Return(true, nil).Once()
				r.swipes.On("CountAccepts", r.ctx, sessionID, model.MovieID(603)).Return(1, nil).Once()
			},
		},
		{
			name:      "Should count late joiner",
			callerID:  "bob",
			movieID:   603,
			direction: model.DirectionRight,
			setupMocks: func(r *resources) {
				grown := pair(model.StatusActive)
				grown.ParticipantIDs = append(grown.ParticipantIDs, "carol")
				r.sessions.On("ByID", r.ctx, sessionID).Return(pair(model.StatusActive), nil).Once()
				r.sessions.On("ByID", r.ctx, sessionID).Return(grown, nil).Once()
				r.swipes.On("Upsert", r.ctx, swipeOf("bob", 603, model.DirectionRight), pool).Return(true, nil).Once()
				r.swipes.On("CountAccepts", r.ctx, sessionID, model.MovieID(603)).Return(2, nil).Once()
			},
		},
		{
			name:      "Should store left swipe without evaluating",
			callerID:  "bob",
			movieID:   603,
			direction: model.DirectionLeft,
			setupMocks: func(r *resources) {
				r.sessions.On("ByID", r.ctx, sessionID).Return(pair(model.StatusStarted), nil).Once()
				r.swipes.On("Upsert", r.ctx, swipeOf("bob", 603, model.DirectionLeft), pool).Return(true, nil).Once()
			},
		},
		{
			name:          "Should reject anonymous caller",
			movieID:       603,
			direction:     model.DirectionRight,
			setupMocks:    func(r *resources) {},
			expectedError: model.ErrUnauthenticated,
		},
		{
			name:          "Should reject unknown direction",
			callerID:      "bob",
			movieID:       603,
			direction:     model.Direction("up"),
			setupMocks:    func(r *resources) {},
			expectedError: model.ErrInvalidInput,
		},
		{
			name:      "Should report missing session",
			callerID:  "bob",
			movieID:   603,
			direction: model.DirectionRight,
			setupMocks: func(r *resources) {
				r.sessions.On("ByID", r.ctx, sessionID).Return(model.Session{}, model.ErrResourceNotFound).Once()
			},
			expectedError: model.ErrResourceNotFound,
		},
		{
			name:      "Should forbid outsiders",
			callerID:  "mallory",
			movieID:   603,
			direction: model.DirectionRight,
			setupMocks: func(r *resources) {
				r.sessions.On("ByID", r.ctx, sessionID).Return(pair(model.StatusStarted), nil).Once()
			},
			expectedError: model.ErrForbidden,
		},
		{
			name:      "Should refuse completed session",
			callerID:  "bob",
			movieID:   603,
			direction: model.DirectionRight,
			setupMocks: func(r *resources) {
				r.sessions.On("ByID", r.ctx, sessionID).Return(pair(model.StatusCompleted), nil).Once()
			},
			expectedError: model.ErrInvalidState,
		},
		{
			name:      "Should refuse movie outside the pool",
			callerID:  "bob",
			movieID:   13,
			direction: model.DirectionRight,
			setupMocks: func(r *resources) {
				r.sessions.On("ByID", r.ctx, sessionID).Return(pair(model.StatusStarted), nil).Once()
			},
			expectedError: model.ErrResourceNotFound,
		},
		{
			name:      "Should refuse swipe when pool was replaced after read",
			callerID:  "bob",
			movieID:   603,
			direction: model.DirectionRight,
			setupMocks: func(r *resources) {
				replaced := pair(model.StatusStarted)
				replaced.Pool = []model.MovieID{603, 99}
				r.sessions.On("ByID", r.ctx, sessionID).Return(pair(model.StatusStarted), nil).Once()
				r.swipes.On("Upsert", r.ctx, swipeOf("bob", 603, model.DirectionRight), pool).Return(false, nil).Once()
				r.sessions.On("ByID", r.ctx, sessionID).Return(replaced, nil).Once()
			},
			expectedError: model.ErrInvalidState,
		},
		{
			name:      "Should report movie dropped by new pool",
			callerID:  "bob",
			movieID:   550,
			direction: model.DirectionLeft,
			setupMocks: func(r *resources) {
				replaced := pair(model.StatusStarted)
				replaced.Pool = []model.MovieID{603, 99}
				r.sessions.On("ByID", r.ctx, sessionID).Return(pair(model.StatusStarted), nil).Once()
				r.swipes.On("Upsert", r.ctx, swipeOf("bob", 550, model.DirectionLeft), pool).Return(false, nil).Once()
				r.sessions.On("ByID", r.ctx, sessionID).Return(replaced, nil).Once()
			},
			expectedError: model.ErrResourceNotFound,
		},
		{
			name:      "Should refuse swipe when session matched after read",
			callerID:  "bob",
			movieID:   680,
			direction: model.DirectionRight,
			setupMocks: func(r *resources) {
				r.sessions.On("ByID", r.ctx, sessionID).Return(pair(model.StatusStarted), nil).Once()
				r.swipes.On("Upsert", r.ctx, swipeOf("bob", 680, model.DirectionRight), pool).Return(false, nil).Once()
				r.sessions.On("ByID", r.ctx, sessionID).Return(pair(model.StatusCompleted), nil).Once()
			},
			expectedError: model.ErrInvalidState,
		},
		{
			name:      "Should wrap storage failure",
			callerID:  "bob",
			movieID:   603,
			direction: model.DirectionRight,
			setupMocks: func(r *resources) {
				r.sessions.On("ByID", r.ctx, sessionID).Return(pair(model.StatusStarted), nil).Once()
				r.swipes.On("Upsert", r.ctx, mock.AnythingOfType("model.Swipe"), pool).Return(false, errors.New("deadlock detected")).Once()
			},
			expectedError: model.ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got, err := r.usecase.RecordSwipe(r.ctx, sessionID, tc.callerID, tc.movieID, tc.direction)
			r.usecase.Flush()

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectMatch, got.Matched)
			if tc.expectMatch {
				require.NotNil(t, got.MovieID)
				assert.Equal(t, model.MovieID(603), *got.MovieID)
			} else {
				assert.Nil(t, got.MovieID)
			}
		})
	}
}

func (s *UsecaseSwipeUnitSuite) TestSwipes(t provider.T) {
	t.Parallel()

	t.Run("Should list own swipes", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		own := []model.Swipe{swipeOf("bob", 550, model.DirectionLeft)}
		r.sessions.On("ByID", r.ctx, sessionID).Return(pair(model.StatusStarted), nil).Once()
		r.swipes.On("ByUser", r.ctx, sessionID, "bob").Return(own, nil).Once()

		got, err := r.usecase.Swipes(r.ctx, sessionID, "bob")

		require.NoError(t, err)
		assert.Equal(t, own, got)
	})

	t.Run("Should forbid outsiders", func(t provider.T) {
		t.Parallel()
		r := initResources(t)
		r.sessions.On("ByID", r.ctx, sessionID).Return(pair(model.StatusStarted), nil).Once()

		_, err := r.usecase.Swipes(r.ctx, sessionID, "mallory")

		assert.ErrorIs(t, err, model.ErrForbidden)
	})
}

// memoryStore keeps sessions and swipes behind one lock and completes a
// session with the same compare and set the SQL driver performs.
type memoryStore struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]model.Session
	swipes   map[string]model.Swipe
	matches  map[uuid.UUID]model.Match
}

func newMemoryStore(s model.Session) *memoryStore {
	return &memoryStore{
		sessions: map[uuid.UUID]model.Session{s.ID: s},
		swipes:   map[string]model.Swipe{},
		matches:  map[uuid.UUID]model.Match{},
	}
}

func (m *memoryStore) ByID(_ context.Context, id uuid.UUID) (model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[id]
	if !ok {
		return model.Session{}, model.ErrResourceNotFound
	}
	return s, nil
}

func (m *memoryStore) CompleteWithMatch(_ context.Context, id uuid.UUID, movieID model.MovieID, at time.Time) (model.Match, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.sessions[id]
	if s.Status == model.StatusCompleted {
		return m.matches[id], false, nil
	}
	s.Status = model.StatusCompleted
	s.MatchedMovieID = &movieID
	m.sessions[id] = s
	match := model.Match{SessionID: id, MovieID: movieID, MatchedAt: at}
	m.matches[id] = match
	return match, true, nil
}

func (m *memoryStore) Upsert(_ context.Context, s model.Swipe, pool []model.MovieID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	session, ok := m.sessions[s.SessionID]
	if !ok || session.Status == model.StatusCompleted || !slices.Equal(session.Pool, pool) || !session.InPool(s.MovieID) {
		return false, nil
	}
	m.swipes[fmt.Sprintf("%s/%s/%d", s.SessionID, s.UserID, s.MovieID)] = s
	return true, nil
}

// replacePool mirrors the SQL driver: new pool, every swipe forgotten.
func (m *memoryStore) replacePool(id uuid.UUID, pool []model.MovieID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s := m.sessions[id]
	s.Pool = pool
	m.sessions[id] = s
	for key, sw := range m.swipes {
		if sw.SessionID == id {
			delete(m.swipes, key)
		}
	}
}

// replacedAfterRead runs a preference update right after the first
// session read, between the swipe's checks and its write.
type replacedAfterRead struct {
	*memoryStore
	once    sync.Once
	newPool []model.MovieID
}

func (r *replacedAfterRead) ByID(ctx context.Context, id uuid.UUID) (model.Session, error) {
	s, err := r.memoryStore.ByID(ctx, id)
	r.once.Do(func() { r.memoryStore.replacePool(id, r.newPool) })
	return s, err
}

func (m *memoryStore) CountAccepts(_ context.Context, sessionID uuid.UUID, movieID model.MovieID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, s := range m.swipes {
		if s.SessionID == sessionID && s.MovieID == movieID && s.Direction.IsAccept() {
			n++
		}
	}
	return n, nil
}

func (m *memoryStore) ByUser(_ context.Context, sessionID uuid.UUID, userID string) ([]model.Swipe, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Swipe
	for _, s := range m.swipes {
		if s.SessionID == sessionID && s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, nil
}

type countingPublisher struct {
	mu     sync.Mutex
	events []model.Match
}

func (p *countingPublisher) PublishMatch(_ context.Context, m model.Match) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, m)
	return nil
}

// Every participant accepts two different movies at once. Whatever the
// interleaving, the session completes once and everyone who sees a
// match sees the same movie.
func (s *UsecaseSwipeUnitSuite) TestConcurrentAcceptsCompleteOnce(t provider.T) {
	t.Parallel()

	participants := []string{"p0", "p1", "p2", "p3", "p4", "p5"}
	for round := 0; round < 20; round++ {
		session := model.Session{
			ID:             uuid.New(),
			HostID:         participants[0],
			ParticipantIDs: participants,
			Status:         model.StatusStarted,
			Pool:           []model.MovieID{1, 2},
			ExpiresAt:      now.Add(time.Hour),
		}
		store := newMemoryStore(session)
		publisher := &countingPublisher{}
		uc := New(store, store, WithPublisher(publisher))

		results := make([]model.SwipeResult, 0, len(participants)*2)
		var mu sync.Mutex
		g, ctx := errgroup.WithContext(context.Background())
		for _, p := range participants {
			for _, movieID := range session.Pool {
				g.Go(func() error {
					res, err := uc.RecordSwipe(ctx, session.ID, p, movieID, model.DirectionRight)
					if errors.Is(err, model.ErrInvalidState) {
						return nil
					}
					if err != nil {
						return err
					}
					mu.Lock()
					results = append(results, res)
					mu.Unlock()
					return nil
				})
			}
		}
		require.NoError(t, g.Wait())
		uc.Flush()

		require.Len(t, publisher.events, 1)
		winner := publisher.events[0].MovieID
		stored, _ := store.ByID(context.Background(), session.ID)
		assert.Equal(t, model.StatusCompleted, stored.Status)
		require.NotNil(t, stored.MatchedMovieID)
		assert.Equal(t, winner, *stored.MatchedMovieID)

		for _, res := range results {
			if res.Matched {
				assert.Equal(t, winner, *res.MovieID)
			}
		}
	}
}

func (s *UsecaseSwipeUnitSuite) TestSwipeOnRetiredPoolDoesNotCount(t provider.T) {
	t.Parallel()

	session := pair(model.StatusStarted)
	session.Pool = []model.MovieID{11, 12}
	store := &replacedAfterRead{
		memoryStore: newMemoryStore(session),
		newPool:     []model.MovieID{11, 99},
	}
	uc := New(store, store)
	ctx := context.Background()

	_, err := uc.RecordSwipe(ctx, sessionID, "alice", 11, model.DirectionRight)
	assert.ErrorIs(t, err, model.ErrInvalidState)

	own, err := uc.Swipes(ctx, sessionID, "alice")
	require.NoError(t, err)
	assert.Empty(t, own)

	res, err := uc.RecordSwipe(ctx, sessionID, "bob", 11, model.DirectionRight)
	require.NoError(t, err)
	assert.False(t, res.Matched)

	stored, _ := store.ByID(ctx, sessionID)
	assert.Equal(t, model.StatusStarted, stored.Status)
}

// blockingPublisher holds every event until its context ends.
type blockingPublisher struct {
	done chan struct{}
}

func (p *blockingPublisher) PublishMatch(ctx context.Context, _ model.Match) error {
	<-ctx.Done()
	close(p.done)
	return ctx.Err()
}

func (s *UsecaseSwipeUnitSuite) TestSlowBrokerDoesNotHoldSwipe(t provider.T) {
	t.Parallel()

	store := newMemoryStore(pair(model.StatusStarted))
	publisher := &blockingPublisher{done: make(chan struct{})}
	uc := New(store, store, WithPublisher(publisher), WithPublishTimeout(200*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())

	_, err := uc.RecordSwipe(ctx, sessionID, "alice", 603, model.DirectionRight)
	require.NoError(t, err)

	started := time.Now()
	res, err := uc.RecordSwipe(ctx, sessionID, "bob", 603, model.DirectionRight)
	elapsed := time.Since(started)
	cancel()

	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.Less(t, elapsed, 100*time.Millisecond)

	select {
	case <-publisher.done:
		t.Errorf("announcement ended with the request context")
	default:
	}

	uc.Flush()
	select {
	case <-publisher.done:
	default:
		t.Errorf("announcement still running after flush")
	}
}

func TestUsecaseSwipeUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseSwipeUnitSuite))
}
