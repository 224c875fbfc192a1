package usecase_friend

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
	repo_mocks "github.com/humanbelnik/kinoswap/swipematch/internal/usecase/friend/mocks/friend/repository"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type UsecaseFriendUnitSuite struct {
	suite.Suite
}

var now = time.Date(2026, 1, 20, 8, 0, 0, 0, time.UTC)

type resources struct {
	usecase *Usecase
	repo    *repo_mocks.Repository
	ctx     context.Context
}

func initResources(t provider.T) *resources {
	repo := repo_mocks.NewRepository(t)
	return &resources{
		usecase: New(repo, WithClock(func() time.Time { return now })),
		repo:    repo,
		ctx:     context.Background(),
	}
}

func (s *UsecaseFriendUnitSuite) TestSendRequest(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name          string
		callerID      string
		targetID      string
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name:     "Should store pair in sorted order",
			callerID: "zoe",
			targetID: "adam",
			setupMocks: func(r *resources) {
				r.repo.On("Request", r.ctx, mock.MatchedBy(func(f model.Friendship) bool {
					return f.UserID1 == "adam" && f.UserID2 == "zoe" &&
						f.Status == model.FriendshipPending && f.CreatedAt.Equal(now)
				})).Return(model.Friendship{UserID1: "adam", UserID2: "zoe", Status: model.FriendshipPending}, nil).Once()
			},
		},
		{
			name:          "Should reject self request",
			callerID:      "zoe",
			targetID:      "zoe",
			setupMocks:    func(r *resources) {},
			expectedError: model.ErrInvalidInput,
		},
		{
			name:          "Should reject blank target",
			callerID:      "zoe",
			targetID:      "  ",
			setupMocks:    func(r *resources) {},
			expectedError: model.ErrInvalidInput,
		},
		{
			name:          "Should reject anonymous caller",
			targetID:      "adam",
			setupMocks:    func(r *resources) {},
			expectedError: model.ErrUnauthenticated,
		},
		{
			name:     "Should wrap storage failure",
			callerID: "zoe",
			targetID: "adam",
			setupMocks: func(r *resources) {
				r.repo.On("Request", r.ctx, mock.AnythingOfType("model.Friendship")).
					Return(model.Friendship{}, errors.New("broken pipe")).Once()
			},
			expectedError: model.ErrInternal,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got, err := r.usecase.SendRequest(r.ctx, tc.callerID, tc.targetID)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.True(t, got.Has(tc.callerID))
			assert.True(t, got.Has(tc.targetID))
		})
	}
}

func (s *UsecaseFriendUnitSuite) TestAccept(t provider.T) {
	t.Parallel()

	id := uuid.New()
	pending := model.Friendship{ID: id, UserID1: "adam", UserID2: "zoe", Status: model.FriendshipPending}
	accepted := pending
	accepted.Status = model.FriendshipAccepted
	accepted.AcceptedAt = &now

	testCases := []struct {
		name          string
		callerID      string
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name:     "Should accept for a member",
			callerID: "zoe",
			setupMocks: func(r *resources) {
				r.repo.On("ByID", r.ctx, id).Return(pending, nil).Once()
				r.repo.On("Accept", r.ctx, id, "zoe", now).Return(accepted, nil).Once()
			},
		},
		{
			name:     "Should forbid outsiders",
			callerID: "mallory",
			setupMocks: func(r *resources) {
				r.repo.On("ByID", r.ctx, id).Return(pending, nil).Once()
			},
			expectedError: model.ErrForbidden,
		},
		{
			name:     "Should report unknown request",
			callerID: "zoe",
			setupMocks: func(r *resources) {
				r.repo.On("ByID", r.ctx, id).Return(model.Friendship{}, model.ErrResourceNotFound).Once()
			},
			expectedError: model.ErrResourceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got, err := r.usecase.Accept(r.ctx, tc.callerID, id)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, model.FriendshipAccepted, got.Status)
		})
	}
}

func (s *UsecaseFriendUnitSuite) TestList(t provider.T) {
	t.Parallel()
	r := initResources(t)

	friends := []model.Friendship{{ID: uuid.New(), UserID1: "adam", UserID2: "zoe", Status: model.FriendshipAccepted}}
	r.repo.On("Accepted", r.ctx, "zoe").Return(friends, nil).Once()

	got, err := r.usecase.List(r.ctx, "zoe")

	require.NoError(t, err)
	assert.Equal(t, friends, got)
}

func TestUsecaseFriendUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseFriendUnitSuite))
}
