package http_friend

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	http_common "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/common"
	usecase_mocks "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/friend/mocks/friend/usecase"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type FriendControllerSuite struct {
	suite.Suite
}

func (s *FriendControllerSuite) BeforeAll(t provider.T) {
	gin.SetMode(gin.TestMode)
}

func asZoe(ctx *gin.Context) {
	ctx.Set(http_common.UserIDKey, "zoe")
	ctx.Next()
}

func initRouter(t provider.T) (*gin.Engine, *usecase_mocks.Usecase) {
	uc := usecase_mocks.NewUsecase(t)
	router := gin.New()
	New(uc, asZoe).RegisterRoutes(router.Group("/api/v1"))
	return router, uc
}

func (s *FriendControllerSuite) TestList(t provider.T) {
	t.Parallel()
	router, uc := initRouter(t)

	uc.On("List", mock.Anything, "zoe").Return([]model.Friendship{
		{ID: uuid.New(), UserID1: "adam", UserID2: "zoe", Status: model.FriendshipAccepted},
		{ID: uuid.New(), UserID1: "zoe", UserID2: "zed", Status: model.FriendshipAccepted},
	}, nil).Once()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/friends", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Data []FriendshipDTO `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "adam", resp.Data[0].FriendID)
	assert.Equal(t, "zed", resp.Data[1].FriendID)
}

func (s *FriendControllerSuite) TestRequest(t provider.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		body       string
		setupMocks func(uc *usecase_mocks.Usecase)
		status     int
	}{
		{
			name: "Should create request",
			body: `{"user_id":"adam"}`,
			setupMocks: func(uc *usecase_mocks.Usecase) {
				uc.On("SendRequest", mock.Anything, "zoe", "adam").
					Return(model.Friendship{ID: uuid.New(), UserID1: "adam", UserID2: "zoe", Status: model.FriendshipPending}, nil).Once()
			},
			status: http.StatusCreated,
		},
		{
			name: "Should map self request",
			body: `{"user_id":"zoe"}`,
			setupMocks: func(uc *usecase_mocks.Usecase) {
				uc.On("SendRequest", mock.Anything, "zoe", "zoe").Return(model.Friendship{}, model.ErrInvalidInput).Once()
			},
			status: http.StatusBadRequest,
		},
		{
			name:       "Should require user id",
			body:       `{}`,
			setupMocks: func(uc *usecase_mocks.Usecase) {},
			status:     http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			router, uc := initRouter(t)
			tc.setupMocks(uc)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/friends/requests", strings.NewReader(tc.body)))

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func (s *FriendControllerSuite) TestAccept(t provider.T) {
	t.Parallel()

	id := uuid.New()

	testCases := []struct {
		name       string
		path       string
		setupMocks func(uc *usecase_mocks.Usecase)
		status     int
	}{
		{
			name: "Should accept",
			path: "/api/v1/friends/requests/" + id.String() + "/accept",
			setupMocks: func(uc *usecase_mocks.Usecase) {
				uc.On("Accept", mock.Anything, "zoe", id).
					Return(model.Friendship{ID: id, UserID1: "adam", UserID2: "zoe", Status: model.FriendshipAccepted}, nil).Once()
			},
			status: http.StatusOK,
		},
		{
			name: "Should map foreign request",
			path: "/api/v1/friends/requests/" + id.String() + "/accept",
			setupMocks: func(uc *usecase_mocks.Usecase) {
				uc.On("Accept", mock.Anything, "zoe", id).Return(model.Friendship{}, model.ErrForbidden).Once()
			},
			status: http.StatusForbidden,
		},
		{
			name:       "Should reject malformed id",
			path:       "/api/v1/friends/requests/42/accept",
			setupMocks: func(uc *usecase_mocks.Usecase) {},
			status:     http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			router, uc := initRouter(t)
			tc.setupMocks(uc)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, tc.path, nil))

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestFriendControllerSuite(t *testing.T) {
	suite.RunSuite(t, new(FriendControllerSuite))
}
