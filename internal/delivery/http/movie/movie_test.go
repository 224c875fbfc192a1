package http_movie

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	usecase_mocks "github.com/humanbelnik/kinoswap/swipematch/internal/delivery/http/movie/mocks/movie/usecase"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MovieControllerSuite struct {
	suite.Suite
}

func (s *MovieControllerSuite) BeforeAll(t provider.T) {
	gin.SetMode(gin.TestMode)
}

func passAuth(ctx *gin.Context) { ctx.Next() }

func (s *MovieControllerSuite) TestRoutes(t provider.T) {
	t.Parallel()

	page := model.Page{Page: 2, Results: []model.Movie{{ID: 1}}, TotalPages: 5}

	testCases := []struct {
		name       string
		path       string
		setupMocks func(uc *usecase_mocks.Usecase)
		status     int
	}{
		{
			name: "Should return enriched movie",
			path: "/api/v1/movies/603",
			setupMocks: func(uc *usecase_mocks.Usecase) {
				uc.On("GetEnriched", mock.Anything, model.MovieID(603)).
					Return(model.NewEnrichedMovie(model.MovieDetails{Movie: model.Movie{ID: 603}}), nil).Once()
			},
			status: http.StatusOK,
		},
		{
			name: "Should map unknown movie",
			path: "/api/v1/movies/999999",
			setupMocks: func(uc *usecase_mocks.Usecase) {
				uc.On("GetEnriched", mock.Anything, model.MovieID(999999)).
					Return(model.EnrichedMovie{}, model.ErrResourceNotFound).Once()
			},
			status: http.StatusNotFound,
		},
		{
			name: "Should map catalog outage",
			path: "/api/v1/movies/603",
			setupMocks: func(uc *usecase_mocks.Usecase) {
				uc.On("GetEnriched", mock.Anything, model.MovieID(603)).
					Return(model.EnrichedMovie{}, errors.Join(model.ErrUpstream, errors.New("503"))).Once()
			},
			status: http.StatusBadGateway,
		},
		{
			name:       "Should reject non numeric id",
			path:       "/api/v1/movies/matrix",
			setupMocks: func(uc *usecase_mocks.Usecase) {},
			status:     http.StatusBadRequest,
		},
		{
			name: "Should search with page",
			path: "/api/v1/movies/search?query=matrix&page=2",
			setupMocks: func(uc *usecase_mocks.Usecase) {
				uc.On("Search", mock.Anything, "matrix", 2).Return(page, nil).Once()
			},
			status: http.StatusOK,
		},
		{
			name: "Should map blank search",
			path: "/api/v1/movies/search",
			setupMocks: func(uc *usecase_mocks.Usecase) {
				uc.On("Search", mock.Anything, "", 1).Return(model.Page{}, model.ErrInvalidInput).Once()
			},
			status: http.StatusBadRequest,
		},
		{
			name: "Should list popular",
			path: "/api/v1/movies/popular",
			setupMocks: func(uc *usecase_mocks.Usecase) {
				uc.On("Popular", mock.Anything, 1).Return(page, nil).Once()
			},
			status: http.StatusOK,
		},
		{
			name: "Should list top rated",
			path: "/api/v1/movies/top-rated?page=3",
			setupMocks: func(uc *usecase_mocks.Usecase) {
				uc.On("TopRated", mock.Anything, 3).Return(page, nil).Once()
			},
			status: http.StatusOK,
		},
		{
			name:       "Should reject broken page",
			path:       "/api/v1/movies/popular?page=two",
			setupMocks: func(uc *usecase_mocks.Usecase) {},
			status:     http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			uc := usecase_mocks.NewUsecase(t)
			tc.setupMocks(uc)
			router := gin.New()
			New(uc, passAuth).RegisterRoutes(router.Group("/api/v1"))

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))

			assert.Equal(t, tc.status, w.Code)
		})
	}
}

func TestMovieControllerSuite(t *testing.T) {
	suite.RunSuite(t, new(MovieControllerSuite))
}
