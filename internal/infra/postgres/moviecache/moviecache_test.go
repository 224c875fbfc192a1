package infra_postgres_moviecache

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MovieCacheInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	mock       sqlmock.Sqlmock
	repository *Repository
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	return &resources{
		mock:       mock,
		repository: New(sqlx.NewDb(db, "sqlmock")),
		ctx:        context.Background(),
	}
}

type EnrichedMovieBuilder struct {
	m model.EnrichedMovie
}

func NewEnrichedMovieBuilder() *EnrichedMovieBuilder {
	m := model.NewEnrichedMovie(model.MovieDetails{
		Movie: model.Movie{
			ID:          550,
			Title:       "Fight Club",
			ReleaseDate: "1999-10-15",
			VoteAverage: 8.4,
		},
		Runtime: 139,
		IMDbID:  "tt0137523",
	})
	return &EnrichedMovieBuilder{m: m}
}

func (b *EnrichedMovieBuilder) WithTrailer(url string) *EnrichedMovieBuilder {
	b.m.TrailerURL = url
	return b
}

func (b *EnrichedMovieBuilder) Build() model.EnrichedMovie {
	return b.m
}

func (s *MovieCacheInfraUnitSuite) TestLoad(t provider.T) {
	t.Parallel()

	at := time.Date(2026, 5, 5, 12, 0, 0, 0, time.UTC)
	movie := NewEnrichedMovieBuilder().WithTrailer("https://www.youtube.com/watch?v=abc").Build()
	payload, err := FromDomain(movie, at)
	require.NoError(t, err)

	testCases := []struct {
		name          string
		setupMocks    func(r *resources)
		expectedError error
	}{
		{
			name: "Should decode cached payload",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("SELECT tmdb_id, data, updated_at").
					WithArgs(int64(550)).
					WillReturnRows(sqlmock.NewRows([]string{"tmdb_id", "data", "updated_at"}).
						AddRow(int64(550), []byte(payload["data"].(string)), at))
			},
		},
		{
			name: "Should map miss to not found",
			setupMocks: func(r *resources) {
				r.mock.ExpectQuery("SELECT tmdb_id, data, updated_at").
					WithArgs(int64(550)).
					WillReturnRows(sqlmock.NewRows([]string{"tmdb_id", "data", "updated_at"}))
			},
			expectedError: model.ErrResourceNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			tc.setupMocks(r)

			got, updatedAt, err := r.repository.Load(r.ctx, 550)

			if tc.expectedError != nil {
				assert.ErrorIs(t, err, tc.expectedError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, movie, got)
				assert.Equal(t, at, updatedAt)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func (s *MovieCacheInfraUnitSuite) TestLoadCorruptPayload(t provider.T) {
	t.Parallel()
	r := initResources(t)

	r.mock.ExpectQuery("SELECT tmdb_id, data, updated_at").
		WillReturnRows(sqlmock.NewRows([]string{"tmdb_id", "data", "updated_at"}).
			AddRow(int64(550), []byte("{not json"), time.Now()))

	_, _, err := r.repository.Load(r.ctx, 550)

	assert.ErrorContains(t, err, "corrupt cached movie 550")
}

func (s *MovieCacheInfraUnitSuite) TestStore(t provider.T) {
	t.Parallel()

	at := time.Date(2026, 5, 5, 12, 0, 0, 0, time.UTC)
	testCases := []struct {
		name        string
		execErr     error
		expectError bool
	}{
		{name: "Should upsert cached movie"},
		{name: "Should wrap upsert failure", execErr: errors.New("conn reset"), expectError: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t provider.T) {
			t.Parallel()
			r := initResources(t)
			exp := r.mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT (tmdb_id) DO UPDATE")).
				WithArgs(int64(550), sqlmock.AnyArg(), at)
			if tc.execErr != nil {
				exp.WillReturnError(tc.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(1, 1))
			}

			err := r.repository.Store(r.ctx, NewEnrichedMovieBuilder().Build(), at)

			if tc.expectError {
				assert.ErrorContains(t, err, "conn reset")
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, r.mock.ExpectationsWereMet())
		})
	}
}

func TestMovieCacheInfraUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(MovieCacheInfraUnitSuite))
}
