package usecase_movie

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
)

const (
	DefaultFreshness = 24 * time.Hour
	youtubeWatchURL  = "https://www.youtube.com/watch?v="
)

//go:generate mockery --name=Catalog --output=./mocks/movie/catalog --filename=catalog.go
type Catalog interface {
	Movie(ctx context.Context, id model.MovieID) (model.MovieDetails, error)
	Trailers(ctx context.Context, id model.MovieID) ([]model.Video, error)
	Search(ctx context.Context, query string, page int) (model.Page, error)
	Popular(ctx context.Context, page int) (model.Page, error)
	TopRated(ctx context.Context, page int) (model.Page, error)
}

//go:generate mockery --name=RatingsProvider --output=./mocks/movie/ratings --filename=ratings.go
type RatingsProvider interface {
	Ratings(ctx context.Context, imdbID string) (map[string]string, error)
}

//go:generate mockery --name=Repository --output=./mocks/movie/repository --filename=repository.go
type Repository interface {
	Load(ctx context.Context, id model.MovieID) (model.EnrichedMovie, time.Time, error)
	Store(ctx context.Context, m model.EnrichedMovie, at time.Time) error
}

type Usecase struct {
	Catalog    Catalog
	Repository Repository
	// Ratings is optional.
	Ratings RatingsProvider

	freshness time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithRatings(r RatingsProvider) UsecaseOption {
	return func(u *Usecase) {
		u.Ratings = r
	}
}

func WithFreshness(d time.Duration) UsecaseOption {
	return func(u *Usecase) {
		if d > 0 {
			u.freshness = d
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

func New(catalog Catalog, repository Repository, opts ...UsecaseOption) *Usecase {
	u := &Usecase{
		Catalog:    catalog,
		Repository: repository,
		freshness:  DefaultFreshness,
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// GetEnriched serves a fresh cached copy when there is one and otherwise
// rebuilds the movie from the catalog. Trailer and secondary ratings are
// best effort; the cache never fails a read.
func (u *Usecase) GetEnriched(ctx context.Context, id model.MovieID) (model.EnrichedMovie, error) {
	if id <= 0 {
		return model.EnrichedMovie{}, fmt.Errorf("%w: movie id must be positive", model.ErrInvalidInput)
	}

	cached, updatedAt, err := u.Repository.Load(ctx, id)
	switch {
	case err == nil && u.now().Sub(updatedAt) < u.freshness:
		return cached, nil
	case err != nil && !errors.Is(err, model.ErrResourceNotFound):
		u.logger.Warn("movie cache unavailable",
			slog.Int64("movie_id", id),
			slog.String("error", err.Error()),
		)
	}

	details, err := u.Catalog.Movie(ctx, id)
	if err != nil {
		return model.EnrichedMovie{}, catalogErr(err)
	}

	movie := model.NewEnrichedMovie(details)
	movie.TrailerURL = u.trailerURL(ctx, id)
	u.mergeRatings(ctx, &movie)

	if err := u.Repository.Store(ctx, movie, u.now().UTC()); err != nil {
		u.logger.Warn("movie cache write failed",
			slog.Int64("movie_id", id),
			slog.String("error", err.Error()),
		)
	}
	return movie, nil
}

func (u *Usecase) trailerURL(ctx context.Context, id model.MovieID) string {
	videos, err := u.Catalog.Trailers(ctx, id)
	if err != nil {
		u.logger.Debug("trailer lookup failed",
			slog.Int64("movie_id", id),
			slog.String("error", err.Error()),
		)
		return ""
	}
	for _, v := range videos {
		if v.Key != "" {
			return youtubeWatchURL + v.Key
		}
	}
	return ""
}

func (u *Usecase) mergeRatings(ctx context.Context, movie *model.EnrichedMovie) {
	if u.Ratings == nil || movie.IMDbID == "" {
		return
	}
	ratings, err := u.Ratings.Ratings(ctx, movie.IMDbID)
	if err != nil {
		u.logger.Debug("secondary ratings unavailable",
			slog.Int64("movie_id", movie.ID),
			slog.String("error", err.Error()),
		)
		return
	}
	movie.MergeRatings(ratings)
}

func (u *Usecase) Search(ctx context.Context, query string, page int) (model.Page, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return model.Page{}, fmt.Errorf("%w: query is required", model.ErrInvalidInput)
	}
	out, err := u.Catalog.Search(ctx, query, normalizePage(page))
	if err != nil {
		return model.Page{}, catalogErr(err)
	}
	return out, nil
}

func (u *Usecase) Popular(ctx context.Context, page int) (model.Page, error) {
	out, err := u.Catalog.Popular(ctx, normalizePage(page))
	if err != nil {
		return model.Page{}, catalogErr(err)
	}
	return out, nil
}

func (u *Usecase) TopRated(ctx context.Context, page int) (model.Page, error) {
	out, err := u.Catalog.TopRated(ctx, normalizePage(page))
	if err != nil {
		return model.Page{}, catalogErr(err)
	}
	return out, nil
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func catalogErr(err error) error {
	switch {
	case errors.Is(err, model.ErrResourceNotFound):
		return model.ErrResourceNotFound
	case errors.Is(err, model.ErrInvalidInput), errors.Is(err, context.Canceled):
		return err
	default:
		return errors.Join(model.ErrUpstream, err)
	}
}
