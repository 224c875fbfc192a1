package catalog_cache

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	infra_redis_listcache "github.com/humanbelnik/kinoswap/swipematch/internal/infra/redis/listcache"
	infra_tmdb "github.com/humanbelnik/kinoswap/swipematch/internal/infra/tmdb"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
)

//go:generate mockery --name=Catalog --output=./mocks/catalog --filename=catalog.go
type Catalog interface {
	Movie(ctx context.Context, id model.MovieID) (model.MovieDetails, error)
	Trailers(ctx context.Context, id model.MovieID) ([]model.Video, error)
	Search(ctx context.Context, query string, page int) (model.Page, error)
	Popular(ctx context.Context, page int) (model.Page, error)
	TopRated(ctx context.Context, page int) (model.Page, error)
	Discover(ctx context.Context, q infra_tmdb.DiscoverQuery) (model.Page, error)
}

//go:generate mockery --name=PageStore --output=./mocks/store --filename=store.go
type PageStore interface {
	Load(ctx context.Context, key string) (model.Page, error)
	Store(ctx context.Context, key string, page model.Page) error
}

// Cached serves listing pages from the page store and falls through to
// the catalog on a miss. Store failures never fail the request.
type Cached struct {
	catalog Catalog
	store   PageStore
	logger  *slog.Logger
}

type CachedOption func(*Cached)

func WithLogger(logger *slog.Logger) CachedOption {
	return func(c *Cached) {
		c.logger = logger
	}
}

func New(catalog Catalog, store PageStore, opts ...CachedOption) *Cached {
	c := &Cached{
		catalog: catalog,
		store:   store,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Cached) Movie(ctx context.Context, id model.MovieID) (model.MovieDetails, error) {
	return c.catalog.Movie(ctx, id)
}

func (c *Cached) Trailers(ctx context.Context, id model.MovieID) ([]model.Video, error) {
	return c.catalog.Trailers(ctx, id)
}

func (c *Cached) Search(ctx context.Context, query string, page int) (model.Page, error) {
	return c.through(ctx, "search:"+strconv.Itoa(page)+":"+query, func() (model.Page, error) {
		return c.catalog.Search(ctx, query, page)
	})
}

func (c *Cached) Popular(ctx context.Context, page int) (model.Page, error) {
	return c.through(ctx, "popular:"+strconv.Itoa(page), func() (model.Page, error) {
		return c.catalog.Popular(ctx, page)
	})
}

func (c *Cached) TopRated(ctx context.Context, page int) (model.Page, error) {
	return c.through(ctx, "top_rated:"+strconv.Itoa(page), func() (model.Page, error) {
		return c.catalog.TopRated(ctx, page)
	})
}

func (c *Cached) Discover(ctx context.Context, q infra_tmdb.DiscoverQuery) (model.Page, error) {
	return c.through(ctx, "discover:"+q.Values().Encode(), func() (model.Page, error) {
		return c.catalog.Discover(ctx, q)
	})
}

func (c *Cached) through(ctx context.Context, key string, fetch func() (model.Page, error)) (model.Page, error) {
	page, err := c.store.Load(ctx, key)
	if err == nil {
		return page, nil
	}
	if !errors.Is(err, infra_redis_listcache.ErrMiss) {
		c.logger.Warn("catalog cache load failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}

	page, err = fetch()
	if err != nil {
		return model.Page{}, err
	}

	if err := c.store.Store(ctx, key, page); err != nil {
		c.logger.Warn("catalog cache store failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
	return page, nil
}
