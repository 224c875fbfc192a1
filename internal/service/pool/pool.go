package pool

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	infra_tmdb "github.com/humanbelnik/kinoswap/swipematch/internal/infra/tmdb"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
	"golang.org/x/sync/errgroup"
)

// ErrUpstream is returned when every catalog call failed and nothing was collected.
var ErrUpstream = fmt.Errorf("pool: %w", model.ErrUpstream)

const DefaultPageCeiling = 10

type Catalog interface {
	Popular(ctx context.Context, page int) (model.Page, error)
	TopRated(ctx context.Context, page int) (model.Page, error)
	Discover(ctx context.Context, q infra_tmdb.DiscoverQuery) (model.Page, error)
}

// Shuffler permutes ids in place.
type Shuffler func(ids []model.MovieID)

func RandomShuffler(ids []model.MovieID) {
	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
}

type Builder struct {
	catalog     Catalog
	pageCeiling int
	shuffle     Shuffler
	logger      *slog.Logger
}

type BuilderOption func(*Builder)

func WithLogger(logger *slog.Logger) BuilderOption {
	return func(b *Builder) {
		b.logger = logger
	}
}

func WithShuffler(s Shuffler) BuilderOption {
	return func(b *Builder) {
		b.shuffle = s
	}
}

func WithPageCeiling(n int) BuilderOption {
	return func(b *Builder) {
		if n > 0 {
			b.pageCeiling = n
		}
	}
}

func New(catalog Catalog, opts ...BuilderOption) *Builder {
	b := &Builder{
		catalog:     catalog,
		pageCeiling: DefaultPageCeiling,
		shuffle:     RandomShuffler,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

type pageFunc func(ctx context.Context, page int) (model.Page, error)

// collector keeps distinct movie ids in insertion order and counts catalog calls.
type collector struct {
	ids      []model.MovieID
	seen     map[model.MovieID]struct{}
	movies   []model.Movie
	calls    int
	failures int
}

func newCollector(capacity int) *collector {
	return &collector{
		ids:  make([]model.MovieID, 0, capacity),
		seen: make(map[model.MovieID]struct{}, capacity),
	}
}

func (c *collector) len() int {
	return len(c.ids)
}

// add appends movies that pass pred until the collector holds limit ids.
func (c *collector) add(movies []model.Movie, pred func(model.Movie) bool, limit int) {
	for _, m := range movies {
		if c.len() >= limit {
			return
		}
		if _, dup := c.seen[m.ID]; dup || !pred(m) {
			continue
		}
		c.seen[m.ID] = struct{}{}
		c.ids = append(c.ids, m.ID)
		c.movies = append(c.movies, m)
	}
}

func (c *collector) absorb(other *collector) {
	c.calls += other.calls
	c.failures += other.failures
}

// Build returns at most target distinct catalog ids satisfying filters.
// Catalog failures are skipped; the result may be shorter than target.
func (b *Builder) Build(ctx context.Context, participantIDs []string, filters model.Filters, target int) ([]model.MovieID, error) {
	if target <= 0 {
		return nil, fmt.Errorf("%w: pool size must be positive", model.ErrInvalidInput)
	}
	filters = filters.Normalized()

	var (
		c   *collector
		err error
	)
	if filters.HasDiscoveryCriteria() {
		c = b.discover(ctx, filters, target)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
	} else {
		c, err = b.blend(ctx, filters.WithBaselineRating(), target)
		if err != nil {
			return nil, err
		}
	}

	if c.len() == 0 && c.calls > 0 && c.failures == c.calls {
		b.logger.Error("pool build failed: catalog unavailable",
			slog.Int("calls", c.calls),
			slog.Int("participants", len(participantIDs)),
		)
		return nil, ErrUpstream
	}

	ids := c.ids
	b.shuffle(ids)
	if len(ids) > target {
		ids = ids[:target]
	}

	b.logger.Debug("pool built",
		slog.Int("size", len(ids)),
		slog.Int("target", target),
		slog.Int("participants", len(participantIDs)),
		slog.Int("catalog_calls", c.calls),
		slog.Int("catalog_failures", c.failures),
	)
	return ids, nil
}

// discover pages through the discovery endpoint and tops up from popular
// listings filtered client side.
func (b *Builder) discover(ctx context.Context, filters model.Filters, target int) *collector {
	c := newCollector(target)

	b.drain(ctx, "discover", func(ctx context.Context, page int) (model.Page, error) {
		return b.catalog.Discover(ctx, infra_tmdb.DiscoverQueryFromFilters(filters, page))
	}, filters.Matches, c, target)

	if c.len() < target {
		b.drain(ctx, "popular", b.catalog.Popular, filters.Matches, c, target)
	}
	return c
}

// blend mixes popular and top rated listings, half and half, and lets
// either side cover what the other could not.
func (b *Builder) blend(ctx context.Context, filters model.Filters, target int) (*collector, error) {
	popular := newCollector(target)
	topRated := newCollector(target)

	var g errgroup.Group
	g.Go(func() error {
		b.drain(ctx, "popular", b.catalog.Popular, filters.Matches, popular, target)
		return ctx.Err()
	})
	g.Go(func() error {
		b.drain(ctx, "top_rated", b.catalog.TopRated, filters.Matches, topRated, target)
		return ctx.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := newCollector(target)
	c.absorb(popular)
	c.absorb(topRated)

	// Both sides were filtered while draining.
	pass := func(model.Movie) bool { return true }
	c.add(popular.movies, pass, target/2)
	c.add(topRated.movies, pass, target)
	c.add(popular.movies, pass, target)
	return c, nil
}

// drain walks pages until c holds limit ids, the page ceiling is hit or
// the provider runs out of pages.
func (b *Builder) drain(ctx context.Context, source string, fetch pageFunc, pred func(model.Movie) bool, c *collector, limit int) {
	for page := 1; page <= b.pageCeiling && c.len() < limit; page++ {
		if ctx.Err() != nil {
			return
		}

		c.calls++
		p, err := fetch(ctx, page)
		if err != nil {
			c.failures++
			b.logger.Warn("catalog page skipped",
				slog.String("source", source),
				slog.Int("page", page),
				slog.String("error", err.Error()),
			)
			continue
		}

		c.add(p.Results, pred, limit)
		if p.TotalPages > 0 && page >= p.TotalPages {
			return
		}
		if len(p.Results) == 0 {
			return
		}
	}
}
