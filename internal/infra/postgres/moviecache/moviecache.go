package infra_postgres_moviecache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Load returns the cached movie and the time it was written.
func (r *Repository) Load(ctx context.Context, id model.MovieID) (model.EnrichedMovie, time.Time, error) {
	query := `
		SELECT tmdb_id, data, updated_at
		FROM cached_movies
		WHERE tmdb_id = $1
	`

	var row CachedMovieDB
	if err := r.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.EnrichedMovie{}, time.Time{}, model.ErrResourceNotFound
		}
		return model.EnrichedMovie{}, time.Time{}, fmt.Errorf("failed to load cached movie: %w", err)
	}

	m, err := row.ToDomain()
	if err != nil {
		return model.EnrichedMovie{}, time.Time{}, err
	}
	return m, row.UpdatedAt, nil
}

func (r *Repository) Store(ctx context.Context, m model.EnrichedMovie, at time.Time) error {
	args, err := FromDomain(m, at)
	if err != nil {
		return fmt.Errorf("failed to encode cached movie: %w", err)
	}

	query := `
		INSERT INTO cached_movies (tmdb_id, data, updated_at)
		VALUES (:tmdb_id, :data, :updated_at)
		ON CONFLICT (tmdb_id) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = EXCLUDED.updated_at
	`

	if _, err := r.db.NamedExecContext(ctx, query, args); err != nil {
		return fmt.Errorf("failed to store cached movie: %w", err)
	}
	return nil
}
