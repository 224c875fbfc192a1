package infra_postgres_swipe

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type swipeDTO struct {
	SessionID uuid.UUID `db:"session_id"`
	UserID    string    `db:"user_id"`
	MovieID   int64     `db:"movie_id"`
	Direction string    `db:"direction"`
	SwipedAt  time.Time `db:"swiped_at"`
}

// Upsert records a vote; a repeated vote replaces the earlier one.
// The row is written only while the session is unfinished and still
// holds exactly pool. FOR SHARE orders the write against ReplacePool,
// so a vote cast on a retired pool is either deleted with it or never
// written. stored is false when nothing was written.
func (d *Driver) Upsert(ctx context.Context, s model.Swipe, pool []model.MovieID) (bool, error) {
	query := `
		INSERT INTO swipes (session_id, user_id, movie_id, direction, swiped_at)
		SELECT $1::uuid, $2, $3::bigint, $4, $5::timestamptz
		WHERE EXISTS (
			SELECT 1 FROM movie_sessions
			WHERE id = $1::uuid AND status <> $6 AND pool = $7::bigint[] AND $3::bigint = ANY(pool)
			FOR SHARE
		)
		ON CONFLICT (session_id, user_id, movie_id)
		DO UPDATE SET direction = EXCLUDED.direction, swiped_at = EXCLUDED.swiped_at
	`

	result, err := d.db.ExecContext(ctx, query,
		s.SessionID,
		s.UserID,
		s.MovieID,
		string(s.Direction),
		s.SwipedAt,
		model.StatusCompleted,
		pq.Int64Array(pool),
	)
	if err != nil {
		return false, fmt.Errorf("failed to upsert swipe: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to upsert swipe: %w", err)
	}
	return n > 0, nil
}

// CountAccepts counts distinct participants that accepted movieID.
func (d *Driver) CountAccepts(ctx context.Context, sessionID uuid.UUID, movieID model.MovieID) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM swipes
		WHERE session_id = $1 AND movie_id = $2 AND direction IN ($3, $4)
	`

	var count int
	err := d.db.GetContext(ctx, &count, query, sessionID, movieID, string(model.DirectionRight), string(model.DirectionSuper))
	if err != nil {
		return 0, fmt.Errorf("failed to count accepts: %w", err)
	}
	return count, nil
}

func (d *Driver) ByUser(ctx context.Context, sessionID uuid.UUID, userID string) ([]model.Swipe, error) {
	query := `
		SELECT session_id, user_id, movie_id, direction, swiped_at
		FROM swipes
		WHERE session_id = $1 AND user_id = $2
		ORDER BY swiped_at ASC
	`

	var rows []swipeDTO
	if err := d.db.SelectContext(ctx, &rows, query, sessionID, userID); err != nil {
		return nil, fmt.Errorf("failed to list swipes: %w", err)
	}

	swipes := make([]model.Swipe, 0, len(rows))
	for _, r := range rows {
		swipes = append(swipes, model.Swipe{
			SessionID: r.SessionID,
			UserID:    r.UserID,
			MovieID:   r.MovieID,
			Direction: model.Direction(r.Direction),
			SwipedAt:  r.SwipedAt,
		})
	}
	return swipes, nil
}
