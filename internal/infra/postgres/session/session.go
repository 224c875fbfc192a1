package infra_postgres_session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const sessionColumns = `id, host_user_id, user_ids, status, pool, filters, matched_movie_id, created_at, expires_at`

type Driver struct {
	db *sqlx.DB
}

func New(
	db *sqlx.DB,
) *Driver {
	return &Driver{db: db}
}

func (d *Driver) Create(ctx context.Context, s model.Session) error {
	query := `
		INSERT INTO movie_sessions (id, host_user_id, user_ids, status, pool, filters, created_at, expires_at)
		VALUES (:id, :host_user_id, :user_ids, :status, :pool, :filters, :created_at, :expires_at)
	`

	if _, err := d.db.NamedExecContext(ctx, query, FromDomain(s)); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (d *Driver) ByID(ctx context.Context, id uuid.UUID) (model.Session, error) {
	query := `SELECT ` + sessionColumns + ` FROM movie_sessions WHERE id = $1`

	var s SessionDB
	if err := d.db.GetContext(ctx, &s, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Session{}, model.ErrResourceNotFound
		}
		return model.Session{}, fmt.Errorf("failed to load session: %w", err)
	}
	return s.ToDomain(), nil
}

// ByCodePrefix resolves a short code; the oldest session wins a collision.
func (d *Driver) ByCodePrefix(ctx context.Context, prefix string) (model.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM movie_sessions
		WHERE id::text LIKE lower($1) || '%'
		ORDER BY created_at ASC
		LIMIT 1
	`

	var s SessionDB
	if err := d.db.GetContext(ctx, &s, query, prefix); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Session{}, model.ErrResourceNotFound
		}
		return model.Session{}, fmt.Errorf("failed to resolve session code: %w", err)
	}
	return s.ToDomain(), nil
}

// AddParticipant appends userID while the session is still joinable.
// It reports false when nothing changed.
func (d *Driver) AddParticipant(ctx context.Context, id uuid.UUID, userID string) (bool, error) {
	query := `
		UPDATE movie_sessions
		SET user_ids = array_append(user_ids, $2)
		WHERE id = $1 AND status = $3 AND NOT ($2 = ANY(user_ids))
	`

	result, err := d.db.ExecContext(ctx, query, id, userID, model.StatusActive)
	if err != nil {
		return false, fmt.Errorf("failed to add participant: %w", err)
	}
	return affected(result)
}

// SetStatus moves the session from one status to another and reports
// whether this call made the transition.
func (d *Driver) SetStatus(ctx context.Context, id uuid.UUID, from, to model.SessionStatus) (bool, error) {
	query := `UPDATE movie_sessions SET status = $3 WHERE id = $1 AND status = $2`

	result, err := d.db.ExecContext(ctx, query, id, from, to)
	if err != nil {
		return false, fmt.Errorf("failed to set session status: %w", err)
	}
	return affected(result)
}

// ReplacePool swaps filters and pool and forgets every swipe in one transaction.
func (d *Driver) ReplacePool(ctx context.Context, id uuid.UUID, filters model.Filters, pool []model.MovieID) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if pool == nil {
		pool = []model.MovieID{}
	}
	updateQuery := `
		UPDATE movie_sessions
		SET filters = $2, pool = $3
		WHERE id = $1 AND status <> $4
	`
	result, err := tx.ExecContext(ctx, updateQuery, id, filtersJSON(filters), pq.Int64Array(pool), model.StatusCompleted)
	if err != nil {
		return fmt.Errorf("failed to replace pool: %w", err)
	}
	ok, err := affected(result)
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrInvalidState
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM swipes WHERE session_id = $1`, id); err != nil {
		return fmt.Errorf("failed to reset swipes: %w", err)
	}

	return tx.Commit()
}

// CompleteWithMatch is the only path to the completed status. The first
// caller wins and writes the match record; later callers get the stored
// match back with won=false.
func (d *Driver) CompleteWithMatch(ctx context.Context, id uuid.UUID, movieID model.MovieID, at time.Time) (model.Match, bool, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Match{}, false, err
	}
	defer func() { _ = tx.Rollback() }()

	casQuery := `
		UPDATE movie_sessions
		SET status = $3, matched_movie_id = $2
		WHERE id = $1 AND status <> $3
		RETURNING matched_movie_id
	`
	var matched int64
	err = tx.GetContext(ctx, &matched, casQuery, id, movieID, model.StatusCompleted)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return d.storedMatch(ctx, tx, id)
	case err != nil:
		return model.Match{}, false, fmt.Errorf("failed to complete session: %w", err)
	}

	insertQuery := `
		INSERT INTO match_history (session_id, movie_id, matched_at)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.ExecContext(ctx, insertQuery, id, matched, at); err != nil {
		return model.Match{}, false, fmt.Errorf("failed to record match: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return model.Match{}, false, err
	}
	return model.Match{SessionID: id, MovieID: matched, MatchedAt: at}, true, nil
}

func (d *Driver) storedMatch(ctx context.Context, tx *sqlx.Tx, id uuid.UUID) (model.Match, bool, error) {
	query := `
		SELECT s.matched_movie_id, COALESCE(m.matched_at, now()) AS matched_at
		FROM movie_sessions s
		LEFT JOIN match_history m ON m.session_id = s.id
		WHERE s.id = $1
	`
	var row struct {
		MatchedMovieID sql.NullInt64 `db:"matched_movie_id"`
		MatchedAt      time.Time     `db:"matched_at"`
	}
	if err := tx.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Match{}, false, model.ErrResourceNotFound
		}
		return model.Match{}, false, fmt.Errorf("failed to load stored match: %w", err)
	}
	if !row.MatchedMovieID.Valid {
		return model.Match{}, false, fmt.Errorf("%w: completed session without match", model.ErrInvalidState)
	}
	return model.Match{SessionID: id, MovieID: row.MatchedMovieID.Int64, MatchedAt: row.MatchedAt}, false, nil
}

// Delete drops the session together with its swipes and match record.
func (d *Driver) Delete(ctx context.Context, id uuid.UUID) error {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM swipes WHERE session_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete swipes: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM match_history WHERE session_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete match history: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM movie_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	ok, err := affected(result)
	if err != nil {
		return err
	}
	if !ok {
		return model.ErrResourceNotFound
	}

	return tx.Commit()
}

// Active lists unfinished, unexpired sessions of userID, newest first.
func (d *Driver) Active(ctx context.Context, userID string, now time.Time) ([]model.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM movie_sessions
		WHERE $1 = ANY(user_ids) AND status IN ($2, $3) AND expires_at > $4
		ORDER BY created_at DESC
	`
	return d.list(ctx, query, userID, model.StatusActive, model.StatusStarted, now)
}

// History lists completed sessions of userID, newest first.
func (d *Driver) History(ctx context.Context, userID string, limit int) ([]model.Session, error) {
	query := `
		SELECT ` + sessionColumns + `
		FROM movie_sessions
		WHERE $1 = ANY(user_ids) AND status = $2
		ORDER BY created_at DESC
		LIMIT $3
	`
	return d.list(ctx, query, userID, model.StatusCompleted, limit)
}

func (d *Driver) list(ctx context.Context, query string, args ...any) ([]model.Session, error) {
	var rows []SessionDB
	if err := d.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]model.Session, len(rows))
	for i := range rows {
		sessions[i] = rows[i].ToDomain()
	}
	return sessions, nil
}

func affected(result sql.Result) (bool, error) {
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return n > 0, nil
}
