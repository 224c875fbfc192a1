package infra_postgres_friendship

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
	"github.com/jmoiron/sqlx"
)

const friendshipColumns = `id, user_id_1, user_id_2, status, created_at, accepted_at`

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type friendshipDTO struct {
	ID         uuid.UUID    `db:"id"`
	UserID1    string       `db:"user_id_1"`
	UserID2    string       `db:"user_id_2"`
	Status     string       `db:"status"`
	CreatedAt  time.Time    `db:"created_at"`
	AcceptedAt sql.NullTime `db:"accepted_at"`
}

func (f friendshipDTO) toDomain() model.Friendship {
	out := model.Friendship{
		ID:        f.ID,
		UserID1:   f.UserID1,
		UserID2:   f.UserID2,
		Status:    f.Status,
		CreatedAt: f.CreatedAt,
	}
	if f.AcceptedAt.Valid {
		at := f.AcceptedAt.Time
		out.AcceptedAt = &at
	}
	return out
}

func (d *Driver) Accepted(ctx context.Context, userID string) ([]model.Friendship, error) {
	query := `
		SELECT ` + friendshipColumns + `
		FROM friendships
		WHERE (user_id_1 = $1 OR user_id_2 = $1) AND status = $2
		ORDER BY accepted_at DESC
	`

	var rows []friendshipDTO
	if err := d.db.SelectContext(ctx, &rows, query, userID, model.FriendshipAccepted); err != nil {
		return nil, fmt.Errorf("failed to list friends: %w", err)
	}

	out := make([]model.Friendship, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out, nil
}

func (d *Driver) ByID(ctx context.Context, id uuid.UUID) (model.Friendship, error) {
	query := `SELECT ` + friendshipColumns + ` FROM friendships WHERE id = $1`

	var row friendshipDTO
	if err := d.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Friendship{}, model.ErrResourceNotFound
		}
		return model.Friendship{}, fmt.Errorf("failed to load friendship: %w", err)
	}
	return row.toDomain(), nil
}

// Request inserts a pending pair. An existing pair is returned untouched.
func (d *Driver) Request(ctx context.Context, f model.Friendship) (model.Friendship, error) {
	insertQuery := `
		INSERT INTO friendships (id, user_id_1, user_id_2, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id_1, user_id_2) DO NOTHING
		RETURNING ` + friendshipColumns

	var row friendshipDTO
	err := d.db.GetContext(ctx, &row, insertQuery, f.ID, f.UserID1, f.UserID2, model.FriendshipPending, f.CreatedAt)
	if err == nil {
		return row.toDomain(), nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return model.Friendship{}, fmt.Errorf("failed to request friendship: %w", err)
	}

	selectQuery := `SELECT ` + friendshipColumns + ` FROM friendships WHERE user_id_1 = $1 AND user_id_2 = $2`
	if err := d.db.GetContext(ctx, &row, selectQuery, f.UserID1, f.UserID2); err != nil {
		return model.Friendship{}, fmt.Errorf("failed to load existing friendship: %w", err)
	}
	return row.toDomain(), nil
}

// Accept is idempotent; the first acceptance time is kept.
func (d *Driver) Accept(ctx context.Context, id uuid.UUID, userID string, at time.Time) (model.Friendship, error) {
	query := `
		UPDATE friendships
		SET status = $3, accepted_at = COALESCE(accepted_at, $4)
		WHERE id = $1 AND (user_id_1 = $2 OR user_id_2 = $2)
		RETURNING ` + friendshipColumns

	var row friendshipDTO
	if err := d.db.GetContext(ctx, &row, query, id, userID, model.FriendshipAccepted, at); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Friendship{}, model.ErrResourceNotFound
		}
		return model.Friendship{}, fmt.Errorf("failed to accept friendship: %w", err)
	}
	return row.toDomain(), nil
}
