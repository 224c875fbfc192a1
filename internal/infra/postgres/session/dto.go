package infra_postgres_session

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
	"github.com/lib/pq"
)

// filtersJSON travels as text so lib/pq does not encode it as bytea.
type filtersJSON model.Filters

func (f filtersJSON) Value() (driver.Value, error) {
	raw, err := json.Marshal(model.Filters(f))
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (f *filtersJSON) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*f = filtersJSON{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("filters: unsupported type %T", src)
	}
	var out model.Filters
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}
	*f = filtersJSON(out)
	return nil
}

type SessionDB struct {
	ID             uuid.UUID      `db:"id"`
	HostID         string         `db:"host_user_id"`
	UserIDs        pq.StringArray `db:"user_ids"`
	Status         string         `db:"status"`
	Pool           pq.Int64Array  `db:"pool"`
	Filters        filtersJSON    `db:"filters"`
	MatchedMovieID sql.NullInt64  `db:"matched_movie_id"`
	CreatedAt      time.Time      `db:"created_at"`
	ExpiresAt      time.Time      `db:"expires_at"`
}

func (s *SessionDB) ToDomain() model.Session {
	out := model.Session{
		ID:             s.ID,
		HostID:         s.HostID,
		ParticipantIDs: []string(s.UserIDs),
		Status:         s.Status,
		Pool:           []int64(s.Pool),
		Filters:        model.Filters(s.Filters),
		CreatedAt:      s.CreatedAt,
		ExpiresAt:      s.ExpiresAt,
	}
	if s.MatchedMovieID.Valid {
		id := s.MatchedMovieID.Int64
		out.MatchedMovieID = &id
	}
	return out
}

// FromDomain never yields NULL arrays, pq encodes nil slices as NULL.
func FromDomain(s model.Session) SessionDB {
	pool := s.Pool
	if pool == nil {
		pool = []model.MovieID{}
	}
	out := SessionDB{
		ID:        s.ID,
		HostID:    s.HostID,
		UserIDs:   pq.StringArray(s.ParticipantIDs),
		Status:    s.Status,
		Pool:      pq.Int64Array(pool),
		Filters:   filtersJSON(s.Filters),
		CreatedAt: s.CreatedAt,
		ExpiresAt: s.ExpiresAt,
	}
	if s.MatchedMovieID != nil {
		out.MatchedMovieID = sql.NullInt64{Int64: *s.MatchedMovieID, Valid: true}
	}
	return out
}
