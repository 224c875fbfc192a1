package infra_postgres_moviecache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
)

type CachedMovieDB struct {
	TMDbID    int64     `db:"tmdb_id"`
	Data      []byte    `db:"data"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (c *CachedMovieDB) ToDomain() (model.EnrichedMovie, error) {
	var m model.EnrichedMovie
	if err := json.Unmarshal(c.Data, &m); err != nil {
		return model.EnrichedMovie{}, fmt.Errorf("corrupt cached movie %d: %w", c.TMDbID, err)
	}
	return m, nil
}

// FromDomain keeps the payload as text so it binds to the jsonb column.
func FromDomain(m model.EnrichedMovie, at time.Time) (map[string]any, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"tmdb_id":    m.ID,
		"data":       string(raw),
		"updated_at": at,
	}, nil
}
