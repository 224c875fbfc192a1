package model

import (
	"strconv"
	"time"
)

// MovieID is a catalog (TMDb) movie identifier.
type MovieID = int64

const releaseDateLayout = "2006-01-02"

type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Movie is a catalog listing entry. Listings carry GenreIDs,
// detail payloads carry Genres.
type Movie struct {
	ID           MovieID `json:"id"`
	Title        string  `json:"title"`
	Overview     string  `json:"overview"`
	PosterPath   string  `json:"poster_path,omitempty"`
	BackdropPath string  `json:"backdrop_path,omitempty"`
	ReleaseDate  string  `json:"release_date"`
	VoteAverage  float64 `json:"vote_average"`
	VoteCount    int     `json:"vote_count"`
	GenreIDs     []int   `json:"genre_ids,omitempty"`
	Genres       []Genre `json:"genres,omitempty"`
}

// ReleaseYear returns false when the release date is missing or malformed.
func (m Movie) ReleaseYear() (int, bool) {
	if m.ReleaseDate == "" {
		return 0, false
	}
	t, err := time.Parse(releaseDateLayout, m.ReleaseDate)
	if err != nil {
		return 0, false
	}
	return t.Year(), true
}

func (m Movie) GenreSet() map[int]struct{} {
	set := make(map[int]struct{}, len(m.GenreIDs)+len(m.Genres))
	for _, id := range m.GenreIDs {
		set[id] = struct{}{}
	}
	for _, g := range m.Genres {
		set[g.ID] = struct{}{}
	}
	return set
}

type MovieDetails struct {
	Movie
	Runtime int    `json:"runtime"`
	Tagline string `json:"tagline"`
	Status  string `json:"status"`
	IMDbID  string `json:"imdb_id,omitempty"`
}

type Video struct {
	Key  string `json:"key"`
	Site string `json:"site"`
	Type string `json:"type"`
}

const (
	RatingSourceTMDb           = "tmdb"
	RatingSourceIMDb           = "imdb"
	RatingSourceRottenTomatoes = "rottenTomatoes"
	RatingSourceMetacritic     = "metacritic"
)

// EnrichedMovie is the cached view of a movie: catalog details
// plus optional trailer and secondary ratings.
type EnrichedMovie struct {
	MovieDetails
	Ratings    map[string]string `json:"enriched_ratings"`
	TrailerURL string            `json:"trailer_url,omitempty"`
}

func NewEnrichedMovie(d MovieDetails) EnrichedMovie {
	return EnrichedMovie{
		MovieDetails: d,
		Ratings: map[string]string{
			RatingSourceTMDb: strconv.FormatFloat(d.VoteAverage, 'f', -1, 64) + "/10",
		},
	}
}

// MergeRatings never overrides the primary catalog rating.
func (e *EnrichedMovie) MergeRatings(r map[string]string) {
	if e.Ratings == nil {
		e.Ratings = make(map[string]string, len(r))
	}
	for k, v := range r {
		if k == RatingSourceTMDb || v == "" {
			continue
		}
		e.Ratings[k] = v
	}
}

// Page is one page of a catalog listing.
type Page struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}
