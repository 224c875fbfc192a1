package model

import (
	"fmt"
	"slices"
)

const (
	DefaultMinRating float64 = 6
	MaxRating        float64 = 10
	minCatalogYear           = 1870
	maxCatalogYear           = 2100
)

// Genres is the catalog genre list a filter may reference.
var Genres = []Genre{
	{ID: 28, Name: "Action"},
	{ID: 12, Name: "Adventure"},
	{ID: 16, Name: "Animation"},
	{ID: 35, Name: "Comedy"},
	{ID: 80, Name: "Crime"},
	{ID: 99, Name: "Documentary"},
	{ID: 18, Name: "Drama"},
	{ID: 10751, Name: "Family"},
	{ID: 14, Name: "Fantasy"},
	{ID: 36, Name: "History"},
	{ID: 27, Name: "Horror"},
	{ID: 10402, Name: "Music"},
	{ID: 9648, Name: "Mystery"},
	{ID: 10749, Name: "Romance"},
	{ID: 878, Name: "Science Fiction"},
	{ID: 10770, Name: "TV Movie"},
	{ID: 53, Name: "Thriller"},
	{ID: 10752, Name: "War"},
	{ID: 37, Name: "Western"},
}

func IsKnownGenre(id int) bool {
	return slices.ContainsFunc(Genres, func(g Genre) bool { return g.ID == id })
}

// Filters is the pool predicate of a session. Nil pointers and an
// empty genre list mean "no constraint".
type Filters struct {
	Genres    []int    `json:"genres,omitempty"`
	MinYear   *int     `json:"min_year,omitempty"`
	MaxYear   *int     `json:"max_year,omitempty"`
	MinRating *float64 `json:"min_rating,omitempty"`
}

func (f Filters) Validate() error {
	for _, g := range f.Genres {
		if !IsKnownGenre(g) {
			return fmt.Errorf("%w: unknown genre %d", ErrInvalidInput, g)
		}
	}
	if f.MinYear != nil && (*f.MinYear < minCatalogYear || *f.MinYear > maxCatalogYear) {
		return fmt.Errorf("%w: min_year out of range", ErrInvalidInput)
	}
	if f.MaxYear != nil && (*f.MaxYear < minCatalogYear || *f.MaxYear > maxCatalogYear) {
		return fmt.Errorf("%w: max_year out of range", ErrInvalidInput)
	}
	if f.MinYear != nil && f.MaxYear != nil && *f.MinYear > *f.MaxYear {
		return fmt.Errorf("%w: min_year is greater than max_year", ErrInvalidInput)
	}
	if f.MinRating != nil && (*f.MinRating < 0 || *f.MinRating > MaxRating) {
		return fmt.Errorf("%w: min_rating must be within [0, 10]", ErrInvalidInput)
	}
	return nil
}

// Normalized drops duplicate genres and keeps them sorted.
func (f Filters) Normalized() Filters {
	out := f
	if len(f.Genres) > 0 {
		out.Genres = slices.Clone(f.Genres)
		slices.Sort(out.Genres)
		out.Genres = slices.Compact(out.Genres)
	}
	return out
}

// HasDiscoveryCriteria reports whether a server side discovery query is needed.
func (f Filters) HasDiscoveryCriteria() bool {
	return len(f.Genres) > 0 || f.MinYear != nil || f.MaxYear != nil
}

// Matches applies the predicate client side. A movie without a
// parseable release date fails any year constraint.
func (f Filters) Matches(m Movie) bool {
	if len(f.Genres) > 0 {
		set := m.GenreSet()
		if !slices.ContainsFunc(f.Genres, func(g int) bool {
			_, ok := set[g]
			return ok
		}) {
			return false
		}
	}

	if f.MinYear != nil || f.MaxYear != nil {
		year, ok := m.ReleaseYear()
		if !ok {
			return false
		}
		if f.MinYear != nil && year < *f.MinYear {
			return false
		}
		if f.MaxYear != nil && year > *f.MaxYear {
			return false
		}
	}

	if f.MinRating != nil && m.VoteAverage < *f.MinRating {
		return false
	}
	return true
}

// WithBaselineRating returns a copy that has a rating floor,
// falling back to DefaultMinRating.
func (f Filters) WithBaselineRating() Filters {
	out := f
	if out.MinRating == nil {
		r := DefaultMinRating
		out.MinRating = &r
	}
	return out
}
