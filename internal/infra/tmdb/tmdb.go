package infra_tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/humanbelnik/kinoswap/swipematch/internal/config"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
)

var (
	ErrNotFound       = fmt.Errorf("catalog: %w", model.ErrResourceNotFound)
	ErrInvalidPayload = errors.New("catalog: invalid payload")
	ErrStatus         = errors.New("catalog: unexpected status")
)

const (
	SortPopularityDesc = "popularity.desc"
	dateLayout         = "2006-01-02"
)

type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	validate   *validator.Validate
	logger     *slog.Logger
}

type ClientOption func(*Client)

func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func New(cfg config.Catalog, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.AccessToken,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type genreDTO struct {
	ID   int    `json:"id" validate:"required"`
	Name string `json:"name"`
}

type movieDTO struct {
	ID           int64      `json:"id" validate:"required,gt=0"`
	Title        string     `json:"title" validate:"required"`
	Overview     string     `json:"overview"`
	PosterPath   *string    `json:"poster_path"`
	BackdropPath *string    `json:"backdrop_path"`
	ReleaseDate  string     `json:"release_date"`
	VoteAverage  float64    `json:"vote_average" validate:"gte=0,lte=10"`
	VoteCount    int        `json:"vote_count" validate:"gte=0"`
	GenreIDs     []int      `json:"genre_ids"`
	Genres       []genreDTO `json:"genres" validate:"omitempty,dive"`
}

type detailsDTO struct {
	movieDTO
	Runtime int     `json:"runtime" validate:"gte=0"`
	Tagline string  `json:"tagline"`
	Status  string  `json:"status"`
	IMDbID  *string `json:"imdb_id"`
}

type pageDTO struct {
	Page         int        `json:"page" validate:"gte=1"`
	Results      []movieDTO `json:"results" validate:"required,dive"`
	TotalPages   int        `json:"total_pages" validate:"gte=0"`
	TotalResults int        `json:"total_results" validate:"gte=0"`
}

type videoDTO struct {
	Key  string `json:"key" validate:"required"`
	Site string `json:"site"`
	Type string `json:"type"`
}

type videosDTO struct {
	Results []videoDTO `json:"results" validate:"required,dive"`
}

func (m movieDTO) toDomain() model.Movie {
	genres := make([]model.Genre, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, model.Genre{ID: g.ID, Name: g.Name})
	}
	return model.Movie{
		ID:           m.ID,
		Title:        m.Title,
		Overview:     m.Overview,
		PosterPath:   deref(m.PosterPath),
		BackdropPath: deref(m.BackdropPath),
		ReleaseDate:  m.ReleaseDate,
		VoteAverage:  m.VoteAverage,
		VoteCount:    m.VoteCount,
		GenreIDs:     m.GenreIDs,
		Genres:       genres,
	}
}

func (p pageDTO) toDomain() model.Page {
	movies := make([]model.Movie, 0, len(p.Results))
	for _, m := range p.Results {
		movies = append(movies, m.toDomain())
	}
	return model.Page{
		Page:         p.Page,
		Results:      movies,
		TotalPages:   p.TotalPages,
		TotalResults: p.TotalResults,
	}
}

func (c *Client) Movie(ctx context.Context, id model.MovieID) (model.MovieDetails, error) {
	var dto detailsDTO
	if err := c.get(ctx, "/movie/"+strconv.FormatInt(id, 10), nil, &dto); err != nil {
		return model.MovieDetails{}, err
	}
	return model.MovieDetails{
		Movie:   dto.movieDTO.toDomain(),
		Runtime: dto.Runtime,
		Tagline: dto.Tagline,
		Status:  dto.Status,
		IMDbID:  deref(dto.IMDbID),
	}, nil
}

func (c *Client) Search(ctx context.Context, query string, page int) (model.Page, error) {
	if strings.TrimSpace(query) == "" {
		return model.Page{}, fmt.Errorf("%w: empty query", model.ErrInvalidInput)
	}
	params := url.Values{}
	params.Set("query", query)
	params.Set("page", strconv.Itoa(normalizePage(page)))
	return c.page(ctx, "/search/movie", params)
}

func (c *Client) Popular(ctx context.Context, page int) (model.Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(normalizePage(page)))
	return c.page(ctx, "/movie/popular", params)
}

func (c *Client) TopRated(ctx context.Context, page int) (model.Page, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(normalizePage(page)))
	return c.page(ctx, "/movie/top_rated", params)
}

// DiscoverQuery mirrors the discovery endpoint parameters used by the pool builder.
type DiscoverQuery struct {
	Genres    []int
	MinYear   *int
	MaxYear   *int
	MinRating *float64
	SortBy    string
	Page      int
}

func DiscoverQueryFromFilters(f model.Filters, page int) DiscoverQuery {
	return DiscoverQuery{
		Genres:    f.Genres,
		MinYear:   f.MinYear,
		MaxYear:   f.MaxYear,
		MinRating: f.MinRating,
		SortBy:    SortPopularityDesc,
		Page:      page,
	}
}

// Values encodes the query the way the discovery endpoint expects it.
func (q DiscoverQuery) Values() url.Values {
	params := url.Values{}
	if len(q.Genres) > 0 {
		ids := make([]string, 0, len(q.Genres))
		for _, g := range q.Genres {
			ids = append(ids, strconv.Itoa(g))
		}
		// "|" is OR for the catalog, "," would be AND.
		params.Set("with_genres", strings.Join(ids, "|"))
	}
	if q.MinYear != nil {
		params.Set("primary_release_date.gte", time.Date(*q.MinYear, time.January, 1, 0, 0, 0, 0, time.UTC).Format(dateLayout))
	}
	if q.MaxYear != nil {
		params.Set("primary_release_date.lte", time.Date(*q.MaxYear, time.December, 31, 0, 0, 0, 0, time.UTC).Format(dateLayout))
	}
	if q.MinRating != nil {
		params.Set("vote_average.gte", strconv.FormatFloat(*q.MinRating, 'f', -1, 64))
	}
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = SortPopularityDesc
	}
	params.Set("sort_by", sortBy)
	params.Set("include_adult", "false")
	params.Set("page", strconv.Itoa(normalizePage(q.Page)))
	return params
}

func (c *Client) Discover(ctx context.Context, q DiscoverQuery) (model.Page, error) {
	return c.page(ctx, "/discover/movie", q.Values())
}

// Trailers returns YouTube trailers only, in provider order.
func (c *Client) Trailers(ctx context.Context, id model.MovieID) ([]model.Video, error) {
	var dto videosDTO
	if err := c.get(ctx, "/movie/"+strconv.FormatInt(id, 10)+"/videos", nil, &dto); err != nil {
		return nil, err
	}

	videos := make([]model.Video, 0, len(dto.Results))
	for _, v := range dto.Results {
		if v.Site != "YouTube" || v.Type != "Trailer" {
			continue
		}
		videos = append(videos, model.Video{Key: v.Key, Site: v.Site, Type: v.Type})
	}
	return videos, nil
}

func (c *Client) page(ctx context.Context, endpoint string, params url.Values) (model.Page, error) {
	var dto pageDTO
	if err := c.get(ctx, endpoint, params, &dto); err != nil {
		return model.Page{}, err
	}
	return dto.toDomain(), nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	u := c.baseURL + endpoint
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call catalog %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: %s returned %d", ErrStatus, endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if err := c.validate.Struct(out); err != nil {
		c.logger.Warn("catalog payload rejected",
			slog.String("endpoint", endpoint),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	return nil
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
