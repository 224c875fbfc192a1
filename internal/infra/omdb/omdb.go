package infra_omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/humanbelnik/kinoswap/swipematch/internal/config"
	"github.com/humanbelnik/kinoswap/swipematch/internal/model"
)

var (
	ErrNotConfigured  = errors.New("ratings: api key not configured")
	ErrRejected       = errors.New("ratings: provider rejected request")
	ErrInvalidPayload = errors.New("ratings: invalid payload")
)

const (
	sourceIMDb           = "Internet Movie Database"
	sourceRottenTomatoes = "Rotten Tomatoes"
	sourceMetacritic     = "Metacritic"
)

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	validate   *validator.Validate
}

// New returns ErrNotConfigured when no API key is set so the caller
// can run without secondary ratings.
func New(cfg config.Ratings) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrNotConfigured
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		validate: validator.New(),
	}, nil
}

type ratingDTO struct {
	Source string `json:"Source" validate:"required"`
	Value  string `json:"Value" validate:"required"`
}

type movieDTO struct {
	Title    string      `json:"Title"`
	IMDbID   string      `json:"imdbID"`
	Ratings  []ratingDTO `json:"Ratings" validate:"dive"`
	Response string      `json:"Response" validate:"required,oneof=True False"`
	Error    string      `json:"Error"`
}

// Ratings fetches secondary ratings keyed by model.RatingSource* names.
func (c *Client) Ratings(ctx context.Context, imdbID string) (map[string]string, error) {
	if imdbID == "" {
		return nil, fmt.Errorf("%w: empty imdb id", model.ErrInvalidInput)
	}

	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("i", imdbID)
	params.Set("plot", "short")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call ratings provider: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrRejected, resp.StatusCode)
	}

	var dto movieDTO
	if err := json.NewDecoder(resp.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if err := c.validate.Struct(dto); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}
	if dto.Response == "False" {
		return nil, fmt.Errorf("%w: %s", ErrRejected, dto.Error)
	}

	return parseRatings(dto.Ratings), nil
}

// Unknown sources are ignored.
func parseRatings(in []ratingDTO) map[string]string {
	out := make(map[string]string, len(in))
	for _, r := range in {
		switch r.Source {
		case sourceIMDb:
			out[model.RatingSourceIMDb] = r.Value
		case sourceRottenTomatoes:
			out[model.RatingSourceRottenTomatoes] = r.Value
		case sourceMetacritic:
			out[model.RatingSourceMetacritic] = r.Value
		}
	}
	return out
}
