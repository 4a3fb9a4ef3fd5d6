package tmdb

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/mmcdole/flixhub/internal/domain"
)

const (
	// DefaultBaseURL is the TMDB v3 API root
	DefaultBaseURL = "https://api.themoviedb.org/3"

	defaultTimeout = 30 * time.Second
	userAgent      = "FlixHub/1.0"
)

// Client implements domain.CatalogRepository for TMDB
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger

	mu       sync.RWMutex
	language string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithBaseURL points the client at another API root
func WithBaseURL(base string) Option {
	return func(c *Client) {
		if base != "" {
			c.baseURL = strings.TrimRight(base, "/")
		}
	}
}

// WithTimeout sets the request timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// NewClient creates a new TMDB API client
func NewClient(apiKey string, logger *slog.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  strings.TrimSpace(apiKey),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		logger: logger.With("component", "tmdb"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetLanguage sets the language tag sent with every request ("" omits it)
func (c *Client) SetLanguage(tag string) {
	c.mu.Lock()
	c.language = tag
	c.mu.Unlock()
}

// Language returns the current language tag
func (c *Client) Language() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.language
}

// doRequest performs an authenticated GET and returns the body
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	q := url.Values{}
	for k, vs := range query {
		q[k] = vs
	}
	q.Set("api_key", c.apiKey)
	if lang := c.Language(); lang != "" && q.Get("language") == "" {
		q.Set("language", lang)
	}

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("tmdb request", "path", path, "query", redact(q))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, domain.ErrUnauthorized
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", path, domain.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		var apiErr ErrorResponse
		_ = json.Unmarshal(body, &apiErr)
		c.logger.Error("tmdb request error", "path", path, "status", resp.StatusCode, "message", apiErr.StatusMessage)
		return nil, &StatusError{Code: resp.StatusCode, Message: apiErr.StatusMessage}
	}

	return body, nil
}

// get performs a request and decodes the JSON body into v
func (c *Client) get(ctx context.Context, path string, query url.Values, v any) error {
	body, err := c.doRequest(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		c.logger.Error("JSON parse error", "path", path, "error", err, "bodyLen", len(body))
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// List fetches any paged list endpoint (trending, popular, discover, ...)
func (c *Client) List(ctx context.Context, endpoint string, params url.Values) ([]domain.MediaSummary, error) {
	var page PagedResults
	if err := c.get(ctx, endpoint, params, &page); err != nil {
		return nil, err
	}
	return MapResults(page.Results, mediaTypeOf(endpoint)), nil
}

// Details fetches movie or show details with credits (and seasons for tv)
func (c *Client) Details(ctx context.Context, key domain.MediaKey) (*domain.MediaDetails, error) {
	if !key.Type.Valid() {
		return nil, domain.ErrInvalidMediaType
	}

	appendTo := "credits"
	if key.Type == domain.MediaTypeTV {
		appendTo = "seasons,credits"
	}

	var d Details
	path := fmt.Sprintf("/%s/%d", key.Type, key.ID)
	if err := c.get(ctx, path, url.Values{"append_to_response": {appendTo}}, &d); err != nil {
		return nil, err
	}
	return MapDetails(d, key.Type), nil
}

// Similar fetches titles similar to key
func (c *Client) Similar(ctx context.Context, key domain.MediaKey) ([]domain.MediaSummary, error) {
	if !key.Type.Valid() {
		return nil, domain.ErrInvalidMediaType
	}

	var page PagedResults
	if err := c.get(ctx, fmt.Sprintf("/%s/%d/similar", key.Type, key.ID), nil, &page); err != nil {
		return nil, err
	}
	return MapResults(page.Results, key.Type), nil
}

// SeasonEpisodes fetches the episodes of one season
func (c *Client) SeasonEpisodes(ctx context.Context, showID, season int) ([]domain.Episode, error) {
	var s SeasonDetails
	if err := c.get(ctx, fmt.Sprintf("/tv/%d/season/%d", showID, season), nil, &s); err != nil {
		return nil, err
	}
	return MapEpisodes(s.Episodes), nil
}

// ContentRatings fetches per-region certifications
func (c *Client) ContentRatings(ctx context.Context, key domain.MediaKey) ([]domain.RegionRating, error) {
	switch key.Type {
	case domain.MediaTypeMovie:
		var r ReleaseDates
		if err := c.get(ctx, fmt.Sprintf("/movie/%d/release_dates", key.ID), nil, &r); err != nil {
			return nil, err
		}
		return MapReleaseDates(r), nil
	case domain.MediaTypeTV:
		var r ContentRatings
		if err := c.get(ctx, fmt.Sprintf("/tv/%d/content_ratings", key.ID), nil, &r); err != nil {
			return nil, err
		}
		return MapContentRatings(r), nil
	default:
		return nil, domain.ErrInvalidMediaType
	}
}

// SearchType runs a text search restricted to one media type. Results are
// stamped with that type.
func (c *Client) SearchType(ctx context.Context, mediaType domain.MediaType, query string) ([]domain.MediaSummary, error) {
	if !mediaType.Valid() {
		return nil, domain.ErrInvalidMediaType
	}

	params := url.Values{
		"query":         {query},
		"include_adult": {"false"},
	}
	var page PagedResults
	if err := c.get(ctx, "/search/"+string(mediaType), params, &page); err != nil {
		return nil, err
	}

	items := MapResults(page.Results, mediaType)
	for i := range items {
		items[i].Type = mediaType
	}
	return items, nil
}

// Genres fetches the genre list of a media type
func (c *Client) Genres(ctx context.Context, mediaType domain.MediaType) ([]domain.Genre, error) {
	if !mediaType.Valid() {
		return nil, domain.ErrInvalidMediaType
	}

	var list GenreList
	if err := c.get(ctx, "/genre/"+string(mediaType)+"/list", nil, &list); err != nil {
		return nil, err
	}
	return MapGenres(list.Genres), nil
}

// Validate checks that the API key is accepted
func (c *Client) Validate(ctx context.Context) error {
	_, err := c.doRequest(ctx, "/configuration", nil)
	return err
}

// StatusError is returned for non-2xx responses other than 401 and 404
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("unexpected status code %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// IsStatus reports whether err is a StatusError with the given code
func IsStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.Code == code
}

// mediaTypeOf infers the media type from an endpoint path such as
// /movie/popular, /trending/tv/week or /discover/movie.
func mediaTypeOf(endpoint string) domain.MediaType {
	for _, seg := range strings.Split(endpoint, "/") {
		switch seg {
		case "movie":
			return domain.MediaTypeMovie
		case "tv":
			return domain.MediaTypeTV
		}
	}
	return ""
}

// redact returns the query with the api key masked, for logging
func redact(q url.Values) string {
	masked := url.Values{}
	for k, vs := range q {
		if k == "api_key" {
			masked.Set(k, "***")
			continue
		}
		masked[k] = vs
	}
	return masked.Encode()
}
