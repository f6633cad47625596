package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/JoeSaf/homeStream/internal/platform/metrics"
)

const (
	defaultBaseURL  = "https://api.themoviedb.org/3"
	defaultLanguage = "en-US"
	defaultTimeout  = 10 * time.Second
	errorBodyLimit  = 4 << 10
)

// HTTPDoer is the part of *http.Client the client needs.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client wraps the handful of TMDB list and search calls the home screen uses.
type Client struct {
	baseURL    string
	language   string
	keys       *KeyRing
	httpClient HTTPDoer
	log        *zap.Logger
	metrics    *metrics.Registry
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient swaps the transport, mostly for tests.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL points the client at another API root.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base = strings.TrimSuffix(strings.TrimSpace(base), "/"); base != "" {
			client.baseURL = base
		}
	}
}

// WithLanguage sets the locale sent with every request.
func WithLanguage(lang string) Option {
	return func(client *Client) {
		if lang = strings.TrimSpace(lang); lang != "" {
			client.language = lang
		}
	}
}

// WithTimeout sets the per request timeout of the default transport.
func WithTimeout(d time.Duration) Option {
	return func(client *Client) {
		if hc, ok := client.httpClient.(*http.Client); ok && d > 0 {
			hc.Timeout = d
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(log *zap.Logger) Option {
	return func(client *Client) {
		if log != nil {
			client.log = log
		}
	}
}

// WithMetrics attaches the metrics registry.
func WithMetrics(m *metrics.Registry) Option {
	return func(client *Client) {
		client.metrics = m
	}
}

// New creates a client rotating over keys.
func New(keys *KeyRing, opts ...Option) (*Client, error) {
	if keys == nil {
		return nil, ErrNoAPIKeys
	}
	c := &Client{
		baseURL:    defaultBaseURL,
		language:   defaultLanguage,
		keys:       keys,
		httpClient: &http.Client{Timeout: defaultTimeout},
		log:        zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// HTTPClient exposes the underlying transport for ancillary fetches.
func (c *Client) HTTPClient() HTTPDoer {
	return c.httpClient
}

// Trending returns the trending list for mediaType (all, movie, tv) over
// window (day, week).
func (c *Client) Trending(ctx context.Context, mediaType, window string) (*Page, error) {
	if mediaType == "" {
		mediaType = "all"
	}
	if window == "" {
		window = "week"
	}
	return c.fetch(ctx, "/trending/"+url.PathEscape(mediaType)+"/"+url.PathEscape(window), nil)
}

// Popular returns popular movies or shows.
func (c *Client) Popular(ctx context.Context, kind Kind) (*Page, error) {
	return c.fetch(ctx, "/"+string(kindOrMovie(kind))+"/popular", nil)
}

// TopRated returns the top rated movies or shows.
func (c *Client) TopRated(ctx context.Context, kind Kind) (*Page, error) {
	return c.fetch(ctx, "/"+string(kindOrMovie(kind))+"/top_rated", nil)
}

// Upcoming returns movies about to be released.
func (c *Client) Upcoming(ctx context.Context) (*Page, error) {
	return c.fetch(ctx, "/movie/upcoming", nil)
}

// NowPlaying returns movies currently in theatres.
func (c *Client) NowPlaying(ctx context.Context) (*Page, error) {
	return c.fetch(ctx, "/movie/now_playing", nil)
}

// DiscoverGenre returns movies tagged with genreID.
func (c *Client) DiscoverGenre(ctx context.Context, genreID int) (*Page, error) {
	return c.fetch(ctx, "/discover/movie", url.Values{"with_genres": {strconv.Itoa(genreID)}})
}

// SearchMulti searches movies, shows and people at once.
func (c *Client) SearchMulti(ctx context.Context, query string) (*Page, error) {
	return c.fetch(ctx, "/search/multi", url.Values{"query": {query}})
}

// fetch issues the request and retries exactly once with the next key when
// the first attempt is rate limited.
func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) (*Page, error) {
	const op = "tmdb.fetch"

	key := c.keys.Current()
	page, err := c.do(ctx, endpoint, params, key)
	if err == nil {
		return page, nil
	}

	if !errors.Is(err, ErrRateLimited) {
		c.log.Debug("tmdb api error", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, fmt.Errorf("%s: %s: %w", op, endpoint, err)
	}

	next := c.keys.RotateFrom(key)
	c.metrics.Rotation()
	c.log.Warn("tmdb rate limited, retrying with next api key",
		zap.String("endpoint", endpoint),
		zap.Int("keys", c.keys.Len()),
	)

	page, err = c.do(ctx, endpoint, params, next)
	if err != nil {
		c.log.Debug("tmdb api error after retry", zap.String("endpoint", endpoint), zap.Error(err))
		return nil, fmt.Errorf("%s: %s after retry: %w", op, endpoint, err)
	}
	return page, nil
}

func (c *Client) do(ctx context.Context, endpoint string, params url.Values, key string) (*Page, error) {
	query := url.Values{}
	for k, v := range params {
		query[k] = v
	}
	query.Set("api_key", key)
	query.Set("language", c.language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.Upstream(endpoint, "error")
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		outcome := "error"
		if resp.StatusCode == http.StatusTooManyRequests {
			outcome = "rate_limited"
		}
		c.metrics.Upstream(endpoint, outcome)
		return nil, &StatusError{Endpoint: endpoint, Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var page Page
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		c.metrics.Upstream(endpoint, "error")
		return nil, fmt.Errorf("decode %s: %w", endpoint, err)
	}
	c.metrics.Upstream(endpoint, "ok")
	return &page, nil
}

func kindOrMovie(kind Kind) Kind {
	if kind == KindTV {
		return KindTV
	}
	return KindMovie
}
