// Package colourlovers fetches palettes from the ColourLovers palette API,
// caching responses on disk with a fixed TTL.
package colourlovers

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"

	"github.com/athola/simple-resume/internal/colour"
	"github.com/athola/simple-resume/internal/palette"
	"github.com/athola/simple-resume/internal/palette/cache"
	"github.com/athola/simple-resume/internal/security"
	httputil "github.com/athola/simple-resume/internal/util/http"
)

const (
	// DefaultBaseURL is the ColourLovers palettes endpoint.
	DefaultBaseURL = "https://www.colourlovers.com/api/palettes"

	// DefaultTimeout bounds one palette fetch.
	DefaultTimeout = 5 * time.Second

	// TTL is how long a cached response stays fresh.
	TTL = 12 * time.Hour

	// maxResults is the documented ColourLovers page-size ceiling.
	maxResults = 50

	defaultOrderBy = "score"
)

// Fetcher performs an HTTP GET and returns the response body.
// The production implementation wraps internal/util/http; tests substitute
// counting doubles.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// httpFetcher is the production Fetcher.
type httpFetcher struct {
	timeout time.Duration
}

func (f httpFetcher) Fetch(ctx context.Context, u string) ([]byte, error) {
	return httputil.Fetch(ctx, u, httputil.FetchOptions{Timeout: f.timeout})
}

// Options configures a Client. Zero values select the documented defaults;
// a nil Store disables caching.
type Options struct {
	BaseURL string
	Timeout time.Duration
	Store   cache.Store
	Fetcher Fetcher
	Logger  hclog.Logger

	// Now overrides the clock, for TTL tests.
	Now func() time.Time
}

// Client fetches palettes from the remote service. It implements
// palette.RemoteClient.
type Client struct {
	baseURL string
	store   cache.Store
	fetcher Fetcher
	logger  hclog.Logger
	now     func() time.Time
}

// New builds a Client from options.
func New(opts Options) *Client {
	c := &Client{
		baseURL: opts.BaseURL,
		store:   opts.Store,
		fetcher: opts.Fetcher,
		logger:  opts.Logger,
		now:     opts.Now,
	}
	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.fetcher == nil {
		timeout := opts.Timeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		c.fetcher = httpFetcher{timeout: timeout}
	}
	if c.logger == nil {
		c.logger = hclog.NewNullLogger()
	}
	if c.now == nil {
		c.now = time.Now
	}
	return c
}

// entry is the serialized cache payload.
type entry struct {
	FetchedAt  int64          `json:"fetched_at"`
	TTLSeconds int64          `json:"ttl_seconds"`
	Palettes   []entryPalette `json:"palettes"`
}

type entryPalette struct {
	Name     string         `json:"name"`
	Swatches []string       `json:"swatches"`
	Metadata map[string]any `json:"metadata"`
}

// apiPalette mirrors one element of the ColourLovers JSON response.
type apiPalette struct {
	Title    string   `json:"title"`
	UserName string   `json:"userName"`
	Colors   []string `json:"colors"`
	URL      string   `json:"url"`
}

// Fetch returns palettes matching the query, consulting the cache first.
// A fresh cached response short-circuits the network entirely. The target
// URL is validated before any network attempt; transport failures, timeouts,
// non-success statuses, and malformed payloads surface as *palette.RemoteError
// with the cause attached. Fetch never retries; retry policy belongs to the
// caller.
func (c *Client) Fetch(ctx context.Context, query palette.RemoteQuery) ([]palette.Palette, error) {
	query = normalizeQuery(query)
	key := cacheKey(query)

	if cached, ok := c.readCache(key); ok {
		c.logger.Debug("remote palette cache hit", "key", key, "keywords", query.Keywords)
		return cached, nil
	}

	target := c.requestURL(query)
	if err := security.ValidateRemoteURL(target); err != nil {
		return nil, &palette.RemoteError{Op: "validate url", Err: err}
	}

	c.logger.Debug("fetching remote palettes", "keywords", query.Keywords, "num_results", query.NumResults)
	body, err := c.fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, &palette.RemoteError{Op: "fetch", Err: err}
	}

	palettes, stored, err := parseResponse(body)
	if err != nil {
		return nil, err
	}

	c.writeCache(key, stored)
	return palettes, nil
}

// normalizeQuery applies defaults and clamps num_results to the API limits.
func normalizeQuery(q palette.RemoteQuery) palette.RemoteQuery {
	q.Keywords = strings.TrimSpace(q.Keywords)
	if q.NumResults < 1 {
		q.NumResults = 1
	}
	if q.NumResults > maxResults {
		q.NumResults = maxResults
	}
	q.OrderBy = strings.TrimSpace(strings.ToLower(q.OrderBy))
	if q.OrderBy == "" {
		q.OrderBy = defaultOrderBy
	}
	return q
}

// cacheKey hashes the canonical form of a normalized query.
func cacheKey(q palette.RemoteQuery) string {
	canonical := fmt.Sprintf("keywords=%s&numResults=%d&orderCol=%s", q.Keywords, q.NumResults, q.OrderBy)
	sum := sha256.Sum256([]byte(canonical))
	return fmt.Sprintf("%x", sum[:16])
}

// requestURL builds the API URL for a normalized query.
func (c *Client) requestURL(q palette.RemoteQuery) string {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("numResults", strconv.Itoa(q.NumResults))
	params.Set("orderCol", q.OrderBy)
	if q.Keywords != "" {
		params.Set("keywords", q.Keywords)
	}
	return c.baseURL + "?" + params.Encode()
}

// readCache returns the cached palettes for key if a fresh entry exists.
// Stale or corrupt entries are treated as misses.
func (c *Client) readCache(key string) ([]palette.Palette, bool) {
	if c.store == nil {
		return nil, false
	}

	data, ok, err := c.store.Read(key)
	if err != nil {
		c.logger.Warn("palette cache read failed", "key", key, "error", err)
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		c.logger.Warn("discarding corrupt palette cache entry", "key", key, "error", err)
		return nil, false
	}

	age := c.now().Unix() - e.FetchedAt
	if age < 0 || age >= e.TTLSeconds {
		return nil, false
	}

	palettes := make([]palette.Palette, 0, len(e.Palettes))
	for _, ep := range e.Palettes {
		p, err := palette.New(ep.Name, ep.Swatches, palette.SourceRemote, ep.Metadata)
		if err != nil {
			c.logger.Warn("discarding invalid palette cache entry", "key", key, "error", err)
			return nil, false
		}
		palettes = append(palettes, p)
	}
	return palettes, true
}

// writeCache stores a fresh entry. A refresh writes a whole new entry; cache
// write failures are logged and otherwise ignored, since the fetch itself
// succeeded.
func (c *Client) writeCache(key string, stored []entryPalette) {
	if c.store == nil {
		return
	}

	e := entry{
		FetchedAt:  c.now().Unix(),
		TTLSeconds: int64(TTL / time.Second),
		Palettes:   stored,
	}
	data, err := json.Marshal(e)
	if err != nil {
		c.logger.Warn("failed to encode palette cache entry", "key", key, "error", err)
		return
	}
	if err := c.store.Write(key, data); err != nil {
		c.logger.Warn("failed to write palette cache entry", "key", key, "error", err)
	}
}

// parseResponse decodes the API payload into validated palettes plus their
// cache representation.
func parseResponse(body []byte) ([]palette.Palette, []entryPalette, error) {
	var raw []apiPalette
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, nil, &palette.RemoteError{Op: "decode", Err: err}
	}

	palettes := make([]palette.Palette, 0, len(raw))
	stored := make([]entryPalette, 0, len(raw))
	for _, ap := range raw {
		if len(ap.Colors) == 0 {
			continue
		}

		swatches := make([]string, 0, len(ap.Colors))
		for _, hex := range ap.Colors {
			// The API returns bare RRGGBB values.
			swatches = append(swatches, "#"+strings.ToUpper(strings.TrimPrefix(hex, "#")))
		}
		for _, s := range swatches {
			if !colour.IsValidHex(s) {
				return nil, nil, &palette.RemoteError{
					Op:  "decode",
					Err: &colour.ValidationError{Field: "colors", Value: s},
				}
			}
		}

		metadata := map[string]any{"attribution": ap.UserName}
		if ap.URL != "" {
			metadata["url"] = ap.URL
		}

		p, err := palette.New(ap.Title, swatches, palette.SourceRemote, metadata)
		if err != nil {
			return nil, nil, &palette.RemoteError{Op: "decode", Err: err}
		}
		palettes = append(palettes, p)
		stored = append(stored, entryPalette{Name: ap.Title, Swatches: swatches, Metadata: metadata})
	}

	return palettes, stored, nil
}
