package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// Client is the MediaWiki API client used for knowledge lookups.
type Client struct {
	apiURL     string
	topK       int
	maxChars   int
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      *expirable.LRU[string, string]
}

var _ IWikipedia = (*Client)(nil)

// New creates a new Wikipedia client.
func New(cfg Config) (*Client, error) {
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = fmt.Sprintf(apiURLTemplate, cfg.Language)
	}
	if _, err := url.Parse(cfg.BaseURL); err != nil {
		return nil, fmt.Errorf("wikipedia: invalid base URL: %w", err)
	}
	if cfg.TopK <= 0 {
		cfg.TopK = DefaultTopK
	}
	if cfg.DocContentCharsMax <= 0 {
		cfg.DocContentCharsMax = DefaultDocContentCharsMax
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	if cfg.RatePerSecond <= 0 {
		cfg.RatePerSecond = DefaultRatePerSecond
	}
	if cfg.Burst <= 0 {
		cfg.Burst = DefaultBurst
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = DefaultCacheSize
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}

	return &Client{
		apiURL:     cfg.BaseURL,
		topK:       cfg.TopK,
		maxChars:   cfg.DocContentCharsMax,
		userAgent:  cfg.UserAgent,
		httpClient: cfg.HTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RatePerSecond), cfg.Burst),
		cache:      expirable.NewLRU[string, string](cfg.CacheSize, nil, cfg.CacheTTL),
	}, nil
}

// Run searches Wikipedia for query and returns up to topK page summaries
// formatted as "Page: <title>\nSummary: <summary>" blocks separated by a blank
// line, clipped to the configured character budget.
func (c *Client) Run(ctx context.Context, query string) (string, error) {
	query = clip(strings.TrimSpace(query), MaxQueryLength)
	if query == "" {
		return "", ErrEmptyQuery
	}

	if cached, ok := c.cache.Get(query); ok {
		return cached, nil
	}

	hits, err := c.search(ctx, query)
	if err != nil {
		return "", err
	}
	if len(hits) == 0 {
		return "", ErrNoGoodResult
	}

	pages, err := c.extracts(ctx, hits)
	if err != nil {
		return "", err
	}

	summaries := make([]string, 0, len(pages))
	for _, p := range pages {
		summaries = append(summaries, fmt.Sprintf(pageTemplate, p.Title, strings.TrimSpace(p.Extract)))
	}
	if len(summaries) == 0 {
		return "", ErrNoGoodResult
	}

	result := clip(strings.Join(summaries, pageSep), c.maxChars)
	c.cache.Add(query, result)
	return result, nil
}

func (c *Client) search(ctx context.Context, query string) ([]searchHit, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(c.topK))
	params.Set("srprop", "")

	var resp searchResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, fmt.Errorf("wikipedia: search %q: %w", query, err)
	}
	if resp.Error != nil {
		return nil, resp.Error
	}

	hits := resp.Query.Search
	if len(hits) > c.topK {
		hits = hits[:c.topK]
	}
	return hits, nil
}

// extracts fetches intro extracts for hits, keeping search order and
// skipping missing or empty pages.
func (c *Client) extracts(ctx context.Context, hits []searchHit) ([]page, error) {
	ids := make([]string, 0, len(hits))
	for _, h := range hits {
		ids = append(ids, strconv.FormatInt(h.PageID, 10))
	}

	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("exlimit", "max")
	params.Set("redirects", "1")
	params.Set("pageids", strings.Join(ids, "|"))

	var resp extractResponse
	if err := c.get(ctx, params, &resp); err != nil {
		return nil, fmt.Errorf("wikipedia: extracts: %w", err)
	}
	if resp.Error != nil {
		return nil, resp.Error
	}

	byID := make(map[int64]page, len(resp.Query.Pages))
	for _, p := range resp.Query.Pages {
		byID[p.PageID] = p
	}

	out := make([]page, 0, len(hits))
	for _, h := range hits {
		p, ok := byID[h.PageID]
		if !ok || p.Missing || strings.TrimSpace(p.Extract) == "" {
			continue
		}
		if p.Title == "" {
			p.Title = h.Title
		}
		out = append(out, p)
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	params.Set("format", "json")
	params.Set("formatversion", "2")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call Wikipedia API: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &StatusError{StatusCode: resp.StatusCode, Body: string(buf)}
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, 4<<20)).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// clip truncates s to at most n runes.
func clip(s string, n int) string {
	if n <= 0 {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
