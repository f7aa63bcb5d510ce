package wikipedia

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNoGoodResult is returned when the search yields no usable page.
var ErrNoGoodResult = errors.New("wikipedia: no good Wikipedia search result was found")

// ErrEmptyQuery is returned for blank queries.
var ErrEmptyQuery = errors.New("wikipedia: query is empty")

// Config holds Wikipedia client configuration. Zero values take defaults.
type Config struct {
	BaseURL            string // full api.php URL; overrides Language
	Language           string
	TopK               int
	DocContentCharsMax int
	UserAgent          string
	HTTPClient         *http.Client
	RatePerSecond      float64
	Burst              int
	CacheSize          int
	CacheTTL           time.Duration
}

// StatusError is returned for non-2xx API responses.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("wikipedia: unexpected status %d: %s", e.StatusCode, e.Body)
}

// searchResponse is the list=search payload.
type searchResponse struct {
	Query struct {
		Search []searchHit `json:"search"`
	} `json:"query"`
	Error *apiError `json:"error,omitempty"`
}

type searchHit struct {
	Title  string `json:"title"`
	PageID int64  `json:"pageid"`
}

// extractResponse is the prop=extracts payload (formatversion=2).
type extractResponse struct {
	Query struct {
		Pages []page `json:"pages"`
	} `json:"query"`
	Error *apiError `json:"error,omitempty"`
}

type page struct {
	PageID  int64  `json:"pageid"`
	Title   string `json:"title"`
	Extract string `json:"extract"`
	Missing bool   `json:"missing,omitempty"`
}

type apiError struct {
	Code string `json:"code"`
	Info string `json:"info"`
}

func (e *apiError) Error() string {
	return fmt.Sprintf("wikipedia: api error %s: %s", e.Code, e.Info)
}
