package wikipedia

import "time"

const (
	// DefaultLanguage selects the en.wikipedia.org API
	DefaultLanguage = "en"

	// DefaultTopK is how many search hits are summarized
	DefaultTopK = 3

	// DefaultDocContentCharsMax caps the combined output
	DefaultDocContentCharsMax = 4000

	// MaxQueryLength caps the search string sent to the API
	MaxQueryLength = 300

	DefaultTimeout       = 15 * time.Second
	DefaultUserAgent     = "jarvis-agent/1.0"
	DefaultRatePerSecond = 5.0
	DefaultBurst         = 5
	DefaultCacheSize     = 256
	DefaultCacheTTL      = 30 * time.Minute

	apiURLTemplate = "https://%s.wikipedia.org/w/api.php"

	pageTemplate = "Page: %s\nSummary: %s"
	pageSep      = "\n\n"
)
