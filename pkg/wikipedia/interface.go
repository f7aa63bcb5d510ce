package wikipedia

import "context"

// IWikipedia looks up free-text queries and returns page summaries.
// Implementations are safe for concurrent use.
type IWikipedia interface {
	Run(ctx context.Context, query string) (string, error)
}
