package middleware

import "time"

// Headers
const (
	HeaderRequestID = "X-Request-ID"
)

// Per-client limiter table
const (
	LimiterCacheSize = 10000
	LimiterIdleTTL   = 10 * time.Minute
)
