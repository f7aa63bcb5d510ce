package response

import (
	"encoding/json"
	"time"
)

// Resp is the envelope every API response is written in.
type Resp struct {
	// ErrorCode is 0 on success.
	ErrorCode int    `json:"error_code"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`

	// Errors carries per-field details, such as the ConfigError code.
	Errors any `json:"errors,omitempty"`
}

// DateTime renders a timestamp in server local time using DateTimeFormat.
// Health and readiness payloads use it for their "time" field.
type DateTime time.Time

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Local().Format(DateTimeFormat))
}
