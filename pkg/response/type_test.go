package response_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jarvis-agent/pkg/response"
)

func TestDateTimeMarshalJSON(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	b, err := json.Marshal(response.DateTime(tm))
	require.NoError(t, err)
	assert.Equal(t, `"`+tm.Local().Format(response.DateTimeFormat)+`"`, string(b))
}

func TestDateTimeInEnvelope(t *testing.T) {
	tm := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	b, err := json.Marshal(response.Resp{
		Message: response.MessageSuccess,
		Data:    map[string]any{"time": response.DateTime(tm)},
	})
	require.NoError(t, err)

	var got struct {
		ErrorCode int               `json:"error_code"`
		Data      map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, 0, got.ErrorCode)
	assert.Equal(t, tm.Local().Format(response.DateTimeFormat), got.Data["time"])
	assert.NotContains(t, string(b), `"errors"`)
}
