package wikipedia_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jarvis-agent/pkg/wikipedia"
)

func newWikiServer(t *testing.T, calls *int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		q := r.URL.Query()

		if r.Header.Get("User-Agent") == "" {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		if q.Get("format") != "json" || q.Get("formatversion") != "2" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		switch {
		case q.Get("list") == "search":
			switch q.Get("srsearch") {
			case "penicillin":
				w.Write([]byte(`{"query":{"search":[
					{"title":"Penicillin","pageid":101},
					{"title":"History of penicillin","pageid":102},
					{"title":"Missing page","pageid":103}
				]}}`))
			case "nothing":
				w.Write([]byte(`{"query":{"search":[]}}`))
			case "broken":
				w.WriteHeader(http.StatusBadGateway)
				w.Write([]byte("bad gateway"))
			case "garbage":
				w.Write([]byte(`{not json`))
			default:
				w.Write([]byte(`{"error":{"code":"badvalue","info":"bad"}}`))
			}
		case q.Get("prop") == "extracts":
			if q.Get("pageids") != "101|102|103" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			// Pages come back in an order different from the search ranking.
			w.Write([]byte(`{"query":{"pages":[
				{"pageid":102,"title":"History of penicillin","extract":"Discovered in 1928.\nMore detail."},
				{"pageid":101,"title":"Penicillin","extract":"  Penicillins are a group of antibiotics.  "},
				{"pageid":103,"title":"Missing page","missing":true}
			]}}`))
		default:
			w.WriteHeader(http.StatusBadRequest)
		}
	}))
}

func TestClient_Run(t *testing.T) {
	var calls int32
	ts := newWikiServer(t, &calls)
	defer ts.Close()

	client, err := wikipedia.New(wikipedia.Config{BaseURL: ts.URL, RatePerSecond: 1000, Burst: 100})
	require.NoError(t, err)

	t.Run("Success Flow", func(t *testing.T) {
		got, err := client.Run(context.Background(), "  penicillin ")
		require.NoError(t, err)

		want := "Page: Penicillin\nSummary: Penicillins are a group of antibiotics.\n\n" +
			"Page: History of penicillin\nSummary: Discovered in 1928.\nMore detail."
		assert.Equal(t, want, got)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
	})

	t.Run("Cached", func(t *testing.T) {
		_, err := client.Run(context.Background(), "penicillin")
		require.NoError(t, err)
		assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "second lookup must be served from cache")
	})

	t.Run("No Results", func(t *testing.T) {
		_, err := client.Run(context.Background(), "nothing")
		assert.ErrorIs(t, err, wikipedia.ErrNoGoodResult)
	})

	t.Run("Empty Query", func(t *testing.T) {
		_, err := client.Run(context.Background(), "   ")
		assert.ErrorIs(t, err, wikipedia.ErrEmptyQuery)
	})

	t.Run("HTTP Error", func(t *testing.T) {
		_, err := client.Run(context.Background(), "broken")
		var se *wikipedia.StatusError
		require.True(t, errors.As(err, &se), "got %v", err)
		assert.Equal(t, http.StatusBadGateway, se.StatusCode)
	})

	t.Run("Decode Error", func(t *testing.T) {
		_, err := client.Run(context.Background(), "garbage")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "decode")
	})

	t.Run("API Error", func(t *testing.T) {
		_, err := client.Run(context.Background(), "unknown")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "badvalue")
	})

	t.Run("Cancelled Context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := client.Run(ctx, "something new")
		require.Error(t, err)
	})
}

func TestClient_RunClipsOutput(t *testing.T) {
	var calls int32
	ts := newWikiServer(t, &calls)
	defer ts.Close()

	client, err := wikipedia.New(wikipedia.Config{BaseURL: ts.URL, DocContentCharsMax: 20, RatePerSecond: 1000, Burst: 100})
	require.NoError(t, err)

	got, err := client.Run(context.Background(), "penicillin")
	require.NoError(t, err)
	assert.Equal(t, "Page: Penicillin\nSum", got)
}

func TestClient_QueryIsClipped(t *testing.T) {
	var seen string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.URL.Query().Get("srsearch")
		w.Write([]byte(`{"query":{"search":[]}}`))
	}))
	defer ts.Close()

	client, err := wikipedia.New(wikipedia.Config{BaseURL: ts.URL})
	require.NoError(t, err)

	_, err = client.Run(context.Background(), strings.Repeat("a", 500))
	assert.ErrorIs(t, err, wikipedia.ErrNoGoodResult)
	assert.Len(t, seen, wikipedia.MaxQueryLength)
}
