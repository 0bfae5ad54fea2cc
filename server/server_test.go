package server

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"net/http"
	"net/http/httptest"
	"slices"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/justsearch/justsearch/justwatch"
	"github.com/justsearch/justsearch/media"
	"github.com/justsearch/justsearch/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeSearcher struct {
	candidates []*media.Candidate
	err        error
	last       search.Request
	pulled     int
}

func (f *fakeSearcher) Search(_ context.Context, req search.Request) (iter.Seq[*media.Candidate], error) {
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return func(yield func(*media.Candidate) bool) {
		for _, c := range f.candidates {
			f.pulled++
			if !yield(c) {
				return
			}
		}
	}, nil
}

func candidates(n int) []*media.Candidate {
	out := make([]*media.Candidate, n)
	for i := range out {
		out[i] = &media.Candidate{
			Title:     "Heat [BUY] Store",
			URI:       "https://example.com/" + string(rune('a'+i)),
			MediaType: media.Movie,
			Playback:  media.Webview,
		}
	}
	return out
}

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	h.ServeHTTP(rec, req)
	return rec
}

func TestSearchEndpoint(t *testing.T) {
	fake := &fakeSearcher{candidates: candidates(3)}
	srv := New(Config{Lang: "en-US", Country: "DE"}, fake)

	rec := get(t, srv.Handler(), "/api/search?q=heat&type=movie")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Query   string           `json:"query"`
		Results []map[string]any `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "heat", body.Query)
	require.Len(t, body.Results, 3)
	assert.Equal(t, "MOVIE", body.Results[0]["media_type"])
	assert.Equal(t, "WEBVIEW", body.Results[0]["playback"])

	assert.Equal(t, media.Movie, fake.last.MediaType)
	assert.Equal(t, "en-US", fake.last.Lang)
	assert.Equal(t, "DE", fake.last.Location.Country())
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
}

func TestSearchEndpointOverridesLocale(t *testing.T) {
	fake := &fakeSearcher{}
	srv := New(Config{Lang: "en-US"}, fake)

	rec := get(t, srv.Handler(), "/api/search?q=casa+de+papel&lang=es-ES&country=es&type=series")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"query":"casa de papel","results":[]}`, rec.Body.String())
	assert.Equal(t, "es-ES", fake.last.Lang)
	assert.Equal(t, "ES", fake.last.Location.Country())
	assert.Equal(t, media.VideoEpisodes, fake.last.MediaType)
}

func TestSearchEndpointLimitStopsEarly(t *testing.T) {
	fake := &fakeSearcher{candidates: candidates(5)}
	srv := New(Config{}, fake)

	rec := get(t, srv.Handler(), "/api/search?q=heat&limit=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var body search.Output
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Results, 2)
	assert.Equal(t, 2, fake.pulled)
}

func TestSearchEndpointErrors(t *testing.T) {
	cases := []struct {
		name   string
		target string
		err    error
		status int
	}{
		{"empty phrase", "/api/search", search.ErrEmptyPhrase, http.StatusBadRequest},
		{"bad limit", "/api/search?q=heat&limit=two", nil, http.StatusBadRequest},
		{"negative limit", "/api/search?q=heat&limit=-1", nil, http.StatusBadRequest},
		{"provider status", "/api/search?q=heat", &justwatch.HTTPStatusError{StatusCode: 500}, http.StatusBadGateway},
		{"malformed record", "/api/search?q=heat", &justwatch.MalformedRecordError{Index: 0, Field: "title"}, http.StatusBadGateway},
		{"timeout", "/api/search?q=heat", context.DeadlineExceeded, http.StatusGatewayTimeout},
		{"transport", "/api/search?q=heat", errors.New("dial tcp: connection refused"), http.StatusBadGateway},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := New(Config{}, &fakeSearcher{err: tc.err})
			rec := get(t, srv.Handler(), tc.target)
			assert.Equal(t, tc.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}

func TestRateLimit(t *testing.T) {
	srv := New(Config{RateLimit: 1}, &fakeSearcher{})

	codes := make([]int, 0, 3)
	for range 3 {
		codes = append(codes, get(t, srv.Handler(), "/api/search?q=heat").Code)
	}
	assert.Equal(t, http.StatusOK, codes[0])
	assert.True(t, slices.Contains(codes, http.StatusTooManyRequests))

	// health checks are not limited
	assert.Equal(t, http.StatusOK, get(t, srv.Handler(), "/healthz").Code)
}

func TestRequestIDIsPropagated(t *testing.T) {
	srv := New(Config{}, &fakeSearcher{})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	srv.Handler().ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(requestIDHeader))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := New(Config{}, &fakeSearcher{candidates: candidates(1)})
	get(t, srv.Handler(), "/api/search?q=heat")

	rec := get(t, srv.Handler(), "/metrics")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "justsearch_http_requests_total"))
}

func TestRunShutsDownOnCancel(t *testing.T) {
	srv := New(Config{Addr: "127.0.0.1:0"}, &fakeSearcher{})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()
	assert.NoError(t, <-done)
}
