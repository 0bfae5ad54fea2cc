// Package justwatch is a client for the JustWatch GraphQL title search.
package justwatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/justsearch/justsearch/constant"
	"github.com/justsearch/justsearch/log"
	"github.com/justsearch/justsearch/metrics"
	"github.com/justsearch/justsearch/network"
)

const maxResponseBytes = 8 << 20

// Config configures a Client. Zero values fall back to the public endpoint
// and the shared network.Client.
type Config struct {
	Endpoint string
	Client   *http.Client
}

// Client searches titles. It is safe for concurrent use.
type Client struct {
	endpoint string
	http     *http.Client
}

func NewClient(cfg Config) *Client {
	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint == "" {
		endpoint = constant.JustWatchGraphQL
	}
	httpClient := cfg.Client
	if httpClient == nil {
		httpClient = network.Client
	}
	return &Client{
		endpoint: endpoint,
		http:     httpClient,
	}
}

// Search returns titles in the provider's relevance order. An empty result is not an error.
func (c *Client) Search(ctx context.Context, q Query) ([]*Title, error) {
	start := time.Now()
	titles, err := c.search(ctx, q)
	metrics.ProviderRequestDuration.Observe(time.Since(start).Seconds())

	switch {
	case err == nil:
		metrics.ProviderRequestsTotal.WithLabelValues(metrics.StatusOK).Inc()
	case isMalformed(err):
		metrics.ProviderRequestsTotal.WithLabelValues(metrics.StatusMalformed).Inc()
	default:
		metrics.ProviderRequestsTotal.WithLabelValues(metrics.StatusError).Inc()
	}
	return titles, err
}

func (c *Client) search(ctx context.Context, q Query) ([]*Title, error) {
	body, err := json.Marshal(newSearchRequest(q))
	if err != nil {
		return nil, fmt.Errorf("justwatch: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("justwatch: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", constant.UserAgent)

	log.Debugf("justwatch: searching %q country=%s language=%s count=%d", q.Title, q.Country, q.Language, q.Count)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("justwatch: send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("justwatch: read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPStatusError{StatusCode: resp.StatusCode, Body: truncate(string(data), 512)}
	}

	var parsed searchResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("justwatch: decode response: %w", err)
	}

	if len(parsed.Errors) > 0 {
		messages := make([]string, 0, len(parsed.Errors))
		for _, e := range parsed.Errors {
			messages = append(messages, e.Message)
		}
		return nil, &GraphQLError{Messages: messages}
	}

	if parsed.Data == nil {
		return nil, nil
	}

	edges := parsed.Data.PopularTitles.Edges
	titles := make([]*Title, 0, len(edges))
	for i, edge := range edges {
		t, err := toTitle(i, edge.Node)
		if err != nil {
			return nil, err
		}
		titles = append(titles, t)
	}

	log.Debugf("justwatch: %d titles for %q", len(titles), q.Title)
	return titles, nil
}

func isMalformed(err error) bool {
	var malformed *MalformedRecordError
	return errors.As(err, &malformed)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
