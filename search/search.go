// Package search turns a free-text query into scored playback candidates.
package search

import (
	"context"
	"errors"
	"iter"
	"strings"

	"github.com/justsearch/justsearch/justwatch"
	"github.com/justsearch/justsearch/locale"
	"github.com/justsearch/justsearch/log"
	"github.com/justsearch/justsearch/media"
)

// ErrEmptyPhrase is returned for a blank query.
var ErrEmptyPhrase = errors.New("search phrase is empty")

// Provider looks titles up. *justwatch.Client implements it.
type Provider interface {
	Search(ctx context.Context, q justwatch.Query) ([]*justwatch.Title, error)
}

// Request is one search invocation.
type Request struct {
	Phrase    string
	MediaType media.MediaType
	// Lang is a language-REGION locale such as "en-US".
	Lang     string
	Location locale.Location
}

// Filter selects the categories a search accepts.
type Filter struct {
	Movies bool
	Series bool
}

// FilterFor maps a media type to a category filter. Unknown types accept both.
func FilterFor(m media.MediaType) Filter {
	switch m {
	case media.Movie:
		return Filter{Movies: true}
	case media.VideoEpisodes:
		return Filter{Series: true}
	default:
		return Filter{Movies: true, Series: true}
	}
}

func (f Filter) accepts(o justwatch.ObjectType) bool {
	switch o {
	case justwatch.ObjectMovie:
		return f.Movies
	case justwatch.ObjectShow:
		return f.Series
	default:
		return true
	}
}

// Searcher dispatches queries to a Provider. It is safe for concurrent use
// when the Provider is.
type Searcher struct {
	provider Provider
	settings func() Settings
}

type Option func(*Searcher)

// WithSettings pins the settings instead of reading configuration per search.
func WithSettings(s Settings) Option {
	return func(searcher *Searcher) {
		searcher.settings = func() Settings { return s }
	}
}

func NewSearcher(provider Provider, opts ...Option) *Searcher {
	s := &Searcher{
		provider: provider,
		settings: LoadSettings,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search calls the provider once, under the configured timeout, and returns a
// lazy sequence over the normalized candidates. Provider errors are returned
// unchanged.
func (s *Searcher) Search(ctx context.Context, req Request) (iter.Seq[*media.Candidate], error) {
	phrase := strings.TrimSpace(req.Phrase)
	if phrase == "" {
		return nil, ErrEmptyPhrase
	}

	settings := s.settings()
	q := justwatch.Query{
		Title:    phrase,
		Country:  req.Location.Country(),
		Language: locale.Language(req.Lang),
		BestOnly: true,
		Count:    settings.MaxResults,
	}

	if settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, settings.Timeout)
		defer cancel()
	}

	log.Debugf("search: %q type=%s country=%s language=%s", q.Title, req.MediaType, q.Country, q.Language)

	titles, err := s.provider.Search(ctx, q)
	if err != nil {
		log.Errorf("search: provider failed for %q: %s", q.Title, err)
		return nil, err
	}

	log.Debugf("search: provider returned %d titles for %q", len(titles), q.Title)
	return Normalize(titles, phrase, FilterFor(req.MediaType), settings), nil
}
