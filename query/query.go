// Package query keeps the CLI's search history and suggests past phrases for completion.
package query

import (
	"strings"
	"sync"

	"github.com/justsearch/justsearch/filesystem"
	"github.com/justsearch/justsearch/key"
	"github.com/justsearch/justsearch/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

// History is a ranked set of phrases persisted as JSON.
type History struct {
	mu          sync.Mutex
	cacher      *gache.Cache[map[string]*queryRecord]
	suggestions map[string][]*queryRecord
}

// Open returns the history stored at path.
func Open(path string) *History {
	return &History{
		cacher: gache.New[map[string]*queryRecord](&gache.Options{
			Path:       path,
			FileSystem: &filesystem.GacheFs{},
		}),
		suggestions: make(map[string][]*queryRecord),
	}
}

var (
	defaultHistory     *History
	defaultHistoryOnce sync.Once
)

// Default is the history in where.Queries().
func Default() *History {
	defaultHistoryOnce.Do(func() {
		defaultHistory = Open(where.Queries())
	})
	return defaultHistory
}

// Remember records q, adding weight to its rank when it is already known.
func (h *History) Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	cached, expired, err := h.cacher.Get()
	if expired || err != nil || cached == nil {
		cached = make(map[string]*queryRecord)
	}

	if record, ok := cached[q]; ok {
		record.Rank += weight
	} else {
		cached[q] = &queryRecord{Rank: weight, Query: q}
	}

	clear(h.suggestions)
	return h.cacher.Set(cached)
}

// Suggest returns the best ranked phrase matching q.
func (h *History) Suggest(q string) mo.Option[string] {
	suggestions := h.SuggestMany(q)
	if len(suggestions) == 0 {
		return mo.None[string]()
	}
	return mo.Some(suggestions[0])
}

// SuggestMany returns remembered phrases fuzzily matching q, highest rank first.
// It returns nothing when search.show_query_suggestions is off.
func (h *History) SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return []string{}
	}

	q = sanitize(q)

	h.mu.Lock()
	defer h.mu.Unlock()

	records, ok := h.suggestions[q]
	if !ok {
		cached, expired, err := h.cacher.Get()
		if err != nil || expired || cached == nil {
			return []string{}
		}

		for _, record := range cached {
			if fuzzy.Match(q, record.Query) {
				records = append(records, record)
			}
		}

		slices.SortFunc(records, func(a, b *queryRecord) int {
			if a.Rank != b.Rank {
				return b.Rank - a.Rank
			}
			return strings.Compare(a.Query, b.Query)
		})

		h.suggestions[q] = records
	}

	return lo.Map(records, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

func Remember(q string, weight int) error {
	return Default().Remember(q, weight)
}

func SuggestMany(q string) []string {
	return Default().SuggestMany(q)
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
