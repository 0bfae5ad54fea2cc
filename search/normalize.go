package search

import (
	"fmt"
	"iter"

	"github.com/justsearch/justsearch/justwatch"
	"github.com/justsearch/justsearch/media"
	"github.com/justsearch/justsearch/metrics"
	"github.com/justsearch/justsearch/score"
)

// Normalize flattens titles into playback candidates, one per accepted offer.
//
// Titles rejected by filter are skipped and do not consume a decay step. Within
// a title an offer is dropped when it has no URL, when the gate rejects its
// monetization type or when its URL was already emitted for that title.
// The sequence is single pass and does no work past the point the caller stops.
func Normalize(titles []*justwatch.Title, phrase string, filter Filter, settings Settings) iter.Seq[*media.Candidate] {
	return func(yield func(*media.Candidate) bool) {
		rank := 0
		for _, t := range titles {
			if !filter.accepts(t.ObjectType) {
				metrics.OffersSkippedTotal.WithLabelValues(metrics.ReasonCategory).Add(float64(len(t.Offers)))
				continue
			}

			var (
				seen       = make(map[string]struct{}, len(t.Offers))
				confidence float64
				scored     bool
			)
			for _, o := range t.Offers {
				if o.URL == "" {
					metrics.OffersSkippedTotal.WithLabelValues(metrics.ReasonNoURL).Inc()
					continue
				}
				if !settings.Gate.Allows(o.MonetizationType) {
					metrics.OffersSkippedTotal.WithLabelValues(metrics.ReasonGate).Inc()
					continue
				}
				if _, dup := seen[o.URL]; dup {
					metrics.OffersSkippedTotal.WithLabelValues(metrics.ReasonDuplicate).Inc()
					continue
				}
				seen[o.URL] = struct{}{}

				if !scored {
					confidence = score.Confidence(t.Title, phrase, rank, settings.ClampDecay)
					scored = true
				}

				metrics.CandidatesEmittedTotal.WithLabelValues(string(o.MonetizationType)).Inc()
				if !yield(candidate(t, o, confidence, settings.SkillID)) {
					return
				}
			}
			rank++
		}
	}
}

func candidate(t *justwatch.Title, o *justwatch.Offer, confidence float64, skillID string) *media.Candidate {
	mediaType := media.VideoEpisodes
	if t.ObjectType == justwatch.ObjectMovie {
		mediaType = media.Movie
	}
	return &media.Candidate{
		Title:           fmt.Sprintf("%s [%s] %s", t.Title, o.MonetizationType, o.Name),
		ReleaseYear:     t.ReleaseYear,
		Duration:        t.RuntimeMinutes * 60,
		Image:           t.Poster,
		MatchConfidence: confidence,
		SkillIcon:       o.Icon,
		URI:             o.URL,
		SkillID:         skillID,
		MediaType:       mediaType,
		Playback:        media.Webview,
	}
}
