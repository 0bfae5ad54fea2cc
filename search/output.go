package search

import (
	"iter"

	"github.com/justsearch/justsearch/media"
)

// Output is the document returned by the CLI and the HTTP API.
type Output struct {
	Query   string             `json:"query" yaml:"query"`
	Results []*media.Candidate `json:"results" yaml:"results"`
}

// Collect pulls at most limit candidates from seq; a non-positive limit takes all.
// The result is never nil.
func Collect(seq iter.Seq[*media.Candidate], limit int) []*media.Candidate {
	results := make([]*media.Candidate, 0)
	for c := range seq {
		results = append(results, c)
		if limit > 0 && len(results) == limit {
			break
		}
	}
	return results
}
