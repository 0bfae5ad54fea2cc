// Package media defines the playback candidate record returned to media orchestrators.
package media

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MediaType is the category a candidate belongs to.
// Values match the orchestrator's numbering; unknown values mean "no category".
type MediaType int

const (
	Generic       MediaType = 0
	Movie         MediaType = 10
	VideoEpisodes MediaType = 19
)

var mediaTypeNames = map[MediaType]string{
	Generic:       "GENERIC",
	Movie:         "MOVIE",
	VideoEpisodes: "VIDEO_EPISODES",
}

func (m MediaType) String() string {
	if name, ok := mediaTypeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("MediaType(%d)", int(m))
}

// ParseMediaType accepts user input such as "movie", "series" or "episodes".
// Anything unrecognized is Generic.
func ParseMediaType(s string) MediaType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "movie", "movies", "film":
		return Movie
	case "series", "show", "shows", "episodes", "video_episodes", "tv":
		return VideoEpisodes
	default:
		return Generic
	}
}

func (m MediaType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *MediaType) UnmarshalText(text []byte) error {
	*m = ParseMediaType(string(text))
	return nil
}

// PlaybackType tells the orchestrator how to play a candidate.
type PlaybackType int

const (
	Undefined PlaybackType = 0
	Webview   PlaybackType = 5
)

func (p PlaybackType) String() string {
	switch p {
	case Webview:
		return "WEBVIEW"
	case Undefined:
		return "UNDEFINED"
	default:
		return fmt.Sprintf("PlaybackType(%d)", int(p))
	}
}

func (p PlaybackType) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *PlaybackType) UnmarshalText(text []byte) error {
	switch strings.ToUpper(string(text)) {
	case "WEBVIEW":
		*p = Webview
	default:
		*p = Undefined
	}
	return nil
}

// Candidate is one monetization offer of one title. It is never mutated once emitted.
type Candidate struct {
	Title           string       `json:"title" yaml:"title" jsonschema:"description=Title with monetization tag and provider name"`
	ReleaseYear     int          `json:"release_year" yaml:"release_year"`
	Duration        int          `json:"duration" yaml:"duration" jsonschema:"description=Runtime in seconds"`
	Image           string       `json:"image" yaml:"image"`
	MatchConfidence float64      `json:"match_confidence" yaml:"match_confidence"`
	SkillIcon       string       `json:"skill_icon" yaml:"skill_icon"`
	URI             string       `json:"uri" yaml:"uri"`
	SkillID         string       `json:"skill_id" yaml:"skill_id"`
	MediaType       MediaType    `json:"media_type" yaml:"media_type" jsonschema:"type=string,enum=MOVIE,enum=VIDEO_EPISODES"`
	Playback        PlaybackType `json:"playback" yaml:"playback" jsonschema:"type=string,enum=WEBVIEW"`
}

// String renders a compact one-line summary.
func (c *Candidate) String() string {
	return fmt.Sprintf("%s (%d) %.3f %s", c.Title, c.ReleaseYear, c.MatchConfidence, c.URI)
}

// JSON encodes c; used by tests and the CLI to compare outputs byte for byte.
func (c *Candidate) JSON() ([]byte, error) {
	return json.Marshal(c)
}
