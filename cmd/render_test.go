package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/justsearch/justsearch/key"
	"github.com/justsearch/justsearch/media"
	"github.com/justsearch/justsearch/search"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestRenderCandidates(t *testing.T) {
	viper.Set(key.IconsVariant, "plain")

	Convey("Given search results", t, func() {
		out := search.Output{
			Query: "casa de papel",
			Results: []*media.Candidate{
				{Title: "Berlin [FLATRATE] Netflix", ReleaseYear: 2023, MatchConfidence: 0.5, URI: "http://www.netflix.com/title/81586657", MediaType: media.VideoEpisodes},
				{Title: "Money Heist [FLATRATE] Netflix", ReleaseYear: 2017, MatchConfidence: 0.283, URI: "http://www.netflix.com/title/80192098", MediaType: media.VideoEpisodes},
			},
		}

		Convey("Every candidate is listed with its link", func() {
			var buf bytes.Buffer
			renderCandidates(&buf, out, 0)
			text := buf.String()

			So(text, ShouldContainSubstring, "2 results")
			So(text, ShouldContainSubstring, "Berlin [FLATRATE] Netflix")
			So(text, ShouldContainSubstring, "http://www.netflix.com/title/80192098")
			So(text, ShouldContainSubstring, "0.28")
		})

		Convey("Lines are cut to the terminal width", func() {
			var buf bytes.Buffer
			renderCandidates(&buf, out, 20)
			for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n")[1:] {
				So(len([]rune(stripANSI(line))), ShouldBeLessThanOrEqualTo, 20)
			}
		})
	})

	Convey("Given no results", t, func() {
		var buf bytes.Buffer
		renderCandidates(&buf, search.Output{Query: "zzz"}, 0)
		So(buf.String(), ShouldContainSubstring, "No results")
	})
}

func stripANSI(s string) string {
	var b strings.Builder
	inEscape := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEscape = true
		case inEscape && (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'):
			inEscape = false
		case !inEscape:
			b.WriteRune(r)
		}
	}
	return b.String()
}
