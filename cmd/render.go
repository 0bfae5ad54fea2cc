package cmd

import (
	"fmt"
	"io"

	"github.com/justsearch/justsearch/color"
	"github.com/justsearch/justsearch/icon"
	"github.com/justsearch/justsearch/media"
	"github.com/justsearch/justsearch/search"
	"github.com/justsearch/justsearch/style"
	"github.com/justsearch/justsearch/util"
)

var (
	confidenceHigh = style.Fg(color.Green)
	confidenceMid  = style.Fg(color.Yellow)
	confidenceLow  = style.Fg(color.Red)
)

func confidenceStyle(c float64) func(string) string {
	switch {
	case c >= 0.7:
		return confidenceHigh
	case c >= 0.4:
		return confidenceMid
	default:
		return confidenceLow
	}
}

func mediaIcon(m media.MediaType) string {
	if m == media.Movie {
		return icon.Get(icon.Movie)
	}
	return icon.Get(icon.Series)
}

// renderCandidates prints one entry per candidate, each line cut to width cells.
func renderCandidates(w io.Writer, out search.Output, width int) {
	if len(out.Results) == 0 {
		_, _ = fmt.Fprintf(w, "%s No results for %s\n", icon.Get(icon.Fail), style.Fg(color.Purple)(out.Query))
		return
	}

	_, _ = fmt.Fprintf(w, "%s %s for %s\n\n",
		icon.Get(icon.Search),
		util.Quantify(len(out.Results), "result", "results"),
		style.Fg(color.Purple)(out.Query),
	)

	for i, c := range out.Results {
		header := fmt.Sprintf("%s %s %s %s",
			style.Faint(fmt.Sprintf("%2d.", i+1)),
			mediaIcon(c.MediaType),
			style.Bold(c.Title),
			style.Faint(fmt.Sprintf("(%d)", c.ReleaseYear)),
		)
		details := fmt.Sprintf("    %s %s",
			confidenceStyle(c.MatchConfidence)(fmt.Sprintf("%.2f", c.MatchConfidence)),
			style.Fg(color.Cyan)(c.URI),
		)

		_, _ = fmt.Fprintln(w, util.Truncate(header, width))
		_, _ = fmt.Fprintln(w, util.Truncate(details, width))
		if i < len(out.Results)-1 {
			_, _ = fmt.Fprintln(w)
		}
	}
}
