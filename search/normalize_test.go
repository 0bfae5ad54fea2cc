package search

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/justsearch/justsearch/justwatch"
	"github.com/justsearch/justsearch/media"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func offer(url string, m justwatch.MonetizationType, name string) *justwatch.Offer {
	return &justwatch.Offer{URL: url, Name: name, MonetizationType: m}
}

func title(kind justwatch.ObjectType, name string, offers ...*justwatch.Offer) *justwatch.Title {
	return &justwatch.Title{ObjectType: kind, Title: name, ReleaseYear: 2000, RuntimeMinutes: 100, Offers: offers}
}

func encode(candidates []*media.Candidate) []string {
	return lo.Map(candidates, func(c *media.Candidate, _ int) string {
		return string(lo.Must(json.Marshal(c)))
	})
}

func TestNormalize(t *testing.T) {
	all := Filter{Movies: true, Series: true}

	Convey("Given a title whose offers share a URL", t, func() {
		titles := []*justwatch.Title{
			title(justwatch.ObjectMovie, "Heat",
				offer("https://tv.apple.com/heat", justwatch.Rent, "Apple TV"),
				offer("https://tv.apple.com/heat", justwatch.Buy, "Apple TV"),
			),
		}

		Convey("Only the first offer is emitted", func() {
			results := slices.Collect(Normalize(titles, "heat", all, DefaultSettings()))
			So(results, ShouldHaveLength, 1)
			So(results[0].Title, ShouldEqual, "Heat [RENT] Apple TV")
		})
	})

	Convey("Given the same URL under two titles", t, func() {
		titles := []*justwatch.Title{
			title(justwatch.ObjectMovie, "Heat", offer("https://example.com/a", justwatch.Buy, "Store")),
			title(justwatch.ObjectMovie, "Heat 2", offer("https://example.com/a", justwatch.Buy, "Store")),
		}

		Convey("Deduplication is per title", func() {
			So(slices.Collect(Normalize(titles, "heat", all, DefaultSettings())), ShouldHaveLength, 2)
		})
	})

	Convey("Given a title with a rent and a buy offer", t, func() {
		titles := []*justwatch.Title{
			title(justwatch.ObjectMovie, "Heat",
				offer("https://tv.apple.com/heat/rent", justwatch.Rent, "Apple TV"),
				offer("https://tv.apple.com/heat/buy", justwatch.Buy, "Apple TV"),
			),
		}

		Convey("Disabling rent leaves only the buy candidate", func() {
			settings := DefaultSettings()
			settings.Gate.Rent = false

			results := slices.Collect(Normalize(titles, "heat", all, settings))
			So(results, ShouldHaveLength, 1)
			So(results[0].Title, ShouldEqual, "Heat [BUY] Apple TV")
			So(results[0].URI, ShouldEqual, "https://tv.apple.com/heat/buy")
		})
	})

	Convey("Given offers of every monetization type across several titles", t, func() {
		mixed := func(prefix string) []*justwatch.Offer {
			return []*justwatch.Offer{
				offer(prefix+"/flat", justwatch.FlatRate, "Netflix"),
				offer(prefix+"/rent", justwatch.Rent, "Apple TV"),
				offer(prefix+"/buy", justwatch.Buy, "Amazon"),
				offer(prefix+"/ads", justwatch.Ads, "Tubi"),
				offer(prefix+"/free", justwatch.Free, "Kanopy"),
			}
		}
		titles := []*justwatch.Title{
			title(justwatch.ObjectMovie, "Heat", mixed("https://a")...),
			title(justwatch.ObjectShow, "Heat Wave", mixed("https://b")...),
		}
		full := slices.Collect(Normalize(titles, "heat", all, DefaultSettings()))
		So(full, ShouldHaveLength, 10)

		toggles := []struct {
			name    string
			kind    justwatch.MonetizationType
			disable func(*Settings)
		}{
			{"flat rate", justwatch.FlatRate, func(s *Settings) { s.Gate.FlatRate = false }},
			{"rent", justwatch.Rent, func(s *Settings) { s.Gate.Rent = false }},
			{"buy", justwatch.Buy, func(s *Settings) { s.Gate.Buy = false }},
			{"ads", justwatch.Ads, func(s *Settings) { s.Gate.Ads = false }},
		}

		for _, toggle := range toggles {
			Convey("Disabling "+toggle.name+" removes exactly those offers", func() {
				settings := DefaultSettings()
				toggle.disable(&settings)
				filtered := slices.Collect(Normalize(titles, "heat", all, settings))

				expected := lo.Filter(full, func(c *media.Candidate, _ int) bool {
					return !lo.Contains([]string{"https://a/" + suffix(toggle.kind), "https://b/" + suffix(toggle.kind)}, c.URI)
				})
				So(filtered, ShouldHaveLength, 8)
				So(encode(filtered), ShouldResemble, encode(expected))
			})
		}
	})

	Convey("Given an offer without a URL", t, func() {
		titles := []*justwatch.Title{
			title(justwatch.ObjectMovie, "Heat",
				offer("", justwatch.FlatRate, "Netflix"),
				offer("https://www.netflix.com/title/1", justwatch.FlatRate, "Netflix"),
			),
		}
		results := slices.Collect(Normalize(titles, "heat", all, DefaultSettings()))
		So(results, ShouldHaveLength, 1)
		So(results[0].URI, ShouldEqual, "https://www.netflix.com/title/1")
	})

	Convey("Given movies and shows", t, func() {
		titles := []*justwatch.Title{
			title(justwatch.ObjectShow, "Fargo", offer("https://s/1", justwatch.FlatRate, "Hulu")),
			title(justwatch.ObjectMovie, "Fargo", offer("https://m/1", justwatch.Buy, "Amazon")),
			title(justwatch.ObjectShow, "Fargo", offer("https://s/2", justwatch.FlatRate, "FX")),
		}

		Convey("A movies-only filter emits no shows", func() {
			results := slices.Collect(Normalize(titles, "fargo", Filter{Movies: true}, DefaultSettings()))
			So(results, ShouldHaveLength, 1)
			So(results[0].MediaType, ShouldEqual, media.Movie)
		})

		Convey("A series-only filter emits no movies", func() {
			results := slices.Collect(Normalize(titles, "fargo", Filter{Series: true}, DefaultSettings()))
			So(results, ShouldHaveLength, 2)
			for _, r := range results {
				So(r.MediaType, ShouldEqual, media.VideoEpisodes)
			}
		})

		Convey("Skipped titles do not consume a decay step", func() {
			results := slices.Collect(Normalize(titles, "fargo", Filter{Series: true}, DefaultSettings()))
			So(results[0].MatchConfidence, ShouldAlmostEqual, 1.0, 1e-9)
			So(results[1].MatchConfidence, ShouldAlmostEqual, 0.85, 1e-9)
		})
	})

	Convey("Given many titles of equal similarity", t, func() {
		var titles []*justwatch.Title
		for i := range 10 {
			titles = append(titles, title(justwatch.ObjectMovie, "Heat", offer("https://x/"+string(rune('a'+i)), justwatch.Buy, "Store")))
		}
		results := slices.Collect(Normalize(titles, "heat", all, DefaultSettings()))
		So(results, ShouldHaveLength, 10)

		Convey("Confidence never increases", func() {
			for i := 1; i < len(results); i++ {
				So(results[i-1].MatchConfidence, ShouldBeGreaterThanOrEqualTo, results[i].MatchConfidence)
			}
		})

		Convey("Past rank 6 the confidence is negative unless clamped", func() {
			So(results[9].MatchConfidence, ShouldBeLessThan, 0)

			settings := DefaultSettings()
			settings.ClampDecay = true
			clamped := slices.Collect(Normalize(titles, "heat", all, settings))
			So(clamped[9].MatchConfidence, ShouldEqual, 0)
		})
	})

	Convey("Given a title with a missing runtime and poster", t, func() {
		titles := []*justwatch.Title{{
			ObjectType: justwatch.ObjectMovie,
			Title:      "Heat",
			Offers:     []*justwatch.Offer{offer("https://x/1", justwatch.Buy, "Store")},
		}}
		results := slices.Collect(Normalize(titles, "heat", all, DefaultSettings()))
		So(results[0].Duration, ShouldEqual, 0)
		So(results[0].Image, ShouldBeEmpty)
	})

	Convey("Given the same input twice", t, func() {
		titles := casaDePapel()
		first := encode(slices.Collect(Normalize(titles, "casa de papel", all, DefaultSettings())))
		second := encode(slices.Collect(Normalize(titles, "casa de papel", all, DefaultSettings())))
		So(first, ShouldResemble, second)
	})

	Convey("Given a consumer that stops early", t, func() {
		titles := []*justwatch.Title{
			title(justwatch.ObjectMovie, "Heat",
				offer("https://x/1", justwatch.Buy, "Store"),
				offer("https://x/2", justwatch.Rent, "Store"),
			),
			nil,
		}

		Convey("Later titles are never touched", func() {
			var got []*media.Candidate
			So(func() {
				for c := range Normalize(titles, "heat", all, DefaultSettings()) {
					got = append(got, c)
					break
				}
			}, ShouldNotPanic)
			So(got, ShouldHaveLength, 1)
		})
	})

	Convey("Given no titles", t, func() {
		So(slices.Collect(Normalize(nil, "heat", all, DefaultSettings())), ShouldBeEmpty)
	})
}

func suffix(m justwatch.MonetizationType) string {
	switch m {
	case justwatch.FlatRate:
		return "flat"
	case justwatch.Rent:
		return "rent"
	case justwatch.Buy:
		return "buy"
	default:
		return "ads"
	}
}
