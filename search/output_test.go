package search

import (
	"testing"

	"github.com/justsearch/justsearch/media"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCollect(t *testing.T) {
	Convey("Given a sequence of four candidates", t, func() {
		pulled := 0
		seq := func(yield func(*media.Candidate) bool) {
			for i := 0; i < 4; i++ {
				pulled++
				if !yield(&media.Candidate{ReleaseYear: 2000 + i}) {
					return
				}
			}
		}

		Convey("A limit stops pulling early", func() {
			got := Collect(seq, 2)
			So(got, ShouldHaveLength, 2)
			So(pulled, ShouldEqual, 2)
		})

		Convey("No limit takes everything", func() {
			So(Collect(seq, 0), ShouldHaveLength, 4)
		})
	})

	Convey("Given an empty sequence", t, func() {
		got := Collect(func(func(*media.Candidate) bool) {}, 3)
		So(got, ShouldNotBeNil)
		So(got, ShouldBeEmpty)
	})
}
