package preference

import (
	"testing"

	"github.com/justsearch/justsearch/config"
	"github.com/justsearch/justsearch/filesystem"
	"github.com/justsearch/justsearch/justwatch"
	"github.com/justsearch/justsearch/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
}

func TestLoad(t *testing.T) {
	Convey("Given the default configuration", t, func() {
		Convey("Every toggle is on", func() {
			So(Load(), ShouldResemble, AllowAll())
		})

		Convey("A change is picked up on the next load", func() {
			viper.Set(key.OffersRent, false)
			defer viper.Set(key.OffersRent, true)

			g := Load()
			So(g.Rent, ShouldBeFalse)
			So(g.Buy, ShouldBeTrue)
		})
	})
}

func TestAllows(t *testing.T) {
	Convey("Given a gate with rent disabled", t, func() {
		g := AllowAll()
		g.Rent = false

		So(g.Allows(justwatch.Rent), ShouldBeFalse)
		So(g.Allows(justwatch.Buy), ShouldBeTrue)
		So(g.Allows(justwatch.FlatRate), ShouldBeTrue)
		So(g.Allows(justwatch.Ads), ShouldBeTrue)
	})

	Convey("Given a gate with everything disabled", t, func() {
		g := Gate{}

		Convey("Each toggled type is rejected", func() {
			for _, m := range []justwatch.MonetizationType{justwatch.FlatRate, justwatch.Rent, justwatch.Buy, justwatch.Ads} {
				So(g.Allows(m), ShouldBeFalse)
			}
		})

		Convey("Types without a toggle still pass", func() {
			So(g.Allows(justwatch.Free), ShouldBeTrue)
			So(g.Allows(justwatch.Cinema), ShouldBeTrue)
			So(g.Allows(""), ShouldBeTrue)
		})
	})
}
