package config

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/justsearch/justsearch/filesystem"
	"github.com/justsearch/justsearch/key"
	"github.com/justsearch/justsearch/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should populate the offer and search defaults", func() {
			So(Setup(), ShouldBeNil)
			So(viper.GetBool(key.OffersFlatRate), ShouldBeTrue)
			So(viper.GetBool(key.OffersRent), ShouldBeTrue)
			So(viper.GetBool(key.OffersBuy), ShouldBeTrue)
			So(viper.GetBool(key.OffersAds), ShouldBeTrue)
			So(viper.GetInt(key.SearchMaxResults), ShouldEqual, 2)
			So(viper.GetBool(key.SearchClampDecay), ShouldBeFalse)
		})

		Convey("Should read values from justsearch.toml", func() {
			path := filepath.Join(where.Config(), "justsearch.toml")
			So(filesystem.API().WriteFile(path, []byte("[offers]\nrent = false\n"), 0o644), ShouldBeNil)
			defer func() { _ = filesystem.API().Remove(path) }()

			So(Setup(), ShouldBeNil)
			So(viper.GetBool(key.OffersRent), ShouldBeFalse)
			viper.Reset()
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("offers.flat_rate"), ShouldEqual, "offers_flat_rate")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.OffersFlatRate]

		Convey("Env is prefixed with the application name", func() {
			So(field.Env(), ShouldEqual, "JUSTSEARCH_OFFERS_FLAT_RATE")
		})

		Convey("MarshalJSON reports its type and default", func() {
			data, err := json.Marshal(&field)
			So(err, ShouldBeNil)

			var decoded map[string]any
			So(json.Unmarshal(data, &decoded), ShouldBeNil)
			So(decoded["key"], ShouldEqual, key.OffersFlatRate)
			So(decoded["type"], ShouldEqual, "bool")
			So(decoded["default"], ShouldEqual, true)
		})
	})
}
