// Package preference decides which monetization types the user accepts.
package preference

import (
	"github.com/justsearch/justsearch/justwatch"
	"github.com/justsearch/justsearch/key"
	"github.com/spf13/viper"
)

// Gate is a snapshot of the offers.* toggles.
type Gate struct {
	FlatRate bool
	Rent     bool
	Buy      bool
	Ads      bool
}

// Load reads the toggles from configuration. It is called once per search so
// edits apply without a restart.
func Load() Gate {
	return Gate{
		FlatRate: viper.GetBool(key.OffersFlatRate),
		Rent:     viper.GetBool(key.OffersRent),
		Buy:      viper.GetBool(key.OffersBuy),
		Ads:      viper.GetBool(key.OffersAds),
	}
}

// AllowAll accepts every offer.
func AllowAll() Gate {
	return Gate{FlatRate: true, Rent: true, Buy: true, Ads: true}
}

// Allows reports whether an offer of type m may be emitted.
// Types without a toggle, such as FREE or CINEMA, always pass.
func (g Gate) Allows(m justwatch.MonetizationType) bool {
	switch m {
	case justwatch.FlatRate:
		return g.FlatRate
	case justwatch.Rent:
		return g.Rent
	case justwatch.Buy:
		return g.Buy
	case justwatch.Ads:
		return g.Ads
	default:
		return true
	}
}
