package search

import (
	"time"

	"github.com/justsearch/justsearch/constant"
	"github.com/justsearch/justsearch/key"
	"github.com/justsearch/justsearch/preference"
	"github.com/spf13/viper"
)

// Settings is the configuration snapshot one search runs with.
type Settings struct {
	MaxResults int
	Timeout    time.Duration
	ClampDecay bool
	SkillID    string
	Gate       preference.Gate
}

// LoadSettings reads the current configuration.
func LoadSettings() Settings {
	return Settings{
		MaxResults: viper.GetInt(key.SearchMaxResults),
		Timeout:    time.Duration(viper.GetInt(key.SearchTimeoutSeconds)) * time.Second,
		ClampDecay: viper.GetBool(key.SearchClampDecay),
		SkillID:    viper.GetString(key.SearchSkillID),
		Gate:       preference.Load(),
	}
}

// DefaultSettings mirrors the registered configuration defaults.
func DefaultSettings() Settings {
	return Settings{
		MaxResults: 2,
		Timeout:    15 * time.Second,
		SkillID:    constant.App + ".justwatch",
		Gate:       preference.AllowAll(),
	}
}
