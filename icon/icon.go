// Package icon renders feedback symbols in the variant picked by the user.
package icon

import (
	"github.com/justsearch/justsearch/key"
	"github.com/spf13/viper"
)

const (
	emoji = "emoji"
	nerd  = "nerd"
	plain = "plain"
)

// AvailableVariants lists the supported icon styles.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Progress
	Search
	Movie
	Series
	Link
)

type iconDef struct {
	emoji string
	nerd  string
	plain string
}

var icons = map[Icon]*iconDef{
	Success:  {emoji: "✅", nerd: "", plain: "✓"},
	Fail:     {emoji: "❌", nerd: "", plain: "✗"},
	Progress: {emoji: "⏳", nerd: "", plain: "…"},
	Search:   {emoji: "🔎", nerd: "", plain: ">"},
	Movie:    {emoji: "🎬", nerd: "", plain: "M"},
	Series:   {emoji: "📺", nerd: "", plain: "S"},
	Link:     {emoji: "🔗", nerd: "", plain: "@"},
}

func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	default:
		return ""
	}
}

// Get returns the symbol for i in the configured variant.
func Get(i Icon) string {
	d, ok := icons[i]
	if !ok {
		return ""
	}
	return d.Get()
}
