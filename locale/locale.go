// Package locale resolves the language and country a search runs in.
package locale

import (
	"strings"

	"github.com/justsearch/justsearch/constant"
)

// Location is the loosely typed location context supplied by the host,
// shaped like {"city": {"state": {"country": {"code": "ES"}}}}.
type Location map[string]any

// WithCountry builds a Location carrying only a country code.
func WithCountry(code string) Location {
	if code == "" {
		return nil
	}
	return Location{
		"city": map[string]any{
			"state": map[string]any{
				"country": map[string]any{"code": code},
			},
		},
	}
}

// Country walks city.state.country.code and returns constant.DefaultCountry
// when any level is missing, has the wrong type or is empty.
func (l Location) Country() string {
	var node any = map[string]any(l)
	for _, k := range []string{"city", "state", "country", "code"} {
		m, ok := asMap(node)
		if !ok {
			return constant.DefaultCountry
		}
		node = m[k]
	}

	code, ok := node.(string)
	if !ok || strings.TrimSpace(code) == "" {
		return constant.DefaultCountry
	}
	return strings.ToUpper(strings.TrimSpace(code))
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, m != nil
	case Location:
		return m, m != nil
	default:
		return nil, false
	}
}

// Language returns the primary subtag of lang: "pt-BR" becomes "pt".
func Language(lang string) string {
	primary, _, _ := strings.Cut(lang, "-")
	return primary
}
