package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/justsearch/justsearch/color"
	"github.com/justsearch/justsearch/constant"
	"github.com/justsearch/justsearch/key"
	"github.com/justsearch/justsearch/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a single registered configuration entry.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty renders the field with its current value for `config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable bound to this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON includes both the current and the default value.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.OffersFlatRate, true, "Include subscription offers (e.g. Netflix)")
	register(key.OffersRent, true, "Include rental offers (e.g. Apple TV)")
	register(key.OffersBuy, true, "Include purchase offers (e.g. YouTube)")
	register(key.OffersAds, true, "Include ad-supported offers")
	register(key.SearchMaxResults, 2, "Number of titles requested from the provider")
	register(key.SearchTimeoutSeconds, 15, "Seconds to wait for the provider before giving up")
	register(key.SearchClampDecay, false, "Clamp the positional score decay to [0, 1].\nWithout it, titles past the 7th get a negative confidence")
	register(key.SearchSkillID, constant.App+".justwatch", "Skill identifier stamped on every playback candidate")
	register(key.SearchShowQuerySuggestions, true, "Suggest previous queries in shell completion")
	register(key.LocaleLang, "en-US", "Locale used when the caller does not provide one (language-REGION)")
	register(key.LocaleCountry, "", "Country code used when the caller does not provide a location.\nEmpty means "+constant.DefaultCountry)
	register(key.ProviderEndpoint, constant.JustWatchGraphQL, "GraphQL endpoint of the streaming availability provider")
	register(key.ServerAddr, ":8088", "Listen address of the serve command")
	register(key.ServerRateLimit, 10, "Search requests per second accepted by the serve command")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, plain, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
