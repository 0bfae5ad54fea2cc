// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Offer Preferences - these keys gate which monetization types may become playback candidates.
const (
	OffersFlatRate = "offers.flat_rate"
	OffersRent     = "offers.rent"
	OffersBuy      = "offers.buy"
	OffersAds      = "offers.ads"
)

// Search Pipeline - these keys tune the provider request and the scoring of its results.
const (
	SearchMaxResults           = "search.max_results"
	SearchTimeoutSeconds       = "search.timeout_seconds"
	SearchClampDecay           = "search.clamp_decay"
	SearchSkillID              = "search.skill_id"
	SearchShowQuerySuggestions = "search.show_query_suggestions"
)

// Locale - these keys stand in for the host's locale and location context when running standalone.
const (
	LocaleLang    = "locale.lang"
	LocaleCountry = "locale.country"
)

// Provider - these keys locate the streaming availability service.
const (
	ProviderEndpoint = "provider.endpoint"
)

// HTTP Server - these keys configure the serve command.
const (
	ServerAddr      = "server.addr"
	ServerRateLimit = "server.rate_limit"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment.
const (
	CliColored = "cli.colored"
)
