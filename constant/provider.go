package constant

// JustWatch endpoints.
const (
	JustWatchGraphQL = "https://apis.justwatch.com/graphql"
	JustWatchImages  = "https://images.justwatch.com"
	JustWatchSite    = "https://www.justwatch.com"
)

// DefaultCountry is used whenever the caller's location does not carry a usable country code.
const DefaultCountry = "US"
