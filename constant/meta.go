// Package constant defines immutable application-level identifiers.
package constant

const (
	// App is the canonical application identifier used for filesystem paths, env prefixes and CLI branding.
	App = "justsearch"

	// Version is the current application semantic version string.
	Version = "0.3.0"

	// UserAgent is sent with every request to the streaming availability provider.
	UserAgent = App + "/" + Version + " (+https://github.com/justsearch/justsearch)"
)

// Build metadata, overridden with -ldflags at release time.
var (
	BuiltAt  = "unknown"
	BuiltBy  = "unknown"
	Revision = "unknown"
)
