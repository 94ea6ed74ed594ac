// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Listing Site - these keys locate the scraped site and the regions of its pages.
const (
	SiteBaseURL         = "site.base_url"
	SiteEpisodeTemplate = "site.episode_template"
	SiteDetailTemplate  = "site.detail_template"
	SiteSearchTemplate  = "site.search_template"
	SiteRecentItem      = "site.selectors.recent"
	SiteSearchItem      = "site.selectors.search"
	SitePopularItem     = "site.selectors.popular"
	SiteSeasonItem      = "site.selectors.season"
	SitePlayerFrame     = "site.selectors.player"
)

// Metadata API - these keys govern the throttled Jikan client.
const (
	MetadataEnrich     = "metadata.enrich"
	MetadataBaseURL    = "metadata.base_url"
	MetadataDelay      = "metadata.delay_ms"
	MetadataBackoff    = "metadata.backoff_ms"
	MetadataMaxRetries = "metadata.max_retries"
)

// Network - these keys tune the shared HTTP transport.
const (
	NetworkTimeout        = "network.timeout_seconds"
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Caching - these keys control the slug/query keyed response cache.
const (
	CacheEnabled = "cache.enabled"
	CacheTTL     = "cache.ttl_minutes"
)

// History Tracking - these keys configure the persistence of watch progress.
const (
	HistorySaveOnWatch = "history.save_on_watch"
	HistoryUser        = "history.user"
)

// Search Interaction - these keys define the parameters for search discovery.
const (
	SearchShowQuerySuggestions = "search.show_query_suggestions"
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
	CliBrowser = "cli.browser"
)
