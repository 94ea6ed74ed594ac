package constant

// Upstream endpoints. Both are reverse-engineered conventions and may be overridden through configuration.
const (
	// SiteBaseURL is the root of the scraped anime listing site.
	SiteBaseURL = "https://gogoanime3.co"

	// JikanBaseURL is the root of the Jikan v4 REST API (unofficial MyAnimeList mirror).
	JikanBaseURL = "https://api.jikan.moe/v4"
)
