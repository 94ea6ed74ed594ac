package source

import (
	"context"

	"github.com/samber/mo"
)

// Catalog is what the command line needs from a scraped site.
type Catalog interface {
	// RecentReleases returns the front-page grid of the given page, most recent first.
	RecentReleases(ctx context.Context, page int) ([]*AnimeSummary, error)

	// Search returns the search results for the query.
	Search(ctx context.Context, query string) ([]*AnimeSummary, error)

	// Popular returns the ongoing popular list, ranked.
	Popular(ctx context.Context) ([]*AnimeSummary, error)

	// NewSeason returns the new season list.
	NewSeason(ctx context.Context) ([]*AnimeSummary, error)

	// Details fetches and parses the detail page at link.
	Details(ctx context.Context, link string) (*AnimeDetail, error)

	// DetailsBySlug fetches the detail page of the anime with the given slug.
	DetailsBySlug(ctx context.Context, animeSlug string) (*AnimeDetail, error)

	// ResolvePlayerURL returns the embedded player of an episode page, if any.
	ResolvePlayerURL(ctx context.Context, episodeLink string) (mo.Option[string], error)
}
