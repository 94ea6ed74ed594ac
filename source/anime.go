// Package source defines the records produced by scraping the listing site and the metadata API.
package source

import (
	"github.com/anistream/anistream/slug"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// AnimeSummary is one card of a catalog page.
type AnimeSummary struct {
	Title         string `json:"title"`
	ThumbnailURL  string `json:"thumbnailUrl"`
	LatestEpisode string `json:"latestEpisode"`
	// DetailLink is the card's link as found in the page (relative or absolute).
	DetailLink string `json:"detailLink"`
}

// Slug is derived from the title on every call so that lookups stay consistent with routing.
func (a *AnimeSummary) Slug() string {
	return slug.Make(a.Title)
}

func (a *AnimeSummary) String() string {
	return a.Title
}

// AnimeDetail is the parsed detail page of a single anime.
type AnimeDetail struct {
	Title         string       `json:"title"`
	ThumbnailURL  string       `json:"thumbnailUrl"`
	Synopsis      string       `json:"synopsis"`
	Genres        []string     `json:"genres"`
	Status        string       `json:"status"`
	TotalEpisodes int          `json:"totalEpisodes"`
	Episodes      []EpisodeRef `json:"episodes"`

	// Metadata is present once the detail has been enriched from the metadata API.
	Metadata mo.Option[*Metadata] `json:"metadata"`
}

func (a *AnimeDetail) String() string {
	return a.Title
}

// Slug of the anime title.
func (a *AnimeDetail) Slug() string {
	return slug.Make(a.Title)
}

// Episode returns the episode with the given number.
func (a *AnimeDetail) Episode(number int) (EpisodeRef, bool) {
	return lo.Find(a.Episodes, func(e EpisodeRef) bool {
		return e.Number == number
	})
}

// Enrich overlays metadata on top of the scraped fields.
// Synopsis, genres and status are replaced only by non-empty metadata values,
// so scraped data is never lost.
func (a *AnimeDetail) Enrich(meta *Metadata) {
	if meta == nil {
		return
	}

	a.Metadata = mo.Some(meta)

	if meta.Synopsis != "" {
		a.Synopsis = meta.Synopsis
	}

	if len(meta.Genres) > 0 {
		a.Genres = lo.Uniq(meta.Genres)
	}

	if meta.Status != "" {
		a.Status = meta.Status
	}

	if a.ThumbnailURL == "" && meta.Image != "" {
		a.ThumbnailURL = meta.Image
	}
}
