// Package scraper turns pages of the anime listing site into structured records.
package scraper

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/anistream/anistream/constant"
	"github.com/anistream/anistream/key"
	"github.com/spf13/viper"
)

// ListingSelectors locates the cards of one catalog region.
// Title, Thumbnail, Link and Label are evaluated relative to each Item.
type ListingSelectors struct {
	Item string

	Title     string
	TitleAttr string // preferred over the rendered text when set and non-empty

	Thumbnail     string
	ThumbnailAttr string // "style" extracts the url() of a background image

	Link  string
	Label string
}

// DetailSelectors locates the fields of a detail page.
type DetailSelectors struct {
	Title     string
	Thumbnail string
	Synopsis  string
	// InfoRow matches the repeated "label: value" rows.
	InfoRow string
	// Pagination matches the anchors of the episode pagination control.
	Pagination     string
	PaginationAttr string
	// EpisodeLinks matches a per-episode link list, when the page carries one.
	EpisodeLinks string
}

// Site describes where the listing site keeps its pages and how they are laid out.
type Site struct {
	BaseURL string

	// URL templates. {base}, {page}, {query}, {slug} and {n} are substituted.
	RecentTemplate  string
	SearchTemplate  string
	DetailTemplate  string
	EpisodeTemplate string

	Recent  ListingSelectors
	Search  ListingSelectors
	Popular ListingSelectors
	Season  ListingSelectors

	Detail      DetailSelectors
	PlayerFrame string
}

// DefaultSite returns the layout of a gogoanime style site rooted at base.
func DefaultSite(base string) Site {
	grid := ListingSelectors{
		Item:          ".last_episodes .items li",
		Title:         ".name a",
		TitleAttr:     "title",
		Thumbnail:     ".img a img",
		ThumbnailAttr: "src",
		Link:          ".img a",
		Label:         ".episode",
	}

	search := grid
	search.Label = ".released"

	return Site{
		BaseURL:         strings.TrimSuffix(base, "/"),
		RecentTemplate:  "{base}/?page={page}",
		SearchTemplate:  "{base}/search.html?keyword={query}",
		DetailTemplate:  "{base}/category/{slug}",
		EpisodeTemplate: "{base}/{slug}-episode-{n}",
		Recent:          grid,
		Search:          search,
		Popular: ListingSelectors{
			Item:          "#load_popular_ongoing .added_series_body ul li",
			Title:         "a[title]",
			TitleAttr:     "title",
			Thumbnail:     ".thumbnail-popular",
			ThumbnailAttr: "style",
			Link:          "a[title]",
			Label:         "p:last-of-type a",
		},
		Season: ListingSelectors{
			Item:          ".added_series_body.final ul li",
			Title:         "a[title]",
			TitleAttr:     "title",
			Thumbnail:     ".thumbnail-recent",
			ThumbnailAttr: "style",
			Link:          "a[title]",
		},
		Detail: DetailSelectors{
			Title:          ".anime_info_body_bg h1",
			Thumbnail:      ".anime_info_body_bg img",
			Synopsis:       ".description",
			InfoRow:        ".anime_info_body_bg .type",
			Pagination:     "#episode_page a",
			PaginationAttr: "ep_end",
			EpisodeLinks:   "#episode_related li a",
		},
		PlayerFrame: ".anime_video_body iframe",
	}
}

// SiteFromConfig returns the default layout with the configured overrides applied.
func SiteFromConfig() Site {
	site := DefaultSite(viper.GetString(key.SiteBaseURL))
	if site.BaseURL == "" {
		site.BaseURL = constant.SiteBaseURL
	}

	override := func(target *string, k string) {
		if v := strings.TrimSpace(viper.GetString(k)); v != "" {
			*target = v
		}
	}

	override(&site.EpisodeTemplate, key.SiteEpisodeTemplate)
	override(&site.DetailTemplate, key.SiteDetailTemplate)
	override(&site.SearchTemplate, key.SiteSearchTemplate)
	override(&site.Recent.Item, key.SiteRecentItem)
	override(&site.Search.Item, key.SiteSearchItem)
	override(&site.Popular.Item, key.SitePopularItem)
	override(&site.Season.Item, key.SiteSeasonItem)
	override(&site.PlayerFrame, key.SitePlayerFrame)

	return site
}

func (s Site) expand(template string, values map[string]string) string {
	pairs := []string{"{base}", s.BaseURL}
	for k, v := range values {
		pairs = append(pairs, "{"+k+"}", v)
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

// RecentURL is the address of the n-th page of recent releases.
func (s Site) RecentURL(page int) string {
	return s.expand(s.RecentTemplate, map[string]string{"page": strconv.Itoa(max(page, 1))})
}

// SearchURL is the address of the search results for query.
func (s Site) SearchURL(query string) string {
	return s.expand(s.SearchTemplate, map[string]string{"query": url.QueryEscape(query)})
}

// DetailURL is the address of the detail page of the anime with the given slug.
func (s Site) DetailURL(animeSlug string) string {
	return s.expand(s.DetailTemplate, map[string]string{"slug": animeSlug})
}

// Resolve makes a link found in a page absolute.
func (s Site) Resolve(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}

	if strings.HasPrefix(link, "//") {
		return "https:" + link
	}

	ref, err := url.Parse(link)
	if err != nil {
		return link
	}

	if ref.IsAbs() {
		return ref.String()
	}

	base, err := url.Parse(s.BaseURL + "/")
	if err != nil {
		return link
	}

	return base.ResolveReference(ref).String()
}
