package scraper

import (
	"regexp"
	"strings"

	"github.com/anistream/anistream/markup"
	"github.com/anistream/anistream/source"
)

var cssURL = regexp.MustCompile(`url\(\s*['"]?([^'")]+)['"]?\s*\)`)

// ParseListing extracts the catalog cards matched by sel in document order.
// Cards without a title or a thumbnail are dropped.
func ParseListing(doc markup.Document, sel ListingSelectors) []*source.AnimeSummary {
	var animes []*source.AnimeSummary

	for _, item := range doc.Find(sel.Item) {
		title := titleOf(item, sel)
		thumbnail := thumbnailOf(item, sel)

		if title == "" || thumbnail == "" {
			continue
		}

		anime := &source.AnimeSummary{
			Title:        title,
			ThumbnailURL: thumbnail,
		}

		if sel.Link != "" {
			anime.DetailLink = markup.AttrOr(item, sel.Link, "href")
		}

		if sel.Label != "" {
			anime.LatestEpisode = markup.TextOf(item, sel.Label)
		}

		animes = append(animes, anime)
	}

	return animes
}

func titleOf(item markup.Node, sel ListingSelectors) string {
	if sel.TitleAttr != "" {
		if title := markup.AttrOr(item, sel.Title, sel.TitleAttr); title != "" {
			return title
		}
	}

	return markup.TextOf(item, sel.Title)
}

func thumbnailOf(item markup.Node, sel ListingSelectors) string {
	attr := sel.ThumbnailAttr
	if attr == "" {
		attr = "src"
	}

	value := markup.AttrOr(item, sel.Thumbnail, attr)
	if attr != "style" {
		return value
	}

	if m := cssURL.FindStringSubmatch(value); m != nil {
		return strings.TrimSpace(m[1])
	}

	return ""
}
