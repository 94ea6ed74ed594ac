package scraper

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/anistream/anistream/markup"
	"github.com/anistream/anistream/slug"
	"github.com/anistream/anistream/source"
	"github.com/samber/lo"
)

// ErrDetailNotFound is matched by every DetailNotFoundError.
var ErrDetailNotFound = errors.New("anime not found")

// DetailNotFoundError reports a detail page lacking required fields.
// Either the entry does not exist or the page layout changed.
type DetailNotFoundError struct {
	URL     string
	Missing []string
}

func (e *DetailNotFoundError) Error() string {
	msg := fmt.Sprintf("%s: missing %s", ErrDetailNotFound, strings.Join(e.Missing, ", "))
	if e.URL != "" {
		msg += " at " + e.URL
	}
	return msg
}

func (e *DetailNotFoundError) Is(target error) bool {
	return target == ErrDetailNotFound
}

var episodeNumberPattern = regexp.MustCompile(`-episode-(\d+)/?$`)

// ParseDetail extracts the detail page of a single anime.
//
// The total episode count is the highest bound shown by the pagination control.
// Episodes are numbered 1..total. Each takes its link from the page's episode
// list when present and is otherwise built from the site's episode template.
func ParseDetail(doc markup.Document, site Site) (*source.AnimeDetail, error) {
	sel := site.Detail

	detail := &source.AnimeDetail{
		Title:        markup.TextOf(doc, sel.Title),
		ThumbnailURL: markup.AttrOr(doc, sel.Thumbnail, "src"),
		Synopsis:     markup.TextOf(doc, sel.Synopsis),
	}

	rows := infoRows(doc, sel.InfoRow)
	detail.Status = rowValue(rows, "status")
	detail.Genres = genresOf(rows)

	var missing []string
	if detail.Title == "" {
		missing = append(missing, "title")
	}
	if detail.Status == "" {
		missing = append(missing, "status")
	}
	if len(missing) > 0 {
		return nil, &DetailNotFoundError{Missing: missing}
	}

	scraped := episodeLinks(doc, sel.EpisodeLinks, site)

	detail.TotalEpisodes = highestBound(doc, sel.Pagination, sel.PaginationAttr)
	for n := range scraped {
		detail.TotalEpisodes = max(detail.TotalEpisodes, n)
	}

	animeSlug := slug.Make(detail.Title)
	detail.Episodes = make([]source.EpisodeRef, 0, detail.TotalEpisodes)
	for n := 1; n <= detail.TotalEpisodes; n++ {
		link, ok := scraped[n]
		if !ok {
			link = source.EpisodeLink(site.EpisodeTemplate, site.BaseURL, animeSlug, n)
		}

		detail.Episodes = append(detail.Episodes, source.NewEpisodeRef(n, link))
	}

	return detail, nil
}

type infoRow struct {
	label, value string
}

func infoRows(doc markup.Document, selector string) []infoRow {
	var rows []infoRow

	for _, node := range doc.Find(selector) {
		label, value, found := strings.Cut(node.Text(), ":")
		if !found {
			continue
		}

		rows = append(rows, infoRow{
			label: strings.ToLower(strings.TrimSpace(label)),
			value: strings.TrimSpace(value),
		})
	}

	return rows
}

func rowValue(rows []infoRow, label string) string {
	row, _ := lo.Find(rows, func(r infoRow) bool {
		return r.label == label
	})

	return row.value
}

// genresOf splits the value of the "Genre" row by commas.
func genresOf(rows []infoRow) []string {
	genre, ok := lo.Find(rows, func(r infoRow) bool {
		return r.label == "genre" || r.label == "genres"
	})
	if !ok {
		return nil
	}

	values := lo.Map(strings.Split(genre.value, ","), func(v string, _ int) string {
		return strings.TrimSpace(v)
	})

	return lo.Uniq(lo.Compact(values))
}

func highestBound(doc markup.Document, selector, attr string) int {
	var highest int

	for _, node := range doc.Find(selector) {
		value, ok := node.Attr(attr)
		if !ok {
			continue
		}

		// bounds like "12.5" are truncated to the whole episode
		whole, _, _ := strings.Cut(strings.TrimSpace(value), ".")
		if n, err := strconv.Atoi(whole); err == nil {
			highest = max(highest, n)
		}
	}

	return highest
}

// episodeLinks maps episode numbers to the absolute links listed on the page.
func episodeLinks(doc markup.Document, selector string, site Site) map[int]string {
	links := make(map[int]string)
	if selector == "" {
		return links
	}

	for _, node := range doc.Find(selector) {
		href, _ := node.Attr("href")
		href = strings.TrimSpace(href)

		m := episodeNumberPattern.FindStringSubmatch(href)
		if m == nil {
			continue
		}

		n, err := strconv.Atoi(m[1])
		if err != nil || n < 1 {
			continue
		}

		if _, exists := links[n]; !exists {
			links[n] = site.Resolve(href)
		}
	}

	return links
}
