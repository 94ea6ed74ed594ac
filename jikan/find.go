package jikan

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/anistream/anistream/log"
	"github.com/anistream/anistream/source"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Weekdays accepted by Schedule, besides "unknown" and "other".
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// FindID returns the id of the first search result for title.
// No result, an API failure and exhausted rate limit retries all yield None.
func (c *Client) FindID(ctx context.Context, title string) (mo.Option[int], error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return mo.None[int](), nil
	}

	if cache := c.options.Cache; cache != nil {
		if id, ok := cache.ids.Get(title).Get(); ok {
			return mo.Some(id), nil
		}

		if cache.failures.Get(title).OrElse(false) {
			return mo.None[int](), nil
		}
	}

	var res searchResponse
	ok, err := c.get(ctx, "/anime", map[string]string{
		"q":     title,
		"limit": "1",
	}, &res)
	if err != nil {
		return mo.None[int](), err
	}

	if !ok || len(res.Data) == 0 || res.Data[0] == nil {
		log.Infof("jikan: no match for %q", title)
		if cache := c.options.Cache; cache != nil && ok {
			_ = cache.failures.Set(title, true)
		}
		return mo.None[int](), nil
	}

	id := res.Data[0].MalID
	if cache := c.options.Cache; cache != nil {
		_ = cache.ids.Set(title, id)
	}

	return mo.Some(id), nil
}

// FetchDetails returns the full record of the anime with the given id.
// Rate limit retries are bounded like FindID.
func (c *Client) FetchDetails(ctx context.Context, id int) (mo.Option[*Anime], error) {
	if cache := c.options.Cache; cache != nil {
		if anime, ok := cache.records.Get(id).Get(); ok {
			return mo.Some(anime), nil
		}
	}

	var res detailsResponse
	ok, err := c.get(ctx, fmt.Sprintf("/anime/%d/full", id), nil, &res)
	if err != nil {
		return mo.None[*Anime](), err
	}

	if !ok || res.Data == nil {
		return mo.None[*Anime](), nil
	}

	if cache := c.options.Cache; cache != nil {
		_ = cache.records.Set(id, res.Data)
	}

	return mo.Some(res.Data), nil
}

// Schedule returns the anime airing on day, e.g. "monday".
func (c *Client) Schedule(ctx context.Context, day string) ([]*Anime, error) {
	day = strings.ToLower(strings.TrimSpace(day))
	if !lo.Contains(Weekdays, day) && day != "unknown" && day != "other" {
		return nil, fmt.Errorf("jikan: invalid schedule day %q, expected one of %s", day, strings.Join(Weekdays, ", "))
	}

	if cache := c.options.Cache; cache != nil {
		if animes, ok := cache.schedules.Get(day).Get(); ok {
			return animes, nil
		}
	}

	var res searchResponse
	ok, err := c.get(ctx, "/schedules/"+day, nil, &res)
	if err != nil || !ok {
		return nil, err
	}

	animes := lo.Compact(res.Data)
	if cache := c.options.Cache; cache != nil {
		_ = cache.schedules.Set(day, animes)
	}

	return animes, nil
}

// Scored drops the entries without a score.
func Scored(animes []*Anime) []*Anime {
	return lo.Filter(animes, func(a *Anime, _ int) bool {
		return a.Score != nil
	})
}

// Enrich looks the detail up by title and overlays its metadata.
// The detail is left untouched when nothing is found; only cancellation is returned.
func (c *Client) Enrich(ctx context.Context, detail *source.AnimeDetail) error {
	id, err := c.FindID(ctx, detail.Title)
	if err != nil {
		return err
	}

	if id.IsAbsent() {
		return nil
	}

	anime, err := c.FetchDetails(ctx, id.MustGet())
	if err != nil {
		return err
	}

	if record, ok := anime.Get(); ok {
		log.Infof("jikan: enriched %q with id %s", detail.Title, strconv.Itoa(record.MalID))
		detail.Enrich(record.Metadata())
	}

	return nil
}
