package scraper

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/anistream/anistream/fetch"
	"github.com/anistream/anistream/log"
	"github.com/anistream/anistream/markup"
	"github.com/anistream/anistream/slug"
	"github.com/anistream/anistream/source"
	"github.com/samber/mo"
)

// Cache stores decoded pages by key. Implemented by internal/cache.Store.
type Cache interface {
	Read(key string, target any) bool
	Write(key string, data any) error
}

// KeyFunc derives a cache key from a namespace and a slug, query or page.
type KeyFunc func(namespace, id string) string

// Scraper fetches pages of a Site and parses them.
// It holds no state between calls apart from the optional cache.
type Scraper struct {
	site    Site
	fetcher fetch.Fetcher
	cache   Cache
	key     KeyFunc
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithCache caches listings and details under keys produced by key.
func WithCache(cache Cache, key KeyFunc) Option {
	return func(s *Scraper) {
		s.cache = cache
		s.key = key
	}
}

// New returns a scraper for site.
func New(site Site, fetcher fetch.Fetcher, options ...Option) *Scraper {
	s := &Scraper{site: site, fetcher: fetcher}
	for _, option := range options {
		option(s)
	}
	return s
}

// Site returns the layout the scraper was built with.
func (s *Scraper) Site() Site {
	return s.site
}

var _ source.Catalog = (*Scraper)(nil)

func (s *Scraper) document(ctx context.Context, url string) (markup.Document, error) {
	html, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	return markup.Parse(html)
}

func (s *Scraper) cached(namespace, id string, target any, load func() error) error {
	if s.cache == nil {
		return load()
	}

	k := s.key(namespace, id)
	if s.cache.Read(k, target) {
		log.Debugf("scraper: cache hit %s %q", namespace, id)
		return nil
	}

	if err := load(); err != nil {
		return err
	}

	if err := s.cache.Write(k, target); err != nil {
		log.Warnf("scraper: cache write %s %q: %s", namespace, id, err)
	}

	return nil
}

func (s *Scraper) listing(ctx context.Context, namespace, id, url string, sel ListingSelectors) ([]*source.AnimeSummary, error) {
	var animes []*source.AnimeSummary

	err := s.cached(namespace, id, &animes, func() error {
		doc, err := s.document(ctx, url)
		if err != nil {
			return err
		}

		animes = ParseListing(doc, sel)
		log.With(log.Fields{"region": namespace, "url": url, "count": len(animes)}).Debug("listing parsed")
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("%s listing: %w", namespace, err)
	}

	return animes, nil
}

// RecentReleases returns the cards of the n-th recent releases page.
func (s *Scraper) RecentReleases(ctx context.Context, page int) ([]*source.AnimeSummary, error) {
	page = max(page, 1)
	return s.listing(ctx, "recent", strconv.Itoa(page), s.site.RecentURL(page), s.site.Recent)
}

// Search returns the search results for query. A blank query yields no results without a request.
func (s *Scraper) Search(ctx context.Context, query string) ([]*source.AnimeSummary, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	return s.listing(ctx, "search", query, s.site.SearchURL(query), s.site.Search)
}

// Popular returns the ongoing popular sidebar of the front page.
func (s *Scraper) Popular(ctx context.Context) ([]*source.AnimeSummary, error) {
	return s.listing(ctx, "popular", "front", s.site.BaseURL+"/", s.site.Popular)
}

// NewSeason returns the new season sidebar of the front page.
func (s *Scraper) NewSeason(ctx context.Context) ([]*source.AnimeSummary, error) {
	return s.listing(ctx, "season", "front", s.site.BaseURL+"/", s.site.Season)
}

// Details fetches and parses the detail page at link, which may be relative to the site.
func (s *Scraper) Details(ctx context.Context, link string) (*source.AnimeDetail, error) {
	url := s.site.Resolve(link)

	var detail *source.AnimeDetail
	err := s.cached("details", url, &detail, func() error {
		doc, err := s.document(ctx, url)
		if err != nil {
			return err
		}

		detail, err = ParseDetail(doc, s.site)
		var notFound *DetailNotFoundError
		if errors.As(err, &notFound) {
			notFound.URL = url
		}
		return err
	})

	if err != nil {
		return nil, err
	}

	return detail, nil
}

// DetailsBySlug fetches the detail page of the anime whose slug is given.
func (s *Scraper) DetailsBySlug(ctx context.Context, animeSlug string) (*source.AnimeDetail, error) {
	if !slug.Valid(animeSlug) {
		return nil, &DetailNotFoundError{Missing: []string{"slug"}}
	}

	return s.Details(ctx, s.site.DetailURL(animeSlug))
}

// ResolvePlayerURL fetches an episode page and returns the source of its embedded player.
// A page without a player, or one that cannot be fetched, yields None.
// Only cancellation of ctx is returned as an error.
func (s *Scraper) ResolvePlayerURL(ctx context.Context, episodeLink string) (mo.Option[string], error) {
	url := s.site.Resolve(episodeLink)

	doc, err := s.document(ctx, url)
	if err != nil {
		if ctx.Err() != nil {
			return mo.None[string](), ctx.Err()
		}

		log.With(log.Fields{"url": url}).Warn("player page unavailable: ", err)
		return mo.None[string](), nil
	}

	src := markup.AttrOr(doc, s.site.PlayerFrame, "src")
	if src == "" {
		log.With(log.Fields{"url": url}).Info("no player frame")
		return mo.None[string](), nil
	}

	return mo.Some(s.site.Resolve(src)), nil
}
