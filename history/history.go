// Package history persists the episodes a user watched.
package history

import (
	"sort"

	"github.com/anistream/anistream/filesystem"
	"github.com/anistream/anistream/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

var cacher = gache.New[map[string]*WatchedEpisode](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns every record keyed by user, anime and episode.
func Get() (map[string]*WatchedEpisode, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*WatchedEpisode), nil
	}
	return cached, nil
}

// List returns the records of userID, most recently watched first.
func List(userID string) ([]*WatchedEpisode, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	records := lo.Filter(lo.Values(saved), func(w *WatchedEpisode, _ int) bool {
		return w.UserID == userID
	})

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].WatchedAt.Equal(records[j].WatchedAt) {
			return records[i].encode() < records[j].encode()
		}
		return records[i].WatchedAt.After(records[j].WatchedAt)
	})

	return records, nil
}

// Last returns the episode of animeSlug that userID watched most recently.
func Last(userID, animeSlug string) (mo.Option[*WatchedEpisode], error) {
	records, err := List(userID)
	if err != nil {
		return mo.None[*WatchedEpisode](), err
	}

	record, ok := lo.Find(records, func(w *WatchedEpisode) bool {
		return w.AnimeSlug == animeSlug
	})
	if !ok {
		return mo.None[*WatchedEpisode](), nil
	}

	return mo.Some(record), nil
}

// Save stores the record. Watching an episode again only moves its timestamp forward.
func Save(record *WatchedEpisode) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	if existing, exists := saved[record.encode()]; exists && existing.WatchedAt.After(record.WatchedAt) {
		record.WatchedAt = existing.WatchedAt
	}

	saved[record.encode()] = record
	return cacher.Set(saved)
}

// Remove deletes every record of animeSlug for userID and returns how many were removed.
func Remove(userID, animeSlug string) (int, error) {
	saved, err := Get()
	if err != nil {
		return 0, err
	}

	var removed int
	for k, w := range saved {
		if w.UserID == userID && w.AnimeSlug == animeSlug {
			delete(saved, k)
			removed++
		}
	}

	return removed, cacher.Set(saved)
}
