// Package favorites persists the anime a user marked as favorite.
package favorites

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/anistream/anistream/filesystem"
	"github.com/anistream/anistream/source"
	"github.com/anistream/anistream/where"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Favorite is the record handed to the store, shaped after AnimeDetail.
type Favorite struct {
	UserID        string    `json:"user_id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	ThumbnailURL  string    `json:"thumbnail_url"`
	Status        string    `json:"status"`
	Genres        []string  `json:"genres"`
	TotalEpisodes int       `json:"total_episodes"`
	AddedAt       time.Time `json:"added_at"`
}

// New builds the favorite entry of anime for userID.
func New(userID string, anime *source.AnimeDetail, at time.Time) *Favorite {
	return &Favorite{
		UserID:        userID,
		Title:         anime.Title,
		Slug:          anime.Slug(),
		ThumbnailURL:  anime.ThumbnailURL,
		Status:        anime.Status,
		Genres:        anime.Genres,
		TotalEpisodes: anime.TotalEpisodes,
		AddedAt:       at,
	}
}

func (f *Favorite) encode() string {
	return f.UserID + "/" + f.Slug
}

func (f *Favorite) String() string {
	return fmt.Sprintf("%s (%s)", f.Title, f.Status)
}

var cacher = gache.New[map[string]*Favorite](
	&gache.Options{
		Path:       where.Favorites(),
		FileSystem: &filesystem.GacheFs{},
	},
)

func get() (map[string]*Favorite, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Favorite), nil
	}
	return cached, nil
}

// Add stores the favorite, keeping the original date when it already exists.
func Add(favorite *Favorite) error {
	saved, err := get()
	if err != nil {
		return err
	}

	if existing, ok := saved[favorite.encode()]; ok {
		favorite.AddedAt = existing.AddedAt
	}

	saved[favorite.encode()] = favorite
	return cacher.Set(saved)
}

// Remove deletes the favorite of userID with the given slug and reports whether it existed.
func Remove(userID, slug string) (bool, error) {
	saved, err := get()
	if err != nil {
		return false, err
	}

	k := (&Favorite{UserID: userID, Slug: slug}).encode()
	if _, ok := saved[k]; !ok {
		return false, nil
	}

	delete(saved, k)
	return true, cacher.Set(saved)
}

// List returns the favorites of userID in the order they were added.
func List(userID string) ([]*Favorite, error) {
	saved, err := get()
	if err != nil {
		return nil, err
	}

	favorites := lo.Filter(lo.Values(saved), func(f *Favorite, _ int) bool {
		return f.UserID == userID
	})

	sort.SliceStable(favorites, func(i, j int) bool {
		if favorites[i].AddedAt.Equal(favorites[j].AddedAt) {
			return favorites[i].Slug < favorites[j].Slug
		}
		return favorites[i].AddedAt.Before(favorites[j].AddedAt)
	})

	return favorites, nil
}

// Find returns the favorite whose slug or title is closest to query.
func Find(userID, query string) (mo.Option[*Favorite], error) {
	favorites, err := List(userID)
	if err != nil || len(favorites) == 0 {
		return mo.None[*Favorite](), err
	}

	query = strings.ToLower(strings.TrimSpace(query))
	if exact, ok := lo.Find(favorites, func(f *Favorite) bool {
		return f.Slug == query
	}); ok {
		return mo.Some(exact), nil
	}

	distance := func(f *Favorite) int {
		return levenshtein.Distance(query, strings.ToLower(f.Title))
	}

	closest := lo.MinBy(favorites, func(a, b *Favorite) bool {
		return distance(a) < distance(b)
	})

	// more than half of the title differs
	if distance(closest)*2 > len(closest.Title) {
		return mo.None[*Favorite](), nil
	}

	return mo.Some(closest), nil
}
