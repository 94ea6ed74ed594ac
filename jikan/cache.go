package jikan

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/anistream/anistream/filesystem"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

type cacheData[K comparable, T any] struct {
	Entries map[K]T `json:"entries"`
}

// cacher is a keyed view over a single gache file.
type cacher[K comparable, T any] struct {
	internal   *gache.Cache[*cacheData[K, T]]
	keyWrapper func(K) K
	mu         sync.RWMutex
}

func newCacher[K comparable, T any](path string, lifetime time.Duration, keyWrapper func(K) K) *cacher[K, T] {
	return &cacher[K, T]{
		internal: gache.New[*cacheData[K, T]](&gache.Options{
			Path:       path,
			Lifetime:   lifetime,
			FileSystem: &filesystem.GacheFs{},
		}),
		keyWrapper: keyWrapper,
	}
}

func (c *cacher[K, T]) Get(key K) mo.Option[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[T]()
	}

	if value, ok := data.Entries[c.keyWrapper(key)]; ok {
		return mo.Some(value)
	}

	return mo.None[T]()
}

func (c *cacher[K, T]) Set(key K, value T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, expired, err := c.internal.Get()
	if err != nil || expired || data == nil {
		data = &cacheData[K, T]{Entries: make(map[K]T)}
	}

	data.Entries[c.keyWrapper(key)] = value
	return c.internal.Set(data)
}

func normalizedName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func identity[K any](k K) K { return k }

// Cache keeps metadata lookups on disk.
type Cache struct {
	ids       *cacher[string, int]
	records   *cacher[int, *Anime]
	failures  *cacher[string, bool]
	schedules *cacher[string, []*Anime]
}

// NewCache stores title bindings at bindsPath and everything else in dir.
// Bindings do not expire, records live two days, schedules one hour and failed lookups one minute.
func NewCache(bindsPath, dir string) *Cache {
	return &Cache{
		ids:       newCacher[string, int](bindsPath, 0, normalizedName),
		records:   newCacher[int, *Anime](filepath.Join(dir, "jikan_id_cache.json"), 48*time.Hour, identity[int]),
		failures:  newCacher[string, bool](filepath.Join(dir, "jikan_fail_cache.json"), time.Minute, normalizedName),
		schedules: newCacher[string, []*Anime](filepath.Join(dir, "jikan_schedule_cache.json"), time.Hour, normalizedName),
	}
}
