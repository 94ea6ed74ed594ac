// Package query remembers search queries and suggests them back.
package query

import (
	"sort"
	"strings"
	"sync"

	"github.com/anistream/anistream/filesystem"
	"github.com/anistream/anistream/key"
	"github.com/anistream/anistream/where"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
)

type queryRecord struct {
	Rank  int    `json:"rank"`
	Query string `json:"query"`
}

var cacher = gache.New[map[string]*queryRecord](
	&gache.Options{
		Path:       where.Queries(),
		FileSystem: &filesystem.GacheFs{},
	},
)

var (
	mu          sync.Mutex
	suggestions = make(map[string][]string)
)

func records() map[string]*queryRecord {
	cached, expired, err := cacher.Get()
	if expired || err != nil || cached == nil {
		return make(map[string]*queryRecord)
	}
	return cached
}

// Remember adds weight to the rank of q.
func Remember(q string, weight int) error {
	q = sanitize(q)
	if q == "" {
		return nil
	}

	mu.Lock()
	defer mu.Unlock()

	cached := records()
	if record, ok := cached[q]; ok {
		record.Rank += weight
	} else {
		cached[q] = &queryRecord{Rank: weight, Query: q}
	}

	suggestions = make(map[string][]string)
	return cacher.Set(cached)
}

// Suggest returns the best ranked remembered query matching q.
func Suggest(q string) mo.Option[string] {
	many := SuggestMany(q)
	if len(many) == 0 {
		return mo.None[string]()
	}
	return mo.Some(many[0])
}

// SuggestMany returns the remembered queries fuzzily matching q, best ranked first.
// The remembered query equal to q itself is not suggested.
func SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchShowQuerySuggestions) {
		return nil
	}

	q = sanitize(q)

	mu.Lock()
	defer mu.Unlock()

	if prev, ok := suggestions[q]; ok {
		return prev
	}

	matched := lo.Filter(lo.Values(records()), func(r *queryRecord, _ int) bool {
		return r.Query != q && fuzzy.Match(q, r.Query)
	})

	result := ranked(matched)
	suggestions[q] = result
	return result
}

// Top returns up to n remembered queries, best ranked first.
func Top(n int) []string {
	mu.Lock()
	defer mu.Unlock()

	result := ranked(lo.Values(records()))
	if len(result) > n {
		result = result[:n]
	}
	return result
}

func ranked(list []*queryRecord) []string {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].Rank == list[j].Rank {
			return list[i].Query < list[j].Query
		}
		return list[i].Rank > list[j].Rank
	})

	return lo.Map(list, func(r *queryRecord, _ int) string {
		return r.Query
	})
}

func sanitize(q string) string {
	return strings.Join(strings.Fields(strings.ToLower(q)), " ")
}
