// Package jikan is a throttled client for the Jikan v4 API, an unofficial MyAnimeList mirror.
package jikan

import (
	"github.com/anistream/anistream/source"
	"github.com/samber/lo"
)

// Named is a genre, studio or producer entry.
type Named struct {
	MalID int    `json:"mal_id" jsonschema:"description=MyAnimeList ID of the entry."`
	Name  string `json:"name" jsonschema:"description=Display name."`
}

// Images holds the poster variants of an anime.
type Images struct {
	JPG struct {
		ImageURL      string `json:"image_url"`
		LargeImageURL string `json:"large_image_url"`
	} `json:"jpg"`
}

// Broadcast is the weekly airing slot.
type Broadcast struct {
	Day      string `json:"day"`
	Time     string `json:"time"`
	Timezone string `json:"timezone"`
	String   string `json:"string"`
}

// Anime is the record returned by the search, full details and schedule endpoints.
type Anime struct {
	MalID        int       `json:"mal_id" jsonschema:"description=MyAnimeList ID of the anime."`
	URL          string    `json:"url"`
	Images       Images    `json:"images"`
	Title        string    `json:"title" jsonschema:"description=Default (romaji) title."`
	TitleEnglish string    `json:"title_english"`
	Type         string    `json:"type" jsonschema:"description=Media type, e.g. TV or Movie."`
	Episodes     *int      `json:"episodes"`
	Status       string    `json:"status"`
	Duration     string    `json:"duration" jsonschema:"description=Duration per episode."`
	Rating       string    `json:"rating" jsonschema:"description=Parental rating."`
	Score        *float64  `json:"score"`
	Synopsis     string    `json:"synopsis"`
	Season       string    `json:"season"`
	Year         *int      `json:"year"`
	Broadcast    Broadcast `json:"broadcast"`
	Studios      []Named   `json:"studios"`
	Genres       []Named   `json:"genres"`
}

// Name returns the english title when there is one.
func (a *Anime) Name() string {
	if a.TitleEnglish != "" {
		return a.TitleEnglish
	}
	return a.Title
}

// Metadata converts the record to the fields used for enrichment.
func (a *Anime) Metadata() *source.Metadata {
	names := func(n Named, _ int) string { return n.Name }

	image := a.Images.JPG.LargeImageURL
	if image == "" {
		image = a.Images.JPG.ImageURL
	}

	return &source.Metadata{
		ID:           a.MalID,
		URL:          a.URL,
		Image:        image,
		Synopsis:     a.Synopsis,
		Genres:       lo.Map(a.Genres, names),
		Status:       a.Status,
		Duration:     a.Duration,
		Score:        a.Score,
		Type:         a.Type,
		TitleEnglish: a.TitleEnglish,
		Rating:       a.Rating,
		Season:       a.Season,
		Year:         lo.FromPtr(a.Year),
		Studios:      lo.Map(a.Studios, names),
		Episodes:     lo.FromPtr(a.Episodes),
	}
}

type searchResponse struct {
	Data []*Anime `json:"data"`
}

type detailsResponse struct {
	Data *Anime `json:"data"`
}
