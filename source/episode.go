package source

import (
	"fmt"
	"strconv"
	"strings"
)

// EpisodeRef points to the page of a single episode.
type EpisodeRef struct {
	// Label is the display name, e.g. "Episode 12".
	Label  string `json:"label"`
	Number int    `json:"number"`
	Link   string `json:"link"`
}

// EpisodeLabel formats the display label of the n-th episode.
func EpisodeLabel(n int) string {
	return fmt.Sprintf("Episode %d", n)
}

// NewEpisodeRef builds a reference for episode n located at link.
func NewEpisodeRef(n int, link string) EpisodeRef {
	return EpisodeRef{
		Label:  EpisodeLabel(n),
		Number: n,
		Link:   link,
	}
}

func (e EpisodeRef) String() string {
	return e.Label
}

// EpisodeLink expands an episode URL template.
// The placeholders {base}, {slug} and {n} are substituted.
func EpisodeLink(template, base, animeSlug string, n int) string {
	return strings.NewReplacer(
		"{base}", strings.TrimSuffix(base, "/"),
		"{slug}", animeSlug,
		"{n}", strconv.Itoa(n),
	).Replace(template)
}
