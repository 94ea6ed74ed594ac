package history

import (
	"fmt"
	"time"

	"github.com/anistream/anistream/source"
)

// WatchedEpisode is a single entry of a user's watch history.
type WatchedEpisode struct {
	UserID        string    `json:"user_id"`
	AnimeTitle    string    `json:"anime_title"`
	AnimeSlug     string    `json:"anime_slug"`
	EpisodeLabel  string    `json:"episode_label"`
	EpisodeNumber int       `json:"episode_number"`
	EpisodeLink   string    `json:"episode_link"`
	TotalEpisodes int       `json:"total_episodes"`
	WatchedAt     time.Time `json:"watched_at"`
}

// NewWatchedEpisode records that userID watched episode of anime at the given time.
func NewWatchedEpisode(userID string, anime *source.AnimeDetail, episode source.EpisodeRef, at time.Time) *WatchedEpisode {
	return &WatchedEpisode{
		UserID:        userID,
		AnimeTitle:    anime.Title,
		AnimeSlug:     anime.Slug(),
		EpisodeLabel:  episode.Label,
		EpisodeNumber: episode.Number,
		EpisodeLink:   episode.Link,
		TotalEpisodes: anime.TotalEpisodes,
		WatchedAt:     at,
	}
}

func (w *WatchedEpisode) encode() string {
	return fmt.Sprintf("%s/%s#%d", w.UserID, w.AnimeSlug, w.EpisodeNumber)
}

func (w *WatchedEpisode) String() string {
	return fmt.Sprintf("%s : %d / %d", w.AnimeTitle, w.EpisodeNumber, w.TotalEpisodes)
}
