package history

import (
	"testing"
	"time"

	"github.com/anistream/anistream/filesystem"
	"github.com/anistream/anistream/source"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestHistory(t *testing.T) {
	Convey("Given an anime with episodes", t, func() {
		anime := &source.AnimeDetail{
			Title:         "Dandadan",
			TotalEpisodes: 12,
			Episodes: []source.EpisodeRef{
				source.NewEpisodeRef(1, "https://anime.test/dandadan-episode-1"),
				source.NewEpisodeRef(2, "https://anime.test/dandadan-episode-2"),
			},
		}
		base := time.Date(2024, 10, 3, 20, 0, 0, 0, time.UTC)
		user := "user-" + t.Name()

		Convey("When two episodes are watched", func() {
			So(Save(NewWatchedEpisode(user, anime, anime.Episodes[0], base)), ShouldBeNil)
			So(Save(NewWatchedEpisode(user, anime, anime.Episodes[1], base.Add(time.Hour))), ShouldBeNil)

			Convey("Then they are listed most recent first", func() {
				records, err := List(user)
				So(err, ShouldBeNil)
				So(records, ShouldHaveLength, 2)
				So(records[0].EpisodeNumber, ShouldEqual, 2)
				So(records[0].AnimeSlug, ShouldEqual, "dandadan")
				So(records[0].String(), ShouldEqual, "Dandadan : 2 / 12")
			})

			Convey("Then the last one is the resume point", func() {
				last, err := Last(user, "dandadan")
				So(err, ShouldBeNil)
				So(last.MustGet().EpisodeLabel, ShouldEqual, "Episode 2")
			})

			Convey("Then other users see nothing", func() {
				records, err := List("someone-else")
				So(err, ShouldBeNil)
				So(records, ShouldBeEmpty)
			})

			Convey("And an older save does not move time backwards", func() {
				So(Save(NewWatchedEpisode(user, anime, anime.Episodes[1], base.Add(-time.Hour))), ShouldBeNil)

				records, err := List(user)
				So(err, ShouldBeNil)
				So(records[0].WatchedAt.Equal(base.Add(time.Hour)), ShouldBeTrue)
			})

			Convey("And removing the anime clears its records", func() {
				removed, err := Remove(user, "dandadan")
				So(err, ShouldBeNil)
				So(removed, ShouldEqual, 2)

				last, err := Last(user, "dandadan")
				So(err, ShouldBeNil)
				So(last.IsAbsent(), ShouldBeTrue)
			})
		})
	})
}
