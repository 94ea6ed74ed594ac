package source

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestAnimeSummary(t *testing.T) {
	Convey("Given a summary", t, func() {
		a := &AnimeSummary{Title: "Re:Zero - Starting Life in Another World"}

		Convey("Slug is derived from the title", func() {
			So(a.Slug(), ShouldEqual, "re-zero-starting-life-in-another-world")
		})

		Convey("String returns the title", func() {
			So(a.String(), ShouldEqual, a.Title)
		})
	})
}

func TestAnimeDetailEnrich(t *testing.T) {
	Convey("Given a scraped detail", t, func() {
		detail := &AnimeDetail{
			Title:        "Frieren",
			ThumbnailURL: "https://img/frieren.jpg",
			Synopsis:     "scraped synopsis",
			Genres:       []string{"Adventure"},
			Status:       "Ongoing",
		}

		Convey("When the metadata is nil", func() {
			detail.Enrich(nil)

			Convey("Nothing changes", func() {
				So(detail.Metadata.IsAbsent(), ShouldBeTrue)
				So(detail.Synopsis, ShouldEqual, "scraped synopsis")
			})
		})

		Convey("When the metadata is empty", func() {
			detail.Enrich(&Metadata{ID: 1})

			Convey("Scraped fields are kept", func() {
				So(detail.Synopsis, ShouldEqual, "scraped synopsis")
				So(detail.Genres, ShouldResemble, []string{"Adventure"})
				So(detail.Status, ShouldEqual, "Ongoing")
				So(detail.Metadata.IsPresent(), ShouldBeTrue)
			})
		})

		Convey("When the metadata has values", func() {
			score := 9.3
			detail.Enrich(&Metadata{
				ID:       52991,
				Synopsis: "canonical synopsis",
				Genres:   []string{"Adventure", "Drama", "Drama"},
				Status:   "Finished Airing",
				Score:    &score,
				Image:    "https://cdn/other.jpg",
			})

			Convey("They override the scraped ones", func() {
				So(detail.Synopsis, ShouldEqual, "canonical synopsis")
				So(detail.Genres, ShouldResemble, []string{"Adventure", "Drama"})
				So(detail.Status, ShouldEqual, "Finished Airing")
			})

			Convey("The scraped thumbnail is kept", func() {
				So(detail.ThumbnailURL, ShouldEqual, "https://img/frieren.jpg")
			})

			Convey("The record is attached", func() {
				meta, ok := detail.Metadata.Get()
				So(ok, ShouldBeTrue)
				So(meta.ID, ShouldEqual, 52991)
				So(meta.ScoreString(), ShouldEqual, "9.30")
			})
		})
	})
}

func TestAnimeDetailEpisode(t *testing.T) {
	Convey("Given a detail with episodes", t, func() {
		detail := &AnimeDetail{
			Episodes: []EpisodeRef{NewEpisodeRef(1, "a"), NewEpisodeRef(2, "b")},
		}

		Convey("An existing episode is found", func() {
			ep, ok := detail.Episode(2)
			So(ok, ShouldBeTrue)
			So(ep.Link, ShouldEqual, "b")
			So(ep.Label, ShouldEqual, "Episode 2")
		})

		Convey("A missing episode is not", func() {
			_, ok := detail.Episode(3)
			So(ok, ShouldBeFalse)
		})
	})
}
