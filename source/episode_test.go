package source

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestEpisodeLink(t *testing.T) {
	Convey("Given an episode template", t, func() {
		template := "{base}/{slug}-episode-{n}"

		Convey("The placeholders are expanded", func() {
			link := EpisodeLink(template, "https://gogoanime3.co/", "one-piece", 1071)
			So(link, ShouldEqual, "https://gogoanime3.co/one-piece-episode-1071")
		})

		Convey("The label is formatted from the number", func() {
			So(NewEpisodeRef(12, "x").String(), ShouldEqual, "Episode 12")
		})
	})
}

func TestMetadata(t *testing.T) {
	Convey("Given metadata", t, func() {
		m := &Metadata{Season: "fall", Year: 2023}

		Convey("Aired joins season and year", func() {
			So(m.Aired(), ShouldEqual, "Fall 2023")
		})

		Convey("Aired without season is the year", func() {
			m.Season = ""
			So(m.Aired(), ShouldEqual, "2023")
		})

		Convey("A missing score is N/A", func() {
			So(m.ScoreString(), ShouldEqual, "N/A")
		})
	})
}
