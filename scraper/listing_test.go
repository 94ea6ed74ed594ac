package scraper

import (
	"testing"

	"github.com/anistream/anistream/markup"
	"github.com/anistream/anistream/source"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestParseListing(t *testing.T) {
	Convey("Given a front page", t, func() {
		doc, err := markup.Parse(recentPage)
		So(err, ShouldBeNil)
		site := DefaultSite(testBase)

		Convey("When the recent releases grid is parsed", func() {
			animes := ParseListing(doc, site.Recent)

			Convey("Then malformed cards are dropped and order is kept", func() {
				titles := lo.Map(animes, func(a *source.AnimeSummary, _ int) string { return a.Title })
				So(titles, ShouldResemble, []string{"One Piece", "Sousou no Frieren", "Dandadan"})
			})

			Convey("Then the title attribute wins over truncated text", func() {
				So(animes[0].Title, ShouldEqual, "One Piece")
			})

			Convey("Then link, thumbnail and label are extracted", func() {
				So(animes[0].DetailLink, ShouldEqual, "/one-piece-episode-1071")
				So(animes[0].ThumbnailURL, ShouldEqual, "https://img.test/one-piece.png")
				So(animes[0].LatestEpisode, ShouldEqual, "Episode 1071")
				So(animes[1].Slug(), ShouldEqual, "sousou-no-frieren")
			})
		})

		Convey("When the popular sidebar is parsed", func() {
			animes := ParseListing(doc, site.Popular)

			Convey("Then background images are used as thumbnails", func() {
				So(animes, ShouldHaveLength, 1)
				So(animes[0].ThumbnailURL, ShouldEqual, "https://img.test/op-pop.png")
				So(animes[0].LatestEpisode, ShouldEqual, "Episode 1071")
				So(animes[0].DetailLink, ShouldEqual, "/category/one-piece")
			})
		})

		Convey("When the new season sidebar is parsed", func() {
			animes := ParseListing(doc, site.Season)

			Convey("Then quoted and unquoted urls are both read", func() {
				So(animes, ShouldHaveLength, 2)
				So(animes[0].ThumbnailURL, ShouldEqual, "https://img.test/frieren-season.png")
				So(animes[1].ThumbnailURL, ShouldEqual, "https://img.test/dandadan-season.png")
				So(animes[1].LatestEpisode, ShouldBeEmpty)
			})
		})

		Convey("When the selector matches nothing", func() {
			sel := site.Recent
			sel.Item = ".does-not-exist li"

			Convey("Then the listing is empty", func() {
				So(ParseListing(doc, sel), ShouldBeEmpty)
			})
		})
	})
}
