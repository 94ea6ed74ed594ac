package favorites

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

func TestFavorites(t *testing.T) {
	Convey("Given two anime", t, func() {
		frieren := &source.AnimeDetail{Title: "Sousou no Frieren", Status: "Completed", TotalEpisodes: 28}
		dandadan := &source.AnimeDetail{Title: "Dandadan", Status: "Ongoing", TotalEpisodes: 12}
		base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		user := "user-" + t.Name()

		Convey("When both are added", func() {
			So(Add(New(user, frieren, base)), ShouldBeNil)
			So(Add(New(user, dandadan, base.Add(time.Minute))), ShouldBeNil)

			Convey("Then they are listed in insertion order", func() {
				favorites, err := List(user)
				So(err, ShouldBeNil)
				So(favorites, ShouldHaveLength, 2)
				So(favorites[0].Slug, ShouldEqual, "sousou-no-frieren")
				So(favorites[1].String(), ShouldEqual, "Dandadan (Ongoing)")
			})

			Convey("Then adding again keeps the first date", func() {
				So(Add(New(user, frieren, base.Add(time.Hour))), ShouldBeNil)
				favorites, err := List(user)
				So(err, ShouldBeNil)
				So(favorites[0].AddedAt.Equal(base), ShouldBeTrue)
			})

			Convey("Then a close title is found", func() {
				found, err := Find(user, "sousou no frieran")
				So(err, ShouldBeNil)
				So(found.MustGet().Slug, ShouldEqual, "sousou-no-frieren")
			})

			Convey("Then a slug is found", func() {
				found, err := Find(user, "dandadan")
				So(err, ShouldBeNil)
				So(found.MustGet().Title, ShouldEqual, "Dandadan")
			})

			Convey("Then an unrelated query finds nothing", func() {
				found, err := Find(user, "one piece film red")
				So(err, ShouldBeNil)
				So(found.IsAbsent(), ShouldBeTrue)
			})

			Convey("Then removing one leaves the other", func() {
				removed, err := Remove(user, "dandadan")
				So(err, ShouldBeNil)
				So(removed, ShouldBeTrue)

				favorites, err := List(user)
				So(err, ShouldBeNil)
				So(favorites, ShouldHaveLength, 1)

				removed, err = Remove(user, "dandadan")
				So(err, ShouldBeNil)
				So(removed, ShouldBeFalse)
			})
		})
	})
}
