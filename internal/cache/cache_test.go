package cache

import (
	"testing"
	"time"

	"github.com/anistream/anistream/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

type entry struct {
	Title string `json:"title"`
}

func TestStore(t *testing.T) {
	Convey("Given an in-memory store", t, func() {
		filesystem.SetMemMapFs()
		store := New("/cache", time.Hour)
		key := Key("details", "one-piece")

		Convey("Reading a missing key fails", func() {
			var e entry
			So(store.Read(key, &e), ShouldBeFalse)
		})

		Convey("A written entry can be read back", func() {
			So(store.Write(key, entry{Title: "One Piece"}), ShouldBeNil)

			var e entry
			So(store.Read(key, &e), ShouldBeTrue)
			So(e.Title, ShouldEqual, "One Piece")

			Convey("But not once it expires", func() {
				store.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
				So(store.Read(key, &e), ShouldBeFalse)
				So(store.CollectGarbage(), ShouldEqual, 1)
			})

			Convey("Clear removes it", func() {
				So(store.Clear(), ShouldBeNil)
				So(store.Read(key, &e), ShouldBeFalse)
			})
		})

		Convey("Keys are case and space insensitive", func() {
			So(Key("search", " Naruto "), ShouldEqual, Key("search", "naruto"))
			So(Key("search", "naruto"), ShouldNotEqual, Key("details", "naruto"))
		})
	})
}
