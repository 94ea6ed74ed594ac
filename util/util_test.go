package util

import (
	"strings"
	"testing"

	"github.com/anistream/anistream/filesystem"
	. "github.com/smartystreets/goconvey/convey"
)

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "episode", "episodes"), ShouldEqual, "1 episode")
		So(Quantify(12, "episode", "episodes"), ShouldEqual, "12 episodes")
	})
}

func TestCapitalize(t *testing.T) {
	Convey("Capitalize", t, func() {
		So(Capitalize("fall"), ShouldEqual, "Fall")
		So(Capitalize(""), ShouldEqual, "")
	})
}

func TestWrap(t *testing.T) {
	Convey("Given a long synopsis", t, func() {
		text := strings.Repeat("word ", 40)

		Convey("Every line is indented and within the limit", func() {
			for _, line := range strings.Split(Wrap(text, 30, 2), "\n") {
				So(line, ShouldStartWith, "  ")
				So(len(line), ShouldBeLessThanOrEqualTo, 32)
			}
		})
	})
}

func TestMaxMinClamp(t *testing.T) {
	Convey("Max, Min and Clamp", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
		So(Clamp(100, 20, 80), ShouldEqual, 80)
		So(Clamp(5, 20, 80), ShouldEqual, 20)
	})
}

func TestDelete(t *testing.T) {
	Convey("Given a directory tree", t, func() {
		filesystem.SetMemMapFs()
		So(filesystem.API().WriteFile("/cache/a/b.json", []byte("{}"), 0o644), ShouldBeNil)

		Convey("Delete removes it", func() {
			So(Delete("/cache"), ShouldBeNil)
			exists, _ := filesystem.API().DirExists("/cache")
			So(exists, ShouldBeFalse)
		})

		Convey("Deleting a missing path fails", func() {
			So(Delete("/nowhere"), ShouldNotBeNil)
		})
	})
}
