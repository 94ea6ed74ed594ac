package style

import (
	"testing"

	"github.com/anistream/anistream/color"
	. "github.com/smartystreets/goconvey/convey"
)

func TestStyle(t *testing.T) {
	Convey("Given styled text", t, func() {
		Convey("The text is preserved", func() {
			So(Fg(color.Red)("episode"), ShouldContainSubstring, "episode")
			So(Bold("title"), ShouldContainSubstring, "title")
			So(Tag(color.White, color.Purple)("Drama"), ShouldContainSubstring, "Drama")
		})

		Convey("Truncate cuts long lines", func() {
			So(Truncate(4)("abcdefgh"), ShouldEqual, "abcd")
		})
	})
}
