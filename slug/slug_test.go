package slug

import (
	"regexp"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

var wellFormed = regexp.MustCompile(`^([a-z0-9]+(-[a-z0-9]+)*)?$`)

func TestMake(t *testing.T) {
	Convey("Make", t, func() {
		Convey("Plain titles", func() {
			So(Make("Attack on Titan"), ShouldEqual, "attack-on-titan")
			So(Make("  One Piece  "), ShouldEqual, "one-piece")
		})

		Convey("Punctuation and dashes collapse into single hyphens", func() {
			So(Make("Re:Zero − Starting Life in Another World"), ShouldEqual, "re-zero-starting-life-in-another-world")
			So(Make("Kaguya-sama: Love is War!!"), ShouldEqual, "kaguya-sama-love-is-war")
		})

		Convey("Diacritics are stripped", func() {
			So(Make("Pokémon Horizons"), ShouldEqual, "pokemon-horizons")
			So(Make("Shōgeki Sōma"), ShouldEqual, "shogeki-soma")
		})

		Convey("Decimal points between digits become hyphens", func() {
			So(Make("Golden Kamuy 4.5"), ShouldEqual, "golden-kamuy-4-5")
			So(Make("Golden Kamuy 4"), ShouldNotEqual, Make("Golden Kamuy 4.5"))
			So(Make("Version 1.2.3"), ShouldEqual, "version-1-2-3")
		})

		Convey("Empty and symbol-only titles give an empty slug", func() {
			So(Make(""), ShouldEqual, "")
			So(Make("!!! ???"), ShouldEqual, "")
			So(Make("ワンピース"), ShouldEqual, "")
		})

		Convey("Output is well formed and idempotent", func() {
			for _, title := range []string{
				"Attack on Titan", "Re:Zero − Starting Life", "--Dr. STONE--", "86 EIGHTY-SIX",
				"Frieren: Beyond Journey’s End", "Mob Psycho 100 III", "a..b", "x - - y", "7.2.",
			} {
				s := Make(title)
				So(wellFormed.MatchString(s), ShouldBeTrue)
				So(s, ShouldNotContainSubstring, "--")
				So(Make(s), ShouldEqual, s)
			}
		})
	})
}

func TestRoute(t *testing.T) {
	Convey("Route", t, func() {
		So(Route("Attack on Titan"), ShouldEqual, "/anime/attack-on-titan")
	})
}

func TestValid(t *testing.T) {
	Convey("Valid", t, func() {
		So(Valid("one-piece"), ShouldBeTrue)
		So(Valid("One Piece"), ShouldBeFalse)
		So(Valid(""), ShouldBeFalse)
	})
}
