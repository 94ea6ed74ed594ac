package where

import (
	"path/filepath"
	"testing"

	"github.com/anistream/anistream/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestPaths(t *testing.T) {
	Convey("Path functions", t, func() {
		Convey("Config()", func() {
			path := Config()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Cache()", func() {
			path := Cache()
			So(path, ShouldNotBeEmpty)
			So(lo.Must(filesystem.API().IsDir(path)), ShouldBeTrue)
		})

		Convey("Listings() lives under Cache()", func() {
			So(filepath.Dir(Listings()), ShouldEqual, Cache())
			So(lo.Must(filesystem.API().IsDir(Listings())), ShouldBeTrue)
		})

		Convey("Logs() lives under Config()", func() {
			So(filepath.Dir(Logs()), ShouldEqual, Config())
		})

		Convey("Files are not created eagerly", func() {
			So(lo.Must(filesystem.API().Exists(History())), ShouldBeFalse)
			So(filepath.Base(Favorites()), ShouldEqual, "favorites.json")
		})

		Convey("Override via environment", func() {
			t.Setenv(EnvConfigPath, "/tmp/anistream-test-config")
			So(Config(), ShouldEqual, "/tmp/anistream-test-config")
		})
	})
}
