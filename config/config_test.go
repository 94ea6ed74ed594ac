package config

import (
	"testing"

	"github.com/anistream/anistream/filesystem"
	"github.com/anistream/anistream/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Should populate every registered default", func() {
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Metadata throttling defaults", func() {
			So(viper.GetInt(key.MetadataDelay), ShouldEqual, 1000)
			So(viper.GetInt(key.MetadataBackoff), ShouldEqual, 2000)
			So(viper.GetInt(key.MetadataMaxRetries), ShouldEqual, 3)
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("metadata.delay_ms"), ShouldEqual, "metadata_delay_ms")
		})

		Convey("Env names carry the application prefix", func() {
			f := Default[key.CacheTTL]
			So(f.Env(), ShouldEqual, "ANISTREAM_CACHE_TTL_MINUTES")
		})
	})
}
