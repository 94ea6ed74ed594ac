package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/anistream/anistream/filesystem"
	"github.com/anistream/anistream/key"
	"github.com/anistream/anistream/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Calls are silently discarded", func() {
			So(func() { With(Fields{"url": "x"}).Error("boom") }, ShouldNotPanic)
			So(func() { Errorf("boom %d", 1) }, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsLevel, "debug")
		So(Setup(), ShouldBeNil)

		Convey("Today's log file exists", func() {
			path := filepath.Join(where.Logs(), time.Now().Format("2006-01-02")+".log")
			So(lo.Must(filesystem.API().Exists(path)), ShouldBeTrue)

			With(Fields{"slug": "one-piece"}).Info("fetched")
			contents := lo.Must(filesystem.API().ReadFile(path))
			So(string(contents), ShouldContainSubstring, "one-piece")
		})

		Reset(func() {
			viper.Set(key.LogsWrite, false)
			_ = Setup()
		})
	})
}
