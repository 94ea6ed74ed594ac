package open

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestValidate(t *testing.T) {
	Convey("Given player URLs", t, func() {
		Convey("http and https are accepted", func() {
			So(validate("https://embed.test/streaming.php?id=1"), ShouldBeNil)
			So(validate("http://embed.test/e/1"), ShouldBeNil)
		})

		Convey("Other schemes are refused", func() {
			So(validate("file:///etc/passwd"), ShouldNotBeNil)
			So(validate("javascript:alert(1)"), ShouldNotBeNil)
		})

		Convey("Relative URLs are refused", func() {
			So(validate("//embed.test/e/1"), ShouldNotBeNil)
			So(validate("/e/1"), ShouldNotBeNil)
		})
	})
}
