package color

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestStatus(t *testing.T) {
	Convey("Statuses from both sources share colors", t, func() {
		So(Status("Ongoing"), ShouldEqual, Status("Currently Airing"))
		So(Status("Completed"), ShouldEqual, Status("Finished Airing"))
		So(Status("whatever"), ShouldEqual, Gray)
	})
}
