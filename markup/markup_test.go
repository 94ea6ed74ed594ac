package markup

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const page = `
<html><body>
  <ul class="items">
    <li><a href="/a" title="First">  First
        entry </a></li>
    <li><a href="/b">Second</a></li>
  </ul>
</body></html>`

func TestDocument(t *testing.T) {
	Convey("Given a parsed page", t, func() {
		doc, err := Parse(page)
		So(err, ShouldBeNil)

		Convey("Find returns matches in document order", func() {
			nodes := doc.Find(".items li a")
			So(nodes, ShouldHaveLength, 2)
			href, ok := nodes[1].Attr("href")
			So(ok, ShouldBeTrue)
			So(href, ShouldEqual, "/b")
		})

		Convey("Text collapses whitespace", func() {
			So(TextOf(doc, ".items li a"), ShouldEqual, "First entry")
		})

		Convey("Missing attributes are reported", func() {
			_, ok := doc.Find(".items li a")[1].Attr("title")
			So(ok, ShouldBeFalse)
			So(AttrOr(doc, ".items li a", "title"), ShouldEqual, "First")
		})

		Convey("Missing selectors yield empty values", func() {
			So(First(doc, ".nope"), ShouldBeNil)
			So(AttrOr(doc, ".nope", "href"), ShouldEqual, "")
			So(TextOf(doc, ".nope"), ShouldEqual, "")
		})

		Convey("Nested Find is scoped to the node", func() {
			li := doc.Find(".items li")[1]
			So(li.Find("a"), ShouldHaveLength, 1)
		})
	})
}
