package network

import (
	"net/http"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestTransport(t *testing.T) {
	Convey("Transport", t, func() {
		Convey("Defaults to the pooled transport", func() {
			So(Transport(false), ShouldEqual, shared)
			So(shared.MaxIdleConnsPerHost, ShouldEqual, 100)
		})

		Convey("Fingerprinted transport is built once", func() {
			a := Transport(true)
			b := Transport(true)
			So(a, ShouldEqual, b)
			_, isHTTP := a.(*http.Transport)
			So(isHTTP, ShouldBeFalse)
		})

		Convey("NewClient applies the timeout", func() {
			c := NewClient(5*time.Second, false)
			So(c.Timeout, ShouldEqual, 5*time.Second)
		})
	})
}
