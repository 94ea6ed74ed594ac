package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestClient(t *testing.T) {
	Convey("Given a server", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/ok":
				_, _ = w.Write([]byte("<html>ok</html>"))
			case "/ua":
				_, _ = w.Write([]byte(r.Header.Get("User-Agent")))
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		client := New(srv.Client())
		ctx := context.Background()

		Convey("A 200 response returns the body", func() {
			body, err := client.Fetch(ctx, srv.URL+"/ok")
			So(err, ShouldBeNil)
			So(body, ShouldEqual, "<html>ok</html>")
		})

		Convey("A browser User-Agent is sent", func() {
			body, err := client.Fetch(ctx, srv.URL+"/ua")
			So(err, ShouldBeNil)
			So(body, ShouldContainSubstring, "Mozilla/5.0")
		})

		Convey("A non-2xx response is a NetworkError with the status", func() {
			_, err := client.Fetch(ctx, srv.URL+"/missing")
			So(err, ShouldNotBeNil)
			var netErr *NetworkError
			So(errors.As(err, &netErr), ShouldBeTrue)
			So(netErr.StatusCode, ShouldEqual, http.StatusNotFound)
			So(IsStatus(err, http.StatusNotFound), ShouldBeTrue)
		})

		Convey("A transport failure is a NetworkError without status", func() {
			_, err := client.Fetch(ctx, "http://127.0.0.1:1/unreachable")
			var netErr *NetworkError
			So(errors.As(err, &netErr), ShouldBeTrue)
			So(netErr.StatusCode, ShouldEqual, 0)
		})

		Convey("A cancelled context fails the fetch", func() {
			cancelled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := client.Fetch(cancelled, srv.URL+"/ok")
			So(err, ShouldNotBeNil)
		})
	})
}
