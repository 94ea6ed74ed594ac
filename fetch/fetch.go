// Package fetch retrieves raw markup from the listing site and the metadata API.
//
// Fetching never retries: whether a failure is worth repeating is decided by the caller.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/anistream/anistream/constant"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("anistream/fetch")

// Fetcher retrieves the body of an absolute URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// NetworkError is returned for transport failures and non-2xx responses.
type NetworkError struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *NetworkError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsStatus reports whether err is a NetworkError carrying the given HTTP status.
func IsStatus(err error, status int) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr) && netErr.StatusCode == status
}

// Client is a resty-backed Fetcher.
type Client struct {
	http *resty.Client
}

// New wraps an *http.Client (its transport and timeout are kept) into a Fetcher.
func New(client *http.Client) *Client {
	r := resty.NewWithClient(client)
	r.SetHeader("User-Agent", constant.UserAgent)
	r.SetHeader("Accept", "text/html,application/xhtml+xml,application/json;q=0.9,*/*;q=0.8")
	r.SetHeader("Accept-Language", "en-US,en;q=0.9")
	return &Client{http: r}
}

// Fetch implements Fetcher.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	ctx, span := tracer.Start(ctx, "fetch")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	res, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "request failed")
		return "", &NetworkError{URL: url, Err: err}
	}

	span.SetAttributes(attribute.Int("status", res.StatusCode()))
	if !res.IsSuccess() {
		span.SetStatus(codes.Error, "unexpected status")
		return "", &NetworkError{
			URL:        url,
			StatusCode: res.StatusCode(),
			Err:        fmt.Errorf("unexpected status %s", res.Status()),
		}
	}

	return res.String(), nil
}

// Func adapts a plain function to Fetcher.
type Func func(ctx context.Context, url string) (string, error)

func (f Func) Fetch(ctx context.Context, url string) (string, error) {
	return f(ctx, url)
}
