package jikan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/anistream/anistream/constant"
	"github.com/anistream/anistream/log"
	"github.com/go-resty/resty/v2"
)

// errRateLimited marks a 429 response. It never leaves the package.
var errRateLimited = errors.New("rate limited")

// Options configures a Client. An empty BaseURL and a non-positive MaxRetries fall back to DefaultOptions.
type Options struct {
	// BaseURL of the API, e.g. https://api.jikan.moe/v4
	BaseURL string
	// Delay precedes every request.
	Delay time.Duration
	// Backoff is waited after a 429 response before trying again.
	Backoff time.Duration
	// MaxRetries bounds the number of requests made for a single call.
	MaxRetries int

	HTTPClient *http.Client
	// Sleep waits for d or until ctx is done.
	Sleep func(ctx context.Context, d time.Duration) error
	// Cache stores lookups between runs. Nil disables caching.
	Cache *Cache
}

// DefaultOptions returns the policy used against the public API.
func DefaultOptions() Options {
	return Options{
		BaseURL:    constant.JikanBaseURL,
		Delay:      time.Second,
		Backoff:    2 * time.Second,
		MaxRetries: 3,
	}
}

// Client talks to the Jikan API. Safe for concurrent use.
type Client struct {
	options Options
	http    *resty.Client
}

// New returns a client using options.
func New(options Options) *Client {
	defaults := DefaultOptions()

	if options.BaseURL == "" {
		options.BaseURL = defaults.BaseURL
	}
	if options.MaxRetries <= 0 {
		options.MaxRetries = defaults.MaxRetries
	}
	if options.Delay < 0 {
		options.Delay = 0
	}
	if options.Backoff < 0 {
		options.Backoff = 0
	}
	if options.Sleep == nil {
		options.Sleep = sleep
	}
	if options.HTTPClient == nil {
		options.HTTPClient = &http.Client{Timeout: 30 * time.Second}
	}

	r := resty.NewWithClient(options.HTTPClient).
		SetBaseURL(strings.TrimSuffix(options.BaseURL, "/")).
		SetHeader("User-Agent", constant.UserAgent).
		SetHeader("Accept", "application/json")

	return &Client{options: options, http: r}
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// get requests path and decodes the body into target.
// It reports false when the call failed for any reason other than cancellation,
// including exhausting the retries on rate limit responses.
func (c *Client) get(ctx context.Context, path string, query map[string]string, target any) (bool, error) {
	entry := log.With(log.Fields{"endpoint": path})

	for attempt := 1; attempt <= c.options.MaxRetries; attempt++ {
		if err := c.options.Sleep(ctx, c.options.Delay); err != nil {
			return false, err
		}

		err := c.request(ctx, path, query, target)
		switch {
		case err == nil:
			return true, nil
		case ctx.Err() != nil:
			return false, ctx.Err()
		case errors.Is(err, errRateLimited):
			entry.Warn(fmt.Sprintf("rate limited, attempt %d of %d", attempt, c.options.MaxRetries))
			if attempt < c.options.MaxRetries {
				if err := c.options.Sleep(ctx, c.options.Backoff); err != nil {
					return false, err
				}
			}
		default:
			entry.Error(err)
			return false, nil
		}
	}

	return false, nil
}

func (c *Client) request(ctx context.Context, path string, query map[string]string, target any) error {
	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParams(query).
		Get(path)
	if err != nil {
		return err
	}

	switch status := res.StatusCode(); {
	case status == http.StatusTooManyRequests:
		return errRateLimited
	case status < 200 || status >= 300:
		return fmt.Errorf("jikan: %s returned %s", path, res.Status())
	}

	if err := json.Unmarshal(res.Body(), target); err != nil {
		return fmt.Errorf("jikan: decode %s: %w", path, err)
	}

	return nil
}
