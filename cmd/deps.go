package cmd

import (
	"encoding/json"
	"io"
	"time"

	"github.com/anistream/anistream/fetch"
	"github.com/anistream/anistream/internal/cache"
	"github.com/anistream/anistream/jikan"
	"github.com/anistream/anistream/key"
	"github.com/anistream/anistream/network"
	"github.com/anistream/anistream/scraper"
	"github.com/anistream/anistream/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func timeout() time.Duration {
	return time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second
}

func newCache() *cache.Store {
	return cache.New(where.Listings(), time.Duration(viper.GetInt(key.CacheTTL))*time.Minute)
}

func newScraper(cmd *cobra.Command) *scraper.Scraper {
	client := network.NewClient(timeout(), viper.GetBool(key.NetworkTLSFingerprint))

	var options []scraper.Option
	if viper.GetBool(key.CacheEnabled) && !lo.Must(cmd.Flags().GetBool("no-cache")) {
		options = append(options, scraper.WithCache(newCache(), cache.Key))
	}

	return scraper.New(scraper.SiteFromConfig(), fetch.New(client), options...)
}

func newJikan(cmd *cobra.Command) *jikan.Client {
	options := jikan.Options{
		BaseURL:    viper.GetString(key.MetadataBaseURL),
		Delay:      time.Duration(viper.GetInt(key.MetadataDelay)) * time.Millisecond,
		Backoff:    time.Duration(viper.GetInt(key.MetadataBackoff)) * time.Millisecond,
		MaxRetries: viper.GetInt(key.MetadataMaxRetries),
		HTTPClient: network.NewClient(timeout(), false),
	}

	if viper.GetBool(key.CacheEnabled) && !lo.Must(cmd.Flags().GetBool("no-cache")) {
		options.Cache = jikan.NewCache(where.MetadataBinds(), where.Cache())
	}

	return jikan.New(options)
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
