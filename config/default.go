package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/anistream/anistream/color"
	"github.com/anistream/anistream/constant"
	"github.com/anistream/anistream/key"
	"github.com/anistream/anistream/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field is a single registered configuration entry.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty renders the field for `anistream config info`.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable bound to this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.App + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON includes both the effective and the default value.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	default:
		return "unknown"
	}
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

// EnvExposed lists the keys bound to environment variables.
var EnvExposed []string

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.SiteBaseURL, constant.SiteBaseURL, "Base URL of the anime listing site")
	register(key.SiteEpisodeTemplate, "{base}/{slug}-episode-{n}", "Episode page URL pattern used when the detail page lists no episode links")
	register(key.SiteDetailTemplate, "{base}/category/{slug}", "Detail page URL pattern for slug lookups")
	register(key.SiteSearchTemplate, "{base}/search.html?keyword={query}", "Search page URL pattern")
	register(key.SiteRecentItem, ".last_episodes .items li", "Selector of a catalog entry on the recent releases page")
	register(key.SiteSearchItem, ".last_episodes .items li", "Selector of a catalog entry on the search results page")
	register(key.SitePopularItem, "#load_popular_ongoing .added_series_body ul li", "Selector of an entry in the popular sidebar")
	register(key.SiteSeasonItem, ".added_series_body.final ul li", "Selector of an entry in the new season sidebar")
	register(key.SitePlayerFrame, ".anime_video_body iframe", "Selector of the embedded player frame on an episode page")
	register(key.MetadataEnrich, true, "Enrich anime details with Jikan metadata")
	register(key.MetadataBaseURL, constant.JikanBaseURL, "Base URL of the Jikan API")
	register(key.MetadataDelay, 1000, "Delay before every metadata request, in milliseconds")
	register(key.MetadataBackoff, 2000, "Wait after a rate limited (429) response, in milliseconds")
	register(key.MetadataMaxRetries, 3, "Maximum attempts per metadata request when rate limited")
	register(key.NetworkTimeout, 30, "HTTP timeout in seconds")
	register(key.NetworkTLSFingerprint, false, "Use a Chrome TLS fingerprint for the listing site.\nHelps with anti-bot challenges")
	register(key.CacheEnabled, true, "Cache listings and schedules on disk")
	register(key.CacheTTL, 60, "Lifetime of cached listings and schedules, in minutes")
	register(key.HistorySaveOnWatch, true, "Record watched episodes")
	register(key.HistoryUser, "local", "User identifier attached to history and favorites records")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when searching")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, nerd, plain, kaomoji, squares")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliBrowser, "", "Application used to open player URLs.\nEmpty means the system default")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
