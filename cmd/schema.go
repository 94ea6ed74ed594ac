package cmd

import (
	"path/filepath"
	"reflect"
	"strings"

	"github.com/anistream/anistream/favorites"
	"github.com/anistream/anistream/history"
	"github.com/anistream/anistream/jikan"
	"github.com/anistream/anistream/source"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type schemaTarget struct {
	flag  string
	short string
	help  string
	value any
}

// schemaTargets maps the schema flag to the value reflected for it.
var schemaTargets = []schemaTarget{
	{"listing", "l", "listing entries printed by recent, popular, season and search", []*listingEntry{}},
	{"details", "d", "anime details printed by details", &source.AnimeDetail{}},
	{"jikan", "m", "Jikan records printed by meta", []*jikan.Anime{}},
	{"history", "H", "watch history records", []*history.WatchedEpisode{}},
	{"favorites", "f", "favorite records", []*favorites.Favorite{}},
}

func init() {
	rootCmd.AddCommand(schemaCmd)

	for _, target := range schemaTargets {
		schemaCmd.Flags().BoolP(target.flag, target.short, false, "Generate the JSON Schema of "+target.help)
	}

	schemaCmd.MarkFlagsMutuallyExclusive(lo.Map(schemaTargets, func(t schemaTarget, _ int) string {
		return t.flag
	})...)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Generate JSON schemas for the json outputs",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			name := t.Name()
			switch strings.ToLower(name) {
			case "anime", "metadata", "favorite":
				return filepath.Base(t.PkgPath()) + "." + name
			}

			return name
		}

		value := schemaTargets[0].value
		for _, target := range schemaTargets {
			if lo.Must(cmd.Flags().GetBool(target.flag)) {
				value = target.value
				break
			}
		}

		handleErr(encodeJSON(cmd.OutOrStdout(), reflector.Reflect(value)))
	},
}
