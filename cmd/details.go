package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/anistream/anistream/color"
	"github.com/anistream/anistream/icon"
	"github.com/anistream/anistream/key"
	"github.com/anistream/anistream/log"
	"github.com/anistream/anistream/slug"
	"github.com/anistream/anistream/source"
	"github.com/anistream/anistream/style"
	"github.com/anistream/anistream/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// lookupDetails accepts a detail page link, a slug or a title.
func lookupDetails(ctx context.Context, catalog source.Catalog, arg string) (*source.AnimeDetail, error) {
	arg = strings.TrimSpace(arg)
	if strings.Contains(arg, "/") {
		return catalog.Details(ctx, arg)
	}

	return catalog.DetailsBySlug(ctx, slug.Make(arg))
}

func init() {
	rootCmd.AddCommand(detailsCmd)
	detailsCmd.Flags().BoolP("json", "j", false, "Print the details as JSON")
	detailsCmd.Flags().BoolP("enrich", "e", false, "Merge metadata from Jikan")
	lo.Must0(viper.BindPFlag(key.MetadataEnrich, detailsCmd.Flags().Lookup("enrich")))
	detailsCmd.Flags().BoolP("episodes", "E", false, "List every episode link")
}

var detailsCmd = &cobra.Command{
	Use:   "details <slug | title | link>",
	Short: "Show the details of an anime",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		detail, err := lookupDetails(ctx, newScraper(cmd), strings.Join(args, " "))
		handleErr(err)

		if viper.GetBool(key.MetadataEnrich) {
			erase := util.PrintErasable(fmt.Sprintf("%s Fetching metadata...", icon.Get(icon.Progress)))
			err := newJikan(cmd).Enrich(ctx, detail)
			erase()
			handleErr(err)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(encodeJSON(cmd.OutOrStdout(), detail))
			return
		}

		printDetail(cmd, detail, lo.Must(cmd.Flags().GetBool("episodes")))
	},
}

func printDetail(cmd *cobra.Command, detail *source.AnimeDetail, episodes bool) {
	cmd.Println(style.Title(detail.Title))
	cmd.Println()

	cmd.Printf("%s %s\n", style.Faint("Status"), style.Fg(color.Status(detail.Status))(detail.Status))
	cmd.Printf("%s %s\n", style.Faint("Slug"), style.Fg(color.Purple)(detail.Slug()))

	if len(detail.Genres) > 0 {
		tags := lo.Map(detail.Genres, func(g string, _ int) string {
			return style.Tag(color.White, color.Purple)(g)
		})
		cmd.Printf("%s %s\n", style.Faint("Genres"), strings.Join(tags, " "))
	}

	cmd.Printf("%s %s\n", style.Faint("Episodes"), util.Quantify(detail.TotalEpisodes, "episode", "episodes"))

	if meta, ok := detail.Metadata.Get(); ok {
		cmd.Printf("%s %s\n", style.Faint("Score"), style.Fg(color.Yellow)(meta.ScoreString()))

		for _, row := range [][2]string{
			{"English", meta.TitleEnglish},
			{"Type", meta.Type},
			{"Aired", meta.Aired()},
			{"Duration", meta.Duration},
			{"Rating", meta.Rating},
			{"Studios", strings.Join(meta.Studios, ", ")},
			{"MAL", meta.URL},
		} {
			if row[1] != "" {
				cmd.Printf("%s %s\n", style.Faint(row[0]), row[1])
			}
		}
	} else if viper.GetBool(key.MetadataEnrich) {
		log.Infof("no metadata for %q", detail.Title)
	}

	if detail.Synopsis != "" {
		cmd.Println()
		cmd.Println(util.Wrap(detail.Synopsis, 80, 2))
	}

	if episodes {
		cmd.Println()
		for _, ep := range detail.Episodes {
			cmd.Printf("%s %s %s\n", icon.Get(icon.Episode), ep.Label, style.Faint(ep.Link))
		}
	}
}
