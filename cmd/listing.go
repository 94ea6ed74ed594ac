package cmd

import (
	"fmt"
	"strings"

	"github.com/anistream/anistream/color"
	"github.com/anistream/anistream/icon"
	"github.com/anistream/anistream/query"
	"github.com/anistream/anistream/slug"
	"github.com/anistream/anistream/source"
	"github.com/anistream/anistream/style"
	"github.com/anistream/anistream/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// listingEntry is the json form of a catalog card, carrying its derived slug and route.
type listingEntry struct {
	*source.AnimeSummary
	Slug  string `json:"slug"`
	Route string `json:"route"`
}

func printListing(cmd *cobra.Command, animes []*source.AnimeSummary) {
	if lo.Must(cmd.Flags().GetBool("json")) {
		handleErr(encodeJSON(cmd.OutOrStdout(), lo.Map(animes, func(a *source.AnimeSummary, _ int) listingEntry {
			return listingEntry{AnimeSummary: a, Slug: a.Slug(), Route: slug.Route(a.Title)}
		})))
		return
	}

	if len(animes) == 0 {
		cmd.Printf("%s nothing found\n", icon.Get(icon.Warn))
		return
	}

	width := len(fmt.Sprint(len(animes)))
	for i, anime := range animes {
		line := fmt.Sprintf(
			"%s %s %s",
			style.Faint(fmt.Sprintf("%*d.", width, i+1)),
			style.Bold(anime.Title),
			style.Fg(color.Purple)(anime.Slug()),
		)

		if anime.LatestEpisode != "" {
			line += " " + style.Fg(color.Yellow)(anime.LatestEpisode)
		}

		cmd.Println(line)
	}

	cmd.Println(style.Faint(util.Quantify(len(animes), "entry", "entries")))
}

func withListingFlags(cmd *cobra.Command) *cobra.Command {
	cmd.Flags().BoolP("json", "j", false, "Print the entries as JSON")
	return cmd
}

func init() {
	rootCmd.AddCommand(withListingFlags(recentCmd))
	recentCmd.Flags().IntP("page", "p", 1, "Page of the recent releases")
}

var recentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List recently released episodes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		page := lo.Must(cmd.Flags().GetInt("page"))

		animes, err := newScraper(cmd).RecentReleases(cmd.Context(), page)
		handleErr(err)
		printListing(cmd, animes)
	},
}

func init() {
	rootCmd.AddCommand(withListingFlags(popularCmd))
}

var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "List popular ongoing anime",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		animes, err := newScraper(cmd).Popular(cmd.Context())
		handleErr(err)
		printListing(cmd, animes)
	},
}

func init() {
	rootCmd.AddCommand(withListingFlags(seasonCmd))
}

var seasonCmd = &cobra.Command{
	Use:     "season",
	Short:   "List anime of the new season",
	Aliases: []string{"new"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		animes, err := newScraper(cmd).NewSeason(cmd.Context())
		handleErr(err)
		printListing(cmd, animes)
	},
}

func init() {
	rootCmd.AddCommand(withListingFlags(searchCmd))
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search anime by title",
	Long: `Search anime by title.

Without a query the most used past queries are listed.`,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		q := strings.Join(args, " ")
		if strings.TrimSpace(q) == "" {
			for _, past := range query.Top(10) {
				cmd.Println(past)
			}
			return
		}

		animes, err := newScraper(cmd).Search(cmd.Context(), q)
		handleErr(err)

		if len(animes) > 0 {
			_ = query.Remember(q, 1)
		} else if suggestion, ok := query.Suggest(q).Get(); ok && !lo.Must(cmd.Flags().GetBool("json")) {
			cmd.Printf("%s did you mean %s?\n", icon.Get(icon.Search), style.Fg(color.Yellow)(suggestion))
		}

		printListing(cmd, animes)
	},
}
