package cmd

import (
	"fmt"
	"strings"

	"github.com/anistream/anistream/color"
	"github.com/anistream/anistream/history"
	"github.com/anistream/anistream/icon"
	"github.com/anistream/anistream/key"
	"github.com/anistream/anistream/slug"
	"github.com/anistream/anistream/style"
	"github.com/anistream/anistream/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the watch history",
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().BoolP("json", "j", false, "Print the history as JSON")
	historyListCmd.Flags().IntP("limit", "n", 0, "Show at most n entries")
}

var historyListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List watched episodes, most recent first",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		records, err := history.List(viper.GetString(key.HistoryUser))
		handleErr(err)

		if limit := lo.Must(cmd.Flags().GetInt("limit")); limit > 0 && limit < len(records) {
			records = records[:limit]
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(encodeJSON(cmd.OutOrStdout(), records))
			return
		}

		if len(records) == 0 {
			cmd.Printf("%s history is empty\n", icon.Get(icon.Warn))
			return
		}

		for _, record := range records {
			cmd.Printf(
				"%s %s %s\n",
				style.Faint(record.WatchedAt.Format("2006-01-02 15:04")),
				style.Bold(record.AnimeTitle),
				style.Fg(color.Yellow)(fmt.Sprintf("%d / %d", record.EpisodeNumber, record.TotalEpisodes)),
			)
		}
	},
}

func init() {
	historyCmd.AddCommand(historyRemoveCmd)
}

var historyRemoveCmd = &cobra.Command{
	Use:     "remove <slug | title>",
	Short:   "Forget every watched episode of an anime",
	Aliases: []string{"rm"},
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		animeSlug := slug.Make(strings.Join(args, " "))

		removed, err := history.Remove(viper.GetString(key.HistoryUser), animeSlug)
		handleErr(err)

		if removed == 0 {
			handleErr(fmt.Errorf("%s is not in the history", animeSlug))
		}

		cmd.Printf(
			"%s removed %s of %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			util.Quantify(removed, "entry", "entries"),
			style.Fg(color.Purple)(animeSlug),
		)
	},
}
