package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/anistream/anistream/color"
	"github.com/anistream/anistream/icon"
	"github.com/anistream/anistream/jikan"
	"github.com/anistream/anistream/style"
	"github.com/anistream/anistream/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(metaCmd)
	metaCmd.PersistentFlags().BoolP("json", "j", false, "Print the result as JSON")
}

var metaCmd = &cobra.Command{
	Use:   "meta",
	Short: "Query the Jikan metadata API",
}

func init() {
	metaCmd.AddCommand(metaFindCmd)
}

var metaFindCmd = &cobra.Command{
	Use:   "find <title>",
	Short: "Find the MyAnimeList id of a title",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := strings.Join(args, " ")

		erase := util.PrintErasable(fmt.Sprintf("%s Searching %s...", icon.Get(icon.Search), style.Fg(color.Yellow)(title)))
		id, err := newJikan(cmd).FindID(cmd.Context(), title)
		erase()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(encodeJSON(cmd.OutOrStdout(), map[string]any{"title": title, "id": id.OrEmpty(), "found": id.IsPresent()}))
			return
		}

		value, ok := id.Get()
		if !ok {
			handleErr(fmt.Errorf("no metadata found for %s", title))
		}

		cmd.Println(value)
	},
}

func init() {
	metaCmd.AddCommand(metaDetailsCmd)
}

var metaDetailsCmd = &cobra.Command{
	Use:   "details <id>",
	Short: "Show the full metadata record of an id",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			handleErr(fmt.Errorf("invalid id %q", args[0]))
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Fetching metadata...", icon.Get(icon.Progress)))
		record, err := newJikan(cmd).FetchDetails(cmd.Context(), id)
		erase()
		handleErr(err)

		anime, ok := record.Get()
		if !ok {
			handleErr(fmt.Errorf("no metadata found for id %d", id))
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(encodeJSON(cmd.OutOrStdout(), anime))
			return
		}

		meta := anime.Metadata()
		cmd.Println(style.Title(anime.Name()))
		cmd.Println()
		printRow(cmd, "Type", meta.Type)
		printRow(cmd, "Status", meta.Status)
		printRow(cmd, "Aired", meta.Aired())
		printRow(cmd, "Score", meta.ScoreString())
		printRow(cmd, "Rating", meta.Rating)
		printRow(cmd, "Duration", meta.Duration)
		printRow(cmd, "Studios", strings.Join(meta.Studios, ", "))
		printRow(cmd, "Genres", strings.Join(meta.Genres, ", "))
		printRow(cmd, "URL", meta.URL)

		if meta.Synopsis != "" {
			cmd.Println()
			cmd.Println(util.Wrap(meta.Synopsis, 80, 2))
		}
	},
}

func printRow(cmd *cobra.Command, label, value string) {
	if value == "" {
		return
	}
	cmd.Printf("%s %s\n", style.Faint(label), value)
}

func init() {
	metaCmd.AddCommand(metaScheduleCmd)
	metaScheduleCmd.Flags().BoolP("scored", "s", false, "Hide entries without a score")
}

var metaScheduleCmd = &cobra.Command{
	Use:       "schedule [day]",
	Short:     "List the anime airing on a weekday, today by default",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: jikan.Weekdays,
	Run: func(cmd *cobra.Command, args []string) {
		day := strings.ToLower(time.Now().Weekday().String())
		if len(args) == 1 {
			day = args[0]
		}

		erase := util.PrintErasable(fmt.Sprintf("%s Fetching the %s schedule...", icon.Get(icon.Calendar), day))
		animes, err := newJikan(cmd).Schedule(cmd.Context(), day)
		erase()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("scored")) {
			animes = jikan.Scored(animes)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(encodeJSON(cmd.OutOrStdout(), animes))
			return
		}

		if len(animes) == 0 {
			cmd.Printf("%s nothing airs on %s\n", icon.Get(icon.Warn), day)
			return
		}

		cmd.Printf("%s %s\n\n", style.Title(util.Capitalize(day)), style.Faint(util.Quantify(len(animes), "anime", "anime")))
		for _, anime := range animes {
			meta := anime.Metadata()
			cmd.Printf(
				"%s %s %s\n",
				style.Fg(color.Yellow)(meta.ScoreString()),
				style.Bold(anime.Name()),
				style.Faint(anime.Broadcast.Time),
			)
		}
	},
}
