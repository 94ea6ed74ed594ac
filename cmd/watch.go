package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/anistream/anistream/color"
	"github.com/anistream/anistream/history"
	"github.com/anistream/anistream/icon"
	"github.com/anistream/anistream/key"
	"github.com/anistream/anistream/open"
	"github.com/anistream/anistream/source"
	"github.com/anistream/anistream/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().IntP("episode", "e", 0, "Episode number. Prompts when omitted")
	watchCmd.Flags().BoolP("continue", "c", false, "Pick the episode after the last one watched")
	watchCmd.Flags().BoolP("open", "o", false, "Open the player in the browser")
	watchCmd.Flags().BoolP("write-history", "H", true, "Record the episode in the watch history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnWatch, watchCmd.Flags().Lookup("write-history")))
	watchCmd.MarkFlagsMutuallyExclusive("episode", "continue")
}

var watchCmd = &cobra.Command{
	Use:   "watch <slug | title | link>",
	Short: "Resolve the player of an episode",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		catalog := newScraper(cmd)
		user := viper.GetString(key.HistoryUser)

		detail, err := lookupDetails(ctx, catalog, strings.Join(args, " "))
		handleErr(err)

		if detail.TotalEpisodes == 0 {
			handleErr(fmt.Errorf("%s has no episodes yet", detail.Title))
		}

		var episode source.EpisodeRef
		switch {
		case cmd.Flags().Changed("episode"):
			number := lo.Must(cmd.Flags().GetInt("episode"))
			ep, ok := detail.Episode(number)
			if !ok {
				handleErr(fmt.Errorf("episode %d not found, %s has %d", number, detail.Title, detail.TotalEpisodes))
			}
			episode = ep
		case lo.Must(cmd.Flags().GetBool("continue")):
			last, err := history.Last(user, detail.Slug())
			handleErr(err)

			next := 1
			if record, ok := last.Get(); ok {
				next = min(record.EpisodeNumber+1, detail.TotalEpisodes)
			}
			episode, _ = detail.Episode(next)
		default:
			episode, err = pickEpisode(detail, user)
			handleErr(err)
		}

		player, err := catalog.ResolvePlayerURL(ctx, episode.Link)
		handleErr(err)

		url, ok := player.Get()
		if !ok {
			handleErr(fmt.Errorf("unable to play %s of %s", episode.Label, detail.Title))
		}

		if viper.GetBool(key.HistorySaveOnWatch) {
			handleErr(history.Save(history.NewWatchedEpisode(user, detail, episode, time.Now())))
		}

		cmd.Printf("%s %s %s\n", icon.Get(icon.Play), style.Bold(detail.Title), style.Fg(color.Yellow)(episode.Label))
		cmd.Println(url)

		if lo.Must(cmd.Flags().GetBool("open")) {
			handleErr(open.URL(url))
		}
	},
}

// pickEpisode prompts for an episode, preselecting the one after the last watched.
func pickEpisode(detail *source.AnimeDetail, user string) (source.EpisodeRef, error) {
	labels := lo.Map(detail.Episodes, func(e source.EpisodeRef, _ int) string {
		return e.Label
	})

	prompt := &survey.Select{
		Message:  fmt.Sprintf("Pick an episode of %s", detail.Title),
		Options:  labels,
		PageSize: 15,
	}

	if last, err := history.Last(user, detail.Slug()); err == nil {
		if record, ok := last.Get(); ok {
			prompt.Default = labels[min(record.EpisodeNumber, len(labels)-1)]
		}
	}

	var index int
	if err := survey.AskOne(prompt, &index); err != nil {
		return source.EpisodeRef{}, err
	}

	if index < 0 || index >= len(detail.Episodes) {
		return source.EpisodeRef{}, errors.New("no episode selected")
	}

	return detail.Episodes[index], nil
}
