package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/anistream/anistream/color"
	"github.com/anistream/anistream/favorites"
	"github.com/anistream/anistream/icon"
	"github.com/anistream/anistream/key"
	"github.com/anistream/anistream/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(favoritesCmd)
}

var favoritesCmd = &cobra.Command{
	Use:     "favorites",
	Short:   "Manage favorite anime",
	Aliases: []string{"fav"},
}

func init() {
	favoritesCmd.AddCommand(favoritesAddCmd)
}

var favoritesAddCmd = &cobra.Command{
	Use:   "add <slug | title | link>",
	Short: "Mark an anime as favorite",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		detail, err := lookupDetails(cmd.Context(), newScraper(cmd), strings.Join(args, " "))
		handleErr(err)

		handleErr(favorites.Add(favorites.New(viper.GetString(key.HistoryUser), detail, time.Now())))
		cmd.Printf(
			"%s added %s to favorites\n",
			style.Fg(color.Green)(icon.Get(icon.Favorite)),
			style.Bold(detail.Title),
		)
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesListCmd)
	favoritesListCmd.Flags().BoolP("json", "j", false, "Print the favorites as JSON")
}

var favoritesListCmd = &cobra.Command{
	Use:     "list",
	Short:   "List favorite anime",
	Aliases: []string{"ls"},
	Run: func(cmd *cobra.Command, args []string) {
		list, err := favorites.List(viper.GetString(key.HistoryUser))
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(encodeJSON(cmd.OutOrStdout(), list))
			return
		}

		if len(list) == 0 {
			cmd.Printf("%s no favorites yet\n", icon.Get(icon.Warn))
			return
		}

		for _, f := range list {
			cmd.Printf(
				"%s %s %s\n",
				icon.Get(icon.Favorite),
				style.Bold(f.Title),
				style.Fg(color.Status(f.Status))(f.Status),
			)
		}
	},
}

func init() {
	favoritesCmd.AddCommand(favoritesRemoveCmd)
}

var favoritesRemoveCmd = &cobra.Command{
	Use:     "remove <slug | title>",
	Short:   "Remove an anime from favorites",
	Aliases: []string{"rm"},
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		user := viper.GetString(key.HistoryUser)
		query := strings.Join(args, " ")

		found, err := favorites.Find(user, query)
		handleErr(err)

		favorite, ok := found.Get()
		if !ok {
			handleErr(fmt.Errorf("no favorite matches %s", query))
		}

		_, err = favorites.Remove(user, favorite.Slug)
		handleErr(err)

		cmd.Printf(
			"%s removed %s from favorites\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Bold(favorite.Title),
		)
	},
}
