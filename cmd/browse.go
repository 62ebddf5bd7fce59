package cmd

import "github.com/spf13/cobra"

var browseCmd = &cobra.Command{
	Use:       "browse <section>",
	Short:     "Open a section directly",
	Long:      "Launch folio straight into one section: articles, notes, photos or podcasts.",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"articles", "notes", "photos", "podcasts"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, args[0])
	},
}
