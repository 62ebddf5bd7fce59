package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	flagConfig  string
	flagContent string
	flagSection string
	flagTheme   string
	flagDebug   bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "A personal portfolio in your terminal",
	Long: `folio browses a personal collection of articles, notes, photos and podcast
episodes. Content comes from YAML files; the built-in showcase is used when
none is configured.`,
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&flagContent, "content", "", "content file or directory (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "log at debug level")
	rootCmd.Flags().StringVar(&flagSection, "section", "", "start section: home, articles, notes, photos, podcasts")
	rootCmd.Flags().StringVar(&flagTheme, "theme", "", "color theme: dark, light, auto")
	browseCmd.Flags().StringVar(&flagTheme, "theme", "", "color theme: dark, light, auto")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(importCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "folio %s (commit: %s, built: %s)\n", version, commit, date)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
