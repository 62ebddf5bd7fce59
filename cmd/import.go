package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/folio/internal/feed"
)

var (
	flagStartID int
	flagTimeout time.Duration
)

var importCmd = &cobra.Command{
	Use:   "import <feed>...",
	Short: "Convert podcast feeds to content YAML",
	Long: `Read one or more podcast RSS/Atom feeds, given as URLs or local files, and
print their episodes as a podcasts content document. Episodes without an audio
enclosure are skipped.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagStartID < 1 {
			return fmt.Errorf("--start-id must be at least 1, got %d", flagStartID)
		}

		ctx, cancel := context.WithTimeout(context.Background(), flagTimeout)
		defer cancel()

		result := feed.ImportAll(ctx, args, flagStartID)
		for _, e := range result.Errors {
			fmt.Fprintf(cmd.ErrOrStderr(), "  [warn] %v\n", e)
		}
		if len(result.Podcasts) == 0 {
			return fmt.Errorf("no episodes with audio found")
		}

		data, err := feed.Marshal(result.Podcasts)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	importCmd.Flags().IntVar(&flagStartID, "start-id", 1, "id of the first imported episode")
	importCmd.Flags().DurationVar(&flagTimeout, "timeout", 30*time.Second, "timeout for fetching remote feeds")
}
