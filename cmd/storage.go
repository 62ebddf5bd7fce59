package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/matheuskafuri/folio/internal/content"
	"github.com/matheuskafuri/folio/internal/logging"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show content statistics",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd)
		if err != nil {
			return err
		}
		defer logging.Sync(e.logger)

		source := e.cfg.Content
		if source == "" {
			source = "(built-in)"
		}

		out := cmd.OutOrStdout()
		c := e.store.Counts()
		fmt.Fprintf(out, "Content: %s\n", source)
		fmt.Fprintf(out, "Articles: %d\n", c.Articles)
		fmt.Fprintf(out, "Notes: %d\n", c.Notes)
		fmt.Fprintf(out, "Photos: %d (%d galleries)\n", c.Photos, c.Galleries)
		fmt.Fprintf(out, "Podcasts: %d\n", c.Podcasts)
		fmt.Fprintf(out, "Tags: %d\n", c.Tags)

		if categories := podcastCategories(e.store); len(categories) > 0 {
			fmt.Fprintf(out, "Categories: %d\n", len(categories))
		}
		return nil
	},
}

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate a content file or directory",
	Long: `Load and validate content without starting the TUI. Reports unknown fields,
missing required values, malformed dates and URLs, duplicate ids and photos
pointing at galleries that do not exist.

Checks the configured content when no path is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var path string
		if len(args) == 1 {
			path = args[0]
		} else {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			path = cfg.Content
		}

		out := cmd.OutOrStdout()
		if path == "" {
			if _, err := content.Default(); err != nil {
				return fmt.Errorf("built-in content: %w", err)
			}
			fmt.Fprintln(out, "OK: built-in content")
			return nil
		}

		files, err := content.Files(path)
		if err != nil {
			return err
		}
		store, err := content.Load(path)
		if err != nil {
			return err
		}

		var size int64
		for _, f := range files {
			if info, err := os.Stat(f); err == nil {
				size += info.Size()
			}
		}

		c := store.Counts()
		fmt.Fprintf(out, "OK: %d file(s), %s\n", len(files), formatBytes(size))
		fmt.Fprintf(out, "  %d articles, %d notes, %d photos, %d galleries, %d podcasts\n",
			c.Articles, c.Notes, c.Photos, c.Galleries, c.Podcasts)

		if dangling := store.DanglingGalleryRefs(); len(dangling) > 0 {
			return fmt.Errorf("photos %v point at galleries that do not exist", dangling)
		}
		return nil
	},
}

func podcastCategories(store *content.Store) []string {
	seen := make(map[string]bool)
	for _, p := range store.Podcasts() {
		seen[p.Category] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func formatBytes(b int64) string {
	switch {
	case b >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(b)/(1<<20))
	case b >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(b)/(1<<10))
	default:
		return fmt.Sprintf("%d B", b)
	}
}
