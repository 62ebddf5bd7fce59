package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/matheuskafuri/folio/internal/config"
	"github.com/matheuskafuri/folio/internal/content"
	"github.com/matheuskafuri/folio/internal/logging"
	"github.com/matheuskafuri/folio/internal/shell"
	"github.com/matheuskafuri/folio/internal/tui"
)

// env is what every command that touches content needs.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *content.Store
}

// loadConfig reads the config file and applies the --content override.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flagContent != "" {
		cfg.Content = flagContent
	}
	return cfg, nil
}

// loadEnv reads the config, applies flag overrides, opens the log and loads
// the content.
func loadEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.LogPath(), cfg.Log.Level, flagDebug)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}

	store, err := content.Load(cfg.Content)
	if err != nil {
		logger.Error("loading content", zap.String("path", cfg.Content), zap.Error(err))
		_ = logging.Sync(logger)
		return nil, fmt.Errorf("loading content: %w", err)
	}

	c := store.Counts()
	logger.Info("content loaded",
		zap.String("path", cfg.Content),
		zap.Int("articles", c.Articles),
		zap.Int("notes", c.Notes),
		zap.Int("photos", c.Photos),
		zap.Int("galleries", c.Galleries),
		zap.Int("podcasts", c.Podcasts))

	if dangling := store.DanglingGalleryRefs(); len(dangling) > 0 {
		logger.Warn("photos point at missing galleries", zap.Ints("photo_ids", dangling))
		fmt.Fprintf(cmd.ErrOrStderr(), "  [warn] photos %v point at galleries that do not exist\n", dangling)
	}

	return &env{cfg: cfg, logger: logger, store: store}, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return runApp(cmd, flagSection)
}

// runApp launches the TUI at section, or at the configured start section
// when section is empty.
func runApp(cmd *cobra.Command, section string) error {
	e, err := loadEnv(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync(e.logger)

	start := e.cfg.Section()
	if section != "" {
		start, err = shell.ParseSectionID(section)
		if err != nil {
			return err
		}
	}

	themeName := e.cfg.Theme
	if flagTheme != "" {
		themeName = flagTheme
	}
	theme, err := tui.ResolveTheme(themeName)
	if err != nil {
		return err
	}

	e.logger.Info("starting",
		zap.String("version", version),
		zap.Stringer("section", start),
		zap.Stringer("theme", theme))

	return tui.Run(tui.RunOpts{
		Shell:  shell.New(e.store),
		Logger: e.logger,
		Title:  e.cfg.Title,
		Author: e.cfg.Author,
		Theme:  theme,
		Start:  start,
	})
}
