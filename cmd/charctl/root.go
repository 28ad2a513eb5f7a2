package main

import (
	"encoding/json"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/character-customizer/internal/app/customization"
	"github.com/preston-bernstein/character-customizer/internal/app/options"
	"github.com/preston-bernstein/character-customizer/internal/catalog"
	"github.com/preston-bernstein/character-customizer/internal/characters"
	"github.com/preston-bernstein/character-customizer/internal/config"
	"github.com/preston-bernstein/character-customizer/internal/logging"
)

// cli holds the persistent flags shared by every subcommand.
type cli struct {
	charactersDir string
	templatePath  string
	catalogPath   string
	logLevel      string
	retry         config.RetryConfig
	opener        customization.Opener
}

func newCLI(cfg config.Config, opener customization.Opener) *cli {
	return &cli{retry: cfg.CatalogRetry, opener: opener}
}

func newRootCmd(cfg config.Config, opener customization.Opener) *cobra.Command {
	c := newCLI(cfg, opener)

	root := &cobra.Command{
		Use:   "charctl",
		Short: "Create and customize character profiles",
		Long: `charctl manages per-character JSON profiles seeded from a template and
lists the cosmetic options stored in the SQLite catalog.

Flags default to CHARACTERS_DIR, TEMPLATE_PATH and CATALOG_PATH.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&c.charactersDir, "characters-dir", cfg.CharactersDir, "directory holding character files")
	root.PersistentFlags().StringVar(&c.templatePath, "template", cfg.TemplatePath, "template used to seed new characters")
	root.PersistentFlags().StringVar(&c.catalogPath, "catalog", cfg.CatalogPath, "SQLite catalog database")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "warn", "log level written to stderr")

	root.AddCommand(
		c.createCmd(),
		c.showCmd(),
		c.listCmd(),
		c.setCmd(),
		c.catalogCmd(),
		c.openCmd(),
	)
	return root
}

func (c *cli) logger(cmd *cobra.Command) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   c.logLevel,
		Service: "charctl",
		Output:  cmd.ErrOrStderr(),
	})
}

func (c *cli) characters(cmd *cobra.Command) *customization.Service {
	store := characters.NewStore(c.charactersDir, c.templatePath)
	return customization.NewService(store, c.opener, c.logger(cmd), nil)
}

func (c *cli) options(cmd *cobra.Command) *options.Service {
	return options.NewService(c.reader(), c.logger(cmd), nil)
}

func (c *cli) reader() *catalog.Reader {
	return catalog.NewReaderWithRetry(c.catalogPath, c.retry.Attempts, c.retry.Backoff)
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
