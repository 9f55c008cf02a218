package cmd

import (
	"context"
	"fmt"
	"frete/internal/config"
	"frete/internal/fixtures"
	"frete/internal/logging"
	"frete/internal/store"
	"frete/internal/ui"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Flags holds the persistent command-line flags. Set flags override the
// config file and FRETE_* variables.
type Flags struct {
	ConfigPath string
	Verbose    bool
	Source     string
	DSN        string
	Fixtures   string
}

// NewRootCommand builds the frete command tree.
func NewRootCommand(version string) *cobra.Command {
	flgs := &Flags{}

	root := &cobra.Command{
		Use:           "frete",
		Short:         "Painel de pedidos no terminal",
		Long:          "frete shows the shipments dashboard: searchable, sortable and filterable orders with status cards.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(c *cobra.Command, args []string) error {
			return runDashboard(c, flgs)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flgs.ConfigPath, "config", "", "Path to config file (default: ~/.frete/config.yaml)")
	pf.BoolVarP(&flgs.Verbose, "verbose", "v", false, "Log at debug level")
	pf.StringVar(&flgs.Source, "source", "", "Data source: memory or sqlite")
	pf.StringVar(&flgs.DSN, "dsn", "", "SQLite DSN for the sqlite source")
	pf.StringVar(&flgs.Fixtures, "fixtures", "", "YAML dataset to serve instead of the built-in one")

	root.AddCommand(
		newExportCommand(flgs),
		newFieldsCommand(),
		newInitCommand(flgs),
	)
	return root
}

// Execute runs the CLI.
func Execute(version string) error {
	return NewRootCommand(version).Execute()
}

// loadConfig resolves settings from .env files, the config file, the
// environment and finally the set flags.
func loadConfig(c *cobra.Command, flgs *Flags) (config.Config, error) {
	// Load .env files first so FRETE_* variables apply to config.Load.
	config.LoadDotEnv(".env")
	config.LoadDotEnv(".env.local")

	path, err := configPath(flgs)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}

	pf := c.Flags()
	if pf.Changed("source") {
		cfg.Data.Source = flgs.Source
	}
	if pf.Changed("dsn") {
		cfg.Data.DSN = flgs.DSN
	}
	if pf.Changed("fixtures") {
		cfg.Data.Fixtures = flgs.Fixtures
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func configPath(flgs *Flags) (string, error) {
	if flgs.ConfigPath != "" {
		return flgs.ConfigPath, nil
	}
	dir, err := config.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

func newLogger(cfg config.Config, verbose bool) (*zap.Logger, error) {
	return logging.New(logging.Options{
		Enabled: cfg.Logging.Enabled,
		Path:    cfg.Logging.Path,
		Level:   cfg.Logging.Level,
		Verbose: verbose,
	})
}

func openStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	ds, err := fixtures.Load(cfg.Data.Fixtures)
	if err != nil {
		return nil, err
	}
	if cfg.Data.Source == store.SourceMemory && cfg.Data.LatencyMS > 0 {
		return store.NewMemory(ds, store.WithLatency(time.Duration(cfg.Data.LatencyMS)*time.Millisecond)), nil
	}
	st, err := store.Open(ctx, cfg.Data.Source, cfg.Data.DSN, ds)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s store: %w", cfg.Data.Source, err)
	}
	return st, nil
}

func runDashboard(c *cobra.Command, flgs *Flags) error {
	cfg, err := loadConfig(c, flgs)
	if err != nil {
		return err
	}
	logger, err := newLogger(cfg, flgs.Verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	st, err := openStore(c.Context(), cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	logger.Info("starting dashboard",
		zap.String("source", cfg.Data.Source),
		zap.String("fixtures", cfg.Data.Fixtures),
	)

	p := tea.NewProgram(ui.New(st, ui.Options{
		Logger:    logger,
		ExportDir: cfg.Export.Dir,
	}), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
