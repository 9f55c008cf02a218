package cmd

import (
	"fmt"
	"frete/internal/columns"
	"frete/internal/export"
	"frete/internal/query"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type exportFlags struct {
	Out     string
	Query   string
	Filters []string
	Sort    string
}

func newExportCommand(flgs *Flags) *cobra.Command {
	ef := &exportFlags{}
	c := &cobra.Command{
		Use:   "export",
		Short: "Write the filtered shipments to a CSV file",
		Long: `Export runs the same filter, search and sort as the dashboard and writes
the visible columns of the default layout as CSV.`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return runExport(c, flgs, ef)
		},
	}
	c.Flags().StringVarP(&ef.Out, "out", "o", "", "Output file (default: <export dir>/pedidos-<timestamp>.csv)")
	c.Flags().StringVarP(&ef.Query, "query", "q", "", "Free-text search")
	c.Flags().StringArrayVarP(&ef.Filters, "filter", "f", nil, "Filter as key=value; repeat to select several values")
	c.Flags().StringVarP(&ef.Sort, "sort", "s", "", "Sort as field[:asc|desc]")
	return c
}

// buildQuery turns the export flags into an engine query.
func buildQuery(ef *exportFlags) (query.Query, error) {
	q := query.NewQuery()
	q.Text = ef.Query

	for _, f := range ef.Filters {
		name, value, ok := strings.Cut(f, "=")
		if !ok {
			return query.Query{}, fmt.Errorf("invalid filter %q (want key=value)", f)
		}
		key, err := query.ParseFilterKey(strings.TrimSpace(name))
		if err != nil {
			return query.Query{}, err
		}
		q.Filters.Toggle(key, value)
	}

	if ef.Sort != "" {
		name, dir, _ := strings.Cut(ef.Sort, ":")
		field, err := query.ParseField(name)
		if err != nil {
			return query.Query{}, err
		}
		d, err := query.ParseDirection(dir)
		if err != nil {
			return query.Query{}, err
		}
		q.Sort = query.SortState{Field: field, Dir: d, Active: true}
	}
	return q, nil
}

func runExport(c *cobra.Command, flgs *Flags, ef *exportFlags) error {
	q, err := buildQuery(ef)
	if err != nil {
		return err
	}
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

	all, err := st.All(c.Context())
	if err != nil {
		return fmt.Errorf("failed to load shipments: %w", err)
	}
	rows := query.Apply(all, q)

	out := ef.Out
	if out == "" {
		out = filepath.Join(cfg.Export.Dir, export.FileName(time.Now()))
	}
	if err := export.ToFile(out, columns.Default().Visible(), rows); err != nil {
		return err
	}

	logger.Info("exported shipments",
		zap.String("path", out),
		zap.Int("rows", len(rows)),
		zap.Int("total", len(all)),
	)
	fmt.Fprintf(c.OutOrStdout(), "%d pedidos exportados para %s\n", len(rows), out)
	return nil
}
