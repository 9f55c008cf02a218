package cmd

import (
	"fmt"
	"frete/internal/columns"
	"frete/internal/query"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newFieldsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fields",
		Short: "List shipment fields usable with export --sort and --filter",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			return printFields(c)
		},
	}
}

func printFields(c *cobra.Command) error {
	cols := columns.Default()
	filters := make(map[query.Field]query.FilterKey, len(query.FilterKeys))
	for _, k := range query.FilterKeys {
		if f, ok := k.Field(); ok {
			filters[f] = k
		}
	}

	w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tKIND\tCOLUMN\tFILTER")
	for _, f := range query.Fields() {
		kind, err := f.Kind()
		if err != nil {
			return err
		}
		label := "-"
		if col, ok := cols.Column(f); ok {
			label = col.Label
		}
		filter := "-"
		if k, ok := filters[f]; ok {
			filter = string(k)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", f, kind, label, filter)
	}
	return w.Flush()
}
