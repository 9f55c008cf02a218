package cmd

import (
	"errors"
	"fmt"
	"frete/internal/config"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newInitCommand(flgs *Flags) *cobra.Command {
	var force bool
	c := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			path, err := configPath(flgs)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config %s already exists (use --force to overwrite)", path)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("failed to check config: %w", err)
			}
			if err := config.Save(path, config.DefaultConfig(filepath.Dir(path))); err != nil {
				return err
			}
			fmt.Fprintf(c.OutOrStdout(), "Configuração salva em %s\n", path)
			return nil
		},
	}
	c.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return c
}
