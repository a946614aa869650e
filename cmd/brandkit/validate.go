package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/config"
)

func newValidateCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <brand.yaml>",
		Short: "Validate a brand file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ParseBrand(args[0])
			if err != nil {
				return err
			}

			name := cfg.Meta.Name
			if name == "" {
				name = args[0]
			}
			dark := "no dark palette"
			if cfg.HasDark() {
				dark = "dark palette configured"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%s, %d fonts)\n",
				name, dark, len(cfg.Typography.Fonts))
			return nil
		},
	}

	return cmd
}
