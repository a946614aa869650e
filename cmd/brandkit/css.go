package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/theme"
)

type cssOptions struct {
	outputPath string
}

func newCSSCmd(root *rootFlags) *cobra.Command {
	opts := cssOptions{}

	cmd := &cobra.Command{
		Use:   "css <brand.yaml>",
		Short: "Generate the dark-mode CSS overlay for a brand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(root)
			if err != nil {
				return err
			}

			cfg, err := config.ParseBrand(args[0])
			if err != nil {
				return err
			}

			handle, err := theme.NewBuilder(cfg, log).Build(theme.ModeDark)
			if err != nil {
				return err
			}

			if opts.outputPath != "" {
				return os.WriteFile(opts.outputPath, []byte(handle.OverlayCSS), 0o644)
			}
			fmt.Fprint(cmd.OutOrStdout(), handle.OverlayCSS)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "Write CSS to a file instead of stdout")

	return cmd
}
