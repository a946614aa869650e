package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/palette"
	"github.com/alexisbeaulieu97/brandkit/internal/theme"
)

type paletteOptions struct {
	kind    string
	size    int
	reverse bool
	mode    string
}

func newPaletteCmd(root *rootFlags) *cobra.Command {
	opts := paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette <brand.yaml>",
		Short: "Print a visualization palette derived from a brand",
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

			mode := theme.ModeLight
			if opts.mode == string(theme.ModeDark) {
				mode = theme.ModeDark
			}

			handle, err := theme.NewBuilder(cfg, log).Build(mode)
			if err != nil {
				return err
			}
			resolved, err := theme.NewAccessor(cfg).Resolve(handle)
			if err != nil {
				return err
			}

			factory := palette.NewFactory(log)
			var colors []string
			switch opts.kind {
			case "discrete":
				if opts.size > 0 {
					colors, err = factory.DiscreteN(resolved, opts.size)
				} else {
					colors = factory.Discrete(resolved)
				}
			case "diverging":
				colors, err = factory.Diverging(resolved, opts.size, opts.reverse)
			default:
				colors, err = factory.Sequential(resolved, palette.Kind(opts.kind), opts.size, opts.reverse)
			}
			if err != nil {
				return err
			}

			for _, c := range colors {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "discrete", "Palette kind (discrete, diverging, warm, cool, green)")
	cmd.Flags().IntVarP(&opts.size, "n", "n", 9, "Number of colors")
	cmd.Flags().BoolVarP(&opts.reverse, "reverse", "r", false, "Reverse the sequence (sequential/diverging only)")
	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "light", "Resolve colors for this mode (light, dark)")

	return cmd
}
