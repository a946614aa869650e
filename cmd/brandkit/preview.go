package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/brandkit/internal/config"
	"github.com/alexisbeaulieu97/brandkit/internal/darkmode"
	"github.com/alexisbeaulieu97/brandkit/internal/palette"
	"github.com/alexisbeaulieu97/brandkit/internal/theme"
	"github.com/alexisbeaulieu97/brandkit/internal/tui/preview"
)

func newPreviewCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <brand.yaml>",
		Short: "Interactively preview brand swatches and palettes",
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

			ctrl, err := darkmode.New(theme.NewBuilder(cfg, log))
			if err != nil {
				return err
			}

			model := preview.NewModel(cfg, ctrl, palette.NewFactory(log))
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}

	return cmd
}
