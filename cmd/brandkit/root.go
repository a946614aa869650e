package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/brandkit/internal/logger"
)

type rootFlags struct {
	logLevel string
	plain    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "brandkit",
		Short:         "brandkit derives UI themes, dark-mode CSS, and chart palettes from a brand file",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.plain, "plain", false, "Force JSON log output even on a terminal")

	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newCSSCmd(flags))
	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the shared CLI logger; human-readable output is reserved
// for interactive terminals unless forced off.
func newLogger(flags *rootFlags) (*logger.Logger, error) {
	human := !flags.plain && term.IsTerminal(int(os.Stderr.Fd()))
	return logger.New(logger.Options{
		Level:         flags.logLevel,
		HumanReadable: human,
		Writer:        os.Stderr,
	})
}
