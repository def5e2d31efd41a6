package main

import (
	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/dramadeck/internal/config"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var output string
	var format string
	var compile bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the deck once",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyOutputFlags(cfg, cmd, output, format, compile); err != nil {
				return err
			}

			_, proc, err := ctx.newProcessor()
			if err != nil {
				return err
			}
			return proc.Process(cmd.Context())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Override paths.output")
	cmd.Flags().StringVar(&format, "format", "", "Override output.format (beamer or docx)")
	cmd.Flags().BoolVar(&compile, "compile", false, "Run the LaTeX compiler after writing the deck")

	return cmd
}

// applyOutputFlags copies explicitly set flags into cfg and revalidates it
func applyOutputFlags(cfg *config.Config, cmd *cobra.Command, output, format string, compile bool) error {
	if cmd.Flags().Changed("output") {
		cfg.Paths.Output = output
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = format
	}
	if cmd.Flags().Changed("compile") {
		cfg.Compile.Enabled = compile
	}
	return cfg.Validate()
}
