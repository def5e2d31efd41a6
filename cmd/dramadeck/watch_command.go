package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/dramadeck/internal/watcher"
)

func newWatchCommand(ctx *commandContext) *cobra.Command {
	var output string
	var format string
	var compile bool

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the deck whenever an input file changes",
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
			log := ctx.logger()

			runCtx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			// A broken input at startup is reported but does not stop watching.
			if err := proc.Process(runCtx); err != nil {
				log.Error(runCtx, "Initial build failed: %v", err)
			}

			inputs := []string{cfg.Paths.Names, cfg.Paths.Native, cfg.Paths.Foreign}
			debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
			w, err := watcher.New(inputs, proc.HandleChange, log, debounce)
			if err != nil {
				return err
			}
			defer w.Stop()

			log.Info(runCtx, "Watching %s, %s, %s. Press Ctrl+C to stop", inputs[0], inputs[1], inputs[2])

			err = w.Start(runCtx)
			if errors.Is(err, context.Canceled) {
				log.Info(runCtx, "Shutdown signal received")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Override paths.output")
	cmd.Flags().StringVar(&format, "format", "", "Override output.format (beamer or docx)")
	cmd.Flags().BoolVar(&compile, "compile", false, "Run the LaTeX compiler after each rebuild")

	return cmd
}
