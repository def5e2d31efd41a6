package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/dramadeck/internal/speaker"
)

func newSpeakersCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "speakers",
		Short: "List the speaker directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			dir, err := speaker.LoadFile(cfg.Paths.Names, speaker.Options{
				MatchNativeNames: cfg.Speakers.MatchNativeNames,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			names := dir.Names()
			if len(names) == 0 {
				fmt.Fprintf(out, "No speakers in %s\n", cfg.Paths.Names)
				return nil
			}

			rows := make([][]string, 0, len(names))
			for i, name := range names {
				rows = append(rows, []string{strconv.Itoa(i + 1), name.Native, name.Foreign})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Native", "Foreign"},
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft},
				isTerminal(out),
			))
			return nil
		},
	}
}
