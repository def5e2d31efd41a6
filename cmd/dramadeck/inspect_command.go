package main

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/dramadeck/internal/dialogue"
)

func newInspectCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect",
		Short: "Show the turns and slide counts without writing the deck",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, proc, err := ctx.newProcessor()
			if err != nil {
				return err
			}

			turns, err := proc.Prepare(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			headers, rows := inspectRows(turns)
			fmt.Fprintln(out, renderTable(
				headers,
				rows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignRight, alignRight, alignRight},
				isTerminal(out),
			))
			return nil
		},
	}
}

func inspectRows(turns []dialogue.Turn) ([]string, [][]string) {
	headers := []string{"Turn", "Native", "Foreign", "Slides", "Longest native", "Longest foreign"}

	rows := make([][]string, 0, len(turns)+1)
	slides := 0
	for i, turn := range turns {
		slides += len(turn.Native)
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			turn.Speaker.Native,
			turn.Speaker.Foreign,
			strconv.Itoa(len(turn.Native)),
			strconv.Itoa(longest(turn.Native)),
			strconv.Itoa(longest(turn.Foreign)),
		})
	}
	rows = append(rows, []string{"", "", "total", strconv.Itoa(slides), "", ""})
	return headers, rows
}

// longest returns the rune length of the longest chunk
func longest(chunks []string) int {
	best := 0
	for _, c := range chunks {
		if n := utf8.RuneCountInString(c); n > best {
			best = n
		}
	}
	return best
}
