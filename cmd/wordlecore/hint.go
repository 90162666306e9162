package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/bent101/wordlecore/internal/hint"
	"github.com/bent101/wordlecore/internal/word"
)

func newHintCmd() *cobra.Command {
	wordSize := 0
	cmd := &cobra.Command{
		Use:   "hint <guess> <answer>",
		Short: "Derive the hint a guess would produce against an answer",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			size := wordSize
			if size == 0 {
				size = len(args[0])
			}
			guess, err := word.Parse(args[0], size)
			if err != nil {
				return errors.Wrap(err, "hint: guess")
			}
			answer, err := word.Parse(args[1], size)
			if err != nil {
				return errors.Wrap(err, "hint: answer")
			}
			h := hint.Derive(guess, answer)
			fmt.Fprintf(cmd.OutOrStdout(), "%s (id=%d)\n", h.String(), h.ID())
			return nil
		},
	}
	cmd.Flags().IntVar(&wordSize, "word-size", 0, "word length (default: length of the guess argument)")
	return cmd
}
