package main

import (
	"encoding/json"

	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bent101/wordlecore/internal/config"
	"github.com/bent101/wordlecore/internal/matrix"
	"github.com/bent101/wordlecore/internal/search"
	"github.com/bent101/wordlecore/internal/wordlist"
)

func newPrecomputeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "precompute",
		Short: "Precompute and write the dense guess/answer hint matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bindAndLoad(cmd)
			if err != nil {
				return err
			}
			return runPrecompute(cmd, cfg)
		},
	}
	config.BindFlags(cmd.Flags())
	return cmd
}

func runPrecompute(cmd *cobra.Command, cfg config.Config) error {
	guesses, answers, err := wordlist.LoadGuessesAndAnswers(cfg.GuessesPath, cfg.AnswersPath, cfg.WordSize)
	if err != nil {
		return err
	}

	answerTable := search.Build(answers, cfg.Alphabet)

	bar := progressbar.Default(int64(len(guesses)))
	m := matrix.Build(guesses, answerTable, func(done, total int) {
		bar.Add(1)
	})
	bar.Finish()

	logrus.WithFields(logrus.Fields{
		"guesses": m.NumGuesses(),
		"answers": answerTable.Len(),
	}).Info("precompute: hint matrix built")

	enc := json.NewEncoder(cmd.OutOrStdout())
	for gi := range guesses {
		if err := enc.Encode(m.Row(gi)); err != nil {
			return err
		}
	}
	return nil
}
