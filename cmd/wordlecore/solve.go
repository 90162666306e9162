package main

import (
	"os"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bent101/wordlecore/internal/config"
	"github.com/bent101/wordlecore/internal/matrix"
	"github.com/bent101/wordlecore/internal/search"
	"github.com/bent101/wordlecore/internal/solver"
	"github.com/bent101/wordlecore/internal/wordlist"
)

var errNoStrategy = errors.New("wordlecore: no decision tree satisfies the given max_depth/max_cost")

func newSolveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Build a minimum expected-cost decision tree over the full answer set",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := bindAndLoad(cmd)
			if err != nil {
				return err
			}
			return runSolve(cmd, cfg)
		},
	}
	config.BindFlags(cmd.Flags())
	return cmd
}

func runSolve(cmd *cobra.Command, cfg config.Config) error {
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

	s := solver.New(m, guesses, answers)

	candidates := make([]int, len(answers))
	for i := range candidates {
		candidates[i] = i
	}

	logrus.WithFields(logrus.Fields{
		"candidates": len(candidates),
		"max_depth":  cfg.MaxDepth,
		"max_cost":   cfg.MaxCost,
	}).Info("solve: starting search")

	tree, ok := s.Solve(candidates, 0, cfg.MaxDepth, cfg.MaxCost, nil)
	if !ok {
		logrus.Error("solve: no strategy satisfies max_depth and max_cost")
		return errNoStrategy
	}

	logrus.WithField("est_cost", tree.EstCost).Info("solve: found a strategy")

	out, err := s.MarshalTree(tree, true)
	if err != nil {
		return err
	}

	if cfg.TreeOutPath == "" {
		_, err = cmd.OutOrStdout().Write(append(out, '\n'))
		return err
	}
	return os.WriteFile(cfg.TreeOutPath, out, 0o644)
}
