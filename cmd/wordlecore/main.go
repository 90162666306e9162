// Command wordlecore precomputes the hint matrix for a word list and
// builds a minimum-expected-cost decision tree over it.
package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/bent101/wordlecore/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.WithError(err).Error("wordlecore: command failed")
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "wordlecore",
		Short: "A columnar Wordle deduction engine and decision tree solver",
	}

	root.PersistentFlags().Bool("verbose", false, "enable debug logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		verbose, _ := cmd.Flags().GetBool("verbose")
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	root.AddCommand(newPrecomputeCmd(), newSolveCmd(), newHintCmd())
	return root
}

func bindAndLoad(cmd *cobra.Command) (config.Config, error) {
	v, err := config.New(cmd.Flags())
	if err != nil {
		return config.Config{}, err
	}
	return config.Load(v), nil
}
