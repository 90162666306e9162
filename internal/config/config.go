// Package config binds the solver's tunables to flags and a config
// file via pflag/viper.
package config

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds every tunable the CLI exposes.
type Config struct {
	WordSize    int
	Alphabet    int
	MaxDepth    int
	MaxCost     float64
	GuessesPath string
	AnswersPath string
	TreeOutPath string
}

// Defaults match a classic five-letter, 26-letter board, six guesses,
// and the cost bound the reference solver ships with.
const (
	DefaultWordSize = 5
	DefaultAlphabet = 26
	DefaultMaxDepth = 6
	DefaultMaxCost  = 3.0402
)

// BindFlags registers every tunable on fs under its canonical flag
// name, ready for viper.BindPFlags.
func BindFlags(fs *pflag.FlagSet) {
	fs.Int("word-size", DefaultWordSize, "word length")
	fs.Int("alphabet", DefaultAlphabet, "alphabet size")
	fs.Int("max-depth", DefaultMaxDepth, "maximum number of guesses allowed")
	fs.Float64("max-cost", DefaultMaxCost, "maximum allowed expected guess count")
	fs.String("guesses", "io/guesses.txt", "path to the allowed-guesses word list")
	fs.String("answers", "io/answers.txt", "path to the possible-answers word list")
	fs.String("tree-out", "", "path to write the computed decision tree as JSON (default: stdout)")
}

// Load reads bound flags and any matching environment variables /
// config file entries via v, returning a populated Config.
func Load(v *viper.Viper) Config {
	return Config{
		WordSize:    v.GetInt("word-size"),
		Alphabet:    v.GetInt("alphabet"),
		MaxDepth:    v.GetInt("max-depth"),
		MaxCost:     v.GetFloat64("max-cost"),
		GuessesPath: v.GetString("guesses"),
		AnswersPath: v.GetString("answers"),
		TreeOutPath: v.GetString("tree-out"),
	}
}

// New builds a viper instance with flags bound, environment variables
// enabled under the WORDLECORE_ prefix, and an optional config file
// searched for at the usual locations.
func New(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("WORDLECORE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetConfigName("wordlecore")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/wordlecore")

	if err := v.BindPFlags(fs); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, err
		}
	}

	return v, nil
}
