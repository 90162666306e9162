// Package wordlist loads guess and answer word lists from text files,
// one word per line.
package wordlist

import (
	"bufio"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bent101/wordlecore/internal/word"
)

// Load reads one word per line from path, skipping blank lines, and
// parses every non-blank line as a Word of the given length. A
// malformed line fails the whole load eagerly rather than silently
// dropping the word.
func Load(path string, length int) ([]word.Word, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "wordlist: open %s", path)
	}
	defer file.Close()

	var words []word.Word
	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		w, err := word.Parse(line, length)
		if err != nil {
			return nil, errors.Wrapf(err, "wordlist: %s line %d", path, lineNo)
		}
		words = append(words, w)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "wordlist: reading %s", path)
	}

	return words, nil
}

// LoadGuessesAndAnswers loads both lists and appends any answer word
// missing from the guess list onto the end of it, so every answer is
// always a legal guess. Returns the (possibly extended) guess list and
// the answer list, unmodified relative to the file.
func LoadGuessesAndAnswers(guessesPath, answersPath string, length int) (guesses, answers []word.Word, err error) {
	guesses, err = Load(guessesPath, length)
	if err != nil {
		return nil, nil, err
	}
	answers, err = Load(answersPath, length)
	if err != nil {
		return nil, nil, err
	}

	present := make(map[string]bool, len(guesses))
	for _, g := range guesses {
		present[g.String()] = true
	}

	appended := 0
	for _, a := range answers {
		if !present[a.String()] {
			guesses = append(guesses, a)
			present[a.String()] = true
			appended++
		}
	}

	logrus.WithFields(logrus.Fields{
		"guesses":  len(guesses),
		"answers":  len(answers),
		"appended": appended,
	}).Info("wordlist: loaded word lists")

	return guesses, answers, nil
}
