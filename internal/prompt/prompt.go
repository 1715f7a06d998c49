// Package prompt asks the user for the analysis mode and population.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/verte-zerg/goldbach/internal/model"
)

// ErrCancelled is returned when the user aborts a selection.
var ErrCancelled = errors.New("selection cancelled")

const (
	modeMenu = "Select analysis mode:\n" +
		"1 - Development mode (choose one case)\n" +
		"2 - Final mode (show all cases)\n" +
		"Your choice: "
	populationMenu = "Select number type:\n" +
		"1 - Odd primes only\n" +
		"2 - Odd composites only\n" +
		"3 - All odd numbers\n" +
		"Your choice: "
)

// Selector supplies the two selections of an analysis run.
type Selector interface {
	Mode() (model.Mode, error)
	Population() (model.Population, error)
}

// Lines reads whitespace-separated answers from a plain input stream.
type Lines struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewLines returns a Selector that prints menus to out and reads answers from in.
func NewLines(in io.Reader, out io.Writer) *Lines {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Lines{in: scanner, out: out}
}

// Mode implements Selector.
func (l *Lines) Mode() (model.Mode, error) {
	answer, err := l.ask(modeMenu)
	if err != nil {
		return model.ModeUnset, err
	}
	return model.ParseMode(answer)
}

// Population implements Selector.
func (l *Lines) Population() (model.Population, error) {
	answer, err := l.ask(populationMenu)
	if err != nil {
		return model.PopulationUnset, err
	}
	return model.ParsePopulation(answer)
}

func (l *Lines) ask(menu string) (string, error) {
	if _, err := fmt.Fprint(l.out, menu); err != nil {
		return "", fmt.Errorf("failed to write prompt: %w", err)
	}
	if !l.in.Scan() {
		if err := l.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read answer: %w", err)
		}
		return "", fmt.Errorf("%w: no input", ErrCancelled)
	}
	return l.in.Text(), nil
}
