// Package model defines shared data structures.
package model

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Start is the smallest odd number analyzed.
	Start = 9
	// UpperBound is the fixed inclusive upper bound of the analysis.
	UpperBound = 1_000_000
)

// Constants lists the odd offsets c in the order the exclusive classification checks them.
var Constants = [4]int{3, 5, 7, 11}

// RefIndex is the index of c=5 in Constants; ratios are taken against its count.
const RefIndex = 1

// Reps holds the representation counts of one number, indexed like Constants.
type Reps [4]int

var (
	// ErrUnknownMode is returned when a mode selection is not recognized.
	ErrUnknownMode = errors.New("unknown mode")
	// ErrUnknownPopulation is returned when a population selection is not recognized.
	ErrUnknownPopulation = errors.New("unknown population")
)

// Mode selects between analyzing one population or all of them.
type Mode int

const (
	// ModeUnset means no mode was selected yet.
	ModeUnset Mode = iota
	// ModeSingle analyzes one selected population.
	ModeSingle
	// ModeAll analyzes every population in turn.
	ModeAll
)

// ParseMode accepts "1"/"single" or "2"/"all".
func ParseMode(s string) (Mode, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "1", "single", "dev", "development":
		return ModeSingle, nil
	case "2", "all", "final":
		return ModeAll, nil
	}
	return ModeUnset, fmt.Errorf("%w %q (expected 1|single or 2|all)", ErrUnknownMode, s)
}

func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeAll:
		return "all"
	default:
		return "unset"
	}
}

// Population selects which odd numbers are analyzed.
type Population int

const (
	// PopulationUnset means no population was selected yet.
	PopulationUnset Population = iota
	// PopulationPrimes keeps odd primes only.
	PopulationPrimes
	// PopulationComposites keeps odd composites only.
	PopulationComposites
	// PopulationOdds keeps every odd number.
	PopulationOdds
)

// Populations lists the populations in report order.
var Populations = []Population{PopulationPrimes, PopulationComposites, PopulationOdds}

// ParsePopulation accepts "1"/"primes", "2"/"composites" or "3"/"odds".
func ParsePopulation(s string) (Population, error) {
	switch strings.TrimSpace(strings.ToLower(s)) {
	case "1", "prime", "primes":
		return PopulationPrimes, nil
	case "2", "composite", "composites":
		return PopulationComposites, nil
	case "3", "odd", "odds", "all":
		return PopulationOdds, nil
	}
	return PopulationUnset, fmt.Errorf("%w %q (expected 1|primes, 2|composites or 3|odds)", ErrUnknownPopulation, s)
}

func (p Population) String() string {
	switch p {
	case PopulationPrimes:
		return "primes"
	case PopulationComposites:
		return "composites"
	case PopulationOdds:
		return "odds"
	default:
		return "unset"
	}
}

// Title is the section name printed before a population's tables.
func (p Population) Title() string {
	switch p {
	case PopulationPrimes:
		return "Odd Prime Numbers"
	case PopulationComposites:
		return "Odd Composite Numbers"
	case PopulationOdds:
		return "All Odd Numbers"
	default:
		return ""
	}
}

// Config selects what the analysis runs.
type Config struct {
	Mode       Mode
	Population Population
	Limit      int
}

// Validate reports whether the config can be run.
func (c Config) Validate() error {
	switch c.Mode {
	case ModeSingle:
		if c.Population == PopulationUnset {
			return fmt.Errorf("population is required in single mode")
		}
	case ModeAll:
	default:
		return fmt.Errorf("mode is required")
	}
	if c.Limit < Start {
		return fmt.Errorf("limit must be >= %d", Start)
	}
	return nil
}
