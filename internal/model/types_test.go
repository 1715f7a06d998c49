package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	cases := map[string]Mode{"1": ModeSingle, "single": ModeSingle, " 2 ": ModeAll, "ALL": ModeAll}
	for in, want := range cases {
		got, err := ParseMode(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseMode("3")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestParsePopulation(t *testing.T) {
	cases := map[string]Population{
		"1":          PopulationPrimes,
		"primes":     PopulationPrimes,
		"2":          PopulationComposites,
		"Composites": PopulationComposites,
		"3":          PopulationOdds,
		"odds":       PopulationOdds,
	}
	for in, want := range cases {
		got, err := ParsePopulation(in)
		assert.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParsePopulation("")
	assert.ErrorIs(t, err, ErrUnknownPopulation)
}

func TestPopulationTitles(t *testing.T) {
	assert.Equal(t, "Odd Prime Numbers", PopulationPrimes.Title())
	assert.Equal(t, "Odd Composite Numbers", PopulationComposites.Title())
	assert.Equal(t, "All Odd Numbers", PopulationOdds.Title())
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, Config{Mode: ModeAll, Limit: UpperBound}.Validate())
	assert.NoError(t, Config{Mode: ModeSingle, Population: PopulationOdds, Limit: UpperBound}.Validate())
	assert.Error(t, Config{Mode: ModeSingle, Limit: UpperBound}.Validate())
	assert.Error(t, Config{Limit: UpperBound}.Validate())
	assert.Error(t, Config{Mode: ModeAll, Limit: Start - 1}.Validate())
}
