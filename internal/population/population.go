// Package population builds the sequences of odd numbers that are analyzed.
package population

import "github.com/verte-zerg/goldbach/internal/model"

// Membership reports whether n is prime.
type Membership interface {
	Contains(n int) bool
}

// Select returns, in ascending order, the odd numbers in [start, limit] that belong to pop.
// An even start is rounded up to the next odd number.
func Select(pop model.Population, start, limit int, primes Membership) []int {
	if start%2 == 0 {
		start++
	}
	if limit < start {
		return nil
	}
	out := make([]int, 0, (limit-start)/2+1)
	for n := start; n <= limit; n += 2 {
		if keep(pop, primes.Contains(n)) {
			out = append(out, n)
		}
	}
	return out
}

func keep(pop model.Population, isPrime bool) bool {
	switch pop {
	case model.PopulationPrimes:
		return isPrime
	case model.PopulationComposites:
		return !isPrime
	case model.PopulationOdds:
		return true
	default:
		return false
	}
}
