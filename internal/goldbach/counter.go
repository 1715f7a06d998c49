// Package goldbach counts prime-pair representations of n - c.
package goldbach

import "github.com/verte-zerg/goldbach/internal/sieve"

// Scanner counts representations by scanning the ascending prime list of a set.
type Scanner struct {
	set *sieve.Set
}

// NewScanner returns a Scanner over set.
func NewScanner(set *sieve.Set) *Scanner {
	return &Scanner{set: set}
}

// Count returns the number of unordered prime pairs {p, q}, p <= q, with p + q = n - c.
// Targets outside [0, set limit] count 0.
func (s *Scanner) Count(n, c int) int {
	target := n - c
	if target < 4 || target > s.set.Limit() {
		return 0
	}
	half := target / 2
	count := 0
	for _, p := range s.set.Primes() {
		if p > half {
			break
		}
		if s.set.Contains(target - p) {
			count++
		}
	}
	return count
}
