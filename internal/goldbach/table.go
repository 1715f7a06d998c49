package goldbach

import "github.com/verte-zerg/goldbach/internal/sieve"

// Table holds the representation count of every target in [0, limit],
// built once by enumerating prime pairs p <= q with p + q <= limit.
type Table struct {
	counts []int32
}

// NewTable precomputes representation counts for all targets up to the set's limit.
func NewTable(set *sieve.Set) *Table {
	limit := set.Limit()
	counts := make([]int32, limit+1)
	primes := set.Primes()
	for i, p := range primes {
		if 2*p > limit {
			break
		}
		for _, q := range primes[i:] {
			sum := p + q
			if sum > limit {
				break
			}
			counts[sum]++
		}
	}
	return &Table{counts: counts}
}

// Count returns the number of unordered prime pairs summing to n - c.
// Targets outside the table count 0.
func (t *Table) Count(n, c int) int {
	target := n - c
	if target < 0 || target >= len(t.counts) {
		return 0
	}
	return int(t.counts[target])
}
