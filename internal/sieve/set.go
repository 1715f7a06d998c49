package sieve

import "fmt"

// segmentSize is the width of each window sieved by NewSet.
const segmentSize = 1 << 16

// Set is an immutable set of all primes in [2, Limit].
// It keeps both an ascending slice and a membership bitmap.
type Set struct {
	limit  int
	primes []int
	bits   []uint64
}

// NewSet sieves [2, limit] window by window and returns the resulting set.
func NewSet(limit int) (*Set, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: limit %d < 0", ErrInvalidRange, limit)
	}
	s := &Set{
		limit: limit,
		bits:  make([]uint64, limit/64+1),
	}
	base := BasePrimes(limit)
	for low := 2; low <= limit; low += segmentSize {
		high := low + segmentSize - 1
		if high > limit {
			high = limit
		}
		window, err := Segmented(low, high, base)
		if err != nil {
			return nil, fmt.Errorf("sieve [%d, %d]: %w", low, high, err)
		}
		s.primes = append(s.primes, window...)
	}
	for _, p := range s.primes {
		s.bits[p>>6] |= 1 << (uint(p) & 63)
	}
	return s, nil
}

// Limit returns the inclusive upper bound of the set.
func (s *Set) Limit() int {
	return s.limit
}

// Len returns the number of primes in the set.
func (s *Set) Len() int {
	return len(s.primes)
}

// Primes returns the primes in ascending order. The slice must not be modified.
func (s *Set) Primes() []int {
	return s.primes
}

// Contains reports whether n is a prime within the set's range.
func (s *Set) Contains(n int) bool {
	if n < 2 || n > s.limit {
		return false
	}
	return s.bits[n>>6]&(1<<(uint(n)&63)) != 0
}
