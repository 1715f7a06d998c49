// Package sieve generates primes with a base sieve and an interval (segmented) sieve.
package sieve

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrInvalidRange is returned when the sieved interval starts below 2.
	ErrInvalidRange = errors.New("invalid sieve range")
	// ErrBaseCoverage is returned when the base primes do not cover the square root of high.
	ErrBaseCoverage = errors.New("base primes do not cover sqrt(high)")
)

// BasePrimes returns the primes up to floor(sqrt(limit))+1 in ascending order.
func BasePrimes(limit int) []int {
	if limit < 0 {
		limit = 0
	}
	root := isqrt(limit) + 1
	isPrime := make([]bool, root+1)
	for i := 2; i <= root; i++ {
		isPrime[i] = true
	}
	for i := 2; i*i <= root; i++ {
		if !isPrime[i] {
			continue
		}
		for j := i * i; j <= root; j += i {
			isPrime[j] = false
		}
	}
	primes := make([]int, 0, root/2)
	for i := 2; i <= root; i++ {
		if isPrime[i] {
			primes = append(primes, i)
		}
	}
	return primes
}

// Segmented returns the primes in [low, high] in ascending order.
// base must hold, ascending, every prime up to sqrt(high).
func Segmented(low, high int, base []int) ([]int, error) {
	if low < 2 {
		return nil, fmt.Errorf("%w: low %d < 2", ErrInvalidRange, low)
	}
	if high < low {
		return nil, nil
	}
	if err := checkCoverage(base, high); err != nil {
		return nil, err
	}

	composite := make([]bool, high-low+1)
	for _, p := range base {
		if p*p > high {
			break
		}
		start := ((low + p - 1) / p) * p
		if sq := p * p; sq > start {
			start = sq
		}
		for j := start; j <= high; j += p {
			composite[j-low] = true
		}
	}

	primes := make([]int, 0, estimateCount(low, high))
	for i, marked := range composite {
		if !marked {
			primes = append(primes, low+i)
		}
	}
	return primes, nil
}

// checkCoverage fails when some integer in (max(base), isqrt(high)] has no divisor in base,
// which means a prime below sqrt(high) is missing.
func checkCoverage(base []int, high int) error {
	root := isqrt(high)
	largest := 1
	if len(base) > 0 {
		largest = base[len(base)-1]
	}
	for m := largest + 1; m <= root; m++ {
		if !hasDivisor(m, base) {
			return fmt.Errorf("%w: %d is not divisible by any base prime (high %d)", ErrBaseCoverage, m, high)
		}
	}
	return nil
}

func hasDivisor(m int, base []int) bool {
	for _, p := range base {
		if p >= m {
			return false
		}
		if m%p == 0 {
			return true
		}
	}
	return false
}

func isqrt(n int) int {
	if n <= 0 {
		return 0
	}
	r := int(math.Sqrt(float64(n)))
	for r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

func estimateCount(low, high int) int {
	if high < 17 {
		return high - low + 1
	}
	n := float64(high - low + 1)
	return int(n/math.Log(float64(high))*1.2) + 1
}
