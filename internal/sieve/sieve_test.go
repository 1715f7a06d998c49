package sieve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isPrimeTrial(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 {
		return false
	}
	for i := 3; i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func primesUpTo(limit int) []int {
	var out []int
	for i := 2; i <= limit; i++ {
		if isPrimeTrial(i) {
			out = append(out, i)
		}
	}
	return out
}

func TestBasePrimesMatchesTrialDivision(t *testing.T) {
	for _, limit := range []int{0, 1, 4, 30, 100, 1009, 1_000_000} {
		root := isqrt(limit) + 1
		assert.Equal(t, primesUpTo(root), nonNil(BasePrimes(limit)), "limit %d", limit)
	}
}

func TestBasePrimesSmallValues(t *testing.T) {
	assert.Equal(t, []int{2, 3, 5}, BasePrimes(30))
	assert.Equal(t, []int{2, 3, 5, 7, 11}, BasePrimes(100))
	assert.Equal(t, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31}, BasePrimes(1009))
}

func TestSegmentedMatchesTrialDivision(t *testing.T) {
	ranges := [][2]int{
		{9, 9},
		{9, 9999},
		{2, 2},
		{2, 100},
		{90, 97},
		{999_000, 1_000_000},
	}
	base := BasePrimes(1_000_000)
	for _, r := range ranges {
		got, err := Segmented(r[0], r[1], base)
		require.NoError(t, err)
		var want []int
		for n := r[0]; n <= r[1]; n++ {
			if isPrimeTrial(n) {
				want = append(want, n)
			}
		}
		assert.Equal(t, nonNil(want), nonNil(got), "range [%d, %d]", r[0], r[1])
	}
}

func TestSegmentedEmptyRange(t *testing.T) {
	got, err := Segmented(10, 9, BasePrimes(10))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSegmentedRejectsLowBelowTwo(t *testing.T) {
	_, err := Segmented(1, 10, BasePrimes(10))
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestSegmentedRejectsInsufficientBase(t *testing.T) {
	_, err := Segmented(2, 10_000, []int{2, 3, 5, 7})
	assert.ErrorIs(t, err, ErrBaseCoverage)

	_, err = Segmented(2, 100, nil)
	assert.ErrorIs(t, err, ErrBaseCoverage)

	// Primes up to 7 cover sqrt(120) since 8, 9 and 10 are composite.
	_, err = Segmented(2, 120, []int{2, 3, 5, 7})
	assert.NoError(t, err)
}

func TestNewSetMembership(t *testing.T) {
	const limit = 200_000
	set, err := NewSet(limit)
	require.NoError(t, err)
	assert.Equal(t, limit, set.Limit())
	assert.Equal(t, 17984, set.Len())

	for n := -1; n <= 3000; n++ {
		assert.Equal(t, isPrimeTrial(n), set.Contains(n), "n=%d", n)
	}
	assert.False(t, set.Contains(limit+1))

	primes := set.Primes()
	for i := 1; i < len(primes); i++ {
		require.Less(t, primes[i-1], primes[i])
	}
	assert.Equal(t, 2, primes[0])
	assert.Equal(t, 199_999, primes[len(primes)-1])
}

func TestNewSetFullRange(t *testing.T) {
	set, err := NewSet(1_000_000)
	require.NoError(t, err)
	assert.Equal(t, 78498, set.Len())
	assert.True(t, set.Contains(999_983))
	assert.False(t, set.Contains(999_999))
}

func TestIsqrt(t *testing.T) {
	cases := map[int]int{0: 0, 1: 1, 3: 1, 4: 2, 99: 9, 100: 10, 1_000_000: 1000, 999_999: 999}
	for n, want := range cases {
		assert.Equal(t, want, isqrt(n), "n=%d", n)
	}
}

func nonNil(s []int) []int {
	if s == nil {
		return []int{}
	}
	return s
}
