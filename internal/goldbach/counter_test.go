package goldbach

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/goldbach/internal/sieve"
)

func isPrime(n int) bool {
	if n < 2 {
		return false
	}
	for i := 2; i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}

func bruteForce(target int) int {
	count := 0
	for p := 2; p <= target/2; p++ {
		if isPrime(p) && isPrime(target-p) {
			count++
		}
	}
	return count
}

func newSet(t *testing.T, limit int) *sieve.Set {
	t.Helper()
	set, err := sieve.NewSet(limit)
	require.NoError(t, err)
	return set
}

func TestScannerKnownValues(t *testing.T) {
	s := NewScanner(newSet(t, 100))
	cases := []struct {
		n, c, want int
	}{
		{11, 3, 1},  // 8 = 3+5
		{11, 5, 1},  // 6 = 3+3
		{11, 7, 1},  // 4 = 2+2
		{11, 11, 0}, // 0
		{9, 11, 0},  // negative target
		{15, 5, 2},  // 10 = 3+7 = 5+5
		{33, 3, 3},  // 30 = 7+23 = 11+19 = 13+17
		{16, 5, 0},  // 11 has no pair
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, s.Count(tc.n, tc.c), "n=%d c=%d", tc.n, tc.c)
	}
}

func TestScannerMatchesBruteForce(t *testing.T) {
	const limit = 3000
	s := NewScanner(newSet(t, limit))
	for n := 9; n <= limit; n += 2 {
		for _, c := range []int{3, 5, 7, 11} {
			require.Equal(t, bruteForce(n-c), s.Count(n, c), "n=%d c=%d", n, c)
		}
	}
}

func TestTableMatchesScanner(t *testing.T) {
	const limit = 20_000
	set := newSet(t, limit)
	s := NewScanner(set)
	tbl := NewTable(set)
	for n := 0; n <= limit; n++ {
		for _, c := range []int{3, 5, 7, 11} {
			require.Equal(t, s.Count(n, c), tbl.Count(n, c), "n=%d c=%d", n, c)
		}
	}
}

func TestTableOutOfRange(t *testing.T) {
	tbl := NewTable(newSet(t, 50))
	assert.Zero(t, tbl.Count(5, 11))
	assert.Zero(t, tbl.Count(100, 3))
	assert.Equal(t, bruteForce(48), tbl.Count(51, 3))
}

func TestCountersAtUpperBound(t *testing.T) {
	set := newSet(t, 1_000_000)
	s := NewScanner(set)
	tbl := NewTable(set)
	for _, n := range []int{9, 999_997, 999_999} {
		for _, c := range []int{3, 5, 7, 11} {
			assert.Equal(t, s.Count(n, c), tbl.Count(n, c), "n=%d c=%d", n, c)
		}
	}
	assert.Equal(t, bruteForce(999_996), s.Count(999_999, 3))
}
