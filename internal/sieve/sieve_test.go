package sieve

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isPrimeNaive checks every candidate divisor up to n-1.
func isPrimeNaive(n uint64) bool {
	if n < 2 {
		return false
	}
	for d := uint64(2); d < n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func TestPrimes_KnownBounds(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		bound     uint64
		wantCount int
		wantLast  uint64
		wantFirst []uint64
	}{
		{name: "zero", bound: 0, wantCount: 0},
		{name: "one", bound: 1, wantCount: 0},
		{name: "two", bound: 2, wantCount: 1, wantLast: 2, wantFirst: []uint64{2}},
		{name: "ten", bound: 10, wantCount: 4, wantLast: 7, wantFirst: []uint64{2, 3, 5, 7}},
		{name: "hundred", bound: 100, wantCount: 25, wantLast: 97},
		{name: "documented default", bound: 2000, wantCount: 303, wantLast: 1999},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			primes := Primes(tc.bound)

			require.Equal(t, tc.wantCount, primes.Len())
			last, ok := primes.Last()
			assert.Equal(t, tc.wantCount > 0, ok)
			assert.Equal(t, tc.wantLast, last)
			if tc.wantFirst != nil {
				assert.Equal(t, tc.wantFirst, primes.Values()[:len(tc.wantFirst)])
			}
		})
	}
}

func TestPrimes_MatchesNaiveDefinition(t *testing.T) {
	t.Parallel()

	const bound = 3000
	primes := Primes(bound)

	var want []uint64
	for n := uint64(0); n <= bound; n++ {
		if isPrimeNaive(n) {
			want = append(want, n)
		}
	}
	require.Equal(t, want, primes.Values())
}

func TestClassify(t *testing.T) {
	t.Parallel()

	got := Classify(12)

	want := []Class{
		Unit, Prime, Prime, Composite, Prime, Composite,
		Prime, Composite, Composite, Composite, Prime, Composite,
	}
	require.Equal(t, want, got)
	assert.Empty(t, Classify(0))
	assert.Equal(t, []Class{Unit}, Classify(1))
}

func TestScan_VisitsInOrderAndFillsSet(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	primes := NewSet()
	var visited []uint64

	// --- Act ---
	Scan(30, primes, func(i uint64, c Class) {
		visited = append(visited, i)
		// The set must already contain i when a prime is reported.
		assert.Equal(t, c == Prime, primes.Contains(i), "i=%d", i)
	})

	// --- Assert ---
	require.Len(t, visited, 30)
	assert.True(t, slices.IsSorted(visited))
	assert.Equal(t, uint64(1), visited[0])
	assert.Equal(t, []uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}, primes.Values())
}

func TestScan_ReusesEarlierPrimes(t *testing.T) {
	t.Parallel()

	primes := Primes(50)
	Scan(20, primes, nil)

	assert.Equal(t, Primes(50).Values(), primes.Values(), "rescanning a smaller range must not disturb the set")
}

// Every composite has a prime factor no larger than its square root. The
// early exit must never trigger before that factor is tested.
func TestClassify_EarlyExitNeverSkipsDivisor(t *testing.T) {
	t.Parallel()

	primes := NewSet()
	for i := uint64(1); i <= 5000; i++ {
		c := classify(i, primes)
		if c == Prime {
			primes.Insert(i)
		}
		if i < 2 || isPrimeNaive(i) {
			continue
		}

		require.Equal(t, Composite, c, "i=%d", i)
		var found bool
		for p := range primes.All() {
			if p*p > i {
				break
			}
			if i%p == 0 {
				found = true
				break
			}
		}
		require.True(t, found, "composite %d has no prime factor <= sqrt", i)
	}
}

func TestClass_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "unit", Unit.String())
	assert.Equal(t, "prime", Prime.String())
	assert.Equal(t, "composite", Composite.String())
	assert.Equal(t, "unknown", Class(42).String())
}
