package sieve

// Class is the classification of a single positive integer.
type Class uint8

const (
	// Unit is the value 1, which is neither prime nor composite.
	Unit Class = iota
	// Prime has no divisor other than 1 and itself.
	Prime
	// Composite has at least one divisor other than 1 and itself.
	Composite
)

// String implements fmt.Stringer.
func (c Class) String() string {
	switch c {
	case Unit:
		return "unit"
	case Prime:
		return "prime"
	case Composite:
		return "composite"
	default:
		return "unknown"
	}
}

// Scan classifies every integer in [1, n] in increasing order, calling
// visit once per integer. Each prime found is inserted into primes, so on
// return primes holds every prime <= n.
//
// primes must be empty or hold only primes, as left by an earlier Scan.
// A nil visit is allowed when only the prime set is wanted.
func Scan(n uint64, primes *Set, visit func(i uint64, c Class)) {
	if visit == nil {
		visit = func(uint64, Class) {}
	}
	// i wraps to zero after the largest uint64, which also ends the loop.
	for i := uint64(1); i != 0 && i <= n; i++ {
		c := classify(i, primes)
		if c == Prime {
			primes.Insert(i)
		}
		visit(i, c)
	}
}

// classify trial-divides i by the known primes in ascending order. It
// stops once p*p exceeds i, written as p > i/p to stay clear of overflow.
func classify(i uint64, primes *Set) Class {
	if i == 1 {
		return Unit
	}
	for _, p := range primes.values {
		if p > i/p {
			break
		}
		if i%p == 0 {
			return Composite
		}
	}
	return Prime
}

// Classify returns the classification of 1..n; element k describes k+1.
func Classify(n uint64) []Class {
	classes := make([]Class, 0, n)
	Scan(n, NewSet(), func(_ uint64, c Class) {
		classes = append(classes, c)
	})
	return classes
}

// Primes returns the set of all primes <= n.
func Primes(n uint64) *Set {
	primes := NewSet()
	Scan(n, primes, nil)
	return primes
}
