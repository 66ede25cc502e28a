package seqdb

// primeSizer picks prime table capacities within [min, max].
type primeSizer struct {
	min int
	max int
}

var defaultSizer = primeSizer{min: 101, max: 99991}

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

// next returns the first prime strictly greater than from, never below min.
// It returns max when no prime below max qualifies.
func (ps primeSizer) next(from int) int {
	if from < ps.min {
		from = ps.min - 1
	}
	for i := from + 1; i < ps.max; i++ {
		if isPrime(i) {
			return i
		}
	}
	return ps.max
}

// clamp turns a capacity hint into a prime capacity within the bounds.
func (ps primeSizer) clamp(hint int) int {
	switch {
	case hint < ps.min:
		return ps.min
	case hint > ps.max:
		return ps.max
	case isPrime(hint):
		return hint
	default:
		return ps.next(hint)
	}
}

func (ps primeSizer) valid() bool {
	return ps.min >= 2 && ps.min <= ps.max && isPrime(ps.min) && isPrime(ps.max)
}
