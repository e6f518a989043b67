package rule

import "math"

// satAdd returns a+b clamped to [math.MinInt64, math.MaxInt64].
func satAdd(a, b int64) int64 {
	c := a + b
	if b > 0 && c < a {
		return math.MaxInt64
	}
	if b < 0 && c > a {
		return math.MinInt64
	}

	return c
}

// satMul returns a·b clamped to [math.MinInt64, math.MaxInt64].
func satMul(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	// MinInt64 · -1 wraps to MinInt64 and survives the division check below.
	overflow := (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64)
	c := a * b
	if overflow || c/b != a {
		if (a < 0) != (b < 0) {
			return math.MinInt64
		}

		return math.MaxInt64
	}

	return c
}
