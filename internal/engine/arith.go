package engine

import "math"

// addSat adds two ints, pinning the result at the int range instead of
// wrapping
func addSat(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	}
	return a + b
}

// mulSat multiplies two non-negative ints, pinning at math.MaxInt
func mulSat(a, n int) int {
	if a == 0 || n == 0 {
		return 0
	}
	if a > math.MaxInt/n {
		return math.MaxInt
	}
	return a * n
}
