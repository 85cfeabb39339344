package valuation

import "math"

// DiscountFactors builds one discount factor per settlement period.
// The first settlement is assumed to occur one full period after "now" plus
// periodsToFirstSettlement additional periods to reach the contract start:
//
//	factor[0] = 1 / (1+rate)^(1 + periodsToFirstSettlement)
//	factor[i] = factor[i-1] / (1+rate)
//
// For rate > 0 the sequence is strictly decreasing; for rate == 0 it is a
// constant 1.
func DiscountFactors(n int, rate, periodsToFirstSettlement float64) []float64 {
	if n <= 0 {
		return nil
	}
	factors := make([]float64, n)
	factors[0] = 1 / math.Pow(1+rate, 1+periodsToFirstSettlement)
	for i := 1; i < n; i++ {
		factors[i] = factors[i-1] / (1 + rate)
	}
	return factors
}
