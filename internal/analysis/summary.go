package analysis

import (
	"math"
	"sort"
	"time"

	"ppa-valuation/internal/model"
)

// MarketSummary is a tenor-level view of the price forecast a structurer can
// rank scenarios by. It does not depend on the contract terms; CapturePrice
// and CaptureRate additionally weight by the generation profile.
type MarketSummary struct {
	Start time.Time
	End   time.Time

	Count int

	MinPrice  float64
	MaxPrice  float64
	MeanPrice float64
	P05Price  float64
	P95Price  float64

	SpreadP95P05 float64

	// CapturePrice is the generation-weighted average market price ($/MWh):
	// what the project actually earns per MWh at market.
	CapturePrice float64
	// CaptureRate is CapturePrice / MeanPrice. Below 1 means the asset
	// generates disproportionately in cheap hours (typical for solar).
	CaptureRate float64
}

// Summarize computes price statistics over the market series, optionally
// weighted by a generation profile of the same length. Pass an empty
// generation series to skip the capture metrics. Non-finite points are
// skipped everywhere.
func Summarize(market, generation model.Series) MarketSummary {
	s := MarketSummary{}
	if market.Len() == 0 {
		return s
	}
	s.Start = market.Times[0]
	s.End = market.Times[market.Len()-1]

	sum := 0.0
	minv := math.Inf(1)
	maxv := math.Inf(-1)
	vals := make([]float64, 0, market.Len())
	for _, v := range market.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		vals = append(vals, v)
		sum += v
		if v < minv {
			minv = v
		}
		if v > maxv {
			maxv = v
		}
	}
	if len(vals) == 0 {
		return s
	}
	s.Count = len(vals)

	sort.Float64s(vals)
	s.MinPrice = minv
	s.MaxPrice = maxv
	s.MeanPrice = sum / float64(len(vals))
	s.P05Price = percentileSorted(vals, 0.05)
	s.P95Price = percentileSorted(vals, 0.95)
	s.SpreadP95P05 = s.P95Price - s.P05Price

	if generation.Len() == market.Len() {
		s.CapturePrice = capturePrice(market, generation)
		if s.MeanPrice != 0 {
			s.CaptureRate = s.CapturePrice / s.MeanPrice
		}
	}
	return s
}

// capturePrice is sum(gen_i * price_i) / sum(gen_i) over finite pairs.
func capturePrice(market, generation model.Series) float64 {
	num := 0.0
	den := 0.0
	for i, p := range market.Values {
		g := generation.Values[i]
		if math.IsNaN(p) || math.IsInf(p, 0) || math.IsNaN(g) || math.IsInf(g, 0) {
			continue
		}
		num += g * p
		den += g
	}
	if den == 0 {
		return 0
	}
	return num / den
}

func percentileSorted(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	// Linear interpolation between order stats.
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	frac := pos - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}
