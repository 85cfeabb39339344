package model

import (
	"errors"
	"time"
)

// Series is an hourly (or coarser, after resampling) time-indexed value
// sequence. Times and Values are parallel slices of equal length, sorted
// ascending by time. This is the common currency between the generation
// profile, the market forecast, the PPA schedule and derived cash flows.
type Series struct {
	Times  []time.Time
	Values []float64
}

// NewSeries builds a series from parallel slices.
func NewSeries(times []time.Time, values []float64) (Series, error) {
	if len(times) != len(values) {
		return Series{}, errors.New("times and values must be of equal length")
	}
	return Series{Times: times, Values: values}, nil
}

// Flat builds a series with a single value broadcast over every timestamp.
func Flat(times []time.Time, value float64) Series {
	values := make([]float64, len(times))
	for i := range values {
		values[i] = value
	}
	return Series{Times: times, Values: values}
}

func (s Series) Len() int { return len(s.Values) }

// Window returns the sub-series with from <= t <= to, both ends inclusive.
// Timestamps outside the window are dropped; the input is assumed sorted.
func (s Series) Window(from, to time.Time) Series {
	lo := 0
	for lo < len(s.Times) && s.Times[lo].Before(from) {
		lo++
	}
	hi := len(s.Times)
	for hi > lo && s.Times[hi-1].After(to) {
		hi--
	}
	return Series{Times: s.Times[lo:hi], Values: s.Values[lo:hi]}
}

// Scale returns a copy with every value multiplied by factor.
func (s Series) Scale(factor float64) Series {
	out := Series{Times: s.Times, Values: make([]float64, len(s.Values))}
	for i, v := range s.Values {
		out.Values[i] = v * factor
	}
	return out
}

// Clone returns a deep copy. Useful when a caller wants to mutate a derived
// series without touching the source.
func (s Series) Clone() Series {
	out := Series{
		Times:  make([]time.Time, len(s.Times)),
		Values: make([]float64, len(s.Values)),
	}
	copy(out.Times, s.Times)
	copy(out.Values, s.Values)
	return out
}
