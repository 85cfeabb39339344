package timeutil

import (
	"math"
	"time"

	"ppa-valuation/internal/model"
)

// Resample aggregates an hourly series into settlement-period buckets by
// summation. Hourly is the identity transform. The output is indexed by
// bucket start and preserves the input's chronological order; resampling is
// a lossy sum, not an average. Non-finite values count as zero in their
// bucket (missing-data policy), they do not poison the period.
func Resample(s model.Series, f Frequency) (model.Series, error) {
	if f == Hourly {
		return s, nil
	}
	if _, err := daysPerPeriod(f); err != nil {
		return model.Series{}, err
	}

	var (
		times  []time.Time
		values []float64
	)
	for i, t := range s.Times {
		b := bucketStart(t, f)
		if len(times) == 0 || !times[len(times)-1].Equal(b) {
			times = append(times, b)
			values = append(values, 0)
		}
		if v := s.Values[i]; !math.IsNaN(v) && !math.IsInf(v, 0) {
			values[len(values)-1] += v
		}
	}
	return model.Series{Times: times, Values: values}, nil
}

// bucketStart maps a timestamp to the start of its settlement period.
func bucketStart(t time.Time, f Frequency) time.Time {
	switch f {
	case Daily:
		return DayStart(t)
	case Weekly:
		// ISO-style week bucket starting Monday.
		d := DayStart(t)
		offset := (int(d.Weekday()) + 6) % 7
		return d.AddDate(0, 0, -offset)
	case Monthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case Quarterly:
		q := (int(t.Month()) - 1) / 3
		return time.Date(t.Year(), time.Month(q*3+1), 1, 0, 0, 0, 0, t.Location())
	default: // Annually, Yearly
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	}
}
