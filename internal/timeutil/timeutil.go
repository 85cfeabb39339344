// Package timeutil holds the calendar and compounding arithmetic shared by
// the valuation engine: contract-day normalization, settlement frequencies,
// effective-annual to periodic rate conversion, compounding-period counting
// and series resampling. Everything here is a pure function.
package timeutil

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// Frequency is the settlement/compounding periodicity. It is a closed set;
// every dispatch on it is an exhaustive switch that fails with
// ErrUnknownFrequency for anything outside the set.
type Frequency string

const (
	Hourly    Frequency = "hourly"
	Daily     Frequency = "daily"
	Weekly    Frequency = "weekly"
	Monthly   Frequency = "monthly"
	Quarterly Frequency = "quarterly"
	Annually  Frequency = "annually"
	// Yearly is an accepted alias for Annually.
	Yearly Frequency = "yearly"
)

// ErrUnknownFrequency is returned for any key outside the closed set above.
var ErrUnknownFrequency = errors.New("unknown settlement frequency")

// Frequencies lists the canonical keys, finest first. Yearly is omitted
// because it is an alias.
func Frequencies() []Frequency {
	return []Frequency{Hourly, Daily, Weekly, Monthly, Quarterly, Annually}
}

// PeriodsPerYear returns the number of compounding periods in one year.
func PeriodsPerYear(f Frequency) (float64, error) {
	switch f {
	case Hourly:
		return 8760, nil
	case Daily:
		return 365.25, nil
	case Weekly:
		return 52, nil
	case Monthly:
		return 12, nil
	case Quarterly:
		return 4, nil
	case Annually, Yearly:
		return 1, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFrequency, f)
	}
}

// PeriodicRate converts an effective annual rate (decimal) into the rate of
// one compounding period: (1+annual)^(1/N) - 1.
func PeriodicRate(annual float64, f Frequency) (float64, error) {
	n, err := PeriodsPerYear(f)
	if err != nil {
		return 0, err
	}
	return math.Pow(1+annual, 1/n) - 1, nil
}

// daysPerPeriod is the fixed calendar approximation used when counting
// elapsed periods. Hourly is handled separately (exact hours).
func daysPerPeriod(f Frequency) (float64, error) {
	switch f {
	case Daily:
		return 1, nil
	case Weekly:
		return 7, nil
	case Monthly:
		return 30.5, nil
	case Quarterly:
		return 91, nil
	case Annually, Yearly:
		return 365.25, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFrequency, f)
	}
}

// PeriodsBetween counts compounding periods elapsed from now to target.
// Hourly counts whole hours; other frequencies divide whole elapsed days by
// the fixed days-per-period table, keeping the fractional remainder.
// A target in the past counts as zero periods.
func PeriodsBetween(now, target time.Time, f Frequency) (float64, error) {
	diff := target.Sub(now)

	var periods float64
	if f == Hourly {
		periods = math.Floor(diff.Hours())
	} else {
		per, err := daysPerPeriod(f)
		if err != nil {
			return 0, err
		}
		periods = math.Floor(diff.Hours()/24) / per
	}
	if periods < 0 {
		periods = 0
	}
	return periods, nil
}

// PeriodsUntil is PeriodsBetween anchored at the wall clock.
func PeriodsUntil(target time.Time, f Frequency) (float64, error) {
	return PeriodsBetween(time.Now(), target, f)
}

// DayStart normalizes a date to hour 00:00 of its calendar day.
func DayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DayEnd normalizes a date to hour 23:00 of its calendar day, the last hour
// of an hourly tenor ending on that day.
func DayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 0, 0, 0, t.Location())
}

// ParseDay parses a calendar day in YYYY-MM-DD form (UTC).
func ParseDay(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// HourlyRange returns the inclusive hourly timestamps from start to end.
// len == whole hours between them + 1.
func HourlyRange(start, end time.Time) []time.Time {
	if end.Before(start) {
		return nil
	}
	n := int(end.Sub(start).Hours()) + 1
	out := make([]time.Time, 0, n)
	for t := start; !t.After(end); t = t.Add(time.Hour) {
		out = append(out, t)
	}
	return out
}
