package valuation

import (
	"time"

	"ppa-valuation/internal/model"
)

// BuildPriceSchedule derives the hourly PPA price series over the tenor from
// the contract price terms and the market forecast.
//
// Fixed terms broadcast the flat price; indexed terms scale the market
// forecast by the index factor. Floor and ceiling clamps apply afterwards,
// floor first: a bound <= 0 is disabled (sentinel, not "bound at zero").
// A floor above the ceiling pins values to the ceiling; that combination is
// the caller's responsibility and is not validated here.
func BuildPriceSchedule(terms model.PriceTerms, market model.Series, tenor []time.Time) model.Series {
	var schedule model.Series
	switch terms.Kind {
	case model.PriceIndexed:
		scaled := market.Scale(terms.Index)
		schedule = model.Series{Times: tenor, Values: scaled.Values}
	default: // model.PriceFixed; terms are validated at contract construction
		schedule = model.Flat(tenor, terms.Fixed)
	}

	if terms.Floor > 0 {
		for i, v := range schedule.Values {
			if v < terms.Floor {
				schedule.Values[i] = terms.Floor
			}
		}
	}
	if terms.Ceil > 0 {
		for i, v := range schedule.Values {
			if v > terms.Ceil {
				schedule.Values[i] = terms.Ceil
			}
		}
	}
	return schedule
}
