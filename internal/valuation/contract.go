// Package valuation implements the PPA valuation engine: price-schedule
// construction, discounted cash flows and the three contract-level results
// (fair price, NPV, generated volume). All computation is in-memory and
// synchronous; a Contract is single-owner and not safe for concurrent
// mutation.
package valuation

import (
	"errors"
	"fmt"
	"math"
	"time"

	"ppa-valuation/internal/model"
	"ppa-valuation/internal/timeutil"
)

// Stage is the readiness of a Contract. Valuation calls check the stage
// instead of computing from half-initialized or stale state.
type Stage string

const (
	// StageConstructed: dates, discount rate and price terms are set.
	StageConstructed Stage = "constructed"
	// StageGenerationAttached: a generation profile reference is set.
	StageGenerationAttached Stage = "generation_attached"
	// StagePriceBuilt: the price schedule has been materialized from a
	// market forecast; fair price and NPV are now computable.
	StagePriceBuilt Stage = "price_built"
	// StageStale: a date mutation invalidated the tenor and schedule;
	// BuildPriceSchedule must be called again.
	StageStale Stage = "stale"
)

var (
	// ErrMisalignedSeries means generation and market price disagree in
	// length over the evaluation window.
	ErrMisalignedSeries = errors.New("generation and market price series are misaligned over the contract window")
	// ErrGenerationNotAttached is returned by calls that need a generation
	// profile before AttachGeneration was called.
	ErrGenerationNotAttached = errors.New("no generation profile attached")
	// ErrPriceNotBuilt is returned by fair-price and NPV calls before
	// BuildPriceSchedule was called.
	ErrPriceNotBuilt = errors.New("price schedule not built")
	// ErrScheduleStale is returned after a date mutation until the schedule
	// is explicitly rebuilt. There is no implicit recompute.
	ErrScheduleStale = errors.New("price schedule is stale, call BuildPriceSchedule again")
)

// ContractTerms are the construction inputs, as supplied by the external
// data layer (config file, API request).
type ContractTerms struct {
	Locations model.Locations
	Start     time.Time // normalized to 00:00 of its calendar day
	End       time.Time // normalized to 23:00 of its calendar day
	Discount  float64   // effective annual rate, decimal
	Price     model.PriceTerms
}

// Contract is the valuation engine for one PPA. Derived series (cash flows,
// discount factors) are recomputed on every valuation call; only the tenor
// and price schedule are stored, and only BuildPriceSchedule refreshes them.
type Contract struct {
	Locations model.Locations

	start    time.Time
	end      time.Time
	discount float64
	terms    model.PriceTerms

	tenor    []time.Time
	schedule model.Series

	gen    *model.GenerationProfile
	market model.Series

	stage       Stage
	priceBuilt  bool
	genAttached bool

	// now anchors period counting; overridable in tests.
	now func() time.Time
}

// New builds a Contract from its terms, normalizing the dates to the hourly
// contract-day convention (start 00:00, end 23:00).
func New(terms ContractTerms) (*Contract, error) {
	if err := terms.Price.Validate(); err != nil {
		return nil, err
	}
	start := timeutil.DayStart(terms.Start)
	end := timeutil.DayEnd(terms.End)
	if end.Before(start) {
		return nil, fmt.Errorf("contract start %s is after end %s",
			start.Format("2006-01-02"), end.Format("2006-01-02"))
	}
	return &Contract{
		Locations: terms.Locations,
		start:     start,
		end:       end,
		discount:  terms.Discount,
		terms:     terms.Price,
		stage:     StageConstructed,
		now:       time.Now,
	}, nil
}

func (c *Contract) StartDate() time.Time         { return c.start }
func (c *Contract) EndDate() time.Time           { return c.end }
func (c *Contract) DiscountRate() float64        { return c.discount }
func (c *Contract) PriceTerms() model.PriceTerms { return c.terms }
func (c *Contract) Stage() Stage                 { return c.stage }

// Tenor returns the stored hourly timestamp range. Empty until
// BuildPriceSchedule has run.
func (c *Contract) Tenor() []time.Time { return c.tenor }

// PriceSchedule returns the stored PPA price series. Empty until
// BuildPriceSchedule has run.
func (c *Contract) PriceSchedule() model.Series { return c.schedule }

// AttachGeneration stores the generation profile reference. May be called
// again to swap profiles; valuation always reads the current reference.
func (c *Contract) AttachGeneration(g *model.GenerationProfile) error {
	if err := g.Validate(); err != nil {
		return err
	}
	c.gen = g
	c.genAttached = true
	if c.stage == StageConstructed {
		c.stage = StageGenerationAttached
	}
	return nil
}

// BuildPriceSchedule stores the market forecast reference, computes the
// hourly tenor, derives the PPA price schedule from the contract terms and
// stores and returns it. This is the only operation that refreshes the tenor
// and schedule; date mutations mark them stale and this call clears that.
func (c *Contract) BuildPriceSchedule(marketForecast model.Series) (model.Series, error) {
	c.market = marketForecast
	c.tenor = timeutil.HourlyRange(c.start, c.end)

	window := marketForecast.Window(c.start, c.end)
	if c.terms.Kind == model.PriceIndexed && window.Len() != len(c.tenor) {
		return model.Series{}, fmt.Errorf("%w: market forecast covers %d of %d tenor hours",
			ErrMisalignedSeries, window.Len(), len(c.tenor))
	}

	c.schedule = BuildPriceSchedule(c.terms, window, c.tenor)
	c.priceBuilt = true
	c.stage = StagePriceBuilt
	return c.schedule, nil
}

// FairPrice computes the discounted-cash-flow-weighted average market price
// per unit of generated energy over the tenor, settled at the given
// frequency:
//
//	sum_i(cf_i * df_i) / sum_i(df_i * gen_i)
//
// Non-finite values in either resampled series contribute zero to the sums
// (missing-data policy); a zero weighted-generation denominator yields the
// IEEE quotient (NaN or +/-Inf) with a nil error.
func (c *Contract) FairPrice(freq timeutil.Frequency) (float64, error) {
	if err := c.requireSchedule(); err != nil {
		return 0, err
	}

	gen := c.gen.Profile.Window(c.start, c.end)
	spot := c.market.Window(c.start, c.end)
	if gen.Len() != spot.Len() {
		return 0, fmt.Errorf("%w: %d generation vs %d price points",
			ErrMisalignedSeries, gen.Len(), spot.Len())
	}

	revenue, err := CashFlow(gen, spot, c.tenor)
	if err != nil {
		return 0, err
	}

	revenueSampled, discountFactors, err := c.discounted(revenue, freq)
	if err != nil {
		return 0, err
	}
	genSampled, err := timeutil.Resample(gen, freq)
	if err != nil {
		return 0, err
	}

	numerator := nanDot(revenueSampled.Values, discountFactors)
	denominator := nanDot(discountFactors, genSampled.Values)
	return numerator / denominator, nil
}

// NPV computes the discounted sum of the spread cash flow to the buyer:
// (market - ppa_price) * generated energy, per hour, resampled to the
// settlement frequency. If the schedule equals the market everywhere the
// result is exactly zero regardless of the discount rate.
func (c *Contract) NPV(freq timeutil.Frequency) (float64, error) {
	if err := c.requireSchedule(); err != nil {
		return 0, err
	}

	gen := c.gen.Profile.Window(c.start, c.end).Scale(c.gen.CapacityMW)
	spot := c.market.Window(c.start, c.end)
	if gen.Len() != spot.Len() {
		return 0, fmt.Errorf("%w: %d generation vs %d price points",
			ErrMisalignedSeries, gen.Len(), spot.Len())
	}

	if spot.Len() != c.schedule.Len() {
		return 0, fmt.Errorf("%w: %d price points for a %d-hour schedule",
			ErrMisalignedSeries, spot.Len(), c.schedule.Len())
	}

	spread := make([]float64, spot.Len())
	for i := range spread {
		spread[i] = spot.Values[i] - c.schedule.Values[i]
	}

	revenue, err := CashFlow(gen, model.Series{Times: c.tenor, Values: spread}, c.tenor)
	if err != nil {
		return 0, err
	}

	revenueSampled, discountFactors, err := c.discounted(revenue, freq)
	if err != nil {
		return 0, err
	}
	return nanDot(revenueSampled.Values, discountFactors), nil
}

// GenerationVolume returns the total energy delivered over the contract
// window in MWh: sum of capacity factor * nameplate capacity. Non-finite
// profile points contribute zero. Requires only an attached generation
// profile.
func (c *Contract) GenerationVolume() (float64, error) {
	if !c.genAttached {
		return 0, ErrGenerationNotAttached
	}
	gen := c.gen.Profile.Window(c.start, c.end)
	total := 0.0
	for _, cf := range gen.Values {
		e := cf * c.gen.CapacityMW
		if !math.IsNaN(e) && !math.IsInf(e, 0) {
			total += e
		}
	}
	return total, nil
}

// SetStartDate overwrites the contract start (normalized to 00:00) and marks
// the schedule stale. The tenor and schedule are not rebuilt implicitly.
func (c *Contract) SetStartDate(t time.Time) {
	c.start = timeutil.DayStart(t)
	c.markStale()
}

// SetEndDate overwrites the contract end (normalized to 23:00) and marks the
// schedule stale.
func (c *Contract) SetEndDate(t time.Time) {
	c.end = timeutil.DayEnd(t)
	c.markStale()
}

// SetDiscountRate overwrites the effective annual discount rate. Discount
// factors are derived fresh on every valuation call, so no staleness.
func (c *Contract) SetDiscountRate(rate float64) {
	c.discount = rate
}

// SetFixedPrice overwrites the stored price schedule with a flat value over
// the current tenor. Requires a built, non-stale schedule.
func (c *Contract) SetFixedPrice(price float64) error {
	if err := c.requireSchedule(); err != nil {
		return err
	}
	c.terms.Fixed = price
	c.schedule = model.Flat(c.tenor, price)
	return nil
}

func (c *Contract) markStale() {
	if c.priceBuilt {
		c.priceBuilt = false
		c.stage = StageStale
	}
}

func (c *Contract) requireSchedule() error {
	if !c.genAttached {
		return ErrGenerationNotAttached
	}
	if c.stage == StageStale {
		return ErrScheduleStale
	}
	if !c.priceBuilt {
		return ErrPriceNotBuilt
	}
	return nil
}

// discounted resamples a cash-flow series to the settlement frequency and
// builds the matching discount-factor array.
func (c *Contract) discounted(revenue model.Series, freq timeutil.Frequency) (model.Series, []float64, error) {
	sampled, err := timeutil.Resample(revenue, freq)
	if err != nil {
		return model.Series{}, nil, err
	}
	rate, err := timeutil.PeriodicRate(c.discount, freq)
	if err != nil {
		return model.Series{}, nil, err
	}
	offset, err := timeutil.PeriodsBetween(c.now(), c.start, freq)
	if err != nil {
		return model.Series{}, nil, err
	}
	return sampled, DiscountFactors(sampled.Len(), rate, offset), nil
}

// nanDot is the sum of elementwise products, skipping non-finite terms.
// Gaps in the data reduce the sums instead of poisoning them.
func nanDot(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	total := 0.0
	for i := 0; i < n; i++ {
		p := a[i] * b[i]
		if math.IsNaN(p) || math.IsInf(p, 0) {
			continue
		}
		total += p
	}
	return total
}
