// Package scenario evaluates named valuation scenarios from configuration.
// Each scenario builds its own Contract, so scenarios are independent and
// safe to evaluate concurrently (one goroutine per contract, no shared
// mutation).
package scenario

import (
	"context"
	"fmt"
	"time"

	"ppa-valuation/internal/analysis"
	"ppa-valuation/internal/config"
	"ppa-valuation/internal/data"
	"ppa-valuation/internal/model"
	"ppa-valuation/internal/timeutil"
	"ppa-valuation/internal/valuation"

	"golang.org/x/sync/errgroup"
)

// Result bundles the three valuation outputs plus the derived schedule and
// market statistics for one scenario.
type Result struct {
	Name      string
	Frequency timeutil.Frequency

	Start time.Time
	End   time.Time

	FairPrice float64 // $/MWh
	NPV       float64 // $
	VolumeMWh float64

	Market analysis.MarketSummary

	// Schedule and MarketWindow are the derived PPA price series and the
	// market forecast sliced to the tenor, for reporting.
	Schedule     model.Series
	MarketWindow model.Series
}

// Evaluate runs a single scenario end-to-end: load the two CSV series, build
// the contract, derive the schedule and compute all three results.
func Evaluate(sc config.ScenarioConfig) (Result, error) {
	terms, err := sc.Contract.ToTerms()
	if err != nil {
		return Result{}, err
	}
	contract, err := valuation.New(terms)
	if err != nil {
		return Result{}, err
	}

	profile, err := data.LoadCapacityFactorCSV(sc.Generation.ProfileCSV)
	if err != nil {
		return Result{}, fmt.Errorf("generation profile: %w", err)
	}
	market, err := data.LoadPriceCSV(sc.MarketCSV)
	if err != nil {
		return Result{}, fmt.Errorf("market forecast: %w", err)
	}

	gen := &model.GenerationProfile{
		Technology: sc.Generation.Technology,
		Location:   sc.Contract.ProjectLocation,
		CapacityMW: sc.Generation.CapacityMW,
		Start:      contract.StartDate(),
		End:        contract.EndDate(),
		Profile:    profile,
	}
	if err := contract.AttachGeneration(gen); err != nil {
		return Result{}, err
	}

	schedule, err := contract.BuildPriceSchedule(market)
	if err != nil {
		return Result{}, err
	}

	freq := timeutil.Frequency(sc.SettlementFrequency)
	fair, err := contract.FairPrice(freq)
	if err != nil {
		return Result{}, err
	}
	npv, err := contract.NPV(freq)
	if err != nil {
		return Result{}, err
	}
	vol, err := contract.GenerationVolume()
	if err != nil {
		return Result{}, err
	}

	window := contract.StartDate()
	end := contract.EndDate()
	return Result{
		Name:      sc.Name,
		Frequency: freq,
		Start:     window,
		End:       end,
		FairPrice: fair,
		NPV:       npv,
		VolumeMWh: vol,
		Market: analysis.Summarize(
			market.Window(window, end),
			profile.Window(window, end),
		),
		Schedule:     schedule,
		MarketWindow: market.Window(window, end),
	}, nil
}

// RunAll evaluates every scenario in the config concurrently and returns
// results in config order. The first scenario error cancels the rest.
func RunAll(ctx context.Context, cfg *config.Config) ([]Result, error) {
	results := make([]Result, len(cfg.Scenarios))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, sc := range cfg.Scenarios {
		i, sc := i, sc
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := Evaluate(sc)
			if err != nil {
				return fmt.Errorf("scenario %q: %w", sc.Name, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
