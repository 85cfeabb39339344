package main

import (
	"flag"
	"fmt"
	"math"
	"time"

	"ppa-valuation/internal/analysis"
	"ppa-valuation/internal/model"
	"ppa-valuation/internal/timeutil"
	"ppa-valuation/internal/valuation"
)

// Demo:
// - Build a synthetic one-year hourly market curve and a solar-shaped profile
// - Construct a fixed-price contract and walk it through the full pipeline
// - Print schedule, fair price, NPV and delivered volume
func main() {
	startStr := flag.String("start", "2024-01-01", "Contract start (YYYY-MM-DD)")
	endStr := flag.String("end", "2024-12-31", "Contract end (YYYY-MM-DD)")
	fixed := flag.Float64("fixed", 45.0, "Fixed PPA price ($/MWh)")
	capacity := flag.Float64("capacity", 50.0, "Nameplate capacity (MW)")
	discount := flag.Float64("discount", 0.05, "Effective annual discount rate")
	freqStr := flag.String("freq", "monthly", "Settlement frequency")
	flag.Parse()

	start, err := timeutil.ParseDay(*startStr)
	if err != nil {
		panic(err)
	}
	end, err := timeutil.ParseDay(*endStr)
	if err != nil {
		panic(err)
	}

	contract, err := valuation.New(valuation.ContractTerms{
		Locations: model.Locations{Project: "GB-South", Corporate: "GB-London"},
		Start:     start,
		End:       end,
		Discount:  *discount,
		Price: model.PriceTerms{
			Kind:  model.PriceFixed,
			Fixed: *fixed,
		},
	})
	if err != nil {
		panic(err)
	}

	tenor := timeutil.HourlyRange(contract.StartDate(), contract.EndDate())
	market := syntheticMarket(tenor)
	profile := syntheticSolar(tenor)

	gen := &model.GenerationProfile{
		Technology: "PV",
		Location:   "GB-South",
		CapacityMW: *capacity,
		Start:      contract.StartDate(),
		End:        contract.EndDate(),
		Profile:    profile,
	}
	if err := contract.AttachGeneration(gen); err != nil {
		panic(err)
	}

	schedule, err := contract.BuildPriceSchedule(market)
	if err != nil {
		panic(err)
	}

	freq := timeutil.Frequency(*freqStr)
	fair, err := contract.FairPrice(freq)
	if err != nil {
		panic(err)
	}
	npv, err := contract.NPV(freq)
	if err != nil {
		panic(err)
	}
	vol, err := contract.GenerationVolume()
	if err != nil {
		panic(err)
	}

	summary := analysis.Summarize(market, profile)

	fmt.Printf("Contract %s -> %s, %d tenor hours, stage=%s\n",
		contract.StartDate().Format("2006-01-02 15:04"),
		contract.EndDate().Format("2006-01-02 15:04"),
		len(contract.Tenor()),
		contract.Stage(),
	)
	fmt.Printf("Schedule: first=%.2f last=%.2f $/MWh (%d points)\n\n",
		schedule.Values[0], schedule.Values[schedule.Len()-1], schedule.Len())

	fmt.Printf("Market   mean=%7.2f  p05=%7.2f  p95=%7.2f  spread=%7.2f $/MWh\n",
		summary.MeanPrice, summary.P05Price, summary.P95Price, summary.SpreadP95P05)
	fmt.Printf("Capture  price=%7.2f $/MWh  rate=%.3f\n\n", summary.CapturePrice, summary.CaptureRate)

	fmt.Printf("Fair price (%s settlement) = %9.3f $/MWh\n", freq, fair)
	fmt.Printf("NPV to buyer               = %12.2f $\n", npv)
	fmt.Printf("Delivered volume           = %12.1f MWh\n", vol)
}

// syntheticMarket shapes a flat 48 $/MWh base with a daily sine swing and a
// mild winter premium.
func syntheticMarket(tenor []time.Time) model.Series {
	values := make([]float64, len(tenor))
	for i, t := range tenor {
		daily := 12 * math.Sin(2*math.Pi*float64(t.Hour()-9)/24)
		seasonal := 6 * math.Cos(2*math.Pi*float64(t.YearDay())/365)
		values[i] = 48 + daily + seasonal
	}
	return model.Series{Times: tenor, Values: values}
}

// syntheticSolar is a clear-sky capacity-factor bell between 06:00 and 18:00.
func syntheticSolar(tenor []time.Time) model.Series {
	values := make([]float64, len(tenor))
	for i, t := range tenor {
		h := float64(t.Hour())
		if h < 6 || h > 18 {
			continue
		}
		values[i] = 0.85 * math.Sin(math.Pi*(h-6)/12)
	}
	return model.Series{Times: tenor, Values: values}
}
