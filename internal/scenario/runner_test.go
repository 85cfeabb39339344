package scenario

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"ppa-valuation/internal/config"
)

// writeScenarioFixture writes a 48-hour flat-price, flat-generation fixture
// and returns a single-scenario config pointing at it.
func writeScenarioFixture(t *testing.T, name string, price, cf float64) config.ScenarioConfig {
	t.Helper()
	dir := t.TempDir()

	var prices, cfs strings.Builder
	prices.WriteString("DateTime,Price\n")
	cfs.WriteString("DateTime,Capacity Factor\n")
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 48; i++ {
		ts := start.Add(time.Duration(i) * time.Hour).Format("2006-01-02 15:04")
		fmt.Fprintf(&prices, "%s,%g\n", ts, price)
		fmt.Fprintf(&cfs, "%s,%g\n", ts, cf)
	}

	marketPath := filepath.Join(dir, "hpfc.csv")
	profilePath := filepath.Join(dir, "solar.csv")
	if err := os.WriteFile(marketPath, []byte(prices.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(profilePath, []byte(cfs.String()), 0o644); err != nil {
		t.Fatal(err)
	}

	return config.ScenarioConfig{
		Name:                name,
		SettlementFrequency: "hourly",
		Contract: config.ContractConfig{
			ProjectLocation:   "GB-South",
			CorporateLocation: "GB-London",
			Start:             "2024-01-01",
			End:               "2024-01-02",
			Discount:          0,
			Price: config.PriceConfig{
				Type:  "fixed",
				Fixed: price,
			},
		},
		Generation: config.GenerationConfig{
			Technology: "PV",
			CapacityMW: 10,
			ProfileCSV: profilePath,
		},
		MarketCSV: marketPath,
	}
}

func TestEvaluate_flatScenario(t *testing.T) {
	sc := writeScenarioFixture(t, "flat", 50, 0.5)

	res, err := Evaluate(sc)
	if err != nil {
		t.Fatal(err)
	}
	// PPA price == market price and rate 0: fair price is the market price,
	// NPV is zero, volume is 48h * 0.5 * 10MW.
	if math.Abs(res.FairPrice-50) > 1e-9 {
		t.Errorf("FairPrice = %g, want 50", res.FairPrice)
	}
	if res.NPV != 0 {
		t.Errorf("NPV = %g, want 0", res.NPV)
	}
	if res.VolumeMWh != 240 {
		t.Errorf("VolumeMWh = %g, want 240", res.VolumeMWh)
	}
	if res.Schedule.Len() != 48 {
		t.Errorf("schedule = %d points, want 48", res.Schedule.Len())
	}
	if res.Market.MeanPrice != 50 {
		t.Errorf("market mean = %g, want 50", res.Market.MeanPrice)
	}
}

func TestEvaluate_missingCSV(t *testing.T) {
	sc := writeScenarioFixture(t, "broken", 50, 0.5)
	sc.MarketCSV = filepath.Join(t.TempDir(), "nope.csv")

	if _, err := Evaluate(sc); err == nil {
		t.Fatal("expected error for missing market CSV")
	}
}

func TestRunAll_ordersAndNames(t *testing.T) {
	cfg := &config.Config{Scenarios: []config.ScenarioConfig{
		writeScenarioFixture(t, "a", 40, 0.3),
		writeScenarioFixture(t, "b", 60, 0.6),
		writeScenarioFixture(t, "c", 80, 0.9),
	}}

	results, err := RunAll(context.Background(), cfg)
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	for i, want := range []string{"a", "b", "c"} {
		if results[i].Name != want {
			t.Errorf("results[%d].Name = %q, want %q (config order)", i, results[i].Name, want)
		}
	}
	if results[0].FairPrice >= results[2].FairPrice {
		t.Errorf("fair prices %g >= %g, want increasing with market level",
			results[0].FairPrice, results[2].FairPrice)
	}
}

func TestRunAll_propagatesScenarioError(t *testing.T) {
	broken := writeScenarioFixture(t, "broken", 50, 0.5)
	broken.MarketCSV = filepath.Join(t.TempDir(), "missing.csv")
	cfg := &config.Config{Scenarios: []config.ScenarioConfig{
		writeScenarioFixture(t, "ok", 50, 0.5),
		broken,
	}}

	if _, err := RunAll(context.Background(), cfg); err == nil {
		t.Fatal("expected error from broken scenario")
	} else if !strings.Contains(err.Error(), "broken") {
		t.Errorf("err = %v, want scenario name in message", err)
	}
}
