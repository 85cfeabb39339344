package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"ppa-valuation/internal/config"
	"ppa-valuation/internal/report"
	"ppa-valuation/internal/scenario"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "value":
		cmdValue(os.Args[2:])
	case "schedule":
		cmdSchedule(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Println("usage:")
	fmt.Println("  cli value --config examples/scenarios.yaml --out results/valuation.csv [--chart results/schedule.png]")
	fmt.Println("  cli schedule --config examples/scenarios.yaml --scenario base --out results/schedule.csv")
	fmt.Println("")
	fmt.Println("notes:")
	fmt.Println("  - value evaluates every scenario in the config (fair price, NPV, volume)")
	fmt.Println("  - schedule exports one scenario's hourly PPA price series")
}

func cmdValue(args []string) {
	fs := flag.NewFlagSet("value", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	outPath := fs.String("out", "results/valuation.csv", "Output CSV path")
	chartPath := fs.String("chart", "", "Optional PNG chart of the first scenario's schedule")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	results, err := scenario.RunAll(context.Background(), cfg)
	if err != nil {
		panic(err)
	}

	for _, r := range results {
		fmt.Printf("%-20s fair=%9.3f $/MWh  npv=%14.2f $  volume=%12.1f MWh  capture=%.3f\n",
			r.Name, r.FairPrice, r.NPV, r.VolumeMWh, r.Market.CaptureRate)
	}

	// ensure output dir exists
	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := report.WriteResultsCSV(*outPath, results); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(results), *outPath)

	if *chartPath != "" {
		first := results[0]
		if err := os.MkdirAll(filepath.Dir(*chartPath), 0o755); err != nil {
			panic(err)
		}
		if err := report.WriteScheduleChart(*chartPath, first.Name, first.Schedule, first.MarketWindow); err != nil {
			panic(err)
		}
		fmt.Printf("Wrote chart: %s\n", *chartPath)
	}
}

func cmdSchedule(args []string) {
	fs := flag.NewFlagSet("schedule", flag.ExitOnError)
	cfgPath := fs.String("config", "", "Path to YAML scenario config")
	name := fs.String("scenario", "", "Scenario name (default: first in config)")
	outPath := fs.String("out", "results/schedule.csv", "Output CSV path")
	_ = fs.Parse(args)

	if *cfgPath == "" {
		fmt.Println("--config is required")
		os.Exit(2)
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		panic(err)
	}

	sc := cfg.Scenarios[0]
	if *name != "" {
		found := false
		for _, cand := range cfg.Scenarios {
			if cand.Name == *name {
				sc = cand
				found = true
				break
			}
		}
		if !found {
			fmt.Printf("no scenario named %q in %s\n", *name, *cfgPath)
			os.Exit(2)
		}
	}

	res, err := scenario.Evaluate(sc)
	if err != nil {
		panic(err)
	}

	if err := os.MkdirAll(filepath.Dir(*outPath), 0o755); err != nil {
		panic(err)
	}
	if err := report.WriteScheduleCSV(*outPath, res.Schedule); err != nil {
		panic(err)
	}
	fmt.Printf("Wrote %d rows to %s\n", res.Schedule.Len(), *outPath)
}
