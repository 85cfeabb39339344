package report

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"ppa-valuation/internal/model"
	"ppa-valuation/internal/scenario"
)

// WriteScheduleCSV writes the hourly PPA price schedule, one row per tenor
// hour. This is the primary artifact for "what price applies when".
func WriteScheduleCSV(path string, schedule model.Series) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"datetime", "ppa_price"}); err != nil {
		return err
	}
	for i, t := range schedule.Times {
		row := []string{
			fmtTime(t),
			fmtFloat(schedule.Values[i]),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

// WriteResultsCSV writes one row per evaluated scenario.
func WriteResultsCSV(path string, results []scenario.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"scenario",
		"settlement_frequency",
		"start",
		"end",
		"fair_price",
		"npv",
		"volume_mwh",
		"mean_price",
		"capture_price",
		"capture_rate",
		"spread_p95_p05",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		row := []string{
			r.Name,
			string(r.Frequency),
			fmtTime(r.Start),
			fmtTime(r.End),
			fmtFloat(r.FairPrice),
			fmtFloat(r.NPV),
			fmtFloat(r.VolumeMWh),
			fmtFloat(r.Market.MeanPrice),
			fmtFloat(r.Market.CapturePrice),
			fmtFloat(r.Market.CaptureRate),
			fmtFloat(r.Market.SpreadP95P05),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
}

func fmtTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
