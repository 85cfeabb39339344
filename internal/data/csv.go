// Package data is the thin supplier layer: it loads hourly price and
// capacity-factor series from CSV into model.Series. No computation lives
// here.
package data

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"ppa-valuation/internal/model"
)

// Accepted timestamp layouts for the DateTime column. The first is the
// layout of the forward-curve exports this tool historically consumed.
var timeLayouts = []string{
	"02/01/2006 15:04",
	"2006-01-02 15:04",
	time.RFC3339,
}

// LoadPriceCSV reads an hourly price forecast with columns
// DateTime, Price.
func LoadPriceCSV(path string) (model.Series, error) {
	return loadSeriesCSV(path, "Price")
}

// LoadCapacityFactorCSV reads an hourly generation profile with columns
// DateTime, Capacity Factor.
func LoadCapacityFactorCSV(path string) (model.Series, error) {
	return loadSeriesCSV(path, "Capacity Factor")
}

// loadSeriesCSV reads a two-column datetime-indexed series. Column lookup is
// by header name so extra columns are tolerated.
func loadSeriesCSV(path, valueColumn string) (model.Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return model.Series{}, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil {
		return model.Series{}, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) < 2 {
		return model.Series{}, fmt.Errorf("%s: no data rows", path)
	}

	timeIdx, valueIdx := -1, -1
	for i, name := range rows[0] {
		switch strings.TrimSpace(name) {
		case "DateTime":
			timeIdx = i
		case valueColumn:
			valueIdx = i
		}
	}
	if timeIdx < 0 || valueIdx < 0 {
		return model.Series{}, fmt.Errorf("%s: expected columns DateTime and %q, got %v", path, valueColumn, rows[0])
	}

	times := make([]time.Time, 0, len(rows)-1)
	values := make([]float64, 0, len(rows)-1)
	for n, row := range rows[1:] {
		t, err := parseTime(row[timeIdx])
		if err != nil {
			return model.Series{}, fmt.Errorf("%s row %d: %w", path, n+2, err)
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[valueIdx]), 64)
		if err != nil {
			return model.Series{}, fmt.Errorf("%s row %d: invalid %s %q", path, n+2, valueColumn, row[valueIdx])
		}
		times = append(times, t)
		values = append(values, v)
	}
	return model.Series{Times: times, Values: values}, nil
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
