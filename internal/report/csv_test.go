package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"ppa-valuation/internal/model"
	"ppa-valuation/internal/scenario"
	"ppa-valuation/internal/timeutil"
)

func readRows(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestWriteScheduleCSV(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	schedule := model.Series{
		Times:  []time.Time{start, start.Add(time.Hour)},
		Values: []float64{45, 46.5},
	}
	path := filepath.Join(t.TempDir(), "schedule.csv")

	if err := WriteScheduleCSV(path, schedule); err != nil {
		t.Fatal(err)
	}

	rows := readRows(t, path)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[0][0] != "datetime" || rows[0][1] != "ppa_price" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "2024-01-01T00:00:00Z" {
		t.Errorf("timestamp = %q, want RFC3339", rows[1][0])
	}
	if rows[2][1] != "46.500000" {
		t.Errorf("price = %q, want 46.500000", rows[2][1])
	}
}

func TestWriteResultsCSV(t *testing.T) {
	results := []scenario.Result{
		{
			Name:      "base",
			Frequency: timeutil.Hourly,
			Start:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			End:       time.Date(2024, 12, 31, 23, 0, 0, 0, time.UTC),
			FairPrice: 52.125,
			NPV:       12345.5,
			VolumeMWh: 8760,
		},
	}
	path := filepath.Join(t.TempDir(), "results.csv")

	if err := WriteResultsCSV(path, results); err != nil {
		t.Fatal(err)
	}

	rows := readRows(t, path)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	if rows[1][0] != "base" || rows[1][1] != "hourly" {
		t.Errorf("row = %v", rows[1])
	}
	if rows[1][4] != "52.125000" {
		t.Errorf("fair_price = %q, want 52.125000", rows[1][4])
	}
}
