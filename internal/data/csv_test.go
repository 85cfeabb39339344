package data

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadPriceCSV(t *testing.T) {
	path := writeTemp(t, "hpfc.csv", strings.Join([]string{
		"DateTime,Price",
		"01/01/2024 00:00,42.5",
		"01/01/2024 01:00,41.0",
		"01/01/2024 02:00,39.75",
	}, "\n"))

	s, err := LoadPriceCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
	want := time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC)
	if !s.Times[1].Equal(want) {
		t.Errorf("Times[1] = %v, want %v (dd/mm/yyyy layout)", s.Times[1], want)
	}
	if s.Values[2] != 39.75 {
		t.Errorf("Values[2] = %g, want 39.75", s.Values[2])
	}
}

func TestLoadCapacityFactorCSV_extraColumns(t *testing.T) {
	path := writeTemp(t, "solar.csv", strings.Join([]string{
		"DateTime,Site,Capacity Factor",
		"2024-06-01 12:00,GB-South,0.81",
		"2024-06-01 13:00,GB-South,0.78",
	}, "\n"))

	s, err := LoadCapacityFactorCSV(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("len = %d, want 2", s.Len())
	}
	if s.Values[0] != 0.81 {
		t.Errorf("Values[0] = %g, want 0.81", s.Values[0])
	}
}

func TestLoadPriceCSV_missingColumn(t *testing.T) {
	path := writeTemp(t, "bad.csv", "DateTime,LMP\n01/01/2024 00:00,42.5\n")
	if _, err := LoadPriceCSV(path); err == nil {
		t.Fatal("expected error for missing Price column")
	}
}

func TestLoadPriceCSV_badTimestamp(t *testing.T) {
	path := writeTemp(t, "bad.csv", "DateTime,Price\nyesterday,42.5\n")
	if _, err := LoadPriceCSV(path); err == nil {
		t.Fatal("expected error for unparseable timestamp")
	}
}

func TestLoadPriceCSV_badValue(t *testing.T) {
	path := writeTemp(t, "bad.csv", "DateTime,Price\n01/01/2024 00:00,n/a\n")
	if _, err := LoadPriceCSV(path); err == nil {
		t.Fatal("expected error for unparseable value")
	}
}

func TestLoadPriceCSV_emptyFile(t *testing.T) {
	path := writeTemp(t, "empty.csv", "DateTime,Price\n")
	if _, err := LoadPriceCSV(path); err == nil {
		t.Fatal("expected error for header-only file")
	}
}
