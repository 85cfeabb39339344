package timeutil

import (
	"errors"
	"testing"
	"time"

	"ppa-valuation/internal/model"
)

// hourlySeries builds n hours of data starting at start, value = index.
func hourlySeries(start time.Time, n int) model.Series {
	times := make([]time.Time, n)
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		times[i] = start.Add(time.Duration(i) * time.Hour)
		values[i] = float64(i)
	}
	return model.Series{Times: times, Values: values}
}

func TestResample_hourlyIsIdentity(t *testing.T) {
	s := hourlySeries(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 100)
	got, err := Resample(s, Hourly)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != s.Len() {
		t.Fatalf("len = %d, want %d", got.Len(), s.Len())
	}
	for i := range got.Values {
		if got.Values[i] != s.Values[i] || !got.Times[i].Equal(s.Times[i]) {
			t.Fatalf("point %d differs after hourly resample", i)
		}
	}
}

func TestResample_dailySums(t *testing.T) {
	// Two full days of ones.
	s := hourlySeries(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 48)
	for i := range s.Values {
		s.Values[i] = 1
	}
	got, err := Resample(s, Daily)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 {
		t.Fatalf("len = %d, want 2 daily buckets", got.Len())
	}
	for i, v := range got.Values {
		if v != 24 {
			t.Errorf("bucket %d sum = %g, want 24", i, v)
		}
		if got.Times[i].Hour() != 0 {
			t.Errorf("bucket %d not indexed at day start: %v", i, got.Times[i])
		}
	}
}

func TestResample_monthlyBuckets(t *testing.T) {
	// Jan 31 23:00 and Feb 1 00:00 must land in different buckets.
	times := []time.Time{
		time.Date(2024, 1, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 2, 1, 1, 0, 0, 0, time.UTC),
	}
	s := model.Series{Times: times, Values: []float64{1, 2, 3}}

	got, err := Resample(s, Monthly)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 {
		t.Fatalf("len = %d, want 2 monthly buckets", got.Len())
	}
	if got.Values[0] != 1 || got.Values[1] != 5 {
		t.Errorf("bucket sums = %v, want [1 5]", got.Values)
	}
	if got.Times[1].Month() != time.February || got.Times[1].Day() != 1 {
		t.Errorf("second bucket start = %v, want Feb 1", got.Times[1])
	}
}

func TestResample_weeklyStartsMonday(t *testing.T) {
	// 2024-01-03 is a Wednesday; its week bucket starts Monday 2024-01-01.
	s := hourlySeries(time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), 24)
	got, err := Resample(s, Weekly)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 {
		t.Fatalf("len = %d, want 1 weekly bucket", got.Len())
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Times[0].Equal(want) {
		t.Errorf("bucket start = %v, want %v", got.Times[0], want)
	}
}

func TestResample_quarterly(t *testing.T) {
	times := []time.Time{
		time.Date(2024, 3, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	s := model.Series{Times: times, Values: []float64{10, 20}}
	got, err := Resample(s, Quarterly)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 {
		t.Fatalf("len = %d, want 2 quarters", got.Len())
	}
	if got.Times[0].Month() != time.January || got.Times[1].Month() != time.April {
		t.Errorf("quarter starts = %v, %v", got.Times[0], got.Times[1])
	}
}

func TestResample_unknownFrequency(t *testing.T) {
	s := hourlySeries(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 3)
	if _, err := Resample(s, Frequency("decadely")); !errors.Is(err, ErrUnknownFrequency) {
		t.Errorf("err = %v, want ErrUnknownFrequency", err)
	}
}
