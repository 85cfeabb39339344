package models

import "time"

// ValuationResponse is the result of a valuation run.
type ValuationResponse struct {
	Status   string           `json:"status"`
	Summary  ValuationSummary `json:"summary"`
	Schedule []SeriesPoint    `json:"schedule,omitempty"`
}

// ValuationSummary contains the three contract-level results.
type ValuationSummary struct {
	FairPrice           float64        `json:"fair_price"` // $/MWh
	NPV                 float64        `json:"npv"`        // $
	VolumeMWh           float64        `json:"volume_mwh"`
	SettlementFrequency string         `json:"settlement_frequency"`
	Window              TimeWindow     `json:"window"`
	TenorHours          int            `json:"tenor_hours"`
	Market              *MarketSummary `json:"market,omitempty"`
}

// ScheduleResponse carries a derived PPA price schedule.
type ScheduleResponse struct {
	Status   string        `json:"status"`
	Window   TimeWindow    `json:"window"`
	Schedule []SeriesPoint `json:"schedule"`
}

// TimeWindow represents a time range.
type TimeWindow struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// MarketSummary is the price/capture statistics block.
type MarketSummary struct {
	MeanPrice    float64 `json:"mean_price"`
	MinPrice     float64 `json:"min_price"`
	MaxPrice     float64 `json:"max_price"`
	P05Price     float64 `json:"p05_price"`
	P95Price     float64 `json:"p95_price"`
	SpreadP95P05 float64 `json:"spread_p95_p05"`
	CapturePrice float64 `json:"capture_price"`
	CaptureRate  float64 `json:"capture_rate"`
}

// FrequencyInfo describes one supported settlement frequency.
type FrequencyInfo struct {
	Name           string  `json:"name"`
	PeriodsPerYear float64 `json:"periods_per_year"`
}

// FrequenciesResponse lists the supported settlement frequencies.
type FrequenciesResponse struct {
	Frequencies []FrequencyInfo `json:"frequencies"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information.
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
