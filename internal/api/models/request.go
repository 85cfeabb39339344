package models

import "time"

// ValuationRequest is the body for POST /api/v1/valuation. Series are
// supplied inline; the engine has no data fetchers of its own.
type ValuationRequest struct {
	Contract            ContractSpec     `json:"contract" binding:"required"`
	Generation          GenerationSpec   `json:"generation" binding:"required"`
	Market              []SeriesPoint    `json:"market" binding:"required"`
	SettlementFrequency string           `json:"settlement_frequency" binding:"required"`
	Options             ValuationOptions `json:"options,omitempty"`
}

// ScheduleRequest is the body for POST /api/v1/schedule: derive the PPA
// price schedule without valuing the contract.
type ScheduleRequest struct {
	Contract ContractSpec  `json:"contract" binding:"required"`
	Market   []SeriesPoint `json:"market,omitempty"` // required for indexed terms
}

// ContractSpec mirrors the contract terms of the config layer.
type ContractSpec struct {
	ProjectLocation   string    `json:"project_location,omitempty"`
	CorporateLocation string    `json:"corporate_location,omitempty"`
	Start             string    `json:"start" binding:"required"` // YYYY-MM-DD
	End               string    `json:"end" binding:"required"`   // YYYY-MM-DD
	Discount          float64   `json:"discount"`
	Price             PriceSpec `json:"price" binding:"required"`
}

// PriceSpec defines the price terms. floor/ceil <= 0 disable the bounds.
type PriceSpec struct {
	Type  string  `json:"type" binding:"required"` // "fixed" or "indexed"
	Fixed float64 `json:"fixed,omitempty"`
	Floor float64 `json:"floor,omitempty"`
	Ceil  float64 `json:"ceil,omitempty"`
	Index float64 `json:"index,omitempty"`
}

// GenerationSpec carries the project parameters and hourly capacity factors.
type GenerationSpec struct {
	Technology string        `json:"technology,omitempty"`
	CapacityMW float64       `json:"capacity_mw" binding:"required"`
	Profile    []SeriesPoint `json:"profile" binding:"required"`
}

// SeriesPoint is one hourly observation.
type SeriesPoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// ValuationOptions toggles optional response payloads.
type ValuationOptions struct {
	IncludeSchedule      bool `json:"include_schedule,omitempty"`
	IncludeMarketSummary bool `json:"include_market_summary,omitempty"`
}
